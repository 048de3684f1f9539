package utils

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"meenakshitravels/models"
)

// Mailer sends through whatever SMTP settings the admin last saved.
type Mailer struct {
	Settings *models.SMTPSettings
}

func NewMailer(s *models.SMTPSettings) *Mailer {
	return &Mailer{Settings: s}
}

func (m *Mailer) dialer() *gomail.Dialer {
	d := gomail.NewDialer(m.Settings.Host, m.Settings.Port, m.Settings.Username, m.Settings.Password)
	// Implicit TLS on 465; STARTTLS otherwise.
	d.SSL = m.Settings.UseTLS && m.Settings.Port == 465
	return d
}

func (m *Mailer) from() string {
	if m.Settings.FromName != "" {
		return fmt.Sprintf("%s <%s>", m.Settings.FromName, m.Settings.FromEmail)
	}
	return m.Settings.FromEmail
}

// TestConnection dials and authenticates without sending anything.
func (m *Mailer) TestConnection() error {
	closer, err := m.dialer().Dial()
	if err != nil {
		return err
	}
	return closer.Close()
}

// Send delivers a single HTML message.
func (m *Mailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from())
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	return m.dialer().DialAndSend(msg)
}

// SendTestEmail sends the admin panel's "send-test-email" message.
func (m *Mailer) SendTestEmail(to string) error {
	body := "<p>This is a test email from the admin panel. Your SMTP settings are working.</p>"
	return m.Send(to, "SMTP test email", body)
}

// SendLeadNotification mails a new-lead summary to the configured address.
func (m *Mailer) SendLeadNotification(to string, lead *models.Lead) error {
	body := fmt.Sprintf(
		"<h3>New enquiry received</h3>"+
			"<p><b>Name:</b> %s<br><b>Email:</b> %s<br><b>Phone:</b> %s<br>"+
			"<b>Service:</b> %s<br><b>Source:</b> %s</p><p>%s</p>",
		lead.FullName, lead.Email, lead.Phone, lead.Service, lead.FormSource, lead.Message)
	return m.Send(to, "New enquiry: "+lead.FullName, body)
}
