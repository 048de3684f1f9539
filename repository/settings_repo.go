package repository

import "meenakshitravels/models"

// SettingsRepository holds the singleton documents: contact info, theme and
// SMTP settings. Save is an upsert; Get returns nil when nothing was saved yet.
type SettingsRepository interface {
	GetContact() (*models.ContactInfo, error)
	SaveContact(c *models.ContactInfo) error

	GetTheme() (*models.Theme, error)
	SaveTheme(t *models.Theme) error

	GetSMTP() (*models.SMTPSettings, error)
	SaveSMTP(s *models.SMTPSettings) error
}
