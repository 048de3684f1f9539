package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"meenakshitravels/models"
)

type PostgresSettingsRepo struct {
	DB *sql.DB
}

func NewPostgresSettingsRepo(db *sql.DB) *PostgresSettingsRepo {
	return &PostgresSettingsRepo{DB: db}
}

func (r *PostgresSettingsRepo) GetContact() (*models.ContactInfo, error) {
	c := &models.ContactInfo{}
	var phones []byte
	err := r.DB.QueryRow(`
		SELECT id,phones,email,address_line,city,state,pincode,
			facebook_url,instagram_url,whatsapp_url,map_embed_url,
			page_heading,page_subheading,updated_at
		FROM contact_info WHERE id=$1
	`, contactDocID).Scan(&c.ID, &phones, &c.Email, &c.AddressLine, &c.City, &c.State,
		&c.Pincode, &c.FacebookURL, &c.InstagramURL, &c.WhatsappURL, &c.MapEmbedURL,
		&c.PageHeading, &c.PageSubheading, &c.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if len(phones) > 0 {
		if err := json.Unmarshal(phones, &c.Phones); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (r *PostgresSettingsRepo) SaveContact(c *models.ContactInfo) error {
	c.ID = contactDocID
	c.UpdatedAt = time.Now().UTC()

	phones, err := json.Marshal(c.Phones)
	if err != nil {
		return err
	}

	_, err = r.DB.Exec(`
		INSERT INTO contact_info(id,phones,email,address_line,city,state,pincode,
			facebook_url,instagram_url,whatsapp_url,map_embed_url,
			page_heading,page_subheading,updated_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		ON CONFLICT(id) DO UPDATE SET
			phones=EXCLUDED.phones, email=EXCLUDED.email,
			address_line=EXCLUDED.address_line, city=EXCLUDED.city,
			state=EXCLUDED.state, pincode=EXCLUDED.pincode,
			facebook_url=EXCLUDED.facebook_url, instagram_url=EXCLUDED.instagram_url,
			whatsapp_url=EXCLUDED.whatsapp_url, map_embed_url=EXCLUDED.map_embed_url,
			page_heading=EXCLUDED.page_heading, page_subheading=EXCLUDED.page_subheading,
			updated_at=EXCLUDED.updated_at
	`, c.ID, phones, c.Email, c.AddressLine, c.City, c.State, c.Pincode,
		c.FacebookURL, c.InstagramURL, c.WhatsappURL, c.MapEmbedURL,
		c.PageHeading, c.PageSubheading, c.UpdatedAt)
	return err
}

func (r *PostgresSettingsRepo) GetTheme() (*models.Theme, error) {
	t := &models.Theme{}
	err := r.DB.QueryRow(`
		SELECT id,site_name,logo,favicon,primary_color,secondary_color,gradient_direction,updated_at
		FROM theme WHERE id=$1
	`, themeDocID).Scan(&t.ID, &t.SiteName, &t.Logo, &t.Favicon,
		&t.PrimaryColor, &t.SecondaryColor, &t.GradientDirection, &t.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

func (r *PostgresSettingsRepo) SaveTheme(t *models.Theme) error {
	t.ID = themeDocID
	t.UpdatedAt = time.Now().UTC()

	_, err := r.DB.Exec(`
		INSERT INTO theme(id,site_name,logo,favicon,primary_color,secondary_color,gradient_direction,updated_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT(id) DO UPDATE SET
			site_name=EXCLUDED.site_name, logo=EXCLUDED.logo, favicon=EXCLUDED.favicon,
			primary_color=EXCLUDED.primary_color, secondary_color=EXCLUDED.secondary_color,
			gradient_direction=EXCLUDED.gradient_direction, updated_at=EXCLUDED.updated_at
	`, t.ID, t.SiteName, t.Logo, t.Favicon, t.PrimaryColor, t.SecondaryColor,
		t.GradientDirection, t.UpdatedAt)
	return err
}

func (r *PostgresSettingsRepo) GetSMTP() (*models.SMTPSettings, error) {
	s := &models.SMTPSettings{}
	err := r.DB.QueryRow(`
		SELECT id,host,port,username,password,from_name,from_email,use_tls,notify_email,updated_at
		FROM smtp_settings WHERE id=$1
	`, smtpDocID).Scan(&s.ID, &s.Host, &s.Port, &s.Username, &s.Password,
		&s.FromName, &s.FromEmail, &s.UseTLS, &s.NotifyEmail, &s.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

func (r *PostgresSettingsRepo) SaveSMTP(s *models.SMTPSettings) error {
	s.ID = smtpDocID
	s.UpdatedAt = time.Now().UTC()

	_, err := r.DB.Exec(`
		INSERT INTO smtp_settings(id,host,port,username,password,from_name,from_email,use_tls,notify_email,updated_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT(id) DO UPDATE SET
			host=EXCLUDED.host, port=EXCLUDED.port, username=EXCLUDED.username,
			password=EXCLUDED.password, from_name=EXCLUDED.from_name,
			from_email=EXCLUDED.from_email, use_tls=EXCLUDED.use_tls,
			notify_email=EXCLUDED.notify_email, updated_at=EXCLUDED.updated_at
	`, s.ID, s.Host, s.Port, s.Username, s.Password, s.FromName, s.FromEmail,
		s.UseTLS, s.NotifyEmail, s.UpdatedAt)
	return err
}
