package repository

import (
	"context"
	"errors"
	"time"

	"meenakshitravels/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Fixed _id values keep each settings collection a true singleton.
const (
	contactDocID = "contact"
	themeDocID   = "theme"
	smtpDocID    = "smtp"
)

type MongoSettingsRepo struct {
	DB *mongo.Client
}

func NewMongoSettingsRepo(db *mongo.Client) *MongoSettingsRepo {
	return &MongoSettingsRepo{DB: db}
}

func (r *MongoSettingsRepo) db() *mongo.Database {
	return r.DB.Database(mongoDatabase)
}

func (r *MongoSettingsRepo) GetContact() (*models.ContactInfo, error) {
	var c models.ContactInfo
	err := r.db().Collection("contact_info").
		FindOne(context.Background(), bson.M{"_id": contactDocID}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *MongoSettingsRepo) SaveContact(c *models.ContactInfo) error {
	c.ID = contactDocID
	c.UpdatedAt = time.Now().UTC()
	_, err := r.db().Collection("contact_info").ReplaceOne(
		context.Background(),
		bson.M{"_id": contactDocID},
		c,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (r *MongoSettingsRepo) GetTheme() (*models.Theme, error) {
	var t models.Theme
	err := r.db().Collection("theme").
		FindOne(context.Background(), bson.M{"_id": themeDocID}).Decode(&t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *MongoSettingsRepo) SaveTheme(t *models.Theme) error {
	t.ID = themeDocID
	t.UpdatedAt = time.Now().UTC()
	_, err := r.db().Collection("theme").ReplaceOne(
		context.Background(),
		bson.M{"_id": themeDocID},
		t,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (r *MongoSettingsRepo) GetSMTP() (*models.SMTPSettings, error) {
	var s models.SMTPSettings
	err := r.db().Collection("smtp_settings").
		FindOne(context.Background(), bson.M{"_id": smtpDocID}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *MongoSettingsRepo) SaveSMTP(s *models.SMTPSettings) error {
	s.ID = smtpDocID
	s.UpdatedAt = time.Now().UTC()
	_, err := r.db().Collection("smtp_settings").ReplaceOne(
		context.Background(),
		bson.M{"_id": smtpDocID},
		s,
		options.Replace().SetUpsert(true),
	)
	return err
}
