package models

import "time"

type PageSection struct {
	Name    string `json:"name" bson:"name" db:"name"`
	Title   string `json:"title" bson:"title" db:"title"`
	Content string `json:"content" bson:"content" db:"content"`
	Image   string `json:"image" bson:"image" db:"image"`
}

// Page is an editable content page (about, terms, destination pages).
type Page struct {
	ID        string        `json:"id" bson:"_id,omitempty" db:"id"`
	Title     string        `json:"title" bson:"title" db:"title" validate:"required"`
	Slug      string        `json:"slug" bson:"slug" db:"slug" validate:"required"`
	Sections  []PageSection `json:"sections" bson:"sections" db:"sections"`
	UpdatedAt time.Time     `json:"updated_at" bson:"updated_at" db:"updated_at"`
}
