package models

import "time"

// Theme is the singleton branding document. Colors are 6-digit hex strings.
type Theme struct {
	ID                string    `json:"id" bson:"_id,omitempty" db:"id"`
	SiteName          string    `json:"site_name" bson:"site_name" db:"site_name"`
	Logo              string    `json:"logo" bson:"logo" db:"logo"`
	Favicon           string    `json:"favicon" bson:"favicon" db:"favicon"`
	PrimaryColor      string    `json:"primary_color" bson:"primary_color" db:"primary_color" validate:"omitempty,hexcolor"`
	SecondaryColor    string    `json:"secondary_color" bson:"secondary_color" db:"secondary_color" validate:"omitempty,hexcolor"`
	GradientDirection string    `json:"gradient_direction" bson:"gradient_direction" db:"gradient_direction"`
	UpdatedAt         time.Time `json:"updated_at" bson:"updated_at" db:"updated_at"`
}

// DefaultTheme is what a reset restores and what the storefront falls back to.
func DefaultTheme() *Theme {
	return &Theme{
		SiteName:          "Meenakshi Travels",
		Logo:              "/images/logo.png",
		Favicon:           "/favicon.ico",
		PrimaryColor:      "#F59E0B",
		SecondaryColor:    "#1E3A8A",
		GradientDirection: "to right",
	}
}
