package models

import "time"

type PhoneEntry struct {
	Number string `json:"number" bson:"number" db:"number"`
	Label  string `json:"label" bson:"label" db:"label"`
}

// ContactInfo is a singleton document shown on the storefront contact page
// and in the site footer.
type ContactInfo struct {
	ID             string       `json:"id" bson:"_id,omitempty" db:"id"`
	Phones         []PhoneEntry `json:"phones" bson:"phones" db:"phones"`
	Email          string       `json:"email" bson:"email" db:"email"`
	AddressLine    string       `json:"address_line" bson:"address_line" db:"address_line"`
	City           string       `json:"city" bson:"city" db:"city"`
	State          string       `json:"state" bson:"state" db:"state"`
	Pincode        string       `json:"pincode" bson:"pincode" db:"pincode"`
	FacebookURL    string       `json:"facebook_url" bson:"facebook_url" db:"facebook_url"`
	InstagramURL   string       `json:"instagram_url" bson:"instagram_url" db:"instagram_url"`
	WhatsappURL    string       `json:"whatsapp_url" bson:"whatsapp_url" db:"whatsapp_url"`
	MapEmbedURL    string       `json:"map_embed_url" bson:"map_embed_url" db:"map_embed_url"`
	PageHeading    string       `json:"page_heading" bson:"page_heading" db:"page_heading"`
	PageSubheading string       `json:"page_subheading" bson:"page_subheading" db:"page_subheading"`
	UpdatedAt      time.Time    `json:"updated_at" bson:"updated_at" db:"updated_at"`
}

// DefaultContactInfo is served when the document has never been saved, and by
// clients whose fetch times out.
func DefaultContactInfo() *ContactInfo {
	return &ContactInfo{
		Phones:         []PhoneEntry{{Number: "+91 98400 00000", Label: "Bookings"}},
		Email:          "bookings@meenakshitravels.in",
		AddressLine:    "12 Anna Salai",
		City:           "Chennai",
		State:          "Tamil Nadu",
		Pincode:        "600002",
		PageHeading:    "Get in Touch",
		PageSubheading: "We are available around the clock for bookings and quotes.",
	}
}
