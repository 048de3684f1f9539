package models

import "time"

const (
	LeadNew       = "new"
	LeadContacted = "contacted"
	LeadConverted = "converted"
	LeadClosed    = "closed"
)

// Lead is a quote/contact submission captured from a public form.
type Lead struct {
	ID                     string    `json:"id" bson:"_id,omitempty" db:"id"`
	FullName               string    `json:"full_name" bson:"full_name" db:"full_name" validate:"required"`
	Email                  string    `json:"email" bson:"email" db:"email" validate:"required,email"`
	Phone                  string    `json:"phone" bson:"phone" db:"phone" validate:"required"`
	Company                string    `json:"company" bson:"company" db:"company"`
	Service                string    `json:"service" bson:"service" db:"service"`
	Message                string    `json:"message" bson:"message" db:"message"`
	ProjectDescription     string    `json:"project_description" bson:"project_description" db:"project_description"`
	AdditionalRequirements string    `json:"additional_requirements" bson:"additional_requirements" db:"additional_requirements"`
	FormSource             string    `json:"form_source" bson:"form_source" db:"form_source"`
	Status                 string    `json:"status" bson:"status" db:"status" validate:"omitempty,oneof=new contacted converted closed"`
	QuotePDFURL            string    `json:"quote_pdf_url,omitempty" bson:"quote_pdf_url" db:"quote_pdf_url"`
	SubmittedAt            time.Time `json:"submitted_at" bson:"submitted_at" db:"submitted_at"`
}
