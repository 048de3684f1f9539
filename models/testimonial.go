package models

import "time"

const (
	TestimonialPublished = "published"
	TestimonialPending   = "pending"
	TestimonialRejected  = "rejected"
)

type Testimonial struct {
	ID          string    `json:"id" bson:"_id,omitempty" db:"id"`
	Name        string    `json:"name" bson:"name" db:"name" validate:"required"`
	Location    string    `json:"location" bson:"location" db:"location"`
	Avatar      string    `json:"avatar" bson:"avatar" db:"avatar"`
	Content     string    `json:"content" bson:"content" db:"content" validate:"required"`
	Rating      int       `json:"rating" bson:"rating" db:"rating" validate:"required,min=1,max=5"`
	ServiceType string    `json:"service_type" bson:"service_type" db:"service_type"`
	Date        time.Time `json:"date" bson:"date" db:"date"`
	Status      string    `json:"status" bson:"status" db:"status" validate:"omitempty,oneof=published pending rejected"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at" db:"created_at"`
}
