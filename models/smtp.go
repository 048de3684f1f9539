package models

import "time"

type SMTPSettings struct {
	ID          string    `json:"id" bson:"_id,omitempty" db:"id"`
	Host        string    `json:"host" bson:"host" db:"host" validate:"required"`
	Port        int       `json:"port" bson:"port" db:"port" validate:"required,min=1,max=65535"`
	Username    string    `json:"username" bson:"username" db:"username"`
	Password    string    `json:"password" bson:"password" db:"password"`
	FromName    string    `json:"from_name" bson:"from_name" db:"from_name"`
	FromEmail   string    `json:"from_email" bson:"from_email" db:"from_email" validate:"required,email"`
	UseTLS      bool      `json:"use_tls" bson:"use_tls" db:"use_tls"`
	NotifyEmail string    `json:"notify_email" bson:"notify_email" db:"notify_email" validate:"omitempty,email"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at" db:"updated_at"`
}
