package models

import "time"

type Service struct {
	ID           string    `json:"id" bson:"_id,omitempty" db:"id"`
	Title        string    `json:"title" bson:"title" db:"title" validate:"required"`
	Description  string    `json:"description" bson:"description" db:"description"`
	Features     []string  `json:"features" bson:"features" db:"features"`
	Applications []string  `json:"applications" bson:"applications" db:"applications"`
	Status       string    `json:"status" bson:"status" db:"status" validate:"omitempty,oneof=active inactive"`
	Featured     bool      `json:"featured" bson:"featured" db:"featured"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at" db:"created_at"`
}
