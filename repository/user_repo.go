package repository

import "meenakshitravels/models"

// UserRepository defines the interface for admin user operations
type UserRepository interface {
	CreateUser(user *models.AdminUser) error
	GetUserByEmail(email string) (*models.AdminUser, error)
}
