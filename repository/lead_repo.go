package repository

import "meenakshitravels/models"

type LeadRepository interface {
	Create(l *models.Lead) error
	List(q models.ListQuery) ([]*models.Lead, int64, error)
	GetByID(id string) (*models.Lead, error)
	Update(l *models.Lead) error
	Delete(id string) error
	CountByStatus(status string) (int64, error)
	Count() (int64, error)
}
