package repository

import "meenakshitravels/models"

type ServiceRepository interface {
	Create(s *models.Service) error
	List(q models.ListQuery) ([]*models.Service, int64, error)
	GetByID(id string) (*models.Service, error)
	Update(s *models.Service) error
	Delete(id string) error
	CountByStatus(status string) (int64, error)
}
