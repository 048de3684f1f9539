package repository

import "meenakshitravels/models"

type PageRepository interface {
	Create(p *models.Page) error
	List(q models.ListQuery) ([]*models.Page, int64, error)
	GetBySlug(slug string) (*models.Page, error)
	GetByID(id string) (*models.Page, error)
	Update(p *models.Page) error
	Delete(id string) error
}
