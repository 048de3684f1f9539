package repository

import "meenakshitravels/models"

type TestimonialRepository interface {
	Create(t *models.Testimonial) error
	List(q models.ListQuery) ([]*models.Testimonial, int64, error)
	GetByID(id string) (*models.Testimonial, error)
	Update(t *models.Testimonial) error
	Delete(id string) error
	CountByStatus(status string) (int64, error)
}
