package repository

import "meenakshitravels/models"

type TariffRepository interface {
	Create(t *models.TariffItem) error
	List(q models.ListQuery) ([]*models.TariffItem, int64, error)
	GetByID(id string) (*models.TariffItem, error)
	Update(t *models.TariffItem) error
	Delete(id string) error
	Count() (int64, error)
}
