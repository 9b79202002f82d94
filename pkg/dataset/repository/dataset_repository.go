package repository

import "farmassist/entities"

type DatasetRepository interface {
	Create(d *entities.Dataset) error
	ListByUser(uid string) ([]entities.Dataset, error)
	Delete(id uint, uid string) (bool, error)
}
