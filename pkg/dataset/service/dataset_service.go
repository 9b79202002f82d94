package service

import "farmassist/entities"

type DatasetService interface {
	Upload(uid, filename string, data []byte) (*entities.Dataset, error)
	List(uid string) ([]entities.Dataset, error)
	Delete(uid string, id uint) error
	Insights(uid string) ([]string, error)
}
