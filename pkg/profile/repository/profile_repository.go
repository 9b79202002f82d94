package repository

import "farmassist/entities"

type ProfileRepository interface {
	Upsert(p *entities.FarmerProfile) error
	FindByUser(uid string) (*entities.FarmerProfile, error)
}
