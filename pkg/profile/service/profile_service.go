package service

import (
	"farmassist/entities"
	"farmassist/pkg/compat"
)

// CropReport is the compatibility verdict for one crop the farmer grows.
type CropReport struct {
	Crop   string        `json:"crop"`
	Result compat.Result `json:"result"`
}

type ProfileService interface {
	Save(uid string, p *entities.FarmerProfile) (*entities.FarmerProfile, []CropReport, error)
	Get(uid string) (*entities.FarmerProfile, error)
	Compatibility(uid string) ([]CropReport, error)
}
