package entities

import "time"

type FarmerProfile struct {
	ProfileID      uint       `gorm:"primaryKey" json:"profile_id"`
	UserID         string     `json:"user_id" gorm:"uniqueIndex"`
	Name           string     `json:"name"`
	FarmSize       string     `json:"farm_size"` // Small|Medium|Large option text
	Location       string     `json:"location"`
	Experience     string     `json:"experience"`
	CropTypes      []string   `json:"crop_types" gorm:"serializer:json"`
	MainChallenges []string   `json:"main_challenges" gorm:"serializer:json"`
	SoilType       string     `json:"soil_type"`
	PlantingDate   *time.Time `json:"planting_date,omitempty"`
	PlantingSeason string     `json:"planting_season"`
	IrrigationType string     `json:"irrigation_type"`
	Language       string     `json:"language"` // english|tamil|hindi

	CreatedAt time.Time
	UpdatedAt time.Time
}
