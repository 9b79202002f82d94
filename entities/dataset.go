package entities

import "time"

type Dataset struct {
	DatasetID  uint             `gorm:"primaryKey" json:"dataset_id"`
	UserID     string           `gorm:"index" json:"user_id"`
	Name       string           `json:"name"`
	Type       string           `json:"type"` // csv|xlsx
	Size       int64            `json:"size"`
	Columns    []string         `json:"columns" gorm:"serializer:json"`
	Rows       []map[string]any `json:"rows" gorm:"serializer:json"`
	UploadedAt time.Time        `json:"uploaded_at"`
}
