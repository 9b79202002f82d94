package repositoryImp

import (
	"farmassist/entities"
	"farmassist/pkg/dataset/repository"

	"gorm.io/gorm"
)

type datasetRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.DatasetRepository { return &datasetRepo{db} }

func (r *datasetRepo) Create(d *entities.Dataset) error { return r.db.Create(d).Error }

// ListByUser returns datasets in upload order, which is the order the
// predictor concatenates their rows.
func (r *datasetRepo) ListByUser(uid string) ([]entities.Dataset, error) {
	var out []entities.Dataset
	if err := r.db.Where("user_id = ?", uid).Order("dataset_id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *datasetRepo) Delete(id uint, uid string) (bool, error) {
	res := r.db.Where("dataset_id = ? AND user_id = ?", id, uid).Delete(&entities.Dataset{})
	return res.RowsAffected > 0, res.Error
}
