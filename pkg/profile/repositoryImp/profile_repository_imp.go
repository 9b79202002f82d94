package repositoryImp

import (
	"errors"

	"farmassist/entities"
	"farmassist/pkg/profile"
	"farmassist/pkg/profile/repository"

	"gorm.io/gorm"
)

type profileRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ProfileRepository { return &profileRepo{db} }

// Upsert replaces the user's profile, keeping its id and creation time.
func (r *profileRepo) Upsert(p *entities.FarmerProfile) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var cur entities.FarmerProfile
		err := tx.Where("user_id = ?", p.UserID).First(&cur).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(p).Error
		case err != nil:
			return err
		}
		p.ProfileID = cur.ProfileID
		p.CreatedAt = cur.CreatedAt
		return tx.Save(p).Error
	})
}

func (r *profileRepo) FindByUser(uid string) (*entities.FarmerProfile, error) {
	var p entities.FarmerProfile
	if err := r.db.Where("user_id = ?", uid).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, profile.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}
