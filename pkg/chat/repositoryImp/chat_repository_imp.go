package repositoryImp

import (
	"slices"

	"farmassist/entities"
	"farmassist/pkg/chat/repository"

	"gorm.io/gorm"
)

type chatRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ChatRepository { return &chatRepo{db} }

func (r *chatRepo) Create(m *entities.ChatMessage) error { return r.db.Create(m).Error }

// Recent returns the last limit messages, oldest first.
func (r *chatRepo) Recent(uid string, limit int) ([]entities.ChatMessage, error) {
	var out []entities.ChatMessage
	if err := r.db.Where("user_id = ?", uid).Order("message_id DESC").Limit(limit).Find(&out).Error; err != nil {
		return nil, err
	}
	slices.Reverse(out)
	return out, nil
}

func (r *chatRepo) DeleteByUser(uid string) (int64, error) {
	res := r.db.Where("user_id = ?", uid).Delete(&entities.ChatMessage{})
	return res.RowsAffected, res.Error
}
