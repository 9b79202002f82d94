package repository

import "farmassist/entities"

type ChatRepository interface {
	Create(m *entities.ChatMessage) error
	Recent(uid string, limit int) ([]entities.ChatMessage, error)
	DeleteByUser(uid string) (int64, error)
}
