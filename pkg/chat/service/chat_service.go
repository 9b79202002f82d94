package service

import (
	"context"

	"farmassist/entities"
	"farmassist/pkg/chat"
)

type ChatService interface {
	Ask(ctx context.Context, uid, message string) (*entities.ChatMessage, error)
	History(uid string, limit int) ([]entities.ChatMessage, error)
	Clear(uid string) error
	Suggestions() chat.Suggestions
}
