package entities

import "time"

const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// Source of a bot reply.
const (
	SourcePrediction = "prediction"
	SourceLLM        = "llm"
	SourceFallback   = "fallback"
)

type ChatMessage struct {
	MessageID uint      `gorm:"primaryKey" json:"message_id"`
	UserID    string    `gorm:"index" json:"user_id"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	Source    string    `json:"source,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	// not persisted: knowledge base articles used for the reply
	References []ArticleRef `gorm:"-" json:"references,omitempty"`
}

type ArticleRef struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}
