package models

import "time"

// DefaultChatSession groups messages sent outside an explicit session.
const DefaultChatSession = "default"

type ChatMessage struct {
	ID        string `json:"id" gorm:"primaryKey;size:255"`
	UserID    string `json:"user_id" gorm:"not null;size:255;index"`
	Content   string `json:"content" gorm:"type:text;not null"`
	IsAI      bool   `json:"is_ai" gorm:"not null;default:false"`
	SessionID string `json:"session_id" gorm:"not null;size:255;default:default;index"`

	CreatedAt time.Time `json:"created_at"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
