package models

import (
	"time"
)

// Message is one line of a group's chat
type Message struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Content        string    `gorm:"type:text;not null" json:"content"`
	GroupID        uint      `gorm:"not null;index" json:"group_id"`
	SenderUsername string    `gorm:"size:255;not null" json:"sender_username"`
	CreatedAt      time.Time `json:"created_at"`
}
