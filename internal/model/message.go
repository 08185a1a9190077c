package model

import "time"

// Message is a message posted to an event's feed.
type Message struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"size:255;not null"`
	EventID   uint      `json:"event_id" gorm:"not null;index"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}
