package model

import "time"

// Event represents a scheduled event users can register to.
// StartTime must be strictly before EndTime; the service layer rejects
// anything else before it reaches the store.
type Event struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Thumbnail   string    `json:"thumbnail" gorm:"size:1024;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	StartTime   time.Time `json:"start_time" gorm:"not null"`
	EndTime     time.Time `json:"end_time" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
