package model

import "time"

// EventMembership links a user to an event. The composite unique index is the
// correctness mechanism for duplicate registrations: concurrent identical
// inserts race past the existence pre-check, but only one can win the index.
type EventMembership struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex:idx_event_user;not null"`
	EventID   uint      `json:"event_id" gorm:"uniqueIndex:idx_event_user;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps the table shared with the other services.
func (EventMembership) TableName() string { return "event_users" }

// RoomMembership links a room to a username. Unlike the event path there is
// deliberately no uniqueness constraint and no room existence check; the room
// assignment contract is weaker and repeated assignments simply stack up.
type RoomMembership struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	RoomID    uint      `json:"room_id" gorm:"not null;index"`
	Username  string    `json:"username" gorm:"size:255;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps the table shared with the other services.
func (RoomMembership) TableName() string { return "room_users" }
