package repository

import (
	"context"

	"gorm.io/gorm"

	"eventhub/internal/model"
)

// MembershipRepository owns the user<->event and room<->user relations. It
// references users, events and rooms by id only; existence of either side is
// the caller's concern, not a foreign-key guarantee.
type MembershipRepository interface {
	// CreateEventMembership inserts the (user, event) pair. The unique index
	// on the pair makes the insert the authoritative duplicate check; a
	// violation comes back as gorm.ErrDuplicatedKey.
	CreateEventMembership(ctx context.Context, m *model.EventMembership) error
	// DeleteEventMembership removes the pair and reports how many rows matched.
	DeleteEventMembership(ctx context.Context, userID, eventID uint) (int64, error)
	EventMembershipExists(ctx context.Context, userID, eventID uint) (bool, error)
	ListEventUsernames(ctx context.Context, eventID uint) ([]string, error)

	CreateRoomMembership(ctx context.Context, m *model.RoomMembership) error
	ListRoomUsernames(ctx context.Context, roomID uint) ([]string, error)
}

type membershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository.
func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &membershipRepository{db: db}
}

func (r *membershipRepository) CreateEventMembership(ctx context.Context, m *model.EventMembership) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *membershipRepository) DeleteEventMembership(ctx context.Context, userID, eventID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		Delete(&model.EventMembership{})
	return res.RowsAffected, res.Error
}

func (r *membershipRepository) EventMembershipExists(ctx context.Context, userID, eventID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.EventMembership{}).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *membershipRepository) ListEventUsernames(ctx context.Context, eventID uint) ([]string, error) {
	var usernames []string
	err := r.db.WithContext(ctx).Model(&model.EventMembership{}).
		Joins("JOIN users ON users.id = event_users.user_id").
		Where("event_users.event_id = ?", eventID).
		Pluck("users.username", &usernames).Error
	if err != nil {
		return nil, err
	}
	return usernames, nil
}

func (r *membershipRepository) CreateRoomMembership(ctx context.Context, m *model.RoomMembership) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *membershipRepository) ListRoomUsernames(ctx context.Context, roomID uint) ([]string, error) {
	var usernames []string
	err := r.db.WithContext(ctx).Model(&model.RoomMembership{}).
		Where("room_id = ?", roomID).
		Pluck("username", &usernames).Error
	if err != nil {
		return nil, err
	}
	return usernames, nil
}
