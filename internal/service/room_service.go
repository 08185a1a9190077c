package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "eventhub/internal/errors"
	"eventhub/internal/model"
	"eventhub/internal/repository"
)

// RoomService exposes room catalog and room assignment operations.
type RoomService interface {
	CreateRoom(ctx context.Context, name string) (uint, error)
	ListRooms(ctx context.Context) ([]model.Room, error)
	AssignUser(ctx context.Context, username string, roomID uint) error
	ListRoomUsers(ctx context.Context, roomID uint) ([]string, error)
}

type roomService struct {
	roomRepo       repository.RoomRepository
	userRepo       repository.UserRepository
	membershipRepo repository.MembershipRepository
}

// NewRoomService creates a new room service.
func NewRoomService(roomRepo repository.RoomRepository, userRepo repository.UserRepository, membershipRepo repository.MembershipRepository) RoomService {
	return &roomService{
		roomRepo:       roomRepo,
		userRepo:       userRepo,
		membershipRepo: membershipRepo,
	}
}

func (s *roomService) CreateRoom(ctx context.Context, name string) (uint, error) {
	room := &model.Room{Name: name}
	if err := s.roomRepo.Create(ctx, room); err != nil {
		return 0, fmt.Errorf("create room: %w", err)
	}
	return room.ID, nil
}

func (s *roomService) ListRooms(ctx context.Context) ([]model.Room, error) {
	return s.roomRepo.List(ctx)
}

// AssignUser adds the user to a room. The room contract is weaker than the
// event one on purpose: the user must exist, but the room id is taken on
// faith and repeated assignments are not rejected.
func (s *roomService) AssignUser(ctx context.Context, username string, roomID uint) error {
	if _, err := s.userRepo.FindByUsername(ctx, username); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	membership := &model.RoomMembership{RoomID: roomID, Username: username}
	if err := s.membershipRepo.CreateRoomMembership(ctx, membership); err != nil {
		return fmt.Errorf("create room membership: %w", err)
	}
	return nil
}

func (s *roomService) ListRoomUsers(ctx context.Context, roomID uint) ([]string, error) {
	return s.membershipRepo.ListRoomUsernames(ctx, roomID)
}
