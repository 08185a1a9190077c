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

// RegistrationService enforces the user<->event membership invariants:
// both sides must exist at write time and a pair is unique. The store has no
// foreign keys across the services, so existence is re-checked here on every
// write instead of being assumed from an earlier read.
type RegistrationService interface {
	RegisterUserToEvent(ctx context.Context, userID, eventID uint) error
	UnregisterUserFromEvent(ctx context.Context, userID, eventID uint) error
	CheckRegistrationStatus(ctx context.Context, userID, eventID uint) (bool, error)
	ListEventUsers(ctx context.Context, eventID uint) ([]string, error)
}

type registrationService struct {
	userRepo       repository.UserRepository
	membershipRepo repository.MembershipRepository
}

// NewRegistrationService creates a new registration service.
func NewRegistrationService(userRepo repository.UserRepository, membershipRepo repository.MembershipRepository) RegistrationService {
	return &registrationService{
		userRepo:       userRepo,
		membershipRepo: membershipRepo,
	}
}

// RegisterUserToEvent adds the (user, event) pair. Two concurrent identical
// calls can both pass the existence pre-check; the unique index on the pair
// decides the race, and the loser is told it was already registered.
func (s *registrationService) RegisterUserToEvent(ctx context.Context, userID, eventID uint) error {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	registered, err := s.membershipRepo.EventMembershipExists(ctx, userID, eventID)
	if err != nil {
		return fmt.Errorf("check registration: %w", err)
	}
	if registered {
		return apperrors.ErrAlreadyRegistered
	}

	membership := &model.EventMembership{UserID: userID, EventID: eventID}
	if err := s.membershipRepo.CreateEventMembership(ctx, membership); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrAlreadyRegistered
		}
		return fmt.Errorf("create membership: %w", err)
	}
	return nil
}

// UnregisterUserFromEvent removes the pair. The delete's row count is the
// registration check; a pair that was never there reports not registered.
func (s *registrationService) UnregisterUserFromEvent(ctx context.Context, userID, eventID uint) error {
	rows, err := s.membershipRepo.DeleteEventMembership(ctx, userID, eventID)
	if err != nil {
		return fmt.Errorf("delete membership: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrNotRegistered
	}
	return nil
}

// CheckRegistrationStatus is a pure read; an absent pair is a valid answer,
// not an error.
func (s *registrationService) CheckRegistrationStatus(ctx context.Context, userID, eventID uint) (bool, error) {
	return s.membershipRepo.EventMembershipExists(ctx, userID, eventID)
}

func (s *registrationService) ListEventUsers(ctx context.Context, eventID uint) ([]string, error) {
	return s.membershipRepo.ListEventUsernames(ctx, eventID)
}
