package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"eventhub/internal/cache"
	apperrors "eventhub/internal/errors"
	"eventhub/internal/model"
	"eventhub/internal/repository"
)

const eventCacheTTL = 5 * time.Minute

// EventService exposes event catalog operations.
type EventService interface {
	CreateEvent(ctx context.Context, event *model.Event) (uint, error)
	UpdateEvent(ctx context.Context, event *model.Event) error
	DeleteEvent(ctx context.Context, id uint) error
	GetEvent(ctx context.Context, id uint) (*model.Event, error)
	ListEvents(ctx context.Context) ([]model.Event, error)
}

type eventService struct {
	repo  repository.EventRepository
	cache *cache.Client
}

// NewEventService builds an EventService with repository and cache.
func NewEventService(repo repository.EventRepository, cache *cache.Client) EventService {
	return &eventService{repo: repo, cache: cache}
}

// CreateEvent persists a new event after checking the time ordering invariant.
func (s *eventService) CreateEvent(ctx context.Context, event *model.Event) (uint, error) {
	if !event.StartTime.Before(event.EndTime) {
		return 0, apperrors.ErrInvalidTimeRange
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return 0, fmt.Errorf("create event: %w", err)
	}
	return event.ID, nil
}

// UpdateEvent rewrites an existing event's fields.
func (s *eventService) UpdateEvent(ctx context.Context, event *model.Event) error {
	if !event.StartTime.Before(event.EndTime) {
		return apperrors.ErrInvalidTimeRange
	}
	rows, err := s.repo.Update(ctx, event)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if rows == 0 {
		// Without clientFoundRows in the DSN, mysql reports rows changed
		// rather than rows matched, so a resubmitted update with identical
		// values also lands here. Only a missing id is an error.
		if _, err := s.repo.FindByID(ctx, event.ID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrEventNotFound
			}
			return fmt.Errorf("find event: %w", err)
		}
	}
	_ = s.cache.Delete(ctx, cache.EventKey(event.ID))
	return nil
}

// DeleteEvent removes an event. A second delete of the same id reports not
// found rather than succeeding again.
func (s *eventService) DeleteEvent(ctx context.Context, id uint) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrEventNotFound
	}
	_ = s.cache.Delete(ctx, cache.EventKey(id))
	return nil
}

func (s *eventService) GetEvent(ctx context.Context, id uint) (*model.Event, error) {
	if data, _ := s.cache.Get(ctx, cache.EventKey(id)); data != nil {
		var cached model.Event
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}

	if payload, err := json.Marshal(event); err == nil {
		_ = s.cache.Set(ctx, cache.EventKey(id), payload, eventCacheTTL)
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]model.Event, error) {
	return s.repo.List(ctx)
}
