package service

import (
	"context"
	"fmt"

	"eventhub/internal/model"
	"eventhub/internal/repository"
)

// MessageService exposes event message operations. Plain insert and select;
// the only guarantee is newest-first ordering on reads.
type MessageService interface {
	SendMessage(ctx context.Context, username string, eventID uint, text string) (*model.Message, error)
	ListEventMessages(ctx context.Context, eventID uint) ([]model.Message, error)
}

type messageService struct {
	repo repository.MessageRepository
}

// NewMessageService creates a new message service.
func NewMessageService(repo repository.MessageRepository) MessageService {
	return &messageService{repo: repo}
}

func (s *messageService) SendMessage(ctx context.Context, username string, eventID uint, text string) (*model.Message, error) {
	message := &model.Message{
		Username: username,
		EventID:  eventID,
		Message:  text,
	}
	if err := s.repo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	return message, nil
}

func (s *messageService) ListEventMessages(ctx context.Context, eventID uint) ([]model.Message, error) {
	return s.repo.ListByEvent(ctx, eventID)
}
