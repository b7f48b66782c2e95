package repository

import (
	"context"

	"github.com/campusmeet/campusmeet-backend/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) error
	// ListByMatch returns messages ascending by created_at.
	ListByMatch(ctx context.Context, matchID string) ([]*domain.Message, error)
	DeleteByMatch(ctx context.Context, matchID string) error
}
