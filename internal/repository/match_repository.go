package repository

import (
	"context"

	"github.com/campusmeet/campusmeet-backend/internal/domain"
)

type MatchRepository interface {
	Create(ctx context.Context, match *domain.Match) error
	GetByID(ctx context.Context, id string) (*domain.Match, error)
	// GetByUsers looks the pair up in canonical order; callers may pass the
	// ids in either orientation.
	GetByUsers(ctx context.Context, user1ID, user2ID string, mctx domain.Context) (*domain.Match, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Match, error)
	UpdateIcebreakers(ctx context.Context, id string, icebreakers []string) error
	Delete(ctx context.Context, id string) error
}
