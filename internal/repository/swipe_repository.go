package repository

import (
	"context"

	"github.com/campusmeet/campusmeet-backend/internal/domain"
)

type SwipeRepository interface {
	// Upsert inserts or overwrites the swipe keyed by
	// (swiper, swiped, context) and fills in ID/CreatedAt.
	Upsert(ctx context.Context, swipe *domain.Swipe) error
	GetByUsers(ctx context.Context, swiperID, swipedID string, mctx domain.Context) (*domain.Swipe, error)
	// FindLiked reports a liked=true swipe for the given direction, used for
	// the mutual-reciprocation check.
	FindLiked(ctx context.Context, swiperID, swipedID string, mctx domain.Context) (*domain.Swipe, error)
	ListBySwiper(ctx context.Context, swiperID string, mctx domain.Context) ([]*domain.Swipe, error)
	ListLikesReceived(ctx context.Context, swipedID string, mctx domain.Context) ([]*domain.Swipe, error)
}
