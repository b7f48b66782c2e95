package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/campusmeet/campusmeet-backend/internal/domain"
	"github.com/campusmeet/campusmeet-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type swipeRepository struct {
	db *sqlx.DB
}

func NewSwipeRepository(db *sqlx.DB) repository.SwipeRepository {
	return &swipeRepository{db: db}
}

func (r *swipeRepository) Upsert(ctx context.Context, swipe *domain.Swipe) error {
	if swipe.ID == "" {
		swipe.ID = uuid.NewString()
	}
	// Natural key is (swiper_id, swiped_id, context): re-swiping overwrites
	// the previous decision instead of appending.
	query := `
		INSERT INTO swipes (id, swiper_id, swiped_id, context, liked)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (swiper_id, swiped_id, context)
		DO UPDATE SET liked = EXCLUDED.liked
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		swipe.ID, swipe.SwiperID, swipe.SwipedID, swipe.Context, swipe.Liked,
	).Scan(&swipe.ID, &swipe.CreatedAt)
}

func (r *swipeRepository) GetByUsers(ctx context.Context, swiperID, swipedID string, mctx domain.Context) (*domain.Swipe, error) {
	var swipe domain.Swipe
	query := `
		SELECT id, swiper_id, swiped_id, context, liked, created_at
		FROM swipes
		WHERE swiper_id = $1 AND swiped_id = $2 AND context = $3
	`
	err := r.db.GetContext(ctx, &swipe, query, swiperID, swipedID, mctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSwipeNotFound
		}
		return nil, err
	}
	return &swipe, nil
}

func (r *swipeRepository) FindLiked(ctx context.Context, swiperID, swipedID string, mctx domain.Context) (*domain.Swipe, error) {
	var swipe domain.Swipe
	query := `
		SELECT id, swiper_id, swiped_id, context, liked, created_at
		FROM swipes
		WHERE swiper_id = $1 AND swiped_id = $2 AND context = $3 AND liked = true
	`
	err := r.db.GetContext(ctx, &swipe, query, swiperID, swipedID, mctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSwipeNotFound
		}
		return nil, err
	}
	return &swipe, nil
}

func (r *swipeRepository) ListBySwiper(ctx context.Context, swiperID string, mctx domain.Context) ([]*domain.Swipe, error) {
	var swipes []*domain.Swipe
	query := `
		SELECT id, swiper_id, swiped_id, context, liked, created_at
		FROM swipes
		WHERE swiper_id = $1 AND context = $2
		ORDER BY created_at ASC
	`
	err := r.db.SelectContext(ctx, &swipes, query, swiperID, mctx)
	return swipes, err
}

func (r *swipeRepository) ListLikesReceived(ctx context.Context, swipedID string, mctx domain.Context) ([]*domain.Swipe, error) {
	var swipes []*domain.Swipe
	query := `
		SELECT id, swiper_id, swiped_id, context, liked, created_at
		FROM swipes
		WHERE swiped_id = $1 AND context = $2 AND liked = true
		ORDER BY created_at DESC
	`
	err := r.db.SelectContext(ctx, &swipes, query, swipedID, mctx)
	return swipes, err
}
