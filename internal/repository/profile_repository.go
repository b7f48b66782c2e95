package repository

import (
	"context"

	"github.com/campusmeet/campusmeet-backend/internal/domain"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	// List returns the full roster in stable source order.
	List(ctx context.Context) ([]*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
	Delete(ctx context.Context, userID string) error
	AddBlocked(ctx context.Context, userID, blockedID string) error
	SetVerification(ctx context.Context, userID string, schoolVerified, phoneVerified *bool) error
}
