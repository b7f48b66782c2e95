package repository

import (
	"context"

	"github.com/campusmeet/campusmeet-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
