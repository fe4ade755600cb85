package repository

import (
	"context"

	"shareheart/internal/domain/entity"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]*entity.User, error)
	// CreateWithBonus creates the user and its signup credit atomically.
	// It returns the existing user unchanged when the id is already taken.
	CreateWithBonus(ctx context.Context, user *entity.User, bonus *entity.Transaction) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}
