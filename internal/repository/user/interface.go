// File: internal/repository/user/interface.go
package user

import (
	"context"

	"github.com/chadhq/chad-backend/internal/domain"
)

// UserRepository handles account data operations.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, userID uint) error
}
