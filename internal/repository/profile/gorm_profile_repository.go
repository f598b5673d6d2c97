// File: internal/repository/profile/gorm_profile_repository.go
package profile

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/chadhq/chad-backend/internal/domain"
)

type gormProfileRepository struct {
	db *gorm.DB
}

func NewGormProfileRepository(db *gorm.DB) ProfileRepository {
	return &gormProfileRepository{db: db}
}

func (r *gormProfileRepository) Write(ctx context.Context, p *domain.Profile) error {
	if p.UserID == 0 {
		return errors.New("invalid user ID")
	}
	if err := p.IsValid(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return errors.New("database error writing profile")
	}
	return nil
}
