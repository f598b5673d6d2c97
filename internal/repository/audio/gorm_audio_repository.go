// File: internal/repository/audio/gorm_audio_repository.go
package audio

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/chadhq/chad-backend/internal/domain"
)

var ErrBlobNotFound = errors.New("audio blob not found")

type gormAudioRepository struct {
	db *gorm.DB
}

func NewGormAudioRepository(db *gorm.DB) AudioRepository {
	return &gormAudioRepository{db: db}
}

func (r *gormAudioRepository) Save(ctx context.Context, blob *domain.AudioBlob) error {
	if blob.ID == "" {
		return errors.New("blob ID is required")
	}
	if len(blob.Data) == 0 {
		return errors.New("blob data is empty")
	}
	if err := r.db.WithContext(ctx).Create(blob).Error; err != nil {
		return errors.New("database error saving audio blob")
	}
	return nil
}

func (r *gormAudioRepository) FindByID(ctx context.Context, id string) (*domain.AudioBlob, error) {
	if id == "" {
		return nil, errors.New("blob ID is required")
	}
	var blob domain.AudioBlob
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&blob).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlobNotFound
		}
		return nil, errors.New("database error finding audio blob")
	}
	return &blob, nil
}

func (r *gormAudioRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("blob ID is required")
	}
	result := r.db.WithContext(ctx).Delete(&domain.AudioBlob{}, "id = ?", id)
	if result.Error != nil {
		return errors.New("database error deleting audio blob")
	}
	if result.RowsAffected == 0 {
		return ErrBlobNotFound
	}
	return nil
}
