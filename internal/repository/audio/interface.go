// File: internal/repository/audio/interface.go
package audio

import (
	"context"

	"github.com/chadhq/chad-backend/internal/domain"
)

// AudioRepository stores finalized recording blobs.
type AudioRepository interface {
	Save(ctx context.Context, blob *domain.AudioBlob) error
	FindByID(ctx context.Context, id string) (*domain.AudioBlob, error)
	Delete(ctx context.Context, id string) error
}
