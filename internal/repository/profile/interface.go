// File: internal/repository/profile/interface.go
package profile

import (
	"context"

	"github.com/chadhq/chad-backend/internal/domain"
)

// ProfileRepository is the document-store boundary for user profiles.
// The profile is written exactly once at sign-up and never read back here,
// so the interface is deliberately write-only.
type ProfileRepository interface {
	Write(ctx context.Context, p *domain.Profile) error
}
