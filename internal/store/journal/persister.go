// File: internal/store/journal/persister.go
package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chadhq/chad-backend/internal/domain"
	"github.com/chadhq/chad-backend/internal/services"
)

// Snapshot is the full serializable journal state, keyed by user id.
type Snapshot map[uint][]domain.JournalEntry

// Persister mirrors the journal collection to durable storage. The whole
// snapshot is overwritten on every mutation; there is no partial-update
// format.
type Persister interface {
	Save(snap Snapshot) error
	Load() (Snapshot, error)
}

// FilePersister writes the snapshot as one JSON document.
type FilePersister struct {
	path   string
	logger services.Logger
}

func NewFilePersister(path string, logger services.Logger) *FilePersister {
	return &FilePersister{path: path, logger: logger}
}

// Save writes the snapshot atomically via a temp file and rename.
func (p *FilePersister) Save(snap Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encoding journal snapshot: %w", err)
	}

	tmp := p.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return fmt.Errorf("creating snapshot directory: %w", err)
	}
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing journal snapshot: %w", err)
	}
	if err := os.Rename(tmp, p.path); err != nil {
		return fmt.Errorf("replacing journal snapshot: %w", err)
	}
	return nil
}

// Load reads the snapshot back. A missing file is a normal first run and a
// corrupt file is treated as empty; neither stops the application.
func (p *FilePersister) Load() (Snapshot, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Snapshot{}, nil
		}
		return nil, fmt.Errorf("reading journal snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		p.logger.Warn("journal snapshot is corrupt, starting empty",
			"path", p.path, "error", err.Error())
		return Snapshot{}, nil
	}
	if snap == nil {
		snap = Snapshot{}
	}
	return snap, nil
}
