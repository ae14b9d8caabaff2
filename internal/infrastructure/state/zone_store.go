// Package state persists the session's selected zone between
// invocations. The record operations treat it as read-only; only the
// zone commands write it.
package state

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"

	"github.com/petralia/cfdnsctl/internal/domain"
	"github.com/petralia/cfdnsctl/internal/domain/entity"
	"github.com/petralia/cfdnsctl/internal/infrastructure/logger"
)

const filePermOwnerRW = 0o600

// Session is the on-disk shape of the per-user session file.
type Session struct {
	Zone entity.Zone `yaml:"zone"`
}

type ZoneStore struct {
	path  string
	flock *flock.Flock
}

func NewZoneStore(path string) *ZoneStore {
	return &ZoneStore{
		path:  path,
		flock: flock.New(path + ".lock"),
	}
}

// Load reads the session file. A missing file is an empty session, not
// an error.
func (s *ZoneStore) Load() (*Session, error) {
	if err := s.flock.Lock(); err != nil {
		return nil, fmt.Errorf("acquiring lock: %w", err)
	}
	defer s.flock.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Session{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", s.path, domain.ErrStateReadFailed)
	}

	var session Session
	if err := yaml.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.path, domain.ErrStateReadFailed)
	}
	return &session, nil
}

// Save writes the session file atomically via a temp file rename.
func (s *ZoneStore) Save(session *Session) error {
	if err := s.flock.Lock(); err != nil {
		return fmt.Errorf("acquiring lock: %w", err)
	}
	defer s.flock.Unlock()

	data, err := yaml.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshaling session: %w", domain.ErrStateWriteFailed)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(s.path), domain.ErrStateWriteFailed)
	}

	tmpPath := filepath.Join(filepath.Dir(s.path), "."+filepath.Base(s.path)+".tmp")
	if err := os.WriteFile(tmpPath, data, filePermOwnerRW); err != nil {
		return fmt.Errorf("writing %s: %w", tmpPath, domain.ErrStateWriteFailed)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming %s: %w", tmpPath, domain.ErrStateWriteFailed)
	}
	return nil
}

// CurrentZone implements the zone context the record service reads. An
// unreadable session degrades to "no zone selected".
func (s *ZoneStore) CurrentZone() (entity.Zone, bool) {
	session, err := s.Load()
	if err != nil {
		logger.Warn("ignoring unreadable session state", "path", s.path, "error", err)
		return entity.Zone{}, false
	}
	if session.Zone.ID == "" {
		return entity.Zone{}, false
	}
	return session.Zone, true
}
