// Package csvstore persists the event log, group rosters and the timeslot
// table as plain CSV/text files, the layout the recording front end already
// reads and writes. One process-wide mutex serializes every file access so a
// report generation always sees a consistent snapshot of the log.
package csvstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/seu-repo/passlog/pkg/config"
)

var eventHeader = []string{"initials", "group", "id", "lastname", "firstname", "status", "timestamp"}

type Store struct {
	dataDir       string
	groupsDir     string
	eventsPath    string
	timeslotsPath string

	mu  sync.Mutex
	log *zap.Logger
}

func NewStore(cfg config.StorageConfig, log *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(cfg.GroupsDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create groups dir: %w", err)
	}

	s := &Store{
		dataDir:       cfg.DataDir,
		groupsDir:     cfg.GroupsDir,
		eventsPath:    cfg.EventsFile,
		timeslotsPath: cfg.TimeslotsFile,
		log:           log,
	}

	log.Info("CSV store initialized",
		zap.String("data_dir", cfg.DataDir),
		zap.String("events_file", cfg.EventsFile),
	)
	return s, nil
}

func (s *Store) DataDir() string { return s.dataDir }

// WithLock runs fn while holding the store-wide mutex. Callers that read more
// than one file at once (the zip export walks the whole data dir) use it to
// get a consistent snapshot; a concurrent append would otherwise tear a CSV
// mid-row inside the archive.
func (s *Store) WithLock(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

// EventsPath exposes the log location for raw downloads and exports.
func (s *Store) EventsPath() string { return s.eventsPath }

// groupPath resolves a group code to its roster file, rejecting names that
// would escape the groups directory.
func (s *Store) groupPath(group string) (string, error) {
	if group == "" || strings.ContainsAny(group, `/\`) || strings.Contains(group, "..") {
		return "", fmt.Errorf("invalid group name %q", group)
	}
	return filepath.Join(s.groupsDir, group+".csv"), nil
}
