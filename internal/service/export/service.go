package export

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/seu-repo/passlog/internal/adapter/storage/csvstore"
	"github.com/seu-repo/passlog/internal/ports"
)

// Service packages the raw data directory for offline archival: the full
// event log plus every group roster, zipped as-is.
type Service struct {
	store *csvstore.Store
	log   *zap.Logger
}

func NewService(store *csvstore.Store, log *zap.Logger) ports.ExportService {
	return &Service{
		store: store,
		log:   log,
	}
}

func (s *Service) WriteArchive(ctx context.Context, w io.Writer) error {
	zw := zip.NewWriter(w)

	root := s.store.DataDir()
	// The walk holds the store lock so no append lands mid-row in the
	// archived log.
	err := s.store.WithLock(func() error {
		return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				// The per-invocation report workspaces are transient, skip them.
				if d.Name() == "temp" {
					return filepath.SkipDir
				}
				return nil
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			entry, err := zw.Create(filepath.ToSlash(rel))
			if err != nil {
				return err
			}
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()
			_, err = io.Copy(entry, f)
			return err
		})
	})
	if err != nil {
		zw.Close()
		return fmt.Errorf("failed to archive data dir: %w", err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize archive: %w", err)
	}
	s.log.Info("Data archive exported", zap.String("root", root))
	return nil
}

func (s *Service) EventsCSV(ctx context.Context) ([]byte, error) {
	b, err := os.ReadFile(s.store.EventsPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// No events yet: hand out just the header.
			return []byte(strings.Join([]string{"initials", "group", "id", "lastname", "firstname", "status", "timestamp"}, ",") + "\n"), nil
		}
		return nil, fmt.Errorf("failed to read event log: %w", err)
	}
	return b, nil
}
