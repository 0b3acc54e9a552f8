package csvstore

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/seu-repo/passlog/internal/domain"
	"github.com/seu-repo/passlog/internal/ports"
)

type EventRepository struct {
	store *Store
	log   *zap.Logger
}

func NewEventRepository(store *Store, log *zap.Logger) ports.EventRepository {
	return &EventRepository{
		store: store,
		log:   log,
	}
}

func (r *EventRepository) Append(ctx context.Context, rows []domain.EventRow) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	fresh := false
	if _, err := os.Stat(r.store.eventsPath); errors.Is(err, os.ErrNotExist) {
		fresh = true
	}

	f, err := os.OpenFile(r.store.eventsPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open event log: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if fresh {
		if err := w.Write(eventHeader); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	for _, row := range rows {
		if err := w.Write(rowFields(row)); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

func (r *EventRepository) FindByPerson(ctx context.Context, group, personID string) ([]domain.EventRow, error) {
	rows, err := r.readAll()
	if err != nil {
		return nil, err
	}

	var out []domain.EventRow
	for _, row := range rows {
		if row.Group == group && row.PersonID == personID {
			out = append(out, row)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no log for %s/%s: %w", group, personID, domain.ErrNotFound)
	}
	return out, nil
}

func (r *EventRepository) All(ctx context.Context) ([]domain.EventRow, error) {
	return r.readAll()
}

func (r *EventRepository) Update(ctx context.Context, match, update domain.EventRow) (int, error) {
	return r.rewrite(func(row domain.EventRow) (domain.EventRow, bool) {
		if row == match {
			return update, true
		}
		return row, true
	})
}

func (r *EventRepository) Delete(ctx context.Context, match domain.EventRow) (int, error) {
	return r.rewrite(func(row domain.EventRow) (domain.EventRow, bool) {
		if row == match {
			return row, false
		}
		return row, true
	})
}

func (r *EventRepository) readAll() ([]domain.EventRow, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.readRowsLocked()
}

// readRowsLocked returns every structurally sound row of the log. Rows with a
// wrong field count are skipped here; timestamp validity is a caller policy.
// Callers must hold the store lock.
func (r *EventRepository) readRowsLocked() ([]domain.EventRow, error) {
	f, err := os.Open(r.store.eventsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open event log: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	var rows []domain.EventRow
	first := true
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event log: %w", err)
		}
		if first {
			first = false
			if isHeader(rec) {
				continue
			}
		}
		if len(rec) != len(eventHeader) {
			r.log.Warn("Skipping malformed event row", zap.Int("fields", len(rec)))
			continue
		}
		rows = append(rows, domain.EventRow{
			Initials:  rec[0],
			Group:     rec[1],
			PersonID:  rec[2],
			LastName:  rec[3],
			FirstName: rec[4],
			Status:    rec[5],
			Timestamp: rec[6],
		})
	}
	return rows, nil
}

// rewrite reads the whole log, maps every row through fn (keep=false drops
// it) and atomically replaces the file. Returns the number of changed rows.
func (r *EventRepository) rewrite(fn func(domain.EventRow) (domain.EventRow, bool)) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rows, err := r.readRowsLocked()
	if err != nil {
		return 0, err
	}

	changed := 0
	out := make([]domain.EventRow, 0, len(rows))
	for _, row := range rows {
		mapped, keep := fn(row)
		if !keep {
			changed++
			continue
		}
		if mapped != row {
			changed++
		}
		out = append(out, mapped)
	}
	if changed == 0 {
		return 0, nil
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.store.eventsPath), "events-*.csv")
	if err != nil {
		return 0, fmt.Errorf("failed to create temp log: %w", err)
	}
	w := csv.NewWriter(tmp)
	if err := w.Write(eventHeader); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return 0, err
	}
	for _, row := range out {
		if err := w.Write(rowFields(row)); err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
			return 0, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return 0, err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return 0, err
	}
	if err := os.Rename(tmp.Name(), r.store.eventsPath); err != nil {
		os.Remove(tmp.Name())
		return 0, fmt.Errorf("failed to replace event log: %w", err)
	}
	return changed, nil
}

func rowFields(row domain.EventRow) []string {
	return []string{row.Initials, row.Group, row.PersonID, row.LastName, row.FirstName, row.Status, row.Timestamp}
}

func isHeader(rec []string) bool {
	if len(rec) != len(eventHeader) {
		return false
	}
	for i, h := range eventHeader {
		if rec[i] != h {
			return false
		}
	}
	return true
}
