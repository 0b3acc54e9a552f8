package csvstore

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/seu-repo/passlog/internal/domain"
	"github.com/seu-repo/passlog/internal/ports"
)

type GroupRepository struct {
	store *Store
	log   *zap.Logger
}

func NewGroupRepository(store *Store, log *zap.Logger) ports.GroupRepository {
	return &GroupRepository{
		store: store,
		log:   log,
	}
}

func (r *GroupRepository) Groups(ctx context.Context) ([]string, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	entries, err := os.ReadDir(r.store.groupsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read groups dir: %w", err)
	}

	groups := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".csv") {
			continue
		}
		groups = append(groups, strings.TrimSuffix(e.Name(), ".csv"))
	}
	sort.Strings(groups)
	return groups, nil
}

func (r *GroupRepository) Members(ctx context.Context, group string) ([]domain.Member, error) {
	path, err := r.store.groupPath(group)
	if err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("group %s: %w", group, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to open roster: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	// Column order follows the header row, like a dict reader.
	cols := map[string]int{}
	for i, name := range records[0] {
		cols[strings.TrimSpace(strings.ToLower(name))] = i
	}

	field := func(rec []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	members := make([]domain.Member, 0, len(records)-1)
	for _, rec := range records[1:] {
		members = append(members, domain.Member{
			ID:        field(rec, "id"),
			FirstName: field(rec, "firstname"),
			LastName:  field(rec, "lastname"),
		})
	}
	return members, nil
}

func (r *GroupRepository) SaveRoster(ctx context.Context, group string, csvData []byte) error {
	path, err := r.store.groupPath(group)
	if err != nil {
		return err
	}

	// Reject uploads that do not parse as CSV with an id column.
	records, err := csv.NewReader(bytes.NewReader(csvData)).ReadAll()
	if err != nil {
		return fmt.Errorf("roster is not valid CSV: %w", domain.ErrMalformedInput)
	}
	if len(records) == 0 || !hasColumn(records[0], "id") {
		return fmt.Errorf("roster is missing an id column: %w", domain.ErrMalformedInput)
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if err := os.WriteFile(path, csvData, 0o644); err != nil {
		return fmt.Errorf("failed to write roster: %w", err)
	}
	r.log.Info("Roster saved", zap.String("group", group), zap.Int("rows", len(records)-1))
	return nil
}

func hasColumn(header []string, name string) bool {
	for _, h := range header {
		if strings.TrimSpace(strings.ToLower(h)) == name {
			return true
		}
	}
	return false
}
