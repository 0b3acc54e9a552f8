package csvstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/seu-repo/passlog/internal/domain"
	"github.com/seu-repo/passlog/internal/ports"
	"github.com/seu-repo/passlog/pkg/config"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	store, err := NewStore(config.StorageConfig{
		DataDir:       dir,
		GroupsDir:     filepath.Join(dir, "groups"),
		EventsFile:    filepath.Join(dir, "output.csv"),
		TimeslotsFile: filepath.Join(dir, "timeslots.txt"),
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store
}

func testRow(personID, status, ts string) domain.EventRow {
	return domain.EventRow{
		Initials:  "ab",
		Group:     "10a",
		PersonID:  personID,
		LastName:  "Muster",
		FirstName: "Max",
		Status:    status,
		Timestamp: ts,
	}
}

func newEventRepo(t *testing.T) (ports.EventRepository, *Store) {
	t.Helper()
	store := newTestStore(t)
	return NewEventRepository(store, zap.NewNop()), store
}

func TestEventRepository_AppendAndFind(t *testing.T) {
	repo, _ := newEventRepo(t)
	ctx := context.Background()

	rows := []domain.EventRow{
		testRow("42", string(domain.StatusExited), "2024-03-04 08:00:00"),
		testRow("42", string(domain.StatusReturned), "2024-03-04 08:10:00"),
		testRow("7", string(domain.StatusExited), "2024-03-04 08:01:00"),
	}
	if err := repo.Append(ctx, rows); err != nil {
		t.Fatalf("Append: %v", err)
	}

	got, err := repo.FindByPerson(ctx, "10a", "42")
	if err != nil {
		t.Fatalf("FindByPerson: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d rows, want 2", len(got))
	}
	if got[0] != rows[0] || got[1] != rows[1] {
		t.Errorf("rows round-trip mismatch: %+v", got)
	}
}

func TestEventRepository_FindByPerson_NotFound(t *testing.T) {
	repo, _ := newEventRepo(t)
	ctx := context.Background()

	// Missing file entirely.
	if _, err := repo.FindByPerson(ctx, "10a", "42"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("missing log: err = %v, want ErrNotFound", err)
	}

	// File exists, but nothing for this person.
	if err := repo.Append(ctx, []domain.EventRow{testRow("7", string(domain.StatusExited), "2024-03-04 08:00:00")}); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.FindByPerson(ctx, "10a", "42"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("no rows for person: err = %v, want ErrNotFound", err)
	}
}

func TestEventRepository_SkipsStructurallyBrokenRows(t *testing.T) {
	repo, store := newEventRepo(t)
	ctx := context.Background()

	if err := repo.Append(ctx, []domain.EventRow{testRow("42", string(domain.StatusExited), "2024-03-04 08:00:00")}); err != nil {
		t.Fatal(err)
	}

	// A short row slipped in by some external edit.
	f, err := os.OpenFile(store.EventsPath(), os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString("only,three,fields\n"); err != nil {
		t.Fatal(err)
	}
	f.Close()

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("got %d rows, want broken row skipped", len(all))
	}
}

func TestEventRepository_Update(t *testing.T) {
	repo, _ := newEventRepo(t)
	ctx := context.Background()

	orig := testRow("42", string(domain.StatusExited), "2024-03-04 08:00:00")
	other := testRow("7", string(domain.StatusExited), "2024-03-04 08:05:00")
	if err := repo.Append(ctx, []domain.EventRow{orig, other}); err != nil {
		t.Fatal(err)
	}

	fixed := orig
	fixed.Timestamp = "2024-03-04 08:02:00"
	n, err := repo.Update(ctx, orig, fixed)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if n != 1 {
		t.Fatalf("updated %d rows, want 1", n)
	}

	got, err := repo.FindByPerson(ctx, "10a", "42")
	if err != nil {
		t.Fatal(err)
	}
	if got[0].Timestamp != "2024-03-04 08:02:00" {
		t.Errorf("timestamp not rewritten: %+v", got[0])
	}

	// Untouched row survives the rewrite.
	if _, err := repo.FindByPerson(ctx, "10a", "7"); err != nil {
		t.Errorf("unrelated row lost: %v", err)
	}
}

func TestEventRepository_Delete(t *testing.T) {
	repo, _ := newEventRepo(t)
	ctx := context.Background()

	row := testRow("42", string(domain.StatusExited), "2024-03-04 08:00:00")
	if err := repo.Append(ctx, []domain.EventRow{row}); err != nil {
		t.Fatal(err)
	}

	n, err := repo.Delete(ctx, row)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if n != 1 {
		t.Fatalf("deleted %d rows, want 1", n)
	}

	if _, err := repo.FindByPerson(ctx, "10a", "42"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("row still present after delete: %v", err)
	}

	// Deleting again matches nothing.
	n, err = repo.Delete(ctx, row)
	if err != nil || n != 0 {
		t.Errorf("second delete: n=%d err=%v, want 0,nil", n, err)
	}
}
