package csvstore

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/passlog/internal/domain"
)

func writeTimeslots(t *testing.T, store *Store, content string) {
	t.Helper()
	if err := os.WriteFile(store.timeslotsPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestTimeSlotRepository_All(t *testing.T) {
	store := newTestStore(t)
	// Out of order on purpose, plus a blank line.
	writeTimeslots(t, store, "2,08:35,09:20\n\n1,07:50,08:35\n3,09:40,10:25\n")

	repo := NewTimeSlotRepository(store, zap.NewNop())
	slots, err := repo.All(context.Background())
	if err != nil {
		t.Fatalf("All: %v", err)
	}

	if len(slots) != 3 {
		t.Fatalf("got %d slots, want 3", len(slots))
	}
	for i, want := range []int{1, 2, 3} {
		if slots[i].ID != want {
			t.Errorf("slot %d id = %d, want %d", i, slots[i].ID, want)
		}
	}
	if slots[0].Start != 7*time.Hour+50*time.Minute {
		t.Errorf("slot 1 start = %v", slots[0].Start)
	}
	if slots[0].End != 8*time.Hour+35*time.Minute {
		t.Errorf("slot 1 end = %v", slots[0].End)
	}
}

func TestTimeSlotRepository_MalformedLine(t *testing.T) {
	store := newTestStore(t)
	repo := NewTimeSlotRepository(store, zap.NewNop())
	ctx := context.Background()

	for _, content := range []string{
		"1,07:50\n",          // missing end
		"x,07:50,08:35\n",    // bad id
		"1,25:99,08:35\n",    // bad clock
		"1,07:50,08:35,oh\n", // extra field
	} {
		writeTimeslots(t, store, content)
		if _, err := repo.All(ctx); !errors.Is(err, domain.ErrMalformedInput) {
			t.Errorf("content %q: err = %v, want ErrMalformedInput", content, err)
		}
	}
}

func TestTimeSlotRepository_MissingFile(t *testing.T) {
	store := newTestStore(t)
	repo := NewTimeSlotRepository(store, zap.NewNop())
	if _, err := repo.All(context.Background()); err == nil {
		t.Fatal("expected error for missing timeslot table")
	}
}
