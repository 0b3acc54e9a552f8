package eventlog

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/passlog/internal/domain"
	"github.com/seu-repo/passlog/internal/mocks"
)

var testPeople = []domain.Member{
	{ID: "42", LastName: "Muster", FirstName: "Max"},
	{ID: "7", LastName: "Beispiel", FirstName: "Erika"},
}

func newService(repo *mocks.MockEventRepository, now time.Time) *Service {
	svc := NewService(repo, zap.NewNop())
	svc.now = func() time.Time { return now }
	return svc
}

func TestRecord_AppendsOneRowPerPerson(t *testing.T) {
	var appended []domain.EventRow
	repo := &mocks.MockEventRepository{
		AppendFunc: func(ctx context.Context, rows []domain.EventRow) error {
			appended = rows
			return nil
		},
	}
	now := time.Date(2024, 3, 4, 8, 0, 0, 0, time.Local)
	svc := newService(repo, now)

	rows, err := svc.Record(context.Background(), "ab", "10a", testPeople, domain.StatusExited)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if len(rows) != 2 || len(appended) != 2 {
		t.Fatalf("got %d returned / %d appended rows, want 2", len(rows), len(appended))
	}

	want := domain.EventRow{
		Initials:  "ab",
		Group:     "10a",
		PersonID:  "42",
		LastName:  "Muster",
		FirstName: "Max",
		Status:    string(domain.StatusExited),
		Timestamp: "2024-03-04 08:00:00",
	}
	if appended[0] != want {
		t.Errorf("first row = %+v, want %+v", appended[0], want)
	}
}

func TestRecord_RejectsUnknownAction(t *testing.T) {
	svc := newService(&mocks.MockEventRepository{}, time.Now())

	_, err := svc.Record(context.Background(), "ab", "10a", testPeople, "gone")
	if !errors.Is(err, domain.ErrMalformedInput) {
		t.Errorf("err = %v, want ErrMalformedInput", err)
	}
}

func TestRecord_RejectsIncompleteSubmission(t *testing.T) {
	svc := newService(&mocks.MockEventRepository{}, time.Now())
	ctx := context.Background()

	cases := []struct {
		name     string
		initials string
		group    string
		people   []domain.Member
	}{
		{"no initials", "", "10a", testPeople},
		{"no group", "ab", "", testPeople},
		{"no people", "ab", "10a", nil},
	}
	for _, tc := range cases {
		if _, err := svc.Record(ctx, tc.initials, tc.group, tc.people, domain.StatusExited); !errors.Is(err, domain.ErrMalformedInput) {
			t.Errorf("%s: err = %v, want ErrMalformedInput", tc.name, err)
		}
	}
}

func TestListToday_FiltersByDayAndSkipsBadRows(t *testing.T) {
	row := func(ts string) domain.EventRow {
		return domain.EventRow{Group: "10a", PersonID: "42", Status: string(domain.StatusExited), Timestamp: ts}
	}
	repo := &mocks.MockEventRepository{
		FindByPersonFunc: func(ctx context.Context, group, personID string) ([]domain.EventRow, error) {
			return []domain.EventRow{
				row("2024-03-04 08:00:00"),
				row("2024-03-03 08:00:00"), // yesterday
				row("garbage"),             // skipped, not fatal
				row("2024-03-04 09:00:00"),
			}, nil
		},
	}
	svc := newService(repo, time.Date(2024, 3, 4, 10, 0, 0, 0, time.Local))

	rows, err := svc.ListToday(context.Background(), "10a", "42")
	if err != nil {
		t.Fatalf("ListToday: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2 from today", len(rows))
	}
}

func TestListToday_NoHistoryIsEmptyNotError(t *testing.T) {
	repo := &mocks.MockEventRepository{
		FindByPersonFunc: func(ctx context.Context, group, personID string) ([]domain.EventRow, error) {
			return nil, fmt.Errorf("no rows: %w", domain.ErrNotFound)
		},
	}
	svc := newService(repo, time.Now())

	rows, err := svc.ListToday(context.Background(), "10a", "42")
	if err != nil {
		t.Fatalf("ListToday: %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Errorf("rows = %v, want empty non-nil slice", rows)
	}
}
