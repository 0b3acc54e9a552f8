package ports

import (
	"context"

	"github.com/seu-repo/passlog/internal/domain"
)

type EventRepository interface {
	// Append writes rows to the end of the event log.
	Append(ctx context.Context, rows []domain.EventRow) error
	// FindByPerson returns every raw row for one member of a group, in file
	// order. Returns domain.ErrNotFound when the log holds nothing for them.
	FindByPerson(ctx context.Context, group, personID string) ([]domain.EventRow, error)
	// All returns every raw row of the log; an absent log yields no rows.
	All(ctx context.Context) ([]domain.EventRow, error)
	// Update replaces rows exactly matching match with update and reports
	// how many rows were rewritten.
	Update(ctx context.Context, match, update domain.EventRow) (int, error)
	// Delete removes rows exactly matching match and reports how many.
	Delete(ctx context.Context, match domain.EventRow) (int, error)
}

type GroupRepository interface {
	Groups(ctx context.Context) ([]string, error)
	// Members returns the roster of a group, domain.ErrNotFound if none exists.
	Members(ctx context.Context, group string) ([]domain.Member, error)
	SaveRoster(ctx context.Context, group string, csvData []byte) error
}

type TimeSlotRepository interface {
	// All returns the configured time slots sorted by ascending slot id.
	All(ctx context.Context) ([]domain.TimeSlot, error)
}
