package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/seu-repo/passlog/internal/domain"
)

// loadSequence reads one member's full log and parses it into a
// chronologically ordered event sequence. Unlike the CRUD read paths, which
// skip rows they cannot parse, report generation fails closed: a single
// unparseable timestamp aborts the whole report so the result never silently
// under-counts.
func (s *Service) loadSequence(ctx context.Context, group, personID string) ([]domain.Event, error) {
	rows, err := s.events.FindByPerson(ctx, group, personID)
	if err != nil {
		return nil, err
	}

	events := make([]domain.Event, 0, len(rows))
	for i, row := range rows {
		ts, err := time.ParseInLocation(domain.TimestampLayout, row.Timestamp, time.Local)
		if err != nil {
			return nil, fmt.Errorf("row %d has unparseable timestamp %q: %w", i+1, row.Timestamp, domain.ErrMalformedInput)
		}
		events = append(events, domain.Event{
			Initials:  row.Initials,
			Group:     row.Group,
			PersonID:  row.PersonID,
			LastName:  row.LastName,
			FirstName: row.FirstName,
			Status:    domain.EventStatus(row.Status),
			Timestamp: ts,
		})
	}

	// Stable: equal timestamps keep their original row order.
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.Before(events[j].Timestamp)
	})
	return events, nil
}
