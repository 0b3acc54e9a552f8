package eventlog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/passlog/internal/domain"
	"github.com/seu-repo/passlog/internal/observability/telemetry"
	"github.com/seu-repo/passlog/internal/ports"
)

// Service covers the CRUD side of the event log: recording batch actions and
// the edit surface. Report generation has its own, stricter read path.
type Service struct {
	repo ports.EventRepository
	log  *zap.Logger
	now  func() time.Time
}

func NewService(repo ports.EventRepository, log *zap.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

func (s *Service) Record(ctx context.Context, initials, group string, people []domain.Member, status domain.EventStatus) ([]domain.EventRow, error) {
	if status != domain.StatusExited && status != domain.StatusReturned {
		return nil, fmt.Errorf("unknown action %q: %w", status, domain.ErrMalformedInput)
	}
	if initials == "" || group == "" || len(people) == 0 {
		return nil, fmt.Errorf("incomplete submission: %w", domain.ErrMalformedInput)
	}

	rows := make([]domain.EventRow, 0, len(people))
	for _, p := range people {
		rows = append(rows, domain.EventRow{
			Initials:  initials,
			Group:     group,
			PersonID:  p.ID,
			LastName:  p.LastName,
			FirstName: p.FirstName,
			Status:    string(status),
			Timestamp: s.now().Format(domain.TimestampLayout),
		})
	}
	if err := s.repo.Append(ctx, rows); err != nil {
		return nil, err
	}

	telemetry.EventsLoggedTotal.WithLabelValues(string(status)).Add(float64(len(rows)))
	s.log.Info("Events recorded",
		zap.String("group", group),
		zap.String("status", string(status)),
		zap.Int("count", len(rows)),
	)
	return rows, nil
}

// ListToday returns a member's rows for the current day. Rows whose
// timestamp does not parse are skipped silently; the edit surface would
// rather show a partial day than refuse to load.
func (s *Service) ListToday(ctx context.Context, group, personID string) ([]domain.EventRow, error) {
	rows, err := s.repo.FindByPerson(ctx, group, personID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return []domain.EventRow{}, nil
		}
		return nil, err
	}

	today := s.now().Format("2006-01-02")
	out := make([]domain.EventRow, 0, len(rows))
	for _, row := range rows {
		ts, err := time.ParseInLocation(domain.TimestampLayout, row.Timestamp, time.Local)
		if err != nil {
			continue
		}
		if ts.Format("2006-01-02") == today {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *Service) Update(ctx context.Context, match, update domain.EventRow) (int, error) {
	n, err := s.repo.Update(ctx, match, update)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.log.Info("Events updated", zap.Int("count", n))
	}
	return n, nil
}

func (s *Service) Delete(ctx context.Context, match domain.EventRow) (int, error) {
	n, err := s.repo.Delete(ctx, match)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.log.Info("Events deleted", zap.Int("count", n))
	}
	return n, nil
}
