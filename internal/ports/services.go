package ports

import (
	"context"
	"io"
	"time"

	"github.com/seu-repo/passlog/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	// ValidateToken returns the authenticated subject of a valid token.
	ValidateToken(ctx context.Context, token string) (string, error)
}

type RosterService interface {
	Groups(ctx context.Context) ([]string, error)
	Members(ctx context.Context, group string) ([]domain.Member, error)
	SaveRoster(ctx context.Context, group string, csvData []byte) error
}

type EventLogService interface {
	// Record appends one status event per member, timestamped at receipt.
	Record(ctx context.Context, initials, group string, people []domain.Member, status domain.EventStatus) ([]domain.EventRow, error)
	// ListToday returns a member's rows for the current day. Rows with
	// unparseable timestamps are skipped, matching the edit surface of the
	// recording front end.
	ListToday(ctx context.Context, group, personID string) ([]domain.EventRow, error)
	Update(ctx context.Context, match, update domain.EventRow) (int, error)
	Delete(ctx context.Context, match domain.EventRow) (int, error)
}

type ReportService interface {
	// Generate runs the full pipeline for one member and always returns a
	// structured result; it never propagates a raw fault.
	Generate(ctx context.Context, group, personID string) *domain.ReportResult
	// ScheduleCleanup removes an invocation's temp directory after a delay,
	// so a still-streaming download is not truncated.
	ScheduleCleanup(dir string)
}

type ExportService interface {
	// WriteArchive streams a zip of the whole data directory to w.
	WriteArchive(ctx context.Context, w io.Writer) error
	// EventsCSV returns the raw event log bytes.
	EventsCSV(ctx context.Context) ([]byte, error)
}

type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping() error
	Close() error
}
