package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seu-repo/passlog/internal/domain"
	"github.com/seu-repo/passlog/internal/observability/telemetry"
	"github.com/seu-repo/passlog/internal/ports"
	"github.com/seu-repo/passlog/pkg/config"
)

// Labels of the generated document. The report artifact is user-facing for a
// German-speaking deployment, so its strings stay German like the data the
// front end records.
var eventTableHeader = []string{"Lehrkraft", "Unterrichtsgruppe", "ID", "Nachname", "Vorname", "Status", "Zeitstempel"}

const (
	markerValid   = "✓"
	markerInvalid = "x"
)

type Service struct {
	events ports.EventRepository
	slots  ports.TimeSlotRepository
	charts ports.ChartRenderer
	docs   ports.DocumentBuilder
	cfg    config.ReportConfig
	log    *zap.Logger

	// now is swappable for tests; report filenames embed the current time.
	now func() time.Time
}

func NewService(
	events ports.EventRepository,
	slots ports.TimeSlotRepository,
	charts ports.ChartRenderer,
	docs ports.DocumentBuilder,
	cfg config.ReportConfig,
	log *zap.Logger,
) *Service {
	if cfg.PairWindow <= 0 {
		cfg.PairWindow = 20 * time.Minute
	}
	if cfg.HistogramMaxMinutes <= 0 {
		cfg.HistogramMaxMinutes = 20
	}
	return &Service{
		events: events,
		slots:  slots,
		charts: charts,
		docs:   docs,
		cfg:    cfg,
		log:    log,
		now:    time.Now,
	}
}

// Generate runs the whole pipeline for one member: load, pair, aggregate,
// bucket, render, assemble. Every failure, including a panic inside a
// rendering library, is funneled into the structured result; the caller
// never sees a raw fault.
func (s *Service) Generate(ctx context.Context, group, personID string) (result *domain.ReportResult) {
	start := s.now()
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("Report generation panicked", zap.Any("panic", r))
			result = s.fail("", fmt.Errorf("report generation panicked: %v", r))
		}
		telemetry.ReportDuration.Observe(time.Since(start).Seconds())
		if result.OK() {
			telemetry.ReportsGeneratedTotal.WithLabelValues("ok").Inc()
		} else {
			telemetry.ReportsGeneratedTotal.WithLabelValues("error").Inc()
		}
	}()

	events, err := s.loadSequence(ctx, group, personID)
	if err != nil {
		return s.fail("", err)
	}

	pairs, claimed := matchPairs(events, s.cfg.PairWindow)
	stats := aggregate(pairs)

	slots, err := s.slots.All(ctx)
	if err != nil {
		return s.fail("", err)
	}
	grid := buildFrequencyGrid(events, slots)
	hist := buildDurationHistogram(pairs, s.cfg.HistogramMaxMinutes)

	dir := filepath.Join(s.cfg.TempDir, uuid.NewString())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return s.fail("", fmt.Errorf("failed to create report workspace: %w", err))
	}

	histogramPath := filepath.Join(dir, "histogram.png")
	if err := s.charts.RenderHistogram(hist, histogramPath); err != nil {
		return s.fail(dir, fmt.Errorf("failed to render histogram: %w", err))
	}
	heatmapPath := filepath.Join(dir, "heatmap.png")
	if err := s.charts.RenderHeatmap(grid, heatmapPath); err != nil {
		return s.fail(dir, fmt.Errorf("failed to render heatmap: %w", err))
	}

	subject := events[0]
	now := s.now()
	header := fmt.Sprintf("Auswertung von %s %s am %s",
		subject.FirstName, subject.LastName, now.Format("02.01.2006 15:04"))

	blocks := assembleBlocks(events, claimed, pairs, stats, histogramPath, heatmapPath)

	artifact := filepath.Join(dir, group+".pdf")
	if err := s.docs.Build(artifact, header, blocks); err != nil {
		return s.fail(dir, fmt.Errorf("failed to build document: %w", err))
	}

	s.log.Info("Report generated",
		zap.String("group", group),
		zap.String("person_id", personID),
		zap.Int("events", len(events)),
		zap.Int("pairs", stats.PairCount),
	)

	return &domain.ReportResult{
		Status:       domain.ReportStatusOK,
		ArtifactPath: artifact,
		DisplayName:  displayName(subject.LastName, subject.FirstName, now),
		TempDir:      dir,
	}
}

// ScheduleCleanup removes an invocation's workspace after the configured
// delay. Deferred rather than inline because the artifact may still be
// streaming to a slow consumer when the handler returns.
func (s *Service) ScheduleCleanup(dir string) {
	if dir == "" {
		return
	}
	delay := s.cfg.CleanupDelay
	if delay <= 0 {
		delay = 5 * time.Minute
	}
	time.AfterFunc(delay, func() {
		if err := os.RemoveAll(dir); err != nil {
			s.log.Warn("Failed to clean up report workspace", zap.String("dir", dir), zap.Error(err))
			return
		}
		s.log.Debug("Report workspace cleaned up", zap.String("dir", dir))
	})
}

func (s *Service) fail(dir string, err error) *domain.ReportResult {
	if dir != "" {
		s.ScheduleCleanup(dir)
	}
	s.log.Error("Report generation failed", zap.Error(err))
	return &domain.ReportResult{
		Status:  domain.ReportStatusError,
		Message: err.Error(),
		Err:     err,
	}
}

// assembleBlocks lays the document out in its fixed order: full annotated
// event table, valid pairs table, statistics prose, duration histogram,
// exit heatmap.
func assembleBlocks(
	events []domain.Event,
	claimed []bool,
	pairs []domain.Pair,
	stats domain.ReportStatistics,
	histogramPath, heatmapPath string,
) []domain.DocBlock {
	fullHeader := append(append([]string{}, eventTableHeader...), "valide")
	fullRows := make([][]string, 0, len(events))
	for i, ev := range events {
		marker := markerInvalid
		if claimed[i] {
			marker = markerValid
		}
		fullRows = append(fullRows, append(eventCells(ev), marker))
	}

	pairRows := make([][]string, 0, 2*len(pairs))
	for _, p := range pairs {
		pairRows = append(pairRows, eventCells(p.Exit), eventCells(p.Return))
	}

	return []domain.DocBlock{
		domain.Heading("Alle Einträge (ungefiltert)"),
		domain.TableBlock(fullHeader, fullRows),
		domain.PageBreak(),

		domain.Heading("Gefilterte Ein-/Austrittspaare"),
		domain.TableBlock(eventTableHeader, pairRows),
		domain.PageBreak(),

		domain.Heading("Statistiken"),
		domain.Paragraph(fmt.Sprintf("Anzahl Ein/Austritte: %d", stats.PairCount)),
		domain.Paragraph(fmt.Sprintf("Durchschnittliche Dauer pro Austritt: %s Minuten", stats.AverageMS())),
		domain.Paragraph(fmt.Sprintf("Gesamte Zeit außerhalb: %s Stunden", stats.TotalHMS())),

		domain.Heading("Verteilung der Austrittsdauern"),
		domain.ImageBlock(histogramPath),

		domain.Heading("Heatmap der Austritte"),
		domain.ImageBlock(heatmapPath),
	}
}

func eventCells(ev domain.Event) []string {
	return []string{
		ev.Initials,
		ev.Group,
		ev.PersonID,
		ev.LastName,
		ev.FirstName,
		string(ev.Status),
		ev.Timestamp.Format(domain.TimestampLayout),
	}
}

// displayName derives the download filename from the subject and the
// generation time, with whitespace and colons normalized out.
func displayName(lastName, firstName string, now time.Time) string {
	base := fmt.Sprintf("Auswertung_%s-%s_%s", lastName, firstName, now.Format("2006-01-02_15-04"))
	base = strings.NewReplacer(" ", "_", ":", "-").Replace(base)
	return base + ".pdf"
}
