package report

import (
	"testing"
	"time"

	"github.com/seu-repo/passlog/internal/domain"
)

func mkPair(t *testing.T, exit, ret string) domain.Pair {
	t.Helper()
	return domain.Pair{
		Exit:   mkEvent(t, domain.StatusExited, exit),
		Return: mkEvent(t, domain.StatusReturned, ret),
	}
}

func TestAggregate_Empty(t *testing.T) {
	stats := aggregate(nil)

	if stats.PairCount != 0 {
		t.Errorf("PairCount = %d, want 0", stats.PairCount)
	}
	if got := stats.TotalHMS(); got != "0:00:00" {
		t.Errorf("TotalHMS() = %q, want \"0:00:00\"", got)
	}
	if got := stats.AverageMS(); got != "00:00" {
		t.Errorf("AverageMS() = %q, want \"00:00\"", got)
	}
}

func TestAggregate_TotalsAndAverage(t *testing.T) {
	pairs := []domain.Pair{
		mkPair(t, "2024-03-04 08:00:00", "2024-03-04 08:05:30"), // 5m30s
		mkPair(t, "2024-03-04 09:00:00", "2024-03-04 09:10:00"), // 10m
	}

	stats := aggregate(pairs)

	if stats.PairCount != 2 {
		t.Fatalf("PairCount = %d, want 2", stats.PairCount)
	}
	if stats.TotalDuration != 15*time.Minute+30*time.Second {
		t.Errorf("TotalDuration = %v", stats.TotalDuration)
	}
	if got := stats.TotalHMS(); got != "0:15:30" {
		t.Errorf("TotalHMS() = %q, want \"0:15:30\"", got)
	}
	// 15m30s / 2 = 7m45s
	if got := stats.AverageMS(); got != "07:45" {
		t.Errorf("AverageMS() = %q, want \"07:45\"", got)
	}
}

func TestAggregate_TruncatesNotRounds(t *testing.T) {
	// 3 pairs of 10s, 10s, 11s: total 31s, average 10.33s, which must
	// surface as 00:10, never 00:11.
	pairs := []domain.Pair{
		mkPair(t, "2024-03-04 08:00:00", "2024-03-04 08:00:10"),
		mkPair(t, "2024-03-04 09:00:00", "2024-03-04 09:00:10"),
		mkPair(t, "2024-03-04 10:00:00", "2024-03-04 10:00:11"),
	}

	stats := aggregate(pairs)
	if got := stats.AverageMS(); got != "00:10" {
		t.Errorf("AverageMS() = %q, want \"00:10\"", got)
	}
	if got := stats.TotalHMS(); got != "0:00:31" {
		t.Errorf("TotalHMS() = %q, want \"0:00:31\"", got)
	}
}

func TestTotalHMS_HoursRollover(t *testing.T) {
	stats := domain.ReportStatistics{TotalDuration: 2*time.Hour + 3*time.Minute + 4*time.Second}
	if got := stats.TotalHMS(); got != "2:03:04" {
		t.Errorf("TotalHMS() = %q, want \"2:03:04\"", got)
	}
}
