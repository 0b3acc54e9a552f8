package report

import (
	"time"

	"github.com/seu-repo/passlog/internal/domain"
)

// buildFrequencyGrid counts exit events per (slot, weekday) cell. Every
// configured slot gets a row and all five weekdays Monday..Friday a column,
// even when the count is zero. Exits whose time of day matches no slot, and
// weekend exits, are left out of the grid entirely. Slots are expected in
// ascending id order (the repository guarantees that).
func buildFrequencyGrid(events []domain.Event, slots []domain.TimeSlot) domain.FrequencyGrid {
	counts := make([][]int, len(slots))
	for i := range counts {
		counts[i] = make([]int, len(domain.Weekdays))
	}

	for _, ev := range events {
		if ev.Status != domain.StatusExited {
			continue
		}
		day := weekdayIndex(ev.Timestamp)
		if day < 0 || day >= len(domain.Weekdays) {
			continue
		}
		for i, slot := range slots {
			if slot.Contains(ev.Timestamp) {
				counts[i][day]++
				break
			}
		}
	}

	return domain.FrequencyGrid{Slots: slots, Counts: counts}
}

// weekdayIndex maps a timestamp onto 0=Monday..6=Sunday.
func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// buildDurationHistogram buckets pair durations into one-minute bins
// [0,1) .. [max-1,max). Durations of max minutes or more stay out of the
// chart; the statistics totals still include them.
func buildDurationHistogram(pairs []domain.Pair, maxMinutes int) domain.DurationHistogram {
	bins := make([]int, maxMinutes)
	for _, p := range pairs {
		minutes := p.Duration().Minutes()
		idx := int(minutes)
		if idx >= 0 && idx < maxMinutes {
			bins[idx]++
		}
	}
	return domain.DurationHistogram{MaxMinutes: maxMinutes, Bins: bins}
}
