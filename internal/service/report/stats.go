package report

import (
	"time"

	"github.com/seu-repo/passlog/internal/domain"
)

// aggregate computes the duration statistics over the valid pairs. With zero
// pairs the average stays at its zero value; no division happens.
func aggregate(pairs []domain.Pair) domain.ReportStatistics {
	stats := domain.ReportStatistics{PairCount: len(pairs)}
	for _, p := range pairs {
		stats.TotalDuration += p.Duration()
	}
	if stats.PairCount > 0 {
		stats.AverageDuration = stats.TotalDuration / time.Duration(stats.PairCount)
	}
	return stats
}
