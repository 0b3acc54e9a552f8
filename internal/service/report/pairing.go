package report

import (
	"time"

	"github.com/seu-repo/passlog/internal/domain"
)

// matchPairs partitions a time-ordered event sequence into exit/return pairs
// plus a residual set of unmatched events. The policy is a single greedy
// forward pass: each unclaimed exit takes the FIRST unclaimed return that
// lies strictly after it and no more than window later. First eligible
// partner wins, not the closest one; existing consumers depend on exactly
// this bias, so it must not be "improved".
//
// Returns the pairs in order formed (ascending anchor order) and a claimed
// flag per input index. Worst case O(n²), fine for per-person daily volumes.
func matchPairs(events []domain.Event, window time.Duration) ([]domain.Pair, []bool) {
	claimed := make([]bool, len(events))
	var pairs []domain.Pair

	for i := 0; i < len(events); i++ {
		if claimed[i] || events[i].Status != domain.StatusExited {
			continue
		}
		for j := i + 1; j < len(events); j++ {
			if claimed[j] || events[j].Status != domain.StatusReturned {
				continue
			}
			delta := events[j].Timestamp.Sub(events[i].Timestamp)
			if delta <= 0 || delta > window {
				continue
			}
			pairs = append(pairs, domain.Pair{Exit: events[i], Return: events[j]})
			claimed[i] = true
			claimed[j] = true
			break
		}
	}
	return pairs, claimed
}
