package domain

import (
	"fmt"
	"time"
)

// TimeSlot is one configured lesson window of the day, half-open [Start, End).
// Start and End are offsets from midnight.
type TimeSlot struct {
	ID    int           `json:"id"`
	Start time.Duration `json:"start"`
	End   time.Duration `json:"end"`
}

// Contains reports whether the time-of-day of t falls inside the slot.
func (s TimeSlot) Contains(t time.Time) bool {
	d := time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second
	return d >= s.Start && d < s.End
}

// Window renders the slot interval as "HH:MM-HH:MM".
func (s TimeSlot) Window() string {
	return fmt.Sprintf("%s-%s", clock(s.Start), clock(s.End))
}

// Label renders the slot for chart axes, e.g. "1: 07:50-08:35".
func (s TimeSlot) Label() string {
	return fmt.Sprintf("%d: %s", s.ID, s.Window())
}

func clock(d time.Duration) string {
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}

// ReportStatistics aggregates the valid pairs of one report run.
type ReportStatistics struct {
	PairCount       int           `json:"pair_count"`
	TotalDuration   time.Duration `json:"total_duration"`
	AverageDuration time.Duration `json:"average_duration"`
}

// TotalHMS formats the total as H:MM:SS, truncated to whole seconds.
func (s ReportStatistics) TotalHMS() string {
	secs := int64(s.TotalDuration.Seconds())
	return fmt.Sprintf("%d:%02d:%02d", secs/3600, secs%3600/60, secs%60)
}

// AverageMS formats the average as MM:SS, truncated to whole seconds.
func (s ReportStatistics) AverageMS() string {
	secs := int64(s.AverageDuration.Seconds())
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// Weekdays are the columns of the frequency grid, Monday through Friday.
var Weekdays = [5]string{"Mo", "Di", "Mi", "Do", "Fr"}

// FrequencyGrid holds exit-event counts per (slot, weekday). Counts is
// indexed [slot row][weekday 0=Monday..4=Friday] and always carries one row
// per configured slot, ordered by ascending slot id.
type FrequencyGrid struct {
	Slots  []TimeSlot `json:"slots"`
	Counts [][]int    `json:"counts"`
}

// Total sums every cell of the grid.
func (g FrequencyGrid) Total() int {
	n := 0
	for _, row := range g.Counts {
		for _, c := range row {
			n += c
		}
	}
	return n
}

// DurationHistogram counts pair durations in one-minute bins [k, k+1) for
// k in 0..MaxMinutes-1. Durations of MaxMinutes or more are not binned.
type DurationHistogram struct {
	MaxMinutes int   `json:"max_minutes"`
	Bins       []int `json:"bins"`
}

// Total sums every bin.
func (h DurationHistogram) Total() int {
	n := 0
	for _, c := range h.Bins {
		n += c
	}
	return n
}

const (
	ReportStatusOK    = "OK"
	ReportStatusError = "ERROR"
)

// ReportResult is the single structured outcome of a report run. On success
// ArtifactPath points at the produced PDF inside the invocation's temp
// directory and DisplayName is the user-facing download filename. On failure
// Message carries the reason and Err the underlying cause for the transport
// layer to map onto a status code.
type ReportResult struct {
	Status       string `json:"status"`
	ArtifactPath string `json:"artifact_path,omitempty"`
	DisplayName  string `json:"display_name,omitempty"`
	Message      string `json:"message,omitempty"`
	TempDir      string `json:"-"`
	Err          error  `json:"-"`
}

func (r *ReportResult) OK() bool { return r.Status == ReportStatusOK }
