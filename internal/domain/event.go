package domain

import (
	"time"
)

type EventStatus string

// Wire-level status tokens. The recording front end writes these literals
// into the log, so they stay as-is for compatibility with existing data.
const (
	StatusExited   EventStatus = "ausgetreten"
	StatusReturned EventStatus = "eingetreten"
)

// TimestampLayout is the format every log row carries its timestamp in.
const TimestampLayout = "2006-01-02 15:04:05"

// EventRow is one raw CSV row of the event log. Timestamp is kept as the
// stored string; the reporting path parses it fail-closed, the CRUD paths
// skip rows it cannot parse.
type EventRow struct {
	Initials  string `json:"initials"`
	Group     string `json:"group"`
	PersonID  string `json:"id"`
	LastName  string `json:"lastname"`
	FirstName string `json:"firstname"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Event is a parsed log row.
type Event struct {
	Initials  string      `json:"initials"`
	Group     string      `json:"group"`
	PersonID  string      `json:"id"`
	LastName  string      `json:"lastname"`
	FirstName string      `json:"firstname"`
	Status    EventStatus `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
}

// Pair is a matched exit/return couple. Return always lies strictly after
// Exit and within the configured pairing window.
type Pair struct {
	Exit   Event `json:"exit"`
	Return Event `json:"return"`
}

func (p Pair) Duration() time.Duration {
	return p.Return.Timestamp.Sub(p.Exit.Timestamp)
}

// Member is one roster row of a group.
type Member struct {
	ID        string `json:"id"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
}
