package model

import (
	"strings"
	"time"
)

// Document is a progress artifact submitted by a team. It is never
// mutated after construction; the aggregate may pop the most recent
// one from a team for rollback.
type Document struct {
	Content   string
	Timestamp time.Time
}

// NewDocument builds a document whose timestamp date comes from the
// caller-supplied reference date rather than the wall clock, keeping
// simulated and real time aligned. The time of day is taken from now.
func NewDocument(content string, refDate, now time.Time) (Document, error) {
	if strings.TrimSpace(content) == "" {
		return Document{}, ErrEmptyDocument
	}
	day := DateOnly(refDate)
	ts := time.Date(day.Year(), day.Month(), day.Day(),
		now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), time.UTC)
	return Document{Content: content, Timestamp: ts}, nil
}
