// Package domain defines core types and interfaces for tweets
package domain

import (
	"time"

	"github.com/google/uuid"
)

// AfterKey supports stable keyset pagination over (posted_at, id)
type AfterKey struct {
	PostedAt time.Time
	ID       uuid.UUID
}

// ListInput defines the input parameters for listing tweets
type ListInput struct {
	Since time.Time // inclusive
	Until time.Time // exclusive
	After AfterKey  // zero value = from start
	Limit int       // hard-capped in service

	// Optional filters (all ANDed)
	Author    string
	Lang      string
	OnlyDirty bool // restrict to rows with no clean_text yet
}

// Tweet is the stored tweet row shared across consumers
type Tweet struct {
	ID        uuid.UUID
	Author    string
	Lang      string
	PostedAt  time.Time
	Text      string
	CleanText string
}

// Clone returns a deep copy so pipelines never mutate the original
func (t *Tweet) Clone() *Tweet {
	c := *t
	return &c
}

// TextValue returns the raw text fed into a pipeline
func (t *Tweet) TextValue() string { return t.Text }

// SetText stores the pipeline output as the clean text
func (t *Tweet) SetText(text string) { t.CleanText = text }

// CleanUpdate carries a processed result back to storage
type CleanUpdate struct {
	ID        uuid.UUID
	CleanText string
}
