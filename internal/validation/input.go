package validation

import (
	"time"

	"github.com/phrazzld/post-api/internal/domain"
)

// Input is the raw, untyped field set drawn from a decoded request body.
// Nil pointers mark fields the caller did not supply; publication times
// stay textual so unparsable values reach the date rule instead of
// failing JSON decoding.
type Input struct {
	Title       *string
	Body        *string
	PublishedAt *string
}

// Normalized is the typed result of a successful profile application.
// PublishedAt is nil when the input did not supply a publication time;
// the caller decides the default.
type Normalized struct {
	Title       string
	Body        string
	PublishedAt *time.Time
}

// Overlay returns a new Input in which fields absent from patch are
// filled from the existing post's current values. Neither argument is
// mutated; the result is what the update profile validates, so a patch
// that omits a field keeps the stored value and a patch that supplies a
// bad value fails validation rather than falling back.
func Overlay(existing *domain.Post, patch Input) Input {
	merged := patch

	if merged.Title == nil {
		title := existing.Title
		merged.Title = &title
	}
	if merged.Body == nil {
		body := existing.Body
		merged.Body = &body
	}
	if merged.PublishedAt == nil {
		publishedAt := existing.PublishedAt.Format(time.RFC3339Nano)
		merged.PublishedAt = &publishedAt
	}

	return merged
}

// parseTime accepts an RFC 3339 timestamp or a bare calendar date.
func parseTime(value string) (time.Time, bool) {
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return ts, true
	}
	if ts, err := time.Parse("2006-01-02", value); err == nil {
		return ts, true
	}
	return time.Time{}, false
}
