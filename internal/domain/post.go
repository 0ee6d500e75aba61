package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Post represents a published piece of content with audit timestamps.
// Title and body are always non-empty for any persisted post; the
// validation layer enforces this before a post reaches storage, and
// Validate guards it again at the persistence boundary.
type Post struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	PublishedAt time.Time `json:"publishedAt"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewPost creates a new Post with the given title, body, and publication
// time. It generates a new UUID for the post ID and sets the creation and
// update timestamps to the same instant. Returns an error if validation
// fails.
func NewPost(title, body string, publishedAt time.Time) (*Post, error) {
	now := time.Now().UTC()
	post := &Post{
		ID:          uuid.New(),
		Title:       title,
		Body:        body,
		PublishedAt: publishedAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := post.Validate(); err != nil {
		return nil, err
	}

	return post, nil
}

// Validate checks if the Post has valid data.
// Returns an error if any field fails validation.
func (p *Post) Validate() error {
	if p.ID == uuid.Nil {
		return ErrPostIDEmpty
	}

	if strings.TrimSpace(p.Title) == "" {
		return ErrPostTitleEmpty
	}

	if strings.TrimSpace(p.Body) == "" {
		return ErrPostBodyEmpty
	}

	if p.PublishedAt.IsZero() {
		return ErrPostPublishedAtZero
	}

	return nil
}
