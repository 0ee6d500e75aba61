package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/post-api/internal/domain"
)

// PostStore defines the interface for post data persistence.
// Every operation is a single atomic statement against the backing store;
// callers never need to coordinate multi-statement transactions.
type PostStore interface {
	// Create saves a new post to the store. The post carries its
	// server-assigned ID and timestamps (see domain.NewPost).
	// Returns ErrInvalidEntity wrapping the domain error if the post
	// fails validation.
	Create(ctx context.Context, post *domain.Post) error

	// GetByID retrieves a post by its unique ID.
	// Returns ErrPostNotFound if the post does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)

	// List returns every post ordered by publication time, most recent
	// first. Ties on the publication time are broken by ID so the order
	// is deterministic.
	List(ctx context.Context) ([]*domain.Post, error)

	// Update replaces the title, body, and publication time of the post
	// with the given ID in one statement, refreshing its update timestamp,
	// and returns the updated post.
	// Returns ErrPostNotFound if no post has that ID.
	Update(
		ctx context.Context,
		id uuid.UUID,
		title, body string,
		publishedAt time.Time,
	) (*domain.Post, error)
}
