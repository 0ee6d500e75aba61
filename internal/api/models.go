package api

import (
	"time"

	"github.com/phrazzld/post-api/internal/domain"
	"github.com/phrazzld/post-api/internal/validation"
)

// PostRequest is the request body for creating or updating a post.
// Every field is optional at the decoding layer; the validation profiles
// decide what is required. The publication time stays textual so that an
// unparsable value becomes a field error instead of a decode failure.
type PostRequest struct {
	Title       *string `json:"title"`
	Body        *string `json:"body"`
	PublishedAt *string `json:"publishedAt"`
}

// Input converts the request body into the validation engine's input form.
func (r PostRequest) Input() validation.Input {
	return validation.Input{
		Title:       r.Title,
		Body:        r.Body,
		PublishedAt: r.PublishedAt,
	}
}

// PostResponse represents the response data for a post.
type PostResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	PublishedAt time.Time `json:"publishedAt"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ValidationErrorResponse wraps field-level validation errors for 422
// responses: {"errors": {"field": ["message", ...], ...}}.
type ValidationErrorResponse struct {
	Errors *validation.FieldErrors `json:"errors"`
}

// postToResponse transforms a domain post into its response representation.
func postToResponse(post *domain.Post) PostResponse {
	return PostResponse{
		ID:          post.ID.String(),
		Title:       post.Title,
		Body:        post.Body,
		PublishedAt: post.PublishedAt,
		CreatedAt:   post.CreatedAt,
		UpdatedAt:   post.UpdatedAt,
	}
}

// postsToResponse transforms a list of domain posts, preserving order.
func postsToResponse(posts []*domain.Post) []PostResponse {
	responses := make([]PostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, postToResponse(post))
	}
	return responses
}
