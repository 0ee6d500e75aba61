package domain

import "errors"

// Post-specific validation errors
var (
	// ErrPostIDEmpty is returned when a post ID is empty or nil.
	ErrPostIDEmpty = errors.New("post ID cannot be empty")

	// ErrPostTitleEmpty is returned when a post's title is empty.
	ErrPostTitleEmpty = errors.New("post title cannot be empty")

	// ErrPostBodyEmpty is returned when a post's body is empty.
	ErrPostBodyEmpty = errors.New("post body cannot be empty")

	// ErrPostPublishedAtZero is returned when a post's publication time is unset.
	ErrPostPublishedAtZero = errors.New("post publication time cannot be zero")
)
