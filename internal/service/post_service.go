package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/post-api/internal/domain"
	"github.com/phrazzld/post-api/internal/platform/logger"
	"github.com/phrazzld/post-api/internal/store"
	"github.com/phrazzld/post-api/internal/validation"
)

// PostService orchestrates validation and storage for post operations.
// It is stateless apart from its storage handle, so one instance can
// serve every request concurrently.
type PostService struct {
	posts  store.PostStore
	logger *slog.Logger
}

// NewPostService creates a new PostService backed by the given store.
func NewPostService(posts store.PostStore, logger *slog.Logger) *PostService {
	if posts == nil {
		panic("posts store cannot be nil for PostService")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostService{
		posts:  posts,
		logger: logger.With(slog.String("component", "post_service")),
	}
}

// Find looks up a post by ID. A missing post surfaces as
// store.ErrPostNotFound, which callers treat as an absence signal
// rather than a fault.
func (s *PostService) Find(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	return s.posts.GetByID(ctx, id)
}

// List returns every post, most recently published first.
func (s *PostService) List(ctx context.Context) ([]*domain.Post, error) {
	return s.posts.List(ctx)
}

// Create validates the input with the create profile and, when valid,
// persists a new post. A validation failure returns the field errors and
// touches no storage. An absent publication time defaults to now.
func (s *PostService) Create(
	ctx context.Context,
	in validation.Input,
) (*domain.Post, *validation.FieldErrors, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	normalized, fieldErrs := validation.CreateProfile.Apply(in)
	if fieldErrs != nil {
		log.Debug("post create input failed validation",
			slog.Any("fields", fieldErrs.Fields()))
		return nil, fieldErrs, nil
	}

	publishedAt := time.Now().UTC()
	if normalized.PublishedAt != nil {
		publishedAt = *normalized.PublishedAt
	}

	post, err := domain.NewPost(normalized.Title, normalized.Body, publishedAt)
	if err != nil {
		return nil, nil, err
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, nil, err
	}

	log.Info("post created", slog.String("post_id", post.ID.String()))
	return post, nil, nil
}

// Update overlays the patch on the existing post's current values,
// validates the merged result with the update profile, and persists the
// validated fields in a single statement that also refreshes the update
// timestamp. A validation failure returns the field errors and leaves
// the stored row untouched.
func (s *PostService) Update(
	ctx context.Context,
	existing *domain.Post,
	patch validation.Input,
) (*domain.Post, *validation.FieldErrors, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	merged := validation.Overlay(existing, patch)
	normalized, fieldErrs := validation.UpdateProfile.Apply(merged)
	if fieldErrs != nil {
		log.Debug("post update input failed validation",
			slog.String("post_id", existing.ID.String()),
			slog.Any("fields", fieldErrs.Fields()))
		return nil, fieldErrs, nil
	}

	updated, err := s.posts.Update(
		ctx,
		existing.ID,
		normalized.Title,
		normalized.Body,
		*normalized.PublishedAt,
	)
	if err != nil {
		return nil, nil, err
	}

	log.Info("post updated", slog.String("post_id", updated.ID.String()))
	return updated, nil, nil
}
