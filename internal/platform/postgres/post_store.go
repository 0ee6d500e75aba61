package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/post-api/internal/domain"
	"github.com/phrazzld/post-api/internal/platform/logger"
	"github.com/phrazzld/post-api/internal/store"
)

// postColumns is the column list shared by every post query, in scan order.
const postColumns = "id, title, body, published_at, created_at, updated_at"

// PostgresPostStore implements the store.PostStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPostStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPostStore creates a new PostgreSQL implementation of the PostStore interface.
// It accepts a database connection or transaction that should be initialized and managed
// by the caller. If logger is nil, a default logger will be used.
func NewPostgresPostStore(db store.DBTX, logger *slog.Logger) *PostgresPostStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPostStore{
		db:     db,
		logger: logger.With(slog.String("component", "post_store")),
	}
}

// Ensure PostgresPostStore implements store.PostStore interface
var _ store.PostStore = (*PostgresPostStore)(nil)

// Create implements store.PostStore.Create
// It saves a new post to the database in a single statement.
// Returns store.ErrInvalidEntity wrapping the domain error if the post
// fails validation.
func (s *PostgresPostStore) Create(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := post.Validate(); err != nil {
		log.Warn("post validation failed during create",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID.String()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO posts (id, title, body, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		post.ID,
		post.Title,
		post.Body,
		post.PublishedAt,
		post.CreatedAt,
		post.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create post",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID.String()))
		return err
	}

	log.Debug("post created",
		slog.String("post_id", post.ID.String()))
	return nil
}

// GetByID implements store.PostStore.GetByID
// It retrieves a post by its unique ID.
// Returns store.ErrPostNotFound if the post does not exist.
func (s *PostgresPostStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := fmt.Sprintf(`SELECT %s FROM posts WHERE id = $1`, postColumns)

	var post domain.Post
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID,
		&post.Title,
		&post.Body,
		&post.PublishedAt,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("post not found", slog.String("post_id", id.String()))
			return nil, store.ErrPostNotFound
		}
		log.Error("failed to get post by ID",
			slog.String("error", err.Error()),
			slog.String("post_id", id.String()))
		return nil, err
	}

	return &post, nil
}

// List implements store.PostStore.List
// It returns every post ordered by publication time descending.
// Posts published at the same instant are ordered by ID so the result
// is deterministic.
func (s *PostgresPostStore) List(ctx context.Context) ([]*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := fmt.Sprintf(
		`SELECT %s FROM posts ORDER BY published_at DESC, id ASC`,
		postColumns,
	)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list posts", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	posts := make([]*domain.Post, 0)
	for rows.Next() {
		var post domain.Post
		if err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Body,
			&post.PublishedAt,
			&post.CreatedAt,
			&post.UpdatedAt,
		); err != nil {
			log.Error("failed to scan post row", slog.String("error", err.Error()))
			return nil, err
		}
		posts = append(posts, &post)
	}
	if err := rows.Err(); err != nil {
		log.Error("failed while iterating post rows", slog.String("error", err.Error()))
		return nil, err
	}

	return posts, nil
}

// Update implements store.PostStore.Update
// It replaces the post's title, body, and publication time in one
// statement, refreshing updated_at, and returns the stored result.
// Returns store.ErrPostNotFound if no post has the given ID.
func (s *PostgresPostStore) Update(
	ctx context.Context,
	id uuid.UUID,
	title, body string,
	publishedAt time.Time,
) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := fmt.Sprintf(`
		UPDATE posts
		SET title = $2, body = $3, published_at = $4, updated_at = $5
		WHERE id = $1
		RETURNING %s`, postColumns)

	var post domain.Post
	err := s.db.QueryRowContext(
		ctx,
		query,
		id,
		title,
		body,
		publishedAt,
		time.Now().UTC(),
	).Scan(
		&post.ID,
		&post.Title,
		&post.Body,
		&post.PublishedAt,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("post not found during update", slog.String("post_id", id.String()))
			return nil, store.ErrPostNotFound
		}
		log.Error("failed to update post",
			slog.String("error", err.Error()),
			slog.String("post_id", id.String()))
		return nil, err
	}

	log.Debug("post updated", slog.String("post_id", post.ID.String()))
	return &post, nil
}
