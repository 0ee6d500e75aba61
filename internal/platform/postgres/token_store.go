package postgres

import (
	"context"
	"log/slog"

	"github.com/phrazzld/post-api/internal/platform/logger"
	"github.com/phrazzld/post-api/internal/store"
)

// PostgresTokenStore implements the store.TokenStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTokenStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTokenStore creates a new PostgreSQL implementation of the TokenStore
// interface. It accepts a database connection or transaction that should be
// initialized and managed by the caller. If logger is nil, a default logger
// will be used.
func NewPostgresTokenStore(db store.DBTX, logger *slog.Logger) *PostgresTokenStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTokenStore{
		db:     db,
		logger: logger.With(slog.String("component", "token_store")),
	}
}

// Ensure PostgresTokenStore implements store.TokenStore interface
var _ store.TokenStore = (*PostgresTokenStore)(nil)

// Exists implements store.TokenStore.Exists
// It reports whether a token with the given value is present.
// Token values are UUIDs in the schema but arrive as untrusted text, so
// the comparison casts the column rather than the parameter.
func (s *PostgresTokenStore) Exists(ctx context.Context, value string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT EXISTS (SELECT 1 FROM tokens WHERE value::text = $1)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, value).Scan(&exists); err != nil {
		log.Error("failed to check token existence", slog.String("error", err.Error()))
		return false, err
	}

	return exists, nil
}
