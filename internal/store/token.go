package store

import "context"

// TokenStore defines the read-only interface for API credential lookups.
// Tokens are provisioned out-of-band; this application only ever checks
// membership.
type TokenStore interface {
	// Exists reports whether a token with the given value is present.
	Exists(ctx context.Context, value string) (bool, error)
}
