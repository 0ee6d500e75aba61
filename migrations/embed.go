// Package migrations embeds the SQL migration files applied by goose.
package migrations

import "embed"

// FS holds the migration files, ordered by their numeric prefix.
//
//go:embed *.sql
var FS embed.FS
