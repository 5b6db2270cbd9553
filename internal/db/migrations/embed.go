// filepath: internal/db/migrations/embed.go
package migrations

import "embed"

// FS embeds the SQL migration files, one directory per dialect.
//
//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
