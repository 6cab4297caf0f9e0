package migrations

import "embed"

// FS contains embedded SQLite migrations for wayfarer storage.
//
//go:embed *.sql
var FS embed.FS
