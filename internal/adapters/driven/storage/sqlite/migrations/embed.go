// Package migrations embeds the SQL files that shape the route log database.
package migrations

import "embed"

// FS holds every migration file, embedded at compile time so the binary
// can bootstrap a fresh database without external assets.
//
//go:embed *.sql
var FS embed.FS
