// Package migrations embeds the SQLite schema for combat session storage
package migrations

import "embed"

// FS contains embedded SQLite migrations for combat session storage.
//
//go:embed *.sql
var FS embed.FS
