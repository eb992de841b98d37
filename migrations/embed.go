package migrations

import "embed"

// FS holds the forward-only SQL migrations embedded into the binary.
//
//go:embed sqlite/*.sql
var FS embed.FS
