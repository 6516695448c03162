package migrations

import "embed"

// FS holds the schema migrations compiled into the binary.
//
//go:embed *.sql
var FS embed.FS
