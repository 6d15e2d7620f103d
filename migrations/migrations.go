package migrations

import "embed"

// FS SQL-миграции в формате goose
//
//go:embed *.sql
var FS embed.FS
