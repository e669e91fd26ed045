// Package migrations embeds the schema files applied by goose at startup and in e2e tests.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
