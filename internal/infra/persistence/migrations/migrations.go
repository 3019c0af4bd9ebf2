// Package migrations embeds the SQL schema applied by goose on start-up.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
