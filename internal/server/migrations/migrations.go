// Package migrations embeds the goose SQL migrations for the user service
// schema so they can be applied at startup without external files.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
