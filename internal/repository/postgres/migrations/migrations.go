// Package migrations embeds the goose SQL migrations for the snipvault
// schema. The migrations manage the canonical (unprefixed) tables; prefixed
// environments sharing one database are provisioned out of band.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
