package migrations

import "embed"

// Migrations holds the golang-migrate SQL files, applied in version order.
//
//go:embed *.sql
var Migrations embed.FS
