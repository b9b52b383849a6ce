package postgres

import "embed"

// Migrations contiene los archivos SQL embebidos, aplicados por cmd/migrate con goose.
//
//go:embed migrations/*.sql
var Migrations embed.FS
