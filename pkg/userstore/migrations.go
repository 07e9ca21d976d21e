package userstore

import "embed"

// Migrations holds the goose SQL migrations for the Postgres store, rooted
// at MigrationsDir.
//
//go:embed migrations/*.sql
var Migrations embed.FS

const MigrationsDir = "migrations"
