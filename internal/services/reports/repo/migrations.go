package repo

import "embed"

// Migrations holds the schema, applied with migrate.Up(dsn, Migrations, MigrationsDir)
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory inside Migrations
const MigrationsDir = "migrations"
