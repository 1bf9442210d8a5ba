// Package db embeds the MySQL schema migrations.
package db

import (
	"embed"
)

//go:embed migrations/*.sql
var Migrations embed.FS
