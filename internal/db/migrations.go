package db

import "embed"

// MigrationsFS holds the SQL migrations, embedded so the binary can run them
// at startup without shipping loose files.
//
//go:embed migrations
var MigrationsFS embed.FS
