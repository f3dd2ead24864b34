package migration

import "embed"

// Scripts holds the versioned MySQL schema in goose format.
//
//go:embed scripts/*.sql
var Scripts embed.FS

const scriptsDir = "scripts"
