// Package promptparser holds assets shared by the binaries of the module.
package promptparser

import "embed"

// Migrations contains the goose SQL migrations of the application schema.
//
//go:embed migrations/*.sql
var Migrations embed.FS
