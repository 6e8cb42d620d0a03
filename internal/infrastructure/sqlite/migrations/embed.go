// Package migrations contiene el esquema SQLite embebido en el binario.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
