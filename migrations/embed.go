// Package migrations holds the goose SQL migrations, embedded so the server
// binary, roadmapctl and the integration tests all apply the same schema.
package migrations

import "embed"

// FS contains every *.sql migration in version order.
//
//go:embed *.sql
var FS embed.FS
