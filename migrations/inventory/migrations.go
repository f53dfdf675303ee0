// Package inventory embeds the inventory context's SQL migrations.
package inventory

import "embed"

//go:embed *.sql
var FS embed.FS
