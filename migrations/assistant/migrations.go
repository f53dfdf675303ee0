// Package assistant embeds the assistant context's SQL migrations.
package assistant

import "embed"

//go:embed *.sql
var FS embed.FS
