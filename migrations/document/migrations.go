// Package document embeds the document context's SQL migrations.
package document

import "embed"

//go:embed *.sql
var FS embed.FS
