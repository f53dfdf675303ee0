// Package transaction embeds the transaction context's SQL migrations.
package transaction

import "embed"

//go:embed *.sql
var FS embed.FS
