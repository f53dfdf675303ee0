// Package account embeds the account context's SQL migrations.
package account

import "embed"

//go:embed *.sql
var FS embed.FS
