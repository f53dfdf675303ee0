// Package task embeds the task context's SQL migrations.
package task

import "embed"

//go:embed *.sql
var FS embed.FS
