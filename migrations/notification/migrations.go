// Package notification embeds the notification context's SQL migrations.
package notification

import "embed"

//go:embed *.sql
var FS embed.FS
