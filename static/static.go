// Package static embeds the documentation assets served under /static.
package static

import "embed"

//go:embed openapi.html openapi.json
var Files embed.FS
