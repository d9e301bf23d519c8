// Package assets embeds the static frontend served under /assets.
package assets

import "embed"

//go:embed static
var Assets embed.FS
