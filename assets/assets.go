// Package assets embeds the static art shipped with the binary.
package assets

import "embed"

// Sprites holds the planet sprite sheet.
//
//go:embed sprites.json
var Sprites embed.FS
