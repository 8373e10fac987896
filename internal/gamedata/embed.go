// Package gamedata provides the embedded mansion layout and utilities for loading it.
package gamedata

import "embed"

// dataFS holds mansion.json. The layout ships inside the binary and can only
// be changed by rebuilding.
//
//go:embed *.json
var dataFS embed.FS
