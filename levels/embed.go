package levels

import "embed"

// FS holds the shipped level collection and the generator scripts.
//
//go:embed levels.json scripts/*.tengo
var FS embed.FS

// DefaultPath is the embedded level collection.
const DefaultPath = "levels.json"
