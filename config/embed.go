package config

import "embed"

//go:embed config.yaml
var FS embed.FS

// DefaultPath is where Load looks for a user config before falling back
// to the embedded one.
const DefaultPath = "config.yaml"
