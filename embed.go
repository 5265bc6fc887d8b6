package csnap

import "embed"

// EmbeddedProfiles holds the built-in snapshot profiles shipped with
// the binary. User profiles in the config dir override these by name.
//
//go:embed profiles/*.yaml
var EmbeddedProfiles embed.FS
