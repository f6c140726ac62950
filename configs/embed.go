// Package configs holds the embedded settings template for minigrep.
//
// The template is printed by `minigrep --print-config` and documents every
// key that internal/config.Load understands, with its default value.
// Edit config.example.yaml and rebuild to change it.
package configs

import _ "embed"

// SettingsTemplate is the commented example settings file.
// Save it to ~/.config/minigrep/config.yaml to customize defaults.
//
//go:embed config.example.yaml
var SettingsTemplate string
