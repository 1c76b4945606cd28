package config

import (
	_ "embed"
)

//go:embed defaults/tictac.yaml
var defaultConfigYAML []byte

// Default returns the default game configuration.
func Default() GameConfig {
	return GameConfig{
		Computer: ComputerConfig{
			DelayMs: 500,
		},
		UI: UIConfig{
			XGlyph:         "X",
			OGlyph:         "O",
			ResultBannerMs: 1500,
		},
	}
}
