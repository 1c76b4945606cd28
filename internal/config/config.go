// Package config provides YAML-based configuration loading for the
// tic-tac-toe platform.
package config

// GameConfig contains all user-tunable settings.
type GameConfig struct {
	Computer ComputerConfig `yaml:"computer"`
	UI       UIConfig       `yaml:"ui"`
}

// ComputerConfig controls the computer opponent's pacing. The delay is
// purely cosmetic; the move itself is picked uniformly at random.
type ComputerConfig struct {
	DelayMs int `yaml:"delay_ms"`
}

// UIConfig controls presentation details.
type UIConfig struct {
	XGlyph         string `yaml:"x_glyph"`
	OGlyph         string `yaml:"o_glyph"`
	ResultBannerMs int    `yaml:"result_banner_ms"`
}

// sanitize fills in unusable values with defaults.
func (c *GameConfig) sanitize() {
	def := Default()
	if c.Computer.DelayMs < 0 {
		c.Computer.DelayMs = def.Computer.DelayMs
	}
	if c.UI.ResultBannerMs <= 0 {
		c.UI.ResultBannerMs = def.UI.ResultBannerMs
	}
	if c.UI.XGlyph == "" {
		c.UI.XGlyph = def.UI.XGlyph
	}
	if c.UI.OGlyph == "" {
		c.UI.OGlyph = def.UI.OGlyph
	}
}
