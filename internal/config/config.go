// Package config defines the configuration types and defaults for hstyle.
package config

// Config is the top-level configuration.
type Config struct {
	Style StyleConfig `yaml:"style"`
}

// StyleConfig holds all style-rule settings.
type StyleConfig struct {
	IndentWidth      int      `yaml:"indent_width"`
	MaxLineLength    int      `yaml:"max_line_length"`
	LocalPrefixes    []string `yaml:"local_prefixes"`
	ShowAdvisory     bool     `yaml:"show_advisory"`
	ShowFixPreview   bool     `yaml:"show_fix_preview"`
	PreviewMaxLines  int      `yaml:"preview_max_lines"`
	CompositionLimit int      `yaml:"composition_limit"`

	// Rules enables or disables individual rules by id. Absent rules
	// default to enabled.
	Rules map[string]bool `yaml:"rules"`
}

// Enabled reports whether the rule with the given id should run.
func (c *StyleConfig) Enabled(id string) bool {
	if v, ok := c.Rules[id]; ok {
		return v
	}
	return true
}

// DefaultConfig returns a Config with the guide's default values: two
// spaces of indentation and an 80-column soft limit.
func DefaultConfig() *Config {
	return &Config{
		Style: StyleConfig{
			IndentWidth:      2,
			MaxLineLength:    80,
			ShowAdvisory:     true,
			ShowFixPreview:   true,
			PreviewMaxLines:  20,
			CompositionLimit: 4,
		},
	}
}
