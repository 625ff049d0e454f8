// Package config loads grmod CLI configuration.
//
// Precedence is flag > environment > config file > default; the command
// layer owns the flag step, this package owns the rest.
package config

// Config is the persisted CLI configuration (~/.grmod/config.yaml).
type Config struct {
	// ModtoolPath is an explicit path to the gr_modtool binary. Empty
	// means PATH lookup.
	ModtoolPath string `mapstructure:"modtoolPath"`

	// Copyright is the default copyright holder passed to gr_modtool add.
	Copyright string `mapstructure:"copyright"`

	// Log holds logging preferences.
	Log LogConfig `mapstructure:"log"`
}

// LogConfig holds logging preferences.
type LogConfig struct {
	// Timestamps toggles timestamps in log output; nil means
	// "only when verbose".
	Timestamps *bool `mapstructure:"timestamps"`
}

// WithDefaults returns a copy of the config with defaults applied.
func (c *Config) WithDefaults() *Config {
	out := *c
	return &out
}
