// Package config holds the presentation settings of a logger: default
// section width, rule colours, timestamp layout and per-level label
// colours. Colours are chalk-style names understood by color.Parse.
//
// A Config can be built in code or decoded from YAML with Load:
//
//	section_width: 60
//	section_color: cyan
//	separator_color: gray
//	color: auto
//	levels:
//	  info: blueBright
//	  fatal: bgRed.white.bold
package config

import (
	"github.com/philipp01105/fanlog/color"
	"github.com/philipp01105/fanlog/core"
	"github.com/philipp01105/fanlog/formatter"
)

const (
	// DefaultSectionWidth is used when SectionWidth is zero
	DefaultSectionWidth = 80
	// DefaultSectionColor colours Section rules
	DefaultSectionColor = "magenta"
	// DefaultSeparatorColor colours Separator rules
	DefaultSeparatorColor = "gray"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds logger presentation settings
type Config struct {
	// SectionWidth is the default rule width (0 for DefaultSectionWidth)
	SectionWidth int `yaml:"section_width" validate:"gte=0"`
	// SectionColor colours named and blank sections
	SectionColor string `yaml:"section_color" validate:"color"`
	// SeparatorColor colours Separator rules
	SeparatorColor string `yaml:"separator_color" validate:"color"`
	// TimestampFormat is a time layout (empty for HH:MM:SS.mmm)
	TimestampFormat string `yaml:"timestamp_format"`
	// LocalTime prints timestamps in the local zone instead of UTC
	LocalTime bool `yaml:"local_time"`
	// Color is auto, always or never (empty means auto). never keeps a
	// logger's output free of escape codes; always turns the process-wide
	// color switch on when the logger is built.
	Color string `yaml:"color" validate:"omitempty,oneof=auto always never"`
	// Levels overrides label colours, keyed by level name
	Levels map[string]string `yaml:"levels" validate:"dive,keys,oneof=debug info success warn error fatal,endkeys,color"`
}

// Default returns a Config with every default filled in
func Default() Config {
	cfg := Config{}
	applyDefaults(&cfg)
	return cfg
}

// applyDefaults fills in zero-value fields with defaults.
func applyDefaults(cfg *Config) {
	if cfg.SectionWidth == 0 {
		cfg.SectionWidth = DefaultSectionWidth
	}
	if cfg.SectionColor == "" {
		cfg.SectionColor = DefaultSectionColor
	}
	if cfg.SeparatorColor == "" {
		cfg.SeparatorColor = DefaultSeparatorColor
	}
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = formatter.DefaultTimestampFormat
	}
	if cfg.Color == "" {
		cfg.Color = ColorAuto
	}
}

// WithDefaults returns a copy of c with zero values replaced by defaults
func (c Config) WithDefaults() Config {
	applyDefaults(&c)
	return c
}

// LevelStyle returns the label colour for l, honouring overrides
func (c Config) LevelStyle(l core.Level) color.Style {
	if name, ok := c.Levels[l.Name()]; ok {
		if st, err := color.Parse(name); err == nil {
			return st
		}
	}
	return l.Style()
}

// SectionStyle returns the parsed SectionColor
func (c Config) SectionStyle() color.Style {
	return parseOr(c.SectionColor, color.Magenta)
}

// SeparatorStyle returns the parsed SeparatorColor
func (c Config) SeparatorStyle() color.Style {
	return parseOr(c.SeparatorColor, color.Gray)
}

// FormatterConfig returns the text formatter settings
func (c Config) FormatterConfig() formatter.Config {
	return formatter.Config{
		TimestampFormat: c.TimestampFormat,
		LocalTime:       c.LocalTime,
		Plain:           c.Color == ColorNever,
	}
}

// ColorEnabled resolves the Color mode against the detected terminal support
func (c Config) ColorEnabled(detected bool) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return detected
	}
}

func parseOr(name string, fallback color.Style) color.Style {
	if name == "" {
		return fallback
	}
	st, err := color.Parse(name)
	if err != nil {
		return fallback
	}
	return st
}
