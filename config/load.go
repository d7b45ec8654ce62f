package config

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Load decodes a YAML document, applies defaults and validates the result.
// Unknown keys are rejected. An empty document yields Default().
func Load(r io.Reader) (Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "decode config")
	}

	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
