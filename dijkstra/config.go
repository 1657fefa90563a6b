package dijkstra

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/netroute/frontier"
)

// Config is the declarative form of Options, suitable for embedding in a
// host application's YAML configuration:
//
//	frontier: array
//	max-iterations: 10000
//	reprocess-stale: false
//	skip-validation: false
//
// Loggers are not configurable here; pass WithLogger alongside Config.Options.
type Config struct {
	Frontier       frontier.Kind `yaml:"frontier"`
	MaxIterations  int           `yaml:"max-iterations"`
	ReprocessStale bool          `yaml:"reprocess-stale"`
	SkipValidation bool          `yaml:"skip-validation"`
}

// ParseConfig decodes a YAML document into a Config. Unknown keys are
// rejected. An empty document yields the zero Config (all defaults).
func ParseConfig(data []byte) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("dijkstra: parse config: %w", err)
	}
	if c.MaxIterations < 0 {
		return Config{}, fmt.Errorf("%w: got %d", ErrBadMaxIterations, c.MaxIterations)
	}

	return c, nil
}

// Options converts c into functional options for Find and Search.
func (c Config) Options() []Option {
	opts := []Option{
		WithFrontier(c.Frontier),
		WithMaxIterations(c.MaxIterations),
	}
	if c.ReprocessStale {
		opts = append(opts, WithReprocessStale())
	}
	if c.SkipValidation {
		opts = append(opts, WithoutWeightValidation())
	}

	return opts
}
