package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nodegrid/manhattan/graph"
	"github.com/nodegrid/manhattan/layout"
)

// Config mirrors the new(...) and layout(...) options of spec §6.4.
type Config struct {
	Debug       bool         `yaml:"debug"`
	TimeoutSecs int          `yaml:"timeout"`
	Strict      bool         `yaml:"strict"`
	FatalErrors bool         `yaml:"fatal_errors"`
	Undirected  bool         `yaml:"undirected"`
	Layout      LayoutConfig `yaml:"layout"`
}

// LayoutConfig mirrors layout(...)'s options.
type LayoutConfig struct {
	Type        string `yaml:"type"`
	TimeoutSecs int    `yaml:"timeout"`
}

// Default returns the option set's documented defaults.
func Default() Config {
	return Config{
		Debug:       false,
		TimeoutSecs: 5,
		Strict:      true,
		FatalErrors: true,
		Undirected:  false,
		Layout: LayoutConfig{
			Type: "adhoc",
		},
	}
}

// Load reads a YAML config file at path, starting from Default so any
// field the file omits keeps its documented default.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects option combinations spec §6.4 does not allow.
func (c Config) Validate() error {
	switch c.Layout.Type {
	case "", "adhoc":
	case "force":
		return layout.ErrForceLayoutUnimplemented
	default:
		return fmt.Errorf("config: unknown layout type %q", c.Layout.Type)
	}
	return nil
}

// GraphOptions translates the new(...) side of c into graph.Options.
func (c Config) GraphOptions() []graph.Option {
	opts := []graph.Option{
		graph.WithStrict(c.Strict),
		graph.WithFatalErrors(c.FatalErrors),
	}
	if c.Undirected {
		opts = append(opts, graph.WithUndirected())
	}
	return opts
}

// LayoutOptions translates the layout(...) side of c into layout.Options.
// debugOut is the stream debug traces are written to when c.Debug is set.
func (c Config) LayoutOptions(debugOut *os.File) []layout.Option {
	timeout := time.Duration(c.TimeoutSecs) * time.Second
	if c.Layout.TimeoutSecs > 0 {
		timeout = time.Duration(c.Layout.TimeoutSecs) * time.Second
	}
	opts := []layout.Option{layout.WithTimeout(timeout)}
	// WithDebug builds its logger from the output set so far, so the
	// output has to come first.
	if debugOut != nil {
		opts = append(opts, layout.WithLogOutput(debugOut))
	}
	return append(opts, layout.WithDebug(c.Debug))
}
