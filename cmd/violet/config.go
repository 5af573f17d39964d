package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/matty-l/violet/dialect/javalite"
	"github.com/matty-l/violet/lr/forest"
	"github.com/npillmayer/schuko"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of a run. It serves as the global configuration
// of package gconf, where the recognizer and the forest extractor look up
// keys "trace-chart" and "extract-first-match".
type Config struct {
	Dialect    string `yaml:"dialect"`
	Trace      string `yaml:"trace"`
	Policy     string `yaml:"policy"`
	TraceChart bool   `yaml:"trace-chart"`
}

var _ schuko.Configuration = Config{}

// DefaultConfig returns the settings used without a config file.
func DefaultConfig() Config {
	return Config{
		Dialect: javalite.Name,
		Trace:   "Error",
		Policy:  forest.LeftmostShortest.Name(),
	}
}

// LoadConfig reads settings from a YAML file. Settings missing from the file
// keep their default values. An empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	conf := DefaultConfig()
	if path == "" {
		return conf, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return conf, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return conf, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return conf, nil
}

// ForestPolicy returns the tie-break policy named by the config.
func (conf Config) ForestPolicy() (forest.Policy, error) {
	for _, p := range []forest.Policy{forest.LeftmostShortest, forest.FirstMatch} {
		if p.Name() == conf.Policy {
			return p, nil
		}
	}
	return nil, fmt.Errorf("unknown tie-break policy %q", conf.Policy)
}

// InitDefaults is part of interface schuko.Configuration. Defaults are set by
// DefaultConfig.
func (conf Config) InitDefaults() {}

// IsSet is part of interface schuko.Configuration.
func (conf Config) IsSet(key string) bool {
	switch key {
	case "dialect", "trace", "policy", "trace-chart", "extract-first-match", "tracing":
		return true
	}
	return strings.HasPrefix(key, "tracing")
}

// GetString is part of interface schuko.Configuration. Keys "tracing<module>"
// of the global tracers all map to the trace level of the run.
func (conf Config) GetString(key string) string {
	switch key {
	case "dialect":
		return conf.Dialect
	case "trace":
		return conf.Trace
	case "policy":
		return conf.Policy
	case "tracing", "tracing.adapter":
		return "go"
	}
	if strings.HasPrefix(key, "tracing") {
		return conf.Trace
	}
	return ""
}

// GetInt is part of interface schuko.Configuration.
func (conf Config) GetInt(key string) int {
	return 0
}

// GetBool is part of interface schuko.Configuration.
func (conf Config) GetBool(key string) bool {
	switch key {
	case "trace-chart":
		return conf.TraceChart
	case "extract-first-match":
		return conf.Policy == forest.FirstMatch.Name()
	}
	return false
}

// IsInteractive is part of interface schuko.Configuration.
func (conf Config) IsInteractive() bool {
	return false
}
