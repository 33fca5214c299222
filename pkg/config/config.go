// Package config loads and validates the Director's configuration: which
// engines are enabled, advice file paths, writer selection, and timeout.
// Layering follows the teacher repo's pattern of defaults, then an optional
// file, then command-line flags, each layer overriding the last.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the recognized option set from spec §3.
type Config struct {
	BoundedModelChecking  bool `yaml:"boundedModelChecking"`
	KInduction            bool `yaml:"kInduction"`
	InvariantGeneration   bool `yaml:"invariantGeneration"`
	SmoothCounterexamples bool `yaml:"smoothCounterexamples"`
	PDRMax                int  `yaml:"pdrMax"`

	ReadAdvice  string `yaml:"readAdvice"`
	WriteAdvice string `yaml:"writeAdvice"`

	ReduceIVC   bool `yaml:"reduceIvc"`
	AllIVCs     bool `yaml:"allIvcs"`
	AllAssigned bool `yaml:"allAssigned"`

	TimeoutSeconds int `yaml:"timeout"`

	Excel       bool   `yaml:"excel"`
	XML         bool   `yaml:"xml"`
	XMLToStdout bool   `yaml:"xmlToStdout"`
	MiniJKind   bool   `yaml:"miniJkind"`
	Filename    string `yaml:"filename"`
}

// NoTimeout is the sentinel TimeoutSeconds value meaning "timeout disabled".
// It is distinct from 0: spec.md §4.4's termination predicate is
// `now > startTime + timeout*1000`, which is already true at the instant
// `timeout=0` is configured, so 0 is a legitimate (immediate-sweep) value
// and cannot also mean "unbounded".
const NoTimeout = -1

// Default returns the Director's zero-configuration defaults: no proof
// engines enabled, no timeout, and "vericore" as the base filename for
// file-based writers.
func Default() Config {
	return Config{
		TimeoutSeconds: NoTimeout,
		Filename:       "vericore",
	}
}

// TimeoutEnabled reports whether a timeout is configured at all.
func (c Config) TimeoutEnabled() bool {
	return c.TimeoutSeconds >= 0
}

// Timeout returns TimeoutSeconds as a time.Duration. It is meaningless when
// TimeoutEnabled reports false; callers must check that first.
func (c Config) Timeout() time.Duration {
	if !c.TimeoutEnabled() {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// PDREnabled reports whether PDR is enabled (spec: pdrMax >= 1 enables PDR).
func (c Config) PDREnabled() bool {
	return c.PDRMax >= 1
}

// Load reads YAML configuration from path and overlays it on top of
// Default(). A missing file is not an error; it simply means defaults with
// no on-disk overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the option set for internal consistency.
func (c Config) Validate() error {
	if c.PDRMax < 0 {
		return fmt.Errorf("pdrMax must be >= 0, got %d", c.PDRMax)
	}
	if c.TimeoutSeconds < NoTimeout {
		return fmt.Errorf("timeout must be >= %d (%d disables it), got %d", NoTimeout, NoTimeout, c.TimeoutSeconds)
	}
	if c.AllIVCs && !c.ReduceIVC {
		return fmt.Errorf("allIvcs requires reduceIvc to be enabled")
	}
	selected := 0
	for _, b := range []bool{c.Excel, c.XML} {
		if b {
			selected++
		}
	}
	if selected > 1 {
		return fmt.Errorf("excel and xml writer selectors are mutually exclusive")
	}
	if c.XMLToStdout && !c.XML {
		return fmt.Errorf("xmlToStdout requires xml to be enabled")
	}
	return nil
}

// AnyEngineEnabled reports whether at least one proof engine is configured.
func (c Config) AnyEngineEnabled() bool {
	return c.BoundedModelChecking || c.KInduction || c.PDREnabled()
}
