// Package config provides the configuration of the number system and of the
// physical constants used by the measure package.
//
// A configuration file looks like this:
//
//	system: exact
//	constants:
//	  gravity: 9.81
//
// The settings of the file can be overridden by the environment variables
// MEASURE_SYSTEM and MEASURE_CONSTANTS, such as
//
//	MEASURE_SYSTEM=float MEASURE_CONSTANTS=gravity=9.81,g0=9.8
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/govalues/measure"
)

// Config contains the number system and the values of the physical
// constants to use.
// Config should be created with a call to [Default], [Read], or [Load].
type Config struct {
	System    string           `yaml:"system"`
	Constants map[string]Value `yaml:"constants,omitempty"`
}

// envConfig holds the settings that can be overridden by environment variables.
type envConfig struct {
	System    string            `env:"MEASURE_SYSTEM"`
	Constants map[string]string `env:"MEASURE_CONSTANTS" envKeyValSeparator:"="`
}

// Value is an exact value of a constant.
// In YAML it can be written as a decimal, such as 9.81, or as a fraction,
// such as 981/100.
type Value struct {
	measure.Rational
}

// UnmarshalYAML implements the [yaml.Unmarshaler] interface.
// The text of the scalar is parsed as is, so decimals keep all their digits.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: value of a constant must be a scalar", node.Line)
	}
	r, err := measure.ParseRat(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	v.Rational = r
	return nil
}

// MarshalYAML implements the [yaml.Marshaler] interface.
func (v Value) MarshalYAML() (any, error) {
	return v.String(), nil
}

// Default returns the Config used when no config file is provided:
// exact arithmetic and the default values of all constants.
func Default() *Config {
	return &Config{System: measure.Exact.Name()}
}

// Read returns the Config parsed from the yaml encoded config from r.
// Missing settings keep their default values.
func Read(r io.Reader) (*Config, error) {
	cfg := Default()
	if err := yaml.NewDecoder(r).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if _, err := cfg.NumberSystem(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load returns the Config parsed from the given yaml file.
// If the file does not exist, the default config is returned.
func Load(file string) (*Config, error) {
	f, err := os.Open(file)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	defer func() { _ = f.Close() }()
	cfg, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("loading %v: %w", file, err)
	}
	return cfg, nil
}

// FromEnv overrides the settings of cfg with the values of the
// environment variables MEASURE_SYSTEM and MEASURE_CONSTANTS.
// Unset variables leave the settings unchanged.
func (cfg *Config) FromEnv() error {
	var e envConfig
	if err := env.Parse(&e); err != nil {
		return fmt.Errorf("parsing env: %w", err)
	}
	if e.System != "" {
		cfg.System = e.System
	}
	for name, s := range e.Constants {
		r, err := measure.ParseRat(s)
		if err != nil {
			return fmt.Errorf("parsing env: constant %v: %w", name, err)
		}
		if cfg.Constants == nil {
			cfg.Constants = make(map[string]Value)
		}
		cfg.Constants[name] = Value{Rational: r}
	}
	_, err := cfg.NumberSystem()
	return err
}

// NumberSystem returns the configured number system.
// An empty setting selects [measure.Exact].
func (cfg *Config) NumberSystem() (measure.NumberSystem, error) {
	if cfg.System == "" {
		return measure.Exact, nil
	}
	ns, err := measure.ParseNumberSystem(cfg.System)
	if err != nil {
		return nil, fmt.Errorf("config system: %w", err)
	}
	return ns, nil
}

// Apply sets the configured values of the physical constants.
// All constants are looked up and validated before any of them is set,
// so if Apply returns an error no constant has been changed.
func (cfg *Config) Apply() error {
	names := make([]string, 0, len(cfg.Constants))
	for name := range cfg.Constants {
		names = append(names, name)
	}
	sort.Strings(names)

	type update struct {
		k *measure.Constant
		v measure.Rational
	}
	updates := make([]update, 0, len(names))
	for _, name := range names {
		k, err := measure.LookupConstant(name)
		if err != nil {
			return fmt.Errorf("config constants: %w", err)
		}
		v := cfg.Constants[name].Rational
		if v.IsZero() {
			return fmt.Errorf("config constants: %v must not be zero: %w", name, measure.ErrDivisionByZero)
		}
		updates = append(updates, update{k: k, v: v})
	}
	for _, u := range updates {
		if err := u.k.SetValue(u.v); err != nil {
			return fmt.Errorf("config constants: %w", err)
		}
	}
	return nil
}
