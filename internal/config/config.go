// Package config loads engine configuration from a TOML file: which judge
// and scope family to drive the search with, how many workers to run, and
// the node and depth budgets that bound an iterative-deepening run.
package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Judge names one of the shipped evaluator families.
type Judge string

const (
	JudgeRandAap  Judge = "randaap"
	JudgeSlonenok Judge = "slonenok"
	JudgeSherlock Judge = "sherlock"
)

// Scope names one of the shipped Scope families.
type Scope string

const (
	ScopeDepth       Scope = "depth"
	ScopeAdaptive    Scope = "adaptive"
	ScopeLogarithmic Scope = "logarithmic"
)

// Config is the on-disk engine configuration.
type Config struct {
	Judge    Judge `toml:"judge"`
	Scope    Scope `toml:"scope"`
	Workers  int   `toml:"workers"`
	MaxNodes int   `toml:"max_nodes"`
	MaxDepth uint8 `toml:"max_depth"`
}

// Default returns the configuration the engine starts with absent a file
// on disk: Sherlock over LogarithmicScope, a four-worker pool, and the
// same node and depth ceilings the reference scoring uses.
func Default() Config {
	return Config{
		Judge:    JudgeSherlock,
		Scope:    ScopeLogarithmic,
		Workers:  4,
		MaxNodes: 4_000_000,
		MaxDepth: 27,
	}
}

// Load decodes the TOML file at path into a Config seeded with Default's
// values, so a partial file only overrides the fields it sets.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "decode config %s", path)
	}
	return cfg, nil
}
