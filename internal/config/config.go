package config

import (
	"errors"
	"fmt"
	"os"

	"optimal-execution/internal/model"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Model ModelConfig `yaml:"model"`
	Sweep SweepConfig `yaml:"sweep"`
	Log   LogConfig   `yaml:"log"`
}

// ModelConfig mirrors the "model" section. Phi is the ordered set of
// risk-aversion values swept; the remaining fields are shared across
// the sweep.
type ModelConfig struct {
	Shares      float64   `yaml:"shares" default:"100"`
	Alpha       float64   `yaml:"alpha" default:"1e9"`
	B           float64   `yaml:"b"`
	K           float64   `yaml:"k"`
	Phi         []float64 `yaml:"phi"`
	TimeHorizon float64   `yaml:"time_horizon" default:"1"`
	Epsilon     float64   `yaml:"epsilon"`
}

type SweepConfig struct {
	// Partial switches the orchestrator from fail-fast to collecting
	// per-phi errors.
	Partial bool `yaml:"partial"`
}

type LogConfig struct {
	Level  string `yaml:"level" default:"info"`
	Format string `yaml:"format" default:"console"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads config and applies defaults, but does not
// validate it. Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if err := defaults.Set(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if len(c.Model.Phi) == 0 {
		return errors.New("model.phi is required and must be non-empty")
	}
	for _, phi := range c.Model.Phi {
		if phi < 0 {
			return fmt.Errorf("model.phi values must be >= 0, got %v", phi)
		}
	}
	// Validate shared parameters by constructing model params with the
	// first phi; only phi varies across the sweep.
	params := c.Model.ToModelParams()
	params.Phi = c.Model.Phi[0]
	if err := params.Validate(); err != nil {
		return fmt.Errorf("model config invalid: %w", err)
	}
	return nil
}

// ToModelParams maps the shared fields of the model section onto
// ExecutionParams. Phi is left zero; the sweep engine sets it per run.
func (m ModelConfig) ToModelParams() model.ExecutionParams {
	return model.ExecutionParams{
		Shares:      m.Shares,
		Alpha:       m.Alpha,
		B:           m.B,
		K:           m.K,
		TimeHorizon: m.TimeHorizon,
		Epsilon:     m.Epsilon,
	}
}
