package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/akathpalia/kmrsim/internal/kmr"
	"github.com/akathpalia/kmrsim/internal/sweep"
)

const (
	DefaultThreshold = 1e-23 // LISA/DECIGO memory sensitivity
)

// Config is the yaml-facing parameter bundle: the astrophysical inputs,
// the mass grid bounds, and the detector sensitivity threshold used by
// the reporting and plotting layers.
type Config struct {
	MStar       float64 `yaml:"m_star"`
	RStar       float64 `yaml:"r_star"`
	Epsilon     float64 `yaml:"epsilon"`
	DeltaM      float64 `yaml:"delta_m"`
	Distance    float64 `yaml:"distance"`
	VEj         float64 `yaml:"v_ej"`
	MassLowExp  float64 `yaml:"mass_low_exp"`
	MassHighExp float64 `yaml:"mass_high_exp"`
	GridCount   int     `yaml:"grid_count"`
	Threshold   float64 `yaml:"threshold"`
}

func DefaultConfig() *Config {
	p := kmr.DefaultParams()
	return &Config{
		MStar:       p.MStar,
		RStar:       p.RStar,
		Epsilon:     p.Epsilon,
		DeltaM:      p.DeltaM,
		Distance:    p.Distance,
		VEj:         p.VEj,
		MassLowExp:  sweep.DefaultLowExp,
		MassHighExp: sweep.DefaultHighExp,
		GridCount:   sweep.DefaultPoints,
		Threshold:   DefaultThreshold,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params extracts the strain model inputs.
func (c *Config) Params() kmr.Params {
	return kmr.Params{
		MStar:    c.MStar,
		RStar:    c.RStar,
		Epsilon:  c.Epsilon,
		DeltaM:   c.DeltaM,
		Distance: c.Distance,
		VEj:      c.VEj,
	}
}

// Grid extracts the mass grid spec.
func (c *Config) Grid() sweep.GridSpec {
	return sweep.GridSpec{
		LowExp:  c.MassLowExp,
		HighExp: c.MassHighExp,
		Points:  c.GridCount,
	}
}

// Validate checks the full bundle: model parameters then grid.
func (c *Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return err
	}
	return c.Grid().Validate()
}
