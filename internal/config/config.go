package config

import (
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTau       = 0.01
	DefaultM         = 128
	DefaultRe        = 1000.0
	DefaultT         = 10.0
	DefaultOutputTau = 0.1
	DefaultSeed      = 1
)

type Config struct {
	Flow       string     `yaml:"flow"`
	Operator   string     `yaml:"operator"`
	Tau        float64    `yaml:"tau"`
	M          int        `yaml:"m"`
	P          float64    `yaml:"p"`
	Re         float64    `yaml:"re"`
	T          float64    `yaml:"time"`
	OutputTau  float64    `yaml:"output_tau"`
	Seed       int64      `yaml:"seed"`
	FlowParams FlowConfig `yaml:"flow_params"`
}

type FlowConfig struct {
	Amplitude    float64 `yaml:"amplitude"`
	Cells        int     `yaml:"cells"`
	Radius       float64 `yaml:"radius"`
	Separation   float64 `yaml:"separation"`
	Thickness    float64 `yaml:"thickness"`
	Perturbation float64 `yaml:"perturbation"`
	KMin         int     `yaml:"kmin"`
	KMax         int     `yaml:"kmax"`
}

func DefaultConfig() *Config {
	return &Config{
		Flow:      "taylor-green",
		Operator:  "navier-stokes",
		Tau:       DefaultTau,
		M:         DefaultM,
		P:         2 * math.Pi,
		Re:        DefaultRe,
		T:         DefaultT,
		OutputTau: DefaultOutputTau,
		Seed:      DefaultSeed,
		FlowParams: FlowConfig{
			Amplitude:    1.0,
			Cells:        2,
			Radius:       0.4,
			Separation:   1.5,
			Thickness:    0.2,
			Perturbation: 0.05,
			KMin:         3,
			KMax:         8,
		},
	}
}

// Load reads a YAML file over the defaults, so partial files only override
// the keys they mention.
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

// Clone returns an independent copy, safe to mutate.
func (c *Config) Clone() *Config {
	out := *c
	return &out
}
