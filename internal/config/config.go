package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/numcalc/internal/calc"
	"github.com/san-kum/numcalc/internal/integrators"
	"github.com/san-kum/numcalc/internal/numeric"
)

const (
	DefaultDiffStep         = 1e-3
	DefaultIntegrateEpsilon = 1e-12
	DefaultRefinements      = 20
	DefaultWindow           = 0.1
	DefaultGrowth           = 1.6
	DefaultBracketSteps     = 30
	DefaultRootEpsilon      = 1e-10
	DefaultRootSteps        = 20
	DefaultMaxEpsilon       = 1e-5
	DefaultMaxSteps         = 50
)

var formats = map[string]bool{"text": true, "json": true, "csv": true}

type Config struct {
	Variable  string          `yaml:"variable"`
	Stepper   string          `yaml:"stepper"`
	Format    string          `yaml:"format"`
	Diff      DiffConfig      `yaml:"diff"`
	Integrate IntegrateConfig `yaml:"integrate"`
	Bracket   BracketConfig   `yaml:"bracket"`
	Root      SearchConfig    `yaml:"root"`
	Max       SearchConfig    `yaml:"max"`
}

type DiffConfig struct {
	Step float64 `yaml:"step"`
}

type IntegrateConfig struct {
	Epsilon     float64 `yaml:"epsilon"`
	Refinements int     `yaml:"refinements"`
}

type BracketConfig struct {
	Window   float64 `yaml:"window"`
	Growth   float64 `yaml:"growth"`
	MaxSteps int     `yaml:"max_steps"`
}

type SearchConfig struct {
	Epsilon  float64 `yaml:"epsilon"`
	MaxSteps int     `yaml:"max_steps"`
}

func DefaultConfig() *Config {
	return &Config{
		Variable: "x",
		Stepper:  integrators.DefaultStepper,
		Format:   "text",
		Diff:     DiffConfig{Step: DefaultDiffStep},
		Integrate: IntegrateConfig{
			Epsilon:     DefaultIntegrateEpsilon,
			Refinements: DefaultRefinements,
		},
		Bracket: BracketConfig{
			Window:   DefaultWindow,
			Growth:   DefaultGrowth,
			MaxSteps: DefaultBracketSteps,
		},
		Root: SearchConfig{Epsilon: DefaultRootEpsilon, MaxSteps: DefaultRootSteps},
		Max:  SearchConfig{Epsilon: DefaultMaxEpsilon, MaxSteps: DefaultMaxSteps},
	}
}

// Load reads a YAML file over the defaults, so a file may set only the
// fields it changes.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", calc.ErrInput, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
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

func (c *Config) Validate() error {
	if !formats[c.Format] {
		return fmt.Errorf("%w: unknown format %q", calc.ErrInput, c.Format)
	}
	if _, err := integrators.NewRegistry().Get(c.Stepper); err != nil {
		return err
	}
	return c.Numeric().Validate()
}

// Numeric maps the file layout onto the solver configuration.
func (c *Config) Numeric() numeric.Config {
	return numeric.Config{
		DiffStep:         c.Diff.Step,
		IntegrateEpsilon: c.Integrate.Epsilon,
		MaxRefinements:   c.Integrate.Refinements,
		Window:           c.Bracket.Window,
		GrowthFactor:     c.Bracket.Growth,
		MaxBracketSteps:  c.Bracket.MaxSteps,
		RootEpsilon:      c.Root.Epsilon,
		MaxRootSteps:     c.Root.MaxSteps,
		MaxEpsilon:       c.Max.Epsilon,
		MaxSearchSteps:   c.Max.MaxSteps,
	}
}
