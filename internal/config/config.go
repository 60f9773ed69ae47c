package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gostress/internal/structure"
	"gopkg.in/yaml.v3"
)

// Source is one structure data file and the type of every record in it
type Source struct {
	File string `yaml:"file"`
	Type string `yaml:"type"`
}

// TypeDef declares an extra structure type aligned with a principal axis
type TypeDef struct {
	Name        string `yaml:"name"`
	AlignedWith string `yaml:"aligned_with"`
}

// Config is the in-memory representation of an inversion run file
type Config struct {
	Solver  string    `yaml:"solver,omitempty"`
	Budget  int       `yaml:"budget,omitempty"`
	Seed    int64     `yaml:"seed,omitempty"`
	Workers int       `yaml:"workers,omitempty"`
	Types   []TypeDef `yaml:"types,omitempty"`
	Sources []Source  `yaml:"sources"`
}

// ValidationError represents an invalid run configuration
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// Load reads and parses a run file. Relative source paths are resolved
// against the directory of the file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}
	cfg, err := Parse(data, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a run file. baseDir resolves relative source paths; empty keeps them.
func Parse(data []byte, baseDir string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	if baseDir != "" {
		for i, src := range cfg.Sources {
			if src.File != "" && !filepath.IsAbs(src.File) {
				cfg.Sources[i].File = filepath.Join(baseDir, src.File)
			}
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save marshals cfg and writes it to path
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}

// Validate checks field ranges. Sources may be empty: they can come from flags.
func (c *Config) Validate() error {
	if c.Budget < 0 {
		return &ValidationError{fmt.Sprintf("budget must not be negative, got %d", c.Budget)}
	}
	if c.Workers < 0 {
		return &ValidationError{fmt.Sprintf("workers must not be negative, got %d", c.Workers)}
	}
	for i, src := range c.Sources {
		if src.File == "" {
			return &ValidationError{fmt.Sprintf("source %d has no file", i+1)}
		}
		if src.Type == "" {
			return &ValidationError{fmt.Sprintf("source %d (%s) has no type", i+1, src.File)}
		}
	}
	for i, td := range c.Types {
		if td.Name == "" {
			return &ValidationError{fmt.Sprintf("type %d has no name", i+1)}
		}
		if _, err := structure.ParseAxis(td.AlignedWith); err != nil {
			return &ValidationError{fmt.Sprintf("type %s: %v", td.Name, err)}
		}
	}
	return nil
}

// RegisterTypes adds the declared structure types to reg
func (c *Config) RegisterTypes(reg *structure.Registry) error {
	for _, td := range c.Types {
		axis, err := structure.ParseAxis(td.AlignedWith)
		if err != nil {
			return err
		}
		reg.Register(td.Name, structure.AlignedWith(td.Name, axis))
	}
	return nil
}

// ParseSource parses a "file:type" command line source. The type follows the
// last colon so that paths containing colons still work.
func ParseSource(spec string) (Source, error) {
	i := strings.LastIndex(spec, ":")
	if i <= 0 || i == len(spec)-1 {
		return Source{}, fmt.Errorf("invalid source %q (want file:type)", spec)
	}
	return Source{File: spec[:i], Type: spec[i+1:]}, nil
}
