// Package config holds the configuration of the gochain command.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application name used for XDG directory paths.
	AppName = "gochain"

	DefaultJobs      = 4
	DefaultTop       = 10
	DefaultMinLength = 1
)

var (
	ErrInvalidJobs      = errors.New("invalid jobs: must be positive")
	ErrInvalidTop       = errors.New("invalid top: must be non-negative")
	ErrInvalidMinLength = errors.New("invalid min length: must be positive")
)

// Config holds the options of the count command. Flags override the values read from the
// configuration file.
type Config struct {
	Verbose    bool     `yaml:"verbose"`
	EnsureName bool     `yaml:"ensure_name"`
	Jobs       int      `yaml:"jobs"`
	Top        int      `yaml:"top"`
	MinLength  int      `yaml:"min_length"`
	GraphDir   string   `yaml:"graph_dir"`
	StopWords  []string `yaml:"stop_words"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Jobs:      DefaultJobs,
		Top:       DefaultTop,
		MinLength: DefaultMinLength,
	}
}

// DefaultPath is $XDG_CONFIG_HOME/gochain/config.yaml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}

// Load reads the configuration file at path on top of the defaults. An empty path reads
// DefaultPath, which may not exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}

		return nil, errors.Wrapf(err, "unable to read config file %s", path)
	}

	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to parse config file %s", path)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, errors.Wrapf(err, "invalid config file %s", path)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Jobs < 1 {
		return ErrInvalidJobs
	}

	if c.Top < 0 {
		return ErrInvalidTop
	}

	if c.MinLength < 1 {
		return ErrInvalidMinLength
	}

	return nil
}
