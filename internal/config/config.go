package config

import (
	"fmt"
	"strings"
)

// Config represents the application configuration
type Config struct {
	Root    string        `mapstructure:"root" yaml:"root"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
	Filter  FilterConfig  `mapstructure:"filter" yaml:"filter"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// OutputConfig contains output artifact settings
type OutputConfig struct {
	Path     string `mapstructure:"path" yaml:"path"`
	Compress bool   `mapstructure:"compress" yaml:"compress"`
}

// FilterConfig contains file selection settings
type FilterConfig struct {
	Extension        string   `mapstructure:"extension" yaml:"extension"`
	ExcludeDirs      []string `mapstructure:"exclude_dirs" yaml:"exclude_dirs"`
	ExcludeBasenames []string `mapstructure:"exclude_basenames" yaml:"exclude_basenames"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration and applies defaults for empty values
func (c *Config) Validate() error {
	if c.Root == "" {
		c.Root = DefaultRoot
	}
	if c.Output.Path == "" {
		c.Output.Path = DefaultOutputPath
	}
	if c.Filter.Extension == "" {
		c.Filter.Extension = DefaultExtension
	}
	if !strings.HasPrefix(c.Filter.Extension, ".") {
		return fmt.Errorf("invalid filter.extension %q: must start with a dot", c.Filter.Extension)
	}
	for _, dir := range c.Filter.ExcludeDirs {
		if strings.ContainsAny(dir, `/\`) {
			return fmt.Errorf("invalid filter.exclude_dirs entry %q: must be a bare directory name", dir)
		}
	}
	for _, base := range c.Filter.ExcludeBasenames {
		if strings.ContainsAny(base, `/\`) {
			return fmt.Errorf("invalid filter.exclude_basenames entry %q: must be a bare filename", base)
		}
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	return nil
}
