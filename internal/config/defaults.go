package config

import (
	"os"
	"path/filepath"
)

// Default values
const (
	DefaultRoot       = "."
	DefaultOutputPath = "claude.txt"
	DefaultExtension  = ".py"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// Default exclusion rules
var (
	DefaultExcludeDirs      = []string{"migrations"}
	DefaultExcludeBasenames = []string{"__init__.py"}
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".srcbundle"
	}
	return filepath.Join(home, ".srcbundle")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Root: DefaultRoot,
		Output: OutputConfig{
			Path:     DefaultOutputPath,
			Compress: false,
		},
		Filter: FilterConfig{
			Extension:        DefaultExtension,
			ExcludeDirs:      DefaultExcludeDirs,
			ExcludeBasenames: DefaultExcludeBasenames,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
