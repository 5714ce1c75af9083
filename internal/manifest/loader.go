package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/ebrandao/srcbundle/internal/config"
)

// Loader loads and validates manifest files
type Loader struct {
	fs afero.Fs
}

// NewLoader creates a new manifest loader
func NewLoader() *Loader {
	return &Loader{fs: afero.NewOsFs()}
}

// NewLoaderWithFs creates a manifest loader on the given filesystem
func NewLoaderWithFs(fs afero.Fs) *Loader {
	return &Loader{fs: fs}
}

// Load reads and parses a manifest file from the given path
func (l *Loader) Load(path string) (*Config, error) {
	if _, err := l.fs.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest file: %w", err)
	}

	return l.LoadFromBytes(data, filepath.Ext(path))
}

// LoadFromBytes parses manifest configuration from raw bytes
func (l *Loader) LoadFromBytes(data []byte, ext string) (*Config, error) {
	ext = strings.ToLower(ext)

	var cfg Config
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExt, ext)
	}

	l.applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (l *Loader) applyDefaults(cfg *Config) {
	for i := range cfg.Profiles {
		p := &cfg.Profiles[i]
		if p.Output == "" {
			if p.Name != "" {
				p.Output = p.Name + ".txt"
			} else {
				p.Output = config.DefaultOutputPath
			}
		}
		if p.Extension == "" {
			p.Extension = config.DefaultExtension
		}
		if p.ExcludeDirs == nil {
			p.ExcludeDirs = config.DefaultExcludeDirs
		}
		if p.ExcludeBasenames == nil {
			p.ExcludeBasenames = config.DefaultExcludeBasenames
		}
	}
}
