package manifest

import "fmt"

// Config represents the complete manifest configuration
type Config struct {
	Profiles []Profile `yaml:"profiles" json:"profiles"`
	Options  Options   `yaml:"options" json:"options"`
}

// Profile represents an individual bundle run
type Profile struct {
	Name             string   `yaml:"name,omitempty" json:"name,omitempty"`
	Root             string   `yaml:"root" json:"root"`
	Output           string   `yaml:"output,omitempty" json:"output,omitempty"`
	Extension        string   `yaml:"extension,omitempty" json:"extension,omitempty"`
	ExcludeDirs      []string `yaml:"exclude_dirs,omitempty" json:"exclude_dirs,omitempty"`
	ExcludeBasenames []string `yaml:"exclude_basenames,omitempty" json:"exclude_basenames,omitempty"`
	Compress         *bool    `yaml:"compress,omitempty" json:"compress,omitempty"`
}

// Options represents global manifest options
type Options struct {
	ContinueOnError bool `yaml:"continue_on_error" json:"continue_on_error"`
	Compress        bool `yaml:"compress,omitempty" json:"compress,omitempty"`
}

// Compressed reports whether a profile's artifact should be gzipped,
// falling back to the global option when the profile does not say.
func (p *Profile) Compressed(opts Options) bool {
	if p.Compress != nil {
		return *p.Compress
	}
	return opts.Compress
}

// Validate validates the manifest configuration
func (c *Config) Validate() error {
	if len(c.Profiles) == 0 {
		return ErrNoProfiles
	}
	outputs := make(map[string]int, len(c.Profiles))
	for i, p := range c.Profiles {
		if p.Root == "" {
			return fmt.Errorf("profile %d (%s): %w", i, p.Name, ErrEmptyRoot)
		}
		if prev, ok := outputs[p.Output]; ok {
			return fmt.Errorf("profiles %d and %d both write %s: %w", prev, i, p.Output, ErrDuplicateOutput)
		}
		outputs[p.Output] = i
	}
	return nil
}
