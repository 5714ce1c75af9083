package scanner

import (
	"path"
	"strings"
)

// Filter decides whether a discovered path belongs in the bundle.
// All conditions must hold: matching extension, no excluded directory
// segment, basename not excluded.
type Filter struct {
	ext   string
	dirs  map[string]bool
	bases map[string]bool
}

// FilterOptions contains options for creating a Filter
type FilterOptions struct {
	Extension        string
	ExcludeDirs      []string
	ExcludeBasenames []string
}

// NewFilter creates a new Filter
func NewFilter(opts FilterOptions) *Filter {
	dirs := make(map[string]bool, len(opts.ExcludeDirs))
	for _, d := range opts.ExcludeDirs {
		dirs[d] = true
	}
	bases := make(map[string]bool, len(opts.ExcludeBasenames))
	for _, b := range opts.ExcludeBasenames {
		bases[b] = true
	}
	return &Filter{
		ext:   opts.Extension,
		dirs:  dirs,
		bases: bases,
	}
}

// Accepts reports whether a slash-separated relative path belongs in the
// bundle. The extension comparison is case-sensitive. Pure: no filesystem
// access.
func (f *Filter) Accepts(p string) bool {
	if path.Ext(p) != f.ext {
		return false
	}

	p = strings.TrimPrefix(path.Clean(p), "./")
	segments := strings.Split(p, "/")

	base := segments[len(segments)-1]
	if f.bases[base] {
		return false
	}

	for _, seg := range segments[:len(segments)-1] {
		if f.dirs[seg] {
			return false
		}
	}

	return true
}

// ExcludesDir reports whether a directory name is excluded, letting the
// walk prune the whole subtree instead of filtering its files one by one.
func (f *Filter) ExcludesDir(name string) bool {
	return f.dirs[name]
}
