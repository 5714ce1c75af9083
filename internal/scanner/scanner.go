package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"

	"github.com/ebrandao/srcbundle/internal/config"
	"github.com/ebrandao/srcbundle/internal/domain"
	"github.com/ebrandao/srcbundle/internal/utils"
)

// Scanner discovers candidate files under a root directory
type Scanner struct {
	fs     afero.Fs
	filter *Filter
	logger *utils.Logger
}

// ScannerOptions contains options for creating a Scanner
type ScannerOptions struct {
	Fs     afero.Fs
	Filter *Filter
	Logger *utils.Logger
}

// NewScanner creates a new Scanner
func NewScanner(opts ScannerOptions) *Scanner {
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	filter := opts.Filter
	if filter == nil {
		filter = NewFilter(FilterOptions{
			Extension:        config.DefaultExtension,
			ExcludeDirs:      config.DefaultExcludeDirs,
			ExcludeBasenames: config.DefaultExcludeBasenames,
		})
	}
	return &Scanner{
		fs:     fs,
		filter: filter,
		logger: opts.Logger,
	}
}

// Scan walks root and returns the accepted file paths relative to root,
// "./"-prefixed with forward slashes, in lexicographic full-path order.
// Symlinked directories are not followed, so a file cannot be visited
// twice through a linked subtree. Unreadable subdirectories are logged
// and skipped, not fatal.
func (s *Scanner) Scan(ctx context.Context, root string) ([]string, error) {
	info, err := s.fs.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrRootNotFound, root)
		}
		return nil, fmt.Errorf("failed to access root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotDirectory, root)
	}

	var files []string

	walkErr := afero.Walk(s.fs, root, func(path string, info os.FileInfo, err error) error {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}

		if err != nil {
			if s.logger != nil {
				s.logger.Warn().Err(domain.NewTraversalError(path, err)).Msg("Skipping unreadable entry")
			}
			return nil
		}

		if info.IsDir() {
			if path != root && s.filter.ExcludesDir(info.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		// Symlinks and other irregular entries are never candidates.
		if !info.Mode().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		relPath := "./" + filepath.ToSlash(rel)

		if s.filter.Accepts(relPath) {
			files = append(files, relPath)
		}

		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	// The walk visits entries sorted per directory; sorting the full
	// paths makes the order lexicographic and reproducible across runs.
	sort.Strings(files)

	return files, nil
}
