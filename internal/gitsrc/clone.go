package gitsrc

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-git/go-git/v5"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"

	"github.com/ebrandao/srcbundle/internal/domain"
	"github.com/ebrandao/srcbundle/internal/utils"
)

// Fetcher shallow-clones a remote repository so it can be bundled like a
// local directory
type Fetcher struct {
	client          Client
	logger          *utils.Logger
	maxRetries      uint64
	initialInterval time.Duration
}

// FetcherOptions contains options for creating a Fetcher
type FetcherOptions struct {
	Client          Client
	Logger          *utils.Logger
	MaxRetries      int
	InitialInterval time.Duration
}

// NewFetcher creates a new Fetcher
func NewFetcher(opts FetcherOptions) *Fetcher {
	client := opts.Client
	if client == nil {
		client = NewClient()
	}
	maxRetries := opts.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}
	initialInterval := opts.InitialInterval
	if initialInterval <= 0 {
		initialInterval = 1 * time.Second
	}
	return &Fetcher{
		client:          client,
		logger:          opts.Logger,
		maxRetries:      uint64(maxRetries),
		initialInterval: initialInterval,
	}
}

// IsRemote reports whether the source argument names a remote repository
// rather than a local directory
func IsRemote(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(source, "git@") ||
		strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://") ||
		strings.HasSuffix(lower, ".git")
}

// Fetch clones the repository (depth 1) into a temp directory and returns
// its path along with a cleanup function. Transient failures are retried
// with exponential backoff; context cancellation stops the retries.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, func(), error) {
	tmpDir, err := os.MkdirTemp("", "srcbundle-*")
	if err != nil {
		return "", nil, domain.NewCloneError(url, err)
	}
	cleanup := func() { os.RemoveAll(tmpDir) }

	cloneOpts := &git.CloneOptions{
		URL:   url,
		Depth: 1,
	}
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		cloneOpts.Auth = &githttp.BasicAuth{
			Username: "token",
			Password: token,
		}
	}

	if f.logger != nil {
		f.logger.Info().Str("url", url).Msg("Cloning repository")
	}

	operation := func() error {
		_, cloneErr := f.client.PlainCloneContext(ctx, tmpDir, false, cloneOpts)
		if cloneErr != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(cloneErr)
			}
			// Drop any partial clone before the next attempt.
			os.RemoveAll(tmpDir)
			if mkErr := os.MkdirAll(tmpDir, 0755); mkErr != nil {
				return backoff.Permanent(mkErr)
			}
			if f.logger != nil {
				f.logger.Warn().Err(cloneErr).Str("url", url).Msg("Clone attempt failed, retrying")
			}
			return cloneErr
		}
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = f.initialInterval

	if err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(b, f.maxRetries), ctx)); err != nil {
		cleanup()
		return "", nil, domain.NewCloneError(url, err)
	}

	return tmpDir, cleanup, nil
}
