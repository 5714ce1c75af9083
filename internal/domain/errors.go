package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrRootNotFound indicates the bundle root does not exist
	ErrRootNotFound = errors.New("root not found")

	// ErrNotDirectory indicates the bundle root is not a directory
	ErrNotDirectory = errors.New("root is not a directory")

	// ErrWriteFailed indicates the output artifact could not be created or appended to
	ErrWriteFailed = errors.New("write failed")

	// ErrNoSource indicates no root directory or repository URL was given
	ErrNoSource = errors.New("no source specified")
)

// TraversalError represents a non-fatal error listing a subdirectory during discovery
type TraversalError struct {
	Dir string
	Err error
}

func (e *TraversalError) Error() string {
	return fmt.Sprintf("traversal error for %s: %v", e.Dir, e.Err)
}

func (e *TraversalError) Unwrap() error {
	return e.Err
}

// NewTraversalError creates a new TraversalError
func NewTraversalError(dir string, err error) *TraversalError {
	return &TraversalError{Dir: dir, Err: err}
}

// ReadError represents a candidate file that could not be read after discovery
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read error for %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// NewReadError creates a new ReadError
func NewReadError(path string, err error) *ReadError {
	return &ReadError{Path: path, Err: err}
}

// CloneError represents a failure fetching a remote repository source
type CloneError struct {
	URL string
	Err error
}

func (e *CloneError) Error() string {
	return fmt.Sprintf("clone error for %s: %v", e.URL, e.Err)
}

func (e *CloneError) Unwrap() error {
	return e.Err
}

// NewCloneError creates a new CloneError
func NewCloneError(url string, err error) *CloneError {
	return &CloneError{URL: url, Err: err}
}

// IsFatal reports whether an error must abort the run rather than be skipped
func IsFatal(err error) bool {
	if errors.Is(err, ErrRootNotFound) || errors.Is(err, ErrNotDirectory) ||
		errors.Is(err, ErrWriteFailed) || errors.Is(err, ErrNoSource) {
		return true
	}
	var cloneErr *CloneError
	return errors.As(err, &cloneErr)
}
