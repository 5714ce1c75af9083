package output

import (
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/spf13/afero"

	"github.com/ebrandao/srcbundle/internal/domain"
)

// Writer owns the output artifact for the duration of a run. The artifact
// is opened once in append mode and closed on all exit paths; records are
// appended monotonically in the order they are given.
type Writer struct {
	fs   afero.Fs
	path string
	file afero.File
}

// WriterOptions contains options for the writer
type WriterOptions struct {
	Fs   afero.Fs
	Path string
}

// NewWriter creates a new artifact writer
func NewWriter(opts WriterOptions) *Writer {
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	path := opts.Path
	if path == "" {
		path = "claude.txt"
	}
	return &Writer{
		fs:   fs,
		path: path,
	}
}

// Path returns the artifact path
func (w *Writer) Path() string {
	return w.path
}

// Reset removes a pre-existing artifact so the run starts clean.
// Idempotent: a missing artifact is not an error.
func (w *Writer) Reset() error {
	if err := w.fs.Remove(w.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: removing stale artifact %s: %v", domain.ErrWriteFailed, w.path, err)
	}
	return nil
}

// Open creates the artifact and keeps it open for appending
func (w *Writer) Open() error {
	if w.file != nil {
		return nil
	}
	f, err := w.fs.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("%w: creating artifact %s: %v", domain.ErrWriteFailed, w.path, err)
	}
	w.file = f
	return nil
}

// WriteRecord appends one record: a "# <path>" header line followed by the
// file's raw content. No separator is added beyond the content's own
// trailing newline, if any.
func (w *Writer) WriteRecord(path string, content []byte) error {
	if w.file == nil {
		return fmt.Errorf("%w: artifact %s is not open", domain.ErrWriteFailed, w.path)
	}
	if _, err := fmt.Fprintf(w.file, "# %s\n", path); err != nil {
		return fmt.Errorf("%w: appending header for %s: %v", domain.ErrWriteFailed, path, err)
	}
	if _, err := w.file.Write(content); err != nil {
		return fmt.Errorf("%w: appending content for %s: %v", domain.ErrWriteFailed, path, err)
	}
	return nil
}

// Close flushes and releases the artifact handle. Safe to call twice.
func (w *Writer) Close() error {
	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	if err != nil {
		return fmt.Errorf("%w: closing artifact %s: %v", domain.ErrWriteFailed, w.path, err)
	}
	return nil
}

// Compress writes a gzip copy of the finished artifact next to it and
// returns the compressed path. The artifact must be closed first.
func (w *Writer) Compress() (string, error) {
	src, err := w.fs.Open(w.path)
	if err != nil {
		return "", fmt.Errorf("%w: reading artifact %s: %v", domain.ErrWriteFailed, w.path, err)
	}
	defer src.Close()

	gzPath := w.path + ".gz"
	dst, err := w.fs.Create(gzPath)
	if err != nil {
		return "", fmt.Errorf("%w: creating %s: %v", domain.ErrWriteFailed, gzPath, err)
	}
	defer dst.Close()

	gz := gzip.NewWriter(dst)
	if _, err := io.Copy(gz, src); err != nil {
		gz.Close()
		return "", fmt.Errorf("%w: compressing %s: %v", domain.ErrWriteFailed, w.path, err)
	}
	if err := gz.Close(); err != nil {
		return "", fmt.Errorf("%w: compressing %s: %v", domain.ErrWriteFailed, w.path, err)
	}

	return gzPath, nil
}
