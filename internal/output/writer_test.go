package output

import (
	"io"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ebrandao/srcbundle/internal/domain"
)

func TestNewWriter(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		w := NewWriter(WriterOptions{})
		assert.Equal(t, "claude.txt", w.Path())
	})

	t.Run("custom path", func(t *testing.T) {
		w := NewWriter(WriterOptions{Path: "bundle.txt"})
		assert.Equal(t, "bundle.txt", w.Path())
	})
}

func TestWriterReset(t *testing.T) {
	t.Run("removes existing artifact", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "out.txt", []byte("stale"), 0644))

		w := NewWriter(WriterOptions{Fs: fs, Path: "out.txt"})
		require.NoError(t, w.Reset())

		exists, err := afero.Exists(fs, "out.txt")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("idempotent on missing artifact", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		w := NewWriter(WriterOptions{Fs: fs, Path: "out.txt"})

		require.NoError(t, w.Reset())
		require.NoError(t, w.Reset())
	})

	t.Run("read-only filesystem is a write failure", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "out.txt", []byte("stale"), 0644))

		w := NewWriter(WriterOptions{Fs: afero.NewReadOnlyFs(fs), Path: "out.txt"})
		assert.ErrorIs(t, w.Reset(), domain.ErrWriteFailed)
	})
}

func TestWriterRecords(t *testing.T) {
	t.Run("header then raw content, no separator", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		w := NewWriter(WriterOptions{Fs: fs, Path: "out.txt"})

		require.NoError(t, w.Open())
		require.NoError(t, w.WriteRecord("./a.py", []byte("print(1)\n")))
		require.NoError(t, w.WriteRecord("./pkg/mod.py", []byte("print(2)\n")))
		require.NoError(t, w.Close())

		data, err := afero.ReadFile(fs, "out.txt")
		require.NoError(t, err)
		assert.Equal(t, "# ./a.py\nprint(1)\n# ./pkg/mod.py\nprint(2)\n", string(data))
	})

	t.Run("content without trailing newline abuts next header", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		w := NewWriter(WriterOptions{Fs: fs, Path: "out.txt"})

		require.NoError(t, w.Open())
		require.NoError(t, w.WriteRecord("./a.py", []byte("x = 1")))
		require.NoError(t, w.WriteRecord("./b.py", []byte("y = 2")))
		require.NoError(t, w.Close())

		data, err := afero.ReadFile(fs, "out.txt")
		require.NoError(t, err)
		assert.Equal(t, "# ./a.py\nx = 1# ./b.py\ny = 2", string(data))
	})

	t.Run("write before open fails", func(t *testing.T) {
		w := NewWriter(WriterOptions{Fs: afero.NewMemMapFs(), Path: "out.txt"})
		assert.ErrorIs(t, w.WriteRecord("./a.py", []byte("x")), domain.ErrWriteFailed)
	})

	t.Run("open on read-only filesystem fails", func(t *testing.T) {
		fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
		w := NewWriter(WriterOptions{Fs: fs, Path: "out.txt"})
		assert.ErrorIs(t, w.Open(), domain.ErrWriteFailed)
	})

	t.Run("close is safe to call twice", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		w := NewWriter(WriterOptions{Fs: fs, Path: "out.txt"})

		require.NoError(t, w.Open())
		require.NoError(t, w.Close())
		require.NoError(t, w.Close())
	})
}

func TestWriterCompress(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriter(WriterOptions{Fs: fs, Path: "out.txt"})

	require.NoError(t, w.Open())
	require.NoError(t, w.WriteRecord("./a.py", []byte("print(1)\n")))
	require.NoError(t, w.Close())

	gzPath, err := w.Compress()
	require.NoError(t, err)
	assert.Equal(t, "out.txt.gz", gzPath)

	f, err := fs.Open(gzPath)
	require.NoError(t, err)
	defer f.Close()

	gz, err := gzip.NewReader(f)
	require.NoError(t, err)
	defer gz.Close()

	data, err := io.ReadAll(gz)
	require.NoError(t, err)
	assert.Equal(t, "# ./a.py\nprint(1)\n", string(data))
}

func TestWriterCompressMissingArtifact(t *testing.T) {
	w := NewWriter(WriterOptions{Fs: afero.NewMemMapFs(), Path: "out.txt"})

	_, err := w.Compress()
	assert.ErrorIs(t, err, domain.ErrWriteFailed)
}
