package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func defaultFilter() *Filter {
	return NewFilter(FilterOptions{
		Extension:        ".py",
		ExcludeDirs:      []string{"migrations"},
		ExcludeBasenames: []string{"__init__.py"},
	})
}

func TestFilterAccepts(t *testing.T) {
	f := defaultFilter()

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"python file at root", "./a.py", true},
		{"python file in package", "./pkg/mod.py", true},
		{"nested python file", "./a/b/c/deep.py", true},
		{"wrong extension", "./notes.txt", false},
		{"no extension", "./Makefile", false},
		{"uppercase extension rejected", "./a.PY", false},
		{"dunder init excluded", "./pkg/__init__.py", false},
		{"dunder init at root excluded", "./__init__.py", false},
		{"migrations dir excluded", "./pkg/migrations/0001.py", false},
		{"migrations anywhere excluded", "./a/migrations/b/c.py", false},
		{"migrations as basename allowed", "./pkg/migrations.py", true},
		{"file named like excluded dir with ext", "./migrations.py", true},
		{"path without dot-slash prefix", "pkg/mod.py", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Accepts(tt.path))
		})
	}
}

func TestFilterAcceptsCustomRules(t *testing.T) {
	f := NewFilter(FilterOptions{
		Extension:        ".go",
		ExcludeDirs:      []string{"vendor", "testdata"},
		ExcludeBasenames: []string{"doc.go"},
	})

	assert.True(t, f.Accepts("./cmd/main.go"))
	assert.False(t, f.Accepts("./vendor/lib/lib.go"))
	assert.False(t, f.Accepts("./pkg/testdata/fixture.go"))
	assert.False(t, f.Accepts("./pkg/doc.go"))
	assert.False(t, f.Accepts("./cmd/main.py"))
}

func TestFilterExcludesDir(t *testing.T) {
	f := defaultFilter()

	assert.True(t, f.ExcludesDir("migrations"))
	assert.False(t, f.ExcludesDir("pkg"))
	assert.False(t, f.ExcludesDir("__init__.py"))
}

func TestFilterEmptyOptions(t *testing.T) {
	f := NewFilter(FilterOptions{})

	// No extension configured means only extensionless paths match.
	assert.False(t, f.Accepts("./a.py"))
	assert.True(t, f.Accepts("./Makefile"))
}
