package scanner

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates files under root. Keys are slash-separated relative
// paths; values are file contents.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

// tempRoot returns a symlink-resolved temporary directory so that expected
// paths compare equal to the scanner's resolved output.
func tempRoot(t *testing.T) string {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return root
}

func dirSet(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

func baseConfig() ScanConfig {
	return ScanConfig{
		ExcludeDirs:      map[string]struct{}{},
		ExcludeFiles:     map[string]struct{}{},
		MaxFileSizeBytes: 1024 * 1024,
	}
}

func scanRel(t *testing.T, cfg ScanConfig, root string, opts ...Option) []string {
	t.Helper()
	s, err := New(cfg, root, opts...)
	require.NoError(t, err)
	files, err := s.Scan(context.Background(), root)
	require.NoError(t, err)

	rels := make([]string, 0, len(files))
	for _, f := range files {
		rel, ok := RelativeTo(root, f)
		require.True(t, ok, "%s outside %s", f, root)
		rels = append(rels, rel)
	}
	return rels
}

type recordingReporter struct {
	mu       sync.Mutex
	scanned  []string
	excluded map[string]string
	included []string
}

func newRecordingReporter() *recordingReporter {
	return &recordingReporter{excluded: map[string]string{}}
}

func (r *recordingReporter) Scanning(dir string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scanned = append(r.scanned, dir)
}

func (r *recordingReporter) Excluded(rel, reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.excluded[rel] = reason
}

func (r *recordingReporter) Included(rel string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.included = append(r.included, rel)
}

func TestScanIncludesMatchingAndPrunesExcludedDirs(t *testing.T) {
	root := tempRoot(t)
	writeTree(t, root, map[string]string{
		"main.py":       "print('hi')\n",
		"build/big.bin": strings.Repeat("x", 4096),
		"build/gen.py":  "generated\n",
		"notes.txt":     "not included\n",
	})

	cfg := baseConfig()
	cfg.IncludePatterns = []string{"*.py"}
	cfg.ExcludeDirs = dirSet("build")

	s, err := New(cfg, root)
	require.NoError(t, err)
	files, err := s.Scan(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "main.py")}, files)
}

func TestScanDoesNotDescendIntoPrunedDirs(t *testing.T) {
	root := tempRoot(t)
	writeTree(t, root, map[string]string{
		"src/app.js":                 "x",
		"node_modules/pkg/index.js":  "x",
		"node_modules/pkg/deep/a.js": "x",
		"src/vendor/lib/internal.js": "x",
		"dist/bundle.js":             "x",
		"output/build/artifact.js":   "x",
	})

	cfg := baseConfig()
	cfg.ExcludeDirs = dirSet("node_modules", "src/vendor")
	cfg.ExcludePatterns = []string{"dist/*", "build/"}
	cfg.Verbose = true

	rep := newRecordingReporter()
	rels := scanRel(t, cfg, root, WithReporter(rep))

	// "build/" names a top-level directory only; a nested build/ survives.
	assert.Equal(t, []string{"output/build/artifact.js", "src/app.js"}, rels)
	for _, dir := range rep.scanned {
		assert.NotContains(t, dir, "node_modules")
		assert.NotContains(t, dir, "vendor")
		assert.NotContains(t, dir, "dist")
	}
	assert.Contains(t, rep.scanned, ".")
	assert.Contains(t, rep.scanned, "./src")
	assert.Contains(t, rep.scanned, "./output/build")
	assert.Contains(t, rep.excluded, "node_modules/")
	assert.Contains(t, rep.excluded, "src/vendor/")
	assert.Contains(t, rep.excluded, "dist/")
	assert.Equal(t, []string{"output/build/artifact.js", "src/app.js"}, rep.included)
}

func TestScanExcludeTakesPrecedenceOverInclude(t *testing.T) {
	root := tempRoot(t)
	writeTree(t, root, map[string]string{
		"app.go":      "package main",
		"app_test.go": "package main",
	})

	cfg := baseConfig()
	cfg.IncludePatterns = []string{"*.go"}
	cfg.ExcludePatterns = []string{"*_test.go"}

	assert.Equal(t, []string{"app.go"}, scanRel(t, cfg, root))
}

func TestScanEmptyIncludeListIncludesEverything(t *testing.T) {
	root := tempRoot(t)
	writeTree(t, root, map[string]string{
		"a.txt":       "a",
		"b/c.unknown": "c",
		"Makefile":    "all:",
	})

	assert.Equal(t, []string{"Makefile", "a.txt", "b/c.unknown"}, scanRel(t, baseConfig(), root))
}

func TestScanMaxFileSizeBoundary(t *testing.T) {
	root := tempRoot(t)
	writeTree(t, root, map[string]string{
		"exact.txt": strings.Repeat("a", 1024),
		"over.txt":  strings.Repeat("a", 1025),
	})

	cfg := baseConfig()
	cfg.MaxFileSizeBytes = 1024
	cfg.Verbose = true
	rep := newRecordingReporter()

	assert.Equal(t, []string{"exact.txt"}, scanRel(t, cfg, root, WithReporter(rep)))
	assert.Contains(t, rep.excluded["over.txt"], "large file")
}

func TestScanExcludeFiles(t *testing.T) {
	root := tempRoot(t)
	writeTree(t, root, map[string]string{
		"keep.md":           "k",
		"codecat_output.md": "previous output",
	})

	cfg := baseConfig()
	cfg.ExcludeFiles = dirSet(filepath.Join(root, "codecat_output.md"))

	assert.Equal(t, []string{"keep.md"}, scanRel(t, cfg, root))
}

func TestScanIsIdempotent(t *testing.T) {
	root := tempRoot(t)
	writeTree(t, root, map[string]string{
		"z.go":     "z",
		"a/b.go":   "b",
		"a.b/c.go": "c",
	})

	cfg := baseConfig()
	first := scanRel(t, cfg, root)
	second := scanRel(t, cfg, root)
	assert.Equal(t, first, second)
	assert.Len(t, first, 3)
}

func TestScanCaseInsensitivePatterns(t *testing.T) {
	root := tempRoot(t)
	writeTree(t, root, map[string]string{
		"Main.PY":   "x",
		"other.txt": "x",
	})

	cfg := baseConfig()
	cfg.IncludePatterns = []string{"*.py"}
	assert.Equal(t, []string{"Main.PY"}, scanRel(t, cfg, root))

	cfg.CaseSensitive = true
	assert.Empty(t, scanRel(t, cfg, root))
}

func TestScanSubdirectoryUsesProjectRelativePatterns(t *testing.T) {
	root := tempRoot(t)
	writeTree(t, root, map[string]string{
		"sub/keep.txt": "k",
		"sub/skip.txt": "s",
		"top.txt":      "t",
	})

	cfg := baseConfig()
	cfg.ExcludePatterns = []string{"sub/skip.txt"}

	s, err := New(cfg, root)
	require.NoError(t, err)
	files, err := s.Scan(context.Background(), filepath.Join(root, "sub"))
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "sub", "keep.txt")}, files)
}

func TestScanSkipsDirectorySymlinks(t *testing.T) {
	root := tempRoot(t)
	target := tempRoot(t)
	writeTree(t, root, map[string]string{"real.txt": "r"})
	writeTree(t, target, map[string]string{"linked.txt": "l"})
	if err := os.Symlink(target, filepath.Join(root, "link")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	assert.Equal(t, []string{"real.txt"}, scanRel(t, baseConfig(), root))
}

func TestScanMissingRootFails(t *testing.T) {
	root := tempRoot(t)
	s, err := New(baseConfig(), root)
	require.NoError(t, err)

	_, err = s.Scan(context.Background(), filepath.Join(root, "missing"))
	assert.Error(t, err)
}

func TestScanHonoursCancellation(t *testing.T) {
	root := tempRoot(t)
	writeTree(t, root, map[string]string{"a.txt": "a"})

	s, err := New(baseConfig(), root)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Scan(ctx, root)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewRejectsInvalidPatterns(t *testing.T) {
	cfg := baseConfig()
	cfg.ExcludePatterns = []string{"[z-a]"}
	_, err := New(cfg, tempRoot(t))
	assert.Error(t, err)
}

func TestDiscover(t *testing.T) {
	root := tempRoot(t)
	writeTree(t, root, map[string]string{
		"cmd/main.go": "package main",
		"go.mod":      "module x",
	})

	s, err := New(baseConfig(), root)
	require.NoError(t, err)
	files, err := s.Discover(context.Background(), root)
	require.NoError(t, err)

	assert.Equal(t, []DiscoveredFile{
		{Path: filepath.Join(root, "cmd", "main.go"), RelPath: "cmd/main.go"},
		{Path: filepath.Join(root, "go.mod"), RelPath: "go.mod"},
	}, files)
	assert.Equal(t, []string{files[0].Path, files[1].Path}, Paths(files))
}

func TestRelativeTo(t *testing.T) {
	base := filepath.FromSlash("/project")

	rel, ok := RelativeTo(base, filepath.FromSlash("/project/a/b.go"))
	assert.True(t, ok)
	assert.Equal(t, "a/b.go", rel)

	_, ok = RelativeTo(base, filepath.FromSlash("/other/b.go"))
	assert.False(t, ok)

	_, ok = RelativeTo(base, filepath.FromSlash("/project/../etc"))
	assert.False(t, ok)

	rel, ok = RelativeTo(base, base)
	assert.True(t, ok)
	assert.Equal(t, ".", rel)
}
