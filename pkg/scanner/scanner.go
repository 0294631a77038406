// File: pkg/scanner/scanner.go
package scanner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// Scanner discovers the files of a project that pass the configured filters.
type Scanner struct {
	cfg         ScanConfig
	projectRoot string
	include     *Matcher
	exclude     *Matcher
	logger      *zap.Logger
	reporter    Reporter
}

// Option customises a Scanner.
type Option func(*Scanner)

// WithLogger sets the structured logger used for debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Scanner) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithReporter sets the receiver of progress and verbose notices.
func WithReporter(r Reporter) Option {
	return func(s *Scanner) {
		if r != nil {
			s.reporter = r
		}
	}
}

// New creates a Scanner. Relative paths and exclusion rules are computed
// against projectRoot.
func New(cfg ScanConfig, projectRoot string, opts ...Option) (*Scanner, error) {
	root, err := ResolvePath(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	include, err := NewMatcher(cfg.IncludePatterns, cfg.CaseSensitive)
	if err != nil {
		return nil, fmt.Errorf("failed to compile include patterns: %w", err)
	}
	exclude, err := NewMatcher(cfg.ExcludePatterns, cfg.CaseSensitive)
	if err != nil {
		return nil, fmt.Errorf("failed to compile exclude patterns: %w", err)
	}

	s := &Scanner{
		cfg:         cfg,
		projectRoot: root,
		include:     include,
		exclude:     exclude,
		logger:      zap.NewNop(),
		reporter:    nopReporter{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// ProjectRoot returns the resolved project root.
func (s *Scanner) ProjectRoot() string {
	return s.projectRoot
}

// Scan walks scanRoot and returns the sorted, de-duplicated absolute paths of
// every file that passes the filters. Excluded directories are pruned before
// they are read. Problems with individual entries are logged and skipped;
// only a failure on scanRoot itself or cancellation is returned.
func (s *Scanner) Scan(ctx context.Context, scanRoot string) ([]string, error) {
	root, err := ResolvePath(scanRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve scan root: %w", err)
	}
	s.logger.Debug("Starting scan",
		zap.String("scanRoot", root),
		zap.String("projectRoot", s.projectRoot),
		zap.Int64("maxFileSizeBytes", s.cfg.MaxFileSizeBytes))

	found := make(map[string]struct{})
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if path == root {
				return err
			}
			s.logger.Warn("Error accessing path during scan", zap.String("path", path), zap.Error(err))
			return nil
		}

		if d.IsDir() {
			if path != root {
				if reason, skip := s.pruneDir(d.Name(), s.displayRel(path)); skip {
					s.logger.Debug("Pruning directory", zap.String("directory", path), zap.String("reason", reason))
					if s.cfg.Verbose {
						s.reporter.Excluded(s.displayRel(path)+"/", reason)
					}
					return filepath.SkipDir
				}
			}
			s.reporter.Scanning(displayDir(s.displayRel(path)))
			return nil
		}

		if d.Type()&fs.ModeSymlink != 0 {
			if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
				return nil // directory symlinks are not followed
			}
		}

		if abs, ok := s.acceptFile(path); ok {
			found[abs] = struct{}{}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Error during scan", zap.String("scanRoot", root), zap.Error(err))
		return nil, err
	}

	files := make([]string, 0, len(found))
	for f := range found {
		files = append(files, f)
	}
	sort.Strings(files)

	s.logger.Debug("Completed scan", zap.Int("files", len(files)))
	return files, nil
}

// Discover is Scan with each path paired with its project-relative form.
func (s *Scanner) Discover(ctx context.Context, scanRoot string) ([]DiscoveredFile, error) {
	paths, err := s.Scan(ctx, scanRoot)
	if err != nil {
		return nil, err
	}
	files := make([]DiscoveredFile, len(paths))
	for i, p := range paths {
		rel, ok := s.relPath(p)
		if !ok {
			rel = filepath.Base(p)
		}
		files[i] = DiscoveredFile{Path: p, RelPath: rel}
	}
	return files, nil
}

// pruneDir decides whether a directory must not be descended into.
func (s *Scanner) pruneDir(name, rel string) (string, bool) {
	if _, ok := s.cfg.ExcludeDirs[name]; ok {
		return fmt.Sprintf("directory name %q is excluded", name), true
	}
	if _, ok := s.cfg.ExcludeDirs[rel]; ok {
		return fmt.Sprintf("directory %q is excluded", rel), true
	}
	if pattern, ok := s.exclude.MatchDir(rel); ok {
		return fmt.Sprintf("matches exclude pattern %q", pattern), true
	}
	return "", false
}

// acceptFile applies the file filters and returns the resolved absolute path
// of an accepted file.
func (s *Scanner) acceptFile(path string) (string, bool) {
	abs := resolveOrClean(path)
	rel, ok := s.relPath(abs)
	if !ok {
		if rel, ok = s.relPath(path); !ok {
			rel = filepath.Base(path)
		}
	}

	if pattern, ok := s.exclude.MatchFile(rel); ok {
		s.skip(rel, fmt.Sprintf("matches exclude pattern %q", pattern))
		return "", false
	}

	if !s.include.Empty() {
		if _, ok := s.include.MatchGlob(rel); !ok {
			s.skip(rel, "not matched by any include pattern")
			return "", false
		}
	}

	if _, ok := s.cfg.ExcludeFiles[abs]; ok {
		s.skip(rel, "explicitly excluded file")
		return "", false
	}

	info, err := os.Stat(abs)
	if err != nil {
		s.logger.Warn("Could not get file size", zap.String("filePath", abs), zap.Error(err))
		s.skip(rel, fmt.Sprintf("could not get size: %v", err))
		return "", false
	}
	if info.Size() > s.cfg.MaxFileSizeBytes {
		s.skip(rel, fmt.Sprintf("large file (%s > %s)",
			humanize.IBytes(uint64(info.Size())), humanize.IBytes(uint64(s.cfg.MaxFileSizeBytes))))
		return "", false
	}

	s.logger.Debug("Including file", zap.String("filePath", abs), zap.String("relPath", rel))
	if s.cfg.Verbose {
		s.reporter.Included(rel)
	}
	return abs, true
}

func (s *Scanner) skip(rel, reason string) {
	s.logger.Debug("Skipping file", zap.String("relPath", rel), zap.String("reason", reason))
	if s.cfg.Verbose {
		s.reporter.Excluded(rel, reason)
	}
}

// relPath returns path relative to the project root in slash form, or false
// when path lies outside it.
func (s *Scanner) relPath(path string) (string, bool) {
	return RelativeTo(s.projectRoot, path)
}

// displayRel is relPath for directories under the scan root, falling back to
// the slash form of the path when it is outside the project root.
func (s *Scanner) displayRel(path string) string {
	if rel, ok := s.relPath(path); ok {
		return rel
	}
	return filepath.ToSlash(path)
}

func displayDir(rel string) string {
	if rel == "." {
		return "."
	}
	return "./" + rel
}

// RelativeTo returns target relative to base using forward slashes. The
// boolean is false if target is not inside base.
func RelativeTo(base, target string) (string, bool) {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return "", false
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") || filepath.IsAbs(rel) {
		return "", false
	}
	return rel, true
}

// ResolvePath makes path absolute and resolves symlinks where possible.
func ResolvePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return resolveOrClean(abs), nil
}

func resolveOrClean(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	return filepath.Clean(path)
}
