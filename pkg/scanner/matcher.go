// File: pkg/scanner/matcher.go
package scanner

import (
	"fmt"
	"regexp"
	"strings"
)

// compiledPattern holds the regular expressions derived from one glob.
type compiledPattern struct {
	raw  string         // Pattern as configured.
	full *regexp.Regexp // Matches the whole relative path.
	dir  *regexp.Regexp // Matches a directory the pattern names; nil if none.
}

// Matcher matches slash-separated relative paths against a fixed set of globs.
// It is immutable after construction and safe for concurrent use.
type Matcher struct {
	patterns      []compiledPattern
	caseSensitive bool
}

// NewMatcher compiles every pattern once. An error is returned for a pattern
// whose translation is not a valid expression (for example a reversed range).
func NewMatcher(patterns []string, caseSensitive bool) (*Matcher, error) {
	m := &Matcher{caseSensitive: caseSensitive}
	for _, raw := range patterns {
		p := raw
		if !caseSensitive {
			p = strings.ToLower(p)
		}

		full, err := regexp.Compile(globToRegex(p))
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", raw, err)
		}

		cp := compiledPattern{raw: raw, full: full}
		switch d := dirForm(p); {
		case d == "":
		case d == p:
			cp.dir = full
		default:
			if cp.dir, err = regexp.Compile(globToRegex(d)); err != nil {
				return nil, fmt.Errorf("invalid pattern %q: %w", raw, err)
			}
		}
		m.patterns = append(m.patterns, cp)
	}
	return m, nil
}

// Empty reports whether the matcher holds no patterns.
func (m *Matcher) Empty() bool {
	return len(m.patterns) == 0
}

// MatchGlob reports whether relPath matches any pattern as a plain glob and
// returns the first pattern that did.
func (m *Matcher) MatchGlob(relPath string) (string, bool) {
	path := m.fold(relPath)
	for _, p := range m.patterns {
		if p.full.MatchString(path) {
			return p.raw, true
		}
	}
	return "", false
}

// MatchFile reports whether a file path is matched, either directly by a glob
// or because one of its ancestor directories is named by a pattern.
func (m *Matcher) MatchFile(relPath string) (string, bool) {
	return m.match(m.fold(relPath), false)
}

// MatchDir is MatchFile for directories: the directory itself may also match
// the directory form of a pattern ("build/" matches "build").
func (m *Matcher) MatchDir(relPath string) (string, bool) {
	return m.match(m.fold(relPath), true)
}

func (m *Matcher) match(path string, isDir bool) (string, bool) {
	for _, p := range m.patterns {
		if p.full.MatchString(path) {
			return p.raw, true
		}
		if p.dir == nil {
			continue
		}
		if isDir && p.dir.MatchString(path) {
			return p.raw, true
		}
		for i := 1; i < len(path); i++ {
			if path[i] == '/' && p.dir.MatchString(path[:i]) {
				return p.raw, true
			}
		}
	}
	return "", false
}

func (m *Matcher) fold(path string) string {
	if m.caseSensitive {
		return path
	}
	return strings.ToLower(path)
}
