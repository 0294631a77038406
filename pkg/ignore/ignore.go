// Package ignore reads extra exclude patterns from a project's ignore file.
package ignore

import (
	"errors"
	"os"
	"strings"

	"go.uber.org/zap"
)

// FileName is the ignore file looked up in the project root.
const FileName = ".codecatignore"

// ParseLines returns the glob patterns contained in lines. Blank lines and
// '#' comments are skipped; "\#" and "\!" escape a leading '#' or '!'.
// Negated patterns ("!foo") are not supported and are returned separately.
func ParseLines(lines ...string) (patterns, negated []string) {
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Ignore empty lines and comments.
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		if strings.HasPrefix(trimmed, "!") {
			negated = append(negated, trimmed)
			continue
		}

		// Handle escaped characters for `#` and `!`.
		if strings.HasPrefix(trimmed, `\#`) || strings.HasPrefix(trimmed, `\!`) {
			trimmed = trimmed[1:]
		}
		patterns = append(patterns, trimmed)
	}
	return patterns, negated
}

// LoadFile reads exclude patterns from an ignore file. A missing file is not
// an error and yields no patterns.
func LoadFile(path string, logger *zap.Logger) ([]string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Debug("Ignore file does not exist and will be skipped", zap.String("filePath", path))
			return nil, nil
		}
		logger.Error("Failed to read ignore file", zap.String("filePath", path), zap.Error(err))
		return nil, err
	}

	lines := strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")
	patterns, negated := ParseLines(lines...)
	for _, n := range negated {
		logger.Warn("Negated ignore patterns are not supported", zap.String("filePath", path), zap.String("pattern", n))
	}
	logger.Debug("Compiled ignore patterns", zap.String("filePath", path), zap.Int("patternCount", len(patterns)))
	return patterns, nil
}
