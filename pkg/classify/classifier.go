// File: pkg/classify/classifier.go
package classify

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"codecat/pkg/scanner"
)

// Classifier reads files and classifies their content. It holds no mutable
// state and may be shared between goroutines.
type Classifier struct {
	projectRoot string
	opts        Options
	logger      *zap.Logger
}

// New creates a Classifier computing relative paths against projectRoot.
func New(projectRoot string, opts Options, logger *zap.Logger) *Classifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Classifier{projectRoot: projectRoot, opts: opts, logger: logger}
}

// Classify reads one file and returns its classification. An error is only
// returned when StopOnError is set and the file could not be read or decoded.
func (c *Classifier) Classify(path string) (Result, error) {
	rel, ok := scanner.RelativeTo(c.projectRoot, path)
	if !ok {
		rel = filepath.Base(path)
	}
	res := Result{Path: path, RelPath: rel}

	data, err := os.ReadFile(path)
	if err != nil {
		c.logger.Debug("Failed to read file", zap.String("filePath", path), zap.Error(err))
		if c.opts.StopOnError {
			return Result{}, fmt.Errorf("%w: %s: %w", ErrAccess, rel, err)
		}
		res.Status = StatusAccessError
		res.Message = fmt.Sprintf("OS error accessing file (%s): %v", errorKind(err), err)
		return res, nil
	}

	if len(data) == 0 {
		res.Status = StatusText
		res.Encoding = PrimaryEncoding
		return res, nil
	}

	window := data[:min(len(data), BinaryWindow)]
	if isLikelyBinary(window) {
		res.Status = StatusBinary
		res.MIME = mimetype.Detect(window).String()
		c.logger.Debug("Detected binary file", zap.String("filePath", path), zap.String("mime", res.MIME))
		return res, nil
	}

	content, enc, err := decodeText(data)
	if err != nil {
		c.logger.Debug("Failed to decode file", zap.String("filePath", path), zap.Error(err))
		if c.opts.StopOnError {
			return Result{}, fmt.Errorf("%w: %s: %w", ErrDecode, rel, err)
		}
		res.Status = StatusReadError
		res.Message = fmt.Sprintf("Failed to decode as text using [%s]. Last error: %v",
			strings.Join(Encodings, ", "), err)
		return res, nil
	}

	res.Status = StatusText
	res.Content = content
	res.Encoding = enc
	return res, nil
}
