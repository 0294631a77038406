// File: pkg/combine/worker.go
package combine

import (
	"context"
	"runtime"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"codecat/pkg/classify"
)

// FileClassifier classifies a single file.
type FileClassifier interface {
	Classify(path string) (classify.Result, error)
}

// PoolOptions configures ProcessFiles.
type PoolOptions struct {
	MaxWorkers int                       // Worker count; <= 0 uses runtime.NumCPU().
	OnResult   func(res classify.Result) // Called from the collecting goroutine for each result.
	Logger     *zap.Logger
}

// ProcessFiles classifies files with a bounded worker pool and returns the
// results sorted by relative path. The first error returned by the
// classifier cancels the remaining work; it is returned and any results
// gathered so far are discarded.
func ProcessFiles(ctx context.Context, files []string, c FileClassifier, opts PoolOptions) ([]classify.Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	maxWorkers := opts.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
		logger.Debug("Adjusted worker count", zap.Int("workers", maxWorkers))
	}
	maxWorkers = max(1, min(maxWorkers, len(files)))

	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan string)
	results := make(chan classify.Result, maxWorkers)

	g.Go(func() error {
		defer close(jobs)
		for _, file := range files {
			select {
			case jobs <- file:
			case <-ctx.Done():
				logger.Debug("Stopped distributing files", zap.Error(ctx.Err()))
				return ctx.Err()
			}
		}
		logger.Debug("All files distributed to workers")
		return nil
	})

	logger.Debug("Initializing worker pool", zap.Int("workers", maxWorkers))
	for w := range maxWorkers {
		workerLogger := logger.With(zap.Int("workerID", w))
		g.Go(func() error {
			return worker(ctx, jobs, results, c, workerLogger)
		})
	}

	go func() {
		_ = g.Wait()
		close(results)
	}()

	collected := make([]classify.Result, 0, len(files))
	for res := range results {
		if opts.OnResult != nil {
			opts.OnResult(res)
		}
		collected = append(collected, res)
	}

	if err := g.Wait(); err != nil {
		logger.Error("File processing aborted", zap.Error(err))
		return nil, err
	}

	SortResults(collected)
	logger.Debug("All files processed", zap.Int("processedFiles", len(collected)))
	return collected, nil
}

// worker classifies files from jobs until the channel is closed or the
// context is cancelled.
func worker(ctx context.Context, jobs <-chan string, results chan<- classify.Result, c FileClassifier, logger *zap.Logger) error {
	logger.Debug("Worker started")
	for file := range jobs {
		if err := ctx.Err(); err != nil {
			return err
		}

		res, err := c.Classify(file)
		if err != nil {
			logger.Error("Worker failed to process file", zap.String("filePath", file), zap.Error(err))
			return err
		}

		select {
		case results <- res:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	logger.Debug("Worker finished processing")
	return nil
}

// SortResults orders results by relative path, comparing path segments so
// that "a/b" sorts before "a.b".
func SortResults(results []classify.Result) {
	sort.SliceStable(results, func(i, j int) bool {
		return lessPath(results[i].RelPath, results[j].RelPath)
	})
}

func lessPath(a, b string) bool {
	as, bs := strings.Split(a, "/"), strings.Split(b, "/")
	for i := 0; i < len(as) && i < len(bs); i++ {
		if as[i] != bs[i] {
			return as[i] < bs[i]
		}
	}
	return len(as) < len(bs)
}
