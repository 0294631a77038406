// File: pkg/combine/execute.go
package combine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"codecat/pkg/classify"
	"codecat/pkg/config"
	"codecat/pkg/console"
	"codecat/pkg/ignore"
	"codecat/pkg/markdown"
	"codecat/pkg/output"
	"codecat/pkg/scanner"
	"codecat/pkg/version"
)

// ErrNoFiles is returned when the scan selects no files.
var ErrNoFiles = errors.New("no files found to aggregate based on the current configuration")

// Session is a resolved project and configuration ready to be scanned.
type Session struct {
	ProjectRoot string
	Config      *config.Config
	logger      *zap.Logger
	console     *console.Console
}

// Prepare resolves the project directory and builds the effective
// configuration: defaults, then the config file, then the project's ignore
// file, then command-line overrides.
func Prepare(args Arguments, logger *zap.Logger, con *console.Console) (*Session, error) {
	root, err := scanner.ResolvePath(args.ProjectPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("cannot access project directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("project path %s is not a directory", root)
	}

	cfg, cfgPath, loaded, err := config.Load(root, args.ConfigPath)
	if err != nil {
		logger.Warn("Failed to load config file, using defaults", zap.String("configPath", cfgPath), zap.Error(err))
		con.Warn("Notice: Could not load or parse config '%s'. Error: %v.", cfgPath, err)
	} else if loaded {
		logger.Debug("Loaded config file", zap.String("configPath", cfgPath))
	}

	cfg.ApplyOverrides(args.Overrides)
	cfg.Verbose = args.Verbose && !args.Silent

	extra, err := ignore.LoadFile(filepath.Join(root, ignore.FileName), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load ignore file: %w", err)
	}
	if len(extra) > 0 {
		cfg.ExcludePatterns = append(cfg.ExcludePatterns, extra...)
		logger.Debug("Added ignore file patterns", zap.Int("count", len(extra)))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &Session{ProjectRoot: root, Config: cfg, logger: logger, console: con}, nil
}

// Collect scans the project and classifies every discovered file. Results
// are sorted by relative path.
func (s *Session) Collect(ctx context.Context, maxWorkers int) ([]classify.Result, error) {
	sc, err := scanner.New(s.Config.ScanConfig(s.ProjectRoot), s.ProjectRoot,
		scanner.WithLogger(s.logger), scanner.WithReporter(s.console))
	if err != nil {
		return nil, fmt.Errorf("failed to create scanner: %w", err)
	}

	discovered, err := sc.Discover(ctx, s.ProjectRoot)
	s.console.Done()
	if err != nil {
		return nil, fmt.Errorf("error during file scanning: %w", err)
	}
	if len(discovered) == 0 {
		return nil, ErrNoFiles
	}
	s.console.Success("✔ Scan complete. Found %d files to process.", len(discovered))

	files := scanner.Paths(discovered)

	done := 0
	classifier := classify.New(s.ProjectRoot, s.Config.ClassifyOptions(), s.logger)
	results, err := ProcessFiles(ctx, files, classifier, PoolOptions{
		MaxWorkers: maxWorkers,
		Logger:     s.logger,
		OnResult: func(res classify.Result) {
			done++
			s.console.Result(res)
			s.console.Progress(done, len(files))
		},
	})
	s.console.Done()
	if err != nil {
		return nil, fmt.Errorf("critical error processing files: %w", err)
	}
	return results, nil
}

// Execute runs the full aggregation: scan, classify, summarise and write the
// Markdown document.
func Execute(ctx context.Context, args Arguments, logger *zap.Logger, con *console.Console) error {
	startTime := time.Now()

	s, err := Prepare(args, logger, con)
	if err != nil {
		return err
	}
	logger.Info("Starting combination process", zap.String("directory", s.ProjectRoot))

	con.Highlight("🐾 Codecat v%s | Processing: '%s'", version.Get().Version, s.ProjectRoot)
	if s.Config.Verbose {
		if data, err := config.Marshal(s.Config); err == nil {
			con.Info("Effective Configuration:\n%s", data)
		}
	}

	results, err := s.Collect(ctx, args.MaxWorkers)
	if err != nil {
		return err
	}

	if err := WriteSummary(con.Writer(), Summarize(results), filepath.Base(s.ProjectRoot)); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	if args.DryRun {
		con.Warn("\n--dry-run enabled. No output file will be written.")
		return nil
	}

	doc := markdown.Generate(results, s.ProjectRoot, markdown.Options{
		Header:        s.Config.GenerateHeader,
		Tree:          s.Config.GenerateTree,
		LanguageHints: s.Config.LanguageHints,
	})

	outPath := s.Config.OutputPath(s.ProjectRoot)
	if err := output.WriteFile(outPath, []byte(doc)); err != nil {
		logger.Error("Failed to write combined file", zap.String("combinedFile", outPath), zap.Error(err))
		return fmt.Errorf("error writing to output file '%s': %w", outPath, err)
	}

	con.Success("\n✔ Success! Aggregated %d files into:", len(results))
	con.Highlight("%s", outPath)
	logger.Info("Successfully combined files",
		zap.String("outputFile", outPath),
		zap.Int("totalFiles", len(results)),
		zap.Duration("elapsed", time.Since(startTime)),
	)
	return nil
}

// ExecuteStats scans and classifies the project and prints per-language
// statistics followed by the summary table.
func ExecuteStats(ctx context.Context, args Arguments, logger *zap.Logger, con *console.Console) error {
	s, err := Prepare(args, logger, con)
	if err != nil {
		return err
	}

	con.Highlight("📊 Codecat Stats | Analyzing: '%s'", s.ProjectRoot)
	results, err := s.Collect(ctx, args.MaxWorkers)
	if err != nil {
		return err
	}

	if err := WriteStats(con.Writer(), ComputeStats(results, s.Config.LanguageHints)); err != nil {
		return fmt.Errorf("failed to write statistics: %w", err)
	}
	if err := WriteSummary(con.Writer(), Summarize(results), filepath.Base(s.ProjectRoot)); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}
