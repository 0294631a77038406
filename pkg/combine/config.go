// File: pkg/combine/config.go
package combine

import "codecat/pkg/config"

// Arguments holds the command-line options for a codecat run.
type Arguments struct {
	ProjectPath string           // Directory to scan; also the root for relative paths.
	ConfigPath  string           // Explicit config file; empty probes the project directory.
	Overrides   config.Overrides // Command-line values overriding the config file.
	MaxWorkers  int              // Classifier workers; <= 0 uses the CPU count.
	Verbose     bool             // Per-file notices instead of the progress line.
	Silent      bool             // Suppress everything but errors.
	DryRun      bool             // Scan and classify without writing the output file.
}
