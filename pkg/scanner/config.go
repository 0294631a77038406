// File: pkg/scanner/config.go
package scanner

// ScanConfig holds the fully resolved filtering rules for one scan.
type ScanConfig struct {
	IncludePatterns  []string            // Globs a file must match; empty includes everything.
	ExcludePatterns  []string            // Globs matched against relative paths and as directory prefixes.
	ExcludeDirs      map[string]struct{} // Directory names or relative directory paths never descended into.
	ExcludeFiles     map[string]struct{} // Absolute, symlink-resolved file paths to skip.
	MaxFileSizeBytes int64               // Files strictly larger than this are skipped.
	CaseSensitive    bool                // Case-sensitive pattern matching.
	Verbose          bool                // Emit per-file include/skip notices to the Reporter.
}

// DiscoveredFile is a path produced by the scanner.
type DiscoveredFile struct {
	Path    string // Absolute path.
	RelPath string // Slash-separated path relative to the project root.
}

// Paths returns the absolute paths of files in order.
func Paths(files []DiscoveredFile) []string {
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.Path
	}
	return paths
}

// Reporter receives advisory progress and verbose notices from the scanner.
// Implementations must be safe for concurrent use and must not block.
type Reporter interface {
	Scanning(dir string)
	Excluded(relPath, reason string)
	Included(relPath string)
}

type nopReporter struct{}

func (nopReporter) Scanning(string)         {}
func (nopReporter) Excluded(string, string) {}
func (nopReporter) Included(string)         {}
