// File: pkg/config/defaults.go
package config

// Default file names.
const (
	DefaultConfigFilename = ".codecat_config.yaml"
	DefaultOutputFilename = "codecat_output.md"
	DefaultMaxFileSizeKB  = 1024
)

// configCandidates are probed in the project root, in order, when no
// explicit config path is given.
var configCandidates = []string{
	DefaultConfigFilename,
	".codecat_config.yml",
	".codecat_config.json",
}

// Defaults returns a freshly built default configuration. Callers may modify
// the returned value freely.
func Defaults() *Config {
	return &Config{
		OutputFile: DefaultOutputFilename,
		IncludePatterns: []string{
			"*.py", "*.pyw", "*.java", "*.js", "*.ts", "*.html", "*.css", "*.scss",
			"*.go", "*.rs", "*.c", "*.cpp", "*.h", "*.hpp", "*.cs", "*.sh", "*.ps1",
			"*.rb", "*.php", "*.sql", "*.json", "*.xml", "*.yml", "*.yaml", "*.toml",
			"*.ini", "*.cfg", "*.md", "*.txt",
			"Dockerfile", ".dockerignore", ".gitignore", ".flake8",
		},
		ExcludePatterns: []string{
			"__pycache__", "*.pyc", "*.pyo", "*.pyd", "*.so", "*.egg-info", "*.dist-info",
			"*.log", "*.tmp", "*.bak", "*.swp", "*.lock", ".DS_Store", "Thumbs.db",
			"venv", "venv*", ".venv", ".*env*",
		},
		ExcludeDirs: []string{
			".git", ".hg", ".svn", ".vscode", ".idea", ".pytest_cache", "node_modules",
			"vendor", "target", "build", "dist", "docs", "site", "__pycache__", "tests", "test",
		},
		ExcludeFiles: []string{
			".codecat_config.yaml", ".codecat_config.yml", ".codecat_config.json",
			DefaultOutputFilename,
		},
		MaxFileSizeKB:  DefaultMaxFileSizeKB,
		StopOnError:    false,
		GenerateHeader: true,
		GenerateTree:   false,
		LanguageHints: map[string]string{
			".py": "python", ".pyw": "python", ".java": "java", ".js": "javascript",
			".ts": "typescript", ".html": "html", ".css": "css", ".scss": "scss",
			".go": "go", ".rs": "rust", ".c": "c", ".cpp": "cpp", ".h": "c", ".hpp": "cpp",
			".cs": "csharp", ".sh": "bash", ".ps1": "powershell", ".rb": "ruby",
			".php": "php", ".sql": "sql", ".json": "json", ".xml": "xml", ".yml": "yaml",
			".yaml": "yaml", ".toml": "toml", ".ini": "ini", ".cfg": "ini",
			".md": "markdown", ".txt": "text", ".dockerfile": "dockerfile",
			"dockerfile": "dockerfile", ".gitignore": "text", ".dockerignore": "text",
			".flake8": "ini",
		},
	}
}
