// File: pkg/config/generate.go
package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"codecat/pkg/output"
)

var fieldComments = map[string]string{
	"output_file":      "Name of the generated Markdown file, relative to the project directory.",
	"include_patterns": "Glob patterns (like *.py, src/*) a file must match. An empty list includes everything.",
	"exclude_patterns": "Glob patterns excluding files or directories. Exclusion always wins over inclusion.",
	"exclude_dirs":     "Directory names or relative paths that are never scanned.",
	"exclude_files":    "Specific files, relative to the project directory, to exclude.",
	"max_file_size_kb": "Files larger than this many KiB are skipped.",
	"stop_on_error":    "Abort on the first unreadable or undecodable file instead of reporting it.",
	"generate_header":  "Include the title header in the output file.",
	"generate_tree":    "Include a project structure tree in the output file.",
	"language_hints":   "Map file extensions or lower-case file names to code block languages.",
}

// Marshal renders cfg as a commented YAML document.
func Marshal(cfg *Config) ([]byte, error) {
	var node yaml.Node
	if err := node.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	node.HeadComment = "Codecat configuration. Customise it for your project."
	for i := 0; i+1 < len(node.Content); i += 2 {
		if c, ok := fieldComments[node.Content[i].Value]; ok {
			node.Content[i].HeadComment = c
		}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteDefault writes the default configuration to path.
func WriteDefault(path string) error {
	data, err := Marshal(Defaults())
	if err != nil {
		return err
	}
	return output.WriteFile(path, data)
}
