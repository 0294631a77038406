// Package markdown assembles classification results into a single Markdown
// document.
package markdown

import (
	"fmt"
	"path/filepath"
	"strings"

	"codecat/pkg/classify"
)

// Options controls document assembly.
type Options struct {
	Header        bool              // Emit the title and file-count lines.
	Tree          bool              // Emit a project structure section.
	LanguageHints map[string]string // Lower-case file names or extensions to fence languages.
}

// Generate renders results, already sorted by relative path, as Markdown.
// The document always ends with exactly one newline.
func Generate(results []classify.Result, projectRoot string, opts Options) string {
	var parts []string

	if opts.Header {
		parts = append(parts,
			fmt.Sprintf("# Codecat: Aggregated Code for '%s'", filepath.Base(projectRoot)),
			fmt.Sprintf("Generated from `%d` files found in `%s`.\n", len(results), filepath.ToSlash(projectRoot)),
		)
	}

	if opts.Tree && len(results) > 0 {
		rels := make([]string, len(results))
		for i, r := range results {
			rels[i] = r.RelPath
		}
		parts = append(parts, "## Project Structure\n\n```text\n"+Tree(filepath.Base(projectRoot), rels)+"\n```\n")
	}

	blocks := make([]string, 0, len(results))
	for _, r := range results {
		blocks = append(blocks, fileBlock(r, opts.LanguageHints))
	}
	if len(blocks) > 0 {
		parts = append(parts, strings.Join(blocks, "\n\n---\n\n"))
	}

	return strings.TrimSpace(strings.Join(parts, "\n")) + "\n"
}

func fileBlock(r classify.Result, hints map[string]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## File: `%s`\n\n", r.RelPath)

	switch r.Status {
	case classify.StatusText:
		if strings.TrimSpace(r.Content) == "" {
			b.WriteString("_(File is empty)_")
			break
		}
		fence := Fence(r.Content)
		fmt.Fprintf(&b, "%s%s\n%s\n%s", fence, LanguageHint(r.Path, hints), r.Content, fence)
	case classify.StatusBinary:
		if r.MIME != "" {
			fmt.Fprintf(&b, "`[INFO] Binary file detected at '%s' (%s). Content not included.`", r.RelPath, r.MIME)
		} else {
			fmt.Fprintf(&b, "`[INFO] Binary file detected at '%s'. Content not included.`", r.RelPath)
		}
	case classify.StatusReadError, classify.StatusAccessError:
		msg := r.Message
		if msg == "" {
			msg = "An unknown error occurred."
		}
		fmt.Fprintf(&b, "`[WARNING] Could not process file '%s'. Error: %s`", r.RelPath, msg)
	}
	return b.String()
}

// Fence returns a backtick fence longer than any backtick run in content,
// and at least three backticks long.
func Fence(content string) string {
	n := 3
	for strings.Contains(content, strings.Repeat("`", n)) {
		n++
	}
	return strings.Repeat("`", n)
}

// LanguageHint picks the fence language for path: an exact file name match
// (e.g. "dockerfile") wins over the extension; "text" is the fallback.
func LanguageHint(path string, hints map[string]string) string {
	if lang, ok := hints[strings.ToLower(filepath.Base(path))]; ok {
		return lang
	}
	return ExtensionHint(filepath.Ext(path), hints)
}

// ExtensionHint looks up the language for a file extension.
func ExtensionHint(ext string, hints map[string]string) string {
	if lang, ok := hints[strings.ToLower(ext)]; ok && ext != "" {
		return lang
	}
	return "text"
}
