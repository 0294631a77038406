package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"codecat/pkg/classify"
)

type codeBlock struct {
	lang    string
	content string
}

// parseCodeBlocks renders doc through a CommonMark parser and returns every
// fenced code block it finds.
func parseCodeBlocks(t *testing.T, doc string) []codeBlock {
	t.Helper()
	src := []byte(doc)
	root := goldmark.New().Parser().Parse(text.NewReader(src))

	var blocks []codeBlock
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok || !entering {
			return ast.WalkContinue, nil
		}
		var b strings.Builder
		lines := fcb.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			b.Write(seg.Value(src))
		}
		blocks = append(blocks, codeBlock{lang: string(fcb.Language(src)), content: b.String()})
		return ast.WalkContinue, nil
	})
	require.NoError(t, err)
	return blocks
}

var hints = map[string]string{".go": "go", ".py": "python", "dockerfile": "dockerfile"}

func TestGenerateFencesSurviveMarkdownParsing(t *testing.T) {
	contents := []string{
		"package main",
		"Example:\n```go\nfmt.Println()\n```",
		"four ```` backticks and ``` three",
	}

	var results []classify.Result
	for i, c := range contents {
		name := string(rune('a'+i)) + ".go"
		results = append(results, classify.Result{
			Path: "/p/" + name, RelPath: name, Status: classify.StatusText, Content: c, Encoding: "utf-8",
		})
	}

	doc := Generate(results, "/p", Options{LanguageHints: hints})
	blocks := parseCodeBlocks(t, doc)
	require.Len(t, blocks, len(contents))
	for i, c := range contents {
		assert.Equal(t, "go", blocks[i].lang)
		assert.Equal(t, c+"\n", blocks[i].content)
	}
}

func TestGenerateHeader(t *testing.T) {
	results := []classify.Result{{Path: "/work/proj/a.py", RelPath: "a.py", Status: classify.StatusText, Content: "x = 1"}}

	doc := Generate(results, "/work/proj", Options{Header: true, LanguageHints: hints})
	assert.Equal(t,
		"# Codecat: Aggregated Code for 'proj'\n"+
			"Generated from `1` files found in `/work/proj`.\n\n"+
			"## File: `a.py`\n\n```python\nx = 1\n```\n",
		doc)
}

func TestGenerateBlocks(t *testing.T) {
	results := []classify.Result{
		{Path: "/p/empty.go", RelPath: "empty.go", Status: classify.StatusText, Content: "  \n"},
		{Path: "/p/img.png", RelPath: "img.png", Status: classify.StatusBinary, MIME: "image/png"},
		{Path: "/p/raw.bin", RelPath: "raw.bin", Status: classify.StatusBinary},
		{Path: "/p/bad.txt", RelPath: "bad.txt", Status: classify.StatusReadError, Message: "Failed to decode"},
		{Path: "/p/gone.txt", RelPath: "gone.txt", Status: classify.StatusAccessError},
	}

	doc := Generate(results, "/p", Options{})
	assert.Equal(t, strings.Join([]string{
		"## File: `empty.go`\n\n_(File is empty)_",
		"## File: `img.png`\n\n`[INFO] Binary file detected at 'img.png' (image/png). Content not included.`",
		"## File: `raw.bin`\n\n`[INFO] Binary file detected at 'raw.bin'. Content not included.`",
		"## File: `bad.txt`\n\n`[WARNING] Could not process file 'bad.txt'. Error: Failed to decode`",
		"## File: `gone.txt`\n\n`[WARNING] Could not process file 'gone.txt'. Error: An unknown error occurred.`",
	}, "\n\n---\n\n")+"\n", doc)
}

func TestGenerateTreeSection(t *testing.T) {
	results := []classify.Result{
		{Path: "/p/main.go", RelPath: "main.go", Status: classify.StatusText, Content: "package main"},
		{Path: "/p/pkg/x.go", RelPath: "pkg/x.go", Status: classify.StatusText, Content: "package pkg"},
	}

	doc := Generate(results, "/p", Options{Tree: true})
	assert.True(t, strings.HasPrefix(doc, "## Project Structure\n\n```text\np/\n├── pkg/\n│   └── x.go\n└── main.go\n```\n"))
}

func TestGenerateEmpty(t *testing.T) {
	assert.Equal(t, "\n", Generate(nil, "/p", Options{Tree: true}))
}

func TestFence(t *testing.T) {
	assert.Equal(t, "```", Fence("no backticks"))
	assert.Equal(t, "```", Fence("inline `code` only"))
	assert.Equal(t, "````", Fence("```"))
	assert.Equal(t, "``````", Fence("`````"))
}

func TestLanguageHint(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/p/main.go", "go"},
		{"/p/MAIN.PY", "python"},
		{"/p/Dockerfile", "dockerfile"},
		{"/p/Makefile", "text"},
		{"/p/archive.tar.gz", "text"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, LanguageHint(tt.path, hints))
		})
	}
	assert.Equal(t, "text", ExtensionHint("", map[string]string{"": "oops"}))
}
