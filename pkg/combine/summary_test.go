package combine

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codecat/pkg/classify"
)

func sampleResults() []classify.Result {
	return []classify.Result{
		{Path: "/p/a.go", RelPath: "a.go", Status: classify.StatusText, Content: "package a\n\nfunc A() {}"},
		{Path: "/p/b.go", RelPath: "b.go", Status: classify.StatusText, Content: "package b"},
		{Path: "/p/run.py", RelPath: "run.py", Status: classify.StatusText, Content: "print(1)\nprint(2)"},
		{Path: "/p/empty.txt", RelPath: "empty.txt", Status: classify.StatusText},
		{Path: "/p/img.png", RelPath: "img.png", Status: classify.StatusBinary},
		{Path: "/p/bad.txt", RelPath: "bad.txt", Status: classify.StatusReadError},
		{Path: "/p/locked.txt", RelPath: "locked.txt", Status: classify.StatusAccessError},
	}
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, Summary{Text: 4, Binary: 1, ReadErrors: 1, AccessErrors: 1, Total: 7}, Summarize(sampleResults()))
	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestWriteSummary(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, Summarize(sampleResults()), "proj"))

	out := buf.String()
	assert.Contains(t, out, "Codecat Scan Summary for 'proj'")
	assert.Regexp(t, `Text Files\s+4\s+Successfully read and included\.`, out)
	assert.Regexp(t, `Total Files Processed\s+7`, out)
}

func TestComputeStats(t *testing.T) {
	hints := map[string]string{".go": "go", ".py": "python"}
	st := ComputeStats(sampleResults(), hints)

	assert.Equal(t, 4, st.TotalFiles)
	assert.Equal(t, 6, st.TotalLines)
	assert.Equal(t, []LanguageStats{
		{Language: "go", Files: 2, Lines: 4},
		{Language: "python", Files: 1, Lines: 2},
		{Language: "text", Files: 1, Lines: 0},
	}, st.Languages)
}

func TestWriteStats(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	st := ComputeStats(sampleResults(), map[string]string{".go": "go", ".py": "python"})
	require.NoError(t, WriteStats(&buf, st))

	out := buf.String()
	assert.Contains(t, out, "File Type Statistics")
	assert.Regexp(t, `go\s+2\s+4\s+66\.7%`, out)
	assert.Regexp(t, `Total\s+4\s+6\s+100\.0%`, out)
}
