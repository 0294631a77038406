// File: pkg/combine/summary.go
package combine

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"codecat/pkg/classify"
	"codecat/pkg/markdown"
)

// Summary counts results by status.
type Summary struct {
	Text         int
	Binary       int
	ReadErrors   int
	AccessErrors int
	Total        int
}

// Summarize counts results by status.
func Summarize(results []classify.Result) Summary {
	var s Summary
	for _, r := range results {
		switch r.Status {
		case classify.StatusText:
			s.Text++
		case classify.StatusBinary:
			s.Binary++
		case classify.StatusReadError:
			s.ReadErrors++
		case classify.StatusAccessError:
			s.AccessErrors++
		}
	}
	s.Total = len(results)
	return s
}

// WriteSummary renders the scan summary table.
func WriteSummary(w io.Writer, s Summary, projectName string) error {
	bold := color.New(color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	fmt.Fprintf(w, "\n%s\n", bold(fmt.Sprintf("Codecat Scan Summary for '%s'", projectName)))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Status\tCount\tDetails")
	fmt.Fprintf(tw, "%s\t%d\t%s\n", green("Text Files"), s.Text, "Successfully read and included.")
	fmt.Fprintf(tw, "%s\t%d\t%s\n", yellow("Binary Files"), s.Binary, "Detected and skipped.")
	fmt.Fprintf(tw, "%s\t%d\t%s\n", red("Read Errors"), s.ReadErrors, "Could not decode content.")
	fmt.Fprintf(tw, "%s\t%d\t%s\n", red("Access Errors"), s.AccessErrors, "OS permission or access issues.")
	fmt.Fprintf(tw, "%s\t%d\t\n", bold("Total Files Processed"), s.Total)
	return tw.Flush()
}

// LanguageStats aggregates text files and lines for one language.
type LanguageStats struct {
	Language string
	Files    int
	Lines    int
}

// Stats holds per-language figures ordered by file count.
type Stats struct {
	Languages  []LanguageStats
	TotalFiles int
	TotalLines int
}

// ComputeStats groups text results by the language hint of their extension.
func ComputeStats(results []classify.Result, hints map[string]string) Stats {
	byLang := make(map[string]*LanguageStats)
	var st Stats
	for _, r := range results {
		if r.Status != classify.StatusText {
			continue
		}
		lang := markdown.ExtensionHint(filepath.Ext(r.Path), hints)
		ls, ok := byLang[lang]
		if !ok {
			ls = &LanguageStats{Language: lang}
			byLang[lang] = ls
		}
		lines := countLines(r.Content)
		ls.Files++
		ls.Lines += lines
		st.TotalFiles++
		st.TotalLines += lines
	}

	for _, ls := range byLang {
		st.Languages = append(st.Languages, *ls)
	}
	sort.Slice(st.Languages, func(i, j int) bool {
		a, b := st.Languages[i], st.Languages[j]
		if a.Files != b.Files {
			return a.Files > b.Files
		}
		return a.Language < b.Language
	})
	return st
}

func countLines(content string) int {
	if content == "" {
		return 0
	}
	return strings.Count(content, "\n") + 1
}

// WriteStats renders the per-language statistics table.
func WriteStats(w io.Writer, st Stats) error {
	bold := color.New(color.Bold).SprintFunc()
	fmt.Fprintf(w, "\n%s\n", bold("File Type Statistics"))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Language/Type\tFiles\tLines of Code\t% of Lines\t")
	for _, ls := range st.Languages {
		pct := 0.0
		if st.TotalLines > 0 {
			pct = float64(ls.Lines) / float64(st.TotalLines) * 100
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.1f%%\t\n", ls.Language,
			humanize.Comma(int64(ls.Files)), humanize.Comma(int64(ls.Lines)), pct)
	}
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n", "Total",
		humanize.Comma(int64(st.TotalFiles)), humanize.Comma(int64(st.TotalLines)), "100.0%")
	return tw.Flush()
}
