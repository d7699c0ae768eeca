package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/rem-code-s/proposal-review-helper/internal/report"
)

// MarkdownWriter emits a headed markdown document with summary and commit
// tables and, unless condensed, a fenced diff block per commit.
type MarkdownWriter struct {
	Condensed bool
}

func (m *MarkdownWriter) Write(w io.Writer, rep *report.Report) error {
	if m.Condensed {
		fmt.Fprintf(w, "# Code Review Summary\n\n")
	} else {
		fmt.Fprintf(w, "# Code Review Report\n\n")
	}

	fmt.Fprintf(w, "**Commit Range:** `%s` → `%s`  \n", rep.Start, rep.End)
	if len(rep.Paths) > 0 {
		fmt.Fprintf(w, "**Paths:** `%s`  \n", strings.Join(rep.Paths, "`, `"))
	}
	if rep.ProposalID != "" {
		fmt.Fprintf(w, "**Proposal:** %s  \n", rep.ProposalID)
	}
	fmt.Fprintf(w, "**Generated:** %s\n\n", rep.GeneratedAt.Format("2006-01-02 15:04:05"))

	// Summary
	fmt.Fprintf(w, "## Summary\n\n")
	fmt.Fprintf(w, "| Metric | Value |\n")
	fmt.Fprintf(w, "|--------|-------|\n")
	fmt.Fprintf(w, "| **Total Commits** | %d |\n", rep.Stats.Commits)
	fmt.Fprintf(w, "| **Files Changed** | %d |\n", rep.Stats.Files)
	fmt.Fprintf(w, "| **Lines Added** | %d |\n", rep.Stats.LinesAdded)
	fmt.Fprintf(w, "| **Lines Removed** | %d |\n\n", rep.Stats.LinesRemoved)

	// Commit table
	fmt.Fprintf(w, "## Commits\n\n")
	if m.Condensed {
		for _, c := range rep.Commits {
			fmt.Fprintf(w, "- `%s` **%s** _(%s, %s)_\n", c.Hash, c.Subject, c.Author, c.Date)
		}
		fmt.Fprintln(w)
	} else {
		fmt.Fprintf(w, "| Hash | Type | Message | Author | Date |\n")
		fmt.Fprintf(w, "|------|------|---------|--------|------|\n")
		for _, c := range rep.Commits {
			fmt.Fprintf(w, "| `%s` | %s | %s | %s | %s |\n",
				c.Hash, c.Type, c.Subject, c.Author, c.Date)
		}
		fmt.Fprintln(w)
	}

	// File list
	fmt.Fprintf(w, "## Files Changed\n\n")
	for _, f := range rep.Stats.FileList {
		fmt.Fprintf(w, "- `%s`\n", f)
	}
	fmt.Fprintln(w)

	if m.Condensed {
		return nil
	}

	// Per-commit details with fenced diffs
	fmt.Fprintf(w, "## Detailed Changes\n\n")
	for _, d := range rep.Details {
		fmt.Fprintf(w, "### Commit `%s`\n\n", d.Hash)
		fmt.Fprintf(w, "**Author:** %s  \n", d.Author)
		fmt.Fprintf(w, "**Date:** %s  \n", d.Date)
		fmt.Fprintf(w, "**Message:** %s\n\n", d.Subject)

		if len(d.Files) > 0 {
			fmt.Fprintf(w, "**Files Changed:**\n")
			for _, f := range d.Files {
				fmt.Fprintf(w, "- `%s`\n", f)
			}
			fmt.Fprintln(w)
		}

		if d.Diff != "" {
			fmt.Fprintf(w, "**Code Changes:**\n\n")
			fmt.Fprintf(w, "```diff\n%s\n```\n\n", d.Diff)
		}

		fmt.Fprintf(w, "---\n\n")
	}

	return nil
}
