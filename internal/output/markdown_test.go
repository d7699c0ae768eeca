package output

import (
	"strings"
	"testing"
)

func TestMarkdownWriter_Full(t *testing.T) {
	var sb strings.Builder
	w := &MarkdownWriter{}
	if err := w.Write(&sb, testReport()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := sb.String()

	for _, want := range []string{
		"# Code Review Report",
		"**Commit Range:** `1111111122222222` → `3333333344444444`",
		"**Paths:** `src`",
		"| **Total Commits** | 2 |",
		"| **Lines Added** | 3 |",
		"| `h2` | feat | feat: add <thing> | Bob | 2024-03-02 |",
		"- `src/a.go`",
		"### Commit `h2`",
		"**Author:** Bob <bob@example.com>",
		"```diff\n+++ b/src/a.go",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestMarkdownWriter_Condensed(t *testing.T) {
	var sb strings.Builder
	w := &MarkdownWriter{Condensed: true}
	if err := w.Write(&sb, testReport()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := sb.String()

	if !strings.Contains(out, "# Code Review Summary") {
		t.Error("missing summary heading")
	}
	if !strings.Contains(out, "- `h2` **feat: add <thing>** _(Bob, 2024-03-02)_") {
		t.Error("missing commit bullet")
	}
	if strings.Contains(out, "```diff") {
		t.Error("condensed output must not contain diff blocks")
	}
	if strings.Contains(out, "## Detailed Changes") {
		t.Error("condensed output must not contain the details section")
	}
}

func TestMarkdownWriter_EmptyRange(t *testing.T) {
	rep := testReport()
	rep.Commits = nil
	rep.Details = nil
	rep.Stats.Commits = 0
	rep.Stats.Files = 0
	rep.Stats.LinesAdded = 0
	rep.Stats.LinesRemoved = 0
	rep.Stats.FileList = nil

	var sb strings.Builder
	if err := (&MarkdownWriter{}).Write(&sb, rep); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, "| **Total Commits** | 0 |") {
		t.Error("empty range should still report zero stats")
	}
	if !strings.Contains(out, "## Commits") {
		t.Error("commit section should still be present")
	}
}
