package output

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/rem-code-s/proposal-review-helper/internal/diffview"
	"github.com/rem-code-s/proposal-review-helper/internal/gitcmd"
	"github.com/rem-code-s/proposal-review-helper/internal/report"
)

// HTMLWriter emits a self-contained dark-theme page with a summary grid, a
// commit table with type badges, and collapsible per-commit detail blocks.
// Diff lines carry deep links to the hosting service when the report has a
// repository URL.
type HTMLWriter struct {
	Condensed bool
}

func (h *HTMLWriter) Write(w io.Writer, rep *report.Report) error {
	var b strings.Builder

	b.WriteString(htmlHead)
	h.writeHeader(&b, rep)

	b.WriteString("<div class=\"content\">\n")
	h.writeSummary(&b, rep)
	h.writeCommitTable(&b, rep)
	h.writeFileList(&b, rep)
	if !h.Condensed {
		h.writeDetails(&b, rep)
	}
	b.WriteString("</div>\n</div>\n")

	b.WriteString("<button class=\"scroll-to-top\" onclick=\"scrollToTop()\" id=\"scrollBtn\">↑</button>\n")
	b.WriteString(htmlScript)
	b.WriteString("</body>\n</html>\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func (h *HTMLWriter) writeHeader(b *strings.Builder, rep *report.Report) {
	b.WriteString("<div class=\"container\">\n<div class=\"header\">\n<h1>Code Review</h1>\n<div class=\"meta\">\n")
	fmt.Fprintf(b, "<span><strong>Range:</strong> <code>%s</code> → <code>%s</code></span>\n",
		html.EscapeString(shortRev(rep.Start)), html.EscapeString(shortRev(rep.End)))
	if len(rep.Paths) > 0 {
		fmt.Fprintf(b, "<span><strong>Path:</strong> <code>%s</code></span>\n",
			html.EscapeString(strings.Join(rep.Paths, ", ")))
	} else {
		b.WriteString("<span><strong>Path:</strong> <code>all changes</code></span>\n")
	}
	if rep.ProposalID != "" {
		fmt.Fprintf(b, "<span><strong>Proposal:</strong> %s</span>\n", html.EscapeString(rep.ProposalID))
	}
	fmt.Fprintf(b, "<span><strong>Generated:</strong> %s</span>\n", rep.GeneratedAt.Format("2006-01-02 15:04"))
	b.WriteString("</div>\n</div>\n")
}

func (h *HTMLWriter) writeSummary(b *strings.Builder, rep *report.Report) {
	b.WriteString("<div class=\"section\">\n<h2>Summary</h2>\n<div class=\"summary\">\n")
	statCard(b, rep.Stats.Commits, "Commits")
	statCard(b, rep.Stats.Files, "Files Changed")
	statCard(b, rep.Stats.LinesAdded, "Lines Added")
	statCard(b, rep.Stats.LinesRemoved, "Lines Removed")
	b.WriteString("</div>\n</div>\n")
}

func statCard(b *strings.Builder, n int, label string) {
	fmt.Fprintf(b, "<div class=\"stat-card\"><div class=\"stat-number\">%d</div><div class=\"stat-label\">%s</div></div>\n", n, label)
}

func (h *HTMLWriter) writeCommitTable(b *strings.Builder, rep *report.Report) {
	b.WriteString("<div class=\"section\">\n<h2>Commits</h2>\n<table class=\"commits-table\">\n")
	b.WriteString("<thead><tr><th>Hash</th><th>Message</th><th>Author</th><th>Date</th></tr></thead>\n<tbody>\n")
	for _, c := range rep.Commits {
		b.WriteString("<tr>\n")
		fmt.Fprintf(b, "<td>%s</td>\n", commitLink(rep.RepoURL, c.Hash, "commit-hash"))
		fmt.Fprintf(b, "<td><span class=\"badge %s\">%s</span> <span class=\"commit-message\">%s</span></td>\n",
			badgeClass(c.Type), c.Type, html.EscapeString(c.Subject))
		fmt.Fprintf(b, "<td><span class=\"commit-author\">%s</span></td>\n", html.EscapeString(c.Author))
		fmt.Fprintf(b, "<td><span class=\"commit-date\">%s</span></td>\n", html.EscapeString(c.Date))
		b.WriteString("</tr>\n")
	}
	b.WriteString("</tbody>\n</table>\n</div>\n")
}

func (h *HTMLWriter) writeFileList(b *strings.Builder, rep *report.Report) {
	b.WriteString("<div class=\"section\">\n<h2>Files Changed</h2>\n<div class=\"files-list\">\n<ul>\n")
	for _, f := range rep.Stats.FileList {
		fmt.Fprintf(b, "<li><code>%s</code></li>\n", html.EscapeString(f))
	}
	b.WriteString("</ul>\n</div>\n</div>\n")
}

func (h *HTMLWriter) writeDetails(b *strings.Builder, rep *report.Report) {
	b.WriteString("<div class=\"section\">\n<h2>Detailed Changes</h2>\n")
	for i, d := range rep.Details {
		commitType := gitcmd.TypeOther
		if i < len(rep.Commits) {
			commitType = rep.Commits[i].Type
		}

		b.WriteString("<div class=\"commit-detail\">\n<div class=\"commit-header\">\n")
		fmt.Fprintf(b, "<div class=\"commit-title\">%s <span class=\"badge %s\">%s</span></div>\n",
			commitLink(rep.RepoURL, d.Hash, "commit-hash-large"), badgeClass(commitType), commitType)
		fmt.Fprintf(b, "<div class=\"commit-meta\"><span>%s</span><span>%s</span><span>%d files</span></div>\n",
			html.EscapeString(d.Author), html.EscapeString(d.Date), len(d.Files))
		fmt.Fprintf(b, "<div class=\"commit-subject\">%s</div>\n", html.EscapeString(d.Subject))
		fmt.Fprintf(b, "<div class=\"commit-actions\">"+
			"<button class=\"toggle-button secondary\" onclick=\"toggleSection('files-%d')\">Files (%d)</button> "+
			"<button class=\"toggle-button\" onclick=\"toggleSection('diff-%d')\">Code Changes</button>"+
			"</div>\n", i, len(d.Files), i)

		if len(d.Files) > 0 {
			fmt.Fprintf(b, "<div id=\"files-%d\" class=\"collapsible\"><div class=\"files-list\"><ul>\n", i)
			for _, f := range d.Files {
				fmt.Fprintf(b, "<li>%s</li>\n", html.EscapeString(f))
			}
			b.WriteString("</ul></div></div>\n")
		}

		if d.Diff != "" {
			fmt.Fprintf(b, "<div id=\"diff-%d\" class=\"collapsible\"><div class=\"diff-container\">\n", i)
			writeDiff(b, d.Diff, d.Hash, rep.RepoURL)
			b.WriteString("</div></div>\n")
		}

		b.WriteString("</div>\n</div>\n")
	}
	b.WriteString("</div>\n")
}

// writeDiff renders one commit's diff as typed, numbered, linked lines.
func writeDiff(b *strings.Builder, diff, hash, repoURL string) {
	for _, line := range diffview.Render(diff, hash, repoURL) {
		switch line.Kind {
		case diffview.KindHeader:
			fmt.Fprintf(b, "<div class=\"file-header\">%s</div>\n", html.EscapeString(line.Text))
		case diffview.KindHunk:
			fmt.Fprintf(b, "<div class=\"hunk-header\">%s</div>\n", html.EscapeString(line.Text))
		case diffview.KindAdded:
			diffLine(b, "added", fmt.Sprintf("+%d", line.Number), line)
		case diffview.KindRemoved:
			diffLine(b, "removed", fmt.Sprintf("-%d", line.Number), line)
		case diffview.KindContext:
			diffLine(b, "context", fmt.Sprintf("%d", line.Number), line)
		}
	}
}

func diffLine(b *strings.Builder, class, number string, line diffview.Line) {
	link := ""
	if line.Link != "" {
		link = fmt.Sprintf(`<a href="%s" class="deep-link" target="_blank">#</a>`, html.EscapeString(line.Link))
	}
	fmt.Fprintf(b, "<div class=\"line %s\"><span class=\"line-number\">%s</span><span class=\"line-content\">%s%s</span></div>\n",
		class, number, html.EscapeString(line.Text), link)
}

func commitLink(repoURL, hash, class string) string {
	if repoURL == "" {
		return fmt.Sprintf("<span class=\"%s\">%s</span>", class, html.EscapeString(hash))
	}
	return fmt.Sprintf("<a href=\"%s/commit/%s\" class=\"%s\" target=\"_blank\">%s</a>",
		html.EscapeString(repoURL), html.EscapeString(hash), class, html.EscapeString(hash))
}

// badgeClass picks the badge color class. Types without a dedicated color
// fall back to the chore badge.
func badgeClass(t gitcmd.CommitType) string {
	switch t {
	case gitcmd.TypeFeat, gitcmd.TypeFix, gitcmd.TypeChore, gitcmd.TypeDocs, gitcmd.TypeRefactor:
		return string(t)
	default:
		return "chore"
	}
}

const htmlHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Code Review Report</title>
<style>
* { box-sizing: border-box; }
body {
  font-family: 'SF Mono', 'Monaco', 'Inconsolata', 'Roboto Mono', monospace;
  line-height: 1.5; margin: 0; padding: 0;
  background-color: #0d1117; color: #e6edf3; font-size: 14px;
}
.container { max-width: 1400px; margin: 0 auto; background: #161b22; min-height: 100vh; }
.header {
  background: #21262d; border-bottom: 1px solid #30363d; padding: 20px 30px;
  position: sticky; top: 0; z-index: 100;
}
.header h1 { margin: 0; font-size: 1.8em; font-weight: 600; color: #f0f6fc; }
.header .meta { margin-top: 10px; color: #8b949e; font-size: 0.9em; display: flex; gap: 20px; flex-wrap: wrap; }
.content { padding: 30px; }
.summary { display: grid; grid-template-columns: repeat(auto-fit, minmax(180px, 1fr)); gap: 15px; margin-bottom: 30px; }
.stat-card { background: #21262d; border: 1px solid #30363d; padding: 15px; border-radius: 6px; text-align: center; }
.stat-number { font-size: 1.8em; font-weight: 600; color: #58a6ff; margin-bottom: 5px; }
.stat-label { color: #8b949e; font-size: 0.8em; text-transform: uppercase; letter-spacing: 0.5px; }
.section { margin-bottom: 30px; }
.section h2 { color: #f0f6fc; border-bottom: 1px solid #30363d; padding-bottom: 8px; margin-bottom: 15px; font-size: 1.2em; }
.commits-table { width: 100%; border-collapse: collapse; background: #0d1117; border: 1px solid #30363d; border-radius: 6px; }
.commits-table th, .commits-table td { padding: 12px 15px; text-align: left; border-bottom: 1px solid #21262d; }
.commits-table th { background-color: #161b22; color: #f0f6fc; font-size: 0.9em; text-transform: uppercase; }
.commits-table tr:hover { background-color: #21262d; }
.commit-hash, .commit-hash-large {
  background: #21262d; color: #58a6ff; padding: 3px 8px; border-radius: 4px;
  font-size: 0.85em; border: 1px solid #30363d; text-decoration: none;
}
.commit-hash:hover, .commit-hash-large:hover { background: #30363d; color: #79c0ff; }
.commit-message { color: #e6edf3; }
.commit-author, .commit-date { color: #8b949e; font-size: 0.9em; }
.files-list { background: #0d1117; border: 1px solid #30363d; border-radius: 6px; padding: 15px; }
.files-list ul { margin: 0; padding-left: 0; list-style: none; }
.files-list li { margin-bottom: 3px; font-size: 0.9em; color: #8b949e; }
.commit-detail { background: #0d1117; border: 1px solid #30363d; border-radius: 6px; margin-bottom: 20px; overflow: hidden; }
.commit-header { background: #161b22; padding: 15px 20px; border-bottom: 1px solid #30363d; }
.commit-title { font-size: 1.1em; font-weight: 600; margin-bottom: 8px; color: #f0f6fc; }
.commit-meta { color: #8b949e; font-size: 0.85em; display: flex; gap: 20px; flex-wrap: wrap; }
.commit-subject { margin-top: 8px; color: #e6edf3; font-size: 0.9em; }
.commit-actions { display: flex; gap: 10px; margin-top: 10px; }
.diff-container { background: #0d1117; overflow-x: auto; font-size: 12px; max-height: 600px; overflow-y: auto; }
.file-header { background: #21262d; padding: 8px 15px; font-size: 0.85em; border-bottom: 1px solid #30363d; color: #f0f6fc; }
.hunk-header { background: #161b22; padding: 6px 15px; font-size: 0.8em; color: #8b949e; border-bottom: 1px solid #21262d; }
.line { display: flex; font-size: 12px; line-height: 1.2; border-bottom: 1px solid #21262d; min-height: 18px; }
.line-number {
  min-width: 48px; padding: 1px 6px; text-align: right; background: #161b22;
  border-right: 1px solid #30363d; color: #8b949e; user-select: none; font-size: 0.75em;
}
.line-content { flex: 1; padding: 1px 8px; white-space: pre-wrap; word-break: break-all; }
.deep-link { margin-left: 8px; opacity: 0; color: #58a6ff; text-decoration: none; font-size: 0.8em; }
.line:hover .deep-link { opacity: 1; }
.line.added { background: #0d4429; }
.line.added .line-number { background: #1a472a; color: #3fb950; }
.line.added .line-content { color: #a2d2a2; }
.line.removed { background: #490202; }
.line.removed .line-number { background: #5d1a1a; color: #f85149; }
.line.removed .line-content { color: #ffa198; }
.line.context .line-number { color: #6e7681; }
.toggle-button {
  background: #238636; color: #ffffff; border: 1px solid #2ea043; padding: 6px 12px;
  border-radius: 4px; cursor: pointer; font-size: 0.8em; font-family: inherit;
}
.toggle-button:hover { background: #2ea043; }
.toggle-button.secondary { background: #21262d; border-color: #30363d; color: #8b949e; }
.toggle-button.secondary:hover { background: #30363d; color: #e6edf3; }
.collapsible { display: none; }
.collapsible.show { display: block; }
.badge {
  display: inline-block; padding: 2px 8px; border-radius: 12px; font-size: 0.75em;
  font-weight: 500; text-transform: uppercase; letter-spacing: 0.5px;
}
.badge.feat { background: #1a472a; color: #3fb950; }
.badge.fix { background: #490202; color: #f85149; }
.badge.chore { background: #21262d; color: #8b949e; }
.badge.docs { background: #1c2128; color: #58a6ff; }
.badge.refactor { background: #2d1b69; color: #a5a3ff; }
.scroll-to-top {
  position: fixed; bottom: 20px; right: 20px; background: #238636; color: white;
  border: none; border-radius: 50%; width: 50px; height: 50px; cursor: pointer;
  font-size: 18px; display: none; z-index: 1000;
}
.scroll-to-top:hover { background: #2ea043; }
.scroll-to-top.show { display: block; }
</style>
</head>
<body>
`

const htmlScript = `<script>
function toggleSection(id) {
  document.getElementById(id).classList.toggle('show');
}
function scrollToTop() {
  window.scrollTo({ top: 0, behavior: 'smooth' });
}
window.addEventListener('scroll', function() {
  const btn = document.getElementById('scrollBtn');
  if (window.pageYOffset > 300) {
    btn.classList.add('show');
  } else {
    btn.classList.remove('show');
  }
});
document.addEventListener('DOMContentLoaded', function() {
  const firstDiff = document.getElementById('diff-0');
  if (firstDiff) {
    firstDiff.classList.add('show');
  }
  document.addEventListener('keydown', function(e) {
    if (e.ctrlKey || e.metaKey) {
      switch (e.key) {
      case 'k':
        e.preventDefault();
        scrollToTop();
        break;
      case 'j':
        e.preventDefault();
        if (firstDiff) {
          firstDiff.classList.toggle('show');
        }
        break;
      }
    }
  });
});
</script>
`
