// Package diffview transforms raw unified-diff text into an ordered sequence
// of typed lines with recomputed old/new line numbers and optional deep links
// to a hosting service.
package diffview

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Kind classifies a rendered diff line.
type Kind string

const (
	KindHeader  Kind = "header"
	KindHunk    Kind = "hunk"
	KindAdded   Kind = "added"
	KindRemoved Kind = "removed"
	KindContext Kind = "context"
)

// Line is one rendered diff line. Number is the new-side line number for
// added and context lines and the old-side number for removed lines; it is
// zero for header and hunk lines. Text is the raw content with the +/-
// marker stripped; escaping for the output document is the writer's job.
// Link, when set, points at the exact line on the hosting service.
type Line struct {
	Kind   Kind
	Number int
	Text   string
	Link   string
}

var hunkRe = regexp.MustCompile(`@@ -(\d+),?\d* \+(\d+),?\d* @@`)

// Render walks diff line by line, tracking the current file and the old/new
// counters. Counters reset at each hunk header to the declared start values
// minus one, so the first body line's increment lands on the declared line.
// linkBase is the hosting service URL prefix (e.g. https://github.com/org/repo);
// when empty no links are emitted.
func Render(diff, commitHash, linkBase string) []Line {
	if diff == "" {
		return nil
	}

	var (
		out         []Line
		currentFile string
		oldLine     int
		newLine     int
	)

	for _, line := range strings.Split(diff, "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			if strings.HasPrefix(line, "+++") {
				currentFile = newFilePath(line)
			}
			out = append(out, Line{Kind: KindHeader, Text: line})

		case strings.HasPrefix(line, "@@"):
			// A header that fails to match leaves the counters untouched but
			// is still emitted verbatim.
			if m := hunkRe.FindStringSubmatch(line); m != nil {
				oldStart, _ := strconv.Atoi(m[1])
				newStart, _ := strconv.Atoi(m[2])
				oldLine = oldStart - 1
				newLine = newStart - 1
			}
			out = append(out, Line{Kind: KindHunk, Text: line})

		case strings.HasPrefix(line, "+"):
			newLine++
			out = append(out, Line{
				Kind:   KindAdded,
				Number: newLine,
				Text:   line[1:],
				Link:   blobLink(linkBase, commitHash, currentFile, newLine),
			})

		case strings.HasPrefix(line, "-"):
			oldLine++
			out = append(out, Line{
				Kind:   KindRemoved,
				Number: oldLine,
				Text:   line[1:],
				Link:   blobLink(linkBase, commitHash+"~1", currentFile, oldLine),
			})

		default:
			oldLine++
			newLine++
			out = append(out, Line{
				Kind:   KindContext,
				Number: newLine,
				Text:   line,
				Link:   blobLink(linkBase, commitHash, currentFile, newLine),
			})
		}
	}
	return out
}

// newFilePath extracts the post-image path from a "+++ " header. A /dev/null
// target means the file was deleted, which unsets the current file so no
// links are built for the remainder of that section.
func newFilePath(line string) string {
	if len(line) < 4 {
		return ""
	}
	path := strings.TrimSpace(line[4:])
	if path == "/dev/null" {
		return ""
	}
	if strings.HasPrefix(path, "b/") || strings.HasPrefix(path, "a/") {
		path = path[2:]
	}
	return path
}

// blobLink builds a deep link to one line of a file at a revision. Links are
// only emitted when the base URL and file are known and the line number is
// positive.
func blobLink(base, rev, file string, line int) string {
	if base == "" || file == "" || line <= 0 {
		return ""
	}
	return fmt.Sprintf("%s/blob/%s/%s#L%d", base, rev, file, line)
}
