package gitcmd

import (
	"regexp"
	"strconv"
	"strings"
)

// RangeStats aggregates change statistics over a commit range.
type RangeStats struct {
	Commits      int
	Files        int
	LinesAdded   int
	LinesRemoved int
	FileList     []string
}

var (
	insertionsRe = regexp.MustCompile(`(\d+)\s*insertions?`)
	deletionsRe  = regexp.MustCompile(`(\d+)\s*deletions?`)
)

// Stats collects commit count, changed files, and line counts for the range
// start..end (exclusive of start, inclusive of end), optionally restricted to
// paths. An empty range yields zero values; it is not an error.
func (r *Repo) Stats(start, end string, paths []string) RangeStats {
	revRange := start + ".." + end

	count, _ := strconv.Atoi(r.git(pathArgs([]string{"rev-list", "--count", revRange}, paths)...))

	files := splitNonEmpty(r.git(pathArgs([]string{"diff", "--name-only", revRange}, paths)...))

	added, removed := parseDiffStat(r.git(pathArgs([]string{"diff", "--stat", revRange}, paths)...))

	return RangeStats{
		Commits:      count,
		Files:        len(files),
		LinesAdded:   added,
		LinesRemoved: removed,
		FileList:     files,
	}
}

// parseDiffStat extracts insertion and deletion counts from the final summary
// line of `git diff --stat` output, e.g.
// "3 files changed, 12 insertions(+), 4 deletions(-)". A missing clause
// contributes zero.
func parseDiffStat(stat string) (added, removed int) {
	if stat == "" {
		return 0, 0
	}
	lines := strings.Split(stat, "\n")
	last := lines[len(lines)-1]
	if m := insertionsRe.FindStringSubmatch(last); m != nil {
		added, _ = strconv.Atoi(m[1])
	}
	if m := deletionsRe.FindStringSubmatch(last); m != nil {
		removed, _ = strconv.Atoi(m[1])
	}
	return added, removed
}
