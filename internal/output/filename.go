package output

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// DefaultPath derives a deterministic output location when the caller did not
// supply one: generated/<folder>/<folder>.<ext>. With a proposal id the
// folder is "<id>-<repoName>-<date>"; otherwise it falls back to the date, a
// normalized path hint, and the shortened revision pair so distinct ranges
// never collide.
func DefaultPath(proposalID, repoName, start, end string, paths []string, format string, now time.Time) string {
	dateStr := now.Format("20060102")

	var folder string
	if proposalID != "" {
		folder = fmt.Sprintf("%s-%s-%s", proposalID, repoName, dateStr)
	} else {
		folder = fmt.Sprintf("%s-review-%s-%s-%s", dateStr, pathHint(paths), shortRev(start), shortRev(end))
	}
	return filepath.Join("generated", folder, folder+"."+Ext(format))
}

func pathHint(paths []string) string {
	if len(paths) == 0 {
		return "all-changes"
	}
	normalized := make([]string, len(paths))
	for i, p := range paths {
		normalized[i] = strings.ReplaceAll(strings.Trim(p, "/"), "/", "-")
	}
	return strings.Join(normalized, "-")
}

func shortRev(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}
