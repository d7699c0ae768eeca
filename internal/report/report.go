// Package report assembles range statistics, the commit list, and per-commit
// details into a single report model consumed by the output writers.
package report

import (
	"time"

	"github.com/rem-code-s/proposal-review-helper/internal/gitcmd"
	"github.com/rem-code-s/proposal-review-helper/internal/redact"
	"github.com/sirupsen/logrus"
)

// Options controls what a report covers.
type Options struct {
	Start string
	End   string
	Paths []string

	// RepoURL is the hosting service base used for commit and per-line deep
	// links. Empty disables links.
	RepoURL string

	// ProposalID tags the report with the proposal it reviews; used in the
	// header and output naming only.
	ProposalID string

	// RedactSecrets scrubs credential-looking strings from diff text before
	// it lands in a shareable document.
	RedactSecrets bool
}

// Report is the fully collected input of one review document.
type Report struct {
	Start       string
	End         string
	Paths       []string
	RepoURL     string
	ProposalID  string
	GeneratedAt time.Time
	Stats       gitcmd.RangeStats
	Commits     []gitcmd.Commit
	Details     []gitcmd.Detail
}

// Collect runs all range and per-commit queries against repo and returns the
// assembled report. Details are fetched synchronously, one commit at a time,
// in enumeration order (newest first); an empty range yields a report with
// zero stats and no commits.
func Collect(repo *gitcmd.Repo, opts Options) *Report {
	rep := &Report{
		Start:       opts.Start,
		End:         opts.End,
		Paths:       opts.Paths,
		RepoURL:     opts.RepoURL,
		ProposalID:  opts.ProposalID,
		GeneratedAt: time.Now(),
		Stats:       repo.Stats(opts.Start, opts.End, opts.Paths),
		Commits:     repo.Commits(opts.Start, opts.End, opts.Paths),
	}

	for _, c := range rep.Commits {
		detail := repo.Detail(c.Hash, opts.Paths)
		if opts.RedactSecrets {
			detail.Diff = redact.Scrub(detail.Diff)
		}
		rep.Details = append(rep.Details, detail)
	}

	logrus.WithFields(logrus.Fields{
		"range":   opts.Start + ".." + opts.End,
		"commits": rep.Stats.Commits,
		"files":   rep.Stats.Files,
	}).Info("collected review report")

	return rep
}
