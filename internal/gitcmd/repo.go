package gitcmd

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Repo is a handle to a local git repository. Every query runs with the
// repository directory as the process working directory.
type Repo struct {
	Dir    string
	runner Runner
}

// Open returns a Repo handle for the given directory using the real git
// executable.
func Open(dir string) *Repo {
	return &Repo{Dir: dir, runner: ExecRunner{}}
}

// OpenWithRunner returns a Repo handle backed by a custom Runner. Used by
// tests to inject a fake executor.
func OpenWithRunner(dir string, r Runner) *Repo {
	return &Repo{Dir: dir, runner: r}
}

// git runs a git query and returns its trimmed stdout. A failed invocation
// (non-zero exit, missing executable) is logged and yields an empty string;
// callers continue with empty data.
func (r *Repo) git(args ...string) string {
	out, err := r.runner.Run(r.Dir, "git", args...)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"dir":  r.Dir,
			"args": strings.Join(args, " "),
		}).WithError(err).Error("git command failed")
		return ""
	}
	return strings.TrimSpace(out)
}

// pathArgs appends the "--"-separated path filter when paths are given.
func pathArgs(args []string, paths []string) []string {
	if len(paths) == 0 {
		return args
	}
	args = append(args, "--")
	return append(args, paths...)
}

// splitNonEmpty splits s on newlines and discards blank entries.
func splitNonEmpty(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}
