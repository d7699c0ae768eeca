// Package repocache clones repositories by URL into a local cache directory
// and keeps cache hits fresh with a pull, providing the working directory for
// all subsequent git queries.
package repocache

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/sirupsen/logrus"
)

// NameFromURL derives a cache directory name from a repository URL: the last
// path segment with any ".git" suffix stripped, or the preceding segment when
// the URL ends in a slash.
func NameFromURL(url string) string {
	parts := strings.Split(url, "/")
	name := strings.TrimSuffix(parts[len(parts)-1], ".git")
	if name == "" && len(parts) > 1 {
		name = parts[len(parts)-2]
	}
	return name
}

// Ensure returns a local checkout of url under cacheDir, cloning on a cache
// miss and pulling on a hit. A failed pull is logged and the stale cache is
// used as-is; a failed clone is an error.
func Ensure(url, cacheDir string) (string, error) {
	name := NameFromURL(url)
	if name == "" {
		return "", fmt.Errorf("cannot derive repository name from %q", url)
	}
	path := filepath.Join(cacheDir, name)

	if _, err := os.Stat(path); err == nil {
		logrus.WithField("path", path).Info("using cached repository")
		update(path)
		return path, nil
	}

	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return "", fmt.Errorf("creating cache directory: %w", err)
	}

	logrus.WithFields(logrus.Fields{"url": url, "path": path}).Info("cloning repository")
	if _, err := git.PlainClone(path, false, &git.CloneOptions{URL: url}); err != nil {
		return "", fmt.Errorf("cloning %s: %w", url, err)
	}
	return path, nil
}

// update pulls the cached checkout. Failure is not fatal: the report is
// generated against whatever the cache holds.
func update(path string) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		logrus.WithField("path", path).WithError(err).Warn("cannot open cached repository, using as-is")
		return
	}
	wt, err := repo.Worktree()
	if err != nil {
		logrus.WithField("path", path).WithError(err).Warn("cannot open worktree, using cache as-is")
		return
	}
	err = wt.Pull(&git.PullOptions{RemoteName: "origin"})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		logrus.WithField("path", path).WithError(err).Warn("failed to update cached repository, continuing with existing cache")
	}
}
