package gitcmd

import "strings"

// CommitType is the conventional-commit category derived from the subject
// prefix.
type CommitType string

const (
	TypeFeat     CommitType = "feat"
	TypeFix      CommitType = "fix"
	TypeChore    CommitType = "chore"
	TypeDocs     CommitType = "docs"
	TypeRefactor CommitType = "refactor"
	TypeTest     CommitType = "test"
	TypeStyle    CommitType = "style"
	TypeOther    CommitType = "other"
)

// classifyOrder is the priority order for prefix matching. feat before fix
// matters: a subject starting with "feat" must never classify as fix.
var classifyOrder = []CommitType{
	TypeFeat, TypeFix, TypeChore, TypeDocs, TypeRefactor, TypeTest, TypeStyle,
}

// Classify maps a commit subject to its conventional-commit type. This is a
// plain prefix test, not a word-boundary test: "feature flag" classifies as
// feat and "Fixes: null pointer" as fix. Historical reports depend on this
// matching, so it stays a substring check.
func Classify(subject string) CommitType {
	lower := strings.ToLower(subject)
	for _, t := range classifyOrder {
		if strings.HasPrefix(lower, string(t)) {
			return t
		}
	}
	return TypeOther
}

// Commit is one entry of the range log, newest first.
type Commit struct {
	Hash    string
	Subject string
	Author  string
	Date    string
	Type    CommitType
}

// Commits lists the commits in start..end in log order (newest first). Each
// log line carries hash, subject, author name, and day-precision date
// separated by pipes; only the first three pipes delimit fields, so subjects
// containing pipes survive intact. Malformed lines are skipped.
func (r *Repo) Commits(start, end string, paths []string) []Commit {
	args := []string{"log", "--format=%H|%s|%an|%ad", "--date=short", start + ".." + end}
	out := r.git(pathArgs(args, paths)...)

	var commits []Commit
	for _, line := range splitNonEmpty(out) {
		parts := strings.SplitN(line, "|", 4)
		if len(parts) < 4 {
			continue
		}
		commits = append(commits, Commit{
			Hash:    parts[0],
			Subject: parts[1],
			Author:  parts[2],
			Date:    parts[3],
			Type:    Classify(parts[1]),
		})
	}
	return commits
}
