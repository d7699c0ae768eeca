package gitcmd

import (
	"fmt"
	"strings"
	"testing"
)

// fakeRunner maps a joined argument string to canned output. Unknown
// commands fail like a non-zero git exit.
type fakeRunner struct {
	responses map[string]string
	calls     []string
}

func (f *fakeRunner) Run(dir, name string, args ...string) (string, error) {
	key := name + " " + strings.Join(args, " ")
	f.calls = append(f.calls, key)
	out, ok := f.responses[key]
	if !ok {
		return "", fmt.Errorf("exit status 128: fatal: unknown command %q", key)
	}
	return out, nil
}

func fakeRepo(responses map[string]string) (*Repo, *fakeRunner) {
	r := &fakeRunner{responses: responses}
	return OpenWithRunner("/repo", r), r
}

func TestClassify(t *testing.T) {
	tests := []struct {
		subject string
		want    CommitType
	}{
		{"feat: add login", TypeFeat},
		{"feature flag rollout", TypeFeat}, // prefix match, not whole-word
		{"Fixes: null pointer", TypeFix},
		{"fix(parser): handle empty hunks", TypeFix},
		{"chore: bump deps", TypeChore},
		{"docs: update readme", TypeDocs},
		{"refactor: extract helper", TypeRefactor},
		{"test: cover edge cases", TypeTest},
		{"style: gofmt", TypeStyle},
		{"Merge branch 'main'", TypeOther},
		{"", TypeOther},
	}
	for _, tt := range tests {
		if got := Classify(tt.subject); got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.subject, got, tt.want)
		}
	}
}

func TestParseDiffStat(t *testing.T) {
	tests := []struct {
		name        string
		stat        string
		wantAdded   int
		wantRemoved int
	}{
		{
			name:        "both clauses",
			stat:        " main.go | 16 +++++++++++----\n 3 files changed, 12 insertions(+), 4 deletions(-)",
			wantAdded:   12,
			wantRemoved: 4,
		},
		{
			name:        "no deletions clause",
			stat:        " 1 file changed, 7 insertions(+)",
			wantAdded:   7,
			wantRemoved: 0,
		},
		{
			name:        "no insertions clause",
			stat:        " 2 files changed, 9 deletions(-)",
			wantAdded:   0,
			wantRemoved: 9,
		},
		{
			name: "empty",
			stat: "",
		},
		{
			name:        "singular insertion",
			stat:        " 1 file changed, 1 insertion(+), 1 deletion(-)",
			wantAdded:   1,
			wantRemoved: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			added, removed := parseDiffStat(tt.stat)
			if added != tt.wantAdded || removed != tt.wantRemoved {
				t.Errorf("parseDiffStat = (%d, %d), want (%d, %d)",
					added, removed, tt.wantAdded, tt.wantRemoved)
			}
		})
	}
}

func TestStats(t *testing.T) {
	repo, _ := fakeRepo(map[string]string{
		"git rev-list --count abc..def": "5\n",
		"git diff --name-only abc..def": "src/main.go\n\nsrc/util.go\n",
		"git diff --stat abc..def":      " src/main.go | 10 ++++\n 2 files changed, 12 insertions(+), 4 deletions(-)",
	})
	stats := repo.Stats("abc", "def", nil)
	if stats.Commits != 5 {
		t.Errorf("Commits = %d, want 5", stats.Commits)
	}
	if stats.Files != 2 {
		t.Errorf("Files = %d, want 2", stats.Files)
	}
	if stats.LinesAdded != 12 || stats.LinesRemoved != 4 {
		t.Errorf("lines = (%d, %d), want (12, 4)", stats.LinesAdded, stats.LinesRemoved)
	}
	if len(stats.FileList) != 2 || stats.FileList[0] != "src/main.go" {
		t.Errorf("FileList = %v", stats.FileList)
	}
}

func TestStats_EmptyRange(t *testing.T) {
	repo, _ := fakeRepo(map[string]string{
		"git rev-list --count abc..abc": "0",
		"git diff --name-only abc..abc": "",
		"git diff --stat abc..abc":      "",
	})
	stats := repo.Stats("abc", "abc", nil)
	if stats.Commits != 0 || stats.Files != 0 || stats.LinesAdded != 0 || stats.LinesRemoved != 0 {
		t.Errorf("empty range should be all zeroes, got %+v", stats)
	}
	if len(stats.FileList) != 0 {
		t.Errorf("FileList should be empty, got %v", stats.FileList)
	}
}

func TestStats_PathFilter(t *testing.T) {
	repo, runner := fakeRepo(map[string]string{
		"git rev-list --count a..b -- rs/nns rs/sns": "1",
		"git diff --name-only a..b -- rs/nns rs/sns": "rs/nns/lib.rs",
		"git diff --stat a..b -- rs/nns rs/sns":      " 1 file changed, 2 insertions(+)",
	})
	stats := repo.Stats("a", "b", []string{"rs/nns", "rs/sns"})
	if stats.Commits != 1 || stats.LinesAdded != 2 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	for _, call := range runner.calls {
		if !strings.Contains(call, "-- rs/nns rs/sns") {
			t.Errorf("call %q missing path filter", call)
		}
	}
}

func TestStats_CommandFailure(t *testing.T) {
	repo, _ := fakeRepo(map[string]string{}) // every call fails
	stats := repo.Stats("a", "b", nil)
	if stats.Commits != 0 || len(stats.FileList) != 0 {
		t.Errorf("failed commands should yield zero stats, got %+v", stats)
	}
}

func TestCommits(t *testing.T) {
	out := strings.Join([]string{
		"aaa111|feat: add thing|Alice|2024-03-02",
		"bbb222|fix: off by one|Bob|2024-03-01",
		"malformed line without pipes",
		"ccc333|chore|Carol|2024-02-28",
	}, "\n")
	repo, _ := fakeRepo(map[string]string{
		"git log --format=%H|%s|%an|%ad --date=short v1..v2": out,
	})
	commits := repo.Commits("v1", "v2", nil)
	if len(commits) != 3 {
		t.Fatalf("got %d commits, want 3 (malformed line skipped)", len(commits))
	}
	first := commits[0]
	if first.Hash != "aaa111" {
		t.Errorf("Hash = %q", first.Hash)
	}
	if first.Subject != "feat: add thing" {
		t.Errorf("Subject = %q", first.Subject)
	}
	if first.Author != "Alice" || first.Date != "2024-03-02" {
		t.Errorf("Author/Date = %q/%q", first.Author, first.Date)
	}
	if first.Type != TypeFeat {
		t.Errorf("Type = %q, want feat", first.Type)
	}
	if commits[1].Type != TypeFix || commits[2].Type != TypeChore {
		t.Errorf("types = %q, %q", commits[1].Type, commits[2].Type)
	}
}

// A pipe inside the subject collides with the field separator. The
// left split takes the first three pipes as delimiters, so the subject
// is cut at its first pipe and the remainder bleeds into author/date.
func TestCommits_PipeInSubject(t *testing.T) {
	repo, _ := fakeRepo(map[string]string{
		"git log --format=%H|%s|%an|%ad --date=short v1..v2": "aaa111|feat: add pipe | handling|Alice|2024-03-02",
	})
	commits := repo.Commits("v1", "v2", nil)
	if len(commits) != 1 {
		t.Fatalf("got %d commits, want 1", len(commits))
	}
	c := commits[0]
	if c.Subject != "feat: add pipe " {
		t.Errorf("Subject = %q, want truncated %q", c.Subject, "feat: add pipe ")
	}
	if c.Author != " handling" || c.Date != "Alice|2024-03-02" {
		t.Errorf("Author/Date = %q/%q", c.Author, c.Date)
	}
	if c.Type != TypeFeat {
		t.Errorf("Type = %q, want feat", c.Type)
	}
}

func TestCommits_EmptyRange(t *testing.T) {
	repo, _ := fakeRepo(map[string]string{
		"git log --format=%H|%s|%an|%ad --date=short a..b": "",
	})
	if commits := repo.Commits("a", "b", nil); len(commits) != 0 {
		t.Errorf("got %d commits, want 0", len(commits))
	}
}

func TestDetail(t *testing.T) {
	repo, _ := fakeRepo(map[string]string{
		"git show --no-patch --format=%an <%ae> abc123":        "Alice <alice@example.com>",
		"git show --no-patch --format=%ad --date=short abc123": "2024-03-02",
		"git show --no-patch --format=%s abc123":               "feat: add thing",
		"git show --name-only --format= abc123 -- src":         "src/a.go\nsrc/b.go\n",
		"git show abc123 -- src":                               "diff --git a/src/a.go b/src/a.go\n+++ b/src/a.go\n@@ -1 +1,2 @@\n+new",
	})
	d := repo.Detail("abc123", []string{"src"})
	if d.Author != "Alice <alice@example.com>" {
		t.Errorf("Author = %q", d.Author)
	}
	if d.Date != "2024-03-02" || d.Subject != "feat: add thing" {
		t.Errorf("Date/Subject = %q/%q", d.Date, d.Subject)
	}
	if len(d.Files) != 2 || d.Files[1] != "src/b.go" {
		t.Errorf("Files = %v", d.Files)
	}
	if !strings.Contains(d.Diff, "+++ b/src/a.go") {
		t.Errorf("Diff = %q", d.Diff)
	}
}

func TestPathArgs(t *testing.T) {
	got := pathArgs([]string{"log"}, []string{"a", "b"})
	want := []string{"log", "--", "a", "b"}
	if len(got) != len(want) {
		t.Fatalf("pathArgs = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pathArgs[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if got := pathArgs([]string{"log"}, nil); len(got) != 1 {
		t.Errorf("pathArgs with no paths = %v, want [log]", got)
	}
}
