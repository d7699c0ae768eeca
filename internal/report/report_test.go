package report

import (
	"fmt"
	"strings"
	"testing"

	"github.com/rem-code-s/proposal-review-helper/internal/gitcmd"
)

type scriptedRunner struct {
	responses map[string]string
}

func (s *scriptedRunner) Run(dir, name string, args ...string) (string, error) {
	key := name + " " + strings.Join(args, " ")
	out, ok := s.responses[key]
	if !ok {
		return "", fmt.Errorf("exit status 128: unscripted command %q", key)
	}
	return out, nil
}

func testRepo() *gitcmd.Repo {
	return gitcmd.OpenWithRunner("/repo", &scriptedRunner{responses: map[string]string{
		"git rev-list --count v1..v2":                        "2",
		"git diff --name-only v1..v2":                        "a.go\nb.go",
		"git diff --stat v1..v2":                             " 2 files changed, 3 insertions(+), 1 deletion(-)",
		"git log --format=%H|%s|%an|%ad --date=short v1..v2": "h2|feat: two|Bob|2024-02-02\nh1|fix: one|Alice|2024-02-01",

		"git show --no-patch --format=%an <%ae> h2":        "Bob <bob@example.com>",
		"git show --no-patch --format=%ad --date=short h2": "2024-02-02",
		"git show --no-patch --format=%s h2":               "feat: two",
		"git show --name-only --format= h2":                "a.go",
		"git show h2":                                      "+++ b/a.go\n@@ -1 +1,2 @@\n+token = \"abcdefabcdefabcdef12\"",

		"git show --no-patch --format=%an <%ae> h1":        "Alice <alice@example.com>",
		"git show --no-patch --format=%ad --date=short h1": "2024-02-01",
		"git show --no-patch --format=%s h1":               "fix: one",
		"git show --name-only --format= h1":                "b.go",
		"git show h1":                                      "+++ b/b.go\n@@ -1 +1 @@\n+ok",
	}})
}

func TestCollect(t *testing.T) {
	rep := Collect(testRepo(), Options{Start: "v1", End: "v2", RepoURL: "https://github.com/example/repo"})

	if rep.Stats.Commits != 2 || rep.Stats.LinesAdded != 3 || rep.Stats.LinesRemoved != 1 {
		t.Errorf("stats = %+v", rep.Stats)
	}
	if len(rep.Commits) != 2 {
		t.Fatalf("got %d commits, want 2", len(rep.Commits))
	}
	// Details follow enumeration order, newest first.
	if len(rep.Details) != 2 || rep.Details[0].Hash != "h2" || rep.Details[1].Hash != "h1" {
		t.Errorf("details order = %v, %v", rep.Details[0].Hash, rep.Details[1].Hash)
	}
	if rep.Details[0].Author != "Bob <bob@example.com>" {
		t.Errorf("detail author = %q", rep.Details[0].Author)
	}
	if rep.GeneratedAt.IsZero() {
		t.Error("GeneratedAt not set")
	}
}

func TestCollect_EmptyRange(t *testing.T) {
	repo := gitcmd.OpenWithRunner("/repo", &scriptedRunner{responses: map[string]string{
		"git rev-list --count a..a":                        "0",
		"git diff --name-only a..a":                        "",
		"git diff --stat a..a":                             "",
		"git log --format=%H|%s|%an|%ad --date=short a..a": "",
	}})
	rep := Collect(repo, Options{Start: "a", End: "a"})
	if rep.Stats.Commits != 0 || len(rep.Commits) != 0 || len(rep.Details) != 0 {
		t.Errorf("empty range should produce an empty report, got %+v", rep)
	}
}

func TestCollect_RedactsSecrets(t *testing.T) {
	rep := Collect(testRepo(), Options{Start: "v1", End: "v2", RedactSecrets: true})
	if strings.Contains(rep.Details[0].Diff, "abcdefabcdefabcdef12") {
		t.Errorf("secret survived redaction: %q", rep.Details[0].Diff)
	}
	if !strings.Contains(rep.Details[0].Diff, "[REDACTED]") {
		t.Errorf("placeholder missing: %q", rep.Details[0].Diff)
	}
}
