package gitcmd

// Detail holds the full information for a single commit: metadata, the files
// it touched, and its raw unified diff text.
type Detail struct {
	Hash    string
	Author  string
	Date    string
	Subject string
	Files   []string
	Diff    string
}

// Detail fetches author, date, subject, touched files, and the unified diff
// for one commit. The five queries are independent; there is no transactional
// guarantee across them, which is acceptable for a one-shot report.
func (r *Repo) Detail(hash string, paths []string) Detail {
	return Detail{
		Hash:    hash,
		Author:  r.git("show", "--no-patch", "--format=%an <%ae>", hash),
		Date:    r.git("show", "--no-patch", "--format=%ad", "--date=short", hash),
		Subject: r.git("show", "--no-patch", "--format=%s", hash),
		Files:   splitNonEmpty(r.git(pathArgs([]string{"show", "--name-only", "--format=", hash}, paths)...)),
		Diff:    r.git(pathArgs([]string{"show", hash}, paths)...),
	}
}
