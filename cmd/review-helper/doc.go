// Review-helper generates static code review reports for a git revision range.
//
// It clones (or reuses a cached copy of) a repository, collects commit
// metadata and unified diffs between two revisions, and renders an HTML or
// Markdown document with statistics, a commit table, and per-line deep links
// to the hosting service.
//
// Usage:
//
//	review-helper generate --repo https://github.com/dfinity/ic.git \
//	    --start <rev> --end <rev>                # full HTML report
//	review-helper generate --repo <url> --start <rev> --end <rev> \
//	    --path rs/nns --format markdown --type summary
//
// A `.review-config` file containing a line `ID := <digits>` tags the report
// with a proposal identifier used in the header and the output file name.
package main
