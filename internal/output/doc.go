// Package output renders a collected report into its final document.
//
// Two formats are supported:
//   - html     — styled dark-theme page with collapsible per-commit sections,
//     per-line diff rendering, and deep links to the hosting service
//   - markdown — headed sections, summary and commit tables, fenced diff blocks
//
// Each format has a condensed mode that keeps statistics, the commit list,
// and the file list but omits the detailed-changes section entirely, diffs
// included, rather than emitting detail blocks with the diffs stripped.
// Use [ForFormat] to obtain a [Writer], or [WriteReport] to render straight
// to a file.
package output
