// Package gitcmd queries a local git repository by shelling out to the git
// command line and parsing its textual output into structured records.
//
// All queries go through a [Repo] handle that carries the working directory
// and the command [Runner], so tests can inject a fake executor instead of
// relying on an ambient current directory.
//
// Failed git invocations are logged and treated as empty output; callers
// proceed with zero-valued results rather than aborting the report run.
package gitcmd
