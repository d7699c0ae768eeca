package gitcmd

import (
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes an external command in a working directory and returns its
// standard output. Implementations must return stderr context in the error
// when the command exits non-zero.
type Runner interface {
	Run(dir, name string, args ...string) (string, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run executes name with args in dir and returns stdout.
func (ExecRunner) Run(dir, name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return string(out), fmt.Errorf("%s: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", err
	}
	return string(out), nil
}
