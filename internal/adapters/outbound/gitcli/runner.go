package gitcli

import (
	"bytes"
	"errors"
	"os/exec"

	"github.com/mergegate/mergegate/internal/domain"
)

// Runner executes a single git query and returns its stdout and exit code.
// The one-method surface keeps every git invocation fakeable in tests
// without a real repository.
type Runner interface {
	Run(args ...string) (stdout string, exitCode int, err error)
}

// ExecRunner invokes the git binary as a synchronous child process.
type ExecRunner struct {
	// Dir is the working directory for git; empty means the process's
	// current directory.
	Dir string
}

// Run spawns `git args...`. A non-zero exit is not an error here — callers
// decide whether it is expected (e.g. probing a missing blob) or fatal.
// Failure to spawn at all is a ToolInvocationError.
func (r *ExecRunner) Run(args ...string) (string, int, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return stdout.String(), exitErr.ExitCode(), nil
		}
		return "", -1, &domain.ToolInvocationError{Args: args, ExitCode: -1, Err: err}
	}
	return stdout.String(), 0, nil
}
