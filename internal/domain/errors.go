package domain

import (
	"fmt"
	"strings"
)

// ReferenceNotFoundError reports a ref that resolves neither locally nor as
// a remote-tracking branch on origin. A zero Ref means the command ran
// outside a git repository entirely.
type ReferenceNotFoundError struct {
	Ref string
}

func (e *ReferenceNotFoundError) Error() string {
	if e.Ref == "" {
		return "not inside a git repository"
	}
	return fmt.Sprintf("reference %q not found locally or on origin", e.Ref)
}

// ToolInvocationError reports a git invocation that failed in a way no check
// can interpret: the binary could not be spawned, or a query against a
// resolvable ref exited non-zero. It aborts the run rather than counting as
// a check failure.
type ToolInvocationError struct {
	Args     []string
	ExitCode int
	Err      error
}

func (e *ToolInvocationError) Error() string {
	return fmt.Sprintf("git %s: exit %d: %v", strings.Join(e.Args, " "), e.ExitCode, e.Err)
}

func (e *ToolInvocationError) Unwrap() error {
	return e.Err
}
