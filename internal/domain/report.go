package domain

import "time"

// CheckResult is the immutable outcome of a single integrity check.
// Failures are data, never errors: a failed check is collected into the
// report and only escalates after every check has run.
type CheckResult struct {
	// Name is the check identifier in PascalCase (e.g. "FileCount").
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`

	// Details carries structured diagnostics: missing paths, parse
	// errors, unmatched patterns.
	Details []string `json:"details,omitempty"`

	// Warnings never affect Passed.
	Warnings []string `json:"warnings,omitempty"`
}

// ValidationReport is the full outcome of one validateMerge run. It is
// built once, rendered, and discarded; nothing persists across runs.
type ValidationReport struct {
	Source    string        `json:"source"`
	Target    string        `json:"target"`
	Results   []CheckResult `json:"results"`
	Timestamp time.Time     `json:"timestamp"`
}

// Passed reports the aggregate gate decision: true iff every check passed.
func (r *ValidationReport) Passed() bool {
	for _, c := range r.Results {
		if !c.Passed {
			return false
		}
	}
	return true
}

// FailedChecks returns the results that did not pass, in check order.
func (r *ValidationReport) FailedChecks() []CheckResult {
	var failed []CheckResult
	for _, c := range r.Results {
		if !c.Passed {
			failed = append(failed, c)
		}
	}
	return failed
}

// PreMergeResult is the outcome of the lighter pre-merge safety check.
type PreMergeResult struct {
	Allowed bool     `json:"allowed"`
	Reasons []string `json:"reasons,omitempty"`
}

// BranchAudit is the diagnostic output of the branch-audit command.
type BranchAudit struct {
	Branch    string `json:"branch"`
	FileCount int    `json:"file_count"`
}
