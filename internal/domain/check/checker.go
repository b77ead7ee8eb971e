package check

import (
	"github.com/mergegate/mergegate/internal/domain"
)

// Context carries everything a check needs: the ref reader, the rule set,
// and the (source, target) pair under validation.
type Context struct {
	Reader domain.RefReader
	Rules  domain.RuleSet
	Source string
	Target string
}

// Func is a single integrity check. A failed check is reported through the
// returned CheckResult; the error return is reserved for fatal
// infrastructure problems (ToolInvocationError), which abort the run.
type Func func(ctx *Context) (domain.CheckResult, error)

// All returns the six checks in their fixed execution order. The order is
// part of the user-facing report contract and must not change.
func All() []Func {
	return []Func{
		FileCount,
		CriticalDirectories,
		CriticalFiles,
		ConfigIntegrity,
		StatusDoc,
		DecisionRecords,
	}
}

// Run executes every check in order and returns all results. Checks are
// never short-circuited on failure: a failing run still produces the full
// report so one invocation yields maximal diagnostics. Only a fatal
// infrastructure error stops the run early.
func Run(ctx *Context, observe func(domain.CheckResult)) ([]domain.CheckResult, error) {
	checks := All()
	results := make([]domain.CheckResult, 0, len(checks))
	for _, fn := range checks {
		result, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
		if observe != nil {
			observe(result)
		}
	}
	return results, nil
}
