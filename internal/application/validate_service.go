package application

import (
	"time"

	"github.com/mergegate/mergegate/internal/domain"
	"github.com/mergegate/mergegate/internal/domain/check"
)

// ValidateService orchestrates a full merge validation: branch resolution,
// the six fixed-order checks, and report assembly.
type ValidateService struct {
	reader domain.RefReader
	rules  domain.RuleSet
}

// NewValidateService creates a ValidateService with the given ref reader
// and rule set.
func NewValidateService(reader domain.RefReader, rules domain.RuleSet) *ValidateService {
	return &ValidateService{reader: reader, rules: rules}
}

// ValidateMerge validates merging source into target and returns the full
// report. Empty source defaults to the current branch; empty target to the
// configured trunk. Both refs must resolve before any check runs
// (fail-fast); after that every check always runs, and the aggregate
// decision is left to the caller via report.Passed().
//
// observe, when non-nil, is called with each result as it is produced so
// callers can surface progress.
func (s *ValidateService) ValidateMerge(source, target string, observe func(domain.CheckResult)) (*domain.ValidationReport, error) {
	// 1. Resolve branch defaults. Refs are resolved fresh on every call,
	// never cached.
	if source == "" {
		current, err := s.reader.CurrentBranch()
		if err != nil {
			return nil, err
		}
		source = current
	}
	if target == "" {
		target = s.rules.TargetBranch
	}

	// 2. Fail fast on unresolvable refs, before any check executes.
	if !s.reader.Exists(source) {
		return nil, &domain.ReferenceNotFoundError{Ref: source}
	}
	if !s.reader.Exists(target) {
		return nil, &domain.ReferenceNotFoundError{Ref: target}
	}

	// 3. Run all six checks in fixed order, never short-circuiting.
	results, err := check.Run(&check.Context{
		Reader: s.reader,
		Rules:  s.rules,
		Source: source,
		Target: target,
	}, observe)
	if err != nil {
		return nil, err
	}

	// 4. The report is always fully built, even on failure.
	return &domain.ValidationReport{
		Source:    source,
		Target:    target,
		Results:   results,
		Timestamp: time.Now(),
	}, nil
}
