package domain_test

import (
	"testing"

	"github.com/mergegate/mergegate/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestValidationReport_PassedIsConjunction(t *testing.T) {
	report := &domain.ValidationReport{
		Results: []domain.CheckResult{
			{Name: "FileCount", Passed: true},
			{Name: "CriticalFiles", Passed: true},
		},
	}
	assert.True(t, report.Passed())

	report.Results = append(report.Results, domain.CheckResult{Name: "StatusDoc", Passed: false})
	assert.False(t, report.Passed())
}

func TestValidationReport_FailedChecksKeepsOrder(t *testing.T) {
	report := &domain.ValidationReport{
		Results: []domain.CheckResult{
			{Name: "FileCount", Passed: false},
			{Name: "CriticalDirectories", Passed: true},
			{Name: "DecisionRecords", Passed: false},
		},
	}

	failed := report.FailedChecks()
	assert.Len(t, failed, 2)
	assert.Equal(t, "FileCount", failed[0].Name)
	assert.Equal(t, "DecisionRecords", failed[1].Name)
}

func TestReferenceNotFoundError_Messages(t *testing.T) {
	withRef := &domain.ReferenceNotFoundError{Ref: "feature/editor"}
	assert.Contains(t, withRef.Error(), "feature/editor")

	noRepo := &domain.ReferenceNotFoundError{}
	assert.Contains(t, noRepo.Error(), "not inside a git repository")
}
