package application_test

import (
	"errors"
	"testing"

	"github.com/mergegate/mergegate/internal/application"
	"github.com/mergegate/mergegate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAudit_ExplicitBranch(t *testing.T) {
	reader := &fakeReader{
		current:  "feature",
		branches: map[string]map[string]string{"main": healthyBranch(5)},
	}
	svc := application.NewAuditService(reader)

	audit, err := svc.Audit("main")
	require.NoError(t, err)

	assert.Equal(t, "main", audit.Branch)
	assert.Equal(t, len(healthyBranch(5)), audit.FileCount)
}

func TestAudit_DefaultsToCurrentBranch(t *testing.T) {
	reader := &fakeReader{
		current:  "feature",
		branches: map[string]map[string]string{"feature": healthyBranch(0)},
	}
	svc := application.NewAuditService(reader)

	audit, err := svc.Audit("")
	require.NoError(t, err)
	assert.Equal(t, "feature", audit.Branch)
}

func TestAudit_UnknownBranch(t *testing.T) {
	reader := &fakeReader{current: "feature", branches: map[string]map[string]string{}}
	svc := application.NewAuditService(reader)

	_, err := svc.Audit("ghost")
	require.Error(t, err)

	var notFound *domain.ReferenceNotFoundError
	assert.True(t, errors.As(err, &notFound))
}
