package application_test

import (
	"errors"
	"fmt"
	"path"
	"strings"
	"testing"

	"github.com/mergegate/mergegate/internal/application"
	"github.com/mergegate/mergegate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReader is an in-memory RefReader with query counting, so tests can
// assert that no checks ran after a failed branch resolution.
type fakeReader struct {
	current     string
	branches    map[string]map[string]string
	treeQueries int
}

func (f *fakeReader) CurrentBranch() (string, error) {
	if f.current == "" {
		return "", &domain.ReferenceNotFoundError{}
	}
	return f.current, nil
}

func (f *fakeReader) Exists(ref string) bool {
	_, ok := f.branches[ref]
	return ok
}

func (f *fakeReader) FileCount(ref string) (int, error) {
	f.treeQueries++
	return len(f.branches[ref]), nil
}

func (f *fakeReader) FileExists(filePath, ref string) (bool, error) {
	f.treeQueries++
	_, ok := f.branches[ref][filePath]
	return ok, nil
}

func (f *fakeReader) DirectoryExists(dirPath, ref string) (bool, error) {
	f.treeQueries++
	prefix := dirPath + "/"
	for p := range f.branches[ref] {
		if strings.HasPrefix(p, prefix) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeReader) FileContent(filePath, ref string) (string, error) {
	f.treeQueries++
	return f.branches[ref][filePath], nil
}

func (f *fakeReader) DirectoryContents(dirPath, ref string) ([]string, error) {
	f.treeQueries++
	prefix := dirPath + "/"
	var names []string
	for p := range f.branches[ref] {
		if strings.HasPrefix(p, prefix) {
			names = append(names, path.Base(p))
		}
	}
	return names, nil
}

// healthyBranch builds a tree that satisfies every default rule.
func healthyBranch(extraFiles int) map[string]string {
	files := map[string]string{
		"package.json":                           `{"name": "editor"}`,
		"package-lock.json":                      `{}`,
		"README.md":                              "# editor",
		"tsconfig.json":                          `{"compilerOptions": {}}`,
		"src/main.ts":                            "export {}",
		".github/workflows/ci.yml":               "on: push",
		"scripts/build.sh":                       "#!/bin/sh",
		"config/default.json":                    `{}`,
		"STATUS.md":                              "Current Phase: 4\nProgress: 80%\n2026-08-31\n",
		"docs/adr/0001-architecture-baseline.md": "# ADR",
		"docs/adr/0002-security-model.md":        "# ADR",
	}
	for i := 0; i < extraFiles; i++ {
		files[fmt.Sprintf("src/mod%04d.ts", i)] = "export {}"
	}
	return files
}

func TestValidateMerge_HealthyPairPasses(t *testing.T) {
	reader := &fakeReader{
		current: "feature",
		branches: map[string]map[string]string{
			"feature": healthyBranch(20),
			"main":    healthyBranch(10),
		},
	}
	svc := application.NewValidateService(reader, domain.DefaultRuleSet())

	report, err := svc.ValidateMerge("feature", "main", nil)
	require.NoError(t, err)

	assert.True(t, report.Passed())
	assert.Len(t, report.Results, 6)
	assert.Equal(t, "feature", report.Source)
	assert.Equal(t, "main", report.Target)
	assert.False(t, report.Timestamp.IsZero())
}

func TestValidateMerge_DefaultsResolveFresh(t *testing.T) {
	reader := &fakeReader{
		current: "feature",
		branches: map[string]map[string]string{
			"feature": healthyBranch(0),
			"main":    healthyBranch(0),
		},
	}
	svc := application.NewValidateService(reader, domain.DefaultRuleSet())

	report, err := svc.ValidateMerge("", "", nil)
	require.NoError(t, err)

	assert.Equal(t, "feature", report.Source)
	assert.Equal(t, "main", report.Target)
}

func TestValidateMerge_MissingSourceAbortsBeforeChecks(t *testing.T) {
	reader := &fakeReader{
		current:  "feature",
		branches: map[string]map[string]string{"main": healthyBranch(0)},
	}
	svc := application.NewValidateService(reader, domain.DefaultRuleSet())

	_, err := svc.ValidateMerge("ghost", "main", nil)
	require.Error(t, err)

	var notFound *domain.ReferenceNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "ghost", notFound.Ref)
	assert.Zero(t, reader.treeQueries, "no check may query trees after a failed resolution")
}

func TestValidateMerge_MissingTargetAborts(t *testing.T) {
	reader := &fakeReader{
		current:  "feature",
		branches: map[string]map[string]string{"feature": healthyBranch(0)},
	}
	svc := application.NewValidateService(reader, domain.DefaultRuleSet())

	_, err := svc.ValidateMerge("feature", "ghost", nil)

	var notFound *domain.ReferenceNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "ghost", notFound.Ref)
}

func TestValidateMerge_FailingCheckDoesNotStopOthers(t *testing.T) {
	broken := healthyBranch(0)
	delete(broken, "README.md") // critical-files check will fail

	reader := &fakeReader{
		current: "feature",
		branches: map[string]map[string]string{
			"feature": broken,
			"main":    healthyBranch(0),
		},
	}
	svc := application.NewValidateService(reader, domain.DefaultRuleSet())

	var observed []string
	report, err := svc.ValidateMerge("feature", "main", func(r domain.CheckResult) {
		observed = append(observed, r.Name)
	})
	require.NoError(t, err)

	assert.False(t, report.Passed())
	assert.Len(t, observed, 6, "all six checks must run even after a failure")

	failed := report.FailedChecks()
	require.Len(t, failed, 1)
	assert.Equal(t, "CriticalFiles", failed[0].Name)
	assert.Contains(t, strings.Join(failed[0].Details, "\n"), "README.md")
}
