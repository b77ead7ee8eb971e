package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mergegate/mergegate/internal/adapters/outbound/config"
	"github.com/mergegate/mergegate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRules(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".mergegate.yaml"), []byte(content), 0o644))
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	rules, err := config.New().Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultRuleSet(), rules)
}

func TestLoad_OverridesWinOverDefaults(t *testing.T) {
	dir := t.TempDir()
	writeRules(t, dir, `
target_branch: trunk
critical_files:
  - go.mod
  - README.md
max_absolute_loss: 25
`)

	rules, err := config.New().Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "trunk", rules.TargetBranch)
	assert.Equal(t, []string{"go.mod", "README.md"}, rules.CriticalFiles)
	assert.Equal(t, 25, rules.MaxAbsoluteLoss)

	// Untouched fields keep their defaults.
	defaults := domain.DefaultRuleSet()
	assert.Equal(t, defaults.StatusDoc, rules.StatusDoc)
	assert.Equal(t, defaults.ADRPatterns, rules.ADRPatterns)
	assert.InDelta(t, defaults.MaxPercentLoss, rules.MaxPercentLoss, 0.001)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeRules(t, dir, "target_branch: [unterminated")

	_, err := config.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".mergegate.yaml")
}

func TestLoad_InvalidMergedRules(t *testing.T) {
	dir := t.TempDir()
	writeRules(t, dir, `
adr_patterns:
  - "[unclosed"
`)

	_, err := config.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "adr_patterns")
}
