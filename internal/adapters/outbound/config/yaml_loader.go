package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mergegate/mergegate/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".mergegate.yaml"

// YAMLLoader implements domain.RuleLoader by reading .mergegate.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .mergegate.yaml from repoPath and merges it over the built-in
// defaults. A missing file yields the defaults unchanged.
func (l *YAMLLoader) Load(repoPath string) (domain.RuleSet, error) {
	defaults := domain.DefaultRuleSet()

	data, err := os.ReadFile(filepath.Join(repoPath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaults, nil
		}
		return domain.RuleSet{}, err
	}

	var override domain.RuleSet
	if err := yaml.Unmarshal(data, &override); err != nil {
		return domain.RuleSet{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	merged := mergeRules(defaults, override)
	if err := merged.Validate(); err != nil {
		return domain.RuleSet{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}
	return merged, nil
}

// mergeRules overlays explicit overrides on top of the defaults. Explicit
// (non-zero) values always win; list overrides replace the default list
// entirely.
func mergeRules(base, override domain.RuleSet) domain.RuleSet {
	result := base

	if override.TargetBranch != "" {
		result.TargetBranch = override.TargetBranch
	}
	if len(override.ProtectedBranches) > 0 {
		result.ProtectedBranches = override.ProtectedBranches
	}
	if len(override.CriticalDirectories) > 0 {
		result.CriticalDirectories = override.CriticalDirectories
	}
	if len(override.CriticalFiles) > 0 {
		result.CriticalFiles = override.CriticalFiles
	}
	if len(override.ConfigFiles) > 0 {
		result.ConfigFiles = override.ConfigFiles
	}
	if override.StatusDoc != "" {
		result.StatusDoc = override.StatusDoc
	}
	if override.ADRDir != "" {
		result.ADRDir = override.ADRDir
	}
	if len(override.ADRPatterns) > 0 {
		result.ADRPatterns = override.ADRPatterns
	}
	if override.MaxAbsoluteLoss > 0 {
		result.MaxAbsoluteLoss = override.MaxAbsoluteLoss
	}
	if override.MaxPercentLoss > 0 {
		result.MaxPercentLoss = override.MaxPercentLoss
	}
	if override.LowFileCountFloor > 0 {
		result.LowFileCountFloor = override.LowFileCountFloor
	}

	return result
}
