package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// RuleSet is the immutable integrity configuration a validation run checks
// against. It is built once (defaults, optionally overlaid by
// .mergegate.yaml) and injected into the validator; it is never mutated
// after Validate.
type RuleSet struct {
	// TargetBranch is the trunk branch merges are validated against when
	// no explicit target is given.
	TargetBranch string `yaml:"target_branch"`

	// ProtectedBranches are destinations that trigger the full validator
	// in the pre-push hook, and that the pre-merge safety check refuses to
	// run on directly.
	ProtectedBranches []string `yaml:"protected_branches"`

	// CriticalDirectories must resolve as non-empty trees in the source
	// branch.
	CriticalDirectories []string `yaml:"critical_directories"`

	// CriticalFiles must exist as blobs in the source branch.
	CriticalFiles []string `yaml:"critical_files"`

	// ConfigFiles are candidates for the structural-parse check. Only
	// JSON-family files are parsed; anything else is listed but skipped
	// with a warning.
	ConfigFiles []string `yaml:"config_files"`

	// StatusDoc is the project status document checked for the phase,
	// progress, and date markers.
	StatusDoc string `yaml:"status_doc"`

	// ADRDir is the decision-record directory; it must hold at least one
	// markdown file and satisfy every ADRPatterns entry.
	ADRDir string `yaml:"adr_dir"`

	// ADRPatterns are regexes; each must match at least one filename in
	// ADRDir.
	ADRPatterns []string `yaml:"adr_patterns"`

	// MaxAbsoluteLoss and MaxPercentLoss bound how many tracked files a
	// source branch may lose relative to the target before the file-count
	// check fails. Policy values, not code.
	MaxAbsoluteLoss int     `yaml:"max_absolute_loss"`
	MaxPercentLoss  float64 `yaml:"max_percent_loss"`

	// LowFileCountFloor is the post-merge advisory threshold: a tracked
	// file count below it triggers a manual-review warning.
	LowFileCountFloor int `yaml:"low_file_count_floor"`
}

// DefaultRuleSet returns the built-in integrity rules. The critical paths
// default to the layout of the application this gate was extracted from; a
// repository overrides them in .mergegate.yaml.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		TargetBranch:      "main",
		ProtectedBranches: []string{"main", "master"},
		CriticalDirectories: []string{
			"src",
			"scripts",
			"config",
		},
		CriticalFiles: []string{
			"package.json",
			"package-lock.json",
			"README.md",
			"tsconfig.json",
			"src/main.ts",
			".github/workflows/ci.yml",
		},
		ConfigFiles: []string{
			"package.json",
			"tsconfig.json",
			".eslintrc.json",
			"config/default.json",
			"config/settings.yaml",
		},
		StatusDoc: "STATUS.md",
		ADRDir:    "docs/adr",
		ADRPatterns: []string{
			"(?i)architecture",
			"(?i)security",
		},
		MaxAbsoluteLoss:   50,
		MaxPercentLoss:    10.0,
		LowFileCountFloor: 100,
	}
}

// Validate checks the rule set for internal consistency: required fields
// present, every ADR pattern a compilable regex, thresholds non-negative.
func (r RuleSet) Validate() error {
	if strings.TrimSpace(r.TargetBranch) == "" {
		return fmt.Errorf("target_branch must not be empty")
	}
	if r.MaxAbsoluteLoss < 0 {
		return fmt.Errorf("max_absolute_loss must be >= 0, got %d", r.MaxAbsoluteLoss)
	}
	if r.MaxPercentLoss < 0 {
		return fmt.Errorf("max_percent_loss must be >= 0, got %g", r.MaxPercentLoss)
	}
	if r.LowFileCountFloor < 0 {
		return fmt.Errorf("low_file_count_floor must be >= 0, got %d", r.LowFileCountFloor)
	}
	for _, p := range r.ADRPatterns {
		if _, err := regexp.Compile(p); err != nil {
			return fmt.Errorf("invalid adr_patterns entry %q: %w", p, err)
		}
	}
	return nil
}

// IsProtected reports whether branch is one of the protected names.
func (r RuleSet) IsProtected(branch string) bool {
	for _, p := range r.ProtectedBranches {
		if p == branch {
			return true
		}
	}
	return false
}
