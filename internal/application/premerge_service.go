package application

import (
	"fmt"

	"github.com/mergegate/mergegate/internal/domain"
)

// PreMergeService is the lighter safety check run before a merge is
// attempted: clean worktree, nothing staged, and not sitting on a
// protected branch. It never invokes the six-check validator.
type PreMergeService struct {
	worktree domain.WorktreeInspector
	rules    domain.RuleSet
}

// NewPreMergeService creates a PreMergeService.
func NewPreMergeService(worktree domain.WorktreeInspector, rules domain.RuleSet) *PreMergeService {
	return &PreMergeService{worktree: worktree, rules: rules}
}

// Check inspects the working tree at repoPath and returns whether a merge
// may proceed, with one reason per violated condition. All conditions are
// evaluated so the caller gets an itemized list, not just the first block.
func (s *PreMergeService) Check(repoPath string) (*domain.PreMergeResult, error) {
	if !s.worktree.IsGitRepo(repoPath) {
		return nil, &domain.ReferenceNotFoundError{}
	}

	result := &domain.PreMergeResult{Allowed: true}

	dirty, staged, err := s.worktree.Status(repoPath)
	if err != nil {
		return nil, fmt.Errorf("inspecting worktree: %w", err)
	}
	if len(dirty) > 0 {
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("working tree has %d uncommitted change(s)", len(dirty)))
	}
	if len(staged) > 0 {
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("%d change(s) staged but not committed", len(staged)))
	}

	branch, err := s.worktree.CurrentBranch(repoPath)
	if err != nil {
		return nil, fmt.Errorf("resolving current branch: %w", err)
	}
	if s.rules.IsProtected(branch) {
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("current branch %q is protected; merge from a feature branch", branch))
	}

	result.Allowed = len(result.Reasons) == 0
	return result, nil
}
