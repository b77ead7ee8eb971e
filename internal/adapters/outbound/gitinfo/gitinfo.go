package gitinfo

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// WorktreeAdapter implements domain.WorktreeInspector using go-git. It
// inspects the local working tree only; ref-tree queries go through the
// gitcli adapter.
type WorktreeAdapter struct{}

func New() *WorktreeAdapter {
	return &WorktreeAdapter{}
}

func (w *WorktreeAdapter) IsGitRepo(path string) bool {
	_, err := git.PlainOpen(path)
	return err == nil
}

func (w *WorktreeAdapter) CurrentBranch(path string) (string, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}

	return head.Name().Short(), nil
}

// Status returns the unstaged (including untracked) and staged file lists
// for the working tree at path.
func (w *WorktreeAdapter) Status(path string) (dirty, staged []string, err error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening git repo: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, nil, fmt.Errorf("getting worktree: %w", err)
	}

	status, err := worktree.Status()
	if err != nil {
		return nil, nil, fmt.Errorf("reading worktree status: %w", err)
	}

	for file, st := range status {
		if st.Staging != git.Unmodified && st.Staging != git.Untracked {
			staged = append(staged, file)
		}
		if st.Worktree != git.Unmodified {
			dirty = append(dirty, file)
		}
	}
	return dirty, staged, nil
}
