package application

import (
	"github.com/mergegate/mergegate/internal/domain"
)

// AuditService produces the branch-audit diagnostic: the tracked-file
// count of a branch.
type AuditService struct {
	reader domain.RefReader
}

// NewAuditService creates an AuditService.
func NewAuditService(reader domain.RefReader) *AuditService {
	return &AuditService{reader: reader}
}

// Audit returns the tracked-file count for branch, defaulting to the
// current branch when empty.
func (s *AuditService) Audit(branch string) (*domain.BranchAudit, error) {
	if branch == "" {
		current, err := s.reader.CurrentBranch()
		if err != nil {
			return nil, err
		}
		branch = current
	}

	if !s.reader.Exists(branch) {
		return nil, &domain.ReferenceNotFoundError{Ref: branch}
	}

	count, err := s.reader.FileCount(branch)
	if err != nil {
		return nil, err
	}

	return &domain.BranchAudit{Branch: branch, FileCount: count}, nil
}
