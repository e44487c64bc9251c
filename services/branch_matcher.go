package services

import (
	"path"

	"github.com/google/uuid"
	"github.com/mergeguard/mergeguard/database/models"
	"github.com/mergeguard/mergeguard/shared"
	"github.com/mergeguard/mergeguard/utils"
	"github.com/pkg/errors"
)

var _ shared.BranchMatcher = &protectedBranchMatcher{}

// protectedBranchMatcher resolves a rule's branch configuration against the
// protected branches known for a project.
type protectedBranchMatcher struct {
	protectedBranches shared.ProtectedBranchRepository
}

func NewProtectedBranchMatcher(protectedBranches shared.ProtectedBranchRepository) *protectedBranchMatcher {
	return &protectedBranchMatcher{protectedBranches: protectedBranches}
}

// MatchingBranchNames returns the protected branch names the rule currently
// applies to. An empty branch list together with branch type "protected" or
// "all" matches every protected branch, explicit branch entries support
// shell wildcards. Exceptions always win over matches.
func (m *protectedBranchMatcher) MatchingBranchNames(projectID uuid.UUID, branches []string, branchType string, exceptions []string) ([]string, error) {
	protected, err := m.protectedBranches.GetByProject(projectID)
	if err != nil {
		return nil, errors.Wrap(err, "could not load protected branches")
	}

	names := utils.Map(protected, func(b models.ProtectedBranch) string {
		return b.Name
	})

	if len(branches) > 0 {
		names = utils.Filter(names, func(name string) bool {
			return matchesAnyPattern(branches, name)
		})
	}
	// branch types "protected" and "all" keep the full protected set

	names = utils.Filter(names, func(name string) bool {
		return !matchesAnyPattern(exceptions, name)
	})

	return utils.SortedUniq(names), nil
}

func matchesAnyPattern(patterns []string, name string) bool {
	return utils.Any(patterns, func(pattern string) bool {
		// a broken pattern matches nothing
		matched, err := path.Match(pattern, name)
		return err == nil && matched
	})
}
