package overrides

import (
	"testing"

	"github.com/google/uuid"
	"github.com/mergeguard/mergeguard/database/models"
	types "github.com/mergeguard/mergeguard/database/types"
	"github.com/mergeguard/mergeguard/dtos"
	"github.com/mergeguard/mergeguard/mocks"
	"github.com/mergeguard/mergeguard/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushSettings(t *testing.T) {
	project := models.Project{Model: models.Model{ID: uuid.New()}}

	warnContent := func(settings map[string]any) types.JSONB {
		return types.JSONB{
			"enforcement_type":  "warn",
			"approval_settings": settings,
			"rules":             []any{map[string]any{"type": "scan_finding", "branches": []any{"main"}}},
		}
	}

	t.Run("should never consider enforced policies", func(t *testing.T) {
		enforced := newPolicy(t, "enforced", types.JSONB{
			"enforcement_type": "enforce",
			"approval_settings": map[string]any{
				"block_branch_modification": true,
			},
			"rules": []any{map[string]any{"type": "scan_finding", "branches": []any{"main"}}},
		})

		matcher := mocks.NewBranchMatcher(t)
		protectedBranches := mocks.NewProtectedBranchRepository(t)

		result, err := PushSettings(project, []policy.ApprovalPolicy{enforced}, matcher, protectedBranches)
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("should report branches whose protection is weaker than the policy asks", func(t *testing.T) {
		warn := newPolicy(t, "warn", warnContent(map[string]any{
			"block_branch_modification":         true,
			"prevent_pushing_and_force_pushing": true,
		}))

		matcher := mocks.NewBranchMatcher(t)
		matcher.On("MatchingBranchNames", project.ID, []string{"main"}, "", []string(nil)).Return([]string{"main", "release"}, nil)

		protectedBranches := mocks.NewProtectedBranchRepository(t)
		protectedBranches.On("GetByProjectAndNames", project.ID, []string{"main", "release"}).Return([]models.ProtectedBranch{
			{Name: "main", AllowForcePush: true, ModificationBlockedByPolicy: false},
			{Name: "release", AllowForcePush: false, ModificationBlockedByPolicy: true},
		}, nil)

		result, err := PushSettings(project, []policy.ApprovalPolicy{warn}, matcher, protectedBranches)
		require.NoError(t, err)
		require.Len(t, result, 2)

		assert.Equal(t, dtos.AttrBlockBranchModification, result[0].Attribute)
		assert.Equal(t, []string{"main"}, result[0].Branches)
		assert.Equal(t, dtos.AttrPreventPushingAndForcePushing, result[1].Attribute)
		assert.Equal(t, []string{"main"}, result[1].Branches)
	})

	t.Run("should skip a policy whose restriction every branch already implies", func(t *testing.T) {
		warn := newPolicy(t, "warn", warnContent(map[string]any{
			"prevent_pushing_and_force_pushing": true,
		}))

		matcher := mocks.NewBranchMatcher(t)
		matcher.On("MatchingBranchNames", project.ID, []string{"main"}, "", []string(nil)).Return([]string{"main"}, nil)

		protectedBranches := mocks.NewProtectedBranchRepository(t)
		protectedBranches.On("GetByProjectAndNames", project.ID, []string{"main"}).Return([]models.ProtectedBranch{
			{Name: "main", AllowForcePush: false},
		}, nil)

		result, err := PushSettings(project, []policy.ApprovalPolicy{warn}, matcher, protectedBranches)
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("should skip a policy without push related settings", func(t *testing.T) {
		warn := newPolicy(t, "warn", warnContent(map[string]any{
			"prevent_approval_by_author": true,
		}))

		matcher := mocks.NewBranchMatcher(t)
		protectedBranches := mocks.NewProtectedBranchRepository(t)

		result, err := PushSettings(project, []policy.ApprovalPolicy{warn}, matcher, protectedBranches)
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("should skip a policy whose rules match no branch", func(t *testing.T) {
		warn := newPolicy(t, "warn", warnContent(map[string]any{
			"block_branch_modification": true,
		}))

		matcher := mocks.NewBranchMatcher(t)
		matcher.On("MatchingBranchNames", project.ID, []string{"main"}, "", []string(nil)).Return([]string{}, nil)

		protectedBranches := mocks.NewProtectedBranchRepository(t)

		result, err := PushSettings(project, []policy.ApprovalPolicy{warn}, matcher, protectedBranches)
		require.NoError(t, err)
		assert.Empty(t, result)
	})
}
