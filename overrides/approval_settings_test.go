package overrides

import (
	"testing"

	"github.com/mergeguard/mergeguard/database/models"
	types "github.com/mergeguard/mergeguard/database/types"
	"github.com/mergeguard/mergeguard/dtos"
	"github.com/mergeguard/mergeguard/policy"
	"github.com/mergeguard/mergeguard/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPolicy(t *testing.T, name string, content types.JSONB) policy.ApprovalPolicy {
	t.Helper()
	approvalPolicy, err := policy.NewApprovalPolicy(models.SecurityPolicy{Name: name, Content: content})
	require.NoError(t, err)
	return approvalPolicy
}

func TestApprovalSettings(t *testing.T) {
	// permissive project: every policy request is stricter
	permissive := models.Project{MergeRequestsAuthorApproval: true}

	t.Run("should group the contributing policies per requested attribute", func(t *testing.T) {
		first := newPolicy(t, "first", types.JSONB{
			"approval_settings": map[string]any{
				"prevent_approval_by_author":  true,
				"require_password_to_approve": true,
			},
		})
		second := newPolicy(t, "second", types.JSONB{
			"approval_settings": map[string]any{
				"prevent_approval_by_author": true,
			},
		})

		result := ApprovalSettings(permissive, []policy.ApprovalPolicy{first, second})
		require.Len(t, result, 2)

		assert.Equal(t, dtos.AttrPreventApprovalByAuthor, result[0].Attribute)
		assert.Equal(t, []string{"first", "second"}, utils.Map(result[0].Policies, policy.ApprovalPolicy.Name))
		assert.Equal(t, dtos.AttrRequirePasswordToApprove, result[1].Attribute)
		assert.Equal(t, []string{"first"}, utils.Map(result[1].Policies, policy.ApprovalPolicy.Name))
	})

	t.Run("should omit attributes the project already enforces", func(t *testing.T) {
		strict := models.Project{
			MergeRequestsAuthorApproval:            false,
			MergeRequestsDisableCommittersApproval: true,
			ResetApprovalsOnPush:                   true,
			RequirePasswordToApprove:               true,
		}
		demanding := newPolicy(t, "demanding", types.JSONB{
			"approval_settings": map[string]any{
				"prevent_approval_by_author":        true,
				"prevent_approval_by_commit_author": true,
				"remove_approvals_with_new_commit":  true,
				"require_password_to_approve":       true,
			},
		})

		result := ApprovalSettings(strict, []policy.ApprovalPolicy{demanding})
		assert.Empty(t, result)
	})

	t.Run("should ignore explicit false and absent settings", func(t *testing.T) {
		lax := newPolicy(t, "lax", types.JSONB{
			"approval_settings": map[string]any{
				"prevent_approval_by_author": false,
			},
		})

		result := ApprovalSettings(permissive, []policy.ApprovalPolicy{lax})
		assert.Empty(t, result)
	})

	t.Run("should produce identical output when run twice", func(t *testing.T) {
		policies := []policy.ApprovalPolicy{
			newPolicy(t, "a", types.JSONB{"approval_settings": map[string]any{"prevent_approval_by_author": true}}),
			newPolicy(t, "b", types.JSONB{"approval_settings": map[string]any{"remove_approvals_with_new_commit": true}}),
		}

		first := ApprovalSettings(permissive, policies)
		second := ApprovalSettings(permissive, policies)
		assert.Equal(t, first, second)
	})
}
