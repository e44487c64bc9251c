package violations

import (
	"fmt"
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

func TestDetailedCommentBody(t *testing.T) {
	t.Run("should render the resolved message without tracked types", func(t *testing.T) {
		detailed := NewDetailedComment(Comment{}, NewDetails(models.MergeRequest{}, nil, nil, nil), models.Project{}, nil)

		body, err := detailed.Body()
		require.NoError(t, err)
		assert.Equal(t, "Security policy violations have been resolved.\n", body)
	})

	t.Run("should render markers, title and resolve actions", func(t *testing.T) {
		rows := []models.PolicyViolation{
			violationRow("license_scanning", "license policy", licenseData(map[string]any{"MIT": []any{"lodash"}})),
			violationRow("any_merge_request", "approval policy", types.JSONB{
				"violations": map[string]any{"any_merge_request": map[string]any{"commits": true}},
			}),
		}
		details := NewDetails(models.MergeRequest{}, rows, nil, nil)

		var comment Comment
		comment.AddReportType(dtos.ReportTypeLicenseScanning, true)
		comment.AddReportType(dtos.ReportTypeAnyMergeRequest, true)

		detailed := NewDetailedComment(comment, details, models.Project{}, nil)
		body, err := detailed.Body()
		require.NoError(t, err)

		assert.Contains(t, body, "<!-- violated_reports: license_scanning,any_merge_request -->")
		assert.Contains(t, body, "## Security policy violations detected\n")
		assert.Contains(t, body, "- Remove all denied licenses identified by the `license policy` policy.")
		assert.Contains(t, body, "- Acquire the approvals required by the `approval policy` policy.")
		assert.Contains(t, body, "### Unsigned or unapproved commits")
		assert.Contains(t, body, "- `approval policy`: all commits in this merge request")
		assert.Contains(t, body, "### Denied licenses")
		assert.Contains(t, body, "[MIT](")
		assert.Contains(t, body, "`lodash`")
	})

	t.Run("should render an advisory title when nothing requires approval", func(t *testing.T) {
		rows := []models.PolicyViolation{
			violationRow("scan_finding", "criticals", nil),
		}
		details := NewDetails(models.MergeRequest{}, rows, nil, nil)

		var comment Comment
		comment.AddReportType(dtos.ReportTypeScanFinding, false)

		detailed := NewDetailedComment(comment, details, models.Project{}, nil)
		body, err := detailed.Body()
		require.NoError(t, err)

		assert.Contains(t, body, "## Security policy violations detected (advisory)")
		assert.Contains(t, body, "<!-- optional_approvals: scan_finding -->")
	})

	t.Run("should shorten and cap the listed commits", func(t *testing.T) {
		shas := make([]any, 0, 12)
		for i := 0; i < 12; i++ {
			shas = append(shas, fmt.Sprintf("%040d", i))
		}
		rows := []models.PolicyViolation{
			violationRow("any_merge_request", "approval policy", types.JSONB{
				"violations": map[string]any{"any_merge_request": map[string]any{"commits": shas}},
			}),
		}
		details := NewDetails(models.MergeRequest{}, rows, nil, nil)

		var comment Comment
		comment.AddReportType(dtos.ReportTypeAnyMergeRequest, true)

		detailed := NewDetailedComment(comment, details, models.Project{}, nil)
		body, err := detailed.Body()
		require.NoError(t, err)

		assert.Contains(t, body, "`00000000`")
		assert.Contains(t, body, " +2 more")
		assert.NotContains(t, body, "`0000000000`")
	})

	t.Run("should render the finding breakdown", func(t *testing.T) {
		rows := []models.PolicyViolation{
			violationRow("scan_finding", "criticals", scanFindingData([]any{"uuid-a"}, nil, []any{1}, []any{2})),
		}

		name := "Hardcoded secret"
		securityFindings := mocks.NewSecurityFindingRepository(t)
		securityFindings.On("GetByUUIDs", []int64{1}, []string{"uuid-a"}).Return([]models.SecurityFinding{
			{FindingUUID: "uuid-a", Severity: dtos.SeverityCritical, ReportType: "secret_detection", Name: &name, Location: types.JSONB{"file": "config.yml", "start_line": 3}},
		}, nil)

		details := NewDetails(models.MergeRequest{}, rows, securityFindings, nil)

		var comment Comment
		comment.AddReportType(dtos.ReportTypeScanFinding, true)

		detailed := NewDetailedComment(comment, details, models.Project{}, nil)
		body, err := detailed.Body()
		require.NoError(t, err)

		assert.Contains(t, body, "### Newly detected findings")
		assert.Contains(t, body, "- `critical` Hardcoded secret (secret_detection) in `config.yml#L3`")
		assert.Contains(t, body, "### Comparison pipelines")
		assert.Contains(t, body, "- scan_finding: source #1, target #2")
	})

	t.Run("should list warn mode policies and their would-be settings", func(t *testing.T) {
		warnPolicy, err := policy.NewApprovalPolicy(models.SecurityPolicy{
			Model: models.Model{ID: uuid.New()},
			Name:  "warn policy",
			Content: types.JSONB{
				"enforcement_type": "warn",
				"approval_settings": map[string]any{
					"prevent_approval_by_author": true,
				},
			},
		})
		require.NoError(t, err)

		rows := []models.PolicyViolation{
			violationRow("scan_finding", "criticals", nil),
		}
		details := NewDetails(models.MergeRequest{}, rows, nil, nil)

		var comment Comment
		comment.AddReportType(dtos.ReportTypeScanFinding, false)

		project := models.Project{MergeRequestsAuthorApproval: true}
		detailed := NewDetailedComment(comment, details, project, []policy.ApprovalPolicy{warnPolicy})
		body, err := detailed.Body()
		require.NoError(t, err)

		assert.Contains(t, body, "### Warn-mode policies")
		assert.Contains(t, body, "- `warn policy`")
		assert.Contains(t, body, "Without a bypass they would enforce the following approval settings:")
		assert.Contains(t, body, "- prevent_approval_by_author (`warn policy`)")
	})

	t.Run("should render byte identical output for repeated runs", func(t *testing.T) {
		rows := []models.PolicyViolation{
			violationRow("license_scanning", "license policy", licenseData(map[string]any{"MIT": []any{"b", "a"}})),
		}
		details := NewDetails(models.MergeRequest{}, rows, nil, nil)

		var comment Comment
		comment.AddReportType(dtos.ReportTypeLicenseScanning, true)

		detailed := NewDetailedComment(comment, details, models.Project{}, nil)
		first, err := detailed.Body()
		require.NoError(t, err)
		second, err := detailed.Body()
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
