package violations

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/mergeguard/mergeguard/database/models"
	types "github.com/mergeguard/mergeguard/database/types"
	"github.com/mergeguard/mergeguard/dtos"
	"github.com/mergeguard/mergeguard/mocks"
	"github.com/mergeguard/mergeguard/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func violationRow(ruleType string, ruleName string, data types.JSONB) models.PolicyViolation {
	return models.PolicyViolation{
		Model:    models.Model{ID: uuid.New()},
		PolicyID: uuid.New(),
		ApprovalPolicyRule: &models.ApprovalPolicyRule{
			RuleType: ruleType,
			Name:     ruleName,
		},
		Data: data,
	}
}

func TestNewDetails(t *testing.T) {
	t.Run("should drop rows without an associated approval rule", func(t *testing.T) {
		rows := []models.PolicyViolation{
			{Model: models.Model{ID: uuid.New()}, ApprovalPolicyRule: nil},
			violationRow("scan_finding", "criticals", nil),
		}

		details := NewDetails(models.MergeRequest{}, rows, nil, nil)
		assert.Len(t, details.Violations(), 1)
		assert.Equal(t, "criticals", details.Violations()[0].Name)
	})

	t.Run("should skip rows with an unrecognized rule type", func(t *testing.T) {
		rows := []models.PolicyViolation{
			violationRow("schedule", "nightly", nil),
			violationRow("license_scanning", "licenses", nil),
		}

		details := NewDetails(models.MergeRequest{}, rows, nil, nil)
		require.Len(t, details.Violations(), 1)
		assert.Equal(t, dtos.ReportTypeLicenseScanning, details.Violations()[0].ReportType)
	})

	t.Run("should keep a row whose data document does not decode", func(t *testing.T) {
		rows := []models.PolicyViolation{
			violationRow("scan_finding", "criticals", types.JSONB{"violations": "garbage"}),
		}

		details := NewDetails(models.MergeRequest{}, rows, nil, nil)
		assert.Len(t, details.Violations(), 1)
		assert.Empty(t, details.Errors())
	})
}

func TestUniquePolicyNames(t *testing.T) {
	rows := []models.PolicyViolation{
		violationRow("scan_finding", "b rule", nil),
		violationRow("scan_finding", "a rule", nil),
		violationRow("license_scanning", "a rule", nil),
		violationRow("any_merge_request", "c rule", nil),
	}
	details := NewDetails(models.MergeRequest{}, rows, nil, nil)

	assert.Equal(t, []string{"a rule", "b rule", "c rule"}, details.UniquePolicyNames())
	assert.Equal(t, []string{"a rule", "b rule"}, details.UniquePolicyNames(dtos.ReportTypeScanFinding))
	assert.Equal(t, []string{"a rule", "c rule"}, details.UniquePolicyNames(dtos.ReportTypeLicenseScanning, dtos.ReportTypeAnyMergeRequest))
}

func scanFindingData(newlyDetected []any, previouslyExisting []any, pipelineIDs []any, targetPipelineIDs []any) types.JSONB {
	return types.JSONB{
		"violations": map[string]any{
			"scan_finding": map[string]any{
				"uuids": map[string]any{
					"newly_detected":      newlyDetected,
					"previously_existing": previouslyExisting,
				},
			},
		},
		"context": map[string]any{
			"pipeline_ids":        pipelineIDs,
			"target_pipeline_ids": targetPipelineIDs,
		},
	}
}

func TestNewScanFindingViolations(t *testing.T) {
	t.Run("should resolve each uuid exactly once across policies and pipelines", func(t *testing.T) {
		rows := []models.PolicyViolation{
			violationRow("scan_finding", "first", scanFindingData([]any{"uuid-b", "uuid-a"}, nil, []any{2, 1}, nil)),
			violationRow("scan_finding", "second", scanFindingData([]any{"uuid-a", "uuid-c"}, nil, []any{1}, nil)),
		}

		name := "SQL injection"
		securityFindings := mocks.NewSecurityFindingRepository(t)
		securityFindings.On("GetByUUIDs", []int64{1, 2}, []string{"uuid-a", "uuid-b", "uuid-c"}).Return([]models.SecurityFinding{
			{FindingUUID: "uuid-a", PipelineID: 1, Severity: dtos.SeverityCritical, ReportType: "sast", Name: &name},
			// same uuid from a second pipeline, the first one wins
			{FindingUUID: "uuid-a", PipelineID: 2, Severity: dtos.SeverityLow, ReportType: "sast"},
			{FindingUUID: "uuid-b", PipelineID: 2, Severity: dtos.SeverityHigh, ReportType: "secret_detection"},
		}, nil)

		details := NewDetails(models.MergeRequest{}, rows, securityFindings, nil)
		result, err := details.NewScanFindingViolations()
		require.NoError(t, err)

		// uuid-c has no finding row, uuid-a appears once in uuid order
		require.Len(t, result, 2)
		assert.Equal(t, dtos.SeverityCritical, result[0].Severity)
		assert.Equal(t, &name, result[0].Name)
		assert.Equal(t, dtos.SeverityHigh, result[1].Severity)
		assert.Nil(t, result[1].Name)
	})

	t.Run("should not touch the repository without uuids", func(t *testing.T) {
		details := NewDetails(models.MergeRequest{}, []models.PolicyViolation{
			violationRow("scan_finding", "empty", nil),
		}, mocks.NewSecurityFindingRepository(t), nil)

		result, err := details.NewScanFindingViolations()
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("should derive the path from the finding location", func(t *testing.T) {
		rows := []models.PolicyViolation{
			violationRow("scan_finding", "criticals", scanFindingData([]any{"uuid-a", "uuid-b"}, nil, []any{1}, nil)),
		}

		securityFindings := mocks.NewSecurityFindingRepository(t)
		securityFindings.On("GetByUUIDs", []int64{1}, []string{"uuid-a", "uuid-b"}).Return([]models.SecurityFinding{
			{FindingUUID: "uuid-a", Location: types.JSONB{"file": "app/main.go", "start_line": 12}},
			{FindingUUID: "uuid-b", Location: types.JSONB{"file": "app/util.go"}},
		}, nil)

		details := NewDetails(models.MergeRequest{}, rows, securityFindings, nil)
		result, err := details.NewScanFindingViolations()
		require.NoError(t, err)
		require.Len(t, result, 2)

		require.NotNil(t, result[0].Path)
		assert.Equal(t, "app/main.go#L12", *result[0].Path)
		require.NotNil(t, result[1].Path)
		assert.Equal(t, "app/util.go", *result[1].Path)
	})
}

func TestPreviousScanFindingViolations(t *testing.T) {
	projectID := uuid.New()
	rows := []models.PolicyViolation{
		violationRow("scan_finding", "criticals", scanFindingData(nil, []any{"uuid-x"}, nil, nil)),
	}

	vulnerabilityFindings := mocks.NewVulnerabilityFindingRepository(t)
	vulnerabilityFindings.On("GetByUUIDs", projectID, []string{"uuid-x"}).Return([]models.VulnerabilityFinding{
		{FindingUUID: "uuid-x", Severity: dtos.SeverityMedium, ReportType: "dependency_scanning"},
	}, nil)

	details := NewDetails(models.MergeRequest{ProjectID: projectID}, rows, nil, vulnerabilityFindings)
	result, err := details.PreviousScanFindingViolations()
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, dtos.SeverityMedium, result[0].Severity)
}

func TestAnyMergeRequestViolations(t *testing.T) {
	t.Run("should decode the boolean commits shape", func(t *testing.T) {
		rows := []models.PolicyViolation{
			violationRow("any_merge_request", "signed commits", types.JSONB{
				"violations": map[string]any{"any_merge_request": map[string]any{"commits": true}},
			}),
		}

		details := NewDetails(models.MergeRequest{}, rows, nil, nil)
		result := details.AnyMergeRequestViolations()
		require.Len(t, result, 1)
		assert.True(t, result[0].AnyCommit)
		assert.Empty(t, result[0].Commits)
	})

	t.Run("should deduplicate and sort the listed shas", func(t *testing.T) {
		rows := []models.PolicyViolation{
			violationRow("any_merge_request", "signed commits", types.JSONB{
				"violations": map[string]any{"any_merge_request": map[string]any{"commits": []any{"beta", "alpha", "beta"}}},
			}),
		}

		details := NewDetails(models.MergeRequest{}, rows, nil, nil)
		result := details.AnyMergeRequestViolations()
		require.Len(t, result, 1)
		assert.False(t, result[0].AnyCommit)
		assert.Equal(t, []string{"alpha", "beta"}, result[0].Commits)
	})
}

func licenseData(licenses map[string]any) types.JSONB {
	return types.JSONB{
		"violations": map[string]any{"license_scanning": licenses},
	}
}

func TestLicenseScanningViolations(t *testing.T) {
	t.Run("should union the dependencies per license across policies", func(t *testing.T) {
		rows := []models.PolicyViolation{
			violationRow("license_scanning", "first", licenseData(map[string]any{
				"MIT": []any{"A", "B"},
			})),
			violationRow("license_scanning", "second", licenseData(map[string]any{
				"MIT":        []any{"B", "C"},
				"GPL-3.0":    []any{"D"},
				"Mysterious": []any{"E"},
			})),
		}

		details := NewDetails(models.MergeRequest{}, rows, nil, nil)
		result := details.LicenseScanningViolations()
		require.Len(t, result, 3)

		assert.Equal(t, "GPL-3.0", result[0].License)
		assert.Equal(t, "MIT", result[1].License)
		assert.Equal(t, []string{"A", "B", "C"}, result[1].Dependencies)
		assert.NotEmpty(t, result[1].URL)
		assert.Equal(t, "Mysterious", result[2].License)
		assert.Empty(t, result[2].URL)
	})
}

func errorData(errs []any) types.JSONB {
	return types.JSONB{"errors": errs}
}

func TestErrors(t *testing.T) {
	t.Run("should map known codes to their messages", func(t *testing.T) {
		rows := []models.PolicyViolation{
			violationRow("scan_finding", "criticals", errorData([]any{
				map[string]any{"error": "ARTIFACTS_MISSING", "report_type": "scan_finding"},
				map[string]any{"error": "SCAN_REMOVED", "report_type": "scan_finding"},
			})),
			violationRow("license_scanning", "licenses", errorData([]any{
				map[string]any{"error": "ARTIFACTS_MISSING", "report_type": "license_scanning"},
				// duplicate of the first row, reported once
				map[string]any{"error": "ARTIFACTS_MISSING", "report_type": "scan_finding"},
			})),
		}

		details := NewDetails(models.MergeRequest{}, rows, nil, nil)
		result := details.Errors()
		require.Len(t, result, 3)

		assert.Equal(t, "Pipeline artifacts for license scanning could not be found.", result[0].Message)
		assert.Equal(t, "Pipeline artifacts for security scans could not be found.", result[1].Message)
		assert.Equal(t, "Scanners required by policy were removed from the pipeline.", result[2].Message)
	})

	t.Run("should render unknown codes verbatim", func(t *testing.T) {
		rows := []models.PolicyViolation{
			violationRow("scan_finding", "criticals", errorData([]any{
				map[string]any{"error": "TIMEOUT", "report_type": "scan_finding"},
				map[string]any{"error": "ARTIFACTS_MISSING", "report_type": "container_scanning"},
			})),
		}

		details := NewDetails(models.MergeRequest{}, rows, nil, nil)
		result := details.Errors()
		require.Len(t, result, 2)
		assert.Equal(t, "Pipeline artifacts could not be found (container_scanning).", result[0].Message)
		assert.Equal(t, "Unknown error: TIMEOUT", result[1].Message)
	})
}

func TestComparisonPipelines(t *testing.T) {
	rows := []models.PolicyViolation{
		violationRow("license_scanning", "licenses", scanFindingData(nil, nil, []any{9}, []any{10})),
		violationRow("scan_finding", "first", scanFindingData(nil, nil, []any{3, 1}, []any{4})),
		violationRow("scan_finding", "second", scanFindingData(nil, nil, []any{1, 2}, nil)),
	}

	details := NewDetails(models.MergeRequest{}, rows, nil, nil)
	result := details.ComparisonPipelines()
	require.Len(t, result, 2)

	// canonical report type order, deduplicated and sorted ids
	assert.Equal(t, dtos.ReportTypeScanFinding, result[0].ReportType)
	assert.Equal(t, []int64{1, 2, 3}, result[0].Source)
	assert.Equal(t, []int64{4}, result[0].Target)
	assert.Equal(t, dtos.ReportTypeLicenseScanning, result[1].ReportType)
	assert.Equal(t, []int64{9}, result[1].Source)
	assert.Equal(t, []int64{10}, result[1].Target)
}

func TestDetailsDeterminism(t *testing.T) {
	rows := []models.PolicyViolation{
		violationRow("scan_finding", "b rule", scanFindingData(nil, nil, []any{3, 1}, []any{4})),
		violationRow("license_scanning", "a rule", licenseData(map[string]any{"MIT": []any{"B", "A"}})),
		violationRow("any_merge_request", "c rule", types.JSONB{
			"violations": map[string]any{"any_merge_request": map[string]any{"commits": []any{"z", "a"}}},
		}),
	}

	reference := NewDetails(models.MergeRequest{}, rows, nil, nil)

	for i := 0; i < 5; i++ {
		shuffled := append([]models.PolicyViolation{}, rows...)
		rand.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		details := NewDetails(models.MergeRequest{}, shuffled, nil, nil)

		assert.Equal(t, reference.UniquePolicyNames(), details.UniquePolicyNames())
		assert.Equal(t, reference.LicenseScanningViolations(), details.LicenseScanningViolations())
		assert.Equal(t, reference.ComparisonPipelines(), details.ComparisonPipelines())
		assert.Equal(t, utils.SortedUniq([]string{"a", "z"}), details.AnyMergeRequestViolations()[0].Commits)
	}
}
