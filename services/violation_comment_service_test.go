package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mergeguard/mergeguard/database/models"
	types "github.com/mergeguard/mergeguard/database/types"
	"github.com/mergeguard/mergeguard/mocks"
	"github.com/mergeguard/mergeguard/violations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func violationRowFor(policyRecord models.SecurityPolicy, ruleType string, ruleName string) models.PolicyViolation {
	ruleID := uuid.New()
	return models.PolicyViolation{
		Model:                models.Model{ID: uuid.New()},
		PolicyID:             policyRecord.ID,
		Policy:               policyRecord,
		ApprovalPolicyRuleID: &ruleID,
		ApprovalPolicyRule: &models.ApprovalPolicyRule{
			Model:    models.Model{ID: ruleID},
			PolicyID: policyRecord.ID,
			RuleType: ruleType,
			Name:     ruleName,
		},
	}
}

func TestRenderCommentBody(t *testing.T) {
	t.Run("should render the resolved body without rows", func(t *testing.T) {
		service := NewViolationCommentService(nil, nil, nil, nil, nil, nil)

		body, err := service.RenderCommentBody(models.MergeRequest{}, models.Project{}, nil)
		require.NoError(t, err)
		assert.Equal(t, "Security policy violations have been resolved.\n", body)
	})

	t.Run("should mark report types of enforced policies as requiring approval", func(t *testing.T) {
		enforced := policyRecord("strict", types.JSONB{"enforcement_type": "enforce"})
		rows := []models.PolicyViolation{
			violationRowFor(enforced, "scan_finding", "criticals"),
		}

		service := NewViolationCommentService(nil, nil, nil, nil, nil, nil)
		body, err := service.RenderCommentBody(models.MergeRequest{}, models.Project{}, rows)
		require.NoError(t, err)

		comment := violations.ParseComment(body)
		assert.True(t, comment.RequiresApproval())
		assert.Contains(t, body, "requires approval")
	})

	t.Run("should mark report types violated only by warn policies as advisory", func(t *testing.T) {
		warn := policyRecord("advisory", types.JSONB{"enforcement_type": "warn"})
		rows := []models.PolicyViolation{
			violationRowFor(warn, "scan_finding", "criticals"),
		}

		service := NewViolationCommentService(nil, nil, nil, nil, nil, nil)
		body, err := service.RenderCommentBody(models.MergeRequest{}, models.Project{}, rows)
		require.NoError(t, err)

		comment := violations.ParseComment(body)
		assert.False(t, comment.RequiresApproval())
		assert.Contains(t, body, "(advisory)")
	})

	t.Run("should require approval when an enforced and a warn policy share a report type", func(t *testing.T) {
		enforced := policyRecord("strict", types.JSONB{})
		warn := policyRecord("advisory", types.JSONB{"enforcement_type": "warn"})
		rows := []models.PolicyViolation{
			violationRowFor(warn, "scan_finding", "warn rule"),
			violationRowFor(enforced, "scan_finding", "strict rule"),
		}

		service := NewViolationCommentService(nil, nil, nil, nil, nil, nil)
		body, err := service.RenderCommentBody(models.MergeRequest{}, models.Project{}, rows)
		require.NoError(t, err)

		comment := violations.ParseComment(body)
		assert.True(t, comment.RequiresApproval())
	})
}

func TestRefreshComment(t *testing.T) {
	gitlabProjectID := int64(4711)
	projectID := uuid.New()
	mergeRequestID := uuid.New()

	project := models.Project{Model: models.Model{ID: projectID}, GitlabProjectID: &gitlabProjectID}
	mergeRequest := models.MergeRequest{Model: models.Model{ID: mergeRequestID}, ProjectID: projectID, IID: 12}

	t.Run("should post a new note and persist its id", func(t *testing.T) {
		mergeRequestRepository := mocks.NewMergeRequestRepository(t)
		mergeRequestRepository.On("Read", mergeRequestID).Return(mergeRequest, nil)
		mergeRequestRepository.On("Save", (*gorm.DB)(nil), mock.MatchedBy(func(m *models.MergeRequest) bool {
			return m.ViolationCommentNoteID != nil && *m.ViolationCommentNoteID == int64(555)
		})).Return(nil)

		projectRepository := mocks.NewProjectRepository(t)
		projectRepository.On("Read", projectID).Return(project, nil)

		violationRepository := mocks.NewPolicyViolationRepository(t)
		violationRepository.On("GetByMergeRequest", mergeRequestID).Return([]models.PolicyViolation{}, nil)

		noteClient := mocks.NewMergeRequestNoteClient(t)
		noteClient.On("UpsertMergeRequestNote", mock.Anything, gitlabProjectID, int64(12), (*int64)(nil), mock.Anything).Return(int64(555), nil)

		service := NewViolationCommentService(violationRepository, mergeRequestRepository, projectRepository, nil, nil, noteClient)

		err := service.RefreshComment(context.Background(), mergeRequestID)
		require.NoError(t, err)
	})

	t.Run("should not persist when the note id is unchanged", func(t *testing.T) {
		noteID := int64(555)
		existing := mergeRequest
		existing.ViolationCommentNoteID = &noteID

		mergeRequestRepository := mocks.NewMergeRequestRepository(t)
		mergeRequestRepository.On("Read", mergeRequestID).Return(existing, nil)

		projectRepository := mocks.NewProjectRepository(t)
		projectRepository.On("Read", projectID).Return(project, nil)

		violationRepository := mocks.NewPolicyViolationRepository(t)
		violationRepository.On("GetByMergeRequest", mergeRequestID).Return([]models.PolicyViolation{}, nil)

		noteClient := mocks.NewMergeRequestNoteClient(t)
		noteClient.On("UpsertMergeRequestNote", mock.Anything, gitlabProjectID, int64(12), &noteID, mock.Anything).Return(noteID, nil)

		service := NewViolationCommentService(violationRepository, mergeRequestRepository, projectRepository, nil, nil, noteClient)

		err := service.RefreshComment(context.Background(), mergeRequestID)
		require.NoError(t, err)
		mergeRequestRepository.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("should fail for a project without an upstream link", func(t *testing.T) {
		unlinked := models.Project{Model: models.Model{ID: projectID}}

		mergeRequestRepository := mocks.NewMergeRequestRepository(t)
		mergeRequestRepository.On("Read", mergeRequestID).Return(mergeRequest, nil)

		projectRepository := mocks.NewProjectRepository(t)
		projectRepository.On("Read", projectID).Return(unlinked, nil)

		service := NewViolationCommentService(nil, mergeRequestRepository, projectRepository, nil, nil, nil)

		err := service.RefreshComment(context.Background(), mergeRequestID)
		assert.Error(t, err)
	})
}
