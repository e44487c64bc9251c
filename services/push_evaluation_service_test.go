package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/mergeguard/mergeguard/bypass"
	"github.com/mergeguard/mergeguard/database/models"
	types "github.com/mergeguard/mergeguard/database/types"
	"github.com/mergeguard/mergeguard/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func policyRecord(name string, content types.JSONB) models.SecurityPolicy {
	return models.SecurityPolicy{
		Model:   models.Model{ID: uuid.New()},
		Name:    name,
		Enabled: true,
		Content: content,
	}
}

func newTestPushService(policyRepository *mocks.SecurityPolicyRepository, userRepository *mocks.UserRepository, accessTokens *mocks.AccessTokenRepository, sink *mocks.AuditSink, memberships *mocks.GroupMembershipRepository) *pushEvaluationService {
	userChecker := bypass.NewUserChecker(memberships, nil, nil)
	return NewPushEvaluationService(policyRepository, userRepository, accessTokens, userChecker, sink)
}

func TestEvaluatePush(t *testing.T) {
	project := models.Project{Model: models.Model{ID: uuid.New()}, Path: "group/app"}

	t.Run("should allow the push without applicable policies", func(t *testing.T) {
		policyRepository := mocks.NewSecurityPolicyRepository(t)
		policyRepository.On("GetApplicableToProject", project.ID).Return([]models.SecurityPolicy{}, nil)

		userRepository := mocks.NewUserRepository(t)
		userRepository.On("Read", int64(1)).Return(models.User{ID: 1}, nil)

		service := newTestPushService(policyRepository, userRepository, mocks.NewAccessTokenRepository(t), mocks.NewAuditSink(t), mocks.NewGroupMembershipRepository(t))

		decision, err := service.EvaluatePush(project, 1, "main", "")
		require.NoError(t, err)
		assert.True(t, decision.Allowed)
		assert.Empty(t, decision.BlockingPolicies)
	})

	t.Run("should list warn policies without blocking", func(t *testing.T) {
		policyRepository := mocks.NewSecurityPolicyRepository(t)
		policyRepository.On("GetApplicableToProject", project.ID).Return([]models.SecurityPolicy{
			policyRecord("advisory", types.JSONB{"enforcement_type": "warn"}),
		}, nil)

		userRepository := mocks.NewUserRepository(t)
		userRepository.On("Read", int64(1)).Return(models.User{ID: 1}, nil)

		service := newTestPushService(policyRepository, userRepository, mocks.NewAccessTokenRepository(t), mocks.NewAuditSink(t), mocks.NewGroupMembershipRepository(t))

		decision, err := service.EvaluatePush(project, 1, "main", "")
		require.NoError(t, err)
		assert.True(t, decision.Allowed)
		assert.Equal(t, []string{"advisory"}, decision.WarnPolicies)
	})

	t.Run("should block an enforced policy without a bypass route", func(t *testing.T) {
		policyRepository := mocks.NewSecurityPolicyRepository(t)
		policyRepository.On("GetApplicableToProject", project.ID).Return([]models.SecurityPolicy{
			policyRecord("strict", types.JSONB{}),
		}, nil)

		userRepository := mocks.NewUserRepository(t)
		userRepository.On("Read", int64(1)).Return(models.User{ID: 1}, nil)

		sink := mocks.NewAuditSink(t)
		service := newTestPushService(policyRepository, userRepository, mocks.NewAccessTokenRepository(t), sink, mocks.NewGroupMembershipRepository(t))

		decision, err := service.EvaluatePush(project, 1, "main", "")
		require.NoError(t, err)
		assert.False(t, decision.Allowed)
		assert.Equal(t, []string{"strict"}, decision.BlockingPolicies)
		sink.AssertNotCalled(t, "Audit", mock.Anything)
	})

	t.Run("should record a bypassed policy and keep the push allowed", func(t *testing.T) {
		policyRepository := mocks.NewSecurityPolicyRepository(t)
		policyRepository.On("GetApplicableToProject", project.ID).Return([]models.SecurityPolicy{
			policyRecord("bypassable", types.JSONB{
				"bypass_settings": map[string]any{"users": []any{1}},
			}),
		}, nil)

		userRepository := mocks.NewUserRepository(t)
		userRepository.On("Read", int64(1)).Return(models.User{ID: 1, Name: "Jo"}, nil)

		sink := mocks.NewAuditSink(t)
		sink.On("Audit", mock.Anything).Once()

		service := newTestPushService(policyRepository, userRepository, mocks.NewAccessTokenRepository(t), sink, mocks.NewGroupMembershipRepository(t))

		decision, err := service.EvaluatePush(project, 1, "main", "Emergency fix")
		require.NoError(t, err)
		assert.True(t, decision.Allowed)
		assert.Equal(t, []string{"bypassable"}, decision.BypassedPolicies)
	})

	t.Run("should propagate the missing reason error unchanged", func(t *testing.T) {
		policyRepository := mocks.NewSecurityPolicyRepository(t)
		policyRepository.On("GetApplicableToProject", project.ID).Return([]models.SecurityPolicy{
			policyRecord("bypassable", types.JSONB{
				"bypass_settings": map[string]any{"users": []any{1}},
			}),
		}, nil)

		userRepository := mocks.NewUserRepository(t)
		userRepository.On("Read", int64(1)).Return(models.User{ID: 1}, nil)

		service := newTestPushService(policyRepository, userRepository, mocks.NewAccessTokenRepository(t), mocks.NewAuditSink(t), mocks.NewGroupMembershipRepository(t))

		_, err := service.EvaluatePush(project, 1, "main", "")
		assert.ErrorIs(t, err, bypass.ErrReasonRequired)
	})

	t.Run("should evaluate an unknown pusher as an anonymous identity", func(t *testing.T) {
		policyRepository := mocks.NewSecurityPolicyRepository(t)
		policyRepository.On("GetApplicableToProject", project.ID).Return([]models.SecurityPolicy{
			policyRecord("bypassable", types.JSONB{
				"bypass_settings": map[string]any{"users": []any{99}},
			}),
		}, nil)

		userRepository := mocks.NewUserRepository(t)
		userRepository.On("Read", int64(99)).Return(models.User{}, gorm.ErrRecordNotFound)

		service := newTestPushService(policyRepository, userRepository, mocks.NewAccessTokenRepository(t), mocks.NewAuditSink(t), mocks.NewGroupMembershipRepository(t))

		decision, err := service.EvaluatePush(project, 99, "main", "Emergency fix")
		require.NoError(t, err)
		assert.False(t, decision.Allowed)
		assert.Equal(t, []string{"bypassable"}, decision.BlockingPolicies)
	})
}
