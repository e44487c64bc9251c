package bypass

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mergeguard/mergeguard/database/models"
	types "github.com/mergeguard/mergeguard/database/types"
	"github.com/mergeguard/mergeguard/mocks"
	"github.com/mergeguard/mergeguard/policy"
	"github.com/mergeguard/mergeguard/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestPolicy(t *testing.T, bypassSettings map[string]any) policy.ApprovalPolicy {
	t.Helper()
	content := types.JSONB{}
	if bypassSettings != nil {
		content["bypass_settings"] = bypassSettings
	}
	approvalPolicy, err := policy.NewApprovalPolicy(models.SecurityPolicy{
		Name:    "Block criticals",
		Content: content,
	})
	require.NoError(t, err)
	return approvalPolicy
}

func newTestChecker(t *testing.T, approvalPolicy policy.ApprovalPolicy, user *models.User, options PushOptions, sink shared.AuditSink, accessTokens shared.AccessTokenRepository, memberships shared.GroupMembershipRepository, roles shared.ProjectRoleResolver, customRoles shared.CustomRoleAssignmentRepository) *Checker {
	t.Helper()
	project := models.Project{Model: models.Model{ID: uuid.New()}, Path: "group/app"}
	auditor := NewAuditor(sink, approvalPolicy, project, "main")
	userChecker := NewUserChecker(memberships, roles, customRoles)
	return NewChecker(approvalPolicy, project, user, "main", options, auditor, userChecker, accessTokens)
}

func TestBypassAllowedEmptySettings(t *testing.T) {
	t.Run("should deny without auditing when no bypass route is configured", func(t *testing.T) {
		sink := mocks.NewAuditSink(t)
		user := &models.User{ID: 1}

		checker := newTestChecker(t, newTestPolicy(t, nil), user, PushOptions{BypassReason: "Emergency fix"}, sink, nil, nil, nil, nil)

		allowed, err := checker.BypassAllowed()
		require.NoError(t, err)
		assert.False(t, allowed)
		sink.AssertNotCalled(t, "Audit", mock.Anything)
	})
}

func TestAccessTokenBypass(t *testing.T) {
	approvalPolicy := newTestPolicy(t, map[string]any{"access_tokens": []any{42}})

	t.Run("should allow an active listed token of a project bot", func(t *testing.T) {
		sink := mocks.NewAuditSink(t)
		sink.On("Audit", mock.MatchedBy(func(event shared.AuditEvent) bool {
			return event.Name == EventAccessTokenBypass
		})).Once()

		accessTokens := mocks.NewAccessTokenRepository(t)
		accessTokens.On("GetByBotUser", int64(7)).Return(models.AccessToken{ID: 42, UserID: 7, Name: "ci token"}, nil)

		bot := &models.User{ID: 7, ProjectBot: true}
		checker := newTestChecker(t, approvalPolicy, bot, PushOptions{}, sink, accessTokens, nil, nil, nil)

		allowed, err := checker.BypassAllowed()
		require.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("should deny a revoked token", func(t *testing.T) {
		sink := mocks.NewAuditSink(t)
		accessTokens := mocks.NewAccessTokenRepository(t)
		accessTokens.On("GetByBotUser", int64(7)).Return(models.AccessToken{ID: 42, UserID: 7, Revoked: true}, nil)

		bot := &models.User{ID: 7, ProjectBot: true}
		checker := newTestChecker(t, approvalPolicy, bot, PushOptions{}, sink, accessTokens, nil, nil, nil)

		allowed, err := checker.BypassAllowed()
		require.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("should deny an expired token", func(t *testing.T) {
		expired := time.Now().Add(-time.Hour)
		sink := mocks.NewAuditSink(t)
		accessTokens := mocks.NewAccessTokenRepository(t)
		accessTokens.On("GetByBotUser", int64(7)).Return(models.AccessToken{ID: 42, UserID: 7, ExpiresAt: &expired}, nil)

		bot := &models.User{ID: 7, ProjectBot: true}
		checker := newTestChecker(t, approvalPolicy, bot, PushOptions{}, sink, accessTokens, nil, nil, nil)

		allowed, err := checker.BypassAllowed()
		require.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("should deny a token that is not listed", func(t *testing.T) {
		sink := mocks.NewAuditSink(t)
		accessTokens := mocks.NewAccessTokenRepository(t)
		accessTokens.On("GetByBotUser", int64(7)).Return(models.AccessToken{ID: 99, UserID: 7}, nil)

		bot := &models.User{ID: 7, ProjectBot: true}
		checker := newTestChecker(t, approvalPolicy, bot, PushOptions{}, sink, accessTokens, nil, nil, nil)

		allowed, err := checker.BypassAllowed()
		require.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("should deny a bot without a resolvable token", func(t *testing.T) {
		sink := mocks.NewAuditSink(t)
		accessTokens := mocks.NewAccessTokenRepository(t)
		accessTokens.On("GetByBotUser", int64(7)).Return(models.AccessToken{}, gorm.ErrRecordNotFound)

		bot := &models.User{ID: 7, ProjectBot: true}
		checker := newTestChecker(t, approvalPolicy, bot, PushOptions{}, sink, accessTokens, nil, nil, nil)

		allowed, err := checker.BypassAllowed()
		require.NoError(t, err)
		assert.False(t, allowed)
	})
}

func TestServiceAccountBypass(t *testing.T) {
	approvalPolicy := newTestPolicy(t, map[string]any{"service_accounts": []any{11}})

	t.Run("should allow a listed service account without a reason", func(t *testing.T) {
		sink := mocks.NewAuditSink(t)
		sink.On("Audit", mock.MatchedBy(func(event shared.AuditEvent) bool {
			return event.Name == EventServiceAccountBypass
		})).Once()

		account := &models.User{ID: 11, ServiceAccount: true}
		checker := newTestChecker(t, approvalPolicy, account, PushOptions{}, sink, nil, nil, nil, nil)

		allowed, err := checker.BypassAllowed()
		require.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("should deny an unlisted service account", func(t *testing.T) {
		sink := mocks.NewAuditSink(t)
		account := &models.User{ID: 12, ServiceAccount: true}
		checker := newTestChecker(t, approvalPolicy, account, PushOptions{}, sink, nil, nil, nil, nil)

		allowed, err := checker.BypassAllowed()
		require.NoError(t, err)
		assert.False(t, allowed)
	})
}

func TestUserBypass(t *testing.T) {
	approvalPolicy := newTestPolicy(t, map[string]any{"users": []any{5}})

	t.Run("should require a reason once a user route matches", func(t *testing.T) {
		sink := mocks.NewAuditSink(t)
		user := &models.User{ID: 5}
		checker := newTestChecker(t, approvalPolicy, user, PushOptions{}, sink, nil, nil, nil, nil)

		allowed, err := checker.BypassAllowed()
		assert.ErrorIs(t, err, ErrReasonRequired)
		assert.False(t, allowed)
		sink.AssertNotCalled(t, "Audit", mock.Anything)
	})

	t.Run("should treat a whitespace only reason as missing", func(t *testing.T) {
		sink := mocks.NewAuditSink(t)
		user := &models.User{ID: 5}
		checker := newTestChecker(t, approvalPolicy, user, PushOptions{BypassReason: "   "}, sink, nil, nil, nil, nil)

		_, err := checker.BypassAllowed()
		assert.ErrorIs(t, err, ErrReasonRequired)
	})

	t.Run("should treat a markup only reason as missing", func(t *testing.T) {
		sink := mocks.NewAuditSink(t)
		user := &models.User{ID: 5}
		checker := newTestChecker(t, approvalPolicy, user, PushOptions{BypassReason: "**"}, sink, nil, nil, nil, nil)

		_, err := checker.BypassAllowed()
		assert.ErrorIs(t, err, ErrReasonRequired)
		sink.AssertNotCalled(t, "Audit", mock.Anything)
	})

	t.Run("should allow a listed user with a reason and audit once", func(t *testing.T) {
		sink := mocks.NewAuditSink(t)
		sink.On("Audit", mock.MatchedBy(func(event shared.AuditEvent) bool {
			return event.Name == EventUserBypass && event.AdditionalDetails["reason"] == "Emergency fix"
		})).Once()

		user := &models.User{ID: 5, Name: "Jo"}
		checker := newTestChecker(t, approvalPolicy, user, PushOptions{BypassReason: "Emergency fix"}, sink, nil, nil, nil, nil)

		allowed, err := checker.BypassAllowed()
		require.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("should never grant a user scoped bypass to a project bot", func(t *testing.T) {
		sink := mocks.NewAuditSink(t)
		accessTokens := mocks.NewAccessTokenRepository(t)
		accessTokens.On("GetByBotUser", int64(5)).Return(models.AccessToken{}, gorm.ErrRecordNotFound)

		// listed in the user route, but acting as a bot
		bot := &models.User{ID: 5, ProjectBot: true}
		checker := newTestChecker(t, approvalPolicy, bot, PushOptions{BypassReason: "Emergency fix"}, sink, accessTokens, nil, nil, nil)

		allowed, err := checker.BypassAllowed()
		require.NoError(t, err)
		assert.False(t, allowed)
		sink.AssertNotCalled(t, "Audit", mock.Anything)
	})

	t.Run("should deny a nil user", func(t *testing.T) {
		sink := mocks.NewAuditSink(t)
		checker := newTestChecker(t, approvalPolicy, nil, PushOptions{BypassReason: "Emergency fix"}, sink, nil, nil, nil, nil)

		allowed, err := checker.BypassAllowed()
		require.NoError(t, err)
		assert.False(t, allowed)
	})
}
