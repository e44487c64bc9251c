// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package bypass decides whether an acting identity may push despite an
// otherwise blocking security policy. The decision is an ordered cascade of
// strategies - access token, service account, then the user scopes - where
// the first match wins and emits exactly one audit event.
package bypass

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/mergeguard/mergeguard/database/models"
	"github.com/mergeguard/mergeguard/dtos"
	"github.com/mergeguard/mergeguard/monitoring"
	"github.com/mergeguard/mergeguard/policy"
	"github.com/mergeguard/mergeguard/shared"
	"github.com/mergeguard/mergeguard/utils"
)

// ErrReasonRequired signals that a user, group or role bypass would have
// been granted but no reason was supplied. Callers must reject the push
// with an explicit message - this is a hard failure, not a denial.
var ErrReasonRequired = errors.New("policy bypass requires a reason")

// PushOptions carries the push-time options relevant to the bypass check.
type PushOptions struct {
	BypassReason string
}

// Checker evaluates one bypass request for one push event.
type Checker struct {
	policy  policy.ApprovalPolicy
	project models.Project
	user    *models.User
	branch  string
	options PushOptions

	auditor      *Auditor
	userChecker  *UserChecker
	accessTokens shared.AccessTokenRepository
}

func NewChecker(
	approvalPolicy policy.ApprovalPolicy,
	project models.Project,
	user *models.User,
	branch string,
	options PushOptions,
	auditor *Auditor,
	userChecker *UserChecker,
	accessTokens shared.AccessTokenRepository,
) *Checker {
	return &Checker{
		policy:       approvalPolicy,
		project:      project,
		user:         user,
		branch:       branch,
		options:      options,
		auditor:      auditor,
		userChecker:  userChecker,
		accessTokens: accessTokens,
	}
}

// a strategy returns the bypass type it granted, or nil when it does not
// apply to the acting identity
type strategy func(settings policy.BypassSettings) (*dtos.BypassType, error)

// BypassAllowed runs the strategy cascade. Every allowed path has emitted
// exactly one audit event before this returns true; denial paths emit none.
func (c *Checker) BypassAllowed() (bool, error) {
	settings := c.policy.BypassSettings()
	if settings.Empty() {
		monitoring.BypassDecisions.WithLabelValues("none", "denied").Inc()
		return false, nil
	}

	strategies := []strategy{
		c.accessTokenBypass,
		c.serviceAccountBypass,
		c.userBypass,
	}

	for _, s := range strategies {
		granted, err := s(settings)
		if err != nil {
			return false, err
		}
		if granted != nil {
			monitoring.BypassDecisions.WithLabelValues(string(*granted), "allowed").Inc()
			return true, nil
		}
	}

	monitoring.BypassDecisions.WithLabelValues("none", "denied").Inc()
	return false, nil
}

func (c *Checker) accessTokenBypass(settings policy.BypassSettings) (*dtos.BypassType, error) {
	if c.user == nil || !c.user.ProjectBot {
		return nil, nil
	}

	token, err := c.accessTokens.GetByBotUser(c.user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(err, "could not resolve access token of project bot")
	}

	if !utils.Contains(settings.AccessTokenIDs, token.ID) || !token.Active() {
		return nil, nil
	}

	c.auditor.LogAccessTokenBypass(token)
	return utils.Ptr(dtos.BypassTypeAccessToken), nil
}

func (c *Checker) serviceAccountBypass(settings policy.BypassSettings) (*dtos.BypassType, error) {
	if c.user == nil || !c.user.ServiceAccount {
		return nil, nil
	}

	if !utils.Contains(settings.ServiceAccountIDs, c.user.ID) {
		return nil, nil
	}

	c.auditor.LogServiceAccountBypass(*c.user)
	return utils.Ptr(dtos.BypassTypeServiceAccount), nil
}

func (c *Checker) userBypass(settings policy.BypassSettings) (*dtos.BypassType, error) {
	scope, err := c.userChecker.BypassScope(settings, c.project, c.user)
	if err != nil {
		return nil, err
	}
	if scope == ScopeNone {
		return nil, nil
	}

	// a route matched - from here on a missing reason is a hard failure,
	// never a silent denial. A reason that is nothing but markup counts
	// as missing too.
	reason := SanitizeReason(c.options.BypassReason)
	if reason == "" {
		return nil, ErrReasonRequired
	}

	c.auditor.LogUserBypass(*c.user, scope, reason, settings)
	bypassType := scope.BypassType()
	return &bypassType, nil
}
