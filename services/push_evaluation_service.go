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

package services

import (
	"log/slog"

	"github.com/mergeguard/mergeguard/bypass"
	"github.com/mergeguard/mergeguard/database/models"
	"github.com/mergeguard/mergeguard/dtos"
	"github.com/mergeguard/mergeguard/policy"
	"github.com/mergeguard/mergeguard/shared"
	"github.com/pkg/errors"
)

type pushEvaluationService struct {
	policyRepository shared.SecurityPolicyRepository
	userRepository   shared.UserRepository
	accessTokens     shared.AccessTokenRepository
	userChecker      *bypass.UserChecker
	auditSink        shared.AuditSink
}

func NewPushEvaluationService(policyRepository shared.SecurityPolicyRepository, userRepository shared.UserRepository, accessTokens shared.AccessTokenRepository, userChecker *bypass.UserChecker, auditSink shared.AuditSink) *pushEvaluationService {
	return &pushEvaluationService{
		policyRepository: policyRepository,
		userRepository:   userRepository,
		accessTokens:     accessTokens,
		userChecker:      userChecker,
		auditSink:        auditSink,
	}
}

// EvaluatePush runs the bypass cascade for every enforced policy applicable
// to the project. A bypass.ErrReasonRequired from any policy propagates to
// the caller unchanged, it must not collapse into a plain denial.
func (s *pushEvaluationService) EvaluatePush(project models.Project, userID int64, branch string, bypassReason string) (dtos.PushDecision, error) {
	options := bypass.PushOptions{BypassReason: bypassReason}

	records, err := s.policyRepository.GetApplicableToProject(project.ID)
	if err != nil {
		return dtos.PushDecision{}, errors.Wrap(err, "could not load applicable policies")
	}

	var user *models.User
	if actor, err := s.userRepository.Read(userID); err == nil {
		user = &actor
	} else {
		slog.Warn("evaluating push for unknown user", "userId", userID, "err", err)
	}

	decision := dtos.PushDecision{Allowed: true, BlockingPolicies: []string{}, BypassedPolicies: []string{}, WarnPolicies: []string{}}
	for _, approvalPolicy := range policy.NewApprovalPolicies(records) {
		if approvalPolicy.Enforcement().Warn() {
			decision.WarnPolicies = append(decision.WarnPolicies, approvalPolicy.Name())
			continue
		}

		auditor := bypass.NewAuditor(s.auditSink, approvalPolicy, project, branch)
		checker := bypass.NewChecker(approvalPolicy, project, user, branch, options, auditor, s.userChecker, s.accessTokens)

		allowed, err := checker.BypassAllowed()
		if err != nil {
			return dtos.PushDecision{}, err
		}
		if allowed {
			decision.BypassedPolicies = append(decision.BypassedPolicies, approvalPolicy.Name())
			continue
		}

		decision.Allowed = false
		decision.BlockingPolicies = append(decision.BlockingPolicies, approvalPolicy.Name())
	}

	return decision, nil
}
