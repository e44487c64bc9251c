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

package bypass

import (
	"fmt"

	"github.com/mergeguard/mergeguard/database/models"
	"github.com/mergeguard/mergeguard/dtos"
	"github.com/mergeguard/mergeguard/policy"
	"github.com/mergeguard/mergeguard/shared"
)

const (
	EventAccessTokenBypass    = "security_policy_push_bypassed_by_access_token"
	EventServiceAccountBypass = "security_policy_push_bypassed_by_service_account"
	EventUserBypass           = "security_policy_push_bypassed_by_user"
	EventMergeRequestBypass   = "security_policy_merge_request_bypassed"
)

// Auditor emits one structured audit event per bypass decision. It is bound
// to the policy, the enforced project and the pushed branch; the audit sink
// is injected so the component stays testable without a real audit backend.
type Auditor struct {
	policy  policy.ApprovalPolicy
	project models.Project
	branch  string
	sink    shared.AuditSink
}

func NewAuditor(sink shared.AuditSink, approvalPolicy policy.ApprovalPolicy, project models.Project, branch string) *Auditor {
	return &Auditor{
		policy:  approvalPolicy,
		project: project,
		branch:  branch,
		sink:    sink,
	}
}

func (a *Auditor) baseDetails() map[string]any {
	return map[string]any{
		"project_id":  a.project.ID.String(),
		"policy_id":   a.policy.ID().String(),
		"policy_name": a.policy.Name(),
		"branch_name": a.branch,
	}
}

func (a *Auditor) audit(name string, author shared.AuditActor, message string, details map[string]any) {
	for k, v := range a.baseDetails() {
		details[k] = v
	}
	a.sink.Audit(shared.AuditEvent{
		Name:              name,
		Author:            author,
		Scope:             a.policy.ManagementProject().Path,
		Target:            a.policy.Name(),
		Message:           message,
		AdditionalDetails: details,
	})
}

func (a *Auditor) LogAccessTokenBypass(token models.AccessToken) {
	a.audit(EventAccessTokenBypass,
		shared.AuditActor{ID: token.UserID, Name: token.Name, Kind: "project_bot"},
		fmt.Sprintf("Push to branch %s of project %s bypassed security policy %s via access token %d", a.branch, a.project.Path, a.policy.Name(), token.ID),
		map[string]any{
			"bypass_type":     string(dtos.BypassTypeAccessToken),
			"access_token_id": token.ID,
		})
}

func (a *Auditor) LogServiceAccountBypass(user models.User) {
	a.audit(EventServiceAccountBypass,
		shared.AuditActor{ID: user.ID, Name: user.Name, Kind: "service_account"},
		fmt.Sprintf("Push to branch %s of project %s bypassed security policy %s via service account %d", a.branch, a.project.Path, a.policy.Name(), user.ID),
		map[string]any{
			"bypass_type":        string(dtos.BypassTypeServiceAccount),
			"service_account_id": user.ID,
		})
}

// LogUserBypass logs a bypass granted through the user, group or role scope.
// The reason must already be sanitized.
func (a *Auditor) LogUserBypass(user models.User, scope Scope, reason string, settings policy.BypassSettings) {
	details := map[string]any{
		"bypass_type": string(scope.BypassType()),
		"user_id":     user.ID,
		"reason":      reason,
	}
	switch scope {
	case ScopeGroup:
		details["group_ids"] = settings.GroupIDs
	case ScopeRole:
		details["default_roles"] = settings.DefaultRoles
		details["custom_role_ids"] = settings.CustomRoleIDs
	}

	a.audit(EventUserBypass,
		shared.AuditActor{ID: user.ID, Name: user.Name, Kind: "user"},
		fmt.Sprintf("Push to branch %s of project %s bypassed security policy %s by user %d (scope %s): %s", a.branch, a.project.Path, a.policy.Name(), user.ID, scope, reason),
		details)
}

// LogMergeRequestBypass logs a merge-request-level bypass of a target policy
// distinct from the auditor's own bound policy.
func (a *Auditor) LogMergeRequestBypass(user models.User, mergeRequest models.MergeRequest, target policy.ApprovalPolicy, reason string) {
	a.audit(EventMergeRequestBypass,
		shared.AuditActor{ID: user.ID, Name: user.Name, Kind: "user"},
		fmt.Sprintf("Merge request !%d of project %s bypassed security policy %s by user %d: %s", mergeRequest.IID, a.project.Path, target.Name(), user.ID, reason),
		map[string]any{
			"bypass_type":        "merge_request",
			"user_id":            user.ID,
			"merge_request_id":   mergeRequest.ID.String(),
			"merge_request_iid":  mergeRequest.IID,
			"target_policy_id":   target.ID().String(),
			"target_policy_name": target.Name(),
			"reason":             reason,
		})
}
