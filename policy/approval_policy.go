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

package policy

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/mergeguard/mergeguard/database/models"
)

// ApprovalPolicy aggregates one stored policy record with its parsed typed
// content. Construct it once per load via NewApprovalPolicy.
type ApprovalPolicy struct {
	record  models.SecurityPolicy
	content Content
}

func NewApprovalPolicy(record models.SecurityPolicy) (ApprovalPolicy, error) {
	content, err := ParseContent(record.Content)
	if err != nil {
		return ApprovalPolicy{}, err
	}
	return ApprovalPolicy{record: record, content: content}, nil
}

// NewApprovalPolicies parses a batch of records, skipping (and logging)
// records with a structurally broken content document.
func NewApprovalPolicies(records []models.SecurityPolicy) []ApprovalPolicy {
	policies := make([]ApprovalPolicy, 0, len(records))
	for _, record := range records {
		approvalPolicy, err := NewApprovalPolicy(record)
		if err != nil {
			slog.Error("could not parse policy content", "policyID", record.ID, "err", err)
			continue
		}
		policies = append(policies, approvalPolicy)
	}
	return policies
}

func (p ApprovalPolicy) ID() uuid.UUID {
	return p.record.ID
}

func (p ApprovalPolicy) Name() string {
	return p.record.Name
}

func (p ApprovalPolicy) Description() string {
	return p.record.Description
}

func (p ApprovalPolicy) Enabled() bool {
	return p.record.Enabled
}

func (p ApprovalPolicy) PolicyIndex() int {
	return p.record.PolicyIndex
}

func (p ApprovalPolicy) ManagementProject() models.Project {
	return p.record.ManagementProject
}

func (p ApprovalPolicy) Enforcement() EnforcementType {
	return p.content.Enforcement
}

func (p ApprovalPolicy) Fallback() FallbackBehavior {
	return p.content.Fallback
}

func (p ApprovalPolicy) Tuning() PolicyTuning {
	return p.content.Tuning
}

func (p ApprovalPolicy) BypassSettings() BypassSettings {
	return p.content.BypassSettings
}

func (p ApprovalPolicy) Actions() Actions {
	return p.content.Actions
}

func (p ApprovalPolicy) ApprovalSettings() ApprovalSettings {
	return p.content.ApprovalSettings
}

func (p ApprovalPolicy) Scope() Scope {
	return p.content.Scope
}

// Rules prefers the separately stored rule documents over the inline rules
// of the content document. The two are kept in sync by the policy sync job,
// but the stored rows carry the display names violations reference.
func (p ApprovalPolicy) Rules() Rules {
	if len(p.record.ApprovalPolicyRules) == 0 {
		return p.content.Rules
	}
	rules := make(Rules, 0, len(p.record.ApprovalPolicyRules))
	for _, stored := range p.record.ApprovalPolicyRules {
		rule, err := ParseRuleContent(stored.Content)
		if err != nil {
			slog.Error("could not parse stored rule content", "ruleID", stored.ID, "err", err)
			continue
		}
		rules = append(rules, rule)
	}
	return rules
}
