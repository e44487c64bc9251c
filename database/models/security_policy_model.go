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

package models

import (
	"github.com/google/uuid"
	types "github.com/mergeguard/mergeguard/database/types"
)

// SecurityPolicy is one stored approval policy. Content carries the raw
// nested configuration document; the typed view lives in the policy package
// and is constructed exactly once per load.
type SecurityPolicy struct {
	Model
	Name        string `json:"name" gorm:"type:text;not null;"`
	Description string `json:"description" gorm:"type:text;"`
	Enabled     bool   `json:"enabled" gorm:"default:true;not null;"`
	PolicyIndex int    `json:"policyIndex" gorm:"not null;default:0;"`

	Content types.JSONB `json:"content" gorm:"type:jsonb;not null;"`

	// the security policy management project owning this policy. Audit events
	// for bypass decisions are scoped to it.
	ManagementProjectID uuid.UUID `json:"managementProjectId" gorm:"type:uuid;not null;index"`
	ManagementProject   Project   `json:"managementProject" gorm:"foreignKey:ManagementProjectID;constraint:OnDelete:CASCADE;"`

	ApprovalPolicyRules []ApprovalPolicyRule `json:"approvalPolicyRules" gorm:"foreignKey:PolicyID;constraint:OnDelete:CASCADE;"`
}

func (p SecurityPolicy) TableName() string {
	return "security_policies"
}

// ApprovalPolicyRule is one separately stored rule document of a policy.
type ApprovalPolicyRule struct {
	Model
	PolicyID  uuid.UUID `json:"policyId" gorm:"type:uuid;not null;index"`
	RuleIndex int       `json:"ruleIndex" gorm:"not null;default:0;"`
	RuleType  string    `json:"ruleType" gorm:"type:text;not null;"`
	Name      string    `json:"name" gorm:"type:text;not null;"`

	Content types.JSONB `json:"content" gorm:"type:jsonb;not null;"`
}

func (r ApprovalPolicyRule) TableName() string {
	return "approval_policy_rules"
}

// PolicyProjectLink marks a policy as applicable to a project after scope
// resolution.
type PolicyProjectLink struct {
	PolicyID  uuid.UUID `json:"policyId" gorm:"primaryKey;type:uuid;"`
	ProjectID uuid.UUID `json:"projectId" gorm:"primaryKey;type:uuid;"`
}

func (l PolicyProjectLink) TableName() string {
	return "policy_project_links"
}
