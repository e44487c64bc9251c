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

// PolicyViolation is one recorded rule breach per (policy, merge request)
// pair. Data is the nested violation document: violations keyed by report
// type, an optional context with source/target pipeline ids and an optional
// error list.
type PolicyViolation struct {
	Model
	ProjectID      uuid.UUID `json:"projectId" gorm:"type:uuid;not null;index"`
	MergeRequestID uuid.UUID `json:"mergeRequestId" gorm:"type:uuid;not null;index"`

	PolicyID uuid.UUID      `json:"policyId" gorm:"type:uuid;not null;index"`
	Policy   SecurityPolicy `json:"policy" gorm:"foreignKey:PolicyID;constraint:OnDelete:CASCADE;"`

	// a violation without an associated approval rule is orphaned - it is
	// dropped from every aggregate view, but counted for visibility.
	ApprovalPolicyRuleID *uuid.UUID          `json:"approvalPolicyRuleId" gorm:"type:uuid;index"`
	ApprovalPolicyRule   *ApprovalPolicyRule `json:"approvalPolicyRule" gorm:"foreignKey:ApprovalPolicyRuleID;constraint:OnDelete:SET NULL;"`

	Data types.JSONB `json:"data" gorm:"type:jsonb;"`
}

func (v PolicyViolation) TableName() string {
	return "policy_violations"
}
