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

// Package overrides computes which approval and push-protection settings of
// a set of applicable security policies are stricter than the project's own
// configuration and must be surfaced on top of it.
package overrides

import (
	"github.com/mergeguard/mergeguard/database/models"
	"github.com/mergeguard/mergeguard/dtos"
	"github.com/mergeguard/mergeguard/policy"
	"github.com/mergeguard/mergeguard/utils"
)

// SettingOverride groups the policies requesting one approval setting the
// project does not enforce on its own.
type SettingOverride struct {
	Attribute dtos.ApprovalSettingAttribute
	Policies  []policy.ApprovalPolicy
}

// fixed evaluation order keeps the output deterministic
var approvalSettingAttributes = []dtos.ApprovalSettingAttribute{
	dtos.AttrPreventApprovalByAuthor,
	dtos.AttrPreventApprovalByCommitAuthor,
	dtos.AttrRemoveApprovalsWithNewCommit,
	dtos.AttrRequirePasswordToApprove,
}

// ApprovalSettings returns one override group per approval setting at least
// one policy requests more strictly than the project currently configures.
// Attributes the project already enforces, or no policy asks for, are
// omitted entirely.
func ApprovalSettings(project models.Project, policies []policy.ApprovalPolicy) []SettingOverride {
	res := make([]SettingOverride, 0)
	for _, attr := range approvalSettingAttributes {
		if projectAlreadyEnforces(project, attr) {
			continue
		}
		contributing := utils.Filter(policies, func(p policy.ApprovalPolicy) bool {
			return p.ApprovalSettings().Requests(attr)
		})
		if len(contributing) == 0 {
			continue
		}
		res = append(res, SettingOverride{Attribute: attr, Policies: contributing})
	}
	return res
}

// projectAlreadyEnforces maps each policy attribute to the project setting
// that makes the policy's request redundant. The table is exact: author
// approval is prevented when the project flag allowing it is false,
// committer approval when the disable flag is already set, and the two
// remaining attributes when their like-named project flags are set.
func projectAlreadyEnforces(project models.Project, attr dtos.ApprovalSettingAttribute) bool {
	switch attr {
	case dtos.AttrPreventApprovalByAuthor:
		return !project.MergeRequestsAuthorApproval
	case dtos.AttrPreventApprovalByCommitAuthor:
		return project.MergeRequestsDisableCommittersApproval
	case dtos.AttrRemoveApprovalsWithNewCommit:
		return project.ResetApprovalsOnPush
	case dtos.AttrRequirePasswordToApprove:
		return project.RequirePasswordToApprove
	}
	return false
}
