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

package overrides

import (
	"github.com/mergeguard/mergeguard/database/models"
	"github.com/mergeguard/mergeguard/dtos"
	"github.com/mergeguard/mergeguard/policy"
	"github.com/mergeguard/mergeguard/shared"
	"github.com/mergeguard/mergeguard/utils"
	"github.com/pkg/errors"
)

// PushOverride records that one warn-mode policy would impose a push
// protection setting on the listed protected branches, stricter than the
// branches' own protection.
type PushOverride struct {
	Attribute dtos.ApprovalSettingAttribute
	Policy    policy.ApprovalPolicy
	Branches  []string
}

// PushSettings computes push protection overrides for the warn-mode subset
// of the given policies. Enforced policies never contribute - their
// restriction applies unconditionally outside this computation. A policy
// whose restriction is already implied by a branch's own protection is
// excluded for that branch.
func PushSettings(project models.Project, policies []policy.ApprovalPolicy, matcher shared.BranchMatcher, protectedBranches shared.ProtectedBranchRepository) ([]PushOverride, error) {
	res := make([]PushOverride, 0)

	for _, approvalPolicy := range policies {
		if !approvalPolicy.Enforcement().Warn() {
			continue
		}

		settings := approvalPolicy.ApprovalSettings()
		wantsBlockModification := settings.Requests(dtos.AttrBlockBranchModification)
		wantsPreventPushing := settings.Requests(dtos.AttrPreventPushingAndForcePushing)
		if !wantsBlockModification && !wantsPreventPushing {
			continue
		}

		branchNames := make([]string, 0)
		for _, rule := range approvalPolicy.Rules() {
			names, err := matcher.MatchingBranchNames(project.ID, rule.Branches, rule.BranchType, rule.BranchExceptions)
			if err != nil {
				return nil, errors.Wrap(err, "could not resolve matching branch names")
			}
			branchNames = append(branchNames, names...)
		}
		branchNames = utils.SortedUniq(branchNames)
		if len(branchNames) == 0 {
			continue
		}

		branches, err := protectedBranches.GetByProjectAndNames(project.ID, branchNames)
		if err != nil {
			return nil, errors.Wrap(err, "could not load protected branches")
		}

		if wantsBlockModification {
			affected := utils.Filter(branches, func(b models.ProtectedBranch) bool {
				return !b.ModificationBlockedByPolicy
			})
			if len(affected) > 0 {
				res = append(res, PushOverride{
					Attribute: dtos.AttrBlockBranchModification,
					Policy:    approvalPolicy,
					Branches:  sortedBranchNames(affected),
				})
			}
		}

		if wantsPreventPushing {
			affected := utils.Filter(branches, func(b models.ProtectedBranch) bool {
				return b.AllowForcePush
			})
			if len(affected) > 0 {
				res = append(res, PushOverride{
					Attribute: dtos.AttrPreventPushingAndForcePushing,
					Policy:    approvalPolicy,
					Branches:  sortedBranchNames(affected),
				})
			}
		}
	}

	return res, nil
}

func sortedBranchNames(branches []models.ProtectedBranch) []string {
	return utils.SortedUniq(utils.Map(branches, func(b models.ProtectedBranch) string {
		return b.Name
	}))
}
