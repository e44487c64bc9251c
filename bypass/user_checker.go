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
	"strings"

	"github.com/mergeguard/mergeguard/database/models"
	"github.com/mergeguard/mergeguard/dtos"
	"github.com/mergeguard/mergeguard/policy"
	"github.com/mergeguard/mergeguard/shared"
	"github.com/mergeguard/mergeguard/utils"
	"github.com/pkg/errors"
)

// Scope is the route through which a human user qualifies for a bypass.
type Scope string

const (
	ScopeNone  Scope = ""
	ScopeUser  Scope = "user"
	ScopeGroup Scope = "group"
	ScopeRole  Scope = "role"
)

func (s Scope) BypassType() dtos.BypassType {
	switch s {
	case ScopeUser:
		return dtos.BypassTypeUser
	case ScopeGroup:
		return dtos.BypassTypeGroup
	case ScopeRole:
		return dtos.BypassTypeRole
	}
	return ""
}

// UserChecker resolves the bypass scope of a human user. Project bots and
// service accounts never qualify here - they are handled exclusively by the
// token and service account routes of the Checker.
type UserChecker struct {
	memberships shared.GroupMembershipRepository
	roles       shared.ProjectRoleResolver
	customRoles shared.CustomRoleAssignmentRepository
}

func NewUserChecker(memberships shared.GroupMembershipRepository, roles shared.ProjectRoleResolver, customRoles shared.CustomRoleAssignmentRepository) *UserChecker {
	return &UserChecker{
		memberships: memberships,
		roles:       roles,
		customRoles: customRoles,
	}
}

// BypassScope returns exactly one scope, with user taking priority over
// group and group over role even when several would qualify independently.
func (c *UserChecker) BypassScope(settings policy.BypassSettings, project models.Project, user *models.User) (Scope, error) {
	if user == nil || user.ProjectBot || user.ServiceAccount {
		return ScopeNone, nil
	}

	if utils.Contains(settings.UserIDs, user.ID) {
		return ScopeUser, nil
	}

	if len(settings.GroupIDs) > 0 {
		memberGroupIDs, err := c.memberships.GetMemberGroupIDs(user.ID, settings.GroupIDs)
		if err != nil {
			return ScopeNone, errors.Wrap(err, "could not resolve group memberships")
		}
		if len(memberGroupIDs) > 0 {
			return ScopeGroup, nil
		}
	}

	if len(settings.DefaultRoles) > 0 {
		role, err := c.roles.ProjectRole(user.ID, project.ID)
		if err != nil {
			return ScopeNone, errors.Wrap(err, "could not resolve project role")
		}
		if role != shared.RoleUnknown && utils.Any(settings.DefaultRoles, func(name string) bool {
			return strings.EqualFold(name, string(role))
		}) {
			return ScopeRole, nil
		}
	}

	if len(settings.CustomRoleIDs) > 0 {
		customRoleIDs, err := c.customRoles.GetCustomRoleIDs(user.ID, project.ID)
		if err != nil {
			return ScopeNone, errors.Wrap(err, "could not resolve custom roles")
		}
		if utils.Any(customRoleIDs, func(id int64) bool {
			return utils.Contains(settings.CustomRoleIDs, id)
		}) {
			return ScopeRole, nil
		}
	}

	return ScopeNone, nil
}
