// Copyright (C) 2024 Tim Bastin, l3montree GmbH
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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package repositories

import (
	"github.com/mergeguard/mergeguard/shared"
	"go.uber.org/fx"
)

// Module provides all repository constructors as their interfaces
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewSecurityPolicyRepository, fx.As(new(shared.SecurityPolicyRepository)))),
	fx.Provide(fx.Annotate(NewPolicyViolationRepository, fx.As(new(shared.PolicyViolationRepository)))),
	fx.Provide(fx.Annotate(NewMergeRequestRepository, fx.As(new(shared.MergeRequestRepository)))),
	fx.Provide(fx.Annotate(NewProjectRepository, fx.As(new(shared.ProjectRepository)))),
	fx.Provide(fx.Annotate(NewProtectedBranchRepository, fx.As(new(shared.ProtectedBranchRepository)))),
	fx.Provide(fx.Annotate(NewSecurityFindingRepository, fx.As(new(shared.SecurityFindingRepository)))),
	fx.Provide(fx.Annotate(NewVulnerabilityFindingRepository, fx.As(new(shared.VulnerabilityFindingRepository)))),
	fx.Provide(fx.Annotate(NewUserRepository, fx.As(new(shared.UserRepository)))),
	fx.Provide(fx.Annotate(NewAccessTokenRepository, fx.As(new(shared.AccessTokenRepository)))),
	fx.Provide(fx.Annotate(NewGroupMembershipRepository, fx.As(new(shared.GroupMembershipRepository)))),
	fx.Provide(fx.Annotate(NewCustomRoleAssignmentRepository, fx.As(new(shared.CustomRoleAssignmentRepository)))),
)
