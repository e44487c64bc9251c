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
	"encoding/json"
	"path"
	"strings"

	"github.com/mergeguard/mergeguard/dtos"
	"github.com/mergeguard/mergeguard/utils"
)

// ApprovalSettings are the per-policy merge request setting overrides. A nil
// boolean means the policy does not request the setting at all.
type ApprovalSettings struct {
	PreventApprovalByAuthor       *bool `json:"prevent_approval_by_author"`
	PreventApprovalByCommitAuthor *bool `json:"prevent_approval_by_commit_author"`
	RemoveApprovalsWithNewCommit  *bool `json:"remove_approvals_with_new_commit"`
	RequirePasswordToApprove      *bool `json:"require_password_to_approve"`

	BlockBranchModification       *bool `json:"block_branch_modification"`
	PreventPushingAndForcePushing *bool `json:"prevent_pushing_and_force_pushing"`

	BlockGroupBranchModification *GroupBranchModification `json:"block_group_branch_modification"`
}

// Requests reports whether the policy asks for the given attribute to be
// enforced. Unset attributes are never requested.
func (s ApprovalSettings) Requests(attr dtos.ApprovalSettingAttribute) bool {
	var val *bool
	switch attr {
	case dtos.AttrPreventApprovalByAuthor:
		val = s.PreventApprovalByAuthor
	case dtos.AttrPreventApprovalByCommitAuthor:
		val = s.PreventApprovalByCommitAuthor
	case dtos.AttrRemoveApprovalsWithNewCommit:
		val = s.RemoveApprovalsWithNewCommit
	case dtos.AttrRequirePasswordToApprove:
		val = s.RequirePasswordToApprove
	case dtos.AttrBlockBranchModification:
		val = s.BlockBranchModification
	case dtos.AttrPreventPushingAndForcePushing:
		val = s.PreventPushingAndForcePushing
	}
	return val != nil && *val
}

// GroupBranchModification appears either as a plain boolean or as an object
// with per-group exceptions.
type GroupBranchModification struct {
	Enabled    bool
	Exceptions []GroupBranchModificationException
}

type GroupBranchModificationException struct {
	ID int64 `json:"id"`
}

func (g *GroupBranchModification) UnmarshalJSON(data []byte) error {
	var enabled bool
	if err := json.Unmarshal(data, &enabled); err == nil {
		g.Enabled = enabled
		return nil
	}
	var obj struct {
		Enabled    bool                               `json:"enabled"`
		Exceptions []GroupBranchModificationException `json:"exceptions"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	g.Enabled = obj.Enabled
	g.Exceptions = obj.Exceptions
	return nil
}

// BypassSettings lists who may push or merge despite a blocking policy.
type BypassSettings struct {
	AccessTokenIDs    []int64
	ServiceAccountIDs []int64
	UserIDs           []int64
	GroupIDs          []int64
	DefaultRoles      []string
	CustomRoleIDs     []int64
	Branches          []BranchExemption
}

type rawBypassSettings struct {
	AccessTokens    []idRef              `json:"access_tokens"`
	ServiceAccounts []idRef              `json:"service_accounts"`
	Users           []idRef              `json:"users"`
	Groups          []idRef              `json:"groups"`
	Roles           []string             `json:"roles"`
	DefaultRoles    []string             `json:"default_roles"`
	CustomRoles     []idRef              `json:"custom_roles"`
	Branches        []rawBranchExemption `json:"branches"`
}

// role lists appear under both "roles" and "default_roles" in the wild.
func mergeRoleLists(roles, defaultRoles []string) []string {
	if len(defaultRoles) == 0 {
		return roles
	}
	return utils.UniqBy(append(roles, defaultRoles...), strings.ToLower)
}

func parseBypassSettings(raw *rawBypassSettings) BypassSettings {
	if raw == nil {
		return BypassSettings{}
	}
	branches := make([]BranchExemption, len(raw.Branches))
	for i, b := range raw.Branches {
		branches[i] = BranchExemption{
			Source: b.Source.matcher(),
			Target: b.Target.matcher(),
		}
	}
	return BypassSettings{
		AccessTokenIDs:    idRefsToIDs(raw.AccessTokens),
		ServiceAccountIDs: idRefsToIDs(raw.ServiceAccounts),
		UserIDs:           idRefsToIDs(raw.Users),
		GroupIDs:          idRefsToIDs(raw.Groups),
		DefaultRoles:      mergeRoleLists(raw.Roles, raw.DefaultRoles),
		CustomRoleIDs:     idRefsToIDs(raw.CustomRoles),
		Branches:          branches,
	}
}

// Empty reports whether no bypass route is configured at all. An empty
// settings section means bypass is categorically not allowed.
func (b BypassSettings) Empty() bool {
	return len(b.AccessTokenIDs) == 0 &&
		len(b.ServiceAccountIDs) == 0 &&
		len(b.UserIDs) == 0 &&
		len(b.GroupIDs) == 0 &&
		len(b.DefaultRoles) == 0 &&
		len(b.CustomRoleIDs) == 0 &&
		len(b.Branches) == 0
}

// BranchExemption matches merge requests exempt from the policy by source
// and target branch name. Empty matchers match everything.
type BranchExemption struct {
	Source string
	Target string
}

type rawBranchRef struct {
	Name    string `json:"name"`
	Pattern string `json:"pattern"`
}

func (r rawBranchRef) matcher() string {
	if r.Name != "" {
		return r.Name
	}
	return r.Pattern
}

type rawBranchExemption struct {
	Source rawBranchRef `json:"source"`
	Target rawBranchRef `json:"target"`
}

func (e BranchExemption) Matches(sourceBranch, targetBranch string) bool {
	return matchBranch(e.Source, sourceBranch) && matchBranch(e.Target, targetBranch)
}

// ExemptsMergeRequest reports whether any configured branch pair exempts the
// given merge request from the policy's restriction.
func (b BypassSettings) ExemptsMergeRequest(sourceBranch, targetBranch string) bool {
	for _, exemption := range b.Branches {
		if exemption.Matches(sourceBranch, targetBranch) {
			return true
		}
	}
	return false
}

func matchBranch(pattern, branch string) bool {
	if pattern == "" {
		return true
	}
	ok, err := path.Match(pattern, branch)
	if err != nil {
		// a broken pattern matches nothing
		return false
	}
	return ok
}

// Scope resolves which projects and groups a policy applies to.
type Scope struct {
	Projects ScopeSelector
	Groups   ScopeSelector
}

type ScopeSelector struct {
	Including []int64
	Excluding []int64
}

type rawScopeSelector struct {
	Including []idRef `json:"including"`
	Excluding []idRef `json:"excluding"`
}

type rawScope struct {
	Projects *rawScopeSelector `json:"projects"`
	Groups   *rawScopeSelector `json:"groups"`
}

func parseScopeSelector(raw *rawScopeSelector) ScopeSelector {
	if raw == nil {
		return ScopeSelector{}
	}
	return ScopeSelector{
		Including: idRefsToIDs(raw.Including),
		Excluding: idRefsToIDs(raw.Excluding),
	}
}

func parseScope(raw *rawScope) Scope {
	if raw == nil {
		return Scope{}
	}
	return Scope{
		Projects: parseScopeSelector(raw.Projects),
		Groups:   parseScopeSelector(raw.Groups),
	}
}
