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

import "github.com/google/uuid"

type Project struct {
	Model
	Name string `json:"name" gorm:"type:text;not null;"`
	Path string `json:"path" gorm:"type:text;not null;uniqueIndex"`

	// the upstream id used when syncing merge request notes
	GitlabProjectID *int64 `json:"gitlabProjectId" gorm:"column:gitlab_project_id"`

	// merge request approval settings a security policy may tighten.
	// true means the permissive behavior is currently allowed.
	MergeRequestsAuthorApproval            bool `json:"mergeRequestsAuthorApproval" gorm:"default:true;not null;"`
	MergeRequestsDisableCommittersApproval bool `json:"mergeRequestsDisableCommittersApproval" gorm:"default:false;not null;"`
	ResetApprovalsOnPush                   bool `json:"resetApprovalsOnPush" gorm:"default:false;not null;"`
	RequirePasswordToApprove               bool `json:"requirePasswordToApprove" gorm:"default:false;not null;"`
}

func (p Project) TableName() string {
	return "projects"
}

type ProtectedBranch struct {
	Model
	ProjectID uuid.UUID `json:"projectId" gorm:"type:uuid;not null;index"`
	Name      string `json:"name" gorm:"type:text;not null;"`

	AllowForcePush              bool `json:"allowForcePush" gorm:"default:false;not null;"`
	ModificationBlockedByPolicy bool `json:"modificationBlockedByPolicy" gorm:"default:false;not null;"`
}

func (p ProtectedBranch) TableName() string {
	return "protected_branches"
}
