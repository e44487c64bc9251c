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

package shared

import (
	"context"

	"github.com/google/uuid"
	"github.com/mergeguard/mergeguard/database/models"
	"github.com/mergeguard/mergeguard/dtos"
	"gorm.io/gorm"
)

type SecurityPolicyRepository interface {
	Read(id uuid.UUID) (models.SecurityPolicy, error)
	Save(tx *gorm.DB, policy *models.SecurityPolicy) error
	// enabled policies whose resolved scope includes the project, ordered by
	// policy index
	GetApplicableToProject(projectID uuid.UUID) ([]models.SecurityPolicy, error)
}

type PolicyViolationRepository interface {
	Read(id uuid.UUID) (models.PolicyViolation, error)
	Save(tx *gorm.DB, violation *models.PolicyViolation) error
	Delete(tx *gorm.DB, id uuid.UUID) error
	GetByMergeRequest(mergeRequestID uuid.UUID) ([]models.PolicyViolation, error)
	DeleteByMergeRequest(tx *gorm.DB, mergeRequestID uuid.UUID) error
}

type MergeRequestRepository interface {
	Read(id uuid.UUID) (models.MergeRequest, error)
	Save(tx *gorm.DB, mergeRequest *models.MergeRequest) error
	GetByProjectAndIID(projectID uuid.UUID, iid int64) (models.MergeRequest, error)
}

type ProjectRepository interface {
	Read(id uuid.UUID) (models.Project, error)
	Save(tx *gorm.DB, project *models.Project) error
	GetByPath(path string) (models.Project, error)
}

type ProtectedBranchRepository interface {
	GetByProject(projectID uuid.UUID) ([]models.ProtectedBranch, error)
	GetByProjectAndNames(projectID uuid.UUID, names []string) ([]models.ProtectedBranch, error)
}

type SecurityFindingRepository interface {
	// pipeline-scoped lookup for newly detected finding uuids
	GetByUUIDs(pipelineIDs []int64, uuids []string) ([]models.SecurityFinding, error)
}

type VulnerabilityFindingRepository interface {
	GetByUUIDs(projectID uuid.UUID, uuids []string) ([]models.VulnerabilityFinding, error)
}

type UserRepository interface {
	Read(id int64) (models.User, error)
}

type AccessTokenRepository interface {
	Read(id int64) (models.AccessToken, error)
	// the token a project bot user represents
	GetByBotUser(userID int64) (models.AccessToken, error)
}

type GroupMembershipRepository interface {
	// group ids out of the given set the user is a member of, any role
	GetMemberGroupIDs(userID int64, groupIDs []int64) ([]int64, error)
}

type CustomRoleAssignmentRepository interface {
	GetCustomRoleIDs(userID int64, projectID uuid.UUID) ([]int64, error)
}

// ProjectRoleResolver yields the default role a user holds on a project.
type ProjectRoleResolver interface {
	ProjectRole(userID int64, projectID uuid.UUID) (Role, error)
}

// BranchMatcher resolves the branch names a rule's branch configuration
// currently matches for a project.
type BranchMatcher interface {
	MatchingBranchNames(projectID uuid.UUID, branches []string, branchType string, exceptions []string) ([]string, error)
}

// MergeRequestNoteClient upserts the persisted violation comment on the
// upstream merge request. Returns the note id to store for the next update.
type MergeRequestNoteClient interface {
	UpsertMergeRequestNote(ctx context.Context, projectID int64, mergeRequestIID int64, noteID *int64, body string) (int64, error)
}

// ViolationCommentRenderer rebuilds the violation comment body of a merge
// request from its current violation rows.
type ViolationCommentRenderer interface {
	RenderCommentBody(mergeRequest models.MergeRequest, project models.Project, rows []models.PolicyViolation) (string, error)
}

type ViolationCommentService interface {
	ViolationCommentRenderer
	RefreshComment(ctx context.Context, mergeRequestID uuid.UUID) error
}

// PushEvaluator decides whether a branch push passes every applicable
// enforced policy, running the bypass cascade where configured.
type PushEvaluator interface {
	EvaluatePush(project models.Project, userID int64, branch string, bypassReason string) (dtos.PushDecision, error)
}
