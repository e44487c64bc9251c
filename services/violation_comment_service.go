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

package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/mergeguard/mergeguard/database/models"
	"github.com/mergeguard/mergeguard/dtos"
	"github.com/mergeguard/mergeguard/monitoring"
	"github.com/mergeguard/mergeguard/policy"
	"github.com/mergeguard/mergeguard/shared"
	"github.com/mergeguard/mergeguard/utils"
	"github.com/mergeguard/mergeguard/violations"
	"github.com/pkg/errors"
)

type violationCommentService struct {
	violationRepository    shared.PolicyViolationRepository
	mergeRequestRepository shared.MergeRequestRepository
	projectRepository      shared.ProjectRepository
	securityFindings       shared.SecurityFindingRepository
	vulnerabilityFindings  shared.VulnerabilityFindingRepository
	noteClient             shared.MergeRequestNoteClient
}

func NewViolationCommentService(violationRepository shared.PolicyViolationRepository, mergeRequestRepository shared.MergeRequestRepository, projectRepository shared.ProjectRepository, securityFindings shared.SecurityFindingRepository, vulnerabilityFindings shared.VulnerabilityFindingRepository, noteClient shared.MergeRequestNoteClient) *violationCommentService {
	return &violationCommentService{
		violationRepository:    violationRepository,
		mergeRequestRepository: mergeRequestRepository,
		projectRepository:      projectRepository,
		securityFindings:       securityFindings,
		vulnerabilityFindings:  vulnerabilityFindings,
		noteClient:             noteClient,
	}
}

// RenderCommentBody rebuilds the violation comment for a merge request from
// its current violation rows. Rendering is idempotent, the same rows always
// produce the same body.
func (s *violationCommentService) RenderCommentBody(mergeRequest models.MergeRequest, project models.Project, rows []models.PolicyViolation) (string, error) {
	details := violations.NewDetails(mergeRequest, rows, s.securityFindings, s.vulnerabilityFindings)

	policies := policy.NewApprovalPolicies(utils.UniqBy(utils.Map(rows, func(row models.PolicyViolation) models.SecurityPolicy {
		return row.Policy
	}), func(p models.SecurityPolicy) string {
		return p.ID.String()
	}))
	enforcedByPolicyID := map[uuid.UUID]bool{}
	for _, approvalPolicy := range policies {
		enforcedByPolicyID[approvalPolicy.ID()] = approvalPolicy.Enforcement().Enforce()
	}

	// rebuild the marker ledger from the rows: a report type requires
	// approval as soon as one enforced policy contributes to it
	requiresApproval := map[dtos.ReportType]bool{}
	for _, violation := range details.Violations() {
		requiresApproval[violation.ReportType] = requiresApproval[violation.ReportType] || enforcedByPolicyID[violation.PolicyID]
	}

	var comment violations.Comment
	for _, reportType := range dtos.ReportTypes() {
		if _, violated := requiresApproval[reportType]; violated {
			comment.AddReportType(reportType, requiresApproval[reportType])
		}
	}

	detailed := violations.NewDetailedComment(comment, details, project, policies)
	return detailed.Body()
}

// RefreshComment recomputes the comment and upserts it as a note on the
// upstream merge request. Callers serialize refreshes per merge request.
func (s *violationCommentService) RefreshComment(ctx context.Context, mergeRequestID uuid.UUID) error {
	mergeRequest, err := s.mergeRequestRepository.Read(mergeRequestID)
	if err != nil {
		return errors.Wrap(err, "could not load merge request")
	}

	project, err := s.projectRepository.Read(mergeRequest.ProjectID)
	if err != nil {
		return errors.Wrap(err, "could not load project")
	}
	if project.GitlabProjectID == nil {
		return errors.New("project is not linked to an upstream gitlab project")
	}

	rows, err := s.violationRepository.GetByMergeRequest(mergeRequestID)
	if err != nil {
		return errors.Wrap(err, "could not load violations")
	}

	body, err := s.RenderCommentBody(mergeRequest, project, rows)
	if err != nil {
		return err
	}

	noteID, err := s.noteClient.UpsertMergeRequestNote(ctx, *project.GitlabProjectID, mergeRequest.IID, mergeRequest.ViolationCommentNoteID, body)
	if err != nil {
		return errors.Wrap(err, "could not upsert merge request note")
	}

	if mergeRequest.ViolationCommentNoteID == nil || *mergeRequest.ViolationCommentNoteID != noteID {
		mergeRequest.ViolationCommentNoteID = &noteID
		if err := s.mergeRequestRepository.Save(nil, &mergeRequest); err != nil {
			return errors.Wrap(err, "could not persist note id")
		}
	}

	monitoring.ViolationCommentRefreshes.Inc()
	return nil
}
