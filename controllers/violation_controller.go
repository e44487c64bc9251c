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

package controllers

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/mergeguard/mergeguard/database/models"
	"github.com/mergeguard/mergeguard/shared"
	"github.com/mergeguard/mergeguard/violations"
)

type ViolationController struct {
	violationRepository    shared.PolicyViolationRepository
	mergeRequestRepository shared.MergeRequestRepository
	projectRepository      shared.ProjectRepository
	securityFindings       shared.SecurityFindingRepository
	vulnerabilityFindings  shared.VulnerabilityFindingRepository
	commentService         shared.ViolationCommentService
}

func NewViolationController(violationRepository shared.PolicyViolationRepository, mergeRequestRepository shared.MergeRequestRepository, projectRepository shared.ProjectRepository, securityFindings shared.SecurityFindingRepository, vulnerabilityFindings shared.VulnerabilityFindingRepository, commentService shared.ViolationCommentService) *ViolationController {
	return &ViolationController{
		violationRepository:    violationRepository,
		mergeRequestRepository: mergeRequestRepository,
		projectRepository:      projectRepository,
		securityFindings:       securityFindings,
		vulnerabilityFindings:  vulnerabilityFindings,
		commentService:         commentService,
	}
}

type violationDetailsResponse struct {
	Violations          []violations.Violation                `json:"violations"`
	PolicyNames         []string                              `json:"policyNames"`
	NewFindings         []violations.ScanFindingViolation     `json:"newFindings"`
	PreviousFindings    []violations.ScanFindingViolation     `json:"previousFindings"`
	AnyMergeRequest     []violations.AnyMergeRequestViolation `json:"anyMergeRequest"`
	Licenses            []violations.LicenseScanningViolation `json:"licenses"`
	Errors              []violations.Error                    `json:"errors"`
	ComparisonPipelines []violations.ComparisonPipelines      `json:"comparisonPipelines"`
}

func (c *ViolationController) loadMergeRequest(ctx shared.Context) (models.MergeRequest, error) {
	projectID, err := uuid.Parse(ctx.Param("projectID"))
	if err != nil {
		return models.MergeRequest{}, echo.NewHTTPError(400, "invalid project id").WithInternal(err)
	}
	iid, err := strconv.ParseInt(ctx.Param("mergeRequestIID"), 10, 64)
	if err != nil {
		return models.MergeRequest{}, echo.NewHTTPError(400, "invalid merge request iid").WithInternal(err)
	}

	mergeRequest, err := c.mergeRequestRepository.GetByProjectAndIID(projectID, iid)
	if err != nil {
		return models.MergeRequest{}, echo.NewHTTPError(404, "could not find merge request").WithInternal(err)
	}
	return mergeRequest, nil
}

// Details returns the aggregated violation details of a merge request.
func (c *ViolationController) Details(ctx shared.Context) error {
	mergeRequest, err := c.loadMergeRequest(ctx)
	if err != nil {
		return err
	}

	rows, err := c.violationRepository.GetByMergeRequest(mergeRequest.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not load violations").WithInternal(err)
	}

	details := violations.NewDetails(mergeRequest, rows, c.securityFindings, c.vulnerabilityFindings)

	newFindings, err := details.NewScanFindingViolations()
	if err != nil {
		return echo.NewHTTPError(500, "could not resolve findings").WithInternal(err)
	}
	previousFindings, err := details.PreviousScanFindingViolations()
	if err != nil {
		return echo.NewHTTPError(500, "could not resolve findings").WithInternal(err)
	}

	return ctx.JSON(200, violationDetailsResponse{
		Violations:          details.Violations(),
		PolicyNames:         details.UniquePolicyNames(),
		NewFindings:         newFindings,
		PreviousFindings:    previousFindings,
		AnyMergeRequest:     details.AnyMergeRequestViolations(),
		Licenses:            details.LicenseScanningViolations(),
		Errors:              details.Errors(),
		ComparisonPipelines: details.ComparisonPipelines(),
	})
}

// CommentBody renders the violation comment without posting it upstream.
func (c *ViolationController) CommentBody(ctx shared.Context) error {
	mergeRequest, err := c.loadMergeRequest(ctx)
	if err != nil {
		return err
	}

	project, err := c.projectRepository.Read(mergeRequest.ProjectID)
	if err != nil {
		return echo.NewHTTPError(404, "could not find project").WithInternal(err)
	}

	rows, err := c.violationRepository.GetByMergeRequest(mergeRequest.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not load violations").WithInternal(err)
	}

	body, err := c.commentService.RenderCommentBody(mergeRequest, project, rows)
	if err != nil {
		return echo.NewHTTPError(500, "could not render comment").WithInternal(err)
	}

	return ctx.JSON(200, echo.Map{"body": body})
}
