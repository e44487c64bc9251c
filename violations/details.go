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

// Package violations aggregates the persisted violation rows of a merge
// request into the typed summaries the comment renderer and the REST
// surface work with. Aggregation is read only and deterministic: repeated
// runs over the same rows produce identical output regardless of row order.
package violations

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"
	"github.com/mergeguard/mergeguard/database/models"
	types "github.com/mergeguard/mergeguard/database/types"
	"github.com/mergeguard/mergeguard/dtos"
	"github.com/mergeguard/mergeguard/licenses"
	"github.com/mergeguard/mergeguard/monitoring"
	"github.com/mergeguard/mergeguard/shared"
	"github.com/mergeguard/mergeguard/utils"
	"github.com/pkg/errors"
)

// Violation is one kept violation row with its rule metadata resolved.
type Violation struct {
	Name       string          `json:"name"`
	ReportType dtos.ReportType `json:"reportType"`
	PolicyID   uuid.UUID       `json:"policyId"`
	Data       types.JSONB     `json:"data"`
}

// ScanFindingViolation summarizes one finding uuid. A finding row without a
// detail payload yields nil name, path and location but keeps the evaluated
// severity and report type.
type ScanFindingViolation struct {
	ReportType string           `json:"reportType"`
	Name       *string          `json:"name"`
	Severity   dtos.Severity    `json:"severity"`
	Path       *string          `json:"path"`
	Location   *FindingLocation `json:"location"`
}

type FindingLocation struct {
	File      string `json:"file"`
	StartLine int    `json:"start_line"`
}

type AnyMergeRequestViolation struct {
	Name string `json:"name"`
	// AnyCommit means any unsigned or unapproved commit trips the rule.
	// Otherwise Commits lists the offending shas.
	AnyCommit bool     `json:"anyCommit"`
	Commits   []string `json:"commits"`
}

type LicenseScanningViolation struct {
	License      string   `json:"license"`
	Dependencies []string `json:"dependencies"`
	// SPDX reference url, empty when the license name is unknown
	URL string `json:"url"`
}

type Error struct {
	ReportType dtos.ReportType `json:"reportType"`
	Code       string          `json:"code"`
	Message    string          `json:"message"`
}

type ComparisonPipelines struct {
	ReportType dtos.ReportType `json:"reportType"`
	Source     []int64         `json:"source"`
	Target     []int64         `json:"target"`
}

type record struct {
	name       string
	reportType dtos.ReportType
	policyID   uuid.UUID
	raw        types.JSONB
	data       violationData
}

// Details flattens the violation rows of one merge request. Rows without an
// associated approval rule are dropped entirely and only counted.
type Details struct {
	mergeRequest          models.MergeRequest
	records               []record
	securityFindings      shared.SecurityFindingRepository
	vulnerabilityFindings shared.VulnerabilityFindingRepository
}

func NewDetails(mergeRequest models.MergeRequest, rows []models.PolicyViolation, securityFindings shared.SecurityFindingRepository, vulnerabilityFindings shared.VulnerabilityFindingRepository) Details {
	records := make([]record, 0, len(rows))
	for _, row := range rows {
		if row.ApprovalPolicyRule == nil {
			monitoring.OrphanedViolationsDropped.Inc()
			continue
		}

		reportType := dtos.ReportType(row.ApprovalPolicyRule.RuleType)
		if !reportType.Valid() {
			slog.Warn("skipping violation with unrecognized rule type", "violationId", row.ID, "ruleType", row.ApprovalPolicyRule.RuleType)
			continue
		}

		var data violationData
		if err := types.DecodeInto(row.Data, &data); err != nil {
			slog.Error("could not decode violation data, keeping empty document", "violationId", row.ID, "err", err)
			data = violationData{}
		}

		records = append(records, record{
			name:       row.ApprovalPolicyRule.Name,
			reportType: reportType,
			policyID:   row.PolicyID,
			raw:        row.Data,
			data:       data,
		})
	}

	return Details{
		mergeRequest:          mergeRequest,
		records:               records,
		securityFindings:      securityFindings,
		vulnerabilityFindings: vulnerabilityFindings,
	}
}

// Violations returns every kept violation with its rule metadata.
func (d Details) Violations() []Violation {
	return utils.Map(d.records, func(r record) Violation {
		return Violation{
			Name:       r.name,
			ReportType: r.reportType,
			PolicyID:   r.policyID,
			Data:       r.raw,
		}
	})
}

// UniquePolicyNames returns the distinct rule display names, optionally
// restricted to the given report types.
func (d Details) UniquePolicyNames(reportTypes ...dtos.ReportType) []string {
	records := d.records
	if len(reportTypes) > 0 {
		records = utils.Filter(records, func(r record) bool {
			return utils.Contains(reportTypes, r.reportType)
		})
	}
	return utils.SortedUniq(utils.Map(records, func(r record) string {
		return r.name
	}))
}

// NewScanFindingViolations resolves the newly detected finding uuids against
// the pipeline-scoped security findings. A uuid appearing under multiple
// policies or pipelines yields exactly one record.
func (d Details) NewScanFindingViolations() ([]ScanFindingViolation, error) {
	uuids := utils.SortedUniq(utils.FlatMap(d.records, func(r record) []string {
		if r.data.Violations.ScanFinding == nil {
			return nil
		}
		return r.data.Violations.ScanFinding.UUIDs.NewlyDetected
	}))
	if len(uuids) == 0 {
		return nil, nil
	}

	pipelineIDs := utils.SortedUniq(utils.FlatMap(d.records, func(r record) []int64 {
		if r.data.Context == nil {
			return nil
		}
		return r.data.Context.PipelineIDs
	}))

	findings, err := d.securityFindings.GetByUUIDs(pipelineIDs, uuids)
	if err != nil {
		return nil, errors.Wrap(err, "could not load security findings")
	}

	byUUID := make(map[string]models.SecurityFinding, len(findings))
	for _, finding := range findings {
		if _, ok := byUUID[finding.FindingUUID]; !ok {
			byUUID[finding.FindingUUID] = finding
		}
	}

	result := make([]ScanFindingViolation, 0, len(byUUID))
	for _, id := range uuids {
		finding, ok := byUUID[id]
		if !ok {
			continue
		}
		result = append(result, newScanFindingViolation(finding.ReportType, finding.Severity, finding.Name, finding.Location))
	}
	return result, nil
}

// PreviousScanFindingViolations resolves the previously existing finding
// uuids against the persisted vulnerability findings of the project.
func (d Details) PreviousScanFindingViolations() ([]ScanFindingViolation, error) {
	uuids := utils.SortedUniq(utils.FlatMap(d.records, func(r record) []string {
		if r.data.Violations.ScanFinding == nil {
			return nil
		}
		return r.data.Violations.ScanFinding.UUIDs.PreviouslyExisting
	}))
	if len(uuids) == 0 {
		return nil, nil
	}

	findings, err := d.vulnerabilityFindings.GetByUUIDs(d.mergeRequest.ProjectID, uuids)
	if err != nil {
		return nil, errors.Wrap(err, "could not load vulnerability findings")
	}

	byUUID := make(map[string]models.VulnerabilityFinding, len(findings))
	for _, finding := range findings {
		if _, ok := byUUID[finding.FindingUUID]; !ok {
			byUUID[finding.FindingUUID] = finding
		}
	}

	result := make([]ScanFindingViolation, 0, len(byUUID))
	for _, id := range uuids {
		finding, ok := byUUID[id]
		if !ok {
			continue
		}
		result = append(result, newScanFindingViolation(finding.ReportType, finding.Severity, finding.Name, finding.Location))
	}
	return result, nil
}

func newScanFindingViolation(reportType string, severity dtos.Severity, name *string, location types.JSONB) ScanFindingViolation {
	violation := ScanFindingViolation{
		ReportType: reportType,
		Severity:   severity,
		Name:       name,
	}

	if location == nil {
		return violation
	}

	var loc FindingLocation
	if err := types.DecodeInto(location, &loc); err != nil || loc.File == "" {
		return violation
	}

	violation.Location = &loc
	path := loc.File
	if loc.StartLine > 0 {
		path = fmt.Sprintf("%s#L%d", loc.File, loc.StartLine)
	}
	violation.Path = &path
	return violation
}

// AnyMergeRequestViolations returns one record per violation of the
// any_merge_request rule type.
func (d Details) AnyMergeRequestViolations() []AnyMergeRequestViolation {
	result := []AnyMergeRequestViolation{}
	for _, r := range d.records {
		details := r.data.Violations.AnyMergeRequest
		if details == nil {
			continue
		}
		result = append(result, AnyMergeRequestViolation{
			Name:      r.name,
			AnyCommit: details.Commits.Any,
			Commits:   utils.SortedUniq(details.Commits.SHAs),
		})
	}
	return result
}

// LicenseScanningViolations merges the license to dependency maps of all
// policies into one deduplicated record per license.
func (d Details) LicenseScanningViolations() []LicenseScanningViolation {
	dependenciesByLicense := map[string][]string{}
	for _, r := range d.records {
		for license, dependencies := range r.data.Violations.LicenseScanning {
			dependenciesByLicense[license] = append(dependenciesByLicense[license], dependencies...)
		}
	}

	names := utils.Keys(dependenciesByLicense)
	sort.Strings(names)

	result := make([]LicenseScanningViolation, 0, len(names))
	for _, license := range names {
		result = append(result, LicenseScanningViolation{
			License:      license,
			Dependencies: utils.SortedUniq(dependenciesByLicense[license]),
			URL:          licenses.ReferenceURL(license),
		})
	}
	return result
}

// Errors maps the raw error codes of all violations into human messages.
func (d Details) Errors() []Error {
	seen := map[string]bool{}
	result := []Error{}
	for _, r := range d.records {
		for _, violationError := range r.data.Errors {
			key := violationError.Error + "|" + violationError.ReportType
			if seen[key] {
				continue
			}
			seen[key] = true
			result = append(result, Error{
				ReportType: dtos.ReportType(violationError.ReportType),
				Code:       violationError.Error,
				Message:    errorMessage(violationError.Error, violationError.ReportType),
			})
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].ReportType != result[j].ReportType {
			return result[i].ReportType < result[j].ReportType
		}
		return result[i].Code < result[j].Code
	})
	return result
}

func errorMessage(code string, reportType string) string {
	switch dtos.ViolationErrorCode(code) {
	case dtos.ViolationErrorArtifactsMissing:
		switch dtos.ReportType(reportType) {
		case dtos.ReportTypeScanFinding:
			return "Pipeline artifacts for security scans could not be found."
		case dtos.ReportTypeLicenseScanning:
			return "Pipeline artifacts for license scanning could not be found."
		default:
			return fmt.Sprintf("Pipeline artifacts could not be found (%s).", reportType)
		}
	case dtos.ViolationErrorScanRemoved:
		return "Scanners required by policy were removed from the pipeline."
	default:
		return fmt.Sprintf("Unknown error: %s", code)
	}
}

// ComparisonPipelines groups the context pipeline ids by report type,
// producing deduplicated source and target sets in canonical order.
func (d Details) ComparisonPipelines() []ComparisonPipelines {
	source := map[dtos.ReportType][]int64{}
	target := map[dtos.ReportType][]int64{}
	for _, r := range d.records {
		if r.data.Context == nil {
			continue
		}
		source[r.reportType] = append(source[r.reportType], r.data.Context.PipelineIDs...)
		target[r.reportType] = append(target[r.reportType], r.data.Context.TargetPipelineIDs...)
	}

	result := []ComparisonPipelines{}
	for _, reportType := range dtos.ReportTypes() {
		if len(source[reportType]) == 0 && len(target[reportType]) == 0 {
			continue
		}
		result = append(result, ComparisonPipelines{
			ReportType: reportType,
			Source:     utils.SortedUniq(source[reportType]),
			Target:     utils.SortedUniq(target[reportType]),
		})
	}
	return result
}
