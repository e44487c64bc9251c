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

package violations

import (
	"fmt"
	"strings"

	"github.com/mergeguard/mergeguard/database/models"
	"github.com/mergeguard/mergeguard/dtos"
	"github.com/mergeguard/mergeguard/overrides"
	"github.com/mergeguard/mergeguard/policy"
	"github.com/mergeguard/mergeguard/utils"
	"github.com/pkg/errors"
)

// more unsigned commits than this get collapsed into a "+N more" suffix
const maxListedCommits = 10

// DetailedComment renders the full violation breakdown into the note body
// while keeping the marker ledger of the embedded Comment intact.
type DetailedComment struct {
	Comment
	details  Details
	project  models.Project
	policies []policy.ApprovalPolicy
}

func NewDetailedComment(comment Comment, details Details, project models.Project, policies []policy.ApprovalPolicy) DetailedComment {
	return DetailedComment{
		Comment:  comment,
		details:  details,
		project:  project,
		policies: policies,
	}
}

// Body renders markers, title, the per-policy resolve list, the violation
// breakdown and the warn-mode bypass segment. Rendering the same details
// twice produces byte-identical output.
func (c DetailedComment) Body() (string, error) {
	var b strings.Builder
	b.WriteString(c.markers())

	if len(c.reports) == 0 {
		b.WriteString("Security policy violations have been resolved.\n")
		return b.String(), nil
	}

	c.writeTitle(&b)
	c.writeResolveActions(&b)
	if err := c.writeBreakdown(&b); err != nil {
		return "", err
	}
	c.writeBypassSegment(&b)

	return b.String(), nil
}

func (c DetailedComment) writeTitle(b *strings.Builder) {
	if c.RequiresApproval() {
		b.WriteString("## Security policy violations detected\n\n")
		b.WriteString("This merge request violates one or more security policies and requires approval before it can be merged.\n\n")
		return
	}
	b.WriteString("## Security policy violations detected (advisory)\n\n")
	b.WriteString("This merge request violates one or more warn-mode security policies. Approval is optional, the violations below are surfaced for visibility.\n\n")
}

func (c DetailedComment) writeResolveActions(b *strings.Builder) {
	b.WriteString("To unblock this merge request, resolve all violations:\n\n")
	for _, reportType := range c.Reports() {
		for _, name := range c.details.UniquePolicyNames(reportType) {
			switch reportType {
			case dtos.ReportTypeLicenseScanning:
				fmt.Fprintf(b, "- Remove all denied licenses identified by the `%s` policy.\n", name)
			case dtos.ReportTypeAnyMergeRequest:
				fmt.Fprintf(b, "- Acquire the approvals required by the `%s` policy.\n", name)
			default:
				fmt.Fprintf(b, "- Resolve all security findings identified by the `%s` policy.\n", name)
			}
		}
	}
	b.WriteString("\n")
}

func (c DetailedComment) writeBreakdown(b *strings.Builder) error {
	newFindings, err := c.details.NewScanFindingViolations()
	if err != nil {
		return errors.Wrap(err, "could not resolve newly detected findings")
	}
	previousFindings, err := c.details.PreviousScanFindingViolations()
	if err != nil {
		return errors.Wrap(err, "could not resolve previously existing findings")
	}

	if len(newFindings) > 0 {
		b.WriteString("### Newly detected findings\n\n")
		for _, finding := range newFindings {
			b.WriteString(renderFinding(finding))
		}
		b.WriteString("\n")
	}

	if len(previousFindings) > 0 {
		b.WriteString("### Previously existing findings\n\n")
		for _, finding := range previousFindings {
			b.WriteString(renderFinding(finding))
		}
		b.WriteString("\n")
	}

	if anyMR := c.details.AnyMergeRequestViolations(); len(anyMR) > 0 {
		b.WriteString("### Unsigned or unapproved commits\n\n")
		for _, violation := range anyMR {
			if violation.AnyCommit {
				fmt.Fprintf(b, "- `%s`: all commits in this merge request\n", violation.Name)
				continue
			}
			fmt.Fprintf(b, "- `%s`: %s\n", violation.Name, renderCommits(violation.Commits))
		}
		b.WriteString("\n")
	}

	if licenseViolations := c.details.LicenseScanningViolations(); len(licenseViolations) > 0 {
		b.WriteString("### Denied licenses\n\n")
		for _, violation := range licenseViolations {
			license := violation.License
			if violation.URL != "" {
				license = fmt.Sprintf("[%s](%s)", violation.License, violation.URL)
			}
			fmt.Fprintf(b, "- %s: %s\n", license, strings.Join(utils.Map(violation.Dependencies, func(d string) string {
				return "`" + d + "`"
			}), ", "))
		}
		b.WriteString("\n")
	}

	if violationErrors := c.details.Errors(); len(violationErrors) > 0 {
		b.WriteString("### Evaluation errors\n\n")
		for _, violationError := range violationErrors {
			fmt.Fprintf(b, "- %s\n", violationError.Message)
		}
		b.WriteString("\n")
	}

	if pipelines := c.details.ComparisonPipelines(); len(pipelines) > 0 {
		b.WriteString("### Comparison pipelines\n\n")
		for _, comparison := range pipelines {
			fmt.Fprintf(b, "- %s: source %s, target %s\n", comparison.ReportType, renderPipelineIDs(comparison.Source), renderPipelineIDs(comparison.Target))
		}
		b.WriteString("\n")
	}

	return nil
}

func (c DetailedComment) writeBypassSegment(b *strings.Builder) {
	warnPolicies := utils.Filter(c.policies, func(p policy.ApprovalPolicy) bool {
		return p.Enforcement().Warn()
	})
	if len(warnPolicies) == 0 {
		return
	}

	b.WriteString("### Warn-mode policies\n\n")
	b.WriteString("The following policies can be bypassed:\n\n")
	for _, warnPolicy := range warnPolicies {
		fmt.Fprintf(b, "- `%s`\n", warnPolicy.Name())
	}

	settingOverrides := overrides.ApprovalSettings(c.project, warnPolicies)
	if len(settingOverrides) > 0 {
		b.WriteString("\nWithout a bypass they would enforce the following approval settings:\n\n")
		for _, override := range settingOverrides {
			names := utils.Map(override.Policies, func(p policy.ApprovalPolicy) string {
				return "`" + p.Name() + "`"
			})
			fmt.Fprintf(b, "- %s (%s)\n", override.Attribute, strings.Join(names, ", "))
		}
	}
	b.WriteString("\n")
}

func renderFinding(finding ScanFindingViolation) string {
	name := "Unnamed finding"
	if finding.Name != nil {
		name = *finding.Name
	}
	line := fmt.Sprintf("- `%s` %s (%s)", finding.Severity, name, finding.ReportType)
	if finding.Path != nil {
		line += fmt.Sprintf(" in `%s`", *finding.Path)
	}
	return line + "\n"
}

func renderCommits(commits []string) string {
	listed := commits
	var suffix string
	if len(commits) > maxListedCommits {
		listed = commits[:maxListedCommits]
		suffix = fmt.Sprintf(" +%d more", len(commits)-maxListedCommits)
	}
	shortened := utils.Map(listed, func(sha string) string {
		if len(sha) > 8 {
			sha = sha[:8]
		}
		return "`" + sha + "`"
	})
	return strings.Join(shortened, ", ") + suffix
}

func renderPipelineIDs(ids []int64) string {
	if len(ids) == 0 {
		return "none"
	}
	return strings.Join(utils.Map(ids, func(id int64) string {
		return fmt.Sprintf("#%d", id)
	}), ", ")
}
