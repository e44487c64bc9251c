package violations

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mergeguard/mergeguard/dtos"
	"github.com/mergeguard/mergeguard/utils"
)

// The comment body carries a hidden machine-readable ledger of which report
// types are currently violated and which of those are merely advisory. The
// markers survive every rerender so that the next evaluation can pick up
// where the previous one left off.
var (
	reportsMarkerRegexp  = regexp.MustCompile(`<!-- violated_reports: ([a-z_,]+) -->`)
	optionalMarkerRegexp = regexp.MustCompile(`<!-- optional_approvals: ([a-z_,]+) -->`)
)

// Comment tracks the violated report types of one merge request note.
type Comment struct {
	reports  []dtos.ReportType
	optional []dtos.ReportType
}

// ParseComment reads the marker ledger out of a note body. A body without
// markers yields empty sets, unrecognized report type tokens are discarded.
func ParseComment(body string) Comment {
	return Comment{
		reports:  parseMarker(reportsMarkerRegexp, body),
		optional: parseMarker(optionalMarkerRegexp, body),
	}
}

func parseMarker(marker *regexp.Regexp, body string) []dtos.ReportType {
	match := marker.FindStringSubmatch(body)
	if match == nil {
		return nil
	}

	var reportTypes []dtos.ReportType
	for _, token := range strings.Split(match[1], ",") {
		reportType := dtos.ReportType(strings.TrimSpace(token))
		if reportType.Valid() && !utils.Contains(reportTypes, reportType) {
			reportTypes = append(reportTypes, reportType)
		}
	}
	return reportTypes
}

// AddReportType marks a report type as violated. When requiresApproval is
// false the report type is additionally tracked as advisory, when it flips
// back to true the advisory marker is removed again.
func (c *Comment) AddReportType(reportType dtos.ReportType, requiresApproval bool) {
	if !reportType.Valid() {
		return
	}

	if !utils.Contains(c.reports, reportType) {
		c.reports = append(c.reports, reportType)
	}

	if requiresApproval {
		c.optional = utils.Filter(c.optional, func(t dtos.ReportType) bool {
			return t != reportType
		})
	} else if !utils.Contains(c.optional, reportType) {
		c.optional = append(c.optional, reportType)
	}
}

// RemoveReportType removes a report type from both sets.
func (c *Comment) RemoveReportType(reportType dtos.ReportType) {
	c.reports = utils.Filter(c.reports, func(t dtos.ReportType) bool {
		return t != reportType
	})
	c.optional = utils.Filter(c.optional, func(t dtos.ReportType) bool {
		return t != reportType
	})
}

// ClearReportTypes empties both sets.
func (c *Comment) ClearReportTypes() {
	c.reports = nil
	c.optional = nil
}

// Reports returns the violated report types in canonical order.
func (c Comment) Reports() []dtos.ReportType {
	return canonicalOrder(c.reports)
}

// OptionalApprovalReports returns the advisory report types in canonical
// order.
func (c Comment) OptionalApprovalReports() []dtos.ReportType {
	return canonicalOrder(c.optional)
}

// RequiresApproval is true when at least one tracked report type is not
// merely advisory.
func (c Comment) RequiresApproval() bool {
	return utils.Any(c.reports, func(t dtos.ReportType) bool {
		return !utils.Contains(c.optional, t)
	})
}

func canonicalOrder(reportTypes []dtos.ReportType) []dtos.ReportType {
	return utils.Filter(dtos.ReportTypes(), func(t dtos.ReportType) bool {
		return utils.Contains(reportTypes, t)
	})
}

func (c Comment) markers() string {
	var b strings.Builder
	if len(c.reports) > 0 {
		fmt.Fprintf(&b, "<!-- violated_reports: %s -->\n", joinReportTypes(c.Reports()))
	}
	if len(c.optional) > 0 {
		fmt.Fprintf(&b, "<!-- optional_approvals: %s -->\n", joinReportTypes(c.OptionalApprovalReports()))
	}
	return b.String()
}

func joinReportTypes(reportTypes []dtos.ReportType) string {
	return strings.Join(utils.Map(reportTypes, func(t dtos.ReportType) string {
		return string(t)
	}), ",")
}

// Body renders the marker ledger plus a short human-readable summary. The
// detailed renderer embeds Comment and replaces the summary with the full
// violation breakdown.
func (c Comment) Body() string {
	var b strings.Builder
	b.WriteString(c.markers())

	if len(c.reports) == 0 {
		b.WriteString("Security policy violations have been resolved.\n")
		return b.String()
	}

	if c.RequiresApproval() {
		b.WriteString("## Security policy violations detected\n\nThis merge request violates one or more security policies and requires approval.\n")
	} else {
		b.WriteString("## Security policy violations detected\n\nThis merge request violates one or more warn-mode security policies. Approval is optional.\n")
	}
	return b.String()
}
