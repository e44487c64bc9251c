package violations

import (
	"testing"

	"github.com/mergeguard/mergeguard/dtos"
	"github.com/stretchr/testify/assert"
)

func TestParseComment(t *testing.T) {
	t.Run("should yield empty sets for a body without markers", func(t *testing.T) {
		comment := ParseComment("just some note body")
		assert.Empty(t, comment.Reports())
		assert.Empty(t, comment.OptionalApprovalReports())
		assert.False(t, comment.RequiresApproval())
	})

	t.Run("should read both marker lines", func(t *testing.T) {
		body := "<!-- violated_reports: scan_finding,license_scanning -->\n<!-- optional_approvals: license_scanning -->\nwhatever"
		comment := ParseComment(body)

		assert.Equal(t, []dtos.ReportType{dtos.ReportTypeScanFinding, dtos.ReportTypeLicenseScanning}, comment.Reports())
		assert.Equal(t, []dtos.ReportType{dtos.ReportTypeLicenseScanning}, comment.OptionalApprovalReports())
		assert.True(t, comment.RequiresApproval())
	})

	t.Run("should discard unrecognized tokens", func(t *testing.T) {
		comment := ParseComment("<!-- violated_reports: scan_finding,cluster_image_scanning -->")
		assert.Equal(t, []dtos.ReportType{dtos.ReportTypeScanFinding}, comment.Reports())
	})
}

func TestCommentRoundTrip(t *testing.T) {
	var comment Comment
	comment.AddReportType(dtos.ReportTypeLicenseScanning, false)
	comment.AddReportType(dtos.ReportTypeScanFinding, true)

	parsed := ParseComment(comment.Body())
	assert.Equal(t, comment.Reports(), parsed.Reports())
	assert.Equal(t, comment.OptionalApprovalReports(), parsed.OptionalApprovalReports())
	assert.Equal(t, comment.RequiresApproval(), parsed.RequiresApproval())
}

func TestAddReportType(t *testing.T) {
	t.Run("should track an advisory report type as optional", func(t *testing.T) {
		var comment Comment
		comment.AddReportType(dtos.ReportTypeScanFinding, false)

		assert.Equal(t, []dtos.ReportType{dtos.ReportTypeScanFinding}, comment.Reports())
		assert.Equal(t, []dtos.ReportType{dtos.ReportTypeScanFinding}, comment.OptionalApprovalReports())
		assert.False(t, comment.RequiresApproval())
	})

	t.Run("should drop the optional marker when the type flips to required", func(t *testing.T) {
		var comment Comment
		comment.AddReportType(dtos.ReportTypeScanFinding, false)
		comment.AddReportType(dtos.ReportTypeScanFinding, true)

		assert.Equal(t, []dtos.ReportType{dtos.ReportTypeScanFinding}, comment.Reports())
		assert.Empty(t, comment.OptionalApprovalReports())
		assert.True(t, comment.RequiresApproval())
	})

	t.Run("should ignore invalid report types", func(t *testing.T) {
		var comment Comment
		comment.AddReportType(dtos.ReportType("bogus"), true)
		assert.Empty(t, comment.Reports())
	})

	t.Run("should not duplicate an already tracked type", func(t *testing.T) {
		var comment Comment
		comment.AddReportType(dtos.ReportTypeScanFinding, true)
		comment.AddReportType(dtos.ReportTypeScanFinding, true)
		assert.Len(t, comment.Reports(), 1)
	})
}

func TestRemoveReportType(t *testing.T) {
	var comment Comment
	comment.AddReportType(dtos.ReportTypeScanFinding, false)
	comment.AddReportType(dtos.ReportTypeLicenseScanning, true)

	comment.RemoveReportType(dtos.ReportTypeScanFinding)
	assert.Equal(t, []dtos.ReportType{dtos.ReportTypeLicenseScanning}, comment.Reports())
	assert.Empty(t, comment.OptionalApprovalReports())

	comment.ClearReportTypes()
	assert.Empty(t, comment.Reports())
}

func TestCommentBody(t *testing.T) {
	t.Run("should render the resolved message without tracked types", func(t *testing.T) {
		var comment Comment
		assert.Equal(t, "Security policy violations have been resolved.\n", comment.Body())
	})

	t.Run("should render the markers before the summary", func(t *testing.T) {
		var comment Comment
		comment.AddReportType(dtos.ReportTypeAnyMergeRequest, true)

		body := comment.Body()
		assert.Contains(t, body, "<!-- violated_reports: any_merge_request -->")
		assert.Contains(t, body, "requires approval")
	})

	t.Run("should mark a purely advisory comment as optional", func(t *testing.T) {
		var comment Comment
		comment.AddReportType(dtos.ReportTypeScanFinding, false)
		assert.Contains(t, comment.Body(), "Approval is optional")
	})
}
