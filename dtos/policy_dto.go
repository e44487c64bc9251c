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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package dtos

// ReportType discriminates the rule kind a policy violation belongs to.
type ReportType string

const (
	ReportTypeScanFinding     ReportType = "scan_finding"
	ReportTypeLicenseScanning ReportType = "license_scanning"
	ReportTypeAnyMergeRequest ReportType = "any_merge_request"
)

func (t ReportType) Valid() bool {
	switch t {
	case ReportTypeScanFinding, ReportTypeLicenseScanning, ReportTypeAnyMergeRequest:
		return true
	}
	return false
}

// ReportTypes lists all valid report types in their canonical render order.
func ReportTypes() []ReportType {
	return []ReportType{ReportTypeScanFinding, ReportTypeLicenseScanning, ReportTypeAnyMergeRequest}
}

// BypassType discriminates which route authorized a policy bypass.
type BypassType string

const (
	BypassTypeAccessToken    BypassType = "access_token"
	BypassTypeServiceAccount BypassType = "service_account"
	BypassTypeUser           BypassType = "user"
	BypassTypeGroup          BypassType = "group"
	BypassTypeRole           BypassType = "role"
)

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
	SeverityInfo     Severity = "info"
	SeverityUnknown  Severity = "unknown"
)

// ViolationErrorCode is the machine-readable error discriminator stored in a
// violation's data document.
type ViolationErrorCode string

const (
	ViolationErrorArtifactsMissing ViolationErrorCode = "ARTIFACTS_MISSING"
	ViolationErrorScanRemoved      ViolationErrorCode = "SCAN_REMOVED"
)

// ApprovalSettingAttribute names a single merge-request approval setting a
// policy may enforce on top of the project configuration.
type ApprovalSettingAttribute string

const (
	AttrPreventApprovalByAuthor       ApprovalSettingAttribute = "prevent_approval_by_author"
	AttrPreventApprovalByCommitAuthor ApprovalSettingAttribute = "prevent_approval_by_commit_author"
	AttrRemoveApprovalsWithNewCommit  ApprovalSettingAttribute = "remove_approvals_with_new_commit"
	AttrRequirePasswordToApprove      ApprovalSettingAttribute = "require_password_to_approve"

	AttrBlockBranchModification       ApprovalSettingAttribute = "block_branch_modification"
	AttrPreventPushingAndForcePushing ApprovalSettingAttribute = "prevent_pushing_and_force_pushing"
)
