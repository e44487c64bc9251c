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
	types "github.com/mergeguard/mergeguard/database/types"
	"github.com/mergeguard/mergeguard/dtos"
)

// RuleKind discriminates the typed policy rules. Payloads are decoded once
// at parse time - business logic never inspects raw type strings.
type RuleKind string

const (
	RuleKindScanFinding     RuleKind = "scan_finding"
	RuleKindLicenseScanning RuleKind = "license_scanning"
	RuleKindAnyMergeRequest RuleKind = "any_merge_request"
)

func (k RuleKind) ReportType() dtos.ReportType {
	return dtos.ReportType(k)
}

// Rule is one typed policy rule. The payload matching the kind is non-nil,
// all others are nil.
type Rule struct {
	Kind RuleKind

	Branches         []string
	BranchType       string
	BranchExceptions []string

	ScanFinding     *ScanFindingRule
	LicenseScanning *LicenseScanningRule
	AnyMergeRequest *AnyMergeRequestRule
}

type ScanFindingRule struct {
	Scanners                []string
	VulnerabilitiesAllowed  int
	SeverityLevels          []string
	VulnerabilityStates     []string
	VulnerabilityAttributes map[string]bool
	VulnerabilityAge        *VulnerabilityAge
}

type VulnerabilityAge struct {
	Operator string `json:"operator"`
	Interval string `json:"interval"`
	Value    int    `json:"value"`
}

type LicenseScanningRule struct {
	LicenseTypes            []string
	LicenseStates           []string
	Licenses                *LicenseSelection
	MatchOnInclusionLicense bool
}

// LicenseSelection lists explicitly allowed or denied licenses, optionally
// excluding individual packages from the decision.
type LicenseSelection struct {
	Allowed []LicenseEntry `json:"allowed"`
	Denied  []LicenseEntry `json:"denied"`
}

type LicenseEntry struct {
	Name     string          `json:"name"`
	Packages LicensePackages `json:"packages"`
}

type LicensePackages struct {
	Excluding []string `json:"excluding"`
}

type AnyMergeRequestRule struct {
	// "any" trips on every merge request, "unsigned" only on unsigned commits
	Commits string
}

type Rules []Rule

type rawRule struct {
	Type string `json:"type"`

	Branches         []string `json:"branches"`
	BranchType       string   `json:"branch_type"`
	BranchExceptions []string `json:"branch_exceptions"`

	Scanners                []string          `json:"scanners"`
	VulnerabilitiesAllowed  *int              `json:"vulnerabilities_allowed"`
	SeverityLevels          []string          `json:"severity_levels"`
	VulnerabilityStates     []string          `json:"vulnerability_states"`
	VulnerabilityAttributes map[string]bool   `json:"vulnerability_attributes"`
	VulnerabilityAge        *VulnerabilityAge `json:"vulnerability_age"`

	LicenseTypes            []string          `json:"license_types"`
	LicenseStates           []string          `json:"license_states"`
	Licenses                *LicenseSelection `json:"licenses"`
	MatchOnInclusionLicense *bool             `json:"match_on_inclusion_license"`

	Commits string `json:"commits"`
}

func parseRules(raw []rawRule) Rules {
	rules := make(Rules, 0, len(raw))
	for _, r := range raw {
		rules = append(rules, parseRawRule(r))
	}
	return rules
}

func parseRawRule(raw rawRule) Rule {
	rule := Rule{
		Kind:             RuleKind(raw.Type),
		Branches:         raw.Branches,
		BranchType:       raw.BranchType,
		BranchExceptions: raw.BranchExceptions,
	}

	switch rule.Kind {
	case RuleKindScanFinding:
		allowed := 0
		if raw.VulnerabilitiesAllowed != nil {
			allowed = *raw.VulnerabilitiesAllowed
		}
		rule.ScanFinding = &ScanFindingRule{
			Scanners:                raw.Scanners,
			VulnerabilitiesAllowed:  allowed,
			SeverityLevels:          raw.SeverityLevels,
			VulnerabilityStates:     raw.VulnerabilityStates,
			VulnerabilityAttributes: raw.VulnerabilityAttributes,
			VulnerabilityAge:        raw.VulnerabilityAge,
		}
	case RuleKindLicenseScanning:
		matchOnInclusion := false
		if raw.MatchOnInclusionLicense != nil {
			matchOnInclusion = *raw.MatchOnInclusionLicense
		}
		rule.LicenseScanning = &LicenseScanningRule{
			LicenseTypes:            raw.LicenseTypes,
			LicenseStates:           raw.LicenseStates,
			Licenses:                raw.Licenses,
			MatchOnInclusionLicense: matchOnInclusion,
		}
	case RuleKindAnyMergeRequest:
		commits := raw.Commits
		if commits == "" {
			commits = "any"
		}
		rule.AnyMergeRequest = &AnyMergeRequestRule{Commits: commits}
	}

	return rule
}

// ParseRuleContent decodes one separately stored rule document.
func ParseRuleContent(raw types.JSONB) (Rule, error) {
	var doc rawRule
	if err := types.DecodeInto(raw, &doc); err != nil {
		return Rule{}, err
	}
	return parseRawRule(doc), nil
}

// OfKind filters the rules by their kind, preserving document order.
func (r Rules) OfKind(kind RuleKind) Rules {
	res := make(Rules, 0)
	for _, rule := range r {
		if rule.Kind == kind {
			res = append(res, rule)
		}
	}
	return res
}
