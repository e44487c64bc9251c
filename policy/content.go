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

// Package policy turns the raw nested configuration document of a stored
// security policy into typed, read-only views. Parsing happens exactly once
// at the boundary - every accessor afterwards is a plain struct read and
// tolerates missing configuration by holding its documented default.
package policy

import (
	"encoding/json"

	types "github.com/mergeguard/mergeguard/database/types"
)

// Content is the fully typed view over one policy configuration document.
// Every section defaults to its neutral value when absent from the raw
// document.
type Content struct {
	Enforcement      EnforcementType
	Fallback         FallbackBehavior
	Tuning           PolicyTuning
	BypassSettings   BypassSettings
	Actions          Actions
	ApprovalSettings ApprovalSettings
	Rules            Rules
	Scope            Scope
}

type rawContent struct {
	EnforcementType  *string              `json:"enforcement_type"`
	FallbackBehavior *rawFallbackBehavior `json:"fallback_behavior"`
	PolicyTuning     *PolicyTuning        `json:"policy_tuning"`
	BypassSettings   *rawBypassSettings   `json:"bypass_settings"`
	Actions          []rawAction          `json:"actions"`
	ApprovalSettings *ApprovalSettings    `json:"approval_settings"`
	Rules            []rawRule            `json:"rules"`
	PolicyScope      *rawScope            `json:"policy_scope"`
}

// ParseContent decodes the raw document into a Content. Missing sections
// never produce an error - only a structurally broken document does.
func ParseContent(raw types.JSONB) (Content, error) {
	var doc rawContent
	if err := types.DecodeInto(raw, &doc); err != nil {
		return Content{}, err
	}

	content := Content{
		Enforcement:      parseEnforcementType(doc.EnforcementType),
		Fallback:         parseFallbackBehavior(doc.FallbackBehavior),
		BypassSettings:   parseBypassSettings(doc.BypassSettings),
		Actions:          parseActions(doc.Actions),
		Rules:            parseRules(doc.Rules),
		Scope:            parseScope(doc.PolicyScope),
		ApprovalSettings: ApprovalSettings{},
		Tuning:           PolicyTuning{},
	}
	if doc.ApprovalSettings != nil {
		content.ApprovalSettings = *doc.ApprovalSettings
	}
	if doc.PolicyTuning != nil {
		content.Tuning = *doc.PolicyTuning
	}
	return content, nil
}

// idRef tolerates both plain numeric ids and {"id": n} objects, the two
// shapes id lists appear in across policy schema versions.
type idRef struct {
	ID int64
}

func (r *idRef) UnmarshalJSON(data []byte) error {
	var n int64
	if err := json.Unmarshal(data, &n); err == nil {
		r.ID = n
		return nil
	}
	var obj struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	r.ID = obj.ID
	return nil
}

func idRefsToIDs(refs []idRef) []int64 {
	res := make([]int64, len(refs))
	for i, ref := range refs {
		res[i] = ref.ID
	}
	return res
}

// EnforcementType decides whether violations of a policy block the merge
// request or are only surfaced as bypassable warnings.
type EnforcementType string

const (
	EnforcementTypeEnforce EnforcementType = "enforce"
	EnforcementTypeWarn    EnforcementType = "warn"
)

// nil and unrecognized values both resolve to enforce
func parseEnforcementType(raw *string) EnforcementType {
	if raw != nil && *raw == string(EnforcementTypeWarn) {
		return EnforcementTypeWarn
	}
	return EnforcementTypeEnforce
}

func (e EnforcementType) Warn() bool {
	return e == EnforcementTypeWarn
}

func (e EnforcementType) Enforce() bool {
	return !e.Warn()
}

// FallbackBehavior is the policy's stance when evaluation could not
// complete. Anything but the exact values "open" and "closed" leaves both
// flags false, so callers treating unknown input must decide explicitly.
type FallbackBehavior struct {
	fail string
}

type rawFallbackBehavior struct {
	Fail string `json:"fail"`
}

// an absent section defaults to fail closed
func parseFallbackBehavior(raw *rawFallbackBehavior) FallbackBehavior {
	if raw == nil {
		return FallbackBehavior{fail: "closed"}
	}
	return FallbackBehavior{fail: raw.Fail}
}

func (f FallbackBehavior) FailOpen() bool {
	return f.fail == "open"
}

func (f FallbackBehavior) FailClosed() bool {
	return f.fail == "closed"
}

// PolicyTuning carries optional evaluation knobs.
type PolicyTuning struct {
	// how far back to compare security reports, in minutes
	SecurityReportTimeWindow *int `json:"security_report_time_window"`
}
