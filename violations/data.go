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
	"encoding/json"

	"github.com/pkg/errors"
)

// violationData is the typed form of a violation row's nested data document.
// Every section is optional, a missing section decodes to its zero value.
type violationData struct {
	Violations violationDetails  `json:"violations"`
	Context    *violationContext `json:"context"`
	Errors     []violationError  `json:"errors"`
}

type violationDetails struct {
	ScanFinding     *scanFindingDetails     `json:"scan_finding"`
	AnyMergeRequest *anyMergeRequestDetails `json:"any_merge_request"`
	// license name mapped to the dependencies it was detected on
	LicenseScanning map[string][]string `json:"license_scanning"`
}

type scanFindingDetails struct {
	UUIDs scanFindingUUIDs `json:"uuids"`
}

type scanFindingUUIDs struct {
	NewlyDetected      []string `json:"newly_detected"`
	PreviouslyExisting []string `json:"previously_existing"`
}

type anyMergeRequestDetails struct {
	Commits commitList `json:"commits"`
}

// commitList decodes either the literal true, meaning any unsigned or
// unapproved commit trips the rule, or an explicit list of commit shas.
type commitList struct {
	Any  bool
	SHAs []string
}

func (c *commitList) UnmarshalJSON(data []byte) error {
	var any bool
	if err := json.Unmarshal(data, &any); err == nil {
		c.Any = any
		c.SHAs = nil
		return nil
	}

	var shas []string
	if err := json.Unmarshal(data, &shas); err != nil {
		return errors.Wrap(err, "commits is neither a bool nor a sha list")
	}
	c.Any = false
	c.SHAs = shas
	return nil
}

func (c commitList) MarshalJSON() ([]byte, error) {
	if c.Any {
		return json.Marshal(true)
	}
	return json.Marshal(c.SHAs)
}

type violationContext struct {
	PipelineIDs       []int64 `json:"pipeline_ids"`
	TargetPipelineIDs []int64 `json:"target_pipeline_ids"`
}

type violationError struct {
	Error      string `json:"error"`
	ReportType string `json:"report_type"`
}
