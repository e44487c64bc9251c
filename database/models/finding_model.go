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

package models

import (
	"github.com/google/uuid"
	types "github.com/mergeguard/mergeguard/database/types"
	"github.com/mergeguard/mergeguard/dtos"
)

// SecurityFinding is a pipeline-scoped scan result. Newly detected
// violations resolve against these rows.
type SecurityFinding struct {
	Model
	FindingUUID string    `json:"findingUuid" gorm:"column:finding_uuid;type:text;not null;index"`
	PipelineID  int64     `json:"pipelineId" gorm:"not null;index"`
	ProjectID   uuid.UUID `json:"projectId" gorm:"type:uuid;not null;index"`

	Severity dtos.Severity `json:"severity" gorm:"type:text;not null;default:'unknown';"`
	// the security report type that produced the finding, e.g. sast
	ReportType string  `json:"reportType" gorm:"type:text;"`
	Name       *string `json:"name" gorm:"type:text;"`

	// {file, start_line}
	Location types.JSONB `json:"location" gorm:"type:jsonb;"`
}

func (f SecurityFinding) TableName() string {
	return "security_findings"
}

// VulnerabilityFinding is a persisted finding on the default branch.
// Previously existing violations resolve against these rows.
type VulnerabilityFinding struct {
	Model
	FindingUUID string    `json:"findingUuid" gorm:"column:finding_uuid;type:text;not null;uniqueIndex"`
	ProjectID   uuid.UUID `json:"projectId" gorm:"type:uuid;not null;index"`

	Severity dtos.Severity `json:"severity" gorm:"type:text;not null;default:'unknown';"`
	// the security report type that produced the finding, e.g. sast
	ReportType string  `json:"reportType" gorm:"type:text;"`
	Name       *string `json:"name" gorm:"type:text;"`

	Location types.JSONB `json:"location" gorm:"type:jsonb;"`
}

func (f VulnerabilityFinding) TableName() string {
	return "vulnerability_findings"
}
