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

package repositories

import (
	"github.com/google/uuid"
	"github.com/mergeguard/mergeguard/database/models"
	"github.com/mergeguard/mergeguard/utils"
	"gorm.io/gorm"
)

type securityFindingRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.SecurityFinding, *gorm.DB]
}

func NewSecurityFindingRepository(db *gorm.DB) *securityFindingRepository {
	return &securityFindingRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.SecurityFinding](db),
	}
}

func (r *securityFindingRepository) GetByUUIDs(pipelineIDs []int64, uuids []string) ([]models.SecurityFinding, error) {
	if len(pipelineIDs) == 0 || len(uuids) == 0 {
		return []models.SecurityFinding{}, nil
	}
	var findings []models.SecurityFinding
	err := r.db.
		Where("pipeline_id IN ? AND finding_uuid IN ?", pipelineIDs, uuids).
		Order("finding_uuid ASC").
		Find(&findings).Error
	return findings, err
}

type vulnerabilityFindingRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.VulnerabilityFinding, *gorm.DB]
}

func NewVulnerabilityFindingRepository(db *gorm.DB) *vulnerabilityFindingRepository {
	return &vulnerabilityFindingRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.VulnerabilityFinding](db),
	}
}

func (r *vulnerabilityFindingRepository) GetByUUIDs(projectID uuid.UUID, uuids []string) ([]models.VulnerabilityFinding, error) {
	if len(uuids) == 0 {
		return []models.VulnerabilityFinding{}, nil
	}
	var findings []models.VulnerabilityFinding
	err := r.db.
		Where("project_id = ? AND finding_uuid IN ?", projectID, uuids).
		Order("finding_uuid ASC").
		Find(&findings).Error
	return findings, err
}
