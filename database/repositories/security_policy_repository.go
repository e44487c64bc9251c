package repositories

import (
	"github.com/google/uuid"
	"github.com/mergeguard/mergeguard/database/models"
	"github.com/mergeguard/mergeguard/utils"
	"gorm.io/gorm"
)

type securityPolicyRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.SecurityPolicy, *gorm.DB]
}

func NewSecurityPolicyRepository(db *gorm.DB) *securityPolicyRepository {
	return &securityPolicyRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.SecurityPolicy](db),
	}
}

func (r *securityPolicyRepository) Read(id uuid.UUID) (models.SecurityPolicy, error) {
	var policy models.SecurityPolicy
	err := r.db.Preload("ManagementProject").Preload("ApprovalPolicyRules", orderByRuleIndex).First(&policy, "id = ?", id).Error
	return policy, err
}

// GetApplicableToProject returns the enabled policies whose resolved scope
// includes the project, ordered by policy index. Scope resolution happens
// at sync time and is persisted in the policy_project_links pivot table.
func (r *securityPolicyRepository) GetApplicableToProject(projectID uuid.UUID) ([]models.SecurityPolicy, error) {
	var policies []models.SecurityPolicy
	if err := r.db.
		Joins("JOIN policy_project_links ON policy_project_links.policy_id = security_policies.id").
		Where("policy_project_links.project_id = ?", projectID).
		Where("security_policies.enabled = ?", true).
		Preload("ManagementProject").
		Preload("ApprovalPolicyRules", orderByRuleIndex).
		Order("security_policies.policy_index ASC").
		Find(&policies).Error; err != nil {
		return nil, err
	}

	return policies, nil
}

func orderByRuleIndex(db *gorm.DB) *gorm.DB {
	return db.Order("rule_index ASC")
}
