package repositories

import (
	"github.com/google/uuid"
	"github.com/mergeguard/mergeguard/database/models"
	"github.com/mergeguard/mergeguard/utils"
	"gorm.io/gorm"
)

type policyViolationRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.PolicyViolation, *gorm.DB]
}

func NewPolicyViolationRepository(db *gorm.DB) *policyViolationRepository {
	return &policyViolationRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.PolicyViolation](db),
	}
}

func (r *policyViolationRepository) GetByMergeRequest(mergeRequestID uuid.UUID) ([]models.PolicyViolation, error) {
	var violations []models.PolicyViolation
	if err := r.db.
		Preload("Policy").
		Preload("ApprovalPolicyRule").
		Where("merge_request_id = ?", mergeRequestID).
		Order("created_at ASC").
		Find(&violations).Error; err != nil {
		return nil, err
	}
	return violations, nil
}

func (r *policyViolationRepository) DeleteByMergeRequest(tx *gorm.DB, mergeRequestID uuid.UUID) error {
	return r.GetDB(tx).Where("merge_request_id = ?", mergeRequestID).Delete(&models.PolicyViolation{}).Error
}
