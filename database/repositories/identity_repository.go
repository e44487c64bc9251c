package repositories

import (
	"github.com/google/uuid"
	"github.com/mergeguard/mergeguard/database/models"
	"github.com/mergeguard/mergeguard/utils"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
	utils.Repository[int64, models.User, *gorm.DB]
}

func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{
		db:         db,
		Repository: newGormRepository[int64, models.User](db),
	}
}

type accessTokenRepository struct {
	db *gorm.DB
	utils.Repository[int64, models.AccessToken, *gorm.DB]
}

func NewAccessTokenRepository(db *gorm.DB) *accessTokenRepository {
	return &accessTokenRepository{
		db:         db,
		Repository: newGormRepository[int64, models.AccessToken](db),
	}
}

func (r *accessTokenRepository) GetByBotUser(userID int64) (models.AccessToken, error) {
	var token models.AccessToken
	err := r.db.First(&token, "user_id = ?", userID).Error
	return token, err
}

type groupMembershipRepository struct {
	db *gorm.DB
}

func NewGroupMembershipRepository(db *gorm.DB) *groupMembershipRepository {
	return &groupMembershipRepository{db: db}
}

func (r *groupMembershipRepository) GetMemberGroupIDs(userID int64, groupIDs []int64) ([]int64, error) {
	if len(groupIDs) == 0 {
		return []int64{}, nil
	}
	var ids []int64
	err := r.db.Model(&models.GroupMembership{}).
		Where("user_id = ? AND group_id IN ?", userID, groupIDs).
		Order("group_id ASC").
		Pluck("group_id", &ids).Error
	return ids, err
}

type customRoleAssignmentRepository struct {
	db *gorm.DB
}

func NewCustomRoleAssignmentRepository(db *gorm.DB) *customRoleAssignmentRepository {
	return &customRoleAssignmentRepository{db: db}
}

func (r *customRoleAssignmentRepository) GetCustomRoleIDs(userID int64, projectID uuid.UUID) ([]int64, error) {
	var ids []int64
	err := r.db.Model(&models.CustomRoleAssignment{}).
		Where("user_id = ? AND project_id = ?", userID, projectID).
		Order("custom_role_id ASC").
		Pluck("custom_role_id", &ids).Error
	return ids, err
}
