package repositories

import (
	"github.com/google/uuid"
	"github.com/mergeguard/mergeguard/database/models"
	"github.com/mergeguard/mergeguard/utils"
	"gorm.io/gorm"
)

type projectRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Project, *gorm.DB]
}

func NewProjectRepository(db *gorm.DB) *projectRepository {
	return &projectRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Project](db),
	}
}

func (r *projectRepository) GetByPath(path string) (models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "path = ?", path).Error
	return project, err
}

type mergeRequestRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.MergeRequest, *gorm.DB]
}

func NewMergeRequestRepository(db *gorm.DB) *mergeRequestRepository {
	return &mergeRequestRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.MergeRequest](db),
	}
}

func (r *mergeRequestRepository) GetByProjectAndIID(projectID uuid.UUID, iid int64) (models.MergeRequest, error) {
	var mergeRequest models.MergeRequest
	err := r.db.Preload("Project").First(&mergeRequest, "project_id = ? AND iid = ?", projectID, iid).Error
	return mergeRequest, err
}

type protectedBranchRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.ProtectedBranch, *gorm.DB]
}

func NewProtectedBranchRepository(db *gorm.DB) *protectedBranchRepository {
	return &protectedBranchRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.ProtectedBranch](db),
	}
}

func (r *protectedBranchRepository) GetByProject(projectID uuid.UUID) ([]models.ProtectedBranch, error) {
	var branches []models.ProtectedBranch
	err := r.db.Where("project_id = ?", projectID).Order("name ASC").Find(&branches).Error
	return branches, err
}

func (r *protectedBranchRepository) GetByProjectAndNames(projectID uuid.UUID, names []string) ([]models.ProtectedBranch, error) {
	if len(names) == 0 {
		return []models.ProtectedBranch{}, nil
	}
	var branches []models.ProtectedBranch
	err := r.db.Where("project_id = ? AND name IN ?", projectID, names).Order("name ASC").Find(&branches).Error
	return branches, err
}
