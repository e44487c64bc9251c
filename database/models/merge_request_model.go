package models

import "github.com/google/uuid"

type MergeRequest struct {
	Model
	ProjectID uuid.UUID `json:"projectId" gorm:"type:uuid;not null;index"`
	Project   Project   `json:"project" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE;"`

	IID          int64  `json:"iid" gorm:"not null;index"`
	Title        string `json:"title" gorm:"type:text;"`
	SourceBranch string `json:"sourceBranch" gorm:"type:text;not null;"`
	TargetBranch string `json:"targetBranch" gorm:"type:text;not null;"`
	State        string `json:"state" gorm:"type:text;not null;default:'opened';"`

	// upstream id of the persisted violation comment, nil until first posted
	ViolationCommentNoteID *int64 `json:"violationCommentNoteId"`
}

func (m MergeRequest) TableName() string {
	return "merge_requests"
}
