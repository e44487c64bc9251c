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
	"time"

	"github.com/google/uuid"
)

// User mirrors the upstream identity. Identity ids are the upstream numeric
// ids, so bypass settings can reference them directly.
type User struct {
	ID       int64  `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"type:text;not null;uniqueIndex"`
	Name     string `json:"name" gorm:"type:text;"`

	// a project bot represents an access token, a service account is a
	// machine identity - both are handled by dedicated bypass routes and
	// never by the generic user routes.
	ProjectBot     bool `json:"projectBot" gorm:"default:false;not null;"`
	ServiceAccount bool `json:"serviceAccount" gorm:"default:false;not null;"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u User) TableName() string {
	return "users"
}

func (u User) GetID() int64 {
	return u.ID
}

type AccessToken struct {
	ID     int64 `json:"id" gorm:"primaryKey"`
	UserID int64 `json:"userId" gorm:"not null;index"`

	Name      string     `json:"name" gorm:"type:text;not null;"`
	Revoked   bool       `json:"revoked" gorm:"default:false;not null;"`
	ExpiresAt *time.Time `json:"expiresAt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (t AccessToken) TableName() string {
	return "access_tokens"
}

func (t AccessToken) GetID() int64 {
	return t.ID
}

// Active reports whether the token may still authenticate: not revoked and
// not past its expiry.
func (t AccessToken) Active() bool {
	if t.Revoked {
		return false
	}
	if t.ExpiresAt != nil && t.ExpiresAt.Before(time.Now()) {
		return false
	}
	return true
}

type GroupMembership struct {
	GroupID int64 `json:"groupId" gorm:"primaryKey;autoIncrement:false"`
	UserID  int64 `json:"userId" gorm:"primaryKey;autoIncrement:false"`

	// minimal access level the member holds in the group
	AccessLevel int `json:"accessLevel" gorm:"not null;default:10;"`

	CreatedAt time.Time `json:"createdAt"`
}

func (m GroupMembership) TableName() string {
	return "group_memberships"
}

type CustomRoleAssignment struct {
	CustomRoleID int64     `json:"customRoleId" gorm:"primaryKey;autoIncrement:false"`
	UserID       int64     `json:"userId" gorm:"primaryKey;autoIncrement:false"`
	ProjectID    uuid.UUID `json:"projectId" gorm:"primaryKey;type:uuid;"`

	CreatedAt time.Time `json:"createdAt"`
}

func (a CustomRoleAssignment) TableName() string {
	return "custom_role_assignments"
}
