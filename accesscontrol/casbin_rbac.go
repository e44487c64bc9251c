// Copyright (C) 2023 Tim Bastin, l3montree GmbH
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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
package accesscontrol

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/casbin/casbin/v2"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"github.com/google/uuid"
	"github.com/mergeguard/mergeguard/shared"
	"gorm.io/gorm"
)

var _ shared.ProjectRoleResolver = &casbinRoleStore{}
var casbinEnforcer *casbin.SyncedEnforcer

// ordered from least to most privileged
var roleRank = map[shared.Role]int{
	shared.RoleGuest:      1,
	shared.RoleReporter:   2,
	shared.RoleDeveloper:  3,
	shared.RoleMaintainer: 4,
	shared.RoleOwner:      5,
}

// casbinRoleStore keeps project role grants in the casbin rule table.
// Subjects are user::<upstream id>, domains are project::<uuid> and roles
// are role::<name>.
type casbinRoleStore struct {
	enforcer *casbin.SyncedEnforcer
}

func NewCasbinRoleStore(db *gorm.DB) (*casbinRoleStore, error) {
	enforcer, err := buildEnforcer(db)
	if err != nil {
		return nil, err
	}
	return &casbinRoleStore{enforcer: enforcer}, nil
}

func buildEnforcer(db *gorm.DB) (*casbin.SyncedEnforcer, error) {
	if casbinEnforcer != nil {
		return casbinEnforcer, nil
	}

	// the adapter creates the casbin_rule table on first use
	a, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, err
	}

	path := os.Getenv("RBAC_CONFIG_PATH")
	if path == "" {
		path = "config/rbac_model.conf"
	}

	e, err := casbin.NewSyncedEnforcer(path, a)
	if err != nil {
		return nil, err
	}
	e.EnableLog(false)

	if err = e.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("could not load policy: %w", err)
	}

	casbinEnforcer = e
	return e, nil
}

func userSubject(userID int64) string {
	return "user::" + strconv.FormatInt(userID, 10)
}

func projectDomain(projectID uuid.UUID) string {
	return "project::" + projectID.String()
}

// ProjectRole returns the most privileged default role the user holds on
// the project, or RoleUnknown when no grant exists.
func (c *casbinRoleStore) ProjectRole(userID int64, projectID uuid.UUID) (shared.Role, error) {
	roles := c.enforcer.GetRolesForUserInDomain(userSubject(userID), projectDomain(projectID))

	best := shared.RoleUnknown
	for _, r := range roles {
		role := shared.Role(strings.TrimPrefix(r, "role::"))
		if roleRank[role] > roleRank[best] {
			best = role
		}
	}
	return best, nil
}

func (c *casbinRoleStore) GrantProjectRole(userID int64, projectID uuid.UUID, role shared.Role) error {
	if !shared.ValidRole(string(role)) {
		return fmt.Errorf("unknown role: %s", role)
	}
	_, err := c.enforcer.AddRoleForUserInDomain(userSubject(userID), "role::"+string(role), projectDomain(projectID))
	return err
}

func (c *casbinRoleStore) RevokeProjectRole(userID int64, projectID uuid.UUID, role shared.Role) error {
	_, err := c.enforcer.DeleteRoleForUserInDomain(userSubject(userID), "role::"+string(role), projectDomain(projectID))
	return err
}
