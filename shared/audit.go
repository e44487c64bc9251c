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

package shared

// AuditActor identifies who triggered an audited security decision.
type AuditActor struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"` // user, project_bot, service_account
}

// AuditEvent is one structured audit-log entry. Scope is the security policy
// management project owning the policy, Target the policy itself.
type AuditEvent struct {
	Name    string     `json:"name"`
	Author  AuditActor `json:"author"`
	Scope   string     `json:"scope"`
	Target  string     `json:"target"`
	Message string     `json:"message"`

	AdditionalDetails map[string]any `json:"additionalDetails"`
}

// AuditSink receives audit events, fire and forget. Implementations must not
// block the caller on delivery failures.
type AuditSink interface {
	Audit(event AuditEvent)
}
