/*
 * Copyright (c) 2025, WikiGuides contributors.
 *
 * Licensed under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package constants defines constants for user management operations.
package constants

// Role represents the role assigned to a user.
type Role string

const (
	// RoleAdmin has full access to the platform including administration.
	RoleAdmin Role = "admin"
	// RoleManager manages users and content.
	RoleManager Role = "manager"
	// RoleAgent executes flows and reads content.
	RoleAgent Role = "agent"
	// RoleContributor authors wiki content and flows.
	RoleContributor Role = "contributor"
	// RoleViewer has read-only access. Anonymous requests are treated as viewers.
	RoleViewer Role = "viewer"
)

// ValidRoles lists the roles accepted by user management operations.
var ValidRoles = []Role{RoleAdmin, RoleManager, RoleAgent, RoleContributor, RoleViewer}

// IsValidRole returns whether the given role is supported.
func IsValidRole(role Role) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

// DefaultRole is the role assigned to self-registered users.
const DefaultRole = RoleViewer
