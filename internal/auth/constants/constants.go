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

// Package constants defines constants for authentication and authorization operations.
package constants

import (
	userconst "github.com/wikiguides/wikiguides/internal/user/constants"
)

// Permission represents a named capability checked at an API boundary.
type Permission string

const (
	// PermissionWikiRead allows reading wiki articles and categories.
	PermissionWikiRead Permission = "wiki:read"
	// PermissionWikiWrite allows creating and updating wiki content.
	PermissionWikiWrite Permission = "wiki:write"
	// PermissionWikiDelete allows deleting wiki content.
	PermissionWikiDelete Permission = "wiki:delete"
	// PermissionFlowRead allows reading flow definitions.
	PermissionFlowRead Permission = "flow:read"
	// PermissionFlowWrite allows authoring flows and steps.
	PermissionFlowWrite Permission = "flow:write"
	// PermissionFlowDelete allows deleting flows and steps.
	PermissionFlowDelete Permission = "flow:delete"
	// PermissionFlowExecute allows starting and driving flow executions.
	PermissionFlowExecute Permission = "flow:execute"
	// PermissionUserManage allows managing users and roles.
	PermissionUserManage Permission = "user:manage"
	// PermissionAdminAccess allows access to the admin surface.
	PermissionAdminAccess Permission = "admin:access"
)

// rolePermissions maps each role to its granted permissions. Anonymous
// requests resolve to the viewer set.
var rolePermissions = map[userconst.Role][]Permission{
	userconst.RoleAdmin: {
		PermissionWikiRead, PermissionWikiWrite, PermissionWikiDelete,
		PermissionFlowRead, PermissionFlowWrite, PermissionFlowDelete, PermissionFlowExecute,
		PermissionUserManage, PermissionAdminAccess,
	},
	userconst.RoleManager: {
		PermissionWikiRead, PermissionWikiWrite,
		PermissionFlowRead, PermissionFlowWrite, PermissionFlowExecute,
		PermissionUserManage,
	},
	userconst.RoleAgent: {
		PermissionWikiRead, PermissionWikiWrite,
		PermissionFlowRead, PermissionFlowExecute,
	},
	userconst.RoleContributor: {
		PermissionWikiRead, PermissionWikiWrite,
		PermissionFlowRead, PermissionFlowExecute,
	},
	userconst.RoleViewer: {
		PermissionWikiRead,
		PermissionFlowRead, PermissionFlowExecute,
	},
}

// PermissionsForRole returns the permissions granted to a role.
func PermissionsForRole(role userconst.Role) []Permission {
	return rolePermissions[role]
}

// RoleHasPermission returns whether the given role grants the permission.
func RoleHasPermission(role userconst.Role, permission Permission) bool {
	for _, p := range rolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}
