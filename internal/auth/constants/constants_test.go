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

package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"

	userconst "github.com/wikiguides/wikiguides/internal/user/constants"
)

func TestRoleHasPermission(t *testing.T) {
	testCases := []struct {
		name       string
		role       userconst.Role
		permission Permission
		expected   bool
	}{
		{"AdminHasAdminAccess", userconst.RoleAdmin, PermissionAdminAccess, true},
		{"AdminHasWikiDelete", userconst.RoleAdmin, PermissionWikiDelete, true},
		{"ManagerHasUserManage", userconst.RoleManager, PermissionUserManage, true},
		{"ManagerHasFlowWrite", userconst.RoleManager, PermissionFlowWrite, true},
		{"ManagerLacksWikiDelete", userconst.RoleManager, PermissionWikiDelete, false},
		{"ManagerLacksFlowDelete", userconst.RoleManager, PermissionFlowDelete, false},
		{"ManagerLacksAdminAccess", userconst.RoleManager, PermissionAdminAccess, false},
		{"AgentHasWikiWrite", userconst.RoleAgent, PermissionWikiWrite, true},
		{"AgentHasFlowExecute", userconst.RoleAgent, PermissionFlowExecute, true},
		{"AgentLacksFlowWrite", userconst.RoleAgent, PermissionFlowWrite, false},
		{"ContributorHasWikiWrite", userconst.RoleContributor, PermissionWikiWrite, true},
		{"ContributorLacksFlowWrite", userconst.RoleContributor, PermissionFlowWrite, false},
		{"ContributorLacksFlowDelete", userconst.RoleContributor, PermissionFlowDelete, false},
		{"ViewerHasWikiRead", userconst.RoleViewer, PermissionWikiRead, true},
		{"ViewerHasFlowExecute", userconst.RoleViewer, PermissionFlowExecute, true},
		{"ViewerLacksUserManage", userconst.RoleViewer, PermissionUserManage, false},
		{"UnknownRoleHasNothing", userconst.Role("ghost"), PermissionWikiRead, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, RoleHasPermission(tc.role, tc.permission))
		})
	}
}

func TestPermissionsForRole(t *testing.T) {
	adminPerms := PermissionsForRole(userconst.RoleAdmin)
	assert.NotEmpty(t, adminPerms)
	for _, permission := range PermissionsForRole(userconst.RoleManager) {
		assert.Contains(t, adminPerms, permission, "manager permission missing from admin set")
	}

	assert.Empty(t, PermissionsForRole(userconst.Role("ghost")))
}
