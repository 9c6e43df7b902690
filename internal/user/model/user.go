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

// Package model defines the data structures and interfaces for user management.
package model

import (
	"time"

	"github.com/wikiguides/wikiguides/internal/user/constants"
)

// User represents a user in the system.
type User struct {
	ID         string         `json:"id"`
	Email      string         `json:"email"`
	FullName   string         `json:"full_name"`
	Role       constants.Role `json:"role"`
	Department *string        `json:"department,omitempty"`
	IsActive   bool           `json:"is_active"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// Credential represents the stored password credential of a user.
type Credential struct {
	Hash string
	Salt string
}

// CreateUserRequest represents the request body for creating a user.
type CreateUserRequest struct {
	Email      string         `json:"email"`
	FullName   string         `json:"full_name"`
	Password   string         `json:"password"`
	Role       constants.Role `json:"role,omitempty"`
	Department *string        `json:"department,omitempty"`
}

// UpdateRoleRequest represents the request body for updating a user's role.
type UpdateRoleRequest struct {
	Role constants.Role `json:"role"`
}

// UserListResponse represents the response for listing users.
type UserListResponse struct {
	TotalResults int    `json:"totalResults"`
	Count        int    `json:"count"`
	Users        []User `json:"users"`
}
