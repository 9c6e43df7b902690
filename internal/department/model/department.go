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

// Package model defines the data structures for department management operations.
package model

// Department represents a department in the organization tree.
type Department struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Parent      *string  `json:"parent,omitempty"`
	Departments []string `json:"departments,omitempty"`
}

// DepartmentRequest represents the request to create or update a department.
type DepartmentRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Parent      *string `json:"parent,omitempty"`
}

// DepartmentListResponse represents the response for listing departments.
type DepartmentListResponse struct {
	TotalResults int          `json:"totalResults"`
	Count        int          `json:"count"`
	Departments  []Department `json:"departments"`
}
