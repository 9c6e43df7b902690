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

package seeder

// seedData holds all the initial data to be seeded into the database.
type seedData struct {
	Departments   []DepartmentData  `json:"departments"`
	Users         []UserData        `json:"users"`
	Categories    []CategoryData    `json:"categories"`
	Subcategories []SubcategoryData `json:"subcategories"`
	Settings      []SettingData     `json:"settings"`
}

// DepartmentData represents department data to be seeded.
type DepartmentData struct {
	DeptID      string  `json:"dept_id"`
	ParentID    *string `json:"parent_id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
}

// UserData represents user data to be seeded.
type UserData struct {
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	FullName     string `json:"full_name"`
	Role         string `json:"role"`
	DepartmentID string `json:"department_id"`
	Password     string `json:"password"`
}

// CategoryData represents wiki category data to be seeded.
type CategoryData struct {
	CategoryID  string `json:"category_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// SubcategoryData represents wiki subcategory data to be seeded.
type SubcategoryData struct {
	SubcategoryID string `json:"subcategory_id"`
	CategoryID    string `json:"category_id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
}

// SettingData represents a system setting key-value pair to be seeded.
type SettingData struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
