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

// getSeedData returns the predefined seed data for database initialization.
func getSeedData() seedData {
	return seedData{
		Departments: []DepartmentData{
			{
				DeptID:      "456e8400-e29b-41d4-a716-446655440001",
				ParentID:    nil,
				Name:        "General",
				Description: "Default department for unassigned users",
			},
			{
				DeptID:      "456e8400-e29b-41d4-a716-446655440002",
				ParentID:    stringPtr("456e8400-e29b-41d4-a716-446655440001"),
				Name:        "Customer Support",
				Description: "First-line customer support team",
			},
			{
				DeptID:      "456e8400-e29b-41d4-a716-446655440003",
				ParentID:    stringPtr("456e8400-e29b-41d4-a716-446655440001"),
				Name:        "IT Operations",
				Description: "Internal IT and infrastructure team",
			},
		},
		Users: []UserData{
			{
				UserID:       "550e8400-e29b-41d4-a716-446655440000",
				Email:        "admin@wikiguides.local",
				FullName:     "System Administrator",
				Role:         "admin",
				DepartmentID: "456e8400-e29b-41d4-a716-446655440001",
				Password:     "admin",
			},
		},
		Categories: []CategoryData{
			{
				CategoryID:  "650e8400-e29b-41d4-a716-446655440001",
				Name:        "Getting Started",
				Description: "Onboarding guides and first steps",
			},
			{
				CategoryID:  "650e8400-e29b-41d4-a716-446655440002",
				Name:        "Troubleshooting",
				Description: "Common problems and their fixes",
			},
		},
		Subcategories: []SubcategoryData{
			{
				SubcategoryID: "750e8400-e29b-41d4-a716-446655440001",
				CategoryID:    "650e8400-e29b-41d4-a716-446655440002",
				Name:          "Accounts",
				Description:   "Account access and password issues",
			},
		},
		Settings: []SettingData{
			{
				Key:   "site_name",
				Value: "WikiGuides",
			},
			{
				Key:   "default_article_visibility",
				Value: "public",
			},
			{
				Key:   "allow_self_registration",
				Value: "true",
			},
		},
	}
}

// stringPtr returns a pointer to the provided string value.
func stringPtr(s string) *string {
	return &s
}
