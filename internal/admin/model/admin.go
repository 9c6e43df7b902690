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

// Package model defines the data structures for administration operations.
package model

import "time"

// AnalyticsResponse represents aggregate counters over the platform collections.
type AnalyticsResponse struct {
	TotalUsers       int           `json:"totalUsers"`
	TotalDepartments int           `json:"totalDepartments"`
	TotalCategories  int           `json:"totalCategories"`
	TotalArticles    int           `json:"totalArticles"`
	TotalFlows       int           `json:"totalFlows"`
	TotalExecutions  int           `json:"totalExecutions"`
	PopularArticles  []PopularItem `json:"popularArticles"`
	PopularFlows     []PopularItem `json:"popularFlows"`
}

// PopularItem represents a resource ranked by usage.
type PopularItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Count int64  `json:"count"`
}

// ActivityEntry represents a single entry in the recent activity feed.
type ActivityEntry struct {
	Type       string    `json:"type"`
	ResourceID string    `json:"resourceId"`
	Title      string    `json:"title,omitempty"`
	Actor      string    `json:"actor,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// ActivityListResponse represents the recent activity feed.
type ActivityListResponse struct {
	Count      int             `json:"count"`
	Activities []ActivityEntry `json:"activities"`
}

// Setting represents a single system setting.
type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SettingsResponse represents the full set of system settings.
type SettingsResponse struct {
	Settings []Setting `json:"settings"`
}

// UpdateSettingsRequest represents the request to update system settings.
type UpdateSettingsRequest struct {
	Settings map[string]string `json:"settings"`
}
