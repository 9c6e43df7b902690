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

// Package store provides the implementation for administration persistence operations.
package store

import (
	"fmt"
	"time"

	"github.com/wikiguides/wikiguides/internal/admin/model"
	dbmodel "github.com/wikiguides/wikiguides/internal/system/database/model"
	"github.com/wikiguides/wikiguides/internal/system/database/provider"
	"github.com/wikiguides/wikiguides/internal/system/log"
)

const loggerComponentName = "AdminStore"

// CountUsers counts all users.
func CountUsers() (int, error) {
	return fetchCount("identity", QueryCountUsers)
}

// CountDepartments counts all departments.
func CountDepartments() (int, error) {
	return fetchCount("identity", QueryCountDepartments)
}

// CountCategories counts all wiki categories.
func CountCategories() (int, error) {
	return fetchCount("identity", QueryCountCategories)
}

// CountArticles counts all wiki articles.
func CountArticles() (int, error) {
	return fetchCount("identity", QueryCountArticles)
}

// CountActiveFlows counts all active flows.
func CountActiveFlows() (int, error) {
	return fetchCount("identity", QueryCountFlows, true)
}

// CountExecutions counts all flow executions.
func CountExecutions() (int, error) {
	return fetchCount("runtime", QueryCountExecutions)
}

// GetPopularArticles retrieves the most viewed articles.
func GetPopularArticles(limit int) ([]model.PopularItem, error) {
	results, err := fetchRows("identity", QueryPopularArticles, limit)
	if err != nil {
		return nil, err
	}

	items := make([]model.PopularItem, 0, len(results))
	for _, row := range results {
		id, ok := row["article_id"].(string)
		if !ok {
			return nil, fmt.Errorf("failed to parse article_id as string")
		}
		item := model.PopularItem{
			ID:    id,
			Count: parseInt64(row["view_count"]),
		}
		if title, ok := row["title"].(string); ok {
			item.Title = title
		}
		items = append(items, item)
	}

	return items, nil
}

// GetPopularFlows retrieves the flows with the most executions.
func GetPopularFlows(limit int) ([]model.PopularItem, error) {
	results, err := fetchRows("runtime", QueryPopularFlows, limit)
	if err != nil {
		return nil, err
	}

	items := make([]model.PopularItem, 0, len(results))
	for _, row := range results {
		id, ok := row["flow_id"].(string)
		if !ok {
			return nil, fmt.Errorf("failed to parse flow_id as string")
		}
		items = append(items, model.PopularItem{
			ID:    id,
			Count: parseInt64(row["execution_count"]),
		})
	}

	return items, nil
}

// GetRecentArticleActivity retrieves the most recently updated articles as
// activity entries.
func GetRecentArticleActivity(limit int) ([]model.ActivityEntry, error) {
	results, err := fetchRows("identity", QueryRecentArticles, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]model.ActivityEntry, 0, len(results))
	for _, row := range results {
		id, ok := row["article_id"].(string)
		if !ok {
			return nil, fmt.Errorf("failed to parse article_id as string")
		}
		entry := model.ActivityEntry{
			Type:       "article_updated",
			ResourceID: id,
			OccurredAt: parseTime(row["updated_at"]),
		}
		if title, ok := row["title"].(string); ok {
			entry.Title = title
		}
		if actor, ok := row["created_by"].(string); ok {
			entry.Actor = actor
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// GetRecentExecutionActivity retrieves the most recently active flow
// executions as activity entries.
func GetRecentExecutionActivity(limit int) ([]model.ActivityEntry, error) {
	results, err := fetchRows("runtime", QueryRecentExecutions, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]model.ActivityEntry, 0, len(results))
	for _, row := range results {
		id, ok := row["execution_id"].(string)
		if !ok {
			return nil, fmt.Errorf("failed to parse execution_id as string")
		}
		entry := model.ActivityEntry{
			Type:       "flow_execution",
			ResourceID: id,
			OccurredAt: parseTime(row["last_activity"]),
		}
		if flowID, ok := row["flow_id"].(string); ok {
			entry.Title = flowID
		}
		if actor, ok := row["user_id"].(string); ok {
			entry.Actor = actor
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// GetSettings retrieves all system settings.
func GetSettings() ([]model.Setting, error) {
	results, err := fetchRows("identity", QueryGetSettings)
	if err != nil {
		return nil, err
	}

	settings := make([]model.Setting, 0, len(results))
	for _, row := range results {
		key, ok := row["setting_key"].(string)
		if !ok {
			return nil, fmt.Errorf("failed to parse setting_key as string")
		}
		value, ok := row["setting_value"].(string)
		if !ok {
			return nil, fmt.Errorf("failed to parse setting_value as string")
		}
		settings = append(settings, model.Setting{
			Key:       key,
			Value:     value,
			UpdatedAt: parseTime(row["updated_at"]),
		})
	}

	return settings, nil
}

// UpsertSetting updates a system setting, inserting it if absent.
func UpsertSetting(key, value string) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := provider.NewDBProvider().GetDBClient("identity")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	now := time.Now().UTC()
	rowsAffected, err := dbClient.Execute(QueryUpdateSetting, key, value, now)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		if _, err := dbClient.Execute(QueryInsertSetting, key, value, now); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}

	return nil
}

// fetchRows runs a select query against the named database.
func fetchRows(dbName string, query dbmodel.DBQuery, args ...interface{}) ([]map[string]interface{}, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := provider.NewDBProvider().GetDBClient(dbName)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	results, err := dbClient.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	return results, nil
}

// fetchCount runs a count query against the named database.
func fetchCount(dbName string, query dbmodel.DBQuery, args ...interface{}) (int, error) {
	results, err := fetchRows(dbName, query, args...)
	if err != nil {
		return 0, err
	}

	var total int
	if len(results) > 0 {
		if count, ok := results[0]["total"].(int64); ok {
			total = int(count)
		} else {
			return 0, fmt.Errorf("unexpected type for total: %T", results[0]["total"])
		}
	}
	return total, nil
}

// parseInt64 safely parses a 64-bit integer field from the database row.
func parseInt64(value interface{}) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	}
	return 0
}

// parseTime safely parses a timestamp field from the database row.
func parseTime(value interface{}) time.Time {
	switch v := value.(type) {
	case time.Time:
		return v
	case string:
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05.999999999-07:00", "2006-01-02 15:04:05"} {
			if t, err := time.Parse(layout, v); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}
