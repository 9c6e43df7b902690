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

package store

import (
	"fmt"

	"github.com/wikiguides/wikiguides/internal/department/model"
	dbmodel "github.com/wikiguides/wikiguides/internal/system/database/model"
	"github.com/wikiguides/wikiguides/internal/system/database/provider"
	"github.com/wikiguides/wikiguides/internal/system/log"
)

// buildDepartmentFromResultRow constructs a department from a database result row.
func buildDepartmentFromResultRow(row map[string]interface{}) (model.Department, error) {
	deptID, ok := row["dept_id"].(string)
	if !ok {
		return model.Department{}, fmt.Errorf("failed to parse dept_id as string")
	}

	name, ok := row["name"].(string)
	if !ok {
		return model.Department{}, fmt.Errorf("failed to parse name as string")
	}

	department := model.Department{
		ID:   deptID,
		Name: name,
	}

	if description, ok := row["description"].(string); ok {
		department.Description = description
	}
	if parentID, ok := row["parent_id"].(string); ok && parentID != "" {
		department.Parent = &parentID
	}

	return department, nil
}

// checkCountQuery runs a count query and reports whether the count is positive.
func checkCountQuery(query dbmodel.DBQuery, args ...interface{}) (bool, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := provider.NewDBProvider().GetDBClient("identity")
	if err != nil {
		return false, fmt.Errorf("failed to get database client: %w", err)
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	results, err := dbClient.Query(query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to execute query: %w", err)
	}

	if len(results) > 0 {
		if count, ok := results[0]["count"].(int64); ok {
			return count > 0, nil
		}
		return false, fmt.Errorf("unexpected type for count: %T", results[0]["count"])
	}

	return false, nil
}
