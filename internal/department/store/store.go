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

// Package store provides the implementation for department persistence operations.
package store

import (
	"fmt"

	"github.com/wikiguides/wikiguides/internal/department/constants"
	"github.com/wikiguides/wikiguides/internal/department/model"
	"github.com/wikiguides/wikiguides/internal/system/database/provider"
	"github.com/wikiguides/wikiguides/internal/system/log"
)

const loggerComponentName = "DepartmentStore"

// GetDepartmentListCount retrieves the total count of departments.
func GetDepartmentListCount() (int, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := provider.NewDBProvider().GetDBClient("identity")
	if err != nil {
		return 0, fmt.Errorf("failed to get database client: %w", err)
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	results, err := dbClient.Query(QueryGetDepartmentListCount)
	if err != nil {
		return 0, fmt.Errorf("failed to execute count query: %w", err)
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

// GetDepartmentList retrieves all departments ordered by name.
func GetDepartmentList() ([]model.Department, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := provider.NewDBProvider().GetDBClient("identity")
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	results, err := dbClient.Query(QueryGetDepartmentList)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	departments := make([]model.Department, 0, len(results))
	for _, row := range results {
		department, err := buildDepartmentFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build department: %w", err)
		}
		departments = append(departments, department)
	}

	return departments, nil
}

// CreateDepartment creates a new department in the database.
func CreateDepartment(department model.Department) error {
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

	_, err = dbClient.Execute(
		QueryCreateDepartment,
		department.ID,
		department.Parent,
		department.Name,
		department.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// GetDepartment retrieves a department by id.
func GetDepartment(id string) (model.Department, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := provider.NewDBProvider().GetDBClient("identity")
	if err != nil {
		return model.Department{}, fmt.Errorf("failed to get database client: %w", err)
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	results, err := dbClient.Query(QueryGetDepartmentByID, id)
	if err != nil {
		return model.Department{}, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return model.Department{}, constants.ErrDepartmentNotFound
	}

	department, err := buildDepartmentFromResultRow(results[0])
	if err != nil {
		return model.Department{}, fmt.Errorf("failed to build department: %w", err)
	}

	subDepartments, err := getSubDepartmentIDs(id)
	if err != nil {
		return model.Department{}, err
	}
	department.Departments = subDepartments

	return department, nil
}

// UpdateDepartment updates a department.
func UpdateDepartment(department model.Department) error {
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

	rowsAffected, err := dbClient.Execute(
		QueryUpdateDepartment,
		department.ID,
		department.Parent,
		department.Name,
		department.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return constants.ErrDepartmentNotFound
	}

	return nil
}

// DeleteDepartment deletes a department by id.
func DeleteDepartment(id string) error {
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

	rowsAffected, err := dbClient.Execute(QueryDeleteDepartment, id)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return constants.ErrDepartmentNotFound
	}

	return nil
}

// CheckDepartmentNameConflict checks whether a department name already exists
// under the given parent.
func CheckDepartmentNameConflict(name string, parent *string) (bool, error) {
	if parent == nil {
		return checkCountQuery(QueryCheckDepartmentNameConflictRoot, name)
	}
	return checkCountQuery(QueryCheckDepartmentNameConflict, name, *parent)
}

// CheckDepartmentNameConflictForUpdate checks whether a department name already
// exists under the given parent, excluding the department being updated.
func CheckDepartmentNameConflictForUpdate(name string, parent *string, deptID string) (bool, error) {
	if parent == nil {
		return checkCountQuery(QueryCheckDepartmentNameConflictRootForUpdate, name, deptID)
	}
	return checkCountQuery(QueryCheckDepartmentNameConflictForUpdate, name, *parent, deptID)
}

// CheckDepartmentHasChildResources checks whether a department has sub
// departments or assigned users.
func CheckDepartmentHasChildResources(id string) (bool, error) {
	return checkCountQuery(QueryCheckDepartmentHasChildResources, id)
}

func getSubDepartmentIDs(id string) ([]string, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := provider.NewDBProvider().GetDBClient("identity")
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	results, err := dbClient.Query(QueryGetSubDepartments, id)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	subDepartments := make([]string, 0, len(results))
	for _, row := range results {
		deptID, ok := row["dept_id"].(string)
		if !ok {
			return nil, fmt.Errorf("unexpected type for dept_id: %T", row["dept_id"])
		}
		subDepartments = append(subDepartments, deptID)
	}

	return subDepartments, nil
}
