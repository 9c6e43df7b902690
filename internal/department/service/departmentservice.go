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

// Package service provides the implementation for department management operations.
package service

import (
	"errors"
	"strings"

	"github.com/wikiguides/wikiguides/internal/department/constants"
	"github.com/wikiguides/wikiguides/internal/department/model"
	"github.com/wikiguides/wikiguides/internal/department/store"
	"github.com/wikiguides/wikiguides/internal/system/error/serviceerror"
	"github.com/wikiguides/wikiguides/internal/system/log"
	"github.com/wikiguides/wikiguides/internal/system/utils"
)

const loggerComponentName = "DepartmentService"

// DepartmentServiceInterface defines the interface for department management operations.
type DepartmentServiceInterface interface {
	GetDepartmentList() (*model.DepartmentListResponse, *serviceerror.ServiceError)
	CreateDepartment(request model.DepartmentRequest) (model.Department, *serviceerror.ServiceError)
	GetDepartment(id string) (model.Department, *serviceerror.ServiceError)
	UpdateDepartment(id string, request model.DepartmentRequest) (model.Department, *serviceerror.ServiceError)
	DeleteDepartment(id string) *serviceerror.ServiceError
}

// DepartmentService provides department management operations.
type DepartmentService struct{}

// GetDepartmentService creates a new instance of DepartmentService.
func GetDepartmentService() DepartmentServiceInterface {
	return &DepartmentService{}
}

// GetDepartmentList retrieves all departments.
func (ds *DepartmentService) GetDepartmentList() (
	*model.DepartmentListResponse, *serviceerror.ServiceError,
) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	totalCount, err := store.GetDepartmentListCount()
	if err != nil {
		logger.Error("Failed to get department count", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	departments, err := store.GetDepartmentList()
	if err != nil {
		logger.Error("Failed to list departments", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	return &model.DepartmentListResponse{
		TotalResults: totalCount,
		Count:        len(departments),
		Departments:  departments,
	}, nil
}

// CreateDepartment creates a new department.
func (ds *DepartmentService) CreateDepartment(
	request model.DepartmentRequest,
) (model.Department, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	logger.Debug("Creating department", log.String("name", request.Name))

	if strings.TrimSpace(request.Name) == "" {
		return model.Department{}, &constants.ErrorInvalidRequestFormat
	}

	if request.Parent != nil {
		if _, err := store.GetDepartment(*request.Parent); err != nil {
			if errors.Is(err, constants.ErrDepartmentNotFound) {
				return model.Department{}, &constants.ErrorParentDepartmentNotFound
			}
			logger.Error("Failed to validate parent department", log.Error(err))
			return model.Department{}, &constants.ErrorInternalServerError
		}
	}

	conflict, err := store.CheckDepartmentNameConflict(request.Name, request.Parent)
	if err != nil {
		logger.Error("Failed to check department name conflict", log.Error(err))
		return model.Department{}, &constants.ErrorInternalServerError
	}
	if conflict {
		return model.Department{}, &constants.ErrorDepartmentNameConflict
	}

	department := model.Department{
		ID:          utils.GenerateUUID(),
		Name:        request.Name,
		Description: request.Description,
		Parent:      request.Parent,
		Departments: []string{},
	}

	if err := store.CreateDepartment(department); err != nil {
		logger.Error("Failed to create department", log.Error(err))
		return model.Department{}, &constants.ErrorInternalServerError
	}

	logger.Debug("Successfully created department", log.String("departmentID", department.ID))
	return department, nil
}

// GetDepartment retrieves a department by id.
func (ds *DepartmentService) GetDepartment(id string) (model.Department, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	department, err := store.GetDepartment(id)
	if err != nil {
		if errors.Is(err, constants.ErrDepartmentNotFound) {
			return model.Department{}, &constants.ErrorDepartmentNotFound
		}
		logger.Error("Failed to get department", log.Error(err))
		return model.Department{}, &constants.ErrorInternalServerError
	}

	return department, nil
}

// UpdateDepartment updates a department.
func (ds *DepartmentService) UpdateDepartment(
	id string, request model.DepartmentRequest,
) (model.Department, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	logger.Debug("Updating department", log.String("departmentID", id))

	if strings.TrimSpace(request.Name) == "" {
		return model.Department{}, &constants.ErrorInvalidRequestFormat
	}

	existing, err := store.GetDepartment(id)
	if err != nil {
		if errors.Is(err, constants.ErrDepartmentNotFound) {
			return model.Department{}, &constants.ErrorDepartmentNotFound
		}
		logger.Error("Failed to get department", log.Error(err))
		return model.Department{}, &constants.ErrorInternalServerError
	}

	if request.Parent != nil {
		if _, err := store.GetDepartment(*request.Parent); err != nil {
			if errors.Is(err, constants.ErrDepartmentNotFound) {
				return model.Department{}, &constants.ErrorParentDepartmentNotFound
			}
			logger.Error("Failed to validate parent department", log.Error(err))
			return model.Department{}, &constants.ErrorInternalServerError
		}
	}

	if svcErr := ds.checkCircularDependency(id, request.Parent); svcErr != nil {
		return model.Department{}, svcErr
	}

	if parentChanged(existing.Parent, request.Parent) || existing.Name != request.Name {
		conflict, err := store.CheckDepartmentNameConflictForUpdate(request.Name, request.Parent, id)
		if err != nil {
			logger.Error("Failed to check department name conflict", log.Error(err))
			return model.Department{}, &constants.ErrorInternalServerError
		}
		if conflict {
			return model.Department{}, &constants.ErrorDepartmentNameConflict
		}
	}

	updated := model.Department{
		ID:          existing.ID,
		Name:        request.Name,
		Description: request.Description,
		Parent:      request.Parent,
		Departments: existing.Departments,
	}

	if err := store.UpdateDepartment(updated); err != nil {
		if errors.Is(err, constants.ErrDepartmentNotFound) {
			return model.Department{}, &constants.ErrorDepartmentNotFound
		}
		logger.Error("Failed to update department", log.Error(err))
		return model.Department{}, &constants.ErrorInternalServerError
	}

	logger.Debug("Successfully updated department", log.String("departmentID", id))
	return updated, nil
}

// DeleteDepartment deletes a department.
func (ds *DepartmentService) DeleteDepartment(id string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	logger.Debug("Deleting department", log.String("departmentID", id))

	if _, err := store.GetDepartment(id); err != nil {
		if errors.Is(err, constants.ErrDepartmentNotFound) {
			return &constants.ErrorDepartmentNotFound
		}
		logger.Error("Failed to get department", log.Error(err))
		return &constants.ErrorInternalServerError
	}

	hasChildren, err := store.CheckDepartmentHasChildResources(id)
	if err != nil {
		logger.Error("Failed to check department child resources", log.Error(err))
		return &constants.ErrorInternalServerError
	}
	if hasChildren {
		return &constants.ErrorCannotDeleteDepartment
	}

	if err := store.DeleteDepartment(id); err != nil {
		if errors.Is(err, constants.ErrDepartmentNotFound) {
			return &constants.ErrorDepartmentNotFound
		}
		logger.Error("Failed to delete department", log.Error(err))
		return &constants.ErrorInternalServerError
	}

	logger.Debug("Successfully deleted department", log.String("departmentID", id))
	return nil
}

// checkCircularDependency checks whether setting the parent would create a
// cycle in the department tree.
func (ds *DepartmentService) checkCircularDependency(
	deptID string, parentID *string,
) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if parentID == nil {
		return nil
	}
	if *parentID == deptID {
		return &constants.ErrorCircularDependency
	}

	currentParentID := parentID
	visited := make(map[string]bool)

	for currentParentID != nil {
		if *currentParentID == deptID {
			return &constants.ErrorCircularDependency
		}

		// Guard against pre-existing cycles in stored data.
		if visited[*currentParentID] {
			logger.Error("Existing circular dependency detected in data",
				log.String("parentID", *currentParentID))
			break
		}
		visited[*currentParentID] = true

		parent, err := store.GetDepartment(*currentParentID)
		if err != nil {
			if errors.Is(err, constants.ErrDepartmentNotFound) {
				break
			}
			logger.Error("Failed to get department while checking circular dependency", log.Error(err))
			return &constants.ErrorInternalServerError
		}

		currentParentID = parent.Parent
	}

	return nil
}

func parentChanged(a, b *string) bool {
	if a == nil && b == nil {
		return false
	}
	if a == nil || b == nil {
		return true
	}
	return *a != *b
}
