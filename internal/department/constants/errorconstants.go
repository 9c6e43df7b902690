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

// Package constants defines constants for department management operations.
package constants

import (
	"errors"

	"github.com/wikiguides/wikiguides/internal/system/error/serviceerror"
)

// ErrDepartmentNotFound is the error returned by the store when a department
// does not exist.
var ErrDepartmentNotFound = errors.New("department not found")

// Client errors for department management operations.
var (
	// ErrorInvalidRequestFormat is the error returned when the request body is malformed.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Code:             "DPT-1001",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
	// ErrorDepartmentNotFound is the error returned when the department is not found.
	ErrorDepartmentNotFound = serviceerror.ServiceError{
		Code:             "DPT-1002",
		Type:             serviceerror.ClientErrorType,
		Error:            "Department not found",
		ErrorDescription: "The department with the specified id does not exist",
	}
	// ErrorParentDepartmentNotFound is the error returned when the referenced parent does not exist.
	ErrorParentDepartmentNotFound = serviceerror.ServiceError{
		Code:             "DPT-1003",
		Type:             serviceerror.ClientErrorType,
		Error:            "Parent department not found",
		ErrorDescription: "The parent department with the specified id does not exist",
	}
	// ErrorDepartmentNameConflict is the error returned when a department name already
	// exists under the same parent.
	ErrorDepartmentNameConflict = serviceerror.ServiceError{
		Code:             "DPT-1004",
		Type:             serviceerror.ClientErrorType,
		Error:            "Department name conflict",
		ErrorDescription: "A department with the same name already exists under the same parent",
	}
	// ErrorCircularDependency is the error returned when the requested parent would
	// create a cycle in the department tree.
	ErrorCircularDependency = serviceerror.ServiceError{
		Code:             "DPT-1005",
		Type:             serviceerror.ClientErrorType,
		Error:            "Circular dependency",
		ErrorDescription: "The requested parent would create a cycle in the department tree",
	}
	// ErrorCannotDeleteDepartment is the error returned when the department still has
	// sub departments or assigned users.
	ErrorCannotDeleteDepartment = serviceerror.ServiceError{
		Code:             "DPT-1006",
		Type:             serviceerror.ClientErrorType,
		Error:            "Cannot delete department",
		ErrorDescription: "The department has sub departments or assigned users",
	}
	// ErrorMissingDepartmentID is the error returned when the department id is missing
	// in the request path.
	ErrorMissingDepartmentID = serviceerror.ServiceError{
		Code:             "DPT-1007",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid request format",
		ErrorDescription: "Department id is required",
	}
)

// Server errors for department management operations.
var (
	// ErrorInternalServerError is the generic server error for department operations.
	ErrorInternalServerError = serviceerror.ServiceError{
		Code:             "DPT-5000",
		Type:             serviceerror.ServerErrorType,
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
