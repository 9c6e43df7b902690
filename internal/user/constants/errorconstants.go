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

// Package constants defines constants for user management operations.
package constants

import (
	"errors"

	"github.com/wikiguides/wikiguides/internal/system/error/serviceerror"
)

// Client errors for user management operations.
var (
	// ErrorInvalidRequestFormat is the error returned when the request format is invalid.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "USR-1001",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed, contains invalid data, or required fields are missing/empty",
	}
	// ErrorMissingUserID is the error returned when the user ID is missing.
	ErrorMissingUserID = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "USR-1002",
		Error:            "Invalid request format",
		ErrorDescription: "User ID is required",
	}
	// ErrorUserNotFound is the error returned when a user is not found.
	ErrorUserNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "USR-1003",
		Error:            "User not found",
		ErrorDescription: "The user with the specified id does not exist",
	}
	// ErrorEmailConflict is the error returned when the email is already registered.
	ErrorEmailConflict = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "USR-1004",
		Error:            "Email conflict",
		ErrorDescription: "A user with the same email already exists",
	}
	// ErrorInvalidRole is the error returned when the role is not supported.
	ErrorInvalidRole = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "USR-1005",
		Error:            "Invalid role",
		ErrorDescription: "The specified role is not supported",
	}
)

// Server errors for user management operations.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "USR-5000",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)

// Error variables
var (
	// ErrUserNotFound is returned when the user is not found in the system.
	ErrUserNotFound = errors.New("user not found")
)
