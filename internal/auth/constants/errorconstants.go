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

package constants

import "github.com/wikiguides/wikiguides/internal/system/error/serviceerror"

// Client errors for authentication operations.
var (
	// ErrorInvalidRequestFormat is the error returned when the request body is malformed.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Code:             "AUT-1001",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
	// ErrorInvalidCredentials is the error returned when email or password verification fails.
	ErrorInvalidCredentials = serviceerror.ServiceError{
		Code:             "AUT-1002",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid credentials",
		ErrorDescription: "The provided email or password is incorrect",
	}
	// ErrorInvalidToken is the error returned when the presented token cannot be verified.
	ErrorInvalidToken = serviceerror.ServiceError{
		Code:             "AUT-1003",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid token",
		ErrorDescription: "The authentication token is malformed or has an invalid signature",
	}
	// ErrorTokenExpired is the error returned when the presented token is past its expiry.
	ErrorTokenExpired = serviceerror.ServiceError{
		Code:             "AUT-1004",
		Type:             serviceerror.ClientErrorType,
		Error:            "Token expired",
		ErrorDescription: "The authentication token has expired",
	}
	// ErrorUnauthenticated is the error returned when an operation requires a signed-in user.
	ErrorUnauthenticated = serviceerror.ServiceError{
		Code:             "AUT-1005",
		Type:             serviceerror.ClientErrorType,
		Error:            "Authentication required",
		ErrorDescription: "A valid authentication token is required for this operation",
	}
	// ErrorForbidden is the error returned when the authenticated role lacks a permission.
	ErrorForbidden = serviceerror.ServiceError{
		Code:             "AUT-1006",
		Type:             serviceerror.ClientErrorType,
		Error:            "Permission denied",
		ErrorDescription: "The authenticated user does not have permission for this operation",
	}
)

// Server errors for authentication operations.
var (
	// ErrorInternalServerError is the generic server error for authentication operations.
	ErrorInternalServerError = serviceerror.ServiceError{
		Code:             "AUT-5000",
		Type:             serviceerror.ServerErrorType,
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
