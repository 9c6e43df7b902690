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

// Package constants defines constants for flow management and execution operations.
package constants

import (
	"errors"

	"github.com/wikiguides/wikiguides/internal/system/error/serviceerror"
)

// Client errors for flow management and execution operations.
var (
	// ErrorInvalidRequestFormat is the error returned when the request format is invalid.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FLO-1001",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed, contains invalid data, or required fields are missing/empty",
	}
	// ErrorMissingFlowID is the error returned when the flow ID is missing.
	ErrorMissingFlowID = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FLO-1002",
		Error:            "Invalid request format",
		ErrorDescription: "Flow ID is required",
	}
	// ErrorFlowNotFound is the error returned when a flow is not found.
	ErrorFlowNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FLO-1003",
		Error:            "Flow not found",
		ErrorDescription: "The flow with the specified id does not exist or is inactive",
	}
	// ErrorStepNotFound is the error returned when a flow step is not found.
	ErrorStepNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FLO-1004",
		Error:            "Step not found",
		ErrorDescription: "The step with the specified id does not exist in the flow",
	}
	// ErrorInvalidStepType is the error returned when a step type is not supported.
	ErrorInvalidStepType = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FLO-1005",
		Error:            "Invalid step type",
		ErrorDescription: "The specified step type is not supported",
	}
	// ErrorInvalidStepPayload is the error returned when a step payload does not match its type.
	ErrorInvalidStepPayload = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FLO-1006",
		Error:            "Invalid step payload",
		ErrorDescription: "The step payload is missing or does not match the step type",
	}
	// ErrorInvalidBranchOperator is the error returned when a branch condition operator is not supported.
	ErrorInvalidBranchOperator = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FLO-1007",
		Error:            "Invalid branch operator",
		ErrorDescription: "Only the \"equals\" operator on the \"answer\" field is supported",
	}
	// ErrorInvalidNextStepReference is the error returned when a next step reference
	// points outside the flow at authoring time.
	ErrorInvalidNextStepReference = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FLO-1008",
		Error:            "Invalid next step reference",
		ErrorDescription: "Next step references must point to steps of the same flow",
	}
	// ErrorInvalidVisibility is the error returned when a flow visibility value is not supported.
	ErrorInvalidVisibility = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FLO-1009",
		Error:            "Invalid visibility",
		ErrorDescription: "Flow visibility must be one of public, internal or restricted",
	}
	// ErrorExecutionNotFound is the error returned when an execution session is not found.
	ErrorExecutionNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FLO-1010",
		Error:            "Execution not found",
		ErrorDescription: "No execution exists for the specified flow and session token",
	}
	// ErrorExecutionNotInProgress is the error returned when a mutation targets a terminal execution.
	ErrorExecutionNotInProgress = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FLO-1011",
		Error:            "Execution not in progress",
		ErrorDescription: "The execution has already completed or been abandoned",
	}
	// ErrorMissingAnswer is the error returned when an answer submission has no step or answer value.
	ErrorMissingAnswer = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FLO-1012",
		Error:            "Invalid request format",
		ErrorDescription: "Step ID and answer are required to submit an answer",
	}
	// ErrorConcurrentUpdate is the error returned when concurrent mutations against the
	// same execution exhaust the retry budget.
	ErrorConcurrentUpdate = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FLO-1013",
		Error:            "Concurrent update conflict",
		ErrorDescription: "The execution was modified concurrently; retry the request",
	}
)

// Server errors for flow management and execution operations.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "FLO-5000",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
	// ErrorInvalidStepReference is the error returned when stored execution state references
	// a step that does not belong to the executed flow.
	ErrorInvalidStepReference = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "FLO-5001",
		Error:            "Invalid step reference",
		ErrorDescription: "The execution references a step that does not belong to the flow",
	}
)

// Error variables used between the store and service layers.
var (
	// ErrFlowNotFound is returned when the flow is not found in the system.
	ErrFlowNotFound = errors.New("flow not found")
	// ErrStepNotFound is returned when the flow step is not found in the system.
	ErrStepNotFound = errors.New("flow step not found")
	// ErrExecutionNotFound is returned when the flow execution is not found in the system.
	ErrExecutionNotFound = errors.New("flow execution not found")
	// ErrRevisionConflict is returned when an execution update loses a compare-and-swap race.
	ErrRevisionConflict = errors.New("execution revision conflict")
	// ErrInvalidStepReference is returned when a step does not belong to the resolved flow.
	ErrInvalidStepReference = errors.New("step does not belong to the flow")
)
