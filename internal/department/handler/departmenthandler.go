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

// Package handler provides the implementation for department management operations.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/wikiguides/wikiguides/internal/department/constants"
	"github.com/wikiguides/wikiguides/internal/department/model"
	"github.com/wikiguides/wikiguides/internal/department/service"
	serverconst "github.com/wikiguides/wikiguides/internal/system/constants"
	"github.com/wikiguides/wikiguides/internal/system/error/apierror"
	"github.com/wikiguides/wikiguides/internal/system/error/serviceerror"
	"github.com/wikiguides/wikiguides/internal/system/log"
	sysutils "github.com/wikiguides/wikiguides/internal/system/utils"
)

const loggerComponentName = "DepartmentHandler"

// DepartmentHandler is the handler for department management operations.
type DepartmentHandler struct {
	service service.DepartmentServiceInterface
}

// NewDepartmentHandler creates a new instance of DepartmentHandler.
func NewDepartmentHandler() *DepartmentHandler {
	return &DepartmentHandler{
		service: service.GetDepartmentService(),
	}
}

// HandleDepartmentListRequest handles the list departments request.
func (dh *DepartmentHandler) HandleDepartmentListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	listResponse, svcErr := dh.service.GetDepartmentList()
	if svcErr != nil {
		dh.handleError(w, logger, svcErr)
		return
	}

	dh.writeJSONResponse(w, logger, http.StatusOK, listResponse)
}

// HandleDepartmentPostRequest handles the create department request.
func (dh *DepartmentHandler) HandleDepartmentPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	createRequest, err := sysutils.DecodeJSONBody[model.DepartmentRequest](r)
	if err != nil {
		dh.writeMalformedRequestError(w, logger, err)
		return
	}

	sanitized := model.DepartmentRequest{
		Name:        sysutils.SanitizeString(createRequest.Name),
		Description: sysutils.SanitizeString(createRequest.Description),
		Parent:      createRequest.Parent,
	}

	department, svcErr := dh.service.CreateDepartment(sanitized)
	if svcErr != nil {
		dh.handleError(w, logger, svcErr)
		return
	}

	dh.writeJSONResponse(w, logger, http.StatusCreated, department)
	logger.Debug("Successfully created department", log.String("departmentId", department.ID))
}

// HandleDepartmentGetRequest handles the get department by id request.
func (dh *DepartmentHandler) HandleDepartmentGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	if id == "" {
		dh.writeMissingDepartmentIDError(w, logger)
		return
	}

	department, svcErr := dh.service.GetDepartment(id)
	if svcErr != nil {
		dh.handleError(w, logger, svcErr)
		return
	}

	dh.writeJSONResponse(w, logger, http.StatusOK, department)
}

// HandleDepartmentPutRequest handles the update department request.
func (dh *DepartmentHandler) HandleDepartmentPutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	if id == "" {
		dh.writeMissingDepartmentIDError(w, logger)
		return
	}

	updateRequest, err := sysutils.DecodeJSONBody[model.DepartmentRequest](r)
	if err != nil {
		dh.writeMalformedRequestError(w, logger, err)
		return
	}

	sanitized := model.DepartmentRequest{
		Name:        sysutils.SanitizeString(updateRequest.Name),
		Description: sysutils.SanitizeString(updateRequest.Description),
		Parent:      updateRequest.Parent,
	}

	department, svcErr := dh.service.UpdateDepartment(id, sanitized)
	if svcErr != nil {
		dh.handleError(w, logger, svcErr)
		return
	}

	dh.writeJSONResponse(w, logger, http.StatusOK, department)
	logger.Debug("Successfully updated department", log.String("departmentId", id))
}

// HandleDepartmentDeleteRequest handles the delete department request.
func (dh *DepartmentHandler) HandleDepartmentDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	if id == "" {
		dh.writeMissingDepartmentIDError(w, logger)
		return
	}

	if svcErr := dh.service.DeleteDepartment(id); svcErr != nil {
		dh.handleError(w, logger, svcErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	logger.Debug("Successfully deleted department", log.String("departmentId", id))
}

// handleError writes the error response for a service error.
func (dh *DepartmentHandler) handleError(
	w http.ResponseWriter, logger *log.Logger, svcErr *serviceerror.ServiceError,
) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)

	var statusCode int
	switch svcErr.Type {
	case serviceerror.ClientErrorType:
		statusCode = http.StatusBadRequest
		switch svcErr.Code {
		case constants.ErrorDepartmentNotFound.Code:
			statusCode = http.StatusNotFound
		case constants.ErrorDepartmentNameConflict.Code, constants.ErrorCannotDeleteDepartment.Code:
			statusCode = http.StatusConflict
		}
	default:
		statusCode = http.StatusInternalServerError
	}

	w.WriteHeader(statusCode)

	errResp := apierror.ErrorResponse{
		Code:        svcErr.Code,
		Message:     svcErr.Error,
		Description: svcErr.ErrorDescription,
	}

	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		logger.Error("Error encoding error response", log.Error(err))
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}

// writeMalformedRequestError writes the error response for an undecodable request body.
func (dh *DepartmentHandler) writeMalformedRequestError(
	w http.ResponseWriter, logger *log.Logger, err error,
) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusBadRequest)

	errResp := apierror.ErrorResponse{
		Code:        constants.ErrorInvalidRequestFormat.Code,
		Message:     constants.ErrorInvalidRequestFormat.Error,
		Description: "Failed to parse request body: " + err.Error(),
	}

	if encodeErr := json.NewEncoder(w).Encode(errResp); encodeErr != nil {
		logger.Error("Error encoding error response", log.Error(encodeErr))
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}

// writeMissingDepartmentIDError writes the error response for a missing path id.
func (dh *DepartmentHandler) writeMissingDepartmentIDError(w http.ResponseWriter, logger *log.Logger) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusBadRequest)

	errResp := apierror.ErrorResponse{
		Code:        constants.ErrorMissingDepartmentID.Code,
		Message:     constants.ErrorMissingDepartmentID.Error,
		Description: constants.ErrorMissingDepartmentID.ErrorDescription,
	}

	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		logger.Error("Error encoding error response", log.Error(err))
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}

// writeJSONResponse writes a JSON success response.
func (dh *DepartmentHandler) writeJSONResponse(
	w http.ResponseWriter, logger *log.Logger, statusCode int, payload interface{},
) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
