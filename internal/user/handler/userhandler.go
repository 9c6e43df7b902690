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

// Package handler provides the implementation for user management operations.
package handler

import (
	"encoding/json"
	"net/http"

	serverconst "github.com/wikiguides/wikiguides/internal/system/constants"
	"github.com/wikiguides/wikiguides/internal/system/error/apierror"
	"github.com/wikiguides/wikiguides/internal/system/error/serviceerror"
	"github.com/wikiguides/wikiguides/internal/system/log"
	sysutils "github.com/wikiguides/wikiguides/internal/system/utils"
	"github.com/wikiguides/wikiguides/internal/user/constants"
	"github.com/wikiguides/wikiguides/internal/user/model"
	"github.com/wikiguides/wikiguides/internal/user/service"
)

const loggerComponentName = "UserHandler"

// UserHandler is the handler for user management operations.
type UserHandler struct {
	service service.UserServiceInterface
}

// NewUserHandler creates a new instance of UserHandler.
func NewUserHandler() *UserHandler {
	return &UserHandler{
		service: service.GetUserService(),
	}
}

// HandleUserListRequest handles the list users request.
func (uh *UserHandler) HandleUserListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	listResponse, svcErr := uh.service.GetUserList()
	if svcErr != nil {
		uh.handleError(w, logger, svcErr)
		return
	}

	uh.writeJSONResponse(w, logger, http.StatusOK, listResponse)
}

// HandleUserPostRequest handles the create user request.
func (uh *UserHandler) HandleUserPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	createRequest, err := sysutils.DecodeJSONBody[model.CreateUserRequest](r)
	if err != nil {
		uh.writeMalformedRequestError(w, logger, err)
		return
	}

	sanitized := model.CreateUserRequest{
		Email:      sysutils.SanitizeString(createRequest.Email),
		FullName:   sysutils.SanitizeString(createRequest.FullName),
		Password:   createRequest.Password,
		Role:       createRequest.Role,
		Department: createRequest.Department,
	}

	user, svcErr := uh.service.CreateUser(sanitized)
	if svcErr != nil {
		uh.handleError(w, logger, svcErr)
		return
	}

	uh.writeJSONResponse(w, logger, http.StatusCreated, user)
	logger.Debug("Successfully created user", log.String("userId", user.ID))
}

// HandleUserGetRequest handles the get user by id request.
func (uh *UserHandler) HandleUserGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	if id == "" {
		uh.writeMissingUserIDError(w, logger)
		return
	}

	user, svcErr := uh.service.GetUser(id)
	if svcErr != nil {
		uh.handleError(w, logger, svcErr)
		return
	}

	uh.writeJSONResponse(w, logger, http.StatusOK, user)
}

// HandleUserRolePutRequest handles the update user role request.
func (uh *UserHandler) HandleUserRolePutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	if id == "" {
		uh.writeMissingUserIDError(w, logger)
		return
	}

	updateRequest, err := sysutils.DecodeJSONBody[model.UpdateRoleRequest](r)
	if err != nil {
		uh.writeMalformedRequestError(w, logger, err)
		return
	}

	user, svcErr := uh.service.UpdateUserRole(id, updateRequest.Role)
	if svcErr != nil {
		uh.handleError(w, logger, svcErr)
		return
	}

	uh.writeJSONResponse(w, logger, http.StatusOK, user)
	logger.Debug("Successfully updated user role", log.String("userId", id))
}

// HandleUserDeleteRequest handles the deactivate user request.
func (uh *UserHandler) HandleUserDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	if id == "" {
		uh.writeMissingUserIDError(w, logger)
		return
	}

	if svcErr := uh.service.DeactivateUser(id); svcErr != nil {
		uh.handleError(w, logger, svcErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	logger.Debug("Successfully deactivated user", log.String("userId", id))
}

// handleError handles service errors and returns appropriate HTTP responses.
func (uh *UserHandler) handleError(w http.ResponseWriter, logger *log.Logger,
	svcErr *serviceerror.ServiceError) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)

	var statusCode int
	switch svcErr.Type {
	case serviceerror.ClientErrorType:
		statusCode = http.StatusBadRequest
		if svcErr.Code == constants.ErrorUserNotFound.Code {
			statusCode = http.StatusNotFound
		} else if svcErr.Code == constants.ErrorEmailConflict.Code {
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
func (uh *UserHandler) writeMalformedRequestError(w http.ResponseWriter, logger *log.Logger, err error) {
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

// writeMissingUserIDError writes the error response for a missing path id.
func (uh *UserHandler) writeMissingUserIDError(w http.ResponseWriter, logger *log.Logger) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusBadRequest)

	errResp := apierror.ErrorResponse{
		Code:        constants.ErrorMissingUserID.Code,
		Message:     constants.ErrorMissingUserID.Error,
		Description: constants.ErrorMissingUserID.ErrorDescription,
	}

	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		logger.Error("Error encoding error response", log.Error(err))
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}

// writeJSONResponse writes a JSON success response.
func (uh *UserHandler) writeJSONResponse(
	w http.ResponseWriter, logger *log.Logger, statusCode int, payload interface{},
) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
