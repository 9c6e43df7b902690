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

// Package handler provides the implementation for authentication operations.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/wikiguides/wikiguides/internal/auth/constants"
	"github.com/wikiguides/wikiguides/internal/auth/model"
	"github.com/wikiguides/wikiguides/internal/auth/service"
	serverconst "github.com/wikiguides/wikiguides/internal/system/constants"
	"github.com/wikiguides/wikiguides/internal/system/error/apierror"
	"github.com/wikiguides/wikiguides/internal/system/error/serviceerror"
	"github.com/wikiguides/wikiguides/internal/system/log"
	sysutils "github.com/wikiguides/wikiguides/internal/system/utils"
)

const loggerComponentName = "AuthHandler"

// AuthHandler is the handler for authentication operations.
type AuthHandler struct {
	service service.AuthServiceInterface
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{
		service: service.GetAuthService(),
	}
}

// HandleRegisterRequest handles the self-registration request.
func (ah *AuthHandler) HandleRegisterRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	registerRequest, err := sysutils.DecodeJSONBody[model.RegisterRequest](r)
	if err != nil {
		ah.writeMalformedRequestError(w, logger, err)
		return
	}

	sanitized := model.RegisterRequest{
		Email:       sysutils.SanitizeString(registerRequest.Email),
		Password:    registerRequest.Password,
		DisplayName: sysutils.SanitizeString(registerRequest.DisplayName),
	}

	tokenResponse, svcErr := ah.service.Register(sanitized)
	if svcErr != nil {
		ah.handleError(w, logger, svcErr)
		return
	}

	ah.writeJSONResponse(w, logger, http.StatusCreated, tokenResponse)
	logger.Debug("Successfully registered user", log.String("userId", tokenResponse.UserID))
}

// HandleLoginRequest handles the credential login request.
func (ah *AuthHandler) HandleLoginRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	loginRequest, err := sysutils.DecodeJSONBody[model.LoginRequest](r)
	if err != nil {
		ah.writeMalformedRequestError(w, logger, err)
		return
	}

	tokenResponse, svcErr := ah.service.Login(model.LoginRequest{
		Email:    sysutils.SanitizeString(loginRequest.Email),
		Password: loginRequest.Password,
	})
	if svcErr != nil {
		ah.handleError(w, logger, svcErr)
		return
	}

	ah.writeJSONResponse(w, logger, http.StatusOK, tokenResponse)
}

// HandleMeRequest handles the authenticated user lookup request.
func (ah *AuthHandler) HandleMeRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	principal := model.PrincipalFromContext(r.Context())
	user, svcErr := ah.service.GetAuthenticatedUser(principal)
	if svcErr != nil {
		ah.handleError(w, logger, svcErr)
		return
	}

	ah.writeJSONResponse(w, logger, http.StatusOK, user)
}

// handleError writes the error response for a service error.
func (ah *AuthHandler) handleError(
	w http.ResponseWriter, logger *log.Logger, svcErr *serviceerror.ServiceError,
) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)

	var statusCode int
	switch svcErr.Type {
	case serviceerror.ClientErrorType:
		statusCode = http.StatusBadRequest
		switch svcErr.Code {
		case constants.ErrorInvalidCredentials.Code,
			constants.ErrorInvalidToken.Code,
			constants.ErrorTokenExpired.Code,
			constants.ErrorUnauthenticated.Code:
			statusCode = http.StatusUnauthorized
		case constants.ErrorForbidden.Code:
			statusCode = http.StatusForbidden
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
func (ah *AuthHandler) writeMalformedRequestError(w http.ResponseWriter, logger *log.Logger, err error) {
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

// writeJSONResponse writes a JSON success response.
func (ah *AuthHandler) writeJSONResponse(
	w http.ResponseWriter, logger *log.Logger, statusCode int, payload interface{},
) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
