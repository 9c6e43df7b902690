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

// Package handler provides the implementation for administration operations.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/wikiguides/wikiguides/internal/admin/constants"
	"github.com/wikiguides/wikiguides/internal/admin/model"
	"github.com/wikiguides/wikiguides/internal/admin/service"
	serverconst "github.com/wikiguides/wikiguides/internal/system/constants"
	"github.com/wikiguides/wikiguides/internal/system/error/apierror"
	"github.com/wikiguides/wikiguides/internal/system/error/serviceerror"
	"github.com/wikiguides/wikiguides/internal/system/log"
	sysutils "github.com/wikiguides/wikiguides/internal/system/utils"
)

const loggerComponentName = "AdminHandler"

// AdminHandler is the handler for administration operations.
type AdminHandler struct {
	service service.AdminServiceInterface
}

// NewAdminHandler creates a new instance of AdminHandler.
func NewAdminHandler() *AdminHandler {
	return &AdminHandler{
		service: service.GetAdminService(),
	}
}

// HandleAnalyticsRequest handles the analytics request.
func (ah *AdminHandler) HandleAnalyticsRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	analytics, svcErr := ah.service.GetAnalytics()
	if svcErr != nil {
		ah.handleError(w, logger, svcErr)
		return
	}

	ah.writeJSONResponse(w, logger, http.StatusOK, analytics)
}

// HandleActivityRequest handles the recent activity feed request.
func (ah *AdminHandler) HandleActivityRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	activity, svcErr := ah.service.GetRecentActivity()
	if svcErr != nil {
		ah.handleError(w, logger, svcErr)
		return
	}

	ah.writeJSONResponse(w, logger, http.StatusOK, activity)
}

// HandleSettingsGetRequest handles the get settings request.
func (ah *AdminHandler) HandleSettingsGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	settings, svcErr := ah.service.GetSettings()
	if svcErr != nil {
		ah.handleError(w, logger, svcErr)
		return
	}

	ah.writeJSONResponse(w, logger, http.StatusOK, settings)
}

// HandleSettingsPutRequest handles the update settings request.
func (ah *AdminHandler) HandleSettingsPutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	updateRequest, err := sysutils.DecodeJSONBody[model.UpdateSettingsRequest](r)
	if err != nil {
		ah.writeMalformedRequestError(w, logger, err)
		return
	}

	settings, svcErr := ah.service.UpdateSettings(*updateRequest)
	if svcErr != nil {
		ah.handleError(w, logger, svcErr)
		return
	}

	ah.writeJSONResponse(w, logger, http.StatusOK, settings)
	logger.Debug("Successfully updated settings")
}

// handleError writes the error response for a service error.
func (ah *AdminHandler) handleError(
	w http.ResponseWriter, logger *log.Logger, svcErr *serviceerror.ServiceError,
) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)

	statusCode := http.StatusInternalServerError
	if svcErr.IsClientError() {
		statusCode = http.StatusBadRequest
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
func (ah *AdminHandler) writeMalformedRequestError(w http.ResponseWriter, logger *log.Logger, err error) {
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
func (ah *AdminHandler) writeJSONResponse(
	w http.ResponseWriter, logger *log.Logger, statusCode int, payload interface{},
) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
