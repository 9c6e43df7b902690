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

// Package handler provides the HTTP handlers for flow management and execution operations.
package handler

import (
	"encoding/json"
	"net/http"

	authmodel "github.com/wikiguides/wikiguides/internal/auth/model"
	"github.com/wikiguides/wikiguides/internal/flow/constants"
	"github.com/wikiguides/wikiguides/internal/flow/flowmgt"
	"github.com/wikiguides/wikiguides/internal/flow/model"
	serverconst "github.com/wikiguides/wikiguides/internal/system/constants"
	"github.com/wikiguides/wikiguides/internal/system/error/apierror"
	"github.com/wikiguides/wikiguides/internal/system/error/serviceerror"
	"github.com/wikiguides/wikiguides/internal/system/log"
	sysutils "github.com/wikiguides/wikiguides/internal/system/utils"
)

const loggerComponentName = "FlowHandler"

// FlowHandler is the handler for flow and step authoring operations.
type FlowHandler struct {
	service flowmgt.FlowMgtServiceInterface
}

// NewFlowHandler creates a new instance of FlowHandler.
func NewFlowHandler() *FlowHandler {
	return &FlowHandler{
		service: flowmgt.GetFlowMgtService(),
	}
}

// HandleFlowListRequest handles the list flows request.
func (fh *FlowHandler) HandleFlowListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	visibility := constants.FlowVisibility(r.URL.Query().Get("visibility"))
	tag := r.URL.Query().Get("tag")

	listResponse, svcErr := fh.service.GetFlowList(visibility, tag)
	if svcErr != nil {
		writeServiceError(w, logger, svcErr)
		return
	}

	writeJSONResponse(w, logger, http.StatusOK, listResponse)
}

// HandleFlowPostRequest handles the create flow request.
func (fh *FlowHandler) HandleFlowPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	createRequest, err := sysutils.DecodeJSONBody[model.FlowRequest](r)
	if err != nil {
		writeMalformedRequestError(w, logger, err)
		return
	}

	var createdBy *string
	if principal := authmodel.PrincipalFromContext(r.Context()); principal != nil {
		createdBy = &principal.UserID
	}

	createdFlow, svcErr := fh.service.CreateFlow(fh.sanitizeFlowRequest(*createRequest), createdBy)
	if svcErr != nil {
		writeServiceError(w, logger, svcErr)
		return
	}

	writeJSONResponse(w, logger, http.StatusCreated, createdFlow)
	logger.Debug("Successfully created flow", log.String(log.LoggerKeyFlowID, createdFlow.ID))
}

// HandleFlowGetRequest handles the get flow by id request.
func (fh *FlowHandler) HandleFlowGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	if id == "" {
		writeMissingFlowIDError(w, logger)
		return
	}

	flow, svcErr := fh.service.GetFlow(id)
	if svcErr != nil {
		writeServiceError(w, logger, svcErr)
		return
	}

	writeJSONResponse(w, logger, http.StatusOK, flow)
}

// HandleFlowPutRequest handles the update flow request.
func (fh *FlowHandler) HandleFlowPutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	if id == "" {
		writeMissingFlowIDError(w, logger)
		return
	}

	updateRequest, err := sysutils.DecodeJSONBody[model.FlowRequest](r)
	if err != nil {
		writeMalformedRequestError(w, logger, err)
		return
	}

	flow, svcErr := fh.service.UpdateFlow(id, fh.sanitizeFlowRequest(*updateRequest))
	if svcErr != nil {
		writeServiceError(w, logger, svcErr)
		return
	}

	writeJSONResponse(w, logger, http.StatusOK, flow)
	logger.Debug("Successfully updated flow", log.String(log.LoggerKeyFlowID, id))
}

// HandleFlowDeleteRequest handles the delete flow request.
func (fh *FlowHandler) HandleFlowDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	if id == "" {
		writeMissingFlowIDError(w, logger)
		return
	}

	if svcErr := fh.service.DeleteFlow(id); svcErr != nil {
		writeServiceError(w, logger, svcErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	logger.Debug("Successfully deleted flow", log.String(log.LoggerKeyFlowID, id))
}

// HandleStepListRequest handles the list flow steps request.
func (fh *FlowHandler) HandleStepListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	if id == "" {
		writeMissingFlowIDError(w, logger)
		return
	}

	listResponse, svcErr := fh.service.GetFlowStepList(id)
	if svcErr != nil {
		writeServiceError(w, logger, svcErr)
		return
	}

	writeJSONResponse(w, logger, http.StatusOK, listResponse)
}

// HandleStepPostRequest handles the create flow step request.
func (fh *FlowHandler) HandleStepPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	if id == "" {
		writeMissingFlowIDError(w, logger)
		return
	}

	createRequest, err := sysutils.DecodeJSONBody[model.FlowStepRequest](r)
	if err != nil {
		writeMalformedRequestError(w, logger, err)
		return
	}

	step, svcErr := fh.service.CreateFlowStep(id, fh.sanitizeStepRequest(*createRequest))
	if svcErr != nil {
		writeServiceError(w, logger, svcErr)
		return
	}

	writeJSONResponse(w, logger, http.StatusCreated, step)
	logger.Debug("Successfully created flow step", log.String(log.LoggerKeyStepID, step.ID))
}

// HandleStepPutRequest handles the update flow step request.
func (fh *FlowHandler) HandleStepPutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	stepID := r.PathValue("stepId")
	if id == "" || stepID == "" {
		writeMissingFlowIDError(w, logger)
		return
	}

	updateRequest, err := sysutils.DecodeJSONBody[model.FlowStepRequest](r)
	if err != nil {
		writeMalformedRequestError(w, logger, err)
		return
	}

	step, svcErr := fh.service.UpdateFlowStep(id, stepID, fh.sanitizeStepRequest(*updateRequest))
	if svcErr != nil {
		writeServiceError(w, logger, svcErr)
		return
	}

	writeJSONResponse(w, logger, http.StatusOK, step)
	logger.Debug("Successfully updated flow step", log.String(log.LoggerKeyStepID, stepID))
}

// HandleStepDeleteRequest handles the delete flow step request.
func (fh *FlowHandler) HandleStepDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	stepID := r.PathValue("stepId")
	if id == "" || stepID == "" {
		writeMissingFlowIDError(w, logger)
		return
	}

	if svcErr := fh.service.DeleteFlowStep(id, stepID); svcErr != nil {
		writeServiceError(w, logger, svcErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	logger.Debug("Successfully deleted flow step", log.String(log.LoggerKeyStepID, stepID))
}

// sanitizeFlowRequest sanitizes the flow authoring request input.
func (fh *FlowHandler) sanitizeFlowRequest(request model.FlowRequest) model.FlowRequest {
	tags := make([]string, 0, len(request.Tags))
	for _, tag := range request.Tags {
		tags = append(tags, sysutils.SanitizeString(tag))
	}
	return model.FlowRequest{
		Title:       sysutils.SanitizeString(request.Title),
		Description: sysutils.SanitizeString(request.Description),
		Visibility:  request.Visibility,
		Tags:        tags,
	}
}

// sanitizeStepRequest sanitizes the step authoring request input. Payload
// routing fields are left as-is; they are validated by the service.
func (fh *FlowHandler) sanitizeStepRequest(request model.FlowStepRequest) model.FlowStepRequest {
	request.Question = sysutils.SanitizeString(request.Question)
	request.Description = sysutils.SanitizeString(request.Description)
	return request
}

// writeServiceError maps a service error to an HTTP error response.
func writeServiceError(w http.ResponseWriter, logger *log.Logger, svcErr *serviceerror.ServiceError) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)

	var statusCode int
	switch svcErr.Type {
	case serviceerror.ClientErrorType:
		statusCode = http.StatusBadRequest
		switch svcErr.Code {
		case constants.ErrorFlowNotFound.Code,
			constants.ErrorStepNotFound.Code,
			constants.ErrorExecutionNotFound.Code:
			statusCode = http.StatusNotFound
		case constants.ErrorExecutionNotInProgress.Code,
			constants.ErrorConcurrentUpdate.Code:
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
func writeMalformedRequestError(w http.ResponseWriter, logger *log.Logger, err error) {
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

// writeMissingFlowIDError writes the error response for a missing path id.
func writeMissingFlowIDError(w http.ResponseWriter, logger *log.Logger) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusBadRequest)

	errResp := apierror.ErrorResponse{
		Code:        constants.ErrorMissingFlowID.Code,
		Message:     constants.ErrorMissingFlowID.Error,
		Description: constants.ErrorMissingFlowID.ErrorDescription,
	}

	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		logger.Error("Error encoding error response", log.Error(err))
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}

// writeJSONResponse writes a JSON success response.
func writeJSONResponse(w http.ResponseWriter, logger *log.Logger, statusCode int, payload interface{}) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
