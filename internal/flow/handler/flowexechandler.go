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

package handler

import (
	"net/http"

	authmodel "github.com/wikiguides/wikiguides/internal/auth/model"
	"github.com/wikiguides/wikiguides/internal/flow/flowexec"
	"github.com/wikiguides/wikiguides/internal/flow/model"
	"github.com/wikiguides/wikiguides/internal/system/log"
	sysutils "github.com/wikiguides/wikiguides/internal/system/utils"
)

const execLoggerComponentName = "FlowExecHandler"

// startExecutionRequest is the optional request body of an execution start.
type startExecutionRequest struct {
	SessionContext map[string]string `json:"session_context,omitempty"`
	ResumePath     string            `json:"resume_path,omitempty"`
}

// FlowExecHandler is the handler for flow execution operations.
type FlowExecHandler struct {
	service flowexec.FlowExecServiceInterface
}

// NewFlowExecHandler creates a new instance of FlowExecHandler.
func NewFlowExecHandler() *FlowExecHandler {
	return &FlowExecHandler{
		service: flowexec.GetFlowExecService(),
	}
}

// HandleExecutionStartRequest handles the start execution request.
func (feh *FlowExecHandler) HandleExecutionStartRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, execLoggerComponentName))

	flowID := r.PathValue("id")
	if flowID == "" {
		writeMissingFlowIDError(w, logger)
		return
	}

	resumePath := ""
	var sessionContext map[string]string
	if r.ContentLength > 0 {
		startRequest, err := sysutils.DecodeJSONBody[startExecutionRequest](r)
		if err != nil {
			writeMalformedRequestError(w, logger, err)
			return
		}
		resumePath = sysutils.SanitizeString(startRequest.ResumePath)
		sessionContext = sysutils.SanitizeStringMap(startRequest.SessionContext)
	}

	var userID *string
	if principal := authmodel.PrincipalFromContext(r.Context()); principal != nil {
		userID = &principal.UserID
	}

	response, svcErr := feh.service.StartExecution(flowID, userID, sessionContext, resumePath)
	if svcErr != nil {
		writeServiceError(w, logger, svcErr)
		return
	}

	writeJSONResponse(w, logger, http.StatusCreated, response)
	logger.Debug("Started flow execution",
		log.String(log.LoggerKeyFlowID, flowID),
		log.String(log.LoggerKeyExecutionID, response.Execution.ID))
}

// HandleExecutionGetRequest handles the get execution status request.
func (feh *FlowExecHandler) HandleExecutionGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, execLoggerComponentName))

	flowID := r.PathValue("id")
	sessionToken := r.PathValue("sessionToken")
	if flowID == "" || sessionToken == "" {
		writeMissingFlowIDError(w, logger)
		return
	}

	response, svcErr := feh.service.GetExecution(flowID, sessionToken)
	if svcErr != nil {
		writeServiceError(w, logger, svcErr)
		return
	}

	writeJSONResponse(w, logger, http.StatusOK, response)
}

// HandleAnswerSubmitRequest handles the submit answer request.
func (feh *FlowExecHandler) HandleAnswerSubmitRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, execLoggerComponentName))

	flowID := r.PathValue("id")
	sessionToken := r.PathValue("sessionToken")
	if flowID == "" || sessionToken == "" {
		writeMissingFlowIDError(w, logger)
		return
	}

	submitRequest, err := sysutils.DecodeJSONBody[model.SubmitAnswerRequest](r)
	if err != nil {
		writeMalformedRequestError(w, logger, err)
		return
	}

	sanitized := model.SubmitAnswerRequest{
		StepID:   sysutils.SanitizeString(submitRequest.StepID),
		Answer:   sysutils.SanitizeString(submitRequest.Answer),
		Metadata: sysutils.SanitizeStringMap(submitRequest.Metadata),
	}

	response, svcErr := feh.service.SubmitAnswer(flowID, sessionToken, sanitized)
	if svcErr != nil {
		writeServiceError(w, logger, svcErr)
		return
	}

	writeJSONResponse(w, logger, http.StatusOK, response)
	logger.Debug("Recorded answer",
		log.String(log.LoggerKeyFlowID, flowID),
		log.String(log.LoggerKeyExecutionID, response.Execution.ID),
		log.String("status", string(response.Execution.Status)))
}

// HandleExecutionAbandonRequest handles the abandon execution request.
func (feh *FlowExecHandler) HandleExecutionAbandonRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, execLoggerComponentName))

	flowID := r.PathValue("id")
	sessionToken := r.PathValue("sessionToken")
	if flowID == "" || sessionToken == "" {
		writeMissingFlowIDError(w, logger)
		return
	}

	response, svcErr := feh.service.AbandonExecution(flowID, sessionToken)
	if svcErr != nil {
		writeServiceError(w, logger, svcErr)
		return
	}

	writeJSONResponse(w, logger, http.StatusOK, response)
	logger.Debug("Abandoned flow execution",
		log.String(log.LoggerKeyFlowID, flowID),
		log.String(log.LoggerKeyExecutionID, response.Execution.ID))
}

// HandleSummaryGetRequest handles the get execution summary request.
func (feh *FlowExecHandler) HandleSummaryGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, execLoggerComponentName))

	flowID := r.PathValue("id")
	sessionToken := r.PathValue("sessionToken")
	if flowID == "" || sessionToken == "" {
		writeMissingFlowIDError(w, logger)
		return
	}

	summary, svcErr := feh.service.GetSummary(flowID, sessionToken)
	if svcErr != nil {
		writeServiceError(w, logger, svcErr)
		return
	}

	writeJSONResponse(w, logger, http.StatusOK, summary)
}
