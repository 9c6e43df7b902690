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

package services

import (
	"net/http"

	"github.com/wikiguides/wikiguides/internal/auth/constants"
	authmw "github.com/wikiguides/wikiguides/internal/auth/middleware"
	"github.com/wikiguides/wikiguides/internal/flow/handler"
	"github.com/wikiguides/wikiguides/internal/system/middleware"
)

// FlowService is the service for flow management and execution operations.
type FlowService struct {
	flowHandler     *handler.FlowHandler
	flowExecHandler *handler.FlowExecHandler
}

// NewFlowService creates a new instance of FlowService.
func NewFlowService(mux *http.ServeMux) ServiceInterface {
	instance := &FlowService{
		flowHandler:     handler.NewFlowHandler(),
		flowExecHandler: handler.NewFlowExecHandler(),
	}
	instance.RegisterRoutes(mux)

	return instance
}

// RegisterRoutes registers the routes for flow management and execution operations.
func (s *FlowService) RegisterRoutes(mux *http.ServeMux) {
	opts1 := middleware.CORSOptions{
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /flows",
		authmw.RequirePermission(constants.PermissionFlowRead,
			s.flowHandler.HandleFlowListRequest), opts1))
	mux.HandleFunc(middleware.WithCORS("POST /flows",
		authmw.RequirePermission(constants.PermissionFlowWrite,
			s.flowHandler.HandleFlowPostRequest), opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /flows",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "GET, POST, PUT, DELETE",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /flows/{id}",
		authmw.RequirePermission(constants.PermissionFlowRead,
			s.flowHandler.HandleFlowGetRequest), opts2))
	mux.HandleFunc(middleware.WithCORS("PUT /flows/{id}",
		authmw.RequirePermission(constants.PermissionFlowWrite,
			s.flowHandler.HandleFlowPutRequest), opts2))
	mux.HandleFunc(middleware.WithCORS("DELETE /flows/{id}",
		authmw.RequirePermission(constants.PermissionFlowDelete,
			s.flowHandler.HandleFlowDeleteRequest), opts2))

	mux.HandleFunc(middleware.WithCORS("GET /flows/{id}/steps",
		authmw.RequirePermission(constants.PermissionFlowRead,
			s.flowHandler.HandleStepListRequest), opts2))
	mux.HandleFunc(middleware.WithCORS("POST /flows/{id}/steps",
		authmw.RequirePermission(constants.PermissionFlowWrite,
			s.flowHandler.HandleStepPostRequest), opts2))
	mux.HandleFunc(middleware.WithCORS("PUT /flows/{id}/steps/{stepId}",
		authmw.RequirePermission(constants.PermissionFlowWrite,
			s.flowHandler.HandleStepPutRequest), opts2))
	mux.HandleFunc(middleware.WithCORS("DELETE /flows/{id}/steps/{stepId}",
		authmw.RequirePermission(constants.PermissionFlowDelete,
			s.flowHandler.HandleStepDeleteRequest), opts2))

	mux.HandleFunc(middleware.WithCORS("POST /flows/{id}/execute",
		authmw.RequirePermission(constants.PermissionFlowExecute,
			s.flowExecHandler.HandleExecutionStartRequest), opts2))
	mux.HandleFunc(middleware.WithCORS("GET /flows/{id}/execute/{sessionToken}",
		authmw.RequirePermission(constants.PermissionFlowExecute,
			s.flowExecHandler.HandleExecutionGetRequest), opts2))
	mux.HandleFunc(middleware.WithCORS("POST /flows/{id}/execute/{sessionToken}/answer",
		authmw.RequirePermission(constants.PermissionFlowExecute,
			s.flowExecHandler.HandleAnswerSubmitRequest), opts2))
	mux.HandleFunc(middleware.WithCORS("POST /flows/{id}/execute/{sessionToken}/abandon",
		authmw.RequirePermission(constants.PermissionFlowExecute,
			s.flowExecHandler.HandleExecutionAbandonRequest), opts2))
	mux.HandleFunc(middleware.WithCORS("GET /flows/{id}/execute/{sessionToken}/summary",
		authmw.RequirePermission(constants.PermissionFlowExecute,
			s.flowExecHandler.HandleSummaryGetRequest), opts2))

	mux.HandleFunc(middleware.WithCORS("OPTIONS /flows/",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts2))
}
