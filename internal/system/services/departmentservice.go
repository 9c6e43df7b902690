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
	"github.com/wikiguides/wikiguides/internal/department/handler"
	"github.com/wikiguides/wikiguides/internal/system/middleware"
)

// DepartmentService is the service for department management operations.
type DepartmentService struct {
	departmentHandler *handler.DepartmentHandler
}

// NewDepartmentService creates a new instance of DepartmentService.
func NewDepartmentService(mux *http.ServeMux) ServiceInterface {
	instance := &DepartmentService{
		departmentHandler: handler.NewDepartmentHandler(),
	}
	instance.RegisterRoutes(mux)

	return instance
}

// RegisterRoutes registers the routes for department management operations.
func (s *DepartmentService) RegisterRoutes(mux *http.ServeMux) {
	opts1 := middleware.CORSOptions{
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /departments",
		authmw.WithAuthentication(s.departmentHandler.HandleDepartmentListRequest), opts1))
	mux.HandleFunc(middleware.WithCORS("POST /departments",
		authmw.RequirePermission(constants.PermissionUserManage,
			s.departmentHandler.HandleDepartmentPostRequest), opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /departments",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "GET, PUT, DELETE",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /departments/{id}",
		authmw.WithAuthentication(s.departmentHandler.HandleDepartmentGetRequest), opts2))
	mux.HandleFunc(middleware.WithCORS("PUT /departments/{id}",
		authmw.RequirePermission(constants.PermissionUserManage,
			s.departmentHandler.HandleDepartmentPutRequest), opts2))
	mux.HandleFunc(middleware.WithCORS("DELETE /departments/{id}",
		authmw.RequirePermission(constants.PermissionUserManage,
			s.departmentHandler.HandleDepartmentDeleteRequest), opts2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /departments/",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts2))
}
