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

	"github.com/wikiguides/wikiguides/internal/admin/handler"
	"github.com/wikiguides/wikiguides/internal/auth/constants"
	authmw "github.com/wikiguides/wikiguides/internal/auth/middleware"
	"github.com/wikiguides/wikiguides/internal/system/middleware"
)

// AdminService is the service for administrative operations.
type AdminService struct {
	adminHandler *handler.AdminHandler
}

// NewAdminService creates a new instance of AdminService.
func NewAdminService(mux *http.ServeMux) ServiceInterface {
	instance := &AdminService{
		adminHandler: handler.NewAdminHandler(),
	}
	instance.RegisterRoutes(mux)

	return instance
}

// RegisterRoutes registers the routes for administrative operations.
func (s *AdminService) RegisterRoutes(mux *http.ServeMux) {
	opts1 := middleware.CORSOptions{
		AllowedMethods:   "GET",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /admin/analytics",
		authmw.RequirePermission(constants.PermissionAdminAccess,
			s.adminHandler.HandleAnalyticsRequest), opts1))
	mux.HandleFunc(middleware.WithCORS("GET /admin/activity",
		authmw.RequirePermission(constants.PermissionAdminAccess,
			s.adminHandler.HandleActivityRequest), opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "GET, PUT",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /admin/settings",
		authmw.RequirePermission(constants.PermissionAdminAccess,
			s.adminHandler.HandleSettingsGetRequest), opts2))
	mux.HandleFunc(middleware.WithCORS("PUT /admin/settings",
		authmw.RequirePermission(constants.PermissionAdminAccess,
			s.adminHandler.HandleSettingsPutRequest), opts2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /admin/",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts2))
}
