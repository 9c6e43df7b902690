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
	"github.com/wikiguides/wikiguides/internal/system/middleware"
	"github.com/wikiguides/wikiguides/internal/user/handler"
)

// UserService is the service for user management operations.
type UserService struct {
	userHandler *handler.UserHandler
}

// NewUserService creates a new instance of UserService.
func NewUserService(mux *http.ServeMux) ServiceInterface {
	instance := &UserService{
		userHandler: handler.NewUserHandler(),
	}
	instance.RegisterRoutes(mux)

	return instance
}

// RegisterRoutes registers the routes for user management operations.
func (s *UserService) RegisterRoutes(mux *http.ServeMux) {
	opts1 := middleware.CORSOptions{
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /users",
		authmw.RequirePermission(constants.PermissionUserManage, s.userHandler.HandleUserListRequest), opts1))
	mux.HandleFunc(middleware.WithCORS("POST /users",
		authmw.RequirePermission(constants.PermissionUserManage, s.userHandler.HandleUserPostRequest), opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /users",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "GET, PATCH, DELETE",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /users/{id}",
		authmw.RequirePermission(constants.PermissionUserManage, s.userHandler.HandleUserGetRequest), opts2))
	mux.HandleFunc(middleware.WithCORS("PATCH /users/{id}/role",
		authmw.RequirePermission(constants.PermissionUserManage, s.userHandler.HandleUserRolePutRequest), opts2))
	mux.HandleFunc(middleware.WithCORS("DELETE /users/{id}",
		authmw.RequirePermission(constants.PermissionUserManage, s.userHandler.HandleUserDeleteRequest), opts2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /users/",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts2))
}
