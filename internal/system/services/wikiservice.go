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
	"github.com/wikiguides/wikiguides/internal/wiki/handler"
)

// WikiService is the service for wiki content operations.
type WikiService struct {
	wikiHandler *handler.WikiHandler
}

// NewWikiService creates a new instance of WikiService.
func NewWikiService(mux *http.ServeMux) ServiceInterface {
	instance := &WikiService{
		wikiHandler: handler.NewWikiHandler(),
	}
	instance.RegisterRoutes(mux)

	return instance
}

// RegisterRoutes registers the routes for wiki content operations.
func (s *WikiService) RegisterRoutes(mux *http.ServeMux) {
	opts1 := middleware.CORSOptions{
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /articles",
		authmw.RequirePermission(constants.PermissionWikiRead,
			s.wikiHandler.HandleArticleListRequest), opts1))
	mux.HandleFunc(middleware.WithCORS("POST /articles",
		authmw.RequirePermission(constants.PermissionWikiWrite,
			s.wikiHandler.HandleArticlePostRequest), opts1))
	mux.HandleFunc(middleware.WithCORS("GET /articles/search",
		authmw.RequirePermission(constants.PermissionWikiRead,
			s.wikiHandler.HandleArticleSearchRequest), opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /articles",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "GET, PUT, DELETE",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /articles/{id}",
		authmw.RequirePermission(constants.PermissionWikiRead,
			s.wikiHandler.HandleArticleGetRequest), opts2))
	mux.HandleFunc(middleware.WithCORS("PUT /articles/{id}",
		authmw.RequirePermission(constants.PermissionWikiWrite,
			s.wikiHandler.HandleArticlePutRequest), opts2))
	mux.HandleFunc(middleware.WithCORS("DELETE /articles/{id}",
		authmw.RequirePermission(constants.PermissionWikiDelete,
			s.wikiHandler.HandleArticleDeleteRequest), opts2))
	mux.HandleFunc(middleware.WithCORS("GET /articles/{id}/versions",
		authmw.RequirePermission(constants.PermissionWikiRead,
			s.wikiHandler.HandleArticleVersionsRequest), opts2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /articles/",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts2))

	mux.HandleFunc(middleware.WithCORS("GET /categories",
		authmw.RequirePermission(constants.PermissionWikiRead,
			s.wikiHandler.HandleCategoryListRequest), opts1))
	mux.HandleFunc(middleware.WithCORS("POST /categories",
		authmw.RequirePermission(constants.PermissionWikiWrite,
			s.wikiHandler.HandleCategoryPostRequest), opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /categories",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts1))
	mux.HandleFunc(middleware.WithCORS("GET /categories/{id}",
		authmw.RequirePermission(constants.PermissionWikiRead,
			s.wikiHandler.HandleCategoryGetRequest), opts2))
	mux.HandleFunc(middleware.WithCORS("PUT /categories/{id}",
		authmw.RequirePermission(constants.PermissionWikiWrite,
			s.wikiHandler.HandleCategoryPutRequest), opts2))
	mux.HandleFunc(middleware.WithCORS("DELETE /categories/{id}",
		authmw.RequirePermission(constants.PermissionWikiDelete,
			s.wikiHandler.HandleCategoryDeleteRequest), opts2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /categories/",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts2))

	mux.HandleFunc(middleware.WithCORS("GET /subcategories",
		authmw.RequirePermission(constants.PermissionWikiRead,
			s.wikiHandler.HandleSubcategoryListRequest), opts1))
	mux.HandleFunc(middleware.WithCORS("POST /subcategories",
		authmw.RequirePermission(constants.PermissionWikiWrite,
			s.wikiHandler.HandleSubcategoryPostRequest), opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /subcategories",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts1))
	mux.HandleFunc(middleware.WithCORS("GET /subcategories/{id}",
		authmw.RequirePermission(constants.PermissionWikiRead,
			s.wikiHandler.HandleSubcategoryGetRequest), opts2))
	mux.HandleFunc(middleware.WithCORS("PUT /subcategories/{id}",
		authmw.RequirePermission(constants.PermissionWikiWrite,
			s.wikiHandler.HandleSubcategoryPutRequest), opts2))
	mux.HandleFunc(middleware.WithCORS("DELETE /subcategories/{id}",
		authmw.RequirePermission(constants.PermissionWikiDelete,
			s.wikiHandler.HandleSubcategoryDeleteRequest), opts2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /subcategories/",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts2))
}
