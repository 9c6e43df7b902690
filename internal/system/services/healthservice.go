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

	"github.com/wikiguides/wikiguides/internal/system/healthcheck/handler"
	"github.com/wikiguides/wikiguides/internal/system/middleware"
)

// HealthService is the service for liveness and readiness checks.
type HealthService struct {
	healthCheckHandler *handler.HealthCheckHandler
}

// NewHealthService creates a new instance of HealthService.
func NewHealthService(mux *http.ServeMux) ServiceInterface {
	instance := &HealthService{
		healthCheckHandler: handler.NewHealthCheckHandler(),
	}
	instance.RegisterRoutes(mux)

	return instance
}

// RegisterRoutes registers the routes for health check operations.
func (s *HealthService) RegisterRoutes(mux *http.ServeMux) {
	opts := middleware.CORSOptions{
		AllowedMethods:   "GET",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /health/liveness",
		s.healthCheckHandler.HandleLivenessRequest, opts))
	mux.HandleFunc(middleware.WithCORS("GET /health/readiness",
		s.healthCheckHandler.HandleReadinessRequest, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /health/",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts))
}
