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

// Package middleware provides request authentication and authorization middleware.
package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/wikiguides/wikiguides/internal/auth/constants"
	"github.com/wikiguides/wikiguides/internal/auth/model"
	"github.com/wikiguides/wikiguides/internal/auth/service"
	serverconst "github.com/wikiguides/wikiguides/internal/system/constants"
	"github.com/wikiguides/wikiguides/internal/system/error/apierror"
	"github.com/wikiguides/wikiguides/internal/system/error/serviceerror"
	"github.com/wikiguides/wikiguides/internal/system/log"
)

const loggerComponentName = "AuthMiddleware"

// WithAuthentication resolves the bearer token on the request, if any, and
// attaches the resulting principal to the request context. Requests without
// a token proceed anonymously; requests with an invalid token are rejected.
func WithAuthentication(next http.HandlerFunc) http.HandlerFunc {
	authService := service.GetAuthService()

	return func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			next(w, r)
			return
		}

		principal, svcErr := authService.Authenticate(token)
		if svcErr != nil {
			writeAuthError(w, svcErr)
			return
		}

		next(w, r.WithContext(model.ContextWithPrincipal(r.Context(), principal)))
	}
}

// RequirePermission wraps a handler with authentication and a permission
// check. Anonymous requests are evaluated with viewer permissions.
func RequirePermission(permission constants.Permission, next http.HandlerFunc) http.HandlerFunc {
	authService := service.GetAuthService()

	return WithAuthentication(func(w http.ResponseWriter, r *http.Request) {
		principal := model.PrincipalFromContext(r.Context())
		if !authService.CheckPermission(principal, permission) {
			logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
			logger.Debug("Permission denied", log.String("permission", string(permission)))

			if principal == nil {
				writeAuthError(w, &constants.ErrorUnauthenticated)
				return
			}
			writeAuthError(w, &constants.ErrorForbidden)
			return
		}

		next(w, r)
	})
}

func extractBearerToken(r *http.Request) string {
	authHeader := r.Header.Get(serverconst.AuthorizationHeaderName)
	if authHeader == "" {
		return ""
	}
	if !strings.HasPrefix(authHeader, serverconst.TokenTypeBearer+" ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, serverconst.TokenTypeBearer+" "))
}

func writeAuthError(w http.ResponseWriter, svcErr *serviceerror.ServiceError) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)

	statusCode := http.StatusUnauthorized
	if svcErr.Code == constants.ErrorForbidden.Code {
		statusCode = http.StatusForbidden
	}
	w.WriteHeader(statusCode)

	errResp := apierror.ErrorResponse{
		Code:        svcErr.Code,
		Message:     svcErr.Error,
		Description: svcErr.ErrorDescription,
	}

	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
		logger.Error("Error encoding error response", log.Error(err))
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}
