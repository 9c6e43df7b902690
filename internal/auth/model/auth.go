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

// Package model defines the data structures for authentication operations.
package model

import (
	"context"

	userconst "github.com/wikiguides/wikiguides/internal/user/constants"
)

// Principal represents the authenticated identity attached to a request context.
type Principal struct {
	UserID string
	Role   userconst.Role
}

type principalContextKey struct{}

// ContextWithPrincipal returns a copy of ctx carrying the given principal.
func ContextWithPrincipal(ctx context.Context, principal *Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, principal)
}

// PrincipalFromContext returns the principal attached to ctx, or nil for
// anonymous requests.
func PrincipalFromContext(ctx context.Context) *Principal {
	principal, ok := ctx.Value(principalContextKey{}).(*Principal)
	if !ok {
		return nil
	}
	return principal
}

// RegisterRequest represents a self-registration request.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

// LoginRequest represents a credential login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse represents a successful login or registration response.
type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType"`
	ExpiresIn int64  `json:"expiresIn"`
	UserID    string `json:"userId"`
	Role      string `json:"role"`
}

// TokenClaims represents the signed payload of an authentication token.
type TokenClaims struct {
	Subject   string `json:"sub"`
	Role      string `json:"role"`
	Issuer    string `json:"iss"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}
