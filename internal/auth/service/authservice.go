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

// Package service provides the implementation for authentication operations.
package service

import (
	"strings"
	"time"

	"github.com/wikiguides/wikiguides/internal/auth/constants"
	"github.com/wikiguides/wikiguides/internal/auth/model"
	"github.com/wikiguides/wikiguides/internal/system/config"
	serverconst "github.com/wikiguides/wikiguides/internal/system/constants"
	"github.com/wikiguides/wikiguides/internal/system/error/serviceerror"
	"github.com/wikiguides/wikiguides/internal/system/log"
	userconst "github.com/wikiguides/wikiguides/internal/user/constants"
	usermodel "github.com/wikiguides/wikiguides/internal/user/model"
	userprovider "github.com/wikiguides/wikiguides/internal/user/provider"
)

const loggerComponentName = "AuthService"

// AuthServiceInterface defines the interface for authentication operations.
type AuthServiceInterface interface {
	Register(request model.RegisterRequest) (*model.TokenResponse, *serviceerror.ServiceError)
	Login(request model.LoginRequest) (*model.TokenResponse, *serviceerror.ServiceError)
	Authenticate(token string) (*model.Principal, *serviceerror.ServiceError)
	GetAuthenticatedUser(principal *model.Principal) (usermodel.User, *serviceerror.ServiceError)
	CheckPermission(principal *model.Principal, permission constants.Permission) bool
}

// AuthService provides authentication operations backed by signed tokens.
type AuthService struct {
	userProvider userprovider.UserProviderInterface
	now          func() time.Time
}

// GetAuthService creates a new instance of AuthService.
func GetAuthService() AuthServiceInterface {
	return &AuthService{
		userProvider: userprovider.NewUserProvider(),
		now:          time.Now,
	}
}

// Register creates a new user with the default role and returns a signed token.
func (as *AuthService) Register(
	request model.RegisterRequest,
) (*model.TokenResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(request.Email) == "" || strings.TrimSpace(request.Password) == "" {
		return nil, &constants.ErrorInvalidRequestFormat
	}

	userService := as.userProvider.GetUserService()
	user, svcErr := userService.CreateUser(usermodel.CreateUserRequest{
		Email:    request.Email,
		Password: request.Password,
		FullName: request.DisplayName,
		Role:     userconst.DefaultRole,
	})
	if svcErr != nil {
		return nil, svcErr
	}

	logger.Debug("Registered new user", log.String("userID", user.ID))
	return as.issueToken(user)
}

// Login verifies the given credentials and returns a signed token.
func (as *AuthService) Login(
	request model.LoginRequest,
) (*model.TokenResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(request.Email) == "" || strings.TrimSpace(request.Password) == "" {
		return nil, &constants.ErrorInvalidRequestFormat
	}

	userService := as.userProvider.GetUserService()
	user, svcErr := userService.VerifyCredentials(request.Email, request.Password)
	if svcErr != nil {
		if svcErr.IsClientError() {
			// Do not reveal whether the email exists.
			return nil, &constants.ErrorInvalidCredentials
		}
		return nil, svcErr
	}

	logger.Debug("User logged in", log.String("userID", user.ID))
	return as.issueToken(user)
}

// Authenticate verifies a signed token and returns the principal it carries.
func (as *AuthService) Authenticate(token string) (*model.Principal, *serviceerror.ServiceError) {
	claims, svcErr := verifyToken(token, as.now())
	if svcErr != nil {
		return nil, svcErr
	}

	return &model.Principal{
		UserID: claims.Subject,
		Role:   userconst.Role(claims.Role),
	}, nil
}

// GetAuthenticatedUser returns the user record for the given principal.
func (as *AuthService) GetAuthenticatedUser(
	principal *model.Principal,
) (usermodel.User, *serviceerror.ServiceError) {
	if principal == nil {
		return usermodel.User{}, &constants.ErrorUnauthenticated
	}
	return as.userProvider.GetUserService().GetUser(principal.UserID)
}

// CheckPermission returns whether the principal's role grants the permission.
// A nil principal is treated as an anonymous viewer.
func (as *AuthService) CheckPermission(
	principal *model.Principal, permission constants.Permission,
) bool {
	role := userconst.RoleViewer
	if principal != nil {
		role = principal.Role
	}
	return constants.RoleHasPermission(role, permission)
}

func (as *AuthService) issueToken(user usermodel.User) (*model.TokenResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	authConfig := config.GetWikiGuidesRuntime().Config.Auth
	issuedAt := as.now()
	token, err := signToken(model.TokenClaims{
		Subject:   user.ID,
		Role:      string(user.Role),
		Issuer:    authConfig.Issuer,
		IssuedAt:  issuedAt.Unix(),
		ExpiresAt: issuedAt.Unix() + authConfig.TokenValidityPeriod,
	})
	if err != nil {
		logger.Error("Failed to sign token", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	return &model.TokenResponse{
		Token:     token,
		TokenType: serverconst.TokenTypeBearer,
		ExpiresIn: authConfig.TokenValidityPeriod,
		UserID:    user.ID,
		Role:      string(user.Role),
	}, nil
}
