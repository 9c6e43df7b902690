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

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/wikiguides/wikiguides/internal/auth/constants"
	"github.com/wikiguides/wikiguides/internal/auth/model"
	"github.com/wikiguides/wikiguides/internal/system/config"
	"github.com/wikiguides/wikiguides/internal/system/error/serviceerror"
	userconst "github.com/wikiguides/wikiguides/internal/user/constants"
	usermodel "github.com/wikiguides/wikiguides/internal/user/model"
	userservice "github.com/wikiguides/wikiguides/internal/user/service"
)

type fakeUserService struct {
	users          map[string]usermodel.User
	password       string
	createErr      *serviceerror.ServiceError
	verifyErr      *serviceerror.ServiceError
	lastCreateRole userconst.Role
}

func (fus *fakeUserService) GetUserList() (*usermodel.UserListResponse, *serviceerror.ServiceError) {
	return &usermodel.UserListResponse{}, nil
}

func (fus *fakeUserService) CreateUser(
	request usermodel.CreateUserRequest,
) (usermodel.User, *serviceerror.ServiceError) {
	if fus.createErr != nil {
		return usermodel.User{}, fus.createErr
	}
	fus.lastCreateRole = request.Role
	user := usermodel.User{
		ID:       "user-" + request.Email,
		Email:    request.Email,
		FullName: request.FullName,
		Role:     request.Role,
		IsActive: true,
	}
	fus.users[user.ID] = user
	fus.password = request.Password
	return user, nil
}

func (fus *fakeUserService) GetUser(userID string) (usermodel.User, *serviceerror.ServiceError) {
	user, ok := fus.users[userID]
	if !ok {
		return usermodel.User{}, &userconst.ErrorUserNotFound
	}
	return user, nil
}

func (fus *fakeUserService) GetUserByEmail(email string) (usermodel.User, *serviceerror.ServiceError) {
	for _, user := range fus.users {
		if user.Email == email {
			return user, nil
		}
	}
	return usermodel.User{}, &userconst.ErrorUserNotFound
}

func (fus *fakeUserService) VerifyCredentials(
	email, password string,
) (usermodel.User, *serviceerror.ServiceError) {
	if fus.verifyErr != nil {
		return usermodel.User{}, fus.verifyErr
	}
	user, svcErr := fus.GetUserByEmail(email)
	if svcErr != nil {
		return usermodel.User{}, svcErr
	}
	if password != fus.password {
		return usermodel.User{}, &userconst.ErrorUserNotFound
	}
	return user, nil
}

func (fus *fakeUserService) UpdateUserRole(
	userID string, role userconst.Role,
) (usermodel.User, *serviceerror.ServiceError) {
	user, svcErr := fus.GetUser(userID)
	if svcErr != nil {
		return usermodel.User{}, svcErr
	}
	user.Role = role
	fus.users[userID] = user
	return user, nil
}

func (fus *fakeUserService) DeactivateUser(userID string) *serviceerror.ServiceError {
	delete(fus.users, userID)
	return nil
}

type fakeUserProvider struct {
	service userservice.UserServiceInterface
}

func (fup *fakeUserProvider) GetUserService() userservice.UserServiceInterface {
	return fup.service
}

type AuthServiceTestSuite struct {
	suite.Suite
	userService *fakeUserService
	service     *AuthService
	now         time.Time
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (suite *AuthServiceTestSuite) SetupSuite() {
	cfg := &config.Config{
		Auth: config.AuthConfig{
			TokenSecret:         "test-secret",
			TokenValidityPeriod: 3600,
			Issuer:              "wikiguides",
		},
	}
	_ = config.InitializeWikiGuidesRuntime("/tmp", cfg)
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.userService = &fakeUserService{users: make(map[string]usermodel.User)}
	suite.now = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	suite.service = &AuthService{
		userProvider: &fakeUserProvider{service: suite.userService},
		now:          func() time.Time { return suite.now },
	}
}

func (suite *AuthServiceTestSuite) TestRegisterAssignsDefaultRole() {
	response, svcErr := suite.service.Register(model.RegisterRequest{
		Email:       "new@example.com",
		Password:    "secret123",
		DisplayName: "New User",
	})
	assert.Nil(suite.T(), svcErr)
	assert.NotEmpty(suite.T(), response.Token)
	assert.Equal(suite.T(), "Bearer", response.TokenType)
	assert.Equal(suite.T(), int64(3600), response.ExpiresIn)
	assert.Equal(suite.T(), userconst.DefaultRole, suite.userService.lastCreateRole)
}

func (suite *AuthServiceTestSuite) TestRegisterMissingFields() {
	for _, request := range []model.RegisterRequest{
		{Email: "", Password: "secret123"},
		{Email: "new@example.com", Password: " "},
	} {
		response, svcErr := suite.service.Register(request)
		assert.Nil(suite.T(), response)
		assert.Equal(suite.T(), constants.ErrorInvalidRequestFormat.Code, svcErr.Code)
	}
}

func (suite *AuthServiceTestSuite) TestRegisterPropagatesConflict() {
	suite.userService.createErr = &userconst.ErrorEmailConflict

	response, svcErr := suite.service.Register(model.RegisterRequest{
		Email:    "taken@example.com",
		Password: "secret123",
	})
	assert.Nil(suite.T(), response)
	assert.Equal(suite.T(), userconst.ErrorEmailConflict.Code, svcErr.Code)
}

func (suite *AuthServiceTestSuite) TestLoginRoundTrip() {
	_, svcErr := suite.service.Register(model.RegisterRequest{
		Email:    "user@example.com",
		Password: "secret123",
	})
	suite.Require().Nil(svcErr)

	response, svcErr := suite.service.Login(model.LoginRequest{
		Email:    "user@example.com",
		Password: "secret123",
	})
	assert.Nil(suite.T(), svcErr)

	principal, svcErr := suite.service.Authenticate(response.Token)
	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), response.UserID, principal.UserID)
	assert.Equal(suite.T(), userconst.DefaultRole, principal.Role)
}

func (suite *AuthServiceTestSuite) TestLoginWrongPasswordMasked() {
	_, svcErr := suite.service.Register(model.RegisterRequest{
		Email:    "user@example.com",
		Password: "secret123",
	})
	suite.Require().Nil(svcErr)

	response, svcErr := suite.service.Login(model.LoginRequest{
		Email:    "user@example.com",
		Password: "wrong",
	})
	assert.Nil(suite.T(), response)
	assert.Equal(suite.T(), constants.ErrorInvalidCredentials.Code, svcErr.Code)
}

func (suite *AuthServiceTestSuite) TestLoginUnknownEmailMasked() {
	response, svcErr := suite.service.Login(model.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	assert.Nil(suite.T(), response)
	assert.Equal(suite.T(), constants.ErrorInvalidCredentials.Code, svcErr.Code)
}

func (suite *AuthServiceTestSuite) TestLoginServerErrorNotMasked() {
	suite.userService.verifyErr = &userconst.ErrorInternalServerError

	response, svcErr := suite.service.Login(model.LoginRequest{
		Email:    "user@example.com",
		Password: "secret123",
	})
	assert.Nil(suite.T(), response)
	assert.Equal(suite.T(), userconst.ErrorInternalServerError.Code, svcErr.Code)
}

func (suite *AuthServiceTestSuite) TestAuthenticateExpiredToken() {
	response, svcErr := suite.service.Register(model.RegisterRequest{
		Email:    "user@example.com",
		Password: "secret123",
	})
	suite.Require().Nil(svcErr)

	suite.now = suite.now.Add(2 * time.Hour)
	principal, svcErr := suite.service.Authenticate(response.Token)
	assert.Nil(suite.T(), principal)
	assert.Equal(suite.T(), constants.ErrorTokenExpired.Code, svcErr.Code)
}

func (suite *AuthServiceTestSuite) TestGetAuthenticatedUser() {
	response, svcErr := suite.service.Register(model.RegisterRequest{
		Email:    "user@example.com",
		Password: "secret123",
	})
	suite.Require().Nil(svcErr)

	user, svcErr := suite.service.GetAuthenticatedUser(&model.Principal{UserID: response.UserID})
	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), "user@example.com", user.Email)

	_, svcErr = suite.service.GetAuthenticatedUser(nil)
	assert.Equal(suite.T(), constants.ErrorUnauthenticated.Code, svcErr.Code)
}

func (suite *AuthServiceTestSuite) TestCheckPermission() {
	admin := &model.Principal{UserID: "user-1", Role: userconst.RoleAdmin}
	assert.True(suite.T(), suite.service.CheckPermission(admin, constants.PermissionAdminAccess))

	viewer := &model.Principal{UserID: "user-2", Role: userconst.RoleViewer}
	assert.False(suite.T(), suite.service.CheckPermission(viewer, constants.PermissionWikiWrite))

	// Anonymous requests carry viewer permissions.
	assert.True(suite.T(), suite.service.CheckPermission(nil, constants.PermissionWikiRead))
	assert.False(suite.T(), suite.service.CheckPermission(nil, constants.PermissionUserManage))
}
