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

// Package service provides the implementation for user management operations.
package service

import (
	"errors"
	"strings"

	"github.com/wikiguides/wikiguides/internal/system/crypto/hash"
	"github.com/wikiguides/wikiguides/internal/system/error/serviceerror"
	"github.com/wikiguides/wikiguides/internal/system/log"
	"github.com/wikiguides/wikiguides/internal/system/utils"
	"github.com/wikiguides/wikiguides/internal/user/constants"
	"github.com/wikiguides/wikiguides/internal/user/model"
	"github.com/wikiguides/wikiguides/internal/user/store"
)

const loggerComponentName = "UserService"

// UserServiceInterface defines the interface for user management operations.
type UserServiceInterface interface {
	GetUserList() (*model.UserListResponse, *serviceerror.ServiceError)
	CreateUser(request model.CreateUserRequest) (model.User, *serviceerror.ServiceError)
	GetUser(userID string) (model.User, *serviceerror.ServiceError)
	GetUserByEmail(email string) (model.User, *serviceerror.ServiceError)
	VerifyCredentials(email, password string) (model.User, *serviceerror.ServiceError)
	UpdateUserRole(userID string, role constants.Role) (model.User, *serviceerror.ServiceError)
	DeactivateUser(userID string) *serviceerror.ServiceError
}

// UserService provides user management operations.
type UserService struct{}

// GetUserService creates a new instance of UserService.
func GetUserService() UserServiceInterface {
	return &UserService{}
}

// GetUserList retrieves all users.
func (us *UserService) GetUserList() (*model.UserListResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	users, err := store.GetUserList()
	if err != nil {
		logger.Error("Failed to list users", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	return &model.UserListResponse{
		TotalResults: len(users),
		Count:        len(users),
		Users:        users,
	}, nil
}

// CreateUser creates a new user with a salted password hash.
func (us *UserService) CreateUser(request model.CreateUserRequest) (model.User, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	logger.Debug("Creating user", log.String("email", log.MaskString(request.Email)))

	if strings.TrimSpace(request.Email) == "" || strings.TrimSpace(request.Password) == "" {
		return model.User{}, &constants.ErrorInvalidRequestFormat
	}

	role := request.Role
	if role == "" {
		role = constants.DefaultRole
	}
	if !constants.IsValidRole(role) {
		return model.User{}, &constants.ErrorInvalidRole
	}

	if _, err := store.GetUserByEmail(request.Email); err == nil {
		return model.User{}, &constants.ErrorEmailConflict
	} else if !errors.Is(err, constants.ErrUserNotFound) {
		logger.Error("Failed to check email conflict", log.Error(err))
		return model.User{}, &constants.ErrorInternalServerError
	}

	salt, err := hash.GenerateSalt()
	if err != nil {
		logger.Error("Failed to generate salt", log.Error(err))
		return model.User{}, &constants.ErrorInternalServerError
	}
	passwordHash, err := hash.HashStringWithSalt(request.Password, salt)
	if err != nil {
		logger.Error("Failed to hash password", log.Error(err))
		return model.User{}, &constants.ErrorInternalServerError
	}

	user := model.User{
		ID:         utils.GenerateUUID(),
		Email:      request.Email,
		FullName:   request.FullName,
		Role:       role,
		Department: request.Department,
		IsActive:   true,
	}

	if err := store.CreateUser(user, model.Credential{Hash: passwordHash, Salt: salt}); err != nil {
		logger.Error("Failed to create user", log.Error(err))
		return model.User{}, &constants.ErrorInternalServerError
	}

	logger.Debug("Successfully created user", log.String("userID", user.ID))
	return user, nil
}

// GetUser retrieves a user by ID.
func (us *UserService) GetUser(userID string) (model.User, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	user, err := store.GetUser(userID)
	if err != nil {
		if errors.Is(err, constants.ErrUserNotFound) {
			return model.User{}, &constants.ErrorUserNotFound
		}
		logger.Error("Failed to get user", log.Error(err))
		return model.User{}, &constants.ErrorInternalServerError
	}

	return user, nil
}

// GetUserByEmail retrieves a user by email.
func (us *UserService) GetUserByEmail(email string) (model.User, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	user, err := store.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, constants.ErrUserNotFound) {
			return model.User{}, &constants.ErrorUserNotFound
		}
		logger.Error("Failed to get user by email", log.Error(err))
		return model.User{}, &constants.ErrorInternalServerError
	}

	return user, nil
}

// VerifyCredentials checks an email and password pair against the stored
// salted hash and returns the matching active user.
func (us *UserService) VerifyCredentials(email, password string) (model.User, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	userID, credential, err := store.GetUserCredentialByEmail(email)
	if err != nil {
		if errors.Is(err, constants.ErrUserNotFound) {
			return model.User{}, &constants.ErrorUserNotFound
		}
		logger.Error("Failed to get user credential", log.Error(err))
		return model.User{}, &constants.ErrorInternalServerError
	}

	computed, err := hash.HashStringWithSalt(password, credential.Salt)
	if err != nil {
		logger.Error("Failed to hash password", log.Error(err))
		return model.User{}, &constants.ErrorInternalServerError
	}
	if computed != credential.Hash {
		return model.User{}, &constants.ErrorUserNotFound
	}

	return us.GetUser(userID)
}

// UpdateUserRole updates a user's role.
func (us *UserService) UpdateUserRole(
	userID string, role constants.Role,
) (model.User, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	logger.Debug("Updating user role", log.String("userID", userID), log.String("role", string(role)))

	if !constants.IsValidRole(role) {
		return model.User{}, &constants.ErrorInvalidRole
	}

	if err := store.UpdateUserRole(userID, role); err != nil {
		if errors.Is(err, constants.ErrUserNotFound) {
			return model.User{}, &constants.ErrorUserNotFound
		}
		logger.Error("Failed to update user role", log.Error(err))
		return model.User{}, &constants.ErrorInternalServerError
	}

	return us.GetUser(userID)
}

// DeactivateUser deactivates a user. Deactivated users keep their records but
// can no longer authenticate.
func (us *UserService) DeactivateUser(userID string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	logger.Debug("Deactivating user", log.String("userID", userID))

	if err := store.DeactivateUser(userID); err != nil {
		if errors.Is(err, constants.ErrUserNotFound) {
			return &constants.ErrorUserNotFound
		}
		logger.Error("Failed to deactivate user", log.Error(err))
		return &constants.ErrorInternalServerError
	}

	return nil
}
