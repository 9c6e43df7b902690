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

// Package store provides the implementation for user persistence operations.
package store

import (
	"errors"
	"fmt"
	"time"

	dbmodel "github.com/wikiguides/wikiguides/internal/system/database/model"
	"github.com/wikiguides/wikiguides/internal/system/database/provider"
	"github.com/wikiguides/wikiguides/internal/system/log"
	"github.com/wikiguides/wikiguides/internal/user/constants"
	"github.com/wikiguides/wikiguides/internal/user/model"
)

const loggerComponentName = "UserStore"

// GetUserListCount retrieves the total count of users.
func GetUserListCount() (int, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := provider.NewDBProvider().GetDBClient("identity")
	if err != nil {
		return 0, fmt.Errorf("failed to get database client: %w", err)
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	results, err := dbClient.Query(QueryGetUserListCount)
	if err != nil {
		return 0, fmt.Errorf("failed to execute count query: %w", err)
	}

	var total int
	if len(results) > 0 {
		if count, ok := results[0]["total"].(int64); ok {
			total = int(count)
		} else {
			return 0, fmt.Errorf("unexpected type for total: %T", results[0]["total"])
		}
	}

	return total, nil
}

// GetUserList retrieves users ordered by full name.
func GetUserList() ([]model.User, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := provider.NewDBProvider().GetDBClient("identity")
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	results, err := dbClient.Query(QueryGetUserList)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	users := make([]model.User, 0, len(results))
	for _, row := range results {
		user, err := buildUserFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build user: %w", err)
		}
		users = append(users, user)
	}

	return users, nil
}

// CreateUser creates a new user with the given credential.
func CreateUser(user model.User, credential model.Credential) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := provider.NewDBProvider().GetDBClient("identity")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	_, err = dbClient.Execute(
		QueryCreateUser,
		user.ID,
		user.Email,
		user.FullName,
		string(user.Role),
		user.Department,
		user.IsActive,
		credential.Hash,
		credential.Salt,
	)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// GetUser retrieves a user by id. Returns constants.ErrUserNotFound when no
// user exists with the given id.
func GetUser(userID string) (model.User, error) {
	return getUserByQuery(QueryGetUserByID, userID)
}

// GetUserByEmail retrieves a user by email.
func GetUserByEmail(email string) (model.User, error) {
	return getUserByQuery(QueryGetUserByEmail, email)
}

// GetUserCredentialByEmail retrieves the stored credential of an active user.
func GetUserCredentialByEmail(email string) (string, model.Credential, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := provider.NewDBProvider().GetDBClient("identity")
	if err != nil {
		return "", model.Credential{}, fmt.Errorf("failed to get database client: %w", err)
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	results, err := dbClient.Query(QueryGetUserCredentialByEmail, email, true)
	if err != nil {
		return "", model.Credential{}, fmt.Errorf("failed to execute query: %w", err)
	}

	if len(results) == 0 {
		return "", model.Credential{}, constants.ErrUserNotFound
	}

	row := results[0]
	userID, ok := row["user_id"].(string)
	if !ok {
		return "", model.Credential{}, errors.New("failed to parse user_id as string")
	}
	hash, ok := row["password_hash"].(string)
	if !ok {
		return "", model.Credential{}, errors.New("failed to parse password_hash as string")
	}
	salt, ok := row["password_salt"].(string)
	if !ok {
		return "", model.Credential{}, errors.New("failed to parse password_salt as string")
	}

	return userID, model.Credential{Hash: hash, Salt: salt}, nil
}

// UpdateUserRole updates a user's role.
func UpdateUserRole(userID string, role constants.Role) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := provider.NewDBProvider().GetDBClient("identity")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	rowsAffected, err := dbClient.Execute(QueryUpdateUserRole, userID, string(role))
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return constants.ErrUserNotFound
	}

	return nil
}

// DeactivateUser deactivates a user.
func DeactivateUser(userID string) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := provider.NewDBProvider().GetDBClient("identity")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	rowsAffected, err := dbClient.Execute(QueryDeactivateUser, userID, false)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return constants.ErrUserNotFound
	}

	return nil
}

// getUserByQuery retrieves a single user with the given query and argument.
func getUserByQuery(query dbmodel.DBQuery, arg string) (model.User, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := provider.NewDBProvider().GetDBClient("identity")
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get database client: %w", err)
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	results, err := dbClient.Query(query, arg)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to execute query: %w", err)
	}

	if len(results) == 0 {
		return model.User{}, constants.ErrUserNotFound
	}
	if len(results) != 1 {
		return model.User{}, fmt.Errorf("unexpected number of results: %d", len(results))
	}

	return buildUserFromResultRow(results[0])
}

// buildUserFromResultRow builds a user model from a database result row.
func buildUserFromResultRow(row map[string]interface{}) (model.User, error) {
	userID, ok := row["user_id"].(string)
	if !ok {
		return model.User{}, errors.New("failed to parse user_id as string")
	}
	email, ok := row["email"].(string)
	if !ok {
		return model.User{}, errors.New("failed to parse email as string")
	}
	role, ok := row["role"].(string)
	if !ok {
		return model.User{}, errors.New("failed to parse role as string")
	}

	fullName := ""
	if fn := parseOptionalString(row["full_name"]); fn != nil {
		fullName = *fn
	}

	return model.User{
		ID:         userID,
		Email:      email,
		FullName:   fullName,
		Role:       constants.Role(role),
		Department: parseOptionalString(row["department_id"]),
		IsActive:   parseBoolean(row["is_active"]),
		CreatedAt:  parseTime(row["created_at"]),
		UpdatedAt:  parseTime(row["updated_at"]),
	}, nil
}

// parseOptionalString safely parses an optional string field from the database row.
func parseOptionalString(value interface{}) *string {
	if value == nil {
		return nil
	}
	if str, ok := value.(string); ok {
		return &str
	}
	return nil
}

// parseBoolean safely parses a boolean field from the database row with type conversion support.
func parseBoolean(value interface{}) bool {
	if value == nil {
		return false
	}
	if boolVal, ok := value.(bool); ok {
		return boolVal
	}
	if intVal, ok := value.(int64); ok {
		return intVal != 0
	}
	return false
}

// parseTime safely parses a timestamp field from the database row.
func parseTime(value interface{}) time.Time {
	switch v := value.(type) {
	case time.Time:
		return v
	case string:
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05"} {
			if t, err := time.Parse(layout, v); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}
