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

// Package seeder provides initial data seeding for the server databases.
package seeder

import (
	"github.com/wikiguides/wikiguides/internal/system/crypto/hash"
	"github.com/wikiguides/wikiguides/internal/system/database/client"
	"github.com/wikiguides/wikiguides/internal/system/database/model"
	"github.com/wikiguides/wikiguides/internal/system/log"
)

// SeederInterface defines the contract for database data seeding.
type SeederInterface interface {
	SeedInitialData() error
}

// DBSeeder implements SeederInterface for database data seeding.
type DBSeeder struct {
	dbClient client.DBClientInterface
}

// NewDBSeeder creates a new instance of DBSeeder.
func NewDBSeeder(dbClient client.DBClientInterface) SeederInterface {
	return &DBSeeder{
		dbClient: dbClient,
	}
}

// SeedInitialData seeds the initial data into the database.
func (s *DBSeeder) SeedInitialData() error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DBSeeder"))
	logger.Info("Starting database seeding process")

	data := getSeedData()

	// Seed departments first as they are referenced by users.
	if err := s.seedDepartments(data.Departments); err != nil {
		logger.Error("Failed to seed departments", log.Error(err))
		return err
	}

	if err := s.seedUsers(data.Users); err != nil {
		logger.Error("Failed to seed users", log.Error(err))
		return err
	}

	if err := s.seedCategories(data.Categories); err != nil {
		logger.Error("Failed to seed wiki categories", log.Error(err))
		return err
	}

	if err := s.seedSubcategories(data.Subcategories); err != nil {
		logger.Error("Failed to seed wiki subcategories", log.Error(err))
		return err
	}

	if err := s.seedSettings(data.Settings); err != nil {
		logger.Error("Failed to seed system settings", log.Error(err))
		return err
	}

	logger.Info("Database seeding process completed successfully")
	return nil
}

// seedDepartments seeds department data.
func (s *DBSeeder) seedDepartments(departments []DepartmentData) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DBSeeder"))

	for _, dept := range departments {
		query := model.DBQuery{
			ID:            "SEED_INSERT_DEPARTMENT",
			SQLiteQuery:   "INSERT OR IGNORE INTO DEPARTMENT (DEPT_ID, NAME, DESCRIPTION, PARENT_ID) VALUES (?, ?, ?, ?)",
			PostgresQuery: "INSERT INTO DEPARTMENT (DEPT_ID, NAME, DESCRIPTION, PARENT_ID) VALUES ($1, $2, $3, $4) ON CONFLICT (DEPT_ID) DO NOTHING",
		}

		_, err := s.dbClient.Execute(query, dept.DeptID, dept.Name, dept.Description, dept.ParentID)
		if err != nil {
			logger.Error("Failed to insert department", log.String("dept_id", dept.DeptID), log.Error(err))
			return err
		}
		logger.Debug("Seeded department", log.String("dept_id", dept.DeptID), log.String("name", dept.Name))
	}

	return nil
}

// seedUsers seeds user data with salted password hashes.
func (s *DBSeeder) seedUsers(users []UserData) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DBSeeder"))

	for _, user := range users {
		salt, err := hash.GenerateSalt()
		if err != nil {
			logger.Error("Failed to generate salt", log.String("user_id", user.UserID), log.Error(err))
			return err
		}
		passwordHash, err := hash.HashStringWithSalt(user.Password, salt)
		if err != nil {
			logger.Error("Failed to hash password", log.String("user_id", user.UserID), log.Error(err))
			return err
		}

		query := model.DBQuery{
			ID: "SEED_INSERT_USER",
			SQLiteQuery: "INSERT OR IGNORE INTO USERS (USER_ID, EMAIL, FULL_NAME, ROLE, DEPARTMENT_ID, IS_ACTIVE, " +
				"PASSWORD_HASH, PASSWORD_SALT) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			PostgresQuery: "INSERT INTO USERS (USER_ID, EMAIL, FULL_NAME, ROLE, DEPARTMENT_ID, IS_ACTIVE, " +
				"PASSWORD_HASH, PASSWORD_SALT) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) ON CONFLICT (USER_ID) DO NOTHING",
		}

		_, err = s.dbClient.Execute(query, user.UserID, user.Email, user.FullName, user.Role,
			user.DepartmentID, true, passwordHash, salt)
		if err != nil {
			logger.Error("Failed to insert user", log.String("user_id", user.UserID), log.Error(err))
			return err
		}
		logger.Debug("Seeded user", log.String("user_id", user.UserID), log.String("role", user.Role))
	}

	return nil
}

// seedCategories seeds wiki category data.
func (s *DBSeeder) seedCategories(categories []CategoryData) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DBSeeder"))

	for _, category := range categories {
		query := model.DBQuery{
			ID:            "SEED_INSERT_WIKI_CATEGORY",
			SQLiteQuery:   "INSERT OR IGNORE INTO WIKI_CATEGORY (CATEGORY_ID, NAME, DESCRIPTION) VALUES (?, ?, ?)",
			PostgresQuery: "INSERT INTO WIKI_CATEGORY (CATEGORY_ID, NAME, DESCRIPTION) VALUES ($1, $2, $3) ON CONFLICT (CATEGORY_ID) DO NOTHING",
		}

		_, err := s.dbClient.Execute(query, category.CategoryID, category.Name, category.Description)
		if err != nil {
			logger.Error("Failed to insert wiki category", log.String("category_id", category.CategoryID), log.Error(err))
			return err
		}
		logger.Debug("Seeded wiki category", log.String("category_id", category.CategoryID), log.String("name", category.Name))
	}

	return nil
}

// seedSubcategories seeds wiki subcategory data.
func (s *DBSeeder) seedSubcategories(subcategories []SubcategoryData) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DBSeeder"))

	for _, subcategory := range subcategories {
		query := model.DBQuery{
			ID:            "SEED_INSERT_WIKI_SUBCATEGORY",
			SQLiteQuery:   "INSERT OR IGNORE INTO WIKI_SUBCATEGORY (SUBCATEGORY_ID, CATEGORY_ID, NAME, DESCRIPTION) VALUES (?, ?, ?, ?)",
			PostgresQuery: "INSERT INTO WIKI_SUBCATEGORY (SUBCATEGORY_ID, CATEGORY_ID, NAME, DESCRIPTION) VALUES ($1, $2, $3, $4) ON CONFLICT (SUBCATEGORY_ID) DO NOTHING",
		}

		_, err := s.dbClient.Execute(query, subcategory.SubcategoryID, subcategory.CategoryID,
			subcategory.Name, subcategory.Description)
		if err != nil {
			logger.Error("Failed to insert wiki subcategory", log.String("subcategory_id", subcategory.SubcategoryID), log.Error(err))
			return err
		}
		logger.Debug("Seeded wiki subcategory", log.String("subcategory_id", subcategory.SubcategoryID))
	}

	return nil
}

// seedSettings seeds system setting data.
func (s *DBSeeder) seedSettings(settings []SettingData) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DBSeeder"))

	for _, setting := range settings {
		query := model.DBQuery{
			ID:            "SEED_INSERT_SYSTEM_SETTING",
			SQLiteQuery:   "INSERT OR IGNORE INTO SYSTEM_SETTING (SETTING_KEY, SETTING_VALUE) VALUES (?, ?)",
			PostgresQuery: "INSERT INTO SYSTEM_SETTING (SETTING_KEY, SETTING_VALUE) VALUES ($1, $2) ON CONFLICT (SETTING_KEY) DO NOTHING",
		}

		_, err := s.dbClient.Execute(query, setting.Key, setting.Value)
		if err != nil {
			logger.Error("Failed to insert system setting", log.String("key", setting.Key), log.Error(err))
			return err
		}
		logger.Debug("Seeded system setting", log.String("key", setting.Key))
	}

	return nil
}
