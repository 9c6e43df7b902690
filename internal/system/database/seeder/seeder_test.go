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

package seeder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/wikiguides/wikiguides/tests/mocks/database/clientmock"
)

// SeederTestSuite is the test suite for the seeder package.
type SeederTestSuite struct {
	suite.Suite
	mockDBClient *clientmock.DBClientInterfaceMock
	seeder       SeederInterface
}

// SetupTest sets up the test suite.
func (suite *SeederTestSuite) SetupTest() {
	suite.mockDBClient = &clientmock.DBClientInterfaceMock{}
	suite.seeder = NewDBSeeder(suite.mockDBClient)
}

// TestNewDBSeeder tests the creation of a new DBSeeder instance.
func (suite *SeederTestSuite) TestNewDBSeeder() {
	seeder := NewDBSeeder(suite.mockDBClient)
	assert.NotNil(suite.T(), seeder)
	assert.IsType(suite.T(), &DBSeeder{}, seeder)
}

// TestSeedInitialData_Success tests successful data seeding.
func (suite *SeederTestSuite) TestSeedInitialData_Success() {
	// Departments, subcategories: 4 args. Users: 8 args. Categories: 3 args. Settings: 2 args.
	suite.mockDBClient.On("Execute", mock.AnythingOfType("model.DBQuery"), mock.Anything, mock.Anything,
		mock.Anything, mock.Anything).Return(int64(1), nil).Maybe()
	suite.mockDBClient.On("Execute", mock.AnythingOfType("model.DBQuery"), mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		mock.Anything).Return(int64(1), nil).Maybe()
	suite.mockDBClient.On("Execute", mock.AnythingOfType("model.DBQuery"), mock.Anything, mock.Anything,
		mock.Anything).Return(int64(1), nil).Maybe()
	suite.mockDBClient.On("Execute", mock.AnythingOfType("model.DBQuery"), mock.Anything,
		mock.Anything).Return(int64(1), nil).Maybe()

	err := suite.seeder.SeedInitialData()

	assert.NoError(suite.T(), err)
}

// TestSeedInitialData_DatabaseError tests data seeding with database error.
func (suite *SeederTestSuite) TestSeedInitialData_DatabaseError() {
	// The first insert is a department with 4 bind arguments.
	suite.mockDBClient.On("Execute", mock.AnythingOfType("model.DBQuery"), mock.Anything, mock.Anything,
		mock.Anything, mock.Anything).Return(int64(0), assert.AnError).Once()

	err := suite.seeder.SeedInitialData()

	assert.Error(suite.T(), err)
}

// TestGetSeedData tests the seed data retrieval.
func (suite *SeederTestSuite) TestGetSeedData() {
	data := getSeedData()

	assert.NotEmpty(suite.T(), data.Departments)
	assert.NotEmpty(suite.T(), data.Users)
	assert.NotEmpty(suite.T(), data.Categories)
	assert.NotEmpty(suite.T(), data.Subcategories)
	assert.NotEmpty(suite.T(), data.Settings)

	// Verify specific data integrity
	assert.Equal(suite.T(), "General", data.Departments[0].Name)
	assert.Nil(suite.T(), data.Departments[0].ParentID)
	assert.NotNil(suite.T(), data.Departments[1].ParentID)
	assert.Equal(suite.T(), "admin@wikiguides.local", data.Users[0].Email)
	assert.Equal(suite.T(), "admin", data.Users[0].Role)
	assert.Equal(suite.T(), "site_name", data.Settings[0].Key)
}

// TestSeederProvider tests the seeder provider functionality.
func (suite *SeederTestSuite) TestSeederProvider() {
	provider := NewSeederProvider(nil)
	assert.NotNil(suite.T(), provider)
	assert.IsType(suite.T(), &SeederProvider{}, provider)
}

// TestSeederTestSuite runs the test suite.
func TestSeederTestSuite(t *testing.T) {
	suite.Run(t, new(SeederTestSuite))
}
