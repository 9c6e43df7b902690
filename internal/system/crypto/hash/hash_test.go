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

package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type HashUtilTestSuite struct {
	suite.Suite
}

func TestHashSuite(t *testing.T) {
	suite.Run(t, new(HashUtilTestSuite))
}

func (suite *HashUtilTestSuite) TestHashString() {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "EmptyString",
			input:    "",
			expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:     "NormalString",
			input:    "password",
			expected: "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8",
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, HashString(tc.input))
		})
	}
}

func (suite *HashUtilTestSuite) TestHashStringWithSalt() {
	hash, err := HashStringWithSalt("password", "12f4576d7432bd8020db7202b6492a37")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "608691d0d3f1084deb1845a46babc1f5712d91e3cd61d7945456d020df717c3e", hash)
}

func (suite *HashUtilTestSuite) TestHashStringWithSaltIsDeterministic() {
	hash1, err := HashStringWithSalt("common-input", "salt-one")
	assert.NoError(suite.T(), err)
	hash2, err := HashStringWithSalt("common-input", "salt-one")
	assert.NoError(suite.T(), err)

	assert.Equal(suite.T(), hash1, hash2, "Same input and salt should produce the same hash")
}

func (suite *HashUtilTestSuite) TestHashStringWithDifferentSalts() {
	hash1, err := HashStringWithSalt("common-input", "salt-one")
	assert.NoError(suite.T(), err)
	hash2, err := HashStringWithSalt("common-input", "salt-two")
	assert.NoError(suite.T(), err)

	assert.NotEqual(suite.T(), hash1, hash2, "Different salts should produce different hashes")
}

func (suite *HashUtilTestSuite) TestHashWithDifferentInputs() {
	assert.NotEqual(suite.T(), HashString("input-one"), HashString("input-two"),
		"Different inputs should produce different hashes")
}

func (suite *HashUtilTestSuite) TestGenerateSalt() {
	salt1, err := GenerateSalt()
	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), salt1)

	salt2, err := GenerateSalt()
	assert.NoError(suite.T(), err)
	assert.NotEqual(suite.T(), salt1, salt2, "Generated salts should be unique")
}

func (suite *HashUtilTestSuite) TestHashMatchesHashString() {
	assert.Equal(suite.T(), Hash([]byte("abc")), HashString("abc"))
}
