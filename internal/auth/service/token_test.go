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
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/wikiguides/wikiguides/internal/auth/constants"
	"github.com/wikiguides/wikiguides/internal/auth/model"
	"github.com/wikiguides/wikiguides/internal/system/config"
	userconst "github.com/wikiguides/wikiguides/internal/user/constants"
)

type TokenTestSuite struct {
	suite.Suite
	now time.Time
}

func TestTokenTestSuite(t *testing.T) {
	suite.Run(t, new(TokenTestSuite))
}

func (suite *TokenTestSuite) SetupSuite() {
	cfg := &config.Config{
		Auth: config.AuthConfig{
			TokenSecret:         "test-secret",
			TokenValidityPeriod: 3600,
			Issuer:              "wikiguides",
		},
	}
	_ = config.InitializeWikiGuidesRuntime("/tmp", cfg)
}

func (suite *TokenTestSuite) SetupTest() {
	suite.now = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
}

func (suite *TokenTestSuite) claims() model.TokenClaims {
	return model.TokenClaims{
		Subject:   "user-1",
		Role:      string(userconst.RoleContributor),
		Issuer:    "wikiguides",
		IssuedAt:  suite.now.Unix(),
		ExpiresAt: suite.now.Add(time.Hour).Unix(),
	}
}

func (suite *TokenTestSuite) TestSignAndVerify() {
	token, err := signToken(suite.claims())
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), strings.Split(token, "."), 2)

	verified, svcErr := verifyToken(token, suite.now)
	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), "user-1", verified.Subject)
	assert.Equal(suite.T(), string(userconst.RoleContributor), verified.Role)
}

func (suite *TokenTestSuite) TestVerifyTamperedPayload() {
	token, err := signToken(suite.claims())
	assert.NoError(suite.T(), err)

	parts := strings.Split(token, ".")
	tampered := parts[0] + "x." + parts[1]

	verified, svcErr := verifyToken(tampered, suite.now)
	assert.Nil(suite.T(), verified)
	assert.Equal(suite.T(), constants.ErrorInvalidToken.Code, svcErr.Code)
}

func (suite *TokenTestSuite) TestVerifyMalformedToken() {
	for _, token := range []string{"", "no-separator", "a.b.c"} {
		verified, svcErr := verifyToken(token, suite.now)
		assert.Nil(suite.T(), verified)
		assert.Equal(suite.T(), constants.ErrorInvalidToken.Code, svcErr.Code)
	}
}

func (suite *TokenTestSuite) TestVerifyExpiredToken() {
	claims := suite.claims()
	token, err := signToken(claims)
	assert.NoError(suite.T(), err)

	verified, svcErr := verifyToken(token, time.Unix(claims.ExpiresAt, 0).UTC())
	assert.Nil(suite.T(), verified)
	assert.Equal(suite.T(), constants.ErrorTokenExpired.Code, svcErr.Code)
}

func (suite *TokenTestSuite) TestVerifyWrongIssuer() {
	claims := suite.claims()
	claims.Issuer = "someone-else"
	token, err := signToken(claims)
	assert.NoError(suite.T(), err)

	verified, svcErr := verifyToken(token, suite.now)
	assert.Nil(suite.T(), verified)
	assert.Equal(suite.T(), constants.ErrorInvalidToken.Code, svcErr.Code)
}
