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
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/wikiguides/wikiguides/internal/auth/constants"
	"github.com/wikiguides/wikiguides/internal/auth/model"
	"github.com/wikiguides/wikiguides/internal/system/config"
	"github.com/wikiguides/wikiguides/internal/system/error/serviceerror"
)

// signToken serializes the claims and signs them with HMAC-SHA256 using the
// configured token secret. The token format is
// base64url(claims) + "." + base64url(signature).
func signToken(claims model.TokenClaims) (string, error) {
	payload, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}

	encodedPayload := base64.RawURLEncoding.EncodeToString(payload)
	signature := computeSignature(encodedPayload)
	return encodedPayload + "." + signature, nil
}

// verifyToken checks the token signature and expiry and returns its claims.
func verifyToken(token string, now time.Time) (*model.TokenClaims, *serviceerror.ServiceError) {
	parts := strings.Split(token, ".")
	if len(parts) != 2 {
		return nil, &constants.ErrorInvalidToken
	}

	expected := computeSignature(parts[0])
	if !hmac.Equal([]byte(expected), []byte(parts[1])) {
		return nil, &constants.ErrorInvalidToken
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, &constants.ErrorInvalidToken
	}

	var claims model.TokenClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, &constants.ErrorInvalidToken
	}

	authConfig := config.GetWikiGuidesRuntime().Config.Auth
	if claims.Issuer != authConfig.Issuer {
		return nil, &constants.ErrorInvalidToken
	}
	if claims.ExpiresAt <= now.Unix() {
		return nil, &constants.ErrorTokenExpired
	}

	return &claims, nil
}

func computeSignature(encodedPayload string) string {
	secret := config.GetWikiGuidesRuntime().Config.Auth.TokenSecret
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(encodedPayload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
