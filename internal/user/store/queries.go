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
	dbmodel "github.com/wikiguides/wikiguides/internal/system/database/model"
)

var (
	// QueryGetUserListCount is the query to get the total count of users.
	QueryGetUserListCount = dbmodel.DBQuery{
		ID:    "USQ-USER_MGT-00",
		Query: `SELECT COUNT(*) as total FROM USERS`,
	}

	// QueryGetUserList is the query to get users ordered by full name.
	QueryGetUserList = dbmodel.DBQuery{
		ID: "USQ-USER_MGT-01",
		Query: `SELECT USER_ID, EMAIL, FULL_NAME, ROLE, DEPARTMENT_ID, IS_ACTIVE, CREATED_AT, UPDATED_AT ` +
			`FROM USERS ORDER BY FULL_NAME`,
	}

	// QueryCreateUser is the query to create a new user with credentials.
	QueryCreateUser = dbmodel.DBQuery{
		ID: "USQ-USER_MGT-02",
		Query: `INSERT INTO USERS (USER_ID, EMAIL, FULL_NAME, ROLE, DEPARTMENT_ID, IS_ACTIVE, ` +
			`PASSWORD_HASH, PASSWORD_SALT) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
	}

	// QueryGetUserByID is the query to get a user by id.
	QueryGetUserByID = dbmodel.DBQuery{
		ID: "USQ-USER_MGT-03",
		Query: `SELECT USER_ID, EMAIL, FULL_NAME, ROLE, DEPARTMENT_ID, IS_ACTIVE, CREATED_AT, UPDATED_AT ` +
			`FROM USERS WHERE USER_ID = $1`,
	}

	// QueryGetUserByEmail is the query to get a user by email.
	QueryGetUserByEmail = dbmodel.DBQuery{
		ID: "USQ-USER_MGT-04",
		Query: `SELECT USER_ID, EMAIL, FULL_NAME, ROLE, DEPARTMENT_ID, IS_ACTIVE, CREATED_AT, UPDATED_AT ` +
			`FROM USERS WHERE EMAIL = $1`,
	}

	// QueryGetUserCredentialByEmail is the query to get the stored credential of a user.
	QueryGetUserCredentialByEmail = dbmodel.DBQuery{
		ID:    "USQ-USER_MGT-05",
		Query: `SELECT USER_ID, PASSWORD_HASH, PASSWORD_SALT FROM USERS WHERE EMAIL = $1 AND IS_ACTIVE = $2`,
	}

	// QueryUpdateUserRole is the query to update a user's role.
	QueryUpdateUserRole = dbmodel.DBQuery{
		ID:    "USQ-USER_MGT-06",
		Query: `UPDATE USERS SET ROLE = $2, UPDATED_AT = CURRENT_TIMESTAMP WHERE USER_ID = $1`,
	}

	// QueryDeactivateUser is the query to deactivate a user.
	QueryDeactivateUser = dbmodel.DBQuery{
		ID:    "USQ-USER_MGT-07",
		Query: `UPDATE USERS SET IS_ACTIVE = $2, UPDATED_AT = CURRENT_TIMESTAMP WHERE USER_ID = $1`,
	}
)
