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

// Package store provides the implementation for administration persistence operations.
package store

import dbmodel "github.com/wikiguides/wikiguides/internal/system/database/model"

var (
	// QueryCountUsers is the query to count users.
	QueryCountUsers = dbmodel.DBQuery{
		ID:    "ADQ-ANALYTICS-00",
		Query: `SELECT COUNT(*) as total FROM USERS`,
	}

	// QueryCountDepartments is the query to count departments.
	QueryCountDepartments = dbmodel.DBQuery{
		ID:    "ADQ-ANALYTICS-01",
		Query: `SELECT COUNT(*) as total FROM DEPARTMENT`,
	}

	// QueryCountCategories is the query to count wiki categories.
	QueryCountCategories = dbmodel.DBQuery{
		ID:    "ADQ-ANALYTICS-02",
		Query: `SELECT COUNT(*) as total FROM WIKI_CATEGORY`,
	}

	// QueryCountArticles is the query to count wiki articles.
	QueryCountArticles = dbmodel.DBQuery{
		ID:    "ADQ-ANALYTICS-03",
		Query: `SELECT COUNT(*) as total FROM WIKI_ARTICLE`,
	}

	// QueryCountFlows is the query to count active flows.
	QueryCountFlows = dbmodel.DBQuery{
		ID:    "ADQ-ANALYTICS-04",
		Query: `SELECT COUNT(*) as total FROM FLOW WHERE IS_ACTIVE = $1`,
	}

	// QueryCountExecutions is the query to count flow executions.
	QueryCountExecutions = dbmodel.DBQuery{
		ID:    "ADQ-ANALYTICS-05",
		Query: `SELECT COUNT(*) as total FROM FLOW_EXECUTION`,
	}

	// QueryPopularArticles is the query to get the most viewed articles.
	QueryPopularArticles = dbmodel.DBQuery{
		ID:    "ADQ-ANALYTICS-06",
		Query: `SELECT ARTICLE_ID, TITLE, VIEW_COUNT FROM WIKI_ARTICLE ORDER BY VIEW_COUNT DESC LIMIT $1`,
	}

	// QueryPopularFlows is the query to get the most executed flows.
	QueryPopularFlows = dbmodel.DBQuery{
		ID: "ADQ-ANALYTICS-07",
		Query: `SELECT FLOW_ID, COUNT(*) as EXECUTION_COUNT FROM FLOW_EXECUTION ` +
			`GROUP BY FLOW_ID ORDER BY EXECUTION_COUNT DESC LIMIT $1`,
	}

	// QueryRecentArticles is the query to get the most recently updated articles.
	QueryRecentArticles = dbmodel.DBQuery{
		ID:    "ADQ-ACTIVITY-00",
		Query: `SELECT ARTICLE_ID, TITLE, CREATED_BY, UPDATED_AT FROM WIKI_ARTICLE ORDER BY UPDATED_AT DESC LIMIT $1`,
	}

	// QueryRecentExecutions is the query to get the most recently active executions.
	QueryRecentExecutions = dbmodel.DBQuery{
		ID:    "ADQ-ACTIVITY-01",
		Query: `SELECT EXECUTION_ID, FLOW_ID, USER_ID, LAST_ACTIVITY FROM FLOW_EXECUTION ORDER BY LAST_ACTIVITY DESC LIMIT $1`,
	}

	// QueryGetSettings is the query to get all system settings.
	QueryGetSettings = dbmodel.DBQuery{
		ID:    "ADQ-SETTINGS-00",
		Query: `SELECT SETTING_KEY, SETTING_VALUE, UPDATED_AT FROM SYSTEM_SETTING ORDER BY SETTING_KEY`,
	}

	// QueryUpdateSetting is the query to update an existing system setting.
	QueryUpdateSetting = dbmodel.DBQuery{
		ID:    "ADQ-SETTINGS-01",
		Query: `UPDATE SYSTEM_SETTING SET SETTING_VALUE = $2, UPDATED_AT = $3 WHERE SETTING_KEY = $1`,
	}

	// QueryInsertSetting is the query to insert a new system setting.
	QueryInsertSetting = dbmodel.DBQuery{
		ID:    "ADQ-SETTINGS-02",
		Query: `INSERT INTO SYSTEM_SETTING (SETTING_KEY, SETTING_VALUE, UPDATED_AT) VALUES ($1, $2, $3)`,
	}
)
