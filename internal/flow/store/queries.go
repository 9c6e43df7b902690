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

// Package store provides the implementation for flow and execution persistence operations.
package store

import (
	dbmodel "github.com/wikiguides/wikiguides/internal/system/database/model"
)

var (
	// QueryGetFlowListCount is the query to get the total count of active flows.
	QueryGetFlowListCount = dbmodel.DBQuery{
		ID:    "FLQ-FLOW_MGT-00",
		Query: `SELECT COUNT(*) as total FROM FLOW WHERE IS_ACTIVE = $1`,
	}

	// QueryGetFlowList is the query to get active flows ordered by title.
	QueryGetFlowList = dbmodel.DBQuery{
		ID: "FLQ-FLOW_MGT-01",
		Query: `SELECT FLOW_ID, TITLE, DESCRIPTION, VISIBILITY, TAGS, VERSION, IS_ACTIVE, CREATED_BY, ` +
			`CREATED_AT, UPDATED_AT FROM FLOW WHERE IS_ACTIVE = $1 ORDER BY TITLE`,
	}

	// QueryCreateFlow is the query to create a new flow.
	QueryCreateFlow = dbmodel.DBQuery{
		ID: "FLQ-FLOW_MGT-02",
		Query: `INSERT INTO FLOW (FLOW_ID, TITLE, DESCRIPTION, VISIBILITY, TAGS, VERSION, IS_ACTIVE, ` +
			`CREATED_BY) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
	}

	// QueryGetFlowByID is the query to get a flow by id.
	QueryGetFlowByID = dbmodel.DBQuery{
		ID: "FLQ-FLOW_MGT-03",
		Query: `SELECT FLOW_ID, TITLE, DESCRIPTION, VISIBILITY, TAGS, VERSION, IS_ACTIVE, CREATED_BY, ` +
			`CREATED_AT, UPDATED_AT FROM FLOW WHERE FLOW_ID = $1`,
	}

	// QueryUpdateFlow is the query to update a flow definition and bump its version.
	QueryUpdateFlow = dbmodel.DBQuery{
		ID: "FLQ-FLOW_MGT-04",
		Query: `UPDATE FLOW SET TITLE = $2, DESCRIPTION = $3, VISIBILITY = $4, TAGS = $5, ` +
			`VERSION = $6, UPDATED_AT = CURRENT_TIMESTAMP WHERE FLOW_ID = $1`,
	}

	// QueryDeactivateFlow is the query to soft delete a flow.
	QueryDeactivateFlow = dbmodel.DBQuery{
		ID:    "FLQ-FLOW_MGT-05",
		Query: `UPDATE FLOW SET IS_ACTIVE = $2, UPDATED_AT = CURRENT_TIMESTAMP WHERE FLOW_ID = $1`,
	}

	// QueryGetFlowStepList is the query to get the steps of a flow ordered by step order.
	QueryGetFlowStepList = dbmodel.DBQuery{
		ID: "FLQ-FLOW_STEP-01",
		Query: `SELECT STEP_ID, FLOW_ID, STEP_ORDER, STEP_TYPE, QUESTION, DESCRIPTION, IS_REQUIRED, ` +
			`STEP_DATA, CREATED_AT, UPDATED_AT FROM FLOW_STEP WHERE FLOW_ID = $1 ORDER BY STEP_ORDER, STEP_ID`,
	}

	// QueryCreateFlowStep is the query to create a new flow step.
	QueryCreateFlowStep = dbmodel.DBQuery{
		ID: "FLQ-FLOW_STEP-02",
		Query: `INSERT INTO FLOW_STEP (STEP_ID, FLOW_ID, STEP_ORDER, STEP_TYPE, QUESTION, DESCRIPTION, ` +
			`IS_REQUIRED, STEP_DATA) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
	}

	// QueryGetFlowStepByID is the query to get a flow step by id.
	QueryGetFlowStepByID = dbmodel.DBQuery{
		ID: "FLQ-FLOW_STEP-03",
		Query: `SELECT STEP_ID, FLOW_ID, STEP_ORDER, STEP_TYPE, QUESTION, DESCRIPTION, IS_REQUIRED, ` +
			`STEP_DATA, CREATED_AT, UPDATED_AT FROM FLOW_STEP WHERE FLOW_ID = $1 AND STEP_ID = $2`,
	}

	// QueryUpdateFlowStep is the query to update a flow step.
	QueryUpdateFlowStep = dbmodel.DBQuery{
		ID: "FLQ-FLOW_STEP-04",
		Query: `UPDATE FLOW_STEP SET STEP_ORDER = $3, STEP_TYPE = $4, QUESTION = $5, DESCRIPTION = $6, ` +
			`IS_REQUIRED = $7, STEP_DATA = $8, UPDATED_AT = CURRENT_TIMESTAMP ` +
			`WHERE FLOW_ID = $1 AND STEP_ID = $2`,
	}

	// QueryDeleteFlowStep is the query to delete a flow step.
	QueryDeleteFlowStep = dbmodel.DBQuery{
		ID:    "FLQ-FLOW_STEP-05",
		Query: `DELETE FROM FLOW_STEP WHERE FLOW_ID = $1 AND STEP_ID = $2`,
	}

	// QueryCreateFlowExecution is the query to create a new flow execution.
	QueryCreateFlowExecution = dbmodel.DBQuery{
		ID: "FLQ-FLOW_EXEC-01",
		Query: `INSERT INTO FLOW_EXECUTION (EXECUTION_ID, FLOW_ID, USER_ID, SESSION_TOKEN, STATUS, ` +
			`CURRENT_STEP_ID, ANSWERS, SESSION_CONTEXT, RESUME_PATH, REVISION, STARTED_AT, COMPLETED_AT, ` +
			`LAST_ACTIVITY) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
	}

	// QueryGetFlowExecutionBySessionToken is the query to get an execution by flow id and session token.
	QueryGetFlowExecutionBySessionToken = dbmodel.DBQuery{
		ID: "FLQ-FLOW_EXEC-02",
		Query: `SELECT EXECUTION_ID, FLOW_ID, USER_ID, SESSION_TOKEN, STATUS, CURRENT_STEP_ID, ANSWERS, ` +
			`SESSION_CONTEXT, RESUME_PATH, REVISION, STARTED_AT, COMPLETED_AT, LAST_ACTIVITY ` +
			`FROM FLOW_EXECUTION WHERE FLOW_ID = $1 AND SESSION_TOKEN = $2`,
	}

	// QueryUpdateFlowExecution is the compare-and-swap update of an execution.
	// Zero rows affected means the expected revision lost a concurrent race.
	QueryUpdateFlowExecution = dbmodel.DBQuery{
		ID: "FLQ-FLOW_EXEC-03",
		Query: `UPDATE FLOW_EXECUTION SET STATUS = $3, CURRENT_STEP_ID = $4, ANSWERS = $5, ` +
			`SESSION_CONTEXT = $6, RESUME_PATH = $7, REVISION = REVISION + 1, COMPLETED_AT = $8, ` +
			`LAST_ACTIVITY = $9 WHERE EXECUTION_ID = $1 AND REVISION = $2`,
	}
)
