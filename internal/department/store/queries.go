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

// Package store provides the implementation for department persistence operations.
package store

import dbmodel "github.com/wikiguides/wikiguides/internal/system/database/model"

var (
	// QueryGetDepartmentListCount is the query to get the total count of departments.
	QueryGetDepartmentListCount = dbmodel.DBQuery{
		ID:    "DPQ-DEPT_MGT-00",
		Query: `SELECT COUNT(*) as total FROM DEPARTMENT`,
	}

	// QueryGetDepartmentList is the query to get all departments.
	QueryGetDepartmentList = dbmodel.DBQuery{
		ID:    "DPQ-DEPT_MGT-01",
		Query: `SELECT DEPT_ID, NAME, DESCRIPTION, PARENT_ID FROM DEPARTMENT ORDER BY NAME`,
	}

	// QueryCreateDepartment is the query to create a new department.
	QueryCreateDepartment = dbmodel.DBQuery{
		ID:    "DPQ-DEPT_MGT-02",
		Query: `INSERT INTO DEPARTMENT (DEPT_ID, PARENT_ID, NAME, DESCRIPTION) VALUES ($1, $2, $3, $4)`,
	}

	// QueryGetDepartmentByID is the query to get a department by id.
	QueryGetDepartmentByID = dbmodel.DBQuery{
		ID:    "DPQ-DEPT_MGT-03",
		Query: `SELECT DEPT_ID, NAME, DESCRIPTION, PARENT_ID FROM DEPARTMENT WHERE DEPT_ID = $1`,
	}

	// QueryUpdateDepartment is the query to update a department.
	QueryUpdateDepartment = dbmodel.DBQuery{
		ID:    "DPQ-DEPT_MGT-04",
		Query: `UPDATE DEPARTMENT SET PARENT_ID = $2, NAME = $3, DESCRIPTION = $4 WHERE DEPT_ID = $1`,
	}

	// QueryDeleteDepartment is the query to delete a department.
	QueryDeleteDepartment = dbmodel.DBQuery{
		ID:    "DPQ-DEPT_MGT-05",
		Query: `DELETE FROM DEPARTMENT WHERE DEPT_ID = $1`,
	}

	// QueryGetSubDepartments is the query to get sub departments of a department.
	QueryGetSubDepartments = dbmodel.DBQuery{
		ID:    "DPQ-DEPT_MGT-06",
		Query: `SELECT DEPT_ID FROM DEPARTMENT WHERE PARENT_ID = $1 ORDER BY NAME`,
	}

	// QueryCheckDepartmentNameConflict is the query to check if a department name
	// conflicts under the same parent.
	QueryCheckDepartmentNameConflict = dbmodel.DBQuery{
		ID:    "DPQ-DEPT_MGT-07",
		Query: `SELECT COUNT(*) as count FROM DEPARTMENT WHERE NAME = $1 AND PARENT_ID = $2`,
	}

	// QueryCheckDepartmentNameConflictRoot is the query to check if a department name
	// conflicts at root level.
	QueryCheckDepartmentNameConflictRoot = dbmodel.DBQuery{
		ID:    "DPQ-DEPT_MGT-08",
		Query: `SELECT COUNT(*) as count FROM DEPARTMENT WHERE NAME = $1 AND PARENT_ID IS NULL`,
	}

	// QueryCheckDepartmentNameConflictForUpdate is the query to check name conflict during update.
	QueryCheckDepartmentNameConflictForUpdate = dbmodel.DBQuery{
		ID:    "DPQ-DEPT_MGT-09",
		Query: `SELECT COUNT(*) as count FROM DEPARTMENT WHERE NAME = $1 AND PARENT_ID = $2 AND DEPT_ID != $3`,
	}

	// QueryCheckDepartmentNameConflictRootForUpdate is the query to check name conflict
	// at root level during update.
	QueryCheckDepartmentNameConflictRootForUpdate = dbmodel.DBQuery{
		ID:    "DPQ-DEPT_MGT-10",
		Query: `SELECT COUNT(*) as count FROM DEPARTMENT WHERE NAME = $1 AND PARENT_ID IS NULL AND DEPT_ID != $2`,
	}

	// QueryCheckDepartmentHasChildResources is the query to check if a department has
	// sub departments or assigned users.
	QueryCheckDepartmentHasChildResources = dbmodel.DBQuery{
		ID: "DPQ-DEPT_MGT-11",
		Query: `SELECT
					(SELECT COUNT(*) FROM DEPARTMENT WHERE PARENT_ID = $1) +
					(SELECT COUNT(*) FROM USERS WHERE DEPARTMENT_ID = $1) as count`,
	}
)
