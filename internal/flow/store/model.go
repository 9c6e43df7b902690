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
	"encoding/json"
	"errors"
	"time"

	"github.com/wikiguides/wikiguides/internal/flow/constants"
	"github.com/wikiguides/wikiguides/internal/flow/model"
)

// stepDataDB is the JSON shape of the per-type step payload stored in the
// STEP_DATA text column.
type stepDataDB struct {
	Images            []string                `json:"images,omitempty"`
	Options           []model.StepOption      `json:"options,omitempty"`
	Validation        *model.ValidationRules  `json:"validation_rules,omitempty"`
	Conditions        []model.BranchCondition `json:"conditions,omitempty"`
	DefaultNextStepID *string                 `json:"default_next_step_id,omitempty"`
	SubflowID         *string                 `json:"subflow_id,omitempty"`
}

// serializeStepData converts the payload fields of a flow step to the
// STEP_DATA column value.
func serializeStepData(step model.FlowStep) (string, error) {
	data := stepDataDB{
		Images:            step.Images,
		Options:           step.Options,
		Validation:        step.Validation,
		Conditions:        step.Conditions,
		DefaultNextStepID: step.DefaultNextStepID,
		SubflowID:         step.SubflowID,
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// buildFlowFromResultRow builds a flow model from a database result row.
func buildFlowFromResultRow(row map[string]interface{}) (model.Flow, error) {
	flowID, ok := row["flow_id"].(string)
	if !ok {
		return model.Flow{}, errors.New("failed to parse flow_id as string")
	}
	title, ok := row["title"].(string)
	if !ok {
		return model.Flow{}, errors.New("failed to parse title as string")
	}

	var tags []string
	if tagsJSON := parseOptionalString(row["tags"]); tagsJSON != nil && *tagsJSON != "" {
		if err := json.Unmarshal([]byte(*tagsJSON), &tags); err != nil {
			return model.Flow{}, err
		}
	}

	description := ""
	if desc := parseOptionalString(row["description"]); desc != nil {
		description = *desc
	}

	visibility := constants.VisibilityPublic
	if vis := parseOptionalString(row["visibility"]); vis != nil {
		visibility = constants.FlowVisibility(*vis)
	}

	return model.Flow{
		ID:          flowID,
		Title:       title,
		Description: description,
		Visibility:  visibility,
		Tags:        tags,
		Version:     parseInt(row["version"]),
		IsActive:    parseBoolean(row["is_active"]),
		CreatedBy:   parseOptionalString(row["created_by"]),
		CreatedAt:   parseTime(row["created_at"]),
		UpdatedAt:   parseTime(row["updated_at"]),
	}, nil
}

// buildFlowStepFromResultRow builds a flow step model from a database result row.
func buildFlowStepFromResultRow(row map[string]interface{}) (model.FlowStep, error) {
	stepID, ok := row["step_id"].(string)
	if !ok {
		return model.FlowStep{}, errors.New("failed to parse step_id as string")
	}
	flowID, ok := row["flow_id"].(string)
	if !ok {
		return model.FlowStep{}, errors.New("failed to parse flow_id as string")
	}
	stepType, ok := row["step_type"].(string)
	if !ok {
		return model.FlowStep{}, errors.New("failed to parse step_type as string")
	}

	var data stepDataDB
	if dataJSON := parseOptionalString(row["step_data"]); dataJSON != nil && *dataJSON != "" {
		if err := json.Unmarshal([]byte(*dataJSON), &data); err != nil {
			return model.FlowStep{}, err
		}
	}

	question := ""
	if q := parseOptionalString(row["question"]); q != nil {
		question = *q
	}
	description := ""
	if desc := parseOptionalString(row["description"]); desc != nil {
		description = *desc
	}

	return model.FlowStep{
		ID:                stepID,
		FlowID:            flowID,
		StepOrder:         parseInt(row["step_order"]),
		StepType:          constants.StepType(stepType),
		Question:          question,
		Description:       description,
		IsRequired:        parseBoolean(row["is_required"]),
		Images:            data.Images,
		Options:           data.Options,
		Validation:        data.Validation,
		Conditions:        data.Conditions,
		DefaultNextStepID: data.DefaultNextStepID,
		SubflowID:         data.SubflowID,
		CreatedAt:         parseTime(row["created_at"]),
		UpdatedAt:         parseTime(row["updated_at"]),
	}, nil
}

// buildExecutionFromResultRow builds an execution model from a database result
// row, deserializing the ANSWERS and SESSION_CONTEXT JSON columns.
func buildExecutionFromResultRow(row map[string]interface{}) (model.FlowExecution, error) {
	executionID, ok := row["execution_id"].(string)
	if !ok {
		return model.FlowExecution{}, errors.New("failed to parse execution_id as string")
	}
	flowID, ok := row["flow_id"].(string)
	if !ok {
		return model.FlowExecution{}, errors.New("failed to parse flow_id as string")
	}
	sessionToken, ok := row["session_token"].(string)
	if !ok {
		return model.FlowExecution{}, errors.New("failed to parse session_token as string")
	}
	status, ok := row["status"].(string)
	if !ok {
		return model.FlowExecution{}, errors.New("failed to parse status as string")
	}

	answers := make(map[string]model.StepAnswer)
	if answersJSON := parseOptionalString(row["answers"]); answersJSON != nil && *answersJSON != "" {
		if err := json.Unmarshal([]byte(*answersJSON), &answers); err != nil {
			return model.FlowExecution{}, err
		}
	}

	sessionContext := make(map[string]string)
	if ctxJSON := parseOptionalString(row["session_context"]); ctxJSON != nil && *ctxJSON != "" {
		if err := json.Unmarshal([]byte(*ctxJSON), &sessionContext); err != nil {
			return model.FlowExecution{}, err
		}
	}

	resumePath := ""
	if rp := parseOptionalString(row["resume_path"]); rp != nil {
		resumePath = *rp
	}

	var completedAt *time.Time
	if row["completed_at"] != nil {
		t := parseTime(row["completed_at"])
		if !t.IsZero() {
			completedAt = &t
		}
	}

	return model.FlowExecution{
		ID:             executionID,
		FlowID:         flowID,
		UserID:         parseOptionalString(row["user_id"]),
		SessionToken:   sessionToken,
		Status:         constants.ExecutionStatus(status),
		CurrentStepID:  parseOptionalString(row["current_step_id"]),
		Answers:        answers,
		SessionContext: sessionContext,
		ResumePath:     resumePath,
		Revision:       parseInt64(row["revision"]),
		StartedAt:      parseTime(row["started_at"]),
		CompletedAt:    completedAt,
		LastActivity:   parseTime(row["last_activity"]),
	}, nil
}

// serializeExecutionState serializes the answers and session context of an
// execution for the JSON text columns.
func serializeExecutionState(execution model.FlowExecution) (answers string, sessionContext string, err error) {
	answersMap := execution.Answers
	if answersMap == nil {
		answersMap = make(map[string]model.StepAnswer)
	}
	answersJSON, err := json.Marshal(answersMap)
	if err != nil {
		return "", "", err
	}

	contextMap := execution.SessionContext
	if contextMap == nil {
		contextMap = make(map[string]string)
	}
	contextJSON, err := json.Marshal(contextMap)
	if err != nil {
		return "", "", err
	}

	return string(answersJSON), string(contextJSON), nil
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

// parseInt safely parses an integer field from the database row.
func parseInt(value interface{}) int {
	return int(parseInt64(value))
}

// parseInt64 safely parses a 64-bit integer field from the database row.
func parseInt64(value interface{}) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	}
	return 0
}

// parseTime safely parses a timestamp field from the database row. The
// PostgreSQL driver returns time.Time; the SQLite driver may return a string.
func parseTime(value interface{}) time.Time {
	switch v := value.(type) {
	case time.Time:
		return v
	case string:
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05.999999999-07:00", "2006-01-02 15:04:05"} {
			if t, err := time.Parse(layout, v); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}
