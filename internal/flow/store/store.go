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
//
// Flow and step definitions live in the identity data source; executions live
// in the runtime data source and are updated with a compare-and-swap on the
// REVISION column.
package store

import (
	"encoding/json"
	"fmt"

	"github.com/wikiguides/wikiguides/internal/flow/constants"
	"github.com/wikiguides/wikiguides/internal/flow/model"
	"github.com/wikiguides/wikiguides/internal/system/database/provider"
	"github.com/wikiguides/wikiguides/internal/system/log"
)

const loggerComponentName = "FlowStore"

// FlowStoreInterface defines the persistence operations for flow and step definitions.
type FlowStoreInterface interface {
	GetFlowListCount() (int, error)
	GetFlowList() ([]model.Flow, error)
	CreateFlow(flow model.Flow) error
	GetFlow(flowID string) (model.Flow, error)
	UpdateFlow(flow model.Flow) error
	DeactivateFlow(flowID string) error
	GetFlowStepList(flowID string) ([]model.FlowStep, error)
	CreateFlowStep(step model.FlowStep) error
	GetFlowStep(flowID, stepID string) (model.FlowStep, error)
	UpdateFlowStep(step model.FlowStep) error
	DeleteFlowStep(flowID, stepID string) error
}

// ExecutionStoreInterface defines the persistence operations for flow executions.
type ExecutionStoreInterface interface {
	CreateExecution(execution model.FlowExecution) error
	GetExecutionBySessionToken(flowID, sessionToken string) (model.FlowExecution, error)
	UpdateExecution(execution model.FlowExecution, expectedRevision int64) error
}

// FlowStore is the default SQL implementation of FlowStoreInterface.
type FlowStore struct{}

// NewFlowStore creates a new flow definition store.
func NewFlowStore() FlowStoreInterface {
	return &FlowStore{}
}

// GetFlowListCount retrieves the total count of active flows.
func (fs *FlowStore) GetFlowListCount() (int, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := provider.NewDBProvider().GetDBClient("identity")
	if err != nil {
		return 0, fmt.Errorf("failed to get database client: %w", err)
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	results, err := dbClient.Query(QueryGetFlowListCount, true)
	if err != nil {
		return 0, fmt.Errorf("failed to execute count query: %w", err)
	}

	var total int
	if len(results) > 0 {
		if count, ok := results[0]["total"].(int64); ok {
			total = int(count)
		} else {
			return 0, fmt.Errorf("unexpected type for total: %T", results[0]["total"])
		}
	}

	return total, nil
}

// GetFlowList retrieves all active flows ordered by title.
func (fs *FlowStore) GetFlowList() ([]model.Flow, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := provider.NewDBProvider().GetDBClient("identity")
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	results, err := dbClient.Query(QueryGetFlowList, true)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	flows := make([]model.Flow, 0, len(results))
	for _, row := range results {
		flow, err := buildFlowFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build flow: %w", err)
		}
		flows = append(flows, flow)
	}

	return flows, nil
}

// CreateFlow creates a new flow in the database.
func (fs *FlowStore) CreateFlow(flow model.Flow) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := provider.NewDBProvider().GetDBClient("identity")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	tagsJSON, err := serializeTags(flow.Tags)
	if err != nil {
		return fmt.Errorf("failed to serialize tags: %w", err)
	}

	_, err = dbClient.Execute(
		QueryCreateFlow,
		flow.ID,
		flow.Title,
		flow.Description,
		string(flow.Visibility),
		tagsJSON,
		flow.Version,
		flow.IsActive,
		flow.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// GetFlow retrieves a flow by id. Returns constants.ErrFlowNotFound when no
// flow exists with the given id.
func (fs *FlowStore) GetFlow(flowID string) (model.Flow, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := provider.NewDBProvider().GetDBClient("identity")
	if err != nil {
		return model.Flow{}, fmt.Errorf("failed to get database client: %w", err)
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	results, err := dbClient.Query(QueryGetFlowByID, flowID)
	if err != nil {
		return model.Flow{}, fmt.Errorf("failed to execute query: %w", err)
	}

	if len(results) == 0 {
		return model.Flow{}, constants.ErrFlowNotFound
	}
	if len(results) != 1 {
		return model.Flow{}, fmt.Errorf("unexpected number of results: %d", len(results))
	}

	return buildFlowFromResultRow(results[0])
}

// UpdateFlow updates a flow definition.
func (fs *FlowStore) UpdateFlow(flow model.Flow) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := provider.NewDBProvider().GetDBClient("identity")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	tagsJSON, err := serializeTags(flow.Tags)
	if err != nil {
		return fmt.Errorf("failed to serialize tags: %w", err)
	}

	rowsAffected, err := dbClient.Execute(
		QueryUpdateFlow,
		flow.ID,
		flow.Title,
		flow.Description,
		string(flow.Visibility),
		tagsJSON,
		flow.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return constants.ErrFlowNotFound
	}

	return nil
}

// DeactivateFlow soft deletes a flow by clearing its active marker.
func (fs *FlowStore) DeactivateFlow(flowID string) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := provider.NewDBProvider().GetDBClient("identity")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	rowsAffected, err := dbClient.Execute(QueryDeactivateFlow, flowID, false)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return constants.ErrFlowNotFound
	}

	return nil
}

// GetFlowStepList retrieves the steps of a flow ordered by step order.
func (fs *FlowStore) GetFlowStepList(flowID string) ([]model.FlowStep, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := provider.NewDBProvider().GetDBClient("identity")
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	results, err := dbClient.Query(QueryGetFlowStepList, flowID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	steps := make([]model.FlowStep, 0, len(results))
	for _, row := range results {
		step, err := buildFlowStepFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build flow step: %w", err)
		}
		steps = append(steps, step)
	}

	return steps, nil
}

// CreateFlowStep creates a new flow step in the database.
func (fs *FlowStore) CreateFlowStep(step model.FlowStep) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := provider.NewDBProvider().GetDBClient("identity")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	stepData, err := serializeStepData(step)
	if err != nil {
		return fmt.Errorf("failed to serialize step data: %w", err)
	}

	_, err = dbClient.Execute(
		QueryCreateFlowStep,
		step.ID,
		step.FlowID,
		step.StepOrder,
		string(step.StepType),
		step.Question,
		step.Description,
		step.IsRequired,
		stepData,
	)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// GetFlowStep retrieves a flow step by id. Returns constants.ErrStepNotFound
// when the step does not exist in the flow.
func (fs *FlowStore) GetFlowStep(flowID, stepID string) (model.FlowStep, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := provider.NewDBProvider().GetDBClient("identity")
	if err != nil {
		return model.FlowStep{}, fmt.Errorf("failed to get database client: %w", err)
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	results, err := dbClient.Query(QueryGetFlowStepByID, flowID, stepID)
	if err != nil {
		return model.FlowStep{}, fmt.Errorf("failed to execute query: %w", err)
	}

	if len(results) == 0 {
		return model.FlowStep{}, constants.ErrStepNotFound
	}
	if len(results) != 1 {
		return model.FlowStep{}, fmt.Errorf("unexpected number of results: %d", len(results))
	}

	return buildFlowStepFromResultRow(results[0])
}

// UpdateFlowStep updates a flow step.
func (fs *FlowStore) UpdateFlowStep(step model.FlowStep) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := provider.NewDBProvider().GetDBClient("identity")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	stepData, err := serializeStepData(step)
	if err != nil {
		return fmt.Errorf("failed to serialize step data: %w", err)
	}

	rowsAffected, err := dbClient.Execute(
		QueryUpdateFlowStep,
		step.FlowID,
		step.ID,
		step.StepOrder,
		string(step.StepType),
		step.Question,
		step.Description,
		step.IsRequired,
		stepData,
	)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return constants.ErrStepNotFound
	}

	return nil
}

// DeleteFlowStep deletes a flow step.
func (fs *FlowStore) DeleteFlowStep(flowID, stepID string) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := provider.NewDBProvider().GetDBClient("identity")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	rowsAffected, err := dbClient.Execute(QueryDeleteFlowStep, flowID, stepID)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return constants.ErrStepNotFound
	}

	return nil
}

// ExecutionStore is the default SQL implementation of ExecutionStoreInterface.
type ExecutionStore struct{}

// NewExecutionStore creates a new flow execution store.
func NewExecutionStore() ExecutionStoreInterface {
	return &ExecutionStore{}
}

// CreateExecution stores a new flow execution in the runtime data source.
func (es *ExecutionStore) CreateExecution(execution model.FlowExecution) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := provider.NewDBProvider().GetDBClient("runtime")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	answersJSON, contextJSON, err := serializeExecutionState(execution)
	if err != nil {
		return fmt.Errorf("failed to serialize execution state: %w", err)
	}

	logger.Debug("Storing flow execution",
		log.String(log.LoggerKeyFlowID, execution.FlowID),
		log.String(log.LoggerKeyExecutionID, execution.ID),
		log.String("status", string(execution.Status)))

	_, err = dbClient.Execute(
		QueryCreateFlowExecution,
		execution.ID,
		execution.FlowID,
		execution.UserID,
		execution.SessionToken,
		string(execution.Status),
		execution.CurrentStepID,
		answersJSON,
		contextJSON,
		execution.ResumePath,
		execution.Revision,
		execution.StartedAt,
		execution.CompletedAt,
		execution.LastActivity,
	)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// GetExecutionBySessionToken retrieves an execution by flow id and session
// token. Returns constants.ErrExecutionNotFound when no such execution exists.
func (es *ExecutionStore) GetExecutionBySessionToken(flowID, sessionToken string) (model.FlowExecution, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := provider.NewDBProvider().GetDBClient("runtime")
	if err != nil {
		return model.FlowExecution{}, fmt.Errorf("failed to get database client: %w", err)
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	results, err := dbClient.Query(QueryGetFlowExecutionBySessionToken, flowID, sessionToken)
	if err != nil {
		return model.FlowExecution{}, fmt.Errorf("failed to execute query: %w", err)
	}

	if len(results) == 0 {
		return model.FlowExecution{}, constants.ErrExecutionNotFound
	}
	if len(results) != 1 {
		return model.FlowExecution{}, fmt.Errorf("unexpected number of results: %d", len(results))
	}

	return buildExecutionFromResultRow(results[0])
}

// UpdateExecution persists a mutated execution with a compare-and-swap on the
// revision counter. Returns constants.ErrRevisionConflict when the stored
// revision no longer matches expectedRevision.
func (es *ExecutionStore) UpdateExecution(execution model.FlowExecution, expectedRevision int64) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := provider.NewDBProvider().GetDBClient("runtime")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	answersJSON, contextJSON, err := serializeExecutionState(execution)
	if err != nil {
		return fmt.Errorf("failed to serialize execution state: %w", err)
	}

	rowsAffected, err := dbClient.Execute(
		QueryUpdateFlowExecution,
		execution.ID,
		expectedRevision,
		string(execution.Status),
		execution.CurrentStepID,
		answersJSON,
		contextJSON,
		execution.ResumePath,
		execution.CompletedAt,
		execution.LastActivity,
	)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		logger.Debug("Execution update lost a revision race",
			log.String(log.LoggerKeyExecutionID, execution.ID))
		return constants.ErrRevisionConflict
	}

	return nil
}

// serializeTags serializes flow tags for the TAGS text column.
func serializeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
