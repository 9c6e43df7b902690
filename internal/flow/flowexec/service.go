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

// Package flowexec implements the flow execution state machine.
//
// Executions mutate through a load-resolve-persist cycle: load the execution
// and the flow's current step list, resolve the next step, persist with a
// compare-and-swap on the revision counter. A lost race reloads and retries a
// bounded number of times, so at most one in-flight mutation per execution
// wins each revision.
package flowexec

import (
	"errors"
	"strings"
	"time"

	"github.com/wikiguides/wikiguides/internal/flow/constants"
	"github.com/wikiguides/wikiguides/internal/flow/engine"
	"github.com/wikiguides/wikiguides/internal/flow/model"
	"github.com/wikiguides/wikiguides/internal/flow/store"
	"github.com/wikiguides/wikiguides/internal/system/config"
	"github.com/wikiguides/wikiguides/internal/system/error/serviceerror"
	"github.com/wikiguides/wikiguides/internal/system/log"
	"github.com/wikiguides/wikiguides/internal/system/utils"
)

const loggerComponentName = "FlowExecService"

const defaultMaxUpdateRetries = 3

// FlowExecServiceInterface defines the interface for flow execution operations.
type FlowExecServiceInterface interface {
	StartExecution(flowID string, userID *string, sessionContext map[string]string,
		resumePath string) (*model.ExecutionResponse, *serviceerror.ServiceError)
	GetExecution(flowID, sessionToken string) (*model.ExecutionResponse, *serviceerror.ServiceError)
	SubmitAnswer(flowID, sessionToken string, request model.SubmitAnswerRequest) (
		*model.ExecutionResponse, *serviceerror.ServiceError)
	AbandonExecution(flowID, sessionToken string) (*model.ExecutionResponse, *serviceerror.ServiceError)
	GetSummary(flowID, sessionToken string) (*model.FlowSummary, *serviceerror.ServiceError)
}

// FlowExecService drives flow executions against injected stores.
type FlowExecService struct {
	flowStore  store.FlowStoreInterface
	execStore  store.ExecutionStoreInterface
	maxRetries int
	now        func() time.Time
}

// GetFlowExecService creates a flow execution service backed by the SQL stores
// and the configured retry budget.
func GetFlowExecService() FlowExecServiceInterface {
	maxRetries := config.GetWikiGuidesRuntime().Config.Flow.MaxUpdateRetries
	return NewFlowExecService(store.NewFlowStore(), store.NewExecutionStore(), maxRetries)
}

// NewFlowExecService creates a flow execution service with the given stores.
func NewFlowExecService(
	flowStore store.FlowStoreInterface, execStore store.ExecutionStoreInterface, maxRetries int,
) FlowExecServiceInterface {
	if maxRetries <= 0 {
		maxRetries = defaultMaxUpdateRetries
	}
	return &FlowExecService{
		flowStore:  flowStore,
		execStore:  execStore,
		maxRetries: maxRetries,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// StartExecution starts a new execution of a flow and returns it together with
// the resolved entry step. The caller-supplied session context is persisted
// with the execution. A flow with no steps yields an immediately completed
// execution.
func (fes *FlowExecService) StartExecution(
	flowID string, userID *string, sessionContext map[string]string, resumePath string,
) (*model.ExecutionResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	logger.Debug("Starting flow execution", log.String(log.LoggerKeyFlowID, flowID))

	flow, svcErr := fes.getActiveFlow(flowID)
	if svcErr != nil {
		return nil, svcErr
	}

	steps, err := fes.flowStore.GetFlowStepList(flow.ID)
	if err != nil {
		logger.Error("Failed to list flow steps", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	if sessionContext == nil {
		sessionContext = make(map[string]string)
	}

	now := fes.now()
	execution := model.FlowExecution{
		ID:             utils.GenerateUUID(),
		FlowID:         flow.ID,
		UserID:         userID,
		SessionToken:   utils.GenerateUUID(),
		Status:         constants.ExecutionStatusInProgress,
		CurrentStepID:  engine.FirstStep(steps),
		Answers:        make(map[string]model.StepAnswer),
		SessionContext: sessionContext,
		ResumePath:     resumePath,
		Revision:       1,
		StartedAt:      now,
		LastActivity:   now,
	}
	if execution.CurrentStepID == nil {
		execution.Status = constants.ExecutionStatusCompleted
		execution.CompletedAt = &now
	}

	if err := fes.execStore.CreateExecution(execution); err != nil {
		logger.Error("Failed to create execution", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	logger.Debug("Started flow execution",
		log.String(log.LoggerKeyFlowID, flow.ID),
		log.String(log.LoggerKeyExecutionID, execution.ID))
	return buildExecutionResponse(execution, steps), nil
}

// GetExecution retrieves the current state of an execution by session token.
func (fes *FlowExecService) GetExecution(
	flowID, sessionToken string,
) (*model.ExecutionResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	execution, svcErr := fes.getExecution(flowID, sessionToken)
	if svcErr != nil {
		return nil, svcErr
	}

	steps, err := fes.flowStore.GetFlowStepList(flowID)
	if err != nil {
		logger.Error("Failed to list flow steps", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	return buildExecutionResponse(execution, steps), nil
}

// SubmitAnswer records an answer for a step and advances the execution
// pointer. Out-of-order and repeated submissions are accepted: the answer is
// recorded and the pointer recomputed from the answered step.
func (fes *FlowExecService) SubmitAnswer(
	flowID, sessionToken string, request model.SubmitAnswerRequest,
) (*model.ExecutionResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(request.StepID) == "" {
		return nil, &constants.ErrorMissingAnswer
	}

	for attempt := 0; attempt < fes.maxRetries; attempt++ {
		execution, svcErr := fes.getExecution(flowID, sessionToken)
		if svcErr != nil {
			return nil, svcErr
		}
		if execution.Status != constants.ExecutionStatusInProgress {
			return nil, &constants.ErrorExecutionNotInProgress
		}

		// The step list is re-read on every attempt so resolution sees
		// concurrent authoring edits.
		steps, err := fes.flowStore.GetFlowStepList(flowID)
		if err != nil {
			logger.Error("Failed to list flow steps", log.Error(err))
			return nil, &constants.ErrorInternalServerError
		}

		var step *model.FlowStep
		for i := range steps {
			if steps[i].ID == request.StepID {
				step = &steps[i]
				break
			}
		}
		if step == nil {
			return nil, &constants.ErrorStepNotFound
		}

		now := fes.now()
		if execution.Answers == nil {
			execution.Answers = make(map[string]model.StepAnswer)
		}
		execution.Answers[step.ID] = model.StepAnswer{
			Value:      request.Answer,
			Metadata:   request.Metadata,
			AnsweredAt: now,
		}

		nextStepID, err := engine.ResolveNextStep(*step, request.Answer, steps)
		if err != nil {
			logger.Error("Failed to resolve next step", log.Error(err),
				log.String(log.LoggerKeyFlowID, flowID), log.String(log.LoggerKeyStepID, step.ID))
			return nil, &constants.ErrorInvalidStepReference
		}

		execution.CurrentStepID = nextStepID
		execution.LastActivity = now
		if nextStepID == nil {
			execution.Status = constants.ExecutionStatusCompleted
			execution.CompletedAt = &now
		}

		err = fes.execStore.UpdateExecution(execution, execution.Revision)
		if errors.Is(err, constants.ErrRevisionConflict) {
			logger.Debug("Retrying answer submission after revision conflict",
				log.String(log.LoggerKeyExecutionID, execution.ID), log.Int("attempt", attempt+1))
			continue
		}
		if err != nil {
			logger.Error("Failed to update execution", log.Error(err))
			return nil, &constants.ErrorInternalServerError
		}

		execution.Revision++
		return buildExecutionResponse(execution, steps), nil
	}

	return nil, &constants.ErrorConcurrentUpdate
}

// AbandonExecution marks an execution as abandoned. Abandoning an already
// terminal execution is a no-op that returns the current state.
func (fes *FlowExecService) AbandonExecution(
	flowID, sessionToken string,
) (*model.ExecutionResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	for attempt := 0; attempt < fes.maxRetries; attempt++ {
		execution, svcErr := fes.getExecution(flowID, sessionToken)
		if svcErr != nil {
			return nil, svcErr
		}

		steps, err := fes.flowStore.GetFlowStepList(flowID)
		if err != nil {
			logger.Error("Failed to list flow steps", log.Error(err))
			return nil, &constants.ErrorInternalServerError
		}

		if execution.Status != constants.ExecutionStatusInProgress {
			return buildExecutionResponse(execution, steps), nil
		}

		execution.Status = constants.ExecutionStatusAbandoned
		execution.LastActivity = fes.now()

		err = fes.execStore.UpdateExecution(execution, execution.Revision)
		if errors.Is(err, constants.ErrRevisionConflict) {
			continue
		}
		if err != nil {
			logger.Error("Failed to update execution", log.Error(err))
			return nil, &constants.ErrorInternalServerError
		}

		execution.Revision++
		logger.Debug("Abandoned flow execution", log.String(log.LoggerKeyExecutionID, execution.ID))
		return buildExecutionResponse(execution, steps), nil
	}

	return nil, &constants.ErrorConcurrentUpdate
}

// GetSummary derives the summary of an execution from its recorded answers.
// For an execution still in progress the total time keeps growing.
func (fes *FlowExecService) GetSummary(
	flowID, sessionToken string,
) (*model.FlowSummary, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	flow, err := fes.flowStore.GetFlow(flowID)
	if err != nil {
		if errors.Is(err, constants.ErrFlowNotFound) {
			return nil, &constants.ErrorFlowNotFound
		}
		logger.Error("Failed to get flow", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	execution, svcErr := fes.getExecution(flowID, sessionToken)
	if svcErr != nil {
		return nil, svcErr
	}

	steps, err := fes.flowStore.GetFlowStepList(flowID)
	if err != nil {
		logger.Error("Failed to list flow steps", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	summary := BuildSummary(flow, steps, execution, fes.now())
	return &summary, nil
}

// getActiveFlow loads a flow and rejects inactive ones.
func (fes *FlowExecService) getActiveFlow(flowID string) (model.Flow, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	flow, err := fes.flowStore.GetFlow(flowID)
	if err != nil {
		if errors.Is(err, constants.ErrFlowNotFound) {
			return model.Flow{}, &constants.ErrorFlowNotFound
		}
		logger.Error("Failed to get flow", log.Error(err))
		return model.Flow{}, &constants.ErrorInternalServerError
	}
	if !flow.IsActive {
		return model.Flow{}, &constants.ErrorFlowNotFound
	}
	return flow, nil
}

// getExecution loads an execution by flow id and session token.
func (fes *FlowExecService) getExecution(
	flowID, sessionToken string,
) (model.FlowExecution, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	execution, err := fes.execStore.GetExecutionBySessionToken(flowID, sessionToken)
	if err != nil {
		if errors.Is(err, constants.ErrExecutionNotFound) {
			return model.FlowExecution{}, &constants.ErrorExecutionNotFound
		}
		logger.Error("Failed to get execution", log.Error(err))
		return model.FlowExecution{}, &constants.ErrorInternalServerError
	}
	return execution, nil
}

// buildExecutionResponse embeds the resolved current step into the wire shape.
// A current step id that no longer resolves against the step list leaves the
// embedded step empty; the stored pointer is not rewritten by a read.
func buildExecutionResponse(execution model.FlowExecution, steps []model.FlowStep) *model.ExecutionResponse {
	response := &model.ExecutionResponse{Execution: execution}
	if execution.CurrentStepID != nil {
		for i := range steps {
			if steps[i].ID == *execution.CurrentStepID {
				response.CurrentStep = &steps[i]
				break
			}
		}
	}
	return response
}
