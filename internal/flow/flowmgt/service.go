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

// Package flowmgt provides flow and step authoring operations.
package flowmgt

import (
	"errors"
	"strings"

	"github.com/wikiguides/wikiguides/internal/flow/constants"
	"github.com/wikiguides/wikiguides/internal/flow/model"
	"github.com/wikiguides/wikiguides/internal/flow/store"
	"github.com/wikiguides/wikiguides/internal/system/error/serviceerror"
	"github.com/wikiguides/wikiguides/internal/system/log"
	"github.com/wikiguides/wikiguides/internal/system/utils"
)

const loggerComponentName = "FlowMgtService"

// FlowMgtServiceInterface defines the interface for flow authoring operations.
type FlowMgtServiceInterface interface {
	GetFlowList(visibility constants.FlowVisibility, tag string) (*model.FlowListResponse, *serviceerror.ServiceError)
	CreateFlow(request model.FlowRequest, createdBy *string) (model.Flow, *serviceerror.ServiceError)
	GetFlow(flowID string) (model.Flow, *serviceerror.ServiceError)
	UpdateFlow(flowID string, request model.FlowRequest) (model.Flow, *serviceerror.ServiceError)
	DeleteFlow(flowID string) *serviceerror.ServiceError
	GetFlowStepList(flowID string) (*model.FlowStepListResponse, *serviceerror.ServiceError)
	CreateFlowStep(flowID string, request model.FlowStepRequest) (model.FlowStep, *serviceerror.ServiceError)
	UpdateFlowStep(flowID, stepID string, request model.FlowStepRequest) (model.FlowStep, *serviceerror.ServiceError)
	DeleteFlowStep(flowID, stepID string) *serviceerror.ServiceError
}

// FlowMgtService provides flow authoring operations.
type FlowMgtService struct {
	store store.FlowStoreInterface
}

// GetFlowMgtService creates a flow management service backed by the SQL store.
func GetFlowMgtService() FlowMgtServiceInterface {
	return &FlowMgtService{store: store.NewFlowStore()}
}

// NewFlowMgtService creates a flow management service with the given store.
func NewFlowMgtService(flowStore store.FlowStoreInterface) FlowMgtServiceInterface {
	return &FlowMgtService{store: flowStore}
}

// GetFlowList retrieves active flows, optionally filtered by visibility and tag.
func (fms *FlowMgtService) GetFlowList(
	visibility constants.FlowVisibility, tag string,
) (*model.FlowListResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if visibility != "" && !constants.IsValidVisibility(visibility) {
		return nil, &constants.ErrorInvalidVisibility
	}

	flows, err := fms.store.GetFlowList()
	if err != nil {
		logger.Error("Failed to list flows", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	filtered := make([]model.Flow, 0, len(flows))
	for _, flow := range flows {
		if visibility != "" && flow.Visibility != visibility {
			continue
		}
		if tag != "" && !containsTag(flow.Tags, tag) {
			continue
		}
		filtered = append(filtered, flow)
	}

	return &model.FlowListResponse{
		TotalResults: len(filtered),
		Count:        len(filtered),
		Flows:        filtered,
	}, nil
}

// CreateFlow creates a new flow definition.
func (fms *FlowMgtService) CreateFlow(
	request model.FlowRequest, createdBy *string,
) (model.Flow, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	logger.Debug("Creating flow", log.String("title", request.Title))

	if strings.TrimSpace(request.Title) == "" {
		return model.Flow{}, &constants.ErrorInvalidRequestFormat
	}
	visibility := request.Visibility
	if visibility == "" {
		visibility = constants.VisibilityPublic
	}
	if !constants.IsValidVisibility(visibility) {
		return model.Flow{}, &constants.ErrorInvalidVisibility
	}

	flow := model.Flow{
		ID:          utils.GenerateUUID(),
		Title:       request.Title,
		Description: request.Description,
		Visibility:  visibility,
		Tags:        request.Tags,
		Version:     1,
		IsActive:    true,
		CreatedBy:   createdBy,
	}

	if err := fms.store.CreateFlow(flow); err != nil {
		logger.Error("Failed to create flow", log.Error(err))
		return model.Flow{}, &constants.ErrorInternalServerError
	}

	logger.Debug("Successfully created flow", log.String(log.LoggerKeyFlowID, flow.ID))
	return flow, nil
}

// GetFlow retrieves a flow by id.
func (fms *FlowMgtService) GetFlow(flowID string) (model.Flow, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	flow, err := fms.store.GetFlow(flowID)
	if err != nil {
		if errors.Is(err, constants.ErrFlowNotFound) {
			return model.Flow{}, &constants.ErrorFlowNotFound
		}
		logger.Error("Failed to get flow", log.Error(err))
		return model.Flow{}, &constants.ErrorInternalServerError
	}

	return flow, nil
}

// UpdateFlow updates a flow definition and bumps its version.
func (fms *FlowMgtService) UpdateFlow(
	flowID string, request model.FlowRequest,
) (model.Flow, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	logger.Debug("Updating flow", log.String(log.LoggerKeyFlowID, flowID))

	if strings.TrimSpace(request.Title) == "" {
		return model.Flow{}, &constants.ErrorInvalidRequestFormat
	}
	visibility := request.Visibility
	if visibility != "" && !constants.IsValidVisibility(visibility) {
		return model.Flow{}, &constants.ErrorInvalidVisibility
	}

	existing, err := fms.store.GetFlow(flowID)
	if err != nil {
		if errors.Is(err, constants.ErrFlowNotFound) {
			return model.Flow{}, &constants.ErrorFlowNotFound
		}
		logger.Error("Failed to get flow", log.Error(err))
		return model.Flow{}, &constants.ErrorInternalServerError
	}

	if visibility == "" {
		visibility = existing.Visibility
	}

	updated := model.Flow{
		ID:          existing.ID,
		Title:       request.Title,
		Description: request.Description,
		Visibility:  visibility,
		Tags:        request.Tags,
		Version:     existing.Version + 1,
		IsActive:    existing.IsActive,
		CreatedBy:   existing.CreatedBy,
		CreatedAt:   existing.CreatedAt,
	}

	if err := fms.store.UpdateFlow(updated); err != nil {
		if errors.Is(err, constants.ErrFlowNotFound) {
			return model.Flow{}, &constants.ErrorFlowNotFound
		}
		logger.Error("Failed to update flow", log.Error(err))
		return model.Flow{}, &constants.ErrorInternalServerError
	}

	logger.Debug("Successfully updated flow", log.String(log.LoggerKeyFlowID, flowID))
	return updated, nil
}

// DeleteFlow soft deletes a flow. Existing executions keep their recorded state.
func (fms *FlowMgtService) DeleteFlow(flowID string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	logger.Debug("Deleting flow", log.String(log.LoggerKeyFlowID, flowID))

	if err := fms.store.DeactivateFlow(flowID); err != nil {
		if errors.Is(err, constants.ErrFlowNotFound) {
			return &constants.ErrorFlowNotFound
		}
		logger.Error("Failed to delete flow", log.Error(err))
		return &constants.ErrorInternalServerError
	}

	logger.Debug("Successfully deleted flow", log.String(log.LoggerKeyFlowID, flowID))
	return nil
}

// GetFlowStepList retrieves the steps of a flow ordered by step order.
func (fms *FlowMgtService) GetFlowStepList(flowID string) (*model.FlowStepListResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if _, svcErr := fms.GetFlow(flowID); svcErr != nil {
		return nil, svcErr
	}

	steps, err := fms.store.GetFlowStepList(flowID)
	if err != nil {
		logger.Error("Failed to list flow steps", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	return &model.FlowStepListResponse{
		TotalResults: len(steps),
		Count:        len(steps),
		Steps:        steps,
	}, nil
}

// CreateFlowStep creates a new step in a flow after validating its payload.
func (fms *FlowMgtService) CreateFlowStep(
	flowID string, request model.FlowStepRequest,
) (model.FlowStep, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	logger.Debug("Creating flow step", log.String(log.LoggerKeyFlowID, flowID))

	if _, svcErr := fms.GetFlow(flowID); svcErr != nil {
		return model.FlowStep{}, svcErr
	}

	step := buildStep(utils.GenerateUUID(), flowID, request)
	if svcErr := fms.validateStep(step, ""); svcErr != nil {
		return model.FlowStep{}, svcErr
	}

	if err := fms.store.CreateFlowStep(step); err != nil {
		logger.Error("Failed to create flow step", log.Error(err))
		return model.FlowStep{}, &constants.ErrorInternalServerError
	}

	logger.Debug("Successfully created flow step", log.String(log.LoggerKeyStepID, step.ID))
	return step, nil
}

// UpdateFlowStep updates a step of a flow after validating its payload.
func (fms *FlowMgtService) UpdateFlowStep(
	flowID, stepID string, request model.FlowStepRequest,
) (model.FlowStep, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	logger.Debug("Updating flow step",
		log.String(log.LoggerKeyFlowID, flowID), log.String(log.LoggerKeyStepID, stepID))

	if _, err := fms.store.GetFlowStep(flowID, stepID); err != nil {
		if errors.Is(err, constants.ErrStepNotFound) {
			return model.FlowStep{}, &constants.ErrorStepNotFound
		}
		logger.Error("Failed to get flow step", log.Error(err))
		return model.FlowStep{}, &constants.ErrorInternalServerError
	}

	step := buildStep(stepID, flowID, request)
	if svcErr := fms.validateStep(step, stepID); svcErr != nil {
		return model.FlowStep{}, svcErr
	}

	if err := fms.store.UpdateFlowStep(step); err != nil {
		if errors.Is(err, constants.ErrStepNotFound) {
			return model.FlowStep{}, &constants.ErrorStepNotFound
		}
		logger.Error("Failed to update flow step", log.Error(err))
		return model.FlowStep{}, &constants.ErrorInternalServerError
	}

	logger.Debug("Successfully updated flow step", log.String(log.LoggerKeyStepID, stepID))
	return step, nil
}

// DeleteFlowStep deletes a step from a flow. Dangling next step references
// left behind by the deletion resolve to completion at execution time.
func (fms *FlowMgtService) DeleteFlowStep(flowID, stepID string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	logger.Debug("Deleting flow step",
		log.String(log.LoggerKeyFlowID, flowID), log.String(log.LoggerKeyStepID, stepID))

	if err := fms.store.DeleteFlowStep(flowID, stepID); err != nil {
		if errors.Is(err, constants.ErrStepNotFound) {
			return &constants.ErrorStepNotFound
		}
		logger.Error("Failed to delete flow step", log.Error(err))
		return &constants.ErrorInternalServerError
	}

	return nil
}

// validateStep validates a step's type and per-type payload. Unknown step
// types and unknown branch operators are rejected here, at authoring time;
// resolution never sees them. selfID is the id of the step being updated so
// self references validate, empty for a create.
func (fms *FlowMgtService) validateStep(step model.FlowStep, selfID string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if !constants.IsValidStepType(step.StepType) {
		return &constants.ErrorInvalidStepType
	}
	if strings.TrimSpace(step.Question) == "" && step.StepType != constants.StepTypeConditionalBranch {
		return &constants.ErrorInvalidRequestFormat
	}

	references := make([]*string, 0)

	switch step.StepType {
	case constants.StepTypeMultipleChoice:
		if len(step.Options) == 0 {
			return &constants.ErrorInvalidStepPayload
		}
		for _, option := range step.Options {
			if strings.TrimSpace(option.Value) == "" {
				return &constants.ErrorInvalidStepPayload
			}
			references = append(references, option.NextStepID)
		}
	case constants.StepTypeConditionalBranch:
		if len(step.Conditions) == 0 {
			return &constants.ErrorInvalidStepPayload
		}
		for _, condition := range step.Conditions {
			if condition.Operator != constants.BranchOperatorEquals ||
				condition.Field != constants.BranchFieldAnswer {
				return &constants.ErrorInvalidBranchOperator
			}
			references = append(references, condition.NextStepID)
		}
		references = append(references, step.DefaultNextStepID)
	case constants.StepTypeSubflow:
		if step.SubflowID == nil || strings.TrimSpace(*step.SubflowID) == "" {
			return &constants.ErrorInvalidStepPayload
		}
		if _, err := fms.store.GetFlow(*step.SubflowID); err != nil {
			if errors.Is(err, constants.ErrFlowNotFound) {
				return &constants.ErrorInvalidStepPayload
			}
			logger.Error("Failed to validate subflow reference", log.Error(err))
			return &constants.ErrorInternalServerError
		}
	}

	return fms.validateStepReferences(step.FlowID, selfID, references)
}

// validateStepReferences checks that every non-nil next step reference points
// to an existing step of the same flow.
func (fms *FlowMgtService) validateStepReferences(
	flowID, selfID string, references []*string,
) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	targets := make([]string, 0, len(references))
	for _, ref := range references {
		if ref != nil && *ref != selfID {
			targets = append(targets, *ref)
		}
	}
	if len(targets) == 0 {
		return nil
	}

	steps, err := fms.store.GetFlowStepList(flowID)
	if err != nil {
		logger.Error("Failed to list flow steps", log.Error(err))
		return &constants.ErrorInternalServerError
	}

	known := make(map[string]bool, len(steps))
	for _, s := range steps {
		known[s.ID] = true
	}
	for _, target := range targets {
		if !known[target] {
			return &constants.ErrorInvalidNextStepReference
		}
	}

	return nil
}

// buildStep assembles a step model from an authoring request.
func buildStep(stepID, flowID string, request model.FlowStepRequest) model.FlowStep {
	return model.FlowStep{
		ID:                stepID,
		FlowID:            flowID,
		StepOrder:         request.StepOrder,
		StepType:          request.StepType,
		Question:          request.Question,
		Description:       request.Description,
		IsRequired:        request.IsRequired,
		Images:            request.Images,
		Options:           request.Options,
		Validation:        request.Validation,
		Conditions:        request.Conditions,
		DefaultNextStepID: request.DefaultNextStepID,
		SubflowID:         request.SubflowID,
	}
}

// containsTag reports whether the tag list contains the given tag.
func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
