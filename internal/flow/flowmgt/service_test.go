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

package flowmgt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/wikiguides/wikiguides/internal/flow/constants"
	"github.com/wikiguides/wikiguides/internal/flow/model"
)

type memoryFlowStore struct {
	flows map[string]model.Flow
	steps map[string][]model.FlowStep
}

func newMemoryFlowStore() *memoryFlowStore {
	return &memoryFlowStore{
		flows: make(map[string]model.Flow),
		steps: make(map[string][]model.FlowStep),
	}
}

func (mfs *memoryFlowStore) GetFlowListCount() (int, error) {
	count := 0
	for _, flow := range mfs.flows {
		if flow.IsActive {
			count++
		}
	}
	return count, nil
}

func (mfs *memoryFlowStore) GetFlowList() ([]model.Flow, error) {
	flows := make([]model.Flow, 0, len(mfs.flows))
	for _, flow := range mfs.flows {
		if flow.IsActive {
			flows = append(flows, flow)
		}
	}
	return flows, nil
}

func (mfs *memoryFlowStore) CreateFlow(flow model.Flow) error {
	mfs.flows[flow.ID] = flow
	return nil
}

func (mfs *memoryFlowStore) GetFlow(flowID string) (model.Flow, error) {
	flow, ok := mfs.flows[flowID]
	if !ok {
		return model.Flow{}, constants.ErrFlowNotFound
	}
	return flow, nil
}

func (mfs *memoryFlowStore) UpdateFlow(flow model.Flow) error {
	if _, ok := mfs.flows[flow.ID]; !ok {
		return constants.ErrFlowNotFound
	}
	mfs.flows[flow.ID] = flow
	return nil
}

func (mfs *memoryFlowStore) DeactivateFlow(flowID string) error {
	flow, ok := mfs.flows[flowID]
	if !ok {
		return constants.ErrFlowNotFound
	}
	flow.IsActive = false
	mfs.flows[flowID] = flow
	return nil
}

func (mfs *memoryFlowStore) GetFlowStepList(flowID string) ([]model.FlowStep, error) {
	return mfs.steps[flowID], nil
}

func (mfs *memoryFlowStore) CreateFlowStep(step model.FlowStep) error {
	mfs.steps[step.FlowID] = append(mfs.steps[step.FlowID], step)
	return nil
}

func (mfs *memoryFlowStore) GetFlowStep(flowID, stepID string) (model.FlowStep, error) {
	for _, step := range mfs.steps[flowID] {
		if step.ID == stepID {
			return step, nil
		}
	}
	return model.FlowStep{}, constants.ErrStepNotFound
}

func (mfs *memoryFlowStore) UpdateFlowStep(step model.FlowStep) error {
	for i, existing := range mfs.steps[step.FlowID] {
		if existing.ID == step.ID {
			mfs.steps[step.FlowID][i] = step
			return nil
		}
	}
	return constants.ErrStepNotFound
}

func (mfs *memoryFlowStore) DeleteFlowStep(flowID, stepID string) error {
	steps := mfs.steps[flowID]
	for i, step := range steps {
		if step.ID == stepID {
			mfs.steps[flowID] = append(steps[:i], steps[i+1:]...)
			return nil
		}
	}
	return constants.ErrStepNotFound
}

type FlowMgtServiceTestSuite struct {
	suite.Suite
	store   *memoryFlowStore
	service FlowMgtServiceInterface
}

func TestFlowMgtServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FlowMgtServiceTestSuite))
}

func (suite *FlowMgtServiceTestSuite) SetupTest() {
	suite.store = newMemoryFlowStore()
	suite.service = NewFlowMgtService(suite.store)
}

func (suite *FlowMgtServiceTestSuite) createFlow(title string) model.Flow {
	flow, svcErr := suite.service.CreateFlow(model.FlowRequest{Title: title}, nil)
	suite.Require().Nil(svcErr)
	return flow
}

func (suite *FlowMgtServiceTestSuite) TestCreateFlow() {
	flow := suite.createFlow("Password Reset")

	assert.NotEmpty(suite.T(), flow.ID)
	assert.Equal(suite.T(), constants.VisibilityPublic, flow.Visibility)
	assert.Equal(suite.T(), 1, flow.Version)
	assert.True(suite.T(), flow.IsActive)
}

func (suite *FlowMgtServiceTestSuite) TestCreateFlowEmptyTitle() {
	flow, svcErr := suite.service.CreateFlow(model.FlowRequest{Title: "  "}, nil)
	assert.Empty(suite.T(), flow.ID)
	assert.Equal(suite.T(), constants.ErrorInvalidRequestFormat.Code, svcErr.Code)
}

func (suite *FlowMgtServiceTestSuite) TestCreateFlowInvalidVisibility() {
	flow, svcErr := suite.service.CreateFlow(
		model.FlowRequest{Title: "Password Reset", Visibility: "secret"}, nil)
	assert.Empty(suite.T(), flow.ID)
	assert.Equal(suite.T(), constants.ErrorInvalidVisibility.Code, svcErr.Code)
}

func (suite *FlowMgtServiceTestSuite) TestUpdateFlowBumpsVersion() {
	flow := suite.createFlow("Password Reset")

	updated, svcErr := suite.service.UpdateFlow(flow.ID, model.FlowRequest{Title: "Account Recovery"})
	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), "Account Recovery", updated.Title)
	assert.Equal(suite.T(), 2, updated.Version)
	assert.Equal(suite.T(), flow.Visibility, updated.Visibility)
}

func (suite *FlowMgtServiceTestSuite) TestUpdateFlowNotFound() {
	_, svcErr := suite.service.UpdateFlow("flow-missing", model.FlowRequest{Title: "Title"})
	assert.Equal(suite.T(), constants.ErrorFlowNotFound.Code, svcErr.Code)
}

func (suite *FlowMgtServiceTestSuite) TestDeleteFlowIsSoftDelete() {
	flow := suite.createFlow("Password Reset")

	svcErr := suite.service.DeleteFlow(flow.ID)
	assert.Nil(suite.T(), svcErr)

	stored, err := suite.store.GetFlow(flow.ID)
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), stored.IsActive)
}

func (suite *FlowMgtServiceTestSuite) TestCreateStepInformation() {
	flow := suite.createFlow("Password Reset")

	step, svcErr := suite.service.CreateFlowStep(flow.ID, model.FlowStepRequest{
		StepOrder: 1,
		StepType:  constants.StepTypeInformation,
		Question:  "Read the guide below",
	})
	assert.Nil(suite.T(), svcErr)
	assert.NotEmpty(suite.T(), step.ID)
	assert.Equal(suite.T(), flow.ID, step.FlowID)
}

func (suite *FlowMgtServiceTestSuite) TestCreateStepUnknownType() {
	flow := suite.createFlow("Password Reset")

	_, svcErr := suite.service.CreateFlowStep(flow.ID, model.FlowStepRequest{
		StepOrder: 1,
		StepType:  "slider",
		Question:  "How much?",
	})
	assert.Equal(suite.T(), constants.ErrorInvalidStepType.Code, svcErr.Code)
}

func (suite *FlowMgtServiceTestSuite) TestCreateMultipleChoiceWithoutOptions() {
	flow := suite.createFlow("Password Reset")

	_, svcErr := suite.service.CreateFlowStep(flow.ID, model.FlowStepRequest{
		StepOrder: 1,
		StepType:  constants.StepTypeMultipleChoice,
		Question:  "Pick one",
	})
	assert.Equal(suite.T(), constants.ErrorInvalidStepPayload.Code, svcErr.Code)
}

func (suite *FlowMgtServiceTestSuite) TestCreateConditionalBranchUnknownOperator() {
	flow := suite.createFlow("Password Reset")

	_, svcErr := suite.service.CreateFlowStep(flow.ID, model.FlowStepRequest{
		StepOrder: 1,
		StepType:  constants.StepTypeConditionalBranch,
		Conditions: []model.BranchCondition{
			{Field: constants.BranchFieldAnswer, Operator: "contains", Value: "x"},
		},
	})
	assert.Equal(suite.T(), constants.ErrorInvalidBranchOperator.Code, svcErr.Code)
}

func (suite *FlowMgtServiceTestSuite) TestCreateStepUnknownNextStepReference() {
	flow := suite.createFlow("Password Reset")
	missing := "step-missing"

	_, svcErr := suite.service.CreateFlowStep(flow.ID, model.FlowStepRequest{
		StepOrder: 1,
		StepType:  constants.StepTypeMultipleChoice,
		Question:  "Pick one",
		Options: []model.StepOption{
			{Label: "Yes", Value: "yes", NextStepID: &missing},
		},
	})
	assert.Equal(suite.T(), constants.ErrorInvalidNextStepReference.Code, svcErr.Code)
}

func (suite *FlowMgtServiceTestSuite) TestUpdateStepSelfReferenceAllowed() {
	flow := suite.createFlow("Password Reset")
	step, svcErr := suite.service.CreateFlowStep(flow.ID, model.FlowStepRequest{
		StepOrder: 1,
		StepType:  constants.StepTypeMultipleChoice,
		Question:  "Try again?",
		Options: []model.StepOption{
			{Label: "Yes", Value: "yes"},
		},
	})
	suite.Require().Nil(svcErr)

	updated, svcErr := suite.service.UpdateFlowStep(flow.ID, step.ID, model.FlowStepRequest{
		StepOrder: 1,
		StepType:  constants.StepTypeMultipleChoice,
		Question:  "Try again?",
		Options: []model.StepOption{
			{Label: "Yes", Value: "yes", NextStepID: &step.ID},
		},
	})
	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), step.ID, updated.ID)
}

func (suite *FlowMgtServiceTestSuite) TestCreateSubflowStepValidatesTarget() {
	flow := suite.createFlow("Password Reset")
	target := suite.createFlow("Identity Verification")

	step, svcErr := suite.service.CreateFlowStep(flow.ID, model.FlowStepRequest{
		StepOrder: 1,
		StepType:  constants.StepTypeSubflow,
		Question:  "Verify your identity",
		SubflowID: &target.ID,
	})
	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), target.ID, *step.SubflowID)

	missing := "flow-missing"
	_, svcErr = suite.service.CreateFlowStep(flow.ID, model.FlowStepRequest{
		StepOrder: 2,
		StepType:  constants.StepTypeSubflow,
		Question:  "Verify again",
		SubflowID: &missing,
	})
	assert.Equal(suite.T(), constants.ErrorInvalidStepPayload.Code, svcErr.Code)
}

func (suite *FlowMgtServiceTestSuite) TestDeleteStep() {
	flow := suite.createFlow("Password Reset")
	step, svcErr := suite.service.CreateFlowStep(flow.ID, model.FlowStepRequest{
		StepOrder: 1,
		StepType:  constants.StepTypeInformation,
		Question:  "Read this",
	})
	suite.Require().Nil(svcErr)

	assert.Nil(suite.T(), suite.service.DeleteFlowStep(flow.ID, step.ID))

	svcErrDelete := suite.service.DeleteFlowStep(flow.ID, step.ID)
	assert.Equal(suite.T(), constants.ErrorStepNotFound.Code, svcErrDelete.Code)
}

func (suite *FlowMgtServiceTestSuite) TestGetFlowListFiltersByTag() {
	_, svcErr := suite.service.CreateFlow(
		model.FlowRequest{Title: "Password Reset", Tags: []string{"account"}}, nil)
	suite.Require().Nil(svcErr)
	_, svcErr = suite.service.CreateFlow(
		model.FlowRequest{Title: "VPN Setup", Tags: []string{"network"}}, nil)
	suite.Require().Nil(svcErr)

	response, svcErr := suite.service.GetFlowList("", "network")
	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), 1, response.Count)
	assert.Equal(suite.T(), "VPN Setup", response.Flows[0].Title)
}
