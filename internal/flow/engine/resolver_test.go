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

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/wikiguides/wikiguides/internal/flow/constants"
	"github.com/wikiguides/wikiguides/internal/flow/model"
)

type ResolverTestSuite struct {
	suite.Suite
}

func TestResolverTestSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func strPtr(s string) *string {
	return &s
}

func linearSteps() []model.FlowStep {
	return []model.FlowStep{
		{ID: "step-1", FlowID: "flow-1", StepOrder: 1, StepType: constants.StepTypeInformation},
		{ID: "step-2", FlowID: "flow-1", StepOrder: 2, StepType: constants.StepTypeTextInput},
		{ID: "step-3", FlowID: "flow-1", StepOrder: 3, StepType: constants.StepTypeInformation},
	}
}

func (suite *ResolverTestSuite) TestFirstStep() {
	steps := linearSteps()
	first := FirstStep(steps)
	assert.NotNil(suite.T(), first)
	assert.Equal(suite.T(), "step-1", *first)
}

func (suite *ResolverTestSuite) TestFirstStepOrderTieBrokenByID() {
	steps := []model.FlowStep{
		{ID: "step-b", FlowID: "flow-1", StepOrder: 1, StepType: constants.StepTypeInformation},
		{ID: "step-a", FlowID: "flow-1", StepOrder: 1, StepType: constants.StepTypeInformation},
	}
	first := FirstStep(steps)
	assert.NotNil(suite.T(), first)
	assert.Equal(suite.T(), "step-a", *first)
}

func (suite *ResolverTestSuite) TestFirstStepEmptyFlow() {
	assert.Nil(suite.T(), FirstStep(nil))
	assert.Nil(suite.T(), FirstStep([]model.FlowStep{}))
}

func (suite *ResolverTestSuite) TestResolveAdvancesByOrder() {
	steps := linearSteps()
	next, err := ResolveNextStep(steps[0], "", steps)
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), next)
	assert.Equal(suite.T(), "step-2", *next)
}

func (suite *ResolverTestSuite) TestResolveLastStepCompletes() {
	steps := linearSteps()
	next, err := ResolveNextStep(steps[2], "done", steps)
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), next)
}

func (suite *ResolverTestSuite) TestResolveSkipsOrderGaps() {
	steps := []model.FlowStep{
		{ID: "step-1", FlowID: "flow-1", StepOrder: 1, StepType: constants.StepTypeTextInput},
		{ID: "step-9", FlowID: "flow-1", StepOrder: 9, StepType: constants.StepTypeInformation},
	}
	next, err := ResolveNextStep(steps[0], "answer", steps)
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), next)
	assert.Equal(suite.T(), "step-9", *next)
}

func (suite *ResolverTestSuite) TestResolveUnknownStepReference() {
	steps := linearSteps()
	stray := model.FlowStep{ID: "step-x", FlowID: "flow-1", StepOrder: 5,
		StepType: constants.StepTypeInformation}
	next, err := ResolveNextStep(stray, "", steps)
	assert.Nil(suite.T(), next)
	assert.ErrorIs(suite.T(), err, constants.ErrInvalidStepReference)
}

func (suite *ResolverTestSuite) TestResolveStepFromAnotherFlow() {
	steps := linearSteps()
	foreign := model.FlowStep{ID: "step-1", FlowID: "flow-2", StepOrder: 1,
		StepType: constants.StepTypeInformation}
	next, err := ResolveNextStep(foreign, "", steps)
	assert.Nil(suite.T(), next)
	assert.ErrorIs(suite.T(), err, constants.ErrInvalidStepReference)
}

func (suite *ResolverTestSuite) TestMultipleChoiceRoutesByOption() {
	steps := []model.FlowStep{
		{ID: "step-1", FlowID: "flow-1", StepOrder: 1, StepType: constants.StepTypeMultipleChoice,
			Options: []model.StepOption{
				{Label: "Hardware", Value: "hardware", NextStepID: strPtr("step-3")},
				{Label: "Software", Value: "software", NextStepID: strPtr("step-2")},
			}},
		{ID: "step-2", FlowID: "flow-1", StepOrder: 2, StepType: constants.StepTypeInformation},
		{ID: "step-3", FlowID: "flow-1", StepOrder: 3, StepType: constants.StepTypeInformation},
	}
	next, err := ResolveNextStep(steps[0], "hardware", steps)
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), next)
	assert.Equal(suite.T(), "step-3", *next)
}

func (suite *ResolverTestSuite) TestMultipleChoiceOptionWithoutTargetFallsBackToOrder() {
	steps := []model.FlowStep{
		{ID: "step-1", FlowID: "flow-1", StepOrder: 1, StepType: constants.StepTypeMultipleChoice,
			Options: []model.StepOption{
				{Label: "Yes", Value: "yes"},
			}},
		{ID: "step-2", FlowID: "flow-1", StepOrder: 2, StepType: constants.StepTypeInformation},
	}
	next, err := ResolveNextStep(steps[0], "yes", steps)
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), next)
	assert.Equal(suite.T(), "step-2", *next)
}

func (suite *ResolverTestSuite) TestMultipleChoiceUnmatchedAnswerFallsBackToOrder() {
	steps := []model.FlowStep{
		{ID: "step-1", FlowID: "flow-1", StepOrder: 1, StepType: constants.StepTypeMultipleChoice,
			Options: []model.StepOption{
				{Label: "Yes", Value: "yes", NextStepID: strPtr("step-3")},
			}},
		{ID: "step-2", FlowID: "flow-1", StepOrder: 2, StepType: constants.StepTypeInformation},
		{ID: "step-3", FlowID: "flow-1", StepOrder: 3, StepType: constants.StepTypeInformation},
	}
	next, err := ResolveNextStep(steps[0], "maybe", steps)
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), next)
	assert.Equal(suite.T(), "step-2", *next)
}

func (suite *ResolverTestSuite) TestMultipleChoiceTargetRemovedTreatedAsCompletion() {
	steps := []model.FlowStep{
		{ID: "step-1", FlowID: "flow-1", StepOrder: 1, StepType: constants.StepTypeMultipleChoice,
			Options: []model.StepOption{
				{Label: "Yes", Value: "yes", NextStepID: strPtr("step-gone")},
			}},
	}
	next, err := ResolveNextStep(steps[0], "yes", steps)
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), next)
}

func (suite *ResolverTestSuite) TestConditionalBranchMatchesCondition() {
	steps := []model.FlowStep{
		{ID: "step-1", FlowID: "flow-1", StepOrder: 1, StepType: constants.StepTypeConditionalBranch,
			Conditions: []model.BranchCondition{
				{Field: constants.BranchFieldAnswer, Operator: constants.BranchOperatorEquals,
					Value: "urgent", NextStepID: strPtr("step-3")},
			},
			DefaultNextStepID: strPtr("step-2")},
		{ID: "step-2", FlowID: "flow-1", StepOrder: 2, StepType: constants.StepTypeInformation},
		{ID: "step-3", FlowID: "flow-1", StepOrder: 3, StepType: constants.StepTypeInformation},
	}
	next, err := ResolveNextStep(steps[0], "urgent", steps)
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), next)
	assert.Equal(suite.T(), "step-3", *next)
}

func (suite *ResolverTestSuite) TestConditionalBranchFallsBackToDefault() {
	steps := []model.FlowStep{
		{ID: "step-1", FlowID: "flow-1", StepOrder: 1, StepType: constants.StepTypeConditionalBranch,
			Conditions: []model.BranchCondition{
				{Field: constants.BranchFieldAnswer, Operator: constants.BranchOperatorEquals,
					Value: "urgent", NextStepID: strPtr("step-3")},
			},
			DefaultNextStepID: strPtr("step-2")},
		{ID: "step-2", FlowID: "flow-1", StepOrder: 2, StepType: constants.StepTypeInformation},
		{ID: "step-3", FlowID: "flow-1", StepOrder: 3, StepType: constants.StepTypeInformation},
	}
	next, err := ResolveNextStep(steps[0], "routine", steps)
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), next)
	assert.Equal(suite.T(), "step-2", *next)
}

func (suite *ResolverTestSuite) TestConditionalBranchConditionsEvaluatedInOrder() {
	steps := []model.FlowStep{
		{ID: "step-1", FlowID: "flow-1", StepOrder: 1, StepType: constants.StepTypeConditionalBranch,
			Conditions: []model.BranchCondition{
				{Field: constants.BranchFieldAnswer, Operator: constants.BranchOperatorEquals,
					Value: "yes", NextStepID: strPtr("step-2")},
				{Field: constants.BranchFieldAnswer, Operator: constants.BranchOperatorEquals,
					Value: "yes", NextStepID: strPtr("step-3")},
			}},
		{ID: "step-2", FlowID: "flow-1", StepOrder: 2, StepType: constants.StepTypeInformation},
		{ID: "step-3", FlowID: "flow-1", StepOrder: 3, StepType: constants.StepTypeInformation},
	}
	next, err := ResolveNextStep(steps[0], "yes", steps)
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), next)
	assert.Equal(suite.T(), "step-2", *next)
}

func (suite *ResolverTestSuite) TestConditionalBranchNilConditionTargetCompletes() {
	steps := []model.FlowStep{
		{ID: "step-1", FlowID: "flow-1", StepOrder: 1, StepType: constants.StepTypeConditionalBranch,
			Conditions: []model.BranchCondition{
				{Field: constants.BranchFieldAnswer, Operator: constants.BranchOperatorEquals,
					Value: "stop", NextStepID: nil},
			},
			DefaultNextStepID: strPtr("step-2")},
		{ID: "step-2", FlowID: "flow-1", StepOrder: 2, StepType: constants.StepTypeInformation},
	}
	next, err := ResolveNextStep(steps[0], "stop", steps)
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), next)
}

func (suite *ResolverTestSuite) TestConditionalBranchNoDefaultCompletes() {
	steps := []model.FlowStep{
		{ID: "step-1", FlowID: "flow-1", StepOrder: 1, StepType: constants.StepTypeConditionalBranch,
			Conditions: []model.BranchCondition{
				{Field: constants.BranchFieldAnswer, Operator: constants.BranchOperatorEquals,
					Value: "urgent", NextStepID: strPtr("step-2")},
			}},
		{ID: "step-2", FlowID: "flow-1", StepOrder: 2, StepType: constants.StepTypeInformation},
	}
	next, err := ResolveNextStep(steps[0], "routine", steps)
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), next)
}

func (suite *ResolverTestSuite) TestConditionalBranchIgnoresUnsupportedOperator() {
	steps := []model.FlowStep{
		{ID: "step-1", FlowID: "flow-1", StepOrder: 1, StepType: constants.StepTypeConditionalBranch,
			Conditions: []model.BranchCondition{
				{Field: constants.BranchFieldAnswer, Operator: "contains",
					Value: "urgent", NextStepID: strPtr("step-3")},
			},
			DefaultNextStepID: strPtr("step-2")},
		{ID: "step-2", FlowID: "flow-1", StepOrder: 2, StepType: constants.StepTypeInformation},
		{ID: "step-3", FlowID: "flow-1", StepOrder: 3, StepType: constants.StepTypeInformation},
	}
	next, err := ResolveNextStep(steps[0], "urgent", steps)
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), next)
	assert.Equal(suite.T(), "step-2", *next)
}

func (suite *ResolverTestSuite) TestSubflowAdvancesByOrder() {
	steps := []model.FlowStep{
		{ID: "step-1", FlowID: "flow-1", StepOrder: 1, StepType: constants.StepTypeSubflow,
			SubflowID: strPtr("flow-2")},
		{ID: "step-2", FlowID: "flow-1", StepOrder: 2, StepType: constants.StepTypeInformation},
	}
	next, err := ResolveNextStep(steps[0], "", steps)
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), next)
	assert.Equal(suite.T(), "step-2", *next)
}
