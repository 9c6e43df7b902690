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

package flowexec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/wikiguides/wikiguides/internal/flow/constants"
	"github.com/wikiguides/wikiguides/internal/flow/model"
)

type SummaryTestSuite struct {
	suite.Suite
	flow      model.Flow
	steps     []model.FlowStep
	startedAt time.Time
}

func TestSummaryTestSuite(t *testing.T) {
	suite.Run(t, new(SummaryTestSuite))
}

func (suite *SummaryTestSuite) SetupTest() {
	suite.flow = model.Flow{ID: "flow-1", Title: "Password Reset"}
	suite.steps = []model.FlowStep{
		{ID: "step-2", FlowID: "flow-1", StepOrder: 2,
			StepType: constants.StepTypeTextInput, Question: "What error do you see?"},
		{ID: "step-1", FlowID: "flow-1", StepOrder: 1,
			StepType: constants.StepTypeTextInput, Question: "What is your email?"},
	}
	suite.startedAt = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
}

func (suite *SummaryTestSuite) completedExecution() model.FlowExecution {
	completedAt := suite.startedAt.Add(45 * time.Second)
	return model.FlowExecution{
		ID:     "exec-1",
		FlowID: "flow-1",
		Status: constants.ExecutionStatusCompleted,
		Answers: map[string]model.StepAnswer{
			"step-1": {Value: "user@example.com", AnsweredAt: suite.startedAt.Add(10 * time.Second)},
			"step-2": {Value: "login failed", AnsweredAt: completedAt},
		},
		StartedAt:   suite.startedAt,
		CompletedAt: &completedAt,
	}
}

func (suite *SummaryTestSuite) TestCompletedStepsOrderedByStepOrder() {
	summary := BuildSummary(suite.flow, suite.steps, suite.completedExecution(), suite.startedAt)

	assert.Len(suite.T(), summary.CompletedSteps, 2)
	assert.Equal(suite.T(), "What is your email?", summary.CompletedSteps[0].Question)
	assert.Equal(suite.T(), "What error do you see?", summary.CompletedSteps[1].Question)
	assert.Equal(suite.T(), int64(45), summary.TotalTimeSeconds)
	assert.Equal(suite.T(), "2025-06-01T10:00:00Z", summary.StartedAt)
	assert.Equal(suite.T(), "2025-06-01T10:00:45Z", summary.CompletedAt)
}

func (suite *SummaryTestSuite) TestUnansweredStepsExcluded() {
	execution := suite.completedExecution()
	delete(execution.Answers, "step-2")

	summary := BuildSummary(suite.flow, suite.steps, execution, suite.startedAt)

	assert.Len(suite.T(), summary.CompletedSteps, 1)
	assert.Equal(suite.T(), "user@example.com", summary.CompletedSteps[0].Answer)
}

func (suite *SummaryTestSuite) TestSummaryText() {
	summary := BuildSummary(suite.flow, suite.steps, suite.completedExecution(), suite.startedAt)

	assert.Equal(suite.T(),
		"Password Reset: 2 steps completed in 45s - What is your email?: user@example.com; "+
			"What error do you see?: login failed",
		summary.SummaryText)
}

func (suite *SummaryTestSuite) TestSummaryTextSingleAnswer() {
	execution := suite.completedExecution()
	delete(execution.Answers, "step-2")

	summary := BuildSummary(suite.flow, suite.steps, execution, suite.startedAt)

	assert.Equal(suite.T(),
		"Password Reset: 1 step completed in 45s - What is your email?: user@example.com",
		summary.SummaryText)
}

func (suite *SummaryTestSuite) TestFormattedText() {
	summary := BuildSummary(suite.flow, suite.steps, suite.completedExecution(), suite.startedAt)

	assert.Equal(suite.T(),
		"## Password Reset\n\n"+
			"Total time: 45s\n\n"+
			"- **What is your email?**: user@example.com\n"+
			"- **What error do you see?**: login failed\n",
		summary.FormattedText)
}

func (suite *SummaryTestSuite) TestNoAnswers() {
	completedAt := suite.startedAt.Add(5 * time.Second)
	execution := model.FlowExecution{
		ID:          "exec-1",
		FlowID:      "flow-1",
		Status:      constants.ExecutionStatusCompleted,
		StartedAt:   suite.startedAt,
		CompletedAt: &completedAt,
	}

	summary := BuildSummary(suite.flow, suite.steps, execution, suite.startedAt)

	assert.Empty(suite.T(), summary.CompletedSteps)
	assert.Equal(suite.T(), "Password Reset: 0 steps completed in 5s", summary.SummaryText)
}

func (suite *SummaryTestSuite) TestInProgressMeasuresAgainstNow() {
	execution := model.FlowExecution{
		ID:        "exec-1",
		FlowID:    "flow-1",
		Status:    constants.ExecutionStatusInProgress,
		StartedAt: suite.startedAt,
		Answers: map[string]model.StepAnswer{
			"step-1": {Value: "user@example.com", AnsweredAt: suite.startedAt},
		},
	}

	summary := BuildSummary(suite.flow, suite.steps, execution, suite.startedAt.Add(90*time.Second))

	assert.Equal(suite.T(), int64(90), summary.TotalTimeSeconds)
	assert.Empty(suite.T(), summary.CompletedAt)
}

func (suite *SummaryTestSuite) TestNegativeDurationClampedToZero() {
	execution := model.FlowExecution{
		ID:        "exec-1",
		FlowID:    "flow-1",
		Status:    constants.ExecutionStatusInProgress,
		StartedAt: suite.startedAt,
	}

	summary := BuildSummary(suite.flow, suite.steps, execution, suite.startedAt.Add(-time.Minute))

	assert.Equal(suite.T(), int64(0), summary.TotalTimeSeconds)
}
