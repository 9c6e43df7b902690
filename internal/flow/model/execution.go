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

// Package model defines the data structures for flow management and execution.
package model

import (
	"time"

	"github.com/wikiguides/wikiguides/internal/flow/constants"
)

// StepAnswer represents a recorded answer for a single step of an execution.
type StepAnswer struct {
	Value      string            `json:"answer"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	AnsweredAt time.Time         `json:"answered_at"`
}

// FlowExecution represents a single walk through a flow.
//
// CurrentStepID is nil exactly when the execution is completed; Status and
// CompletedAt transition together with it. Revision is an optimistic
// concurrency counter bumped on every persisted mutation.
type FlowExecution struct {
	ID             string                    `json:"id"`
	FlowID         string                    `json:"flow_id"`
	UserID         *string                   `json:"user_id,omitempty"`
	SessionToken   string                    `json:"session_token"`
	Status         constants.ExecutionStatus `json:"status"`
	CurrentStepID  *string                   `json:"current_step_id"`
	Answers        map[string]StepAnswer     `json:"answers"`
	SessionContext map[string]string         `json:"session_context,omitempty"`
	ResumePath     string                    `json:"resume_path,omitempty"`
	Revision       int64                     `json:"-"`
	StartedAt      time.Time                 `json:"started_at"`
	CompletedAt    *time.Time                `json:"completed_at,omitempty"`
	LastActivity   time.Time                 `json:"last_activity"`
}

// SubmitAnswerRequest represents the request body for submitting an answer.
type SubmitAnswerRequest struct {
	StepID   string            `json:"step_id"`
	Answer   string            `json:"answer"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// ExecutionResponse represents the wire shape of an execution, with the
// resolved current step embedded so clients can render it without a second
// round trip.
type ExecutionResponse struct {
	Execution   FlowExecution `json:"execution"`
	CurrentStep *FlowStep     `json:"current_step,omitempty"`
}

// CompletedStep is a single entry of the structured summary record.
type CompletedStep struct {
	StepOrder  int    `json:"step_order"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	AnsweredAt string `json:"answered_at"`
}

// FlowSummary represents the summary of a flow execution in three
// synchronized representations derived from the same completed-steps list.
type FlowSummary struct {
	FlowID           string          `json:"flow_id"`
	FlowTitle        string          `json:"flow_title"`
	ExecutionID      string          `json:"execution_id"`
	SummaryText      string          `json:"summary_text"`
	FormattedText    string          `json:"formatted_text"`
	CompletedSteps   []CompletedStep `json:"completed_steps"`
	TotalTimeSeconds int64           `json:"total_time_seconds"`
	StartedAt        string          `json:"started_at"`
	CompletedAt      string          `json:"completed_at,omitempty"`
}
