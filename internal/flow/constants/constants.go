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

// Package constants defines constants for flow management and execution operations.
package constants

// StepType represents the type of a flow step.
type StepType string

const (
	// StepTypeMultipleChoice presents a fixed set of options, each optionally routing to a specific step.
	StepTypeMultipleChoice StepType = "multiple_choice"
	// StepTypeTextInput collects free text from the user.
	StepTypeTextInput StepType = "text_input"
	// StepTypeConditionalBranch routes based on the previously submitted answer.
	StepTypeConditionalBranch StepType = "conditional_branch"
	// StepTypeSubflow marks a reference to another flow. Execution treats it as a pass-through.
	StepTypeSubflow StepType = "subflow"
	// StepTypeInformation displays content without collecting an answer.
	StepTypeInformation StepType = "information"
)

// ValidStepTypes lists the step types accepted at authoring time.
var ValidStepTypes = []StepType{
	StepTypeMultipleChoice,
	StepTypeTextInput,
	StepTypeConditionalBranch,
	StepTypeSubflow,
	StepTypeInformation,
}

// IsValidStepType returns whether the given step type is supported.
func IsValidStepType(stepType StepType) bool {
	for _, t := range ValidStepTypes {
		if t == stepType {
			return true
		}
	}
	return false
}

// ExecutionStatus represents the status of a flow execution.
type ExecutionStatus string

const (
	// ExecutionStatusInProgress indicates the execution is awaiting answers.
	ExecutionStatusInProgress ExecutionStatus = "in_progress"
	// ExecutionStatusCompleted indicates the execution walked past the last step.
	ExecutionStatusCompleted ExecutionStatus = "completed"
	// ExecutionStatusAbandoned indicates the execution was explicitly abandoned.
	ExecutionStatusAbandoned ExecutionStatus = "abandoned"
)

// FlowVisibility represents the visibility of a flow definition.
type FlowVisibility string

const (
	// VisibilityPublic makes the flow visible to everyone including anonymous users.
	VisibilityPublic FlowVisibility = "public"
	// VisibilityInternal restricts the flow to authenticated users.
	VisibilityInternal FlowVisibility = "internal"
	// VisibilityRestricted restricts the flow to privileged roles.
	VisibilityRestricted FlowVisibility = "restricted"
)

// IsValidVisibility returns whether the given visibility value is supported.
func IsValidVisibility(visibility FlowVisibility) bool {
	switch visibility {
	case VisibilityPublic, VisibilityInternal, VisibilityRestricted:
		return true
	}
	return false
}

// BranchOperatorEquals is the single supported conditional branch operator.
const BranchOperatorEquals = "equals"

// BranchFieldAnswer is the single supported conditional branch field. It refers
// to the answer submitted for the conditional step itself.
const BranchFieldAnswer = "answer"
