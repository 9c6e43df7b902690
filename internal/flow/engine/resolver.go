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

// Package engine implements step resolution for flow executions.
//
// Resolution is a pure function over the current step, the submitted answer
// and the flow's step list. It never touches storage; callers load the step
// list and persist the outcome.
package engine

import (
	"github.com/wikiguides/wikiguides/internal/flow/constants"
	"github.com/wikiguides/wikiguides/internal/flow/model"
)

// ResolveNextStep determines the next step of a flow execution after the given
// step was answered. A nil result means the execution is complete.
//
// The current step must be a member of the given step list. On a violation
// constants.ErrInvalidStepReference is returned. A resolved next step id that
// does not exist in the list (a concurrent authoring edit removed it) is
// treated as completion rather than an error.
func ResolveNextStep(current model.FlowStep, answer string, steps []model.FlowStep) (*string, error) {
	member := false
	for _, s := range steps {
		if s.ID == current.ID && s.FlowID == current.FlowID {
			member = true
			break
		}
	}
	if !member {
		return nil, constants.ErrInvalidStepReference
	}

	switch current.StepType {
	case constants.StepTypeMultipleChoice:
		return resolveMultipleChoice(current, answer, steps), nil
	case constants.StepTypeConditionalBranch:
		return resolveConditionalBranch(current, answer, steps), nil
	default:
		// information, text_input and subflow all advance by step order.
		return nextByOrder(current, steps), nil
	}
}

// FirstStep returns the id of the entry step of a flow: the step with the
// smallest step order, ties broken by id ascending. Nil for a flow without
// steps.
func FirstStep(steps []model.FlowStep) *string {
	var first *model.FlowStep
	for i := range steps {
		candidate := &steps[i]
		if first == nil ||
			candidate.StepOrder < first.StepOrder ||
			(candidate.StepOrder == first.StepOrder && candidate.ID < first.ID) {
			first = candidate
		}
	}
	if first == nil {
		return nil
	}
	id := first.ID
	return &id
}

// resolveMultipleChoice matches the answer against the step options in listed
// order. An option without an explicit next step, and an answer matching no
// option, both fall back to order-based advancement.
func resolveMultipleChoice(current model.FlowStep, answer string, steps []model.FlowStep) *string {
	for _, option := range current.Options {
		if option.Value != answer {
			continue
		}
		if option.NextStepID != nil {
			return normalizeTarget(*option.NextStepID, steps)
		}
		break
	}
	return nextByOrder(current, steps)
}

// resolveConditionalBranch evaluates the branch conditions in listed order and
// falls back to the default next step. A nil default means completion.
func resolveConditionalBranch(current model.FlowStep, answer string, steps []model.FlowStep) *string {
	for _, condition := range current.Conditions {
		if condition.Operator != constants.BranchOperatorEquals ||
			condition.Field != constants.BranchFieldAnswer {
			continue
		}
		if condition.Value == answer {
			if condition.NextStepID == nil {
				return nil
			}
			return normalizeTarget(*condition.NextStepID, steps)
		}
	}
	if current.DefaultNextStepID == nil {
		return nil
	}
	return normalizeTarget(*current.DefaultNextStepID, steps)
}

// nextByOrder returns the step with the smallest step order strictly greater
// than the current step's order, ties broken by id ascending. Nil when the
// current step is the last one.
func nextByOrder(current model.FlowStep, steps []model.FlowStep) *string {
	var next *model.FlowStep
	for i := range steps {
		candidate := &steps[i]
		if candidate.StepOrder <= current.StepOrder {
			continue
		}
		if next == nil ||
			candidate.StepOrder < next.StepOrder ||
			(candidate.StepOrder == next.StepOrder && candidate.ID < next.ID) {
			next = candidate
		}
	}
	if next == nil {
		return nil
	}
	id := next.ID
	return &id
}

// normalizeTarget maps an explicit next step id to nil when the referenced
// step no longer exists in the flow.
func normalizeTarget(targetID string, steps []model.FlowStep) *string {
	for _, s := range steps {
		if s.ID == targetID {
			id := s.ID
			return &id
		}
	}
	return nil
}
