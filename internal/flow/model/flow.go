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

// Flow represents a flow definition.
type Flow struct {
	ID          string                   `json:"id"`
	Title       string                   `json:"title"`
	Description string                   `json:"description,omitempty"`
	Visibility  constants.FlowVisibility `json:"visibility"`
	Tags        []string                 `json:"tags,omitempty"`
	Version     int                      `json:"version"`
	IsActive    bool                     `json:"is_active"`
	CreatedBy   *string                  `json:"created_by,omitempty"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at"`
}

// FlowRequest represents the request body for creating or updating a flow.
type FlowRequest struct {
	Title       string                   `json:"title"`
	Description string                   `json:"description,omitempty"`
	Visibility  constants.FlowVisibility `json:"visibility"`
	Tags        []string                 `json:"tags,omitempty"`
}

// FlowListResponse represents the response for listing flows.
type FlowListResponse struct {
	TotalResults int    `json:"totalResults"`
	Count        int    `json:"count"`
	Flows        []Flow `json:"flows"`
}

// StepOption represents a single option of a multiple choice step. Order is
// significant: option matching walks the list in the listed order.
type StepOption struct {
	Label      string  `json:"label"`
	Value      string  `json:"value"`
	NextStepID *string `json:"next_step_id,omitempty"`
}

// ValidationRules represents advisory validation rules of a text input step.
// They describe what a well formed answer looks like; submission never
// enforces them.
type ValidationRules struct {
	Required  bool   `json:"required,omitempty"`
	MinLength int    `json:"min_length,omitempty"`
	MaxLength int    `json:"max_length,omitempty"`
	Pattern   string `json:"pattern,omitempty"`
}

// BranchCondition represents a single condition of a conditional branch step.
// Order is significant: condition matching walks the list in the listed order.
type BranchCondition struct {
	Field      string  `json:"field"`
	Operator   string  `json:"operator"`
	Value      string  `json:"value"`
	NextStepID *string `json:"next_step_id"`
}

// FlowStep represents a single step of a flow definition. The payload fields
// are populated according to the step type: Options for multiple choice,
// Validation for text input, Conditions and DefaultNextStepID for conditional
// branches, SubflowID for subflow references. Information steps carry no
// payload.
type FlowStep struct {
	ID                string             `json:"id"`
	FlowID            string             `json:"flow_id"`
	StepOrder         int                `json:"step_order"`
	StepType          constants.StepType `json:"step_type"`
	Question          string             `json:"question"`
	Description       string             `json:"description,omitempty"`
	IsRequired        bool               `json:"is_required"`
	Images            []string           `json:"images,omitempty"`
	Options           []StepOption       `json:"options,omitempty"`
	Validation        *ValidationRules   `json:"validation_rules,omitempty"`
	Conditions        []BranchCondition  `json:"conditions,omitempty"`
	DefaultNextStepID *string            `json:"default_next_step_id,omitempty"`
	SubflowID         *string            `json:"subflow_id,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// FlowStepRequest represents the request body for creating or updating a flow step.
type FlowStepRequest struct {
	StepOrder         int                `json:"step_order"`
	StepType          constants.StepType `json:"step_type"`
	Question          string             `json:"question"`
	Description       string             `json:"description,omitempty"`
	IsRequired        bool               `json:"is_required"`
	Images            []string           `json:"images,omitempty"`
	Options           []StepOption       `json:"options,omitempty"`
	Validation        *ValidationRules   `json:"validation_rules,omitempty"`
	Conditions        []BranchCondition  `json:"conditions,omitempty"`
	DefaultNextStepID *string            `json:"default_next_step_id,omitempty"`
	SubflowID         *string            `json:"subflow_id,omitempty"`
}

// FlowStepListResponse represents the response for listing flow steps.
type FlowStepListResponse struct {
	TotalResults int        `json:"totalResults"`
	Count        int        `json:"count"`
	Steps        []FlowStep `json:"steps"`
}
