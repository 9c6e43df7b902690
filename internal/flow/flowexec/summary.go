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
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/wikiguides/wikiguides/internal/flow/model"
)

// BuildSummary derives the summary of an execution from its recorded answers.
//
// Only answered steps appear, ordered by step order (ties by step id). The
// total time is floored to whole seconds; for an execution that has not
// completed it is measured against now, so repeated calls tick upward. All
// three representations derive from the same completed-steps list.
func BuildSummary(
	flow model.Flow, steps []model.FlowStep, execution model.FlowExecution, now time.Time,
) model.FlowSummary {
	ordered := make([]model.FlowStep, len(steps))
	copy(ordered, steps)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].StepOrder != ordered[j].StepOrder {
			return ordered[i].StepOrder < ordered[j].StepOrder
		}
		return ordered[i].ID < ordered[j].ID
	})

	completed := make([]model.CompletedStep, 0, len(execution.Answers))
	for _, step := range ordered {
		answer, answered := execution.Answers[step.ID]
		if !answered {
			continue
		}
		completed = append(completed, model.CompletedStep{
			StepOrder:  step.StepOrder,
			Question:   step.Question,
			Answer:     answer.Value,
			AnsweredAt: answer.AnsweredAt.UTC().Format(time.RFC3339),
		})
	}

	end := now
	completedAt := ""
	if execution.CompletedAt != nil {
		end = *execution.CompletedAt
		completedAt = execution.CompletedAt.UTC().Format(time.RFC3339)
	}
	totalSeconds := int64(end.Sub(execution.StartedAt).Seconds())
	if totalSeconds < 0 {
		totalSeconds = 0
	}

	return model.FlowSummary{
		FlowID:           flow.ID,
		FlowTitle:        flow.Title,
		ExecutionID:      execution.ID,
		SummaryText:      buildSummaryText(flow.Title, completed, totalSeconds),
		FormattedText:    buildFormattedText(flow.Title, completed, totalSeconds),
		CompletedSteps:   completed,
		TotalTimeSeconds: totalSeconds,
		StartedAt:        execution.StartedAt.UTC().Format(time.RFC3339),
		CompletedAt:      completedAt,
	}
}

// buildSummaryText builds the single-line summary representation.
func buildSummaryText(flowTitle string, completed []model.CompletedStep, totalSeconds int64) string {
	parts := make([]string, 0, len(completed))
	for _, step := range completed {
		parts = append(parts, fmt.Sprintf("%s: %s", step.Question, step.Answer))
	}
	if len(parts) == 0 {
		return fmt.Sprintf("%s: 0 steps completed in %ds", flowTitle, totalSeconds)
	}
	stepWord := "steps"
	if len(parts) == 1 {
		stepWord = "step"
	}
	return fmt.Sprintf("%s: %d %s completed in %ds - %s",
		flowTitle, len(parts), stepWord, totalSeconds, strings.Join(parts, "; "))
}

// buildFormattedText builds the markdown summary representation.
func buildFormattedText(flowTitle string, completed []model.CompletedStep, totalSeconds int64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", flowTitle)
	fmt.Fprintf(&b, "Total time: %ds\n\n", totalSeconds)
	for _, step := range completed {
		fmt.Fprintf(&b, "- **%s**: %s\n", step.Question, step.Answer)
	}
	return b.String()
}
