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

// Package service provides the implementation for administration operations.
package service

import (
	"sort"
	"strings"

	"github.com/wikiguides/wikiguides/internal/admin/constants"
	"github.com/wikiguides/wikiguides/internal/admin/model"
	"github.com/wikiguides/wikiguides/internal/admin/store"
	flowstore "github.com/wikiguides/wikiguides/internal/flow/store"
	"github.com/wikiguides/wikiguides/internal/system/error/serviceerror"
	"github.com/wikiguides/wikiguides/internal/system/log"
)

const loggerComponentName = "AdminService"

// popularItemLimit caps the popular article and flow rankings.
const popularItemLimit = 5

// activityFeedLimit caps the recent activity feed.
const activityFeedLimit = 20

// AdminServiceInterface defines the interface for administration operations.
type AdminServiceInterface interface {
	GetAnalytics() (*model.AnalyticsResponse, *serviceerror.ServiceError)
	GetRecentActivity() (*model.ActivityListResponse, *serviceerror.ServiceError)
	GetSettings() (*model.SettingsResponse, *serviceerror.ServiceError)
	UpdateSettings(request model.UpdateSettingsRequest) (*model.SettingsResponse, *serviceerror.ServiceError)
}

// AdminService provides administration operations.
type AdminService struct {
	flowStore flowstore.FlowStoreInterface
}

// GetAdminService creates a new instance of AdminService.
func GetAdminService() AdminServiceInterface {
	return &AdminService{
		flowStore: flowstore.NewFlowStore(),
	}
}

// GetAnalytics aggregates counters over the platform collections and ranks
// the most viewed articles and most executed flows.
func (as *AdminService) GetAnalytics() (*model.AnalyticsResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	response := &model.AnalyticsResponse{
		PopularArticles: []model.PopularItem{},
		PopularFlows:    []model.PopularItem{},
	}

	counters := []struct {
		name   string
		target *int
		count  func() (int, error)
	}{
		{"users", &response.TotalUsers, store.CountUsers},
		{"departments", &response.TotalDepartments, store.CountDepartments},
		{"categories", &response.TotalCategories, store.CountCategories},
		{"articles", &response.TotalArticles, store.CountArticles},
		{"flows", &response.TotalFlows, store.CountActiveFlows},
		{"executions", &response.TotalExecutions, store.CountExecutions},
	}
	for _, counter := range counters {
		total, err := counter.count()
		if err != nil {
			logger.Error("Failed to count collection",
				log.String("collection", counter.name), log.Error(err))
			return nil, &constants.ErrorInternalServerError
		}
		*counter.target = total
	}

	popularArticles, err := store.GetPopularArticles(popularItemLimit)
	if err != nil {
		logger.Error("Failed to get popular articles", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}
	response.PopularArticles = popularArticles

	popularFlows, err := store.GetPopularFlows(popularItemLimit)
	if err != nil {
		logger.Error("Failed to get popular flows", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}
	for i := range popularFlows {
		flow, err := as.flowStore.GetFlow(popularFlows[i].ID)
		if err != nil {
			// Executions may reference flows that were since deactivated.
			continue
		}
		popularFlows[i].Title = flow.Title
	}
	response.PopularFlows = popularFlows

	return response, nil
}

// GetRecentActivity merges recent article updates and flow execution activity
// into a single feed, newest first.
func (as *AdminService) GetRecentActivity() (*model.ActivityListResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	articleActivity, err := store.GetRecentArticleActivity(activityFeedLimit)
	if err != nil {
		logger.Error("Failed to get recent article activity", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	executionActivity, err := store.GetRecentExecutionActivity(activityFeedLimit)
	if err != nil {
		logger.Error("Failed to get recent execution activity", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	activities := append(articleActivity, executionActivity...)
	sort.Slice(activities, func(i, j int) bool {
		return activities[i].OccurredAt.After(activities[j].OccurredAt)
	})
	if len(activities) > activityFeedLimit {
		activities = activities[:activityFeedLimit]
	}

	return &model.ActivityListResponse{
		Count:      len(activities),
		Activities: activities,
	}, nil
}

// GetSettings retrieves all system settings.
func (as *AdminService) GetSettings() (*model.SettingsResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	settings, err := store.GetSettings()
	if err != nil {
		logger.Error("Failed to get settings", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	return &model.SettingsResponse{Settings: settings}, nil
}

// UpdateSettings upserts the given settings and returns the full settings set.
func (as *AdminService) UpdateSettings(
	request model.UpdateSettingsRequest,
) (*model.SettingsResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if len(request.Settings) == 0 {
		return nil, &constants.ErrorInvalidRequestFormat
	}
	for key := range request.Settings {
		if strings.TrimSpace(key) == "" {
			return nil, &constants.ErrorInvalidRequestFormat
		}
	}

	for key, value := range request.Settings {
		if err := store.UpsertSetting(key, value); err != nil {
			logger.Error("Failed to update setting", log.String("key", key), log.Error(err))
			return nil, &constants.ErrorInternalServerError
		}
	}

	return as.GetSettings()
}
