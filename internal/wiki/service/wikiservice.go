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

// Package service provides the implementation for wiki content operations.
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/wikiguides/wikiguides/internal/system/error/serviceerror"
	"github.com/wikiguides/wikiguides/internal/system/log"
	"github.com/wikiguides/wikiguides/internal/system/utils"
	"github.com/wikiguides/wikiguides/internal/wiki/constants"
	"github.com/wikiguides/wikiguides/internal/wiki/model"
	"github.com/wikiguides/wikiguides/internal/wiki/store"
)

const loggerComponentName = "WikiService"

// WikiServiceInterface defines the interface for wiki content operations.
type WikiServiceInterface interface {
	GetArticleList(categoryID string) (*model.ArticleListResponse, *serviceerror.ServiceError)
	CreateArticle(request model.ArticleRequest, createdBy string) (model.Article, *serviceerror.ServiceError)
	GetArticle(id string) (model.Article, *serviceerror.ServiceError)
	UpdateArticle(
		id string, request model.ArticleRequest, editedBy string,
	) (model.Article, *serviceerror.ServiceError)
	DeleteArticle(id string) *serviceerror.ServiceError
	GetArticleVersions(id string) (*model.ArticleVersionListResponse, *serviceerror.ServiceError)
	SearchArticles(query string) (*model.SearchResponse, *serviceerror.ServiceError)

	GetCategoryList() (*model.CategoryListResponse, *serviceerror.ServiceError)
	CreateCategory(request model.CategoryRequest) (model.Category, *serviceerror.ServiceError)
	GetCategory(id string) (model.Category, *serviceerror.ServiceError)
	UpdateCategory(id string, request model.CategoryRequest) (model.Category, *serviceerror.ServiceError)
	DeleteCategory(id string) *serviceerror.ServiceError

	GetSubcategoryList() (*model.SubcategoryListResponse, *serviceerror.ServiceError)
	CreateSubcategory(request model.SubcategoryRequest) (model.Subcategory, *serviceerror.ServiceError)
	GetSubcategory(id string) (model.Subcategory, *serviceerror.ServiceError)
	UpdateSubcategory(
		id string, request model.SubcategoryRequest,
	) (model.Subcategory, *serviceerror.ServiceError)
	DeleteSubcategory(id string) *serviceerror.ServiceError
}

// WikiService provides wiki content operations.
type WikiService struct{}

// GetWikiService creates a new instance of WikiService.
func GetWikiService() WikiServiceInterface {
	return &WikiService{}
}

// GetArticleList retrieves articles, optionally filtered by category.
func (ws *WikiService) GetArticleList(
	categoryID string,
) (*model.ArticleListResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	totalCount, err := store.GetArticleListCount()
	if err != nil {
		logger.Error("Failed to get article count", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	articles, err := store.GetArticleList(categoryID)
	if err != nil {
		logger.Error("Failed to list articles", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	return &model.ArticleListResponse{
		TotalResults: totalCount,
		Count:        len(articles),
		Articles:     articles,
	}, nil
}

// CreateArticle creates a new article at version 1.
func (ws *WikiService) CreateArticle(
	request model.ArticleRequest, createdBy string,
) (model.Article, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	logger.Debug("Creating article", log.String("title", request.Title))

	normalized, svcErr := ws.validateArticleRequest(request)
	if svcErr != nil {
		return model.Article{}, svcErr
	}

	now := time.Now().UTC()
	article := model.Article{
		ID:            utils.GenerateUUID(),
		Title:         normalized.Title,
		Content:       normalized.Content,
		CategoryID:    normalized.CategoryID,
		SubcategoryID: normalized.SubcategoryID,
		Visibility:    normalized.Visibility,
		Tags:          normalized.Tags,
		Status:        normalized.Status,
		Version:       1,
		CreatedBy:     createdBy,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := store.CreateArticle(article); err != nil {
		logger.Error("Failed to create article", log.Error(err))
		return model.Article{}, &constants.ErrorInternalServerError
	}

	logger.Debug("Successfully created article", log.String("articleID", article.ID))
	return article, nil
}

// GetArticle retrieves an article by id and increments its view counter.
func (ws *WikiService) GetArticle(id string) (model.Article, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	article, err := store.GetArticle(id)
	if err != nil {
		if errors.Is(err, constants.ErrArticleNotFound) {
			return model.Article{}, &constants.ErrorArticleNotFound
		}
		logger.Error("Failed to get article", log.Error(err))
		return model.Article{}, &constants.ErrorInternalServerError
	}

	if err := store.IncrementArticleViewCount(id); err != nil {
		// A failed counter update must not fail the read.
		logger.Error("Failed to increment article view count", log.Error(err))
	} else {
		article.ViewCount++
	}

	return article, nil
}

// UpdateArticle snapshots the current revision and applies the update with a
// bumped version counter.
func (ws *WikiService) UpdateArticle(
	id string, request model.ArticleRequest, editedBy string,
) (model.Article, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	logger.Debug("Updating article", log.String("articleID", id))

	existing, err := store.GetArticle(id)
	if err != nil {
		if errors.Is(err, constants.ErrArticleNotFound) {
			return model.Article{}, &constants.ErrorArticleNotFound
		}
		logger.Error("Failed to get article", log.Error(err))
		return model.Article{}, &constants.ErrorInternalServerError
	}

	normalized, svcErr := ws.validateArticleRequest(request)
	if svcErr != nil {
		return model.Article{}, svcErr
	}

	snapshot := model.ArticleVersion{
		ID:        utils.GenerateUUID(),
		ArticleID: existing.ID,
		Version:   existing.Version,
		Title:     existing.Title,
		Content:   existing.Content,
		EditedBy:  editedBy,
		CreatedAt: time.Now().UTC(),
	}
	if err := store.CreateArticleVersion(snapshot); err != nil {
		logger.Error("Failed to snapshot article version", log.Error(err))
		return model.Article{}, &constants.ErrorInternalServerError
	}

	updated := model.Article{
		ID:            existing.ID,
		Title:         normalized.Title,
		Content:       normalized.Content,
		CategoryID:    normalized.CategoryID,
		SubcategoryID: normalized.SubcategoryID,
		Visibility:    normalized.Visibility,
		Tags:          normalized.Tags,
		Status:        normalized.Status,
		Version:       existing.Version + 1,
		ViewCount:     existing.ViewCount,
		CreatedBy:     existing.CreatedBy,
		CreatedAt:     existing.CreatedAt,
		UpdatedAt:     time.Now().UTC(),
	}

	if err := store.UpdateArticle(updated); err != nil {
		if errors.Is(err, constants.ErrArticleNotFound) {
			return model.Article{}, &constants.ErrorArticleNotFound
		}
		logger.Error("Failed to update article", log.Error(err))
		return model.Article{}, &constants.ErrorInternalServerError
	}

	logger.Debug("Successfully updated article",
		log.String("articleID", id), log.Int("version", updated.Version))
	return updated, nil
}

// DeleteArticle deletes an article and its version history.
func (ws *WikiService) DeleteArticle(id string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	logger.Debug("Deleting article", log.String("articleID", id))

	if err := store.DeleteArticle(id); err != nil {
		if errors.Is(err, constants.ErrArticleNotFound) {
			return &constants.ErrorArticleNotFound
		}
		logger.Error("Failed to delete article", log.Error(err))
		return &constants.ErrorInternalServerError
	}

	return nil
}

// GetArticleVersions retrieves the version history of an article, newest first.
func (ws *WikiService) GetArticleVersions(
	id string,
) (*model.ArticleVersionListResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if _, err := store.GetArticle(id); err != nil {
		if errors.Is(err, constants.ErrArticleNotFound) {
			return nil, &constants.ErrorArticleNotFound
		}
		logger.Error("Failed to get article", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	versions, err := store.GetArticleVersions(id)
	if err != nil {
		logger.Error("Failed to get article versions", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	return &model.ArticleVersionListResponse{
		ArticleID: id,
		Count:     len(versions),
		Versions:  versions,
	}, nil
}

// SearchArticles searches articles by title and content.
func (ws *WikiService) SearchArticles(query string) (*model.SearchResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, &constants.ErrorMissingSearchQuery
	}

	results, err := store.SearchArticles("%" + trimmed + "%")
	if err != nil {
		logger.Error("Failed to search articles", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	return &model.SearchResponse{
		Query:   trimmed,
		Count:   len(results),
		Results: results,
	}, nil
}

// GetCategoryList retrieves all categories.
func (ws *WikiService) GetCategoryList() (*model.CategoryListResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	totalCount, err := store.GetCategoryListCount()
	if err != nil {
		logger.Error("Failed to get category count", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	categories, err := store.GetCategoryList()
	if err != nil {
		logger.Error("Failed to list categories", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	return &model.CategoryListResponse{
		TotalResults: totalCount,
		Count:        len(categories),
		Categories:   categories,
	}, nil
}

// CreateCategory creates a new category.
func (ws *WikiService) CreateCategory(
	request model.CategoryRequest,
) (model.Category, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	logger.Debug("Creating category", log.String("name", request.Name))

	if strings.TrimSpace(request.Name) == "" {
		return model.Category{}, &constants.ErrorInvalidRequestFormat
	}

	conflict, err := store.CheckCategoryNameConflict(request.Name)
	if err != nil {
		logger.Error("Failed to check category name conflict", log.Error(err))
		return model.Category{}, &constants.ErrorInternalServerError
	}
	if conflict {
		return model.Category{}, &constants.ErrorCategoryNameConflict
	}

	category := model.Category{
		ID:          utils.GenerateUUID(),
		Name:        request.Name,
		Description: request.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := store.CreateCategory(category); err != nil {
		logger.Error("Failed to create category", log.Error(err))
		return model.Category{}, &constants.ErrorInternalServerError
	}

	logger.Debug("Successfully created category", log.String("categoryID", category.ID))
	return category, nil
}

// GetCategory retrieves a category by id.
func (ws *WikiService) GetCategory(id string) (model.Category, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	category, err := store.GetCategory(id)
	if err != nil {
		if errors.Is(err, constants.ErrCategoryNotFound) {
			return model.Category{}, &constants.ErrorCategoryNotFound
		}
		logger.Error("Failed to get category", log.Error(err))
		return model.Category{}, &constants.ErrorInternalServerError
	}

	return category, nil
}

// UpdateCategory updates a category.
func (ws *WikiService) UpdateCategory(
	id string, request model.CategoryRequest,
) (model.Category, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	logger.Debug("Updating category", log.String("categoryID", id))

	if strings.TrimSpace(request.Name) == "" {
		return model.Category{}, &constants.ErrorInvalidRequestFormat
	}

	existing, err := store.GetCategory(id)
	if err != nil {
		if errors.Is(err, constants.ErrCategoryNotFound) {
			return model.Category{}, &constants.ErrorCategoryNotFound
		}
		logger.Error("Failed to get category", log.Error(err))
		return model.Category{}, &constants.ErrorInternalServerError
	}

	if existing.Name != request.Name {
		conflict, err := store.CheckCategoryNameConflict(request.Name)
		if err != nil {
			logger.Error("Failed to check category name conflict", log.Error(err))
			return model.Category{}, &constants.ErrorInternalServerError
		}
		if conflict {
			return model.Category{}, &constants.ErrorCategoryNameConflict
		}
	}

	updated := model.Category{
		ID:          existing.ID,
		Name:        request.Name,
		Description: request.Description,
		CreatedAt:   existing.CreatedAt,
	}

	if err := store.UpdateCategory(updated); err != nil {
		if errors.Is(err, constants.ErrCategoryNotFound) {
			return model.Category{}, &constants.ErrorCategoryNotFound
		}
		logger.Error("Failed to update category", log.Error(err))
		return model.Category{}, &constants.ErrorInternalServerError
	}

	return updated, nil
}

// DeleteCategory deletes a category with no subcategories or articles.
func (ws *WikiService) DeleteCategory(id string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	logger.Debug("Deleting category", log.String("categoryID", id))

	if _, err := store.GetCategory(id); err != nil {
		if errors.Is(err, constants.ErrCategoryNotFound) {
			return &constants.ErrorCategoryNotFound
		}
		logger.Error("Failed to get category", log.Error(err))
		return &constants.ErrorInternalServerError
	}

	hasChildren, err := store.CheckCategoryHasChildResources(id)
	if err != nil {
		logger.Error("Failed to check category child resources", log.Error(err))
		return &constants.ErrorInternalServerError
	}
	if hasChildren {
		return &constants.ErrorCannotDeleteCategory
	}

	if err := store.DeleteCategory(id); err != nil {
		if errors.Is(err, constants.ErrCategoryNotFound) {
			return &constants.ErrorCategoryNotFound
		}
		logger.Error("Failed to delete category", log.Error(err))
		return &constants.ErrorInternalServerError
	}

	return nil
}

// GetSubcategoryList retrieves all subcategories.
func (ws *WikiService) GetSubcategoryList() (*model.SubcategoryListResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	totalCount, err := store.GetSubcategoryListCount()
	if err != nil {
		logger.Error("Failed to get subcategory count", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	subcategories, err := store.GetSubcategoryList()
	if err != nil {
		logger.Error("Failed to list subcategories", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	return &model.SubcategoryListResponse{
		TotalResults:  totalCount,
		Count:         len(subcategories),
		Subcategories: subcategories,
	}, nil
}

// CreateSubcategory creates a new subcategory under an existing category.
func (ws *WikiService) CreateSubcategory(
	request model.SubcategoryRequest,
) (model.Subcategory, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	logger.Debug("Creating subcategory", log.String("name", request.Name))

	if strings.TrimSpace(request.Name) == "" || strings.TrimSpace(request.CategoryID) == "" {
		return model.Subcategory{}, &constants.ErrorInvalidRequestFormat
	}

	if _, err := store.GetCategory(request.CategoryID); err != nil {
		if errors.Is(err, constants.ErrCategoryNotFound) {
			return model.Subcategory{}, &constants.ErrorCategoryNotFound
		}
		logger.Error("Failed to validate category", log.Error(err))
		return model.Subcategory{}, &constants.ErrorInternalServerError
	}

	subcategory := model.Subcategory{
		ID:          utils.GenerateUUID(),
		CategoryID:  request.CategoryID,
		Name:        request.Name,
		Description: request.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := store.CreateSubcategory(subcategory); err != nil {
		logger.Error("Failed to create subcategory", log.Error(err))
		return model.Subcategory{}, &constants.ErrorInternalServerError
	}

	logger.Debug("Successfully created subcategory", log.String("subcategoryID", subcategory.ID))
	return subcategory, nil
}

// GetSubcategory retrieves a subcategory by id.
func (ws *WikiService) GetSubcategory(id string) (model.Subcategory, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	subcategory, err := store.GetSubcategory(id)
	if err != nil {
		if errors.Is(err, constants.ErrSubcategoryNotFound) {
			return model.Subcategory{}, &constants.ErrorSubcategoryNotFound
		}
		logger.Error("Failed to get subcategory", log.Error(err))
		return model.Subcategory{}, &constants.ErrorInternalServerError
	}

	return subcategory, nil
}

// UpdateSubcategory updates a subcategory.
func (ws *WikiService) UpdateSubcategory(
	id string, request model.SubcategoryRequest,
) (model.Subcategory, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	logger.Debug("Updating subcategory", log.String("subcategoryID", id))

	if strings.TrimSpace(request.Name) == "" || strings.TrimSpace(request.CategoryID) == "" {
		return model.Subcategory{}, &constants.ErrorInvalidRequestFormat
	}

	existing, err := store.GetSubcategory(id)
	if err != nil {
		if errors.Is(err, constants.ErrSubcategoryNotFound) {
			return model.Subcategory{}, &constants.ErrorSubcategoryNotFound
		}
		logger.Error("Failed to get subcategory", log.Error(err))
		return model.Subcategory{}, &constants.ErrorInternalServerError
	}

	if _, err := store.GetCategory(request.CategoryID); err != nil {
		if errors.Is(err, constants.ErrCategoryNotFound) {
			return model.Subcategory{}, &constants.ErrorCategoryNotFound
		}
		logger.Error("Failed to validate category", log.Error(err))
		return model.Subcategory{}, &constants.ErrorInternalServerError
	}

	updated := model.Subcategory{
		ID:          existing.ID,
		CategoryID:  request.CategoryID,
		Name:        request.Name,
		Description: request.Description,
		CreatedAt:   existing.CreatedAt,
	}

	if err := store.UpdateSubcategory(updated); err != nil {
		if errors.Is(err, constants.ErrSubcategoryNotFound) {
			return model.Subcategory{}, &constants.ErrorSubcategoryNotFound
		}
		logger.Error("Failed to update subcategory", log.Error(err))
		return model.Subcategory{}, &constants.ErrorInternalServerError
	}

	return updated, nil
}

// DeleteSubcategory deletes a subcategory.
func (ws *WikiService) DeleteSubcategory(id string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	logger.Debug("Deleting subcategory", log.String("subcategoryID", id))

	if err := store.DeleteSubcategory(id); err != nil {
		if errors.Is(err, constants.ErrSubcategoryNotFound) {
			return &constants.ErrorSubcategoryNotFound
		}
		logger.Error("Failed to delete subcategory", log.Error(err))
		return &constants.ErrorInternalServerError
	}

	return nil
}

// validateArticleRequest validates and normalizes an article request, applying
// defaults for status and visibility and checking category references.
func (ws *WikiService) validateArticleRequest(
	request model.ArticleRequest,
) (model.ArticleRequest, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if strings.TrimSpace(request.Title) == "" || strings.TrimSpace(request.Content) == "" ||
		strings.TrimSpace(request.CategoryID) == "" {
		return model.ArticleRequest{}, &constants.ErrorInvalidRequestFormat
	}

	if request.Status == "" {
		request.Status = constants.ArticleStatusDraft
	}
	if !constants.IsValidArticleStatus(request.Status) {
		return model.ArticleRequest{}, &constants.ErrorInvalidArticleStatus
	}

	if request.Visibility == "" {
		request.Visibility = constants.VisibilityPublic
	}
	if !constants.IsValidArticleVisibility(request.Visibility) {
		return model.ArticleRequest{}, &constants.ErrorInvalidArticleVisibility
	}

	if _, err := store.GetCategory(request.CategoryID); err != nil {
		if errors.Is(err, constants.ErrCategoryNotFound) {
			return model.ArticleRequest{}, &constants.ErrorCategoryNotFound
		}
		logger.Error("Failed to validate category", log.Error(err))
		return model.ArticleRequest{}, &constants.ErrorInternalServerError
	}

	if request.SubcategoryID != nil {
		subcategory, err := store.GetSubcategory(*request.SubcategoryID)
		if err != nil {
			if errors.Is(err, constants.ErrSubcategoryNotFound) {
				return model.ArticleRequest{}, &constants.ErrorSubcategoryNotFound
			}
			logger.Error("Failed to validate subcategory", log.Error(err))
			return model.ArticleRequest{}, &constants.ErrorInternalServerError
		}
		if subcategory.CategoryID != request.CategoryID {
			return model.ArticleRequest{}, &constants.ErrorSubcategoryNotFound
		}
	}

	return request, nil
}
