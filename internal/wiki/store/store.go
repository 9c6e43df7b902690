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

// Package store provides the implementation for wiki content persistence operations.
package store

import (
	"fmt"

	dbmodel "github.com/wikiguides/wikiguides/internal/system/database/model"
	"github.com/wikiguides/wikiguides/internal/system/database/provider"
	"github.com/wikiguides/wikiguides/internal/system/log"
	"github.com/wikiguides/wikiguides/internal/wiki/constants"
	"github.com/wikiguides/wikiguides/internal/wiki/model"
)

const loggerComponentName = "WikiStore"

// GetArticleListCount retrieves the total count of articles.
func GetArticleListCount() (int, error) {
	return fetchCount(QueryGetArticleListCount, "total")
}

// GetArticleList retrieves all articles, optionally filtered by category.
func GetArticleList(categoryID string) ([]model.Article, error) {
	var results []map[string]interface{}
	var err error
	if categoryID == "" {
		results, err = fetchRows(QueryGetArticleList)
	} else {
		results, err = fetchRows(QueryGetArticleListByCategory, categoryID)
	}
	if err != nil {
		return nil, err
	}

	articles := make([]model.Article, 0, len(results))
	for _, row := range results {
		article, err := buildArticleFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build article: %w", err)
		}
		articles = append(articles, article)
	}

	return articles, nil
}

// CreateArticle creates a new article in the database.
func CreateArticle(article model.Article) error {
	tags, err := serializeTags(article.Tags)
	if err != nil {
		return fmt.Errorf("failed to serialize tags: %w", err)
	}

	_, err = executeQuery(
		QueryCreateArticle,
		article.ID,
		article.Title,
		article.Content,
		article.CategoryID,
		article.SubcategoryID,
		string(article.Visibility),
		tags,
		string(article.Status),
		article.Version,
		article.ViewCount,
		article.CreatedBy,
		article.CreatedAt,
		article.UpdatedAt,
	)
	return err
}

// GetArticle retrieves an article by id.
func GetArticle(id string) (model.Article, error) {
	results, err := fetchRows(QueryGetArticleByID, id)
	if err != nil {
		return model.Article{}, err
	}
	if len(results) == 0 {
		return model.Article{}, constants.ErrArticleNotFound
	}

	article, err := buildArticleFromResultRow(results[0])
	if err != nil {
		return model.Article{}, fmt.Errorf("failed to build article: %w", err)
	}
	return article, nil
}

// UpdateArticle updates an article in place.
func UpdateArticle(article model.Article) error {
	tags, err := serializeTags(article.Tags)
	if err != nil {
		return fmt.Errorf("failed to serialize tags: %w", err)
	}

	rowsAffected, err := executeQuery(
		QueryUpdateArticle,
		article.ID,
		article.Title,
		article.Content,
		article.CategoryID,
		article.SubcategoryID,
		string(article.Visibility),
		tags,
		string(article.Status),
		article.Version,
		article.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return constants.ErrArticleNotFound
	}
	return nil
}

// DeleteArticle deletes an article and its version snapshots.
func DeleteArticle(id string) error {
	if _, err := executeQuery(QueryDeleteArticleVersions, id); err != nil {
		return err
	}

	rowsAffected, err := executeQuery(QueryDeleteArticle, id)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return constants.ErrArticleNotFound
	}
	return nil
}

// IncrementArticleViewCount increments an article's view counter.
func IncrementArticleViewCount(id string) error {
	_, err := executeQuery(QueryIncrementArticleViewCount, id)
	return err
}

// SearchArticles searches articles by title and content with a LIKE pattern.
func SearchArticles(pattern string) ([]model.Article, error) {
	results, err := fetchRows(QuerySearchArticles, pattern)
	if err != nil {
		return nil, err
	}

	articles := make([]model.Article, 0, len(results))
	for _, row := range results {
		article, err := buildArticleFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build article: %w", err)
		}
		articles = append(articles, article)
	}

	return articles, nil
}

// CreateArticleVersion stores a version snapshot of an article.
func CreateArticleVersion(version model.ArticleVersion) error {
	_, err := executeQuery(
		QueryCreateArticleVersion,
		version.ID,
		version.ArticleID,
		version.Version,
		version.Title,
		version.Content,
		version.EditedBy,
		version.CreatedAt,
	)
	return err
}

// GetArticleVersions retrieves all version snapshots of an article, newest first.
func GetArticleVersions(articleID string) ([]model.ArticleVersion, error) {
	results, err := fetchRows(QueryGetArticleVersions, articleID)
	if err != nil {
		return nil, err
	}

	versions := make([]model.ArticleVersion, 0, len(results))
	for _, row := range results {
		version, err := buildArticleVersionFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build article version: %w", err)
		}
		versions = append(versions, version)
	}

	return versions, nil
}

// GetCategoryListCount retrieves the total count of categories.
func GetCategoryListCount() (int, error) {
	return fetchCount(QueryGetCategoryListCount, "total")
}

// GetCategoryList retrieves all categories ordered by name.
func GetCategoryList() ([]model.Category, error) {
	results, err := fetchRows(QueryGetCategoryList)
	if err != nil {
		return nil, err
	}

	categories := make([]model.Category, 0, len(results))
	for _, row := range results {
		category, err := buildCategoryFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build category: %w", err)
		}
		categories = append(categories, category)
	}

	return categories, nil
}

// CreateCategory creates a new category in the database.
func CreateCategory(category model.Category) error {
	_, err := executeQuery(
		QueryCreateCategory,
		category.ID,
		category.Name,
		category.Description,
		category.CreatedAt,
	)
	return err
}

// GetCategory retrieves a category by id.
func GetCategory(id string) (model.Category, error) {
	results, err := fetchRows(QueryGetCategoryByID, id)
	if err != nil {
		return model.Category{}, err
	}
	if len(results) == 0 {
		return model.Category{}, constants.ErrCategoryNotFound
	}

	category, err := buildCategoryFromResultRow(results[0])
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to build category: %w", err)
	}
	return category, nil
}

// UpdateCategory updates a category.
func UpdateCategory(category model.Category) error {
	rowsAffected, err := executeQuery(
		QueryUpdateCategory,
		category.ID,
		category.Name,
		category.Description,
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return constants.ErrCategoryNotFound
	}
	return nil
}

// DeleteCategory deletes a category by id.
func DeleteCategory(id string) error {
	rowsAffected, err := executeQuery(QueryDeleteCategory, id)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return constants.ErrCategoryNotFound
	}
	return nil
}

// CheckCategoryNameConflict checks whether a category name already exists.
func CheckCategoryNameConflict(name string) (bool, error) {
	count, err := fetchCount(QueryCheckCategoryNameConflict, "count", name)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CheckCategoryHasChildResources checks whether a category has subcategories or articles.
func CheckCategoryHasChildResources(id string) (bool, error) {
	count, err := fetchCount(QueryCheckCategoryHasChildResources, "count", id)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetSubcategoryListCount retrieves the total count of subcategories.
func GetSubcategoryListCount() (int, error) {
	return fetchCount(QueryGetSubcategoryListCount, "total")
}

// GetSubcategoryList retrieves all subcategories ordered by name.
func GetSubcategoryList() ([]model.Subcategory, error) {
	results, err := fetchRows(QueryGetSubcategoryList)
	if err != nil {
		return nil, err
	}

	subcategories := make([]model.Subcategory, 0, len(results))
	for _, row := range results {
		subcategory, err := buildSubcategoryFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build subcategory: %w", err)
		}
		subcategories = append(subcategories, subcategory)
	}

	return subcategories, nil
}

// CreateSubcategory creates a new subcategory in the database.
func CreateSubcategory(subcategory model.Subcategory) error {
	_, err := executeQuery(
		QueryCreateSubcategory,
		subcategory.ID,
		subcategory.CategoryID,
		subcategory.Name,
		subcategory.Description,
		subcategory.CreatedAt,
	)
	return err
}

// GetSubcategory retrieves a subcategory by id.
func GetSubcategory(id string) (model.Subcategory, error) {
	results, err := fetchRows(QueryGetSubcategoryByID, id)
	if err != nil {
		return model.Subcategory{}, err
	}
	if len(results) == 0 {
		return model.Subcategory{}, constants.ErrSubcategoryNotFound
	}

	subcategory, err := buildSubcategoryFromResultRow(results[0])
	if err != nil {
		return model.Subcategory{}, fmt.Errorf("failed to build subcategory: %w", err)
	}
	return subcategory, nil
}

// UpdateSubcategory updates a subcategory.
func UpdateSubcategory(subcategory model.Subcategory) error {
	rowsAffected, err := executeQuery(
		QueryUpdateSubcategory,
		subcategory.ID,
		subcategory.CategoryID,
		subcategory.Name,
		subcategory.Description,
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return constants.ErrSubcategoryNotFound
	}
	return nil
}

// DeleteSubcategory deletes a subcategory by id.
func DeleteSubcategory(id string) error {
	rowsAffected, err := executeQuery(QueryDeleteSubcategory, id)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return constants.ErrSubcategoryNotFound
	}
	return nil
}

// fetchRows runs a select query against the identity database.
func fetchRows(query dbmodel.DBQuery, args ...interface{}) ([]map[string]interface{}, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := provider.NewDBProvider().GetDBClient("identity")
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	results, err := dbClient.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	return results, nil
}

// executeQuery runs a mutation query against the identity database and returns
// the number of affected rows.
func executeQuery(query dbmodel.DBQuery, args ...interface{}) (int64, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := provider.NewDBProvider().GetDBClient("identity")
	if err != nil {
		return 0, fmt.Errorf("failed to get database client: %w", err)
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	rowsAffected, err := dbClient.Execute(query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}
	return rowsAffected, nil
}

// fetchCount runs a count query and returns the named column as an int.
func fetchCount(query dbmodel.DBQuery, column string, args ...interface{}) (int, error) {
	results, err := fetchRows(query, args...)
	if err != nil {
		return 0, err
	}

	var total int
	if len(results) > 0 {
		if count, ok := results[0][column].(int64); ok {
			total = int(count)
		} else {
			return 0, fmt.Errorf("unexpected type for %s: %T", column, results[0][column])
		}
	}
	return total, nil
}
