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

package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/wikiguides/wikiguides/internal/wiki/constants"
	"github.com/wikiguides/wikiguides/internal/wiki/model"
)

// buildArticleFromResultRow constructs an article from a database result row.
func buildArticleFromResultRow(row map[string]interface{}) (model.Article, error) {
	articleID, ok := row["article_id"].(string)
	if !ok {
		return model.Article{}, fmt.Errorf("failed to parse article_id as string")
	}

	title, ok := row["title"].(string)
	if !ok {
		return model.Article{}, fmt.Errorf("failed to parse title as string")
	}

	content, ok := row["content"].(string)
	if !ok {
		return model.Article{}, fmt.Errorf("failed to parse content as string")
	}

	categoryID, ok := row["category_id"].(string)
	if !ok {
		return model.Article{}, fmt.Errorf("failed to parse category_id as string")
	}

	article := model.Article{
		ID:            articleID,
		Title:         title,
		Content:       content,
		CategoryID:    categoryID,
		SubcategoryID: parseOptionalString(row["subcategory_id"]),
		Version:       parseInt(row["version"]),
		ViewCount:     parseInt64(row["view_count"]),
		CreatedAt:     parseTime(row["created_at"]),
		UpdatedAt:     parseTime(row["updated_at"]),
	}

	if visibility, ok := row["visibility"].(string); ok {
		article.Visibility = constants.ArticleVisibility(visibility)
	}
	if status, ok := row["status"].(string); ok {
		article.Status = constants.ArticleStatus(status)
	}
	if createdBy, ok := row["created_by"].(string); ok {
		article.CreatedBy = createdBy
	}

	if rawTags, ok := row["tags"].(string); ok && rawTags != "" {
		var tags []string
		if err := json.Unmarshal([]byte(rawTags), &tags); err != nil {
			return model.Article{}, fmt.Errorf("failed to parse tags: %w", err)
		}
		article.Tags = tags
	}

	return article, nil
}

// buildArticleVersionFromResultRow constructs an article version from a database result row.
func buildArticleVersionFromResultRow(row map[string]interface{}) (model.ArticleVersion, error) {
	versionID, ok := row["version_id"].(string)
	if !ok {
		return model.ArticleVersion{}, fmt.Errorf("failed to parse version_id as string")
	}

	articleID, ok := row["article_id"].(string)
	if !ok {
		return model.ArticleVersion{}, fmt.Errorf("failed to parse article_id as string")
	}

	version := model.ArticleVersion{
		ID:        versionID,
		ArticleID: articleID,
		Version:   parseInt(row["version"]),
		CreatedAt: parseTime(row["created_at"]),
	}

	if title, ok := row["title"].(string); ok {
		version.Title = title
	}
	if content, ok := row["content"].(string); ok {
		version.Content = content
	}
	if editedBy, ok := row["edited_by"].(string); ok {
		version.EditedBy = editedBy
	}

	return version, nil
}

// buildCategoryFromResultRow constructs a category from a database result row.
func buildCategoryFromResultRow(row map[string]interface{}) (model.Category, error) {
	categoryID, ok := row["category_id"].(string)
	if !ok {
		return model.Category{}, fmt.Errorf("failed to parse category_id as string")
	}

	name, ok := row["name"].(string)
	if !ok {
		return model.Category{}, fmt.Errorf("failed to parse name as string")
	}

	category := model.Category{
		ID:        categoryID,
		Name:      name,
		CreatedAt: parseTime(row["created_at"]),
	}

	if description, ok := row["description"].(string); ok {
		category.Description = description
	}

	return category, nil
}

// buildSubcategoryFromResultRow constructs a subcategory from a database result row.
func buildSubcategoryFromResultRow(row map[string]interface{}) (model.Subcategory, error) {
	subcategoryID, ok := row["subcategory_id"].(string)
	if !ok {
		return model.Subcategory{}, fmt.Errorf("failed to parse subcategory_id as string")
	}

	categoryID, ok := row["category_id"].(string)
	if !ok {
		return model.Subcategory{}, fmt.Errorf("failed to parse category_id as string")
	}

	name, ok := row["name"].(string)
	if !ok {
		return model.Subcategory{}, fmt.Errorf("failed to parse name as string")
	}

	subcategory := model.Subcategory{
		ID:         subcategoryID,
		CategoryID: categoryID,
		Name:       name,
		CreatedAt:  parseTime(row["created_at"]),
	}

	if description, ok := row["description"].(string); ok {
		subcategory.Description = description
	}

	return subcategory, nil
}

// serializeTags serializes article tags into a JSON string for storage.
func serializeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// parseOptionalString safely parses a nullable string field from the database row.
func parseOptionalString(value interface{}) *string {
	if value == nil {
		return nil
	}
	if str, ok := value.(string); ok {
		return &str
	}
	return nil
}

// parseInt safely parses an integer field from the database row.
func parseInt(value interface{}) int {
	return int(parseInt64(value))
}

// parseInt64 safely parses a 64-bit integer field from the database row.
func parseInt64(value interface{}) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	}
	return 0
}

// parseTime safely parses a timestamp field from the database row. The
// PostgreSQL driver returns time.Time; the SQLite driver may return a string.
func parseTime(value interface{}) time.Time {
	switch v := value.(type) {
	case time.Time:
		return v
	case string:
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05.999999999-07:00", "2006-01-02 15:04:05"} {
			if t, err := time.Parse(layout, v); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}
