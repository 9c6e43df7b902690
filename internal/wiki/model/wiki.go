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

// Package model defines the data structures for wiki content operations.
package model

import (
	"time"

	"github.com/wikiguides/wikiguides/internal/wiki/constants"
)

// Article represents a versioned wiki article.
type Article struct {
	ID            string                      `json:"id"`
	Title         string                      `json:"title"`
	Content       string                      `json:"content"`
	CategoryID    string                      `json:"categoryId"`
	SubcategoryID *string                     `json:"subcategoryId,omitempty"`
	Visibility    constants.ArticleVisibility `json:"visibility"`
	Tags          []string                    `json:"tags,omitempty"`
	Status        constants.ArticleStatus     `json:"status"`
	Version       int                         `json:"version"`
	ViewCount     int64                       `json:"viewCount"`
	CreatedBy     string                      `json:"createdBy,omitempty"`
	CreatedAt     time.Time                   `json:"createdAt"`
	UpdatedAt     time.Time                   `json:"updatedAt"`
}

// ArticleRequest represents the request to create or update an article.
type ArticleRequest struct {
	Title         string                      `json:"title"`
	Content       string                      `json:"content"`
	CategoryID    string                      `json:"categoryId"`
	SubcategoryID *string                     `json:"subcategoryId,omitempty"`
	Visibility    constants.ArticleVisibility `json:"visibility,omitempty"`
	Tags          []string                    `json:"tags,omitempty"`
	Status        constants.ArticleStatus     `json:"status,omitempty"`
}

// ArticleListResponse represents the response for listing articles.
type ArticleListResponse struct {
	TotalResults int       `json:"totalResults"`
	Count        int       `json:"count"`
	Articles     []Article `json:"articles"`
}

// ArticleVersion represents a snapshot of an article taken before an update.
type ArticleVersion struct {
	ID        string    `json:"id"`
	ArticleID string    `json:"articleId"`
	Version   int       `json:"version"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	EditedBy  string    `json:"editedBy,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ArticleVersionListResponse represents the response for listing article versions.
type ArticleVersionListResponse struct {
	ArticleID string           `json:"articleId"`
	Count     int              `json:"count"`
	Versions  []ArticleVersion `json:"versions"`
}

// Category represents a top-level grouping of wiki articles.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CategoryRequest represents the request to create or update a category.
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	TotalResults int        `json:"totalResults"`
	Count        int        `json:"count"`
	Categories   []Category `json:"categories"`
}

// Subcategory represents a second-level grouping under a category.
type Subcategory struct {
	ID          string    `json:"id"`
	CategoryID  string    `json:"categoryId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SubcategoryRequest represents the request to create or update a subcategory.
type SubcategoryRequest struct {
	CategoryID  string `json:"categoryId"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// SubcategoryListResponse represents the response for listing subcategories.
type SubcategoryListResponse struct {
	TotalResults  int           `json:"totalResults"`
	Count         int           `json:"count"`
	Subcategories []Subcategory `json:"subcategories"`
}

// SearchResponse represents the response for an article search.
type SearchResponse struct {
	Query   string    `json:"query"`
	Count   int       `json:"count"`
	Results []Article `json:"results"`
}
