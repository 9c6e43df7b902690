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

// Package constants defines constants for wiki content operations.
package constants

// ArticleStatus represents the publication status of an article.
type ArticleStatus string

const (
	// ArticleStatusDraft marks an article that is not yet published.
	ArticleStatusDraft ArticleStatus = "draft"
	// ArticleStatusPublished marks an article visible to readers.
	ArticleStatusPublished ArticleStatus = "published"
)

// IsValidArticleStatus returns whether the given status is supported.
func IsValidArticleStatus(status ArticleStatus) bool {
	return status == ArticleStatusDraft || status == ArticleStatusPublished
}

// ArticleVisibility represents who can view an article.
type ArticleVisibility string

const (
	// VisibilityPublic allows all users to view the article.
	VisibilityPublic ArticleVisibility = "public"
	// VisibilityInternal restricts the article to authenticated users.
	VisibilityInternal ArticleVisibility = "internal"
)

// IsValidArticleVisibility returns whether the given visibility is supported.
func IsValidArticleVisibility(visibility ArticleVisibility) bool {
	return visibility == VisibilityPublic || visibility == VisibilityInternal
}
