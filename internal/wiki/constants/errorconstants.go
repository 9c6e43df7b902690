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

package constants

import (
	"errors"

	"github.com/wikiguides/wikiguides/internal/system/error/serviceerror"
)

// Store errors for wiki content operations.
var (
	// ErrArticleNotFound is the error returned by the store when an article does not exist.
	ErrArticleNotFound = errors.New("article not found")
	// ErrCategoryNotFound is the error returned by the store when a category does not exist.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrSubcategoryNotFound is the error returned by the store when a subcategory does not exist.
	ErrSubcategoryNotFound = errors.New("subcategory not found")
)

// Client errors for wiki content operations.
var (
	// ErrorInvalidRequestFormat is the error returned when the request body is malformed.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Code:             "WIK-1001",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
	// ErrorArticleNotFound is the error returned when the article is not found.
	ErrorArticleNotFound = serviceerror.ServiceError{
		Code:             "WIK-1002",
		Type:             serviceerror.ClientErrorType,
		Error:            "Article not found",
		ErrorDescription: "The article with the specified id does not exist",
	}
	// ErrorCategoryNotFound is the error returned when the category is not found.
	ErrorCategoryNotFound = serviceerror.ServiceError{
		Code:             "WIK-1003",
		Type:             serviceerror.ClientErrorType,
		Error:            "Category not found",
		ErrorDescription: "The category with the specified id does not exist",
	}
	// ErrorSubcategoryNotFound is the error returned when the subcategory is not found.
	ErrorSubcategoryNotFound = serviceerror.ServiceError{
		Code:             "WIK-1004",
		Type:             serviceerror.ClientErrorType,
		Error:            "Subcategory not found",
		ErrorDescription: "The subcategory with the specified id does not exist",
	}
	// ErrorInvalidArticleStatus is the error returned when the article status is not supported.
	ErrorInvalidArticleStatus = serviceerror.ServiceError{
		Code:             "WIK-1005",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid article status",
		ErrorDescription: "The article status must be one of: draft, published",
	}
	// ErrorInvalidArticleVisibility is the error returned when the visibility is not supported.
	ErrorInvalidArticleVisibility = serviceerror.ServiceError{
		Code:             "WIK-1006",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid article visibility",
		ErrorDescription: "The article visibility must be one of: public, internal",
	}
	// ErrorCategoryNameConflict is the error returned when a category name already exists.
	ErrorCategoryNameConflict = serviceerror.ServiceError{
		Code:             "WIK-1007",
		Type:             serviceerror.ClientErrorType,
		Error:            "Category name conflict",
		ErrorDescription: "A category with the same name already exists",
	}
	// ErrorCannotDeleteCategory is the error returned when a category still has
	// subcategories or articles.
	ErrorCannotDeleteCategory = serviceerror.ServiceError{
		Code:             "WIK-1008",
		Type:             serviceerror.ClientErrorType,
		Error:            "Cannot delete category",
		ErrorDescription: "The category has subcategories or articles assigned to it",
	}
	// ErrorMissingResourceID is the error returned when a resource id is missing in the path.
	ErrorMissingResourceID = serviceerror.ServiceError{
		Code:             "WIK-1009",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid request format",
		ErrorDescription: "Resource id is required",
	}
	// ErrorMissingSearchQuery is the error returned when the search query parameter is absent.
	ErrorMissingSearchQuery = serviceerror.ServiceError{
		Code:             "WIK-1010",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid request format",
		ErrorDescription: "Search query parameter 'q' is required",
	}
)

// Server errors for wiki content operations.
var (
	// ErrorInternalServerError is the generic server error for wiki operations.
	ErrorInternalServerError = serviceerror.ServiceError{
		Code:             "WIK-5000",
		Type:             serviceerror.ServerErrorType,
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
