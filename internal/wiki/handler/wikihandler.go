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

// Package handler provides the implementation for wiki content operations.
package handler

import (
	"encoding/json"
	"net/http"

	authmodel "github.com/wikiguides/wikiguides/internal/auth/model"
	serverconst "github.com/wikiguides/wikiguides/internal/system/constants"
	"github.com/wikiguides/wikiguides/internal/system/error/apierror"
	"github.com/wikiguides/wikiguides/internal/system/error/serviceerror"
	"github.com/wikiguides/wikiguides/internal/system/log"
	sysutils "github.com/wikiguides/wikiguides/internal/system/utils"
	"github.com/wikiguides/wikiguides/internal/wiki/constants"
	"github.com/wikiguides/wikiguides/internal/wiki/model"
	"github.com/wikiguides/wikiguides/internal/wiki/service"
)

const loggerComponentName = "WikiHandler"

// WikiHandler is the handler for wiki content operations.
type WikiHandler struct {
	service service.WikiServiceInterface
}

// NewWikiHandler creates a new instance of WikiHandler.
func NewWikiHandler() *WikiHandler {
	return &WikiHandler{
		service: service.GetWikiService(),
	}
}

// HandleArticleListRequest handles the list articles request. An optional
// category query parameter filters the result.
func (wh *WikiHandler) HandleArticleListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	listResponse, svcErr := wh.service.GetArticleList(r.URL.Query().Get("category"))
	if svcErr != nil {
		wh.handleError(w, logger, svcErr)
		return
	}

	wh.writeJSONResponse(w, logger, http.StatusOK, listResponse)
}

// HandleArticlePostRequest handles the create article request.
func (wh *WikiHandler) HandleArticlePostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	createRequest, err := sysutils.DecodeJSONBody[model.ArticleRequest](r)
	if err != nil {
		wh.writeMalformedRequestError(w, logger, err)
		return
	}

	var createdBy string
	if principal := authmodel.PrincipalFromContext(r.Context()); principal != nil {
		createdBy = principal.UserID
	}

	article, svcErr := wh.service.CreateArticle(wh.sanitizeArticleRequest(*createRequest), createdBy)
	if svcErr != nil {
		wh.handleError(w, logger, svcErr)
		return
	}

	wh.writeJSONResponse(w, logger, http.StatusCreated, article)
	logger.Debug("Successfully created article", log.String("articleId", article.ID))
}

// HandleArticleGetRequest handles the get article by id request.
func (wh *WikiHandler) HandleArticleGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	if id == "" {
		wh.writeMissingResourceIDError(w, logger)
		return
	}

	article, svcErr := wh.service.GetArticle(id)
	if svcErr != nil {
		wh.handleError(w, logger, svcErr)
		return
	}

	wh.writeJSONResponse(w, logger, http.StatusOK, article)
}

// HandleArticlePutRequest handles the update article request.
func (wh *WikiHandler) HandleArticlePutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	if id == "" {
		wh.writeMissingResourceIDError(w, logger)
		return
	}

	updateRequest, err := sysutils.DecodeJSONBody[model.ArticleRequest](r)
	if err != nil {
		wh.writeMalformedRequestError(w, logger, err)
		return
	}

	var editedBy string
	if principal := authmodel.PrincipalFromContext(r.Context()); principal != nil {
		editedBy = principal.UserID
	}

	article, svcErr := wh.service.UpdateArticle(id, wh.sanitizeArticleRequest(*updateRequest), editedBy)
	if svcErr != nil {
		wh.handleError(w, logger, svcErr)
		return
	}

	wh.writeJSONResponse(w, logger, http.StatusOK, article)
	logger.Debug("Successfully updated article", log.String("articleId", id))
}

// HandleArticleDeleteRequest handles the delete article request.
func (wh *WikiHandler) HandleArticleDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	if id == "" {
		wh.writeMissingResourceIDError(w, logger)
		return
	}

	if svcErr := wh.service.DeleteArticle(id); svcErr != nil {
		wh.handleError(w, logger, svcErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	logger.Debug("Successfully deleted article", log.String("articleId", id))
}

// HandleArticleVersionsRequest handles the get article versions request.
func (wh *WikiHandler) HandleArticleVersionsRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	if id == "" {
		wh.writeMissingResourceIDError(w, logger)
		return
	}

	versions, svcErr := wh.service.GetArticleVersions(id)
	if svcErr != nil {
		wh.handleError(w, logger, svcErr)
		return
	}

	wh.writeJSONResponse(w, logger, http.StatusOK, versions)
}

// HandleArticleSearchRequest handles the search articles request.
func (wh *WikiHandler) HandleArticleSearchRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	searchResponse, svcErr := wh.service.SearchArticles(r.URL.Query().Get("q"))
	if svcErr != nil {
		wh.handleError(w, logger, svcErr)
		return
	}

	wh.writeJSONResponse(w, logger, http.StatusOK, searchResponse)
}

// HandleCategoryListRequest handles the list categories request.
func (wh *WikiHandler) HandleCategoryListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	listResponse, svcErr := wh.service.GetCategoryList()
	if svcErr != nil {
		wh.handleError(w, logger, svcErr)
		return
	}

	wh.writeJSONResponse(w, logger, http.StatusOK, listResponse)
}

// HandleCategoryPostRequest handles the create category request.
func (wh *WikiHandler) HandleCategoryPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	createRequest, err := sysutils.DecodeJSONBody[model.CategoryRequest](r)
	if err != nil {
		wh.writeMalformedRequestError(w, logger, err)
		return
	}

	category, svcErr := wh.service.CreateCategory(model.CategoryRequest{
		Name:        sysutils.SanitizeString(createRequest.Name),
		Description: sysutils.SanitizeString(createRequest.Description),
	})
	if svcErr != nil {
		wh.handleError(w, logger, svcErr)
		return
	}

	wh.writeJSONResponse(w, logger, http.StatusCreated, category)
	logger.Debug("Successfully created category", log.String("categoryId", category.ID))
}

// HandleCategoryGetRequest handles the get category by id request.
func (wh *WikiHandler) HandleCategoryGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	if id == "" {
		wh.writeMissingResourceIDError(w, logger)
		return
	}

	category, svcErr := wh.service.GetCategory(id)
	if svcErr != nil {
		wh.handleError(w, logger, svcErr)
		return
	}

	wh.writeJSONResponse(w, logger, http.StatusOK, category)
}

// HandleCategoryPutRequest handles the update category request.
func (wh *WikiHandler) HandleCategoryPutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	if id == "" {
		wh.writeMissingResourceIDError(w, logger)
		return
	}

	updateRequest, err := sysutils.DecodeJSONBody[model.CategoryRequest](r)
	if err != nil {
		wh.writeMalformedRequestError(w, logger, err)
		return
	}

	category, svcErr := wh.service.UpdateCategory(id, model.CategoryRequest{
		Name:        sysutils.SanitizeString(updateRequest.Name),
		Description: sysutils.SanitizeString(updateRequest.Description),
	})
	if svcErr != nil {
		wh.handleError(w, logger, svcErr)
		return
	}

	wh.writeJSONResponse(w, logger, http.StatusOK, category)
}

// HandleCategoryDeleteRequest handles the delete category request.
func (wh *WikiHandler) HandleCategoryDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	if id == "" {
		wh.writeMissingResourceIDError(w, logger)
		return
	}

	if svcErr := wh.service.DeleteCategory(id); svcErr != nil {
		wh.handleError(w, logger, svcErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	logger.Debug("Successfully deleted category", log.String("categoryId", id))
}

// HandleSubcategoryListRequest handles the list subcategories request.
func (wh *WikiHandler) HandleSubcategoryListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	listResponse, svcErr := wh.service.GetSubcategoryList()
	if svcErr != nil {
		wh.handleError(w, logger, svcErr)
		return
	}

	wh.writeJSONResponse(w, logger, http.StatusOK, listResponse)
}

// HandleSubcategoryPostRequest handles the create subcategory request.
func (wh *WikiHandler) HandleSubcategoryPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	createRequest, err := sysutils.DecodeJSONBody[model.SubcategoryRequest](r)
	if err != nil {
		wh.writeMalformedRequestError(w, logger, err)
		return
	}

	subcategory, svcErr := wh.service.CreateSubcategory(model.SubcategoryRequest{
		CategoryID:  sysutils.SanitizeString(createRequest.CategoryID),
		Name:        sysutils.SanitizeString(createRequest.Name),
		Description: sysutils.SanitizeString(createRequest.Description),
	})
	if svcErr != nil {
		wh.handleError(w, logger, svcErr)
		return
	}

	wh.writeJSONResponse(w, logger, http.StatusCreated, subcategory)
	logger.Debug("Successfully created subcategory", log.String("subcategoryId", subcategory.ID))
}

// HandleSubcategoryGetRequest handles the get subcategory by id request.
func (wh *WikiHandler) HandleSubcategoryGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	if id == "" {
		wh.writeMissingResourceIDError(w, logger)
		return
	}

	subcategory, svcErr := wh.service.GetSubcategory(id)
	if svcErr != nil {
		wh.handleError(w, logger, svcErr)
		return
	}

	wh.writeJSONResponse(w, logger, http.StatusOK, subcategory)
}

// HandleSubcategoryPutRequest handles the update subcategory request.
func (wh *WikiHandler) HandleSubcategoryPutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	if id == "" {
		wh.writeMissingResourceIDError(w, logger)
		return
	}

	updateRequest, err := sysutils.DecodeJSONBody[model.SubcategoryRequest](r)
	if err != nil {
		wh.writeMalformedRequestError(w, logger, err)
		return
	}

	subcategory, svcErr := wh.service.UpdateSubcategory(id, model.SubcategoryRequest{
		CategoryID:  sysutils.SanitizeString(updateRequest.CategoryID),
		Name:        sysutils.SanitizeString(updateRequest.Name),
		Description: sysutils.SanitizeString(updateRequest.Description),
	})
	if svcErr != nil {
		wh.handleError(w, logger, svcErr)
		return
	}

	wh.writeJSONResponse(w, logger, http.StatusOK, subcategory)
}

// HandleSubcategoryDeleteRequest handles the delete subcategory request.
func (wh *WikiHandler) HandleSubcategoryDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	if id == "" {
		wh.writeMissingResourceIDError(w, logger)
		return
	}

	if svcErr := wh.service.DeleteSubcategory(id); svcErr != nil {
		wh.handleError(w, logger, svcErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	logger.Debug("Successfully deleted subcategory", log.String("subcategoryId", id))
}

func (wh *WikiHandler) sanitizeArticleRequest(request model.ArticleRequest) model.ArticleRequest {
	sanitized := model.ArticleRequest{
		Title:         sysutils.SanitizeString(request.Title),
		Content:       request.Content,
		CategoryID:    sysutils.SanitizeString(request.CategoryID),
		SubcategoryID: request.SubcategoryID,
		Visibility:    request.Visibility,
		Status:        request.Status,
	}
	for _, tag := range request.Tags {
		sanitized.Tags = append(sanitized.Tags, sysutils.SanitizeString(tag))
	}
	return sanitized
}

// handleError writes the error response for a service error.
func (wh *WikiHandler) handleError(
	w http.ResponseWriter, logger *log.Logger, svcErr *serviceerror.ServiceError,
) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)

	var statusCode int
	switch svcErr.Type {
	case serviceerror.ClientErrorType:
		statusCode = http.StatusBadRequest
		switch svcErr.Code {
		case constants.ErrorArticleNotFound.Code,
			constants.ErrorCategoryNotFound.Code,
			constants.ErrorSubcategoryNotFound.Code:
			statusCode = http.StatusNotFound
		case constants.ErrorCategoryNameConflict.Code, constants.ErrorCannotDeleteCategory.Code:
			statusCode = http.StatusConflict
		}
	default:
		statusCode = http.StatusInternalServerError
	}

	w.WriteHeader(statusCode)

	errResp := apierror.ErrorResponse{
		Code:        svcErr.Code,
		Message:     svcErr.Error,
		Description: svcErr.ErrorDescription,
	}

	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		logger.Error("Error encoding error response", log.Error(err))
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}

// writeMalformedRequestError writes the error response for an undecodable request body.
func (wh *WikiHandler) writeMalformedRequestError(w http.ResponseWriter, logger *log.Logger, err error) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusBadRequest)

	errResp := apierror.ErrorResponse{
		Code:        constants.ErrorInvalidRequestFormat.Code,
		Message:     constants.ErrorInvalidRequestFormat.Error,
		Description: "Failed to parse request body: " + err.Error(),
	}

	if encodeErr := json.NewEncoder(w).Encode(errResp); encodeErr != nil {
		logger.Error("Error encoding error response", log.Error(encodeErr))
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}

// writeMissingResourceIDError writes the error response for a missing path id.
func (wh *WikiHandler) writeMissingResourceIDError(w http.ResponseWriter, logger *log.Logger) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusBadRequest)

	errResp := apierror.ErrorResponse{
		Code:        constants.ErrorMissingResourceID.Code,
		Message:     constants.ErrorMissingResourceID.Error,
		Description: constants.ErrorMissingResourceID.ErrorDescription,
	}

	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		logger.Error("Error encoding error response", log.Error(err))
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}

// writeJSONResponse writes a JSON success response.
func (wh *WikiHandler) writeJSONResponse(
	w http.ResponseWriter, logger *log.Logger, statusCode int, payload interface{},
) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
