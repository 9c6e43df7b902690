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

import dbmodel "github.com/wikiguides/wikiguides/internal/system/database/model"

const articleColumns = `ARTICLE_ID, TITLE, CONTENT, CATEGORY_ID, SUBCATEGORY_ID, VISIBILITY, TAGS, ` +
	`STATUS, VERSION, VIEW_COUNT, CREATED_BY, CREATED_AT, UPDATED_AT`

var (
	// QueryGetArticleListCount is the query to get the total count of articles.
	QueryGetArticleListCount = dbmodel.DBQuery{
		ID:    "WKQ-ARTICLE-00",
		Query: `SELECT COUNT(*) as total FROM WIKI_ARTICLE`,
	}

	// QueryGetArticleList is the query to get all articles.
	QueryGetArticleList = dbmodel.DBQuery{
		ID:    "WKQ-ARTICLE-01",
		Query: `SELECT ` + articleColumns + ` FROM WIKI_ARTICLE ORDER BY UPDATED_AT DESC`,
	}

	// QueryGetArticleListByCategory is the query to get articles in a category.
	QueryGetArticleListByCategory = dbmodel.DBQuery{
		ID:    "WKQ-ARTICLE-02",
		Query: `SELECT ` + articleColumns + ` FROM WIKI_ARTICLE WHERE CATEGORY_ID = $1 ORDER BY UPDATED_AT DESC`,
	}

	// QueryCreateArticle is the query to create a new article.
	QueryCreateArticle = dbmodel.DBQuery{
		ID: "WKQ-ARTICLE-03",
		Query: `INSERT INTO WIKI_ARTICLE (ARTICLE_ID, TITLE, CONTENT, CATEGORY_ID, SUBCATEGORY_ID, ` +
			`VISIBILITY, TAGS, STATUS, VERSION, VIEW_COUNT, CREATED_BY, CREATED_AT, UPDATED_AT) ` +
			`VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
	}

	// QueryGetArticleByID is the query to get an article by id.
	QueryGetArticleByID = dbmodel.DBQuery{
		ID:    "WKQ-ARTICLE-04",
		Query: `SELECT ` + articleColumns + ` FROM WIKI_ARTICLE WHERE ARTICLE_ID = $1`,
	}

	// QueryUpdateArticle is the query to update an article and bump its version.
	QueryUpdateArticle = dbmodel.DBQuery{
		ID: "WKQ-ARTICLE-05",
		Query: `UPDATE WIKI_ARTICLE SET TITLE = $2, CONTENT = $3, CATEGORY_ID = $4, SUBCATEGORY_ID = $5, ` +
			`VISIBILITY = $6, TAGS = $7, STATUS = $8, VERSION = $9, UPDATED_AT = $10 WHERE ARTICLE_ID = $1`,
	}

	// QueryDeleteArticle is the query to delete an article.
	QueryDeleteArticle = dbmodel.DBQuery{
		ID:    "WKQ-ARTICLE-06",
		Query: `DELETE FROM WIKI_ARTICLE WHERE ARTICLE_ID = $1`,
	}

	// QueryIncrementArticleViewCount is the query to increment an article's view count.
	QueryIncrementArticleViewCount = dbmodel.DBQuery{
		ID:    "WKQ-ARTICLE-07",
		Query: `UPDATE WIKI_ARTICLE SET VIEW_COUNT = VIEW_COUNT + 1 WHERE ARTICLE_ID = $1`,
	}

	// QuerySearchArticles is the query to search articles by title and content.
	QuerySearchArticles = dbmodel.DBQuery{
		ID: "WKQ-ARTICLE-08",
		Query: `SELECT ` + articleColumns + ` FROM WIKI_ARTICLE ` +
			`WHERE TITLE LIKE $1 OR CONTENT LIKE $1 ORDER BY VIEW_COUNT DESC`,
	}

	// QueryCreateArticleVersion is the query to snapshot an article version.
	QueryCreateArticleVersion = dbmodel.DBQuery{
		ID: "WKQ-VERSION-01",
		Query: `INSERT INTO WIKI_ARTICLE_VERSION (VERSION_ID, ARTICLE_ID, VERSION, TITLE, CONTENT, ` +
			`EDITED_BY, CREATED_AT) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
	}

	// QueryGetArticleVersions is the query to get all versions of an article.
	QueryGetArticleVersions = dbmodel.DBQuery{
		ID: "WKQ-VERSION-02",
		Query: `SELECT VERSION_ID, ARTICLE_ID, VERSION, TITLE, CONTENT, EDITED_BY, CREATED_AT ` +
			`FROM WIKI_ARTICLE_VERSION WHERE ARTICLE_ID = $1 ORDER BY VERSION DESC`,
	}

	// QueryDeleteArticleVersions is the query to delete all versions of an article.
	QueryDeleteArticleVersions = dbmodel.DBQuery{
		ID:    "WKQ-VERSION-03",
		Query: `DELETE FROM WIKI_ARTICLE_VERSION WHERE ARTICLE_ID = $1`,
	}

	// QueryGetCategoryListCount is the query to get the total count of categories.
	QueryGetCategoryListCount = dbmodel.DBQuery{
		ID:    "WKQ-CATEGORY-00",
		Query: `SELECT COUNT(*) as total FROM WIKI_CATEGORY`,
	}

	// QueryGetCategoryList is the query to get all categories.
	QueryGetCategoryList = dbmodel.DBQuery{
		ID:    "WKQ-CATEGORY-01",
		Query: `SELECT CATEGORY_ID, NAME, DESCRIPTION, CREATED_AT FROM WIKI_CATEGORY ORDER BY NAME`,
	}

	// QueryCreateCategory is the query to create a new category.
	QueryCreateCategory = dbmodel.DBQuery{
		ID:    "WKQ-CATEGORY-02",
		Query: `INSERT INTO WIKI_CATEGORY (CATEGORY_ID, NAME, DESCRIPTION, CREATED_AT) VALUES ($1, $2, $3, $4)`,
	}

	// QueryGetCategoryByID is the query to get a category by id.
	QueryGetCategoryByID = dbmodel.DBQuery{
		ID:    "WKQ-CATEGORY-03",
		Query: `SELECT CATEGORY_ID, NAME, DESCRIPTION, CREATED_AT FROM WIKI_CATEGORY WHERE CATEGORY_ID = $1`,
	}

	// QueryUpdateCategory is the query to update a category.
	QueryUpdateCategory = dbmodel.DBQuery{
		ID:    "WKQ-CATEGORY-04",
		Query: `UPDATE WIKI_CATEGORY SET NAME = $2, DESCRIPTION = $3 WHERE CATEGORY_ID = $1`,
	}

	// QueryDeleteCategory is the query to delete a category.
	QueryDeleteCategory = dbmodel.DBQuery{
		ID:    "WKQ-CATEGORY-05",
		Query: `DELETE FROM WIKI_CATEGORY WHERE CATEGORY_ID = $1`,
	}

	// QueryCheckCategoryNameConflict is the query to check if a category name already exists.
	QueryCheckCategoryNameConflict = dbmodel.DBQuery{
		ID:    "WKQ-CATEGORY-06",
		Query: `SELECT COUNT(*) as count FROM WIKI_CATEGORY WHERE NAME = $1`,
	}

	// QueryCheckCategoryHasChildResources is the query to check if a category has
	// subcategories or articles.
	QueryCheckCategoryHasChildResources = dbmodel.DBQuery{
		ID: "WKQ-CATEGORY-07",
		Query: `SELECT
					(SELECT COUNT(*) FROM WIKI_SUBCATEGORY WHERE CATEGORY_ID = $1) +
					(SELECT COUNT(*) FROM WIKI_ARTICLE WHERE CATEGORY_ID = $1) as count`,
	}

	// QueryGetSubcategoryListCount is the query to get the total count of subcategories.
	QueryGetSubcategoryListCount = dbmodel.DBQuery{
		ID:    "WKQ-SUBCAT-00",
		Query: `SELECT COUNT(*) as total FROM WIKI_SUBCATEGORY`,
	}

	// QueryGetSubcategoryList is the query to get all subcategories.
	QueryGetSubcategoryList = dbmodel.DBQuery{
		ID: "WKQ-SUBCAT-01",
		Query: `SELECT SUBCATEGORY_ID, CATEGORY_ID, NAME, DESCRIPTION, CREATED_AT ` +
			`FROM WIKI_SUBCATEGORY ORDER BY NAME`,
	}

	// QueryCreateSubcategory is the query to create a new subcategory.
	QueryCreateSubcategory = dbmodel.DBQuery{
		ID: "WKQ-SUBCAT-02",
		Query: `INSERT INTO WIKI_SUBCATEGORY (SUBCATEGORY_ID, CATEGORY_ID, NAME, DESCRIPTION, CREATED_AT) ` +
			`VALUES ($1, $2, $3, $4, $5)`,
	}

	// QueryGetSubcategoryByID is the query to get a subcategory by id.
	QueryGetSubcategoryByID = dbmodel.DBQuery{
		ID: "WKQ-SUBCAT-03",
		Query: `SELECT SUBCATEGORY_ID, CATEGORY_ID, NAME, DESCRIPTION, CREATED_AT ` +
			`FROM WIKI_SUBCATEGORY WHERE SUBCATEGORY_ID = $1`,
	}

	// QueryUpdateSubcategory is the query to update a subcategory.
	QueryUpdateSubcategory = dbmodel.DBQuery{
		ID: "WKQ-SUBCAT-04",
		Query: `UPDATE WIKI_SUBCATEGORY SET CATEGORY_ID = $2, NAME = $3, DESCRIPTION = $4 ` +
			`WHERE SUBCATEGORY_ID = $1`,
	}

	// QueryDeleteSubcategory is the query to delete a subcategory.
	QueryDeleteSubcategory = dbmodel.DBQuery{
		ID:    "WKQ-SUBCAT-05",
		Query: `DELETE FROM WIKI_SUBCATEGORY WHERE SUBCATEGORY_ID = $1`,
	}
)
