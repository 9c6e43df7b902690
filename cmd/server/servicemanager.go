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

package main

import (
	"net/http"

	"github.com/wikiguides/wikiguides/internal/system/services"
)

// registerServices registers all the services with the provided HTTP multiplexer.
func registerServices(mux *http.ServeMux) {
	// Register the health service.
	services.NewHealthService(mux)

	// Register the authentication service.
	services.NewAuthService(mux)

	// Register the user service.
	services.NewUserService(mux)

	// Register the department service.
	services.NewDepartmentService(mux)

	// Register the wiki service.
	services.NewWikiService(mux)

	// Register the admin service.
	services.NewAdminService(mux)

	// Register the flow service.
	services.NewFlowService(mux)
}
