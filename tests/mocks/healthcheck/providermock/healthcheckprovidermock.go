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

// Package providermock provides a mock implementation of the health check provider interface.
package providermock

import (
	"github.com/stretchr/testify/mock"

	"github.com/wikiguides/wikiguides/internal/system/healthcheck/service"
)

// HealthCheckProviderInterfaceMock is a mock implementation of provider.HealthCheckProviderInterface.
type HealthCheckProviderInterfaceMock struct {
	mock.Mock
}

// GetHealthCheckService mocks the GetHealthCheckService method.
func (m *HealthCheckProviderInterfaceMock) GetHealthCheckService() service.HealthCheckServiceInterface {
	ret := m.Called()
	return ret.Get(0).(service.HealthCheckServiceInterface)
}
