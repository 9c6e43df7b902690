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

package config

import "sync"

// WikiGuidesRuntime holds the runtime configuration for the WikiGuides server.
type WikiGuidesRuntime struct {
	WikiGuidesHome string `yaml:"wikiguides_home"`
	Config         Config `yaml:"config"`
}

var (
	runtimeConfig *WikiGuidesRuntime
	once          sync.Once
)

// InitializeWikiGuidesRuntime initializes the WikiGuidesRuntime configuration.
func InitializeWikiGuidesRuntime(wikiGuidesHome string, config *Config) error {
	once.Do(func() {
		runtimeConfig = &WikiGuidesRuntime{
			WikiGuidesHome: wikiGuidesHome,
			Config:         *config,
		}
	})

	return nil
}

// GetWikiGuidesRuntime returns the WikiGuidesRuntime configuration.
func GetWikiGuidesRuntime() *WikiGuidesRuntime {
	if runtimeConfig == nil {
		panic("WikiGuidesRuntime is not initialized")
	}
	return runtimeConfig
}

// ResetWikiGuidesRuntime resets the WikiGuidesRuntime.
// This should only be used in tests to reset the singleton state.
func ResetWikiGuidesRuntime() {
	runtimeConfig = nil
	once = sync.Once{}
}
