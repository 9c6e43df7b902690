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

// Package main is the entry point for starting the WikiGuides server.
package main

import (
	"crypto/tls"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path"
	"time"

	"github.com/wikiguides/wikiguides/internal/system/config"
	"github.com/wikiguides/wikiguides/internal/system/database/provider"
	"github.com/wikiguides/wikiguides/internal/system/database/seeder"
	"github.com/wikiguides/wikiguides/internal/system/log"
)

func main() {
	logger := log.GetLogger()

	wikiGuidesHome := getWikiGuidesHome(logger)

	cfg := initWikiGuidesConfigurations(logger, wikiGuidesHome)
	if cfg == nil {
		logger.Fatal("Failed to initialize configurations")
	}

	seedInitialData(logger)

	mux := http.NewServeMux()
	registerServices(mux)

	if cfg.Server.HTTPOnly {
		logger.Info("TLS is not enabled, starting server without TLS")
		startHTTPServer(logger, cfg, mux)
	} else {
		startTLSServer(logger, cfg, mux, wikiGuidesHome)
	}
}

// getWikiGuidesHome retrieves and returns the WikiGuides home directory.
func getWikiGuidesHome(logger *log.Logger) string {
	// Parse project directory from command line arguments.
	projectHome := ""
	projectHomeFlag := flag.String("wikiGuidesHome", "", "Path to WikiGuides home directory")
	flag.Parse()

	if *projectHomeFlag != "" {
		logger.Info("Using wikiGuidesHome from command line argument",
			log.String("wikiGuidesHome", *projectHomeFlag))
		projectHome = *projectHomeFlag
	} else {
		// If no command line argument is provided, use the current working directory.
		dir, dirErr := os.Getwd()
		if dirErr != nil {
			logger.Fatal("Failed to get current working directory", log.Error(dirErr))
		}
		projectHome = dir
	}

	return projectHome
}

// initWikiGuidesConfigurations initializes the WikiGuides configurations.
func initWikiGuidesConfigurations(logger *log.Logger, wikiGuidesHome string) *config.Config {
	// Load the configurations.
	configFilePath := path.Join(wikiGuidesHome, "repository/conf/deployment.yaml")
	cfg, err := config.LoadConfig(configFilePath)
	if err != nil {
		logger.Fatal("Failed to load configurations", log.Error(err))
	}

	// Initialize runtime configurations.
	if err := config.InitializeWikiGuidesRuntime(wikiGuidesHome, cfg); err != nil {
		logger.Fatal("Failed to initialize wikiguides runtime", log.Error(err))
	}

	return cfg
}

// seedInitialData seeds the default departments, admin user, wiki categories
// and system settings into the identity database.
func seedInitialData(logger *log.Logger) {
	seederProvider := seeder.NewSeederProvider(provider.NewDBProvider())
	seeder.SetSeederProvider(seederProvider)

	dbSeeder, err := seederProvider.GetSeeder("identity")
	if err != nil {
		logger.Fatal("Failed to get database seeder", log.Error(err))
	}
	if err := dbSeeder.SeedInitialData(); err != nil {
		logger.Fatal("Failed to seed initial data", log.Error(err))
	}
}

// startTLSServer starts the HTTPS server with TLS configuration.
func startTLSServer(logger *log.Logger, cfg *config.Config, mux *http.ServeMux, wikiGuidesHome string) {
	server, serverAddr := createHTTPServer(logger, cfg, mux)

	certFilePath := path.Join(wikiGuidesHome, cfg.Security.CertFile)
	keyFilePath := path.Join(wikiGuidesHome, cfg.Security.KeyFile)

	certificate, err := tls.LoadX509KeyPair(certFilePath, keyFilePath)
	if err != nil {
		logger.Fatal("Failed to load TLS certificate", log.Error(err))
	}
	tlsConfig := &tls.Config{
		Certificates: []tls.Certificate{certificate},
		MinVersion:   tls.VersionTLS12,
	}

	ln, err := tls.Listen("tcp", serverAddr, tlsConfig)
	if err != nil {
		logger.Fatal("Failed to start TLS listener", log.Error(err))
	}

	logger.Info("WikiGuides server started (HTTPS)...", log.String("address", serverAddr))

	if err := server.Serve(ln); err != nil {
		logger.Fatal("Failed to serve requests", log.Error(err))
	}
}

// startHTTPServer starts the HTTP server without TLS.
func startHTTPServer(logger *log.Logger, cfg *config.Config, mux *http.ServeMux) {
	server, serverAddr := createHTTPServer(logger, cfg, mux)

	logger.Info("WikiGuides server started (HTTP)...", log.String("address", serverAddr))

	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("Failed to serve HTTP requests", log.Error(err))
	}
}

// createHTTPServer creates and configures an HTTP server with common settings.
func createHTTPServer(logger *log.Logger, cfg *config.Config, mux *http.ServeMux) (*http.Server, string) {
	// Wrap the multiplexer with AccessLogHandler.
	wrappedMux := log.AccessLogHandler(logger, mux)

	// Build the server address using hostname and port from the configurations.
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Hostname, cfg.Server.Port)

	server := &http.Server{
		Addr:              serverAddr,
		Handler:           wrappedMux,
		ReadHeaderTimeout: 10 * time.Second, // Mitigate Slowloris attacks
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return server, serverAddr
}
