/*
Copyright 2026 the PetFriends QA Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Credentials used when the suites run against the in-memory service.
const (
	FakeValidEmail         = "user1@petfriends.test"
	FakeValidPassword      = "user1-password"
	FakeValidEmailUser2    = "user2@petfriends.test"
	FakeValidPasswordUser2 = "user2-password"
)

type TestConfig struct {
	BaseURL string

	ValidEmail         string
	ValidPassword      string
	ValidEmailUser2    string
	ValidPasswordUser2 string
	InvalidEmail       string
	InvalidPassword    string
	RequestTimeout     time.Duration
	SkipIntegration    bool
	LogRequests        bool
	LogResponses       bool
}

// UsesFake reports whether no live service is configured, in which case the
// suites start the in-memory service and point BaseURL at it.
func (c *TestConfig) UsesFake() bool {
	return c.BaseURL == ""
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if required configuration values are missing.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	config := &TestConfig{
		BaseURL:            os.Getenv("API_BASE_URL"),
		ValidEmail:         os.Getenv("VALID_EMAIL"),
		ValidPassword:      os.Getenv("VALID_PASSWORD"),
		ValidEmailUser2:    os.Getenv("VALID_EMAIL_USER2"),
		ValidPasswordUser2: os.Getenv("VALID_PASSWORD_USER2"),
		InvalidEmail:       getWithDefault("INVALID_EMAIL", "invalid@example.com"),
		InvalidPassword:    getWithDefault("INVALID_PASSWORD", "invalidpass"),
		RequestTimeout:     getDurationWithDefault("REQUEST_TIMEOUT", 0),
		SkipIntegration:    getBoolWithDefault("SKIP_INTEGRATION", false),
		LogRequests:        getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:       getBoolWithDefault("LOG_RESPONSES", false),
	}

	if config.UsesFake() {
		applyFakeCredentials(config)
	}

	if err := validateRequiredFields(config); err != nil {
		return nil, err
	}

	return config, nil
}

// applyFakeCredentials fills unset account fixtures with the accounts the
// in-memory service is started with.
func applyFakeCredentials(config *TestConfig) {
	defaults := []struct {
		field *string
		value string
	}{
		{&config.ValidEmail, FakeValidEmail},
		{&config.ValidPassword, FakeValidPassword},
		{&config.ValidEmailUser2, FakeValidEmailUser2},
		{&config.ValidPasswordUser2, FakeValidPasswordUser2},
	}

	for _, d := range defaults {
		if *d.field == "" {
			*d.field = d.value
		}
	}
}

func getWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func loadEnvFile() {
	envPaths := []string{
		"../../.env", // From test/api/suites directory
		"../.env",    // From test/api directory
		".env",
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	// godotenv.Load never overrides variables already set in the environment.
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// validateRequiredFields checks that all required configuration values are set.
func validateRequiredFields(config *TestConfig) error {
	var missing []string

	required := map[string]string{
		"VALID_EMAIL":          config.ValidEmail,
		"VALID_PASSWORD":       config.ValidPassword,
		"VALID_EMAIL_USER2":    config.ValidEmailUser2,
		"VALID_PASSWORD_USER2": config.ValidPasswordUser2,
	}

	for envVar, value := range required {
		if value == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		slices.Sort(missing)

		return fmt.Errorf("missing required configuration: %s. Please set these environment variables or add them to a .env file", strings.Join(missing, ", "))
	}

	return nil
}
