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
	"net/http/httptest"

	"github.com/onsi/ginkgo/v2"

	"github.com/petfriends-qa/petfriends/pkg/client"
	"github.com/petfriends-qa/petfriends/test/fake"
)

// StartFakeService serves the in-memory service with both fixture accounts
// registered and points the configuration at it. The caller closes the
// returned server.
func StartFakeService(config *TestConfig) (*fake.Server, *httptest.Server) {
	service := fake.New(
		fake.Account{Email: config.ValidEmail, Password: config.ValidPassword},
		fake.Account{Email: config.ValidEmailUser2, Password: config.ValidPasswordUser2},
	)

	server := httptest.NewServer(service.Handler())
	config.BaseURL = server.URL

	return service, server
}

// NewAPIClientWithConfig returns a client for the configured service that
// logs to the Ginkgo writer.
func NewAPIClientWithConfig(config *TestConfig) *client.APIClient {
	return client.New(client.Options{
		BaseURL:        config.BaseURL,
		RequestTimeout: config.RequestTimeout,
		LogRequests:    config.LogRequests,
		LogResponses:   config.LogResponses,
		Logger:         ginkgo.GinkgoLogr,
	})
}
