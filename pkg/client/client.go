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

// Package client is a thin PetFriends API client. Each operation is one
// blocking HTTP round trip normalised into a Response; the client never
// turns HTTP error statuses into errors, and never retries.
package client

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-logr/logr"
	resty "resty.dev/v3"

	"github.com/petfriends-qa/petfriends/pkg/openapi"
)

const (
	headerEmail    = "email"
	headerPassword = "password"
	headerAuthKey  = "auth_key"

	fieldPetPhoto = "pet_photo"
)

// Options configures an APIClient.
type Options struct {
	// BaseURL is the service root, e.g. https://petfriends.skillfactory.ru.
	BaseURL string
	// RequestTimeout bounds each request. Zero means no timeout.
	RequestTimeout time.Duration
	// LogRequests logs method, path, status and duration of every request.
	LogRequests bool
	// LogResponses additionally logs response bodies.
	LogResponses bool
	// Logger receives request and error logs. Defaults to a discarding logger.
	Logger logr.Logger
	// Transport overrides the HTTP transport, mainly for tests.
	Transport http.RoundTripper
	// UserAgent, if set, is sent with every request.
	UserAgent string
}

type APIClient struct {
	client    *resty.Client
	options   Options
	endpoints *Endpoints
	log       logr.Logger
}

// New returns a client for the given options.
func New(options Options) *APIClient {
	log := options.Logger
	if log.GetSink() == nil {
		log = logr.Discard()
	}

	c := resty.New().
		SetBaseURL(strings.TrimSuffix(options.BaseURL, "/")).
		SetTimeout(options.RequestTimeout)

	if options.Transport != nil {
		c.SetTransport(options.Transport)
	}

	if options.UserAgent != "" {
		c.SetHeader("User-Agent", options.UserAgent)
	}

	return &APIClient{
		client:    c,
		options:   options,
		endpoints: NewEndpoints(),
		log:       log.WithName("petfriends"),
	}
}

// Close releases idle connections.
func (c *APIClient) Close() error {
	return c.client.Close()
}

// generateTraceID creates a new W3C trace ID.
func generateTraceID() string {
	bytes := make([]byte, 16)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	return fmt.Sprintf("00-%s-%s-01", generateTraceID(), generateSpanID())
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

// doRequest runs a single request. The prepare callback attaches headers
// and bodies. Only transport level failures are returned as errors.
func (c *APIClient) doRequest(ctx context.Context, operation, method, path string, prepare func(*resty.Request)) (*Response, error) {
	traceParent := createTraceParent()

	req := c.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetHeader("Traceparent", traceParent).
		SetHeader("Tracestate", "test-automation=ginkgo")

	if prepare != nil {
		prepare(req)
	}

	start := time.Now()
	resp, err := req.Execute(method, path)
	duration := time.Since(start)

	if err != nil {
		c.log.Error(err, "http request failed", "operation", operation, "method", method, "path", path, "duration", duration, "traceID", extractTraceID(traceParent))
		return nil, fmt.Errorf("%s %s: http request failed: %w", method, path, err)
	}

	body := resp.Bytes()

	if c.options.LogRequests {
		c.log.Info("request", "operation", operation, "method", method, "path", path, "status", resp.StatusCode(), "duration", duration, "traceID", extractTraceID(traceParent))
	}

	if c.options.LogResponses && len(body) > 0 {
		c.log.Info("response body", "operation", operation, "method", method, "path", path, "body", string(body))
	}

	return NewResponse(operation, method, path, resp.StatusCode(), resp.Header(), body), nil
}

// openPhoto opens an upload fixture. Failures are transport level errors
// for the caller, as the request cannot be built.
func openPhoto(photoPath string) (*os.File, error) {
	f, err := os.Open(photoPath)
	if err != nil {
		return nil, fmt.Errorf("opening photo: %w", err)
	}

	return f, nil
}

// GetAPIKey exchanges credentials for an API key. A 200 response carries
// the key in Body["key"]; bad credentials yield 403.
func (c *APIClient) GetAPIKey(ctx context.Context, email, password string) (*Response, error) {
	return c.doRequest(ctx, openapi.OperationGetAPIKey, http.MethodGet, c.endpoints.APIKey(), func(req *resty.Request) {
		req.SetHeader(headerEmail, email).SetHeader(headerPassword, password)
	})
}

// ListPets lists all visible pets, or only the caller's with FilterMyPets.
func (c *APIClient) ListPets(ctx context.Context, apiKey string, filter openapi.PetFilter) (*Response, error) {
	path, err := c.endpoints.ListPets(filter)
	if err != nil {
		return nil, err
	}

	return c.doRequest(ctx, openapi.OperationListPets, http.MethodGet, path, func(req *resty.Request) {
		req.SetHeader(headerAuthKey, apiKey)
	})
}

// AddNewPet creates a pet, uploading the photo as multipart form data.
// Empty fields are rejected by the service with 403.
func (c *APIClient) AddNewPet(ctx context.Context, apiKey string, form PetForm, photoPath string) (*Response, error) {
	photo, err := openPhoto(photoPath)
	if err != nil {
		return nil, err
	}

	defer photo.Close()

	return c.doRequest(ctx, openapi.OperationAddNewPet, http.MethodPost, c.endpoints.AddNewPet(), func(req *resty.Request) {
		req.SetHeader(headerAuthKey, apiKey).
			SetMultipartFormData(form.values()).
			SetFileReader(fieldPetPhoto, filepath.Base(photoPath), photo)
	})
}

// AddNewPetNoPhoto creates a pet from form fields only.
func (c *APIClient) AddNewPetNoPhoto(ctx context.Context, apiKey string, form PetForm) (*Response, error) {
	return c.doRequest(ctx, openapi.OperationAddNewPetNoPhoto, http.MethodPost, c.endpoints.AddNewPetNoPhoto(), func(req *resty.Request) {
		req.SetHeader(headerAuthKey, apiKey).SetFormData(form.values())
	})
}

// SetPetPhoto replaces the photo of an existing pet.
func (c *APIClient) SetPetPhoto(ctx context.Context, apiKey, petID, photoPath string) (*Response, error) {
	photo, err := openPhoto(photoPath)
	if err != nil {
		return nil, err
	}

	defer photo.Close()

	return c.doRequest(ctx, openapi.OperationSetPetPhoto, http.MethodPost, c.endpoints.SetPetPhoto(petID), func(req *resty.Request) {
		req.SetHeader(headerAuthKey, apiKey).
			SetFileReader(fieldPetPhoto, filepath.Base(photoPath), photo)
	})
}

// UpdatePetInfo replaces the name, type and age of a pet. Pets owned by
// another account are rejected by the service with 403.
func (c *APIClient) UpdatePetInfo(ctx context.Context, apiKey, petID string, form PetForm) (*Response, error) {
	return c.doRequest(ctx, openapi.OperationUpdatePetInfo, http.MethodPut, c.endpoints.UpdatePetInfo(petID), func(req *resty.Request) {
		req.SetHeader(headerAuthKey, apiKey).SetFormData(form.values())
	})
}

// DeletePet removes a pet. Pets owned by another account are rejected by
// the service with 403.
func (c *APIClient) DeletePet(ctx context.Context, apiKey, petID string) (*Response, error) {
	return c.doRequest(ctx, openapi.OperationDeletePet, http.MethodDelete, c.endpoints.DeletePet(petID), func(req *resty.Request) {
		req.SetHeader(headerAuthKey, apiKey)
	})
}
