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

package openapi

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
)

// Operation identifiers as declared in the embedded document.
const (
	OperationGetAPIKey        = "getApiKey"
	OperationListPets         = "listPets"
	OperationAddNewPet        = "addNewPet"
	OperationAddNewPetNoPhoto = "addNewPetSimple"
	OperationSetPetPhoto      = "setPetPhoto"
	OperationUpdatePetInfo    = "updatePetInfo"
	OperationDeletePet        = "deletePet"
)

var (
	ErrSchemaMismatch   = errors.New("response does not match schema")
	ErrUnknownOperation = errors.New("unknown operation")
)

//go:embed petfriends.yaml
var schemaYAML []byte

// Validator checks PetFriends responses against the embedded OpenAPI document.
type Validator struct {
	doc    *openapi3.T
	routes map[string]*routers.Route
}

// NewValidator loads and validates the embedded document.
func NewValidator(ctx context.Context) (*Validator, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(schemaYAML)
	if err != nil {
		return nil, fmt.Errorf("loading openapi schema: %w", err)
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validating openapi schema: %w", err)
	}

	routes := map[string]*routers.Route{}

	for path, item := range doc.Paths.Map() {
		for method, operation := range item.Operations() {
			routes[operation.OperationID] = &routers.Route{
				Spec:      doc,
				Path:      path,
				PathItem:  item,
				Method:    method,
				Operation: operation,
			}
		}
	}

	return &Validator{
		doc:    doc,
		routes: routes,
	}, nil
}

// Schema returns the parsed document.
func (v *Validator) Schema() *openapi3.T {
	return v.doc
}

// ValidateResponse checks the status, content type and body of a response
// to the named operation. Statuses not declared for the operation fail.
func (v *Validator) ValidateResponse(ctx context.Context, operationID string, status int, header http.Header, body []byte) error {
	route, ok := v.routes[operationID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownOperation, operationID)
	}

	request, err := http.NewRequestWithContext(ctx, route.Method, v.doc.Servers[0].URL, nil)
	if err != nil {
		return fmt.Errorf("creating validation request: %w", err)
	}

	options := &openapi3filter.Options{
		IncludeResponseStatus: true,
		MultiError:            true,
	}

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request: request,
			Route:   route,
			Options: options,
		},
		Status:  status,
		Header:  header,
		Options: options,
	}

	input.SetBodyBytes(body)

	if err := openapi3filter.ValidateResponse(ctx, input); err != nil {
		return fmt.Errorf("%w: %s status %d: %w", ErrSchemaMismatch, operationID, status, err)
	}

	return nil
}
