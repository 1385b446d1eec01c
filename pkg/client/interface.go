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

//go:generate mockgen -source=interface.go -destination=mock/interface.go -package=mock

package client

import (
	"context"

	"github.com/petfriends-qa/petfriends/pkg/openapi"
)

// Interface is the set of PetFriends operations. Every method performs a
// single blocking round trip; HTTP error statuses are reported through
// Response.StatusCode, never as errors.
type Interface interface {
	// GetAPIKey exchanges credentials for an API key.
	GetAPIKey(ctx context.Context, email, password string) (*Response, error)
	// ListPets lists pets in the given scope.
	ListPets(ctx context.Context, apiKey string, filter openapi.PetFilter) (*Response, error)
	// AddNewPet creates a pet with a photo read from photoPath.
	AddNewPet(ctx context.Context, apiKey string, form PetForm, photoPath string) (*Response, error)
	// AddNewPetNoPhoto creates a pet without a photo.
	AddNewPetNoPhoto(ctx context.Context, apiKey string, form PetForm) (*Response, error)
	// SetPetPhoto replaces the photo of an existing pet.
	SetPetPhoto(ctx context.Context, apiKey, petID, photoPath string) (*Response, error)
	// UpdatePetInfo replaces the name, type and age of a pet.
	UpdatePetInfo(ctx context.Context, apiKey, petID string, form PetForm) (*Response, error)
	// DeletePet removes a pet.
	DeletePet(ctx context.Context, apiKey, petID string) (*Response, error)
}

var _ Interface = &APIClient{}
