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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"net/http"
	"path/filepath"
	"runtime"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spjmurray/go-util/pkg/set"
	"k8s.io/utils/ptr"

	"github.com/petfriends-qa/petfriends/pkg/client"
	"github.com/petfriends-qa/petfriends/pkg/openapi"
)

// Defaults for pets created by the suites.
const (
	DefaultAnimalType = "двортерьер"
	DefaultAge        = "6"
	DefaultPhoto      = "cat.jpg"
)

// PhotoPath returns the absolute path of an image under test/api/images,
// independent of the working directory the suites run from.
func PhotoPath(name string) string {
	_, file, _, _ := runtime.Caller(0)

	return filepath.Join(filepath.Dir(file), "images", name)
}

// PetPayload is a pet to create. A nil Photo creates the pet without one.
type PetPayload struct {
	Form  client.PetForm
	Photo *string
}

// PetPayloadBuilder builds pet payloads for testing.
type PetPayloadBuilder struct {
	payload PetPayload
}

// NewPetPayload creates a builder with a unique name, the default type and
// age, and the default photo.
func NewPetPayload() *PetPayloadBuilder {
	return &PetPayloadBuilder{
		payload: PetPayload{
			Form: client.PetForm{
				Name:       GeneratePetName(),
				AnimalType: DefaultAnimalType,
				Age:        DefaultAge,
			},
			Photo: ptr.To(PhotoPath(DefaultPhoto)),
		},
	}
}

// WithName sets the pet name.
func (b *PetPayloadBuilder) WithName(name string) *PetPayloadBuilder {
	b.payload.Form.Name = name
	return b
}

// WithAnimalType sets the animal type.
func (b *PetPayloadBuilder) WithAnimalType(animalType string) *PetPayloadBuilder {
	b.payload.Form.AnimalType = animalType
	return b
}

// WithAge sets the age.
func (b *PetPayloadBuilder) WithAge(age string) *PetPayloadBuilder {
	b.payload.Form.Age = age
	return b
}

// WithEmptyFields clears name, type and age.
func (b *PetPayloadBuilder) WithEmptyFields() *PetPayloadBuilder {
	b.payload.Form = client.PetForm{}
	return b
}

// WithPhoto sets the photo to an image under test/api/images.
func (b *PetPayloadBuilder) WithPhoto(name string) *PetPayloadBuilder {
	b.payload.Photo = ptr.To(PhotoPath(name))
	return b
}

// WithoutPhoto creates the pet through the simple endpoint.
func (b *PetPayloadBuilder) WithoutPhoto() *PetPayloadBuilder {
	b.payload.Photo = nil
	return b
}

// Build returns the completed payload.
func (b *PetPayloadBuilder) Build() PetPayload {
	return b.payload
}

// AddPet submits a payload through the endpoint matching its photo.
func AddPet(ctx context.Context, c client.Interface, apiKey string, payload PetPayload) (*client.Response, error) {
	if payload.Photo == nil {
		return c.AddNewPetNoPhoto(ctx, apiKey, payload.Form)
	}

	return c.AddNewPet(ctx, apiKey, payload.Form, *payload.Photo)
}

// GetAPIKey requests a fresh API key and fails the test unless one is issued.
func GetAPIKey(ctx context.Context, c client.Interface, email, password string) string {
	GinkgoHelper()

	resp, err := c.GetAPIKey(ctx, email, password)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode).To(Equal(http.StatusOK), "expected an API key for %s", email)

	key, err := resp.Key()
	Expect(err).NotTo(HaveOccurred())

	return key
}

// ListPets lists pets and fails the test unless the listing succeeds.
func ListPets(ctx context.Context, c client.Interface, apiKey string, filter openapi.PetFilter) []client.Pet {
	GinkgoHelper()

	resp, err := c.ListPets(ctx, apiKey, filter)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode).To(Equal(http.StatusOK), "listing %s pets", filter)

	pets, err := resp.Pets()
	Expect(err).NotTo(HaveOccurred())

	return pets
}

// CreatePetWithCleanup creates a pet and schedules its deletion, which runs
// whether the test passes or fails.
func CreatePetWithCleanup(ctx context.Context, c client.Interface, apiKey string, payload PetPayload) *client.Pet {
	GinkgoHelper()

	resp, err := AddPet(ctx, c, apiKey, payload)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode).To(Equal(http.StatusOK), "creating pet %q: %s", payload.Form.Name, resp.Text)

	pet, err := resp.Pet()
	Expect(err).NotTo(HaveOccurred())

	GinkgoWriter.Printf("Created pet with ID: %s\n", pet.ID)

	DeferCleanup(func() {
		GinkgoWriter.Printf("Cleaning up pet: %s\n", pet.ID)

		deleteResp, deleteErr := c.DeletePet(ctx, apiKey, pet.ID)

		switch {
		case deleteErr != nil:
			GinkgoWriter.Printf("Warning: Failed to delete pet %s: %v\n", pet.ID, deleteErr)
		case deleteResp.StatusCode != http.StatusOK:
			GinkgoWriter.Printf("Warning: Failed to delete pet %s: status %d\n", pet.ID, deleteResp.StatusCode)
		default:
			GinkgoWriter.Printf("Successfully deleted pet: %s\n", pet.ID)
		}
	})

	return pet
}

// EnsureOwnPet returns the newest pet owned by the key's account, creating
// one with cleanup if the account has none.
func EnsureOwnPet(ctx context.Context, c client.Interface, apiKey string) client.Pet {
	GinkgoHelper()

	if pets := ListPets(ctx, c, apiKey, openapi.FilterMyPets); len(pets) > 0 {
		return pets[0]
	}

	return *CreatePetWithCleanup(ctx, c, apiKey, NewPetPayload().Build())
}

// VerifyPetPresence verifies that every expected pet is in the list.
func VerifyPetPresence(pets []client.Pet, expectedPetIDs ...string) {
	GinkgoHelper()

	missing := set.New[string](expectedPetIDs...).Difference(set.New[string](client.PetIDs(pets)...))

	Expect(slices.Sorted(missing.All())).To(BeEmpty(), "Expected pet IDs to be present in the list")
}

// VerifyPetAbsence verifies that none of the given pets is in the list.
func VerifyPetAbsence(pets []client.Pet, unexpectedPetIDs ...string) {
	GinkgoHelper()

	present := set.New[string](client.PetIDs(pets)...).Intersection(set.New[string](unexpectedPetIDs...))

	Expect(slices.Sorted(present.All())).To(BeEmpty(), "Expected pet IDs to be absent from the list")
}

// ExpectConformant fails the test if a response does not match the OpenAPI
// document for its operation.
func ExpectConformant(ctx context.Context, validator *openapi.Validator, resp *client.Response) {
	GinkgoHelper()

	Expect(validator.ValidateResponse(ctx, resp.Operation, resp.StatusCode, resp.Header, []byte(resp.Text))).To(Succeed())
}
