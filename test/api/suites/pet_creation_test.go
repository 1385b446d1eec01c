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
//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/petfriends-qa/petfriends/pkg/openapi"
	"github.com/petfriends-qa/petfriends/test/api"
)

var _ = Describe("Pet Creation", func() {
	var apiKey string

	BeforeEach(func() {
		apiKey = api.GetAPIKey(ctx, apiClient, config.ValidEmail, config.ValidPassword)
	})

	Context("When adding a pet with a photo", func() {
		Describe("Given valid fields", func() {
			It("should create the pet", func() {
				payload := api.NewPetPayload().WithName("Барбоскин").Build()

				resp, err := api.AddPet(ctx, apiClient, apiKey, payload)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK))
				Expect(resp.Body).To(HaveKeyWithValue("name", payload.Form.Name))

				api.ExpectConformant(ctx, validator, resp)

				pet, err := resp.Pet()
				Expect(err).NotTo(HaveOccurred())

				DeferCleanup(func() {
					_, _ = apiClient.DeletePet(ctx, apiKey, pet.ID)
				})

				api.VerifyPetPresence(api.ListPets(ctx, apiClient, apiKey, openapi.FilterMyPets), pet.ID)
			})
		})

		Describe("Given empty fields", func() {
			It("should reject the pet", func() {
				payload := api.NewPetPayload().WithEmptyFields().Build()

				resp, err := api.AddPet(ctx, apiClient, apiKey, payload)
				Expect(err).NotTo(HaveOccurred())

				if resp.StatusCode == http.StatusOK {
					if pet, petErr := resp.Pet(); petErr == nil {
						_, _ = apiClient.DeletePet(ctx, apiKey, pet.ID)
					}
				}

				Expect(resp.StatusCode).To(Equal(http.StatusForbidden))
			})
		})
	})

	Context("When adding a pet without a photo", func() {
		Describe("Given valid fields", func() {
			It("should create the pet", func() {
				payload := api.NewPetPayload().WithName("Мурзик").WithAnimalType("кот").WithAge("2").WithoutPhoto().Build()

				resp, err := api.AddPet(ctx, apiClient, apiKey, payload)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK))

				api.ExpectConformant(ctx, validator, resp)

				pet, err := resp.Pet()
				Expect(err).NotTo(HaveOccurred())

				DeferCleanup(func() {
					_, _ = apiClient.DeletePet(ctx, apiKey, pet.ID)
				})

				Expect(pet.Name).To(Equal(payload.Form.Name))
				Expect(pet.AnimalType).To(Equal(payload.Form.AnimalType))
				Expect(pet.PetPhoto).To(BeEmpty())
			})
		})
	})

	Context("When setting the photo of a pet", func() {
		Describe("Given the account owns the pet", func() {
			It("should store the photo", func() {
				pet := api.CreatePetWithCleanup(ctx, apiClient, apiKey, api.NewPetPayload().WithoutPhoto().Build())

				resp, err := apiClient.SetPetPhoto(ctx, apiKey, pet.ID, api.PhotoPath("cat1.jpg"))
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK))

				api.ExpectConformant(ctx, validator, resp)

				updated, err := resp.Pet()
				Expect(err).NotTo(HaveOccurred())
				Expect(updated.ID).To(Equal(pet.ID))
				Expect(updated.PetPhoto).NotTo(BeEmpty())
			})
		})
	})
})
