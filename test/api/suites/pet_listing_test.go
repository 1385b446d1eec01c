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

	"github.com/petfriends-qa/petfriends/pkg/client"
	"github.com/petfriends-qa/petfriends/pkg/openapi"
	"github.com/petfriends-qa/petfriends/test/api"
)

var _ = Describe("Pet Listing", func() {
	var apiKey string

	BeforeEach(func() {
		apiKey = api.GetAPIKey(ctx, apiClient, config.ValidEmail, config.ValidPassword)
	})

	Context("When listing all pets", func() {
		Describe("Given another account has a pet", func() {
			It("should return a non-empty list", func() {
				user2Key := api.GetAPIKey(ctx, apiClient, config.ValidEmailUser2, config.ValidPasswordUser2)
				user2Pet := api.EnsureOwnPet(ctx, apiClient, user2Key)

				resp, err := apiClient.ListPets(ctx, apiKey, openapi.FilterAll)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK))

				api.ExpectConformant(ctx, validator, resp)

				pets, err := resp.Pets()
				Expect(err).NotTo(HaveOccurred())
				Expect(pets).NotTo(BeEmpty())
				api.VerifyPetPresence(pets, user2Pet.ID)
			})
		})
	})

	Context("When listing my pets", func() {
		Describe("Given a valid key", func() {
			It("should return a pets list", func() {
				resp, err := apiClient.ListPets(ctx, apiKey, openapi.FilterMyPets)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK))
				Expect(resp.Body).To(HaveKey("pets"))

				api.ExpectConformant(ctx, validator, resp)

				pets, err := resp.Pets()
				Expect(err).NotTo(HaveOccurred())
				Expect(len(pets)).To(BeNumerically(">=", 0))
			})
		})

		Describe("Given the account owns a pet", func() {
			It("should list only pets of the account", func() {
				ownPet := api.EnsureOwnPet(ctx, apiClient, apiKey)

				user2Key := api.GetAPIKey(ctx, apiClient, config.ValidEmailUser2, config.ValidPasswordUser2)
				user2Pet := api.EnsureOwnPet(ctx, apiClient, user2Key)
				user2Pets := api.ListPets(ctx, apiClient, user2Key, openapi.FilterMyPets)

				resp, err := apiClient.ListPets(ctx, apiKey, openapi.FilterMyPets)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK))

				api.ExpectConformant(ctx, validator, resp)

				pets, err := resp.Pets()
				Expect(err).NotTo(HaveOccurred())
				Expect(pets).NotTo(BeEmpty())
				api.VerifyPetPresence(pets, ownPet.ID)
				api.VerifyPetAbsence(pets, append(client.PetIDs(user2Pets), user2Pet.ID)...)
			})
		})

		Describe("Given an invalid key", func() {
			It("should reject the request", func() {
				resp, err := apiClient.ListPets(ctx, "invalid-"+api.GenerateTestID(), openapi.FilterMyPets)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusForbidden))
			})
		})
	})
})
