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

var _ = Describe("Pet Update", func() {
	var apiKey string

	BeforeEach(func() {
		apiKey = api.GetAPIKey(ctx, apiClient, config.ValidEmail, config.ValidPassword)
	})

	Context("When updating a pet", func() {
		Describe("Given the account owns the pet", func() {
			It("should apply the new details", func() {
				pet := api.EnsureOwnPet(ctx, apiClient, apiKey)
				form := client.PetForm{Name: api.GeneratePetName(), AnimalType: "Котэ", Age: "5"}

				resp, err := apiClient.UpdatePetInfo(ctx, apiKey, pet.ID, form)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK))
				Expect(resp.Body).To(HaveKeyWithValue("name", form.Name))

				api.ExpectConformant(ctx, validator, resp)

				updated, err := resp.Pet()
				Expect(err).NotTo(HaveOccurred())
				Expect(updated.ID).To(Equal(pet.ID))
				Expect(updated.AnimalType).To(Equal(form.AnimalType))

				pets := api.ListPets(ctx, apiClient, apiKey, openapi.FilterMyPets)
				Expect(pets).To(ContainElement(HaveField("Name", form.Name)))
			})
		})

		Describe("Given another account owns the pet", func() {
			It("should reject the update", func() {
				user2Key := api.GetAPIKey(ctx, apiClient, config.ValidEmailUser2, config.ValidPasswordUser2)
				foreign := api.EnsureOwnPet(ctx, apiClient, user2Key)

				resp, err := apiClient.UpdatePetInfo(ctx, apiKey, foreign.ID, client.PetForm{Name: "Чужой", AnimalType: "кот", Age: "1"})
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusForbidden))

				pets := api.ListPets(ctx, apiClient, user2Key, openapi.FilterMyPets)
				Expect(pets).To(ContainElement(HaveField("Name", foreign.Name)))
			})
		})
	})
})
