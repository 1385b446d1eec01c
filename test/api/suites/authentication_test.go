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
	"github.com/petfriends-qa/petfriends/test/api"
)

var _ = Describe("Authentication", func() {
	Context("When requesting an API key", func() {
		Describe("Given valid credentials", func() {
			It("should issue a key to the first account", func() {
				resp, err := apiClient.GetAPIKey(ctx, config.ValidEmail, config.ValidPassword)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK))
				Expect(resp.Body).To(HaveKeyWithValue("key", Not(BeEmpty())))

				api.ExpectConformant(ctx, validator, resp)
			})

			It("should issue a key to the second account", func() {
				resp, err := apiClient.GetAPIKey(ctx, config.ValidEmailUser2, config.ValidPasswordUser2)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusOK))

				key, err := resp.Key()
				Expect(err).NotTo(HaveOccurred())
				Expect(key).NotTo(BeEmpty())

				api.ExpectConformant(ctx, validator, resp)
			})
		})

		Describe("Given invalid credentials", func() {
			DescribeTable("should reject the request",
				func(credentials func() (string, string)) {
					email, password := credentials()

					resp, err := apiClient.GetAPIKey(ctx, email, password)
					Expect(err).NotTo(HaveOccurred())
					Expect(resp.StatusCode).To(Equal(http.StatusForbidden))

					_, err = resp.Key()
					Expect(err).To(MatchError(client.ErrMissingField))
				},
				Entry("with an unregistered account", func() (string, string) {
					return config.InvalidEmail, config.InvalidPassword
				}),
				Entry("with email and password swapped", func() (string, string) {
					return config.ValidPassword, config.ValidEmail
				}),
				Entry("with another account's password", func() (string, string) {
					return config.ValidEmail, config.ValidPasswordUser2
				}),
			)
		})
	})
})
