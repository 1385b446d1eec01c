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

// Package api provides integration test utilities for the PetFriends API.
//
// # Client
//
// The suites drive the service through pkg/client rather than a client
// generated from the OpenAPI document. Every 200 response is instead
// checked against that document with ExpectConformant, so a drift between
// the live service and the document shows up as a test failure instead of
// silently changing what the client decodes.
//
// # Targets
//
// With API_BASE_URL unset the suites start the in-memory service from
// test/fake and register the two fixture accounts on it. Setting
// API_BASE_URL and the credential variables runs the same suites against
// the live service.
//
// # Fixtures
//
// Pets created by a test are deleted again through DeferCleanup, whether
// the test passes or not. Preconditions that cannot be arranged fail the
// test through Gomega assertions.
package api
