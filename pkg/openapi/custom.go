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
	"errors"
	"fmt"
)

var ErrInvalidPetFilter = errors.New("invalid filter: must be empty (all pets) or \"my_pets\"")

// PetFilter selects the scope of a pet listing.
type PetFilter string

const (
	// FilterAll lists every pet visible to the caller.
	FilterAll PetFilter = ""
	// FilterMyPets lists only pets owned by the authenticated account.
	FilterMyPets PetFilter = "my_pets"
)

// ParsePetFilter validates a raw filter value.
func ParsePetFilter(s string) (PetFilter, error) {
	var f PetFilter

	if err := f.UnmarshalText([]byte(s)); err != nil {
		return "", err
	}

	return f, nil
}

func (f *PetFilter) UnmarshalText(text []byte) error {
	switch v := PetFilter(text); v {
	case FilterAll, FilterMyPets:
		*f = v
		return nil
	}

	return fmt.Errorf("%w: got %q", ErrInvalidPetFilter, string(text))
}

func (f PetFilter) String() string {
	if f == FilterAll {
		return "all"
	}

	return string(f)
}

func (f PetFilter) MarshalText() ([]byte, error) {
	return []byte(f), nil
}
