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

package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var ErrMissingField = errors.New("response is missing field")

// Response is the normalised result of every client operation.
type Response struct {
	// Operation is the OpenAPI operation ID the request was made for.
	Operation string
	Method    string
	Path      string

	StatusCode int
	Header     http.Header

	// Body is the decoded JSON object, or nil when the body is empty or
	// not a JSON object (the service answers some rejections with HTML).
	Body map[string]any

	// Text is the raw body.
	Text string
}

// NewResponse normalises a raw HTTP exchange. Bodies that are not a JSON
// object leave Body nil.
func NewResponse(operation, method, path string, status int, header http.Header, raw []byte) *Response {
	r := &Response{
		Operation:  operation,
		Method:     method,
		Path:       path,
		StatusCode: status,
		Header:     header,
		Text:       string(raw),
	}

	var body map[string]any

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	if err := decoder.Decode(&body); err == nil {
		r.Body = body
	}

	return r
}

// Key returns the API key from a get API key response.
func (r *Response) Key() (string, error) {
	key, ok := r.Body["key"].(string)
	if !ok || key == "" {
		return "", fmt.Errorf("%w: key (status %d)", ErrMissingField, r.StatusCode)
	}

	return key, nil
}

// Pets decodes the pets array of a listing response.
func (r *Response) Pets() ([]Pet, error) {
	if _, ok := r.Body["pets"]; !ok {
		return nil, fmt.Errorf("%w: pets (status %d)", ErrMissingField, r.StatusCode)
	}

	var list struct {
		Pets []Pet `json:"pets"`
	}

	if err := json.Unmarshal([]byte(r.Text), &list); err != nil {
		return nil, fmt.Errorf("unmarshaling pets response: %w", err)
	}

	return list.Pets, nil
}

// Pet decodes a single pet record.
func (r *Response) Pet() (*Pet, error) {
	if _, ok := r.Body["id"]; !ok {
		return nil, fmt.Errorf("%w: id (status %d)", ErrMissingField, r.StatusCode)
	}

	var pet Pet

	if err := json.Unmarshal([]byte(r.Text), &pet); err != nil {
		return nil, fmt.Errorf("unmarshaling pet response: %w", err)
	}

	return &pet, nil
}

// Pet is a pet record as returned by the service.
type Pet struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	AnimalType string `json:"animal_type"`
	Age        Scalar `json:"age"`
	PetPhoto   string `json:"pet_photo,omitempty"`
	UserID     string `json:"user_id,omitempty"`
	CreatedAt  Scalar `json:"created_at,omitempty"`
}

// Scalar holds a value the service may encode either as a JSON string or a
// JSON number.
type Scalar string

func (a *Scalar) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		*a = Scalar(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("value must be a string or number: %w", err)
	}

	*a = Scalar(n.String())

	return nil
}

// PetIDs returns the identifiers of the given pets, in order.
func PetIDs(pets []Pet) []string {
	ids := make([]string, len(pets))

	for i := range pets {
		ids[i] = pets[i].ID
	}

	return ids
}

// PetForm carries the editable fields of a pet.
type PetForm struct {
	Name       string
	AnimalType string
	Age        string
}

func (f PetForm) values() map[string]string {
	return map[string]string{
		"name":        f.Name,
		"animal_type": f.AnimalType,
		"age":         f.Age,
	}
}
