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

// Package fake implements an in-memory PetFriends service speaking the same
// wire protocol as the live API, so the suites can run without network
// access or real accounts.
package fake

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const maxUploadSize = 10 << 20

var (
	ErrUnknownAccount = errors.New("unknown account")
	ErrPetNotFound    = errors.New("pet not found")
	ErrNotOwner       = errors.New("pet belongs to another account")
)

// Account is a registered user of the fake service.
type Account struct {
	Email    string
	Password string
}

// Pet is a stored pet record, serialised as the live service does.
type Pet struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	AnimalType string `json:"animal_type"`
	Age        string `json:"age"`
	PetPhoto   string `json:"pet_photo"`
	UserID     string `json:"user_id"`
	CreatedAt  string `json:"created_at"`
}

type account struct {
	Account

	id  string
	key string
}

// Server serves the PetFriends API from memory. All state is guarded by a
// single mutex.
type Server struct {
	lock sync.Mutex

	accounts map[string]*account
	keys     map[string]*account

	// pets is ordered newest first, matching the live listing order.
	pets []*Pet

	router chi.Router
}

// New creates a server with the given registered accounts.
func New(accounts ...Account) *Server {
	s := &Server{
		accounts: map[string]*account{},
		keys:     map[string]*account{},
	}

	for _, a := range accounts {
		acc := &account{
			Account: a,
			id:      uuid.NewString(),
			key:     newAPIKey(),
		}

		s.accounts[a.Email] = acc
		s.keys[acc.key] = acc
	}

	s.router = s.routes()

	return s
}

// newAPIKey returns a 64 character hex token.
func newAPIKey() string {
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/api/key", s.getAPIKey)

	r.Group(func(r chi.Router) {
		r.Use(s.authenticate)

		r.Get("/api/pets", s.listPets)
		r.Post("/api/pets", s.addNewPet)
		r.Post("/api/create_pet_simple", s.addNewPetSimple)
		r.Post("/api/pets/set_photo/{petID}", s.setPetPhoto)
		r.Put("/api/pets/{petID}", s.updatePetInfo)
		r.Delete("/api/pets/{petID}", s.deletePet)
	})

	return r
}

// Handler returns the HTTP handler for the service.
func (s *Server) Handler() http.Handler {
	return s.router
}

// APIKey returns the key issued to an account.
func (s *Server) APIKey(email string) (string, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	acc, ok := s.accounts[email]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownAccount, email)
	}

	return acc.key, nil
}

// Seed stores a pet owned by the given account without going through HTTP.
func (s *Server) Seed(email, name, animalType, age string) (Pet, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	acc, ok := s.accounts[email]
	if !ok {
		return Pet{}, fmt.Errorf("%w: %s", ErrUnknownAccount, email)
	}

	return *s.insert(acc, name, animalType, age, ""), nil
}

// Pets returns a copy of the pets owned by an account, newest first.
func (s *Server) Pets(email string) []Pet {
	s.lock.Lock()
	defer s.lock.Unlock()

	acc, ok := s.accounts[email]
	if !ok {
		return nil
	}

	var out []Pet

	for _, p := range s.pets {
		if p.UserID == acc.id {
			out = append(out, *p)
		}
	}

	return out
}

// insert must be called with the lock held.
func (s *Server) insert(acc *account, name, animalType, age, photo string) *Pet {
	pet := &Pet{
		ID:         uuid.NewString(),
		Name:       name,
		AnimalType: animalType,
		Age:        age,
		PetPhoto:   photo,
		UserID:     acc.id,
		CreatedAt:  strconv.FormatFloat(float64(time.Now().UnixNano())/1e9, 'f', -1, 64),
	}

	s.pets = slices.Insert(s.pets, 0, pet)

	return pet
}

// lookup must be called with the lock held.
func (s *Server) lookup(acc *account, petID string) (*Pet, error) {
	i := slices.IndexFunc(s.pets, func(p *Pet) bool { return p.ID == petID })
	if i < 0 {
		return nil, ErrPetNotFound
	}

	if s.pets[i].UserID != acc.id {
		return nil, ErrNotOwner
	}

	return s.pets[i], nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(v)
}

// writeHTML mimics the live service, which answers most rejections with
// an HTML error page rather than JSON.
func writeHTML(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	text := http.StatusText(status)
	_, _ = fmt.Fprintf(w, "<!doctype html>\n<html lang=en>\n<title>%d %s</title>\n<h1>%s</h1>\n<p>%s</p>\n", status, text, text, detail)
}

func writeLookupError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotOwner):
		writeHTML(w, http.StatusForbidden, err.Error())
	default:
		writeHTML(w, http.StatusBadRequest, err.Error())
	}
}

type contextKey struct{}

func withAccount(ctx context.Context, acc *account) context.Context {
	return context.WithValue(ctx, contextKey{}, acc)
}

func accountFromContext(ctx context.Context) *account {
	//nolint:forcetypeassert // set by authenticate for every routed request
	return ctx.Value(contextKey{}).(*account)
}

func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.lock.Lock()
		acc, ok := s.keys[r.Header.Get("auth_key")]
		s.lock.Unlock()

		if !ok {
			writeHTML(w, http.StatusForbidden, "Please provide 'auth_key' Header")
			return
		}

		next.ServeHTTP(w, r.WithContext(withAccount(r.Context(), acc)))
	})
}

func (s *Server) getAPIKey(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	acc, ok := s.accounts[r.Header.Get("email")]
	s.lock.Unlock()

	if !ok || acc.Password != r.Header.Get("password") {
		writeHTML(w, http.StatusForbidden, "This user wasn't found in database")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"key": acc.key})
}

func (s *Server) listPets(w http.ResponseWriter, r *http.Request) {
	acc := accountFromContext(r.Context())
	filter := r.URL.Query().Get("filter")

	if filter != "" && filter != "my_pets" {
		writeHTML(w, http.StatusBadRequest, "Filter value is incorrect")
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	pets := []Pet{}

	for _, p := range s.pets {
		if filter == "my_pets" && p.UserID != acc.id {
			continue
		}

		pets = append(pets, *p)
	}

	writeJSON(w, http.StatusOK, map[string]any{"pets": pets})
}

// petForm extracts and validates the editable fields. Empty fields are
// rejected with 403 as on the live service.
func petForm(w http.ResponseWriter, r *http.Request) (name, animalType, age string, ok bool) {
	name = r.FormValue("name")
	animalType = r.FormValue("animal_type")
	age = r.FormValue("age")

	if name == "" || animalType == "" || age == "" {
		writeHTML(w, http.StatusForbidden, "Provide name, animal_type and age")
		return "", "", "", false
	}

	if _, err := strconv.ParseFloat(age, 64); err != nil {
		writeHTML(w, http.StatusBadRequest, "age must be a number")
		return "", "", "", false
	}

	return name, animalType, age, true
}

// readPhoto returns the uploaded pet_photo as a data URI.
func readPhoto(r *http.Request) (string, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return "", fmt.Errorf("parsing multipart form: %w", err)
	}

	file, _, err := r.FormFile("pet_photo")
	if err != nil {
		return "", fmt.Errorf("reading pet_photo: %w", err)
	}

	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("reading pet_photo: %w", err)
	}

	return "data:" + http.DetectContentType(data) + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func (s *Server) addNewPet(w http.ResponseWriter, r *http.Request) {
	photo, err := readPhoto(r)
	if err != nil {
		writeHTML(w, http.StatusBadRequest, err.Error())
		return
	}

	name, animalType, age, ok := petForm(w, r)
	if !ok {
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	writeJSON(w, http.StatusOK, s.insert(accountFromContext(r.Context()), name, animalType, age, photo))
}

func (s *Server) addNewPetSimple(w http.ResponseWriter, r *http.Request) {
	name, animalType, age, ok := petForm(w, r)
	if !ok {
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	writeJSON(w, http.StatusOK, s.insert(accountFromContext(r.Context()), name, animalType, age, ""))
}

func (s *Server) setPetPhoto(w http.ResponseWriter, r *http.Request) {
	photo, err := readPhoto(r)
	if err != nil {
		writeHTML(w, http.StatusBadRequest, err.Error())
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	pet, err := s.lookup(accountFromContext(r.Context()), chi.URLParam(r, "petID"))
	if err != nil {
		writeLookupError(w, err)
		return
	}

	pet.PetPhoto = photo

	writeJSON(w, http.StatusOK, pet)
}

func (s *Server) updatePetInfo(w http.ResponseWriter, r *http.Request) {
	name, animalType, age, ok := petForm(w, r)
	if !ok {
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	pet, err := s.lookup(accountFromContext(r.Context()), chi.URLParam(r, "petID"))
	if err != nil {
		writeLookupError(w, err)
		return
	}

	pet.Name = name
	pet.AnimalType = animalType
	pet.Age = age

	writeJSON(w, http.StatusOK, pet)
}

func (s *Server) deletePet(w http.ResponseWriter, r *http.Request) {
	petID := chi.URLParam(r, "petID")

	s.lock.Lock()
	defer s.lock.Unlock()

	if _, err := s.lookup(accountFromContext(r.Context()), petID); err != nil {
		// The live service answers 200 for ids that do not exist.
		if errors.Is(err, ErrPetNotFound) {
			w.WriteHeader(http.StatusOK)
			return
		}

		writeLookupError(w, err)

		return
	}

	s.pets = slices.DeleteFunc(s.pets, func(p *Pet) bool { return p.ID == petID })

	w.WriteHeader(http.StatusOK)
}
