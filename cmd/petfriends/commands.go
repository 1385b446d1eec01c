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
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"

	"github.com/go-logr/logr"

	"github.com/petfriends-qa/petfriends/pkg/client"
)

var ErrUsage = errors.New("usage error")

// command runs one client operation and returns its response.
type command func(ctx context.Context, c client.Interface, o *options, args []string) (*client.Response, error)

//nolint:gochecknoglobals
var commands = map[string]command{
	"key":        getAPIKey,
	"list":       listPets,
	"add":        addNewPet,
	"add-simple": addNewPetNoPhoto,
	"photo":      setPetPhoto,
	"update":     updatePetInfo,
	"delete":     deletePet,
}

func commandNames() []string {
	names := make([]string, 0, len(commands))

	for name := range commands {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// run dispatches args to a command and prints the response status and body.
func run(ctx context.Context, log logr.Logger, c client.Interface, o *options, args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: expected one of %s", ErrUsage, strings.Join(commandNames(), ", "))
	}

	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: unknown command %q, expected one of %s", ErrUsage, args[0], strings.Join(commandNames(), ", "))
	}

	log.V(1).Info("running command", "command", args[0], "args", args[1:])

	resp, err := cmd(ctx, c, o, args[1:])
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(out, "%d %s\n", resp.StatusCode, http.StatusText(resp.StatusCode)); err != nil {
		return err
	}

	if resp.Text != "" {
		if _, err := fmt.Fprintln(out, strings.TrimSpace(resp.Text)); err != nil {
			return err
		}
	}

	return nil
}

// apiKey returns --api-key, or requests a key with --email and --password.
func apiKey(ctx context.Context, c client.Interface, o *options) (string, error) {
	if o.apiKey != "" {
		return o.apiKey, nil
	}

	if o.email == "" || o.password == "" {
		return "", fmt.Errorf("%w: --api-key or both --email and --password are required", ErrUsage)
	}

	resp, err := c.GetAPIKey(ctx, o.email, o.password)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("requesting api key: unexpected status %d", resp.StatusCode)
	}

	return resp.Key()
}

func petID(args []string) (string, error) {
	if len(args) != 1 || args[0] == "" {
		return "", fmt.Errorf("%w: expected a single pet id", ErrUsage)
	}

	return args[0], nil
}

func (o *options) petForm() client.PetForm {
	return client.PetForm{
		Name:       o.name,
		AnimalType: o.animalType,
		Age:        o.age,
	}
}

func (o *options) photoPath() (string, error) {
	if o.photo == "" {
		return "", fmt.Errorf("%w: --photo is required", ErrUsage)
	}

	return o.photo, nil
}

func getAPIKey(ctx context.Context, c client.Interface, o *options, _ []string) (*client.Response, error) {
	if o.email == "" || o.password == "" {
		return nil, fmt.Errorf("%w: --email and --password are required", ErrUsage)
	}

	return c.GetAPIKey(ctx, o.email, o.password)
}

func listPets(ctx context.Context, c client.Interface, o *options, _ []string) (*client.Response, error) {
	key, err := apiKey(ctx, c, o)
	if err != nil {
		return nil, err
	}

	return c.ListPets(ctx, key, o.filter)
}

func addNewPet(ctx context.Context, c client.Interface, o *options, _ []string) (*client.Response, error) {
	photo, err := o.photoPath()
	if err != nil {
		return nil, err
	}

	key, err := apiKey(ctx, c, o)
	if err != nil {
		return nil, err
	}

	return c.AddNewPet(ctx, key, o.petForm(), photo)
}

func addNewPetNoPhoto(ctx context.Context, c client.Interface, o *options, _ []string) (*client.Response, error) {
	key, err := apiKey(ctx, c, o)
	if err != nil {
		return nil, err
	}

	return c.AddNewPetNoPhoto(ctx, key, o.petForm())
}

func setPetPhoto(ctx context.Context, c client.Interface, o *options, args []string) (*client.Response, error) {
	id, err := petID(args)
	if err != nil {
		return nil, err
	}

	photo, err := o.photoPath()
	if err != nil {
		return nil, err
	}

	key, err := apiKey(ctx, c, o)
	if err != nil {
		return nil, err
	}

	return c.SetPetPhoto(ctx, key, id, photo)
}

func updatePetInfo(ctx context.Context, c client.Interface, o *options, args []string) (*client.Response, error) {
	id, err := petID(args)
	if err != nil {
		return nil, err
	}

	key, err := apiKey(ctx, c, o)
	if err != nil {
		return nil, err
	}

	return c.UpdatePetInfo(ctx, key, id, o.petForm())
}

func deletePet(ctx context.Context, c client.Interface, o *options, args []string) (*client.Response, error) {
	id, err := petID(args)
	if err != nil {
		return nil, err
	}

	key, err := apiKey(ctx, c, o)
	if err != nil {
		return nil, err
	}

	return c.DeletePet(ctx, key, id)
}
