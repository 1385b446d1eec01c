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
	"flag"
	"time"

	"github.com/spf13/pflag"

	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"

	"github.com/petfriends-qa/petfriends/pkg/openapi"
)

// options are the command line flags shared by all commands.
type options struct {
	baseURL  string
	email    string
	password string
	apiKey   string
	timeout  time.Duration

	filter openapi.PetFilter

	name       string
	animalType string
	age        string
	photo      string

	zapOptions zap.Options
}

func (o *options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.baseURL, "base-url", "https://petfriends.skillfactory.ru", "PetFriends service root.")
	f.StringVar(&o.email, "email", "", "Account email, used to request an API key.")
	f.StringVar(&o.password, "password", "", "Account password, used to request an API key.")
	f.StringVar(&o.apiKey, "api-key", "", "API key to use instead of requesting one with --email and --password.")
	f.DurationVar(&o.timeout, "timeout", 0, "Per request timeout, zero for none.")
	f.TextVar(&o.filter, "filter", openapi.FilterAll, "Pet listing scope, empty for all pets or my_pets.")
	f.StringVar(&o.name, "name", "", "Pet name.")
	f.StringVar(&o.animalType, "animal-type", "", "Pet animal type.")
	f.StringVar(&o.age, "age", "", "Pet age.")
	f.StringVar(&o.photo, "photo", "", "Path of the pet photo to upload.")

	zapFlagSet := flag.NewFlagSet("", flag.ExitOnError)
	o.zapOptions.BindFlags(zapFlagSet)

	f.AddGoFlagSet(zapFlagSet)
}

func (o *options) SetupLogging() {
	log.SetLogger(zap.New(zap.UseFlagOptions(&o.zapOptions)))
}
