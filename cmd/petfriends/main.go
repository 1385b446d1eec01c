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
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	cr "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/petfriends-qa/petfriends/pkg/client"
	"github.com/petfriends-qa/petfriends/pkg/constants"
)

func main() {
	var o options

	o.AddFlags(pflag.CommandLine)

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <%s> [pet-id]\n", constants.Application, strings.Join(commandNames(), "|"))
		pflag.PrintDefaults()
	}

	pflag.Parse()

	o.SetupLogging()

	logger := log.Log.WithName("init")
	logger.V(1).Info("client starting", "application", constants.Application, "version", constants.Version, "revision", constants.Revision)

	ctx := cr.SetupSignalHandler()

	c := client.New(client.Options{
		BaseURL:        o.baseURL,
		RequestTimeout: o.timeout,
		LogRequests:    true,
		Logger:         log.Log.V(1),
		UserAgent:      constants.UserAgent(),
	})

	err := run(ctx, log.Log.WithName("petfriends"), c, &o, pflag.Args(), os.Stdout)

	if closeErr := c.Close(); closeErr != nil {
		logger.Error(closeErr, "closing client")
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
