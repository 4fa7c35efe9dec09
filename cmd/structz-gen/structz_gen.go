/*
 * Copyright 2024 The Structz Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Binary structz-gen generates Go bindings for anonymous structural shapes.
//
// Examples:
//
//	# Generate shape types from a YAML manifest.
//	structz-gen shapes --manifest shapes.yaml --output shapes_structz.go
//
//	# Rewrite named_args functions in place, with companion shape files.
//	structz-gen namedargs -w handlers.go service.go
//
//	# Show the canonical form of a manifest's shapes.
//	structz-gen info --manifest shapes.yaml
package main

import (
	"context"
	"flag"
	"os"

	"github.com/NichtsHsu/structz/cmd/structz-gen/infocmd"
	"github.com/NichtsHsu/structz/cmd/structz-gen/namedargscmd"
	"github.com/NichtsHsu/structz/cmd/structz-gen/shapescmd"

	"github.com/google/subcommands"
)

func init() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(shapescmd.New(), "")
	subcommands.Register(namedargscmd.New(), "")
	subcommands.Register(infocmd.New(), "")
}

func main() {
	flag.Parse()
	ctx := context.Background()

	os.Exit(int(subcommands.Execute(ctx)))
}
