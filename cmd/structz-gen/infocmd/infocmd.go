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

// Package infocmd provides the structz-gen command for inspecting the
// canonical form of a shape manifest.
package infocmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/NichtsHsu/structz/gen/genfields"
	"github.com/NichtsHsu/structz/gen/gengo"
	"github.com/NichtsHsu/structz/util/cmdutil"

	"bitbucket.org/creachadair/stringset"
	"github.com/google/subcommands"
)

type infoCommand struct {
	cmdutil.Info

	manifest string
}

// New creates a new subcommand for inspecting a shape manifest.
func New() subcommands.Command {
	return &infoCommand{
		Info: cmdutil.NewInfo("info", "show canonical shapes of a manifest", "--manifest path"),
	}
}

// SetFlags implements the subcommands interface and provides command-specific
// flags for the info command.
func (c *infoCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.manifest, "manifest", "", "Path of the YAML shape manifest (required)")
}

// Execute implements the subcommands interface and prints each declared
// shape's canonical field set and generated type name.
func (c *infoCommand) Execute(ctx context.Context, fs *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if c.manifest == "" {
		return c.Fail("required --manifest path missing")
	}
	data, err := os.ReadFile(c.manifest)
	if err != nil {
		return c.Fail("error reading manifest: %v", err)
	}
	m, err := genfields.ParseManifest(data)
	if err != nil {
		return c.Fail("error in manifest %s: %v", c.manifest, err)
	}
	shapes, err := m.Resolve()
	if err != nil {
		return c.Fail("error in manifest %s: %v", c.manifest, err)
	}

	types := stringset.New()
	for _, s := range shapes {
		tn := gengo.TypeName(s.Key)
		types.Add(tn)
		fmt.Printf("%s: %s -> %s\n", s.Name, s.Key, tn)
	}
	fmt.Printf("%d shapes, %d distinct field sets\n", len(shapes), len(types))
	return subcommands.ExitSuccess
}
