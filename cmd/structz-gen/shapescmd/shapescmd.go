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

// Package shapescmd provides the structz-gen command that generates Go shape
// bindings from a YAML manifest.
package shapescmd

import (
	"context"
	"flag"
	"os"

	"github.com/NichtsHsu/structz/gen/genfields"
	"github.com/NichtsHsu/structz/gen/gengo"
	"github.com/NichtsHsu/structz/util/cmdutil"
	"github.com/NichtsHsu/structz/util/log"

	"github.com/google/subcommands"
)

type shapesCommand struct {
	cmdutil.Info

	manifest string
	output   string
}

// New creates a new subcommand for generating shape bindings.
func New() subcommands.Command {
	return &shapesCommand{
		Info: cmdutil.NewInfo("shapes", "generate shape bindings from a manifest", "--manifest path [--output path]"),
	}
}

// SetFlags implements the subcommands interface and provides command-specific
// flags for the shapes command.
func (c *shapesCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.manifest, "manifest", "", "Path of the YAML shape manifest (required)")
	fs.StringVar(&c.output, "output", "", "Path of the generated Go file (defaults to stdout)")
}

// Execute implements the subcommands interface and generates the bindings.
func (c *shapesCommand) Execute(ctx context.Context, fs *flag.FlagSet, _ ...any) subcommands.ExitStatus {
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
	src, err := gengo.EmitShapes(m.Package, m.Imports, shapes)
	if err != nil {
		return c.Fail("error generating shapes: %v", err)
	}

	if c.output == "" {
		os.Stdout.Write(src)
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(c.output, src, 0666); err != nil {
		return c.Fail("error writing %s: %v", c.output, err)
	}
	log.Infof("Wrote %d shapes to %s", len(shapes), c.output)
	return subcommands.ExitSuccess
}
