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

// Package namedargscmd provides the structz-gen command that rewrites
// named_args functions into single-shape-parameter form.
package namedargscmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"sort"

	"github.com/NichtsHsu/structz/gen/genfields"
	"github.com/NichtsHsu/structz/gen/gengo"
	"github.com/NichtsHsu/structz/util/cmdutil"
	"github.com/NichtsHsu/structz/util/log"

	"github.com/google/subcommands"
	"golang.org/x/sync/errgroup"
)

type namedArgsCommand struct {
	cmdutil.Info

	write bool
}

// New creates a new subcommand for rewriting named_args functions.
func New() subcommands.Command {
	return &namedArgsCommand{
		Info: cmdutil.NewInfo("namedargs", "rewrite named_args functions", "[-w] file.go ..."),
	}
}

// SetFlags implements the subcommands interface and provides command-specific
// flags for the namedargs command.
func (c *namedArgsCommand) SetFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.write, "w", false, "Rewrite files in place and write companion shape files")
}

// Execute implements the subcommands interface and rewrites the given files.
// All scanned files of a package contribute to a single companion file, since
// shapes and field names shared across files declare package-level symbols.
func (c *namedArgsCommand) Execute(ctx context.Context, fs *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if fs.NArg() == 0 {
		return c.Fail("no input files given")
	}

	files := make([]*genfields.File, fs.NArg())
	g, _ := errgroup.WithContext(ctx)
	for i, path := range fs.Args() {
		i, path := i, path
		g.Go(func() error {
			f, err := genfields.ParseFile(path)
			if err != nil {
				return err
			}
			files[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return c.Fail("%v", err)
	}

	for _, f := range files {
		if err := c.emitRewrite(f); err != nil {
			return c.Fail("%v", err)
		}
	}
	for _, group := range groupByPackage(files) {
		if err := c.emitCompanion(group); err != nil {
			return c.Fail("%v", err)
		}
	}
	return subcommands.ExitSuccess
}

// emitRewrite rewrites one file's named_args functions, in place or to
// stdout.
func (c *namedArgsCommand) emitRewrite(f *genfields.File) error {
	rewritten, err := gengo.RewriteNamedArgs(f)
	if err != nil {
		return err
	}
	if rewritten == nil {
		log.Infof("%s: no named_args functions", f.Path)
		return nil
	}
	if !c.write {
		os.Stdout.Write(rewritten)
		return nil
	}
	if err := os.WriteFile(f.Path, rewritten, 0666); err != nil {
		return err
	}
	log.Infof("Rewrote %s", f.Path)
	return nil
}

// emitCompanion generates one companion for a package's files, in the
// package directory or to stdout.
func (c *namedArgsCommand) emitCompanion(group []*genfields.File) error {
	companion, err := gengo.EmitCompanion(group...)
	if err != nil {
		return err
	}
	if companion == nil {
		return nil
	}
	if !c.write {
		os.Stdout.Write(companion)
		return nil
	}
	out := CompanionPath(filepath.Dir(group[0].Path), group[0].AST.Name.Name)
	if err := os.WriteFile(out, companion, 0666); err != nil {
		return err
	}
	log.Infof("Wrote %s", out)
	return nil
}

// groupByPackage splits scanned files into per-package groups, keyed by
// directory and package clause, in a stable order.
func groupByPackage(files []*genfields.File) [][]*genfields.File {
	byKey := make(map[string][]*genfields.File)
	for _, f := range files {
		key := filepath.Dir(f.Path) + "\x00" + f.AST.Name.Name
		byKey[key] = append(byKey[key], f)
	}
	keys := make([]string, 0, len(byKey))
	for key := range byKey {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	groups := make([][]*genfields.File, len(keys))
	for i, key := range keys {
		groups[i] = byKey[key]
	}
	return groups
}

// CompanionPath names the generated companion file for a package: all files
// of package demo under pkg/ share "pkg/demo_structz.go".
func CompanionPath(dir, pkg string) string {
	return filepath.Join(dir, pkg+"_structz.go")
}
