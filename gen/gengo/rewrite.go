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

package gengo

import (
	"go/format"
	"strings"

	"github.com/NichtsHsu/structz/gen/genfields"

	"github.com/pkg/errors"
)

// argsParam is the name of the synthesized shape parameter.  Chosen to be
// unlikely to collide with locals in the rewritten body.
const argsParam = "structzArgs"

// RewriteNamedArgs rewrites every named_args function in f: the parameter
// list is replaced by a single parameter of the function's generated shape
// type, and a prologue is inserted that rebinds each original parameter name
// from the corresponding field.  An optional receiver is left untouched.
// The directive comment is replaced so the rewrite is not applied twice.
//
// The types the rewritten source refers to are produced by EmitCompanion;
// the two outputs belong to the same package.
func RewriteNamedArgs(f *genfields.File) ([]byte, error) {
	if len(f.NamedArgs) == 0 {
		return nil, nil
	}
	b := newEditBuffer(f.Fset, f.Src)
	for _, fn := range f.NamedArgs {
		params := fn.Decl.Type.Params
		b.replace(params.Opening+1, params.Closing, argsParam+" "+TypeName(fn.Shape.Key))
		b.insert(fn.Decl.Body.Lbrace+1, prologue(fn.Params))
		b.replace(fn.Directive.Pos(), fn.Directive.End(), "//structz:rewritten")
	}
	out, err := b.bytes()
	if err != nil {
		return nil, errors.WithMessagef(err, "rewriting %s", f.Path)
	}
	formatted, err := format.Source(out)
	if err != nil {
		return nil, errors.WithMessagef(err, "formatting rewritten %s", f.Path)
	}
	return formatted, nil
}

// prologue rebinds the original parameter names from the shape parameter's
// fields, in declaration order, followed by a blank use of each name so a
// parameter the body ignores does not become an unused variable.
func prologue(params []genfields.Param) string {
	var sb strings.Builder
	for _, p := range params {
		sb.WriteString("\n\t")
		sb.WriteString(p.Name)
		sb.WriteString(" := ")
		sb.WriteString(argsParam)
		sb.WriteString(".")
		sb.WriteString(ExportName(p.Name))
	}
	sb.WriteString("\n\t")
	blanks := make([]string, len(params))
	names := make([]string, len(params))
	for i, p := range params {
		blanks[i] = "_"
		names[i] = p.Name
	}
	sb.WriteString(strings.Join(blanks, ", "))
	sb.WriteString(" = ")
	sb.WriteString(strings.Join(names, ", "))
	return sb.String()
}
