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

// Package gengo emits Go source for the structz-gen tool.
//
// Every distinct canonical field set becomes exactly one defined struct type
// whose name is derived from the shape key, and every declared shape name
// becomes a type alias for it.  Two declarations with the same fields in any
// order therefore produce the same Go type, which is what makes generated
// shapes interchangeable the way structural records are.
package gengo // import "github.com/NichtsHsu/structz/gen/gengo"

import (
	"bytes"
	"fmt"
	"go/format"
	"go/parser"
	"go/token"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/NichtsHsu/structz/gen/genfields"
	"github.com/NichtsHsu/structz/structz"

	"bitbucket.org/creachadair/stringset"
	"github.com/pkg/errors"
	"golang.org/x/tools/go/ast/astutil"
)

const generatedHeader = "// Code generated by structz-gen. DO NOT EDIT.\n"

// TypeName returns the deterministic name of the defined struct type
// generated for a shape.
func TypeName(key structz.Shape) string {
	return fmt.Sprintf("Shape%016x", key.Hash())
}

// ExportName maps a field name to the exported Go field name of its
// generated struct slot.
func ExportName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}

// nameVar returns the generated package-level variable holding a field's
// interned name.
func nameVar(name string) string { return "structzName_" + name }

// EmitShapes generates a Go file binding the given shapes: one defined
// struct per distinct field set, an alias per declared name, and Record /
// FieldValue / FromRecord conversions.  Extra imports are added for
// qualified types used by the fields.
func EmitShapes(pkg string, imports []string, shapes []genfields.Shape) ([]byte, error) {
	distinct, aliases, err := dedupeShapes(shapes)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(generatedHeader)
	fmt.Fprintf(&buf, "\npackage %s\n\n", pkg)
	buf.WriteString("import (\n")
	buf.WriteString("\t\"github.com/NichtsHsu/structz/stringz\"\n")
	buf.WriteString("\t\"github.com/NichtsHsu/structz/structz\"\n")
	buf.WriteString(")\n\n")

	writeNameVars(&buf, distinct)

	for _, s := range distinct {
		if err := writeShapeType(&buf, s); err != nil {
			return nil, err
		}
		for _, alias := range aliases[string(s.Key.Key())] {
			fmt.Fprintf(&buf, "// %s is the declared name for the field set %s.\ntype %s = %s\n\n",
				alias, s.Key, alias, TypeName(s.Key))
		}
		writeShapeBindings(&buf, s)
	}

	return finish(buf.Bytes(), imports)
}

// EmitCompanion generates the companion file for the scanned source files of
// one package: the anonymous shape types their named_args functions need, and
// record bindings for their shape structs.  All files of a package must be
// emitted together, since a shape or a field name shared between two files
// must declare its package-level type and name variable exactly once.  It
// returns nil source when no file carries a directive.
func EmitCompanion(files ...*genfields.File) ([]byte, error) {
	var pkg string
	var shapes []genfields.Shape
	var structs []genfields.ShapeStruct
	for _, f := range files {
		name := f.AST.Name.Name
		if pkg == "" {
			pkg = name
		} else if name != pkg {
			return nil, fmt.Errorf("companion cannot span packages %s and %s", pkg, name)
		}
		for _, fn := range f.NamedArgs {
			shapes = append(shapes, fn.Shape)
		}
		structs = append(structs, f.Shapes...)
	}
	if len(shapes) == 0 && len(structs) == 0 {
		return nil, nil
	}
	distinct, _, err := dedupeShapes(shapes)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(generatedHeader)
	fmt.Fprintf(&buf, "\npackage %s\n\n", pkg)
	buf.WriteString("import (\n")
	buf.WriteString("\t\"github.com/NichtsHsu/structz/stringz\"\n")
	buf.WriteString("\t\"github.com/NichtsHsu/structz/structz\"\n")
	buf.WriteString(")\n\n")

	all := append([]genfields.Shape{}, distinct...)
	for _, ss := range structs {
		all = append(all, ss.Shape)
	}
	writeNameVars(&buf, all)

	for _, s := range distinct {
		if err := writeShapeType(&buf, s); err != nil {
			return nil, err
		}
		writeShapeBindings(&buf, s)
	}
	for _, ss := range structs {
		writeStructBindings(&buf, ss)
	}

	return finish(buf.Bytes(), nil)
}

// dedupeShapes collapses shapes with the same key to one and records the
// alias names declared for each. Shape field sets are returned in key order.
func dedupeShapes(shapes []genfields.Shape) ([]genfields.Shape, map[string][]string, error) {
	byKey := make(map[string]genfields.Shape)
	aliases := make(map[string][]string)
	seen := stringset.New()
	for _, s := range shapes {
		key := string(s.Key.Key())
		if _, ok := byKey[key]; !ok {
			byKey[key] = genfields.Shape{Fields: s.Fields, Key: s.Key}
		}
		if s.Name != "" {
			if !seen.Add(s.Name) {
				return nil, nil, fmt.Errorf("shape %q declared twice", s.Name)
			}
			aliases[key] = append(aliases[key], s.Name)
		}
	}
	keys := make([]string, 0, len(byKey))
	for key := range byKey {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	distinct := make([]genfields.Shape, len(keys))
	for i, key := range keys {
		distinct[i] = byKey[key]
	}
	return distinct, aliases, nil
}

// writeNameVars emits one interned-name variable per field name used by any
// of the shapes.
func writeNameVars(buf *bytes.Buffer, shapes []genfields.Shape) {
	names := stringset.New()
	for _, s := range shapes {
		for _, f := range s.Fields {
			names.Add(f.Name.String())
		}
	}
	if names.Empty() {
		return
	}
	buf.WriteString("// Interned field names.\nvar (\n")
	for _, name := range names.Elements() { // sorted
		fmt.Fprintf(buf, "\t%s = stringz.Encode(%q)\n", nameVar(name), name)
	}
	buf.WriteString(")\n\n")
}

func writeShapeType(buf *bytes.Buffer, s genfields.Shape) error {
	tn := TypeName(s.Key)
	exported := stringset.New()
	fmt.Fprintf(buf, "// %s is the anonymous struct %s.\ntype %s struct {\n", tn, s.Key, tn)
	for _, f := range s.Fields {
		exp := ExportName(f.Name.String())
		if !exported.Add(exp) {
			return fmt.Errorf("fields of %s map to the same exported name %s", s.Key, exp)
		}
		fmt.Fprintf(buf, "\t%s %s\n", exp, f.Type)
	}
	buf.WriteString("}\n\n")
	return nil
}

func writeShapeBindings(buf *bytes.Buffer, s genfields.Shape) {
	tn := TypeName(s.Key)

	fmt.Fprintf(buf, "// Record converts s to its structural record.\nfunc (s %s) Record() *structz.Record {\n\treturn structz.Must(\n", tn)
	for _, f := range s.Fields {
		fmt.Fprintf(buf, "\t\tstructz.FieldOf(%s, s.%s),\n", nameVar(f.Name.String()), ExportName(f.Name.String()))
	}
	buf.WriteString("\t)\n}\n\n")

	fmt.Fprintf(buf, "// FieldValue implements structz.Fielder.\nfunc (s %s) FieldValue(name stringz.Name) (any, bool) {\n\tswitch name {\n", tn)
	for _, f := range s.Fields {
		fmt.Fprintf(buf, "\tcase %s:\n\t\treturn s.%s, true\n", nameVar(f.Name.String()), ExportName(f.Name.String()))
	}
	buf.WriteString("\t}\n\treturn nil, false\n}\n\n")

	fmt.Fprintf(buf, "// %sFromRecord rebuilds the shape from a structural record.\nfunc %sFromRecord(r *structz.Record) (s %s, err error) {\n", tn, tn, tn)
	for _, f := range s.Fields {
		fmt.Fprintf(buf, "\tif s.%s, err = structz.Get[%s](r, %s); err != nil {\n\t\treturn s, err\n\t}\n",
			ExportName(f.Name.String()), f.Type, nameVar(f.Name.String()))
	}
	buf.WriteString("\treturn s, nil\n}\n\n")
}

// writeStructBindings emits record conversions for an existing struct type
// marked with the shape directive.  Field access keeps the struct's own
// field names.
func writeStructBindings(buf *bytes.Buffer, ss genfields.ShapeStruct) {
	tn := ss.TypeName

	fmt.Fprintf(buf, "// Record converts x to its structural record.\nfunc (x %s) Record() *structz.Record {\n\treturn structz.Must(\n", tn)
	for _, f := range ss.Shape.Fields {
		fmt.Fprintf(buf, "\t\tstructz.FieldOf(%s, x.%s),\n", nameVar(f.Name.String()), f.Name)
	}
	buf.WriteString("\t)\n}\n\n")

	fmt.Fprintf(buf, "// FieldValue implements structz.Fielder.\nfunc (x %s) FieldValue(name stringz.Name) (any, bool) {\n\tswitch name {\n", tn)
	for _, f := range ss.Shape.Fields {
		fmt.Fprintf(buf, "\tcase %s:\n\t\treturn x.%s, true\n", nameVar(f.Name.String()), f.Name)
	}
	buf.WriteString("\t}\n\treturn nil, false\n}\n\n")

	fmt.Fprintf(buf, "// %sFromRecord rebuilds %s from a structural record.\nfunc %sFromRecord(r *structz.Record) (x %s, err error) {\n", tn, tn, tn, tn)
	for _, f := range ss.Shape.Fields {
		fmt.Fprintf(buf, "\tif x.%s, err = structz.Get[%s](r, %s); err != nil {\n\t\treturn x, err\n\t}\n",
			f.Name, f.Type, nameVar(f.Name.String()))
	}
	buf.WriteString("\treturn x, nil\n}\n\n")
}

// finish parses the draft, splices in any extra imports, and formats.
func finish(src []byte, imports []string) ([]byte, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "generated.go", src, parser.ParseComments)
	if err != nil {
		return nil, errors.WithMessage(err, "parsing generated source")
	}
	for _, imp := range imports {
		astutil.AddImport(fset, file, imp)
	}
	var out bytes.Buffer
	if err := format.Node(&out, fset, file); err != nil {
		return nil, errors.WithMessage(err, "formatting generated source")
	}
	b := out.Bytes()
	if !strings.HasSuffix(string(b), "\n") {
		b = append(b, '\n')
	}
	return b, nil
}
