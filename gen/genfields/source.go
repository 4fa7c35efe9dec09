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

package genfields

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"strings"

	"bitbucket.org/creachadair/stringset"
)

// Directives recognized in doc comments.
const (
	// NamedArgsDirective marks a function whose named parameters are to be
	// rewritten into a single shape parameter plus a destructuring prologue.
	NamedArgsDirective = "//structz:named_args"

	// ShapeDirective marks a struct type declaration for which record
	// conversions are to be generated.
	ShapeDirective = "//structz:shape"
)

// A Param is one named parameter of a named_args function, in declaration
// order, with its type as source text.
type Param struct {
	Name string
	Type string
}

// A NamedArgsFunc is a function carrying the named_args directive.
type NamedArgsFunc struct {
	Decl      *ast.FuncDecl
	Directive *ast.Comment // the //structz:named_args comment
	Params    []Param      // declaration order
	Shape     Shape        // anonymous, canonical
}

// A ShapeStruct is a struct type declaration carrying the shape directive.
type ShapeStruct struct {
	TypeName string
	Spec     *ast.TypeSpec
	Shape    Shape // anonymous, canonical
}

// A File is a scanned Go source file.
type File struct {
	Path string
	Fset *token.FileSet
	AST  *ast.File
	Src  []byte

	NamedArgs []NamedArgsFunc
	Shapes    []ShapeStruct
}

// ParseFile reads and scans a Go source file for structz directives.
func ParseFile(path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSource(path, src)
}

// ParseSource scans Go source for structz directives.  The path is used only
// for diagnostics.
func ParseSource(path string, src []byte) (*File, error) {
	fset := token.NewFileSet()
	root, err := parser.ParseFile(fset, path, src, parser.ParseComments)
	if err != nil {
		return nil, err
	}
	f := &File{Path: path, Fset: fset, AST: root, Src: src}

	for _, decl := range root.Decls {
		switch decl := decl.(type) {
		case *ast.FuncDecl:
			dir := findDirective(decl.Doc, NamedArgsDirective)
			if dir == nil {
				continue
			}
			fn, err := f.namedArgsFunc(decl)
			if err != nil {
				return nil, err
			}
			fn.Directive = dir
			f.NamedArgs = append(f.NamedArgs, fn)
		case *ast.GenDecl:
			if decl.Tok != token.TYPE {
				continue
			}
			for _, spec := range decl.Specs {
				ts := spec.(*ast.TypeSpec)
				if !hasDirective(decl.Doc, ShapeDirective) && !hasDirective(ts.Doc, ShapeDirective) {
					continue
				}
				ss, err := f.shapeStruct(ts)
				if err != nil {
					return nil, err
				}
				f.Shapes = append(f.Shapes, ss)
			}
		}
	}
	return f, nil
}

func hasDirective(doc *ast.CommentGroup, directive string) bool {
	return findDirective(doc, directive) != nil
}

func findDirective(doc *ast.CommentGroup, directive string) *ast.Comment {
	if doc == nil {
		return nil
	}
	for _, c := range doc.List {
		text := strings.TrimSpace(c.Text)
		if text == directive || strings.HasPrefix(text, directive+" ") {
			return c
		}
	}
	return nil
}

// typeText returns the source text of a type expression.
func (f *File) typeText(expr ast.Expr) string {
	start := f.Fset.Position(expr.Pos()).Offset
	end := f.Fset.Position(expr.End()).Offset
	return string(f.Src[start:end])
}

func (f *File) posOf(n ast.Node) token.Position { return f.Fset.Position(n.Pos()) }

func (f *File) namedArgsFunc(decl *ast.FuncDecl) (NamedArgsFunc, error) {
	name := decl.Name.Name
	if decl.Body == nil {
		return NamedArgsFunc{}, fmt.Errorf("%s: named_args function %s has no body", f.posOf(decl), name)
	}
	if decl.Type.TypeParams != nil {
		return NamedArgsFunc{}, fmt.Errorf("%s: named_args function %s has type parameters", f.posOf(decl.Type.TypeParams), name)
	}
	seen := stringset.New()
	var params []Param
	for _, field := range decl.Type.Params.List {
		if len(field.Names) == 0 {
			return NamedArgsFunc{}, fmt.Errorf("%s: named_args function %s has an unnamed parameter", f.posOf(field), name)
		}
		if _, variadic := field.Type.(*ast.Ellipsis); variadic {
			return NamedArgsFunc{}, fmt.Errorf("%s: named_args function %s has a variadic parameter", f.posOf(field), name)
		}
		typ := f.typeText(field.Type)
		for _, id := range field.Names {
			if id.Name == "_" {
				return NamedArgsFunc{}, fmt.Errorf("%s: named_args function %s has a blank parameter", f.posOf(id), name)
			}
			if !seen.Add(id.Name) {
				return NamedArgsFunc{}, fmt.Errorf("%s: named_args function %s repeats parameter %q", f.posOf(id), name, id.Name)
			}
			params = append(params, Param{Name: id.Name, Type: typ})
		}
	}
	if len(params) == 0 {
		return NamedArgsFunc{}, fmt.Errorf("%s: named_args function %s has no parameters", f.posOf(decl), name)
	}
	decls := make([]FieldDecl, len(params))
	for i, p := range params {
		decls[i] = FieldDecl{Name: p.Name, Type: p.Type}
	}
	shape, err := Canonicalize(decls)
	if err != nil {
		return NamedArgsFunc{}, fmt.Errorf("%s: named_args function %s: %v", f.posOf(decl), name, err)
	}
	return NamedArgsFunc{Decl: decl, Params: params, Shape: shape}, nil
}

func (f *File) shapeStruct(ts *ast.TypeSpec) (ShapeStruct, error) {
	name := ts.Name.Name
	st, ok := ts.Type.(*ast.StructType)
	if !ok {
		return ShapeStruct{}, fmt.Errorf("%s: shape directive on %s, which is not a struct type", f.posOf(ts), name)
	}
	if ts.TypeParams != nil {
		return ShapeStruct{}, fmt.Errorf("%s: shape struct %s has type parameters", f.posOf(ts), name)
	}
	var decls []FieldDecl
	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			return ShapeStruct{}, fmt.Errorf("%s: shape struct %s has an embedded field", f.posOf(field), name)
		}
		typ := f.typeText(field.Type)
		for _, id := range field.Names {
			decls = append(decls, FieldDecl{Name: id.Name, Type: typ})
		}
	}
	shape, err := Canonicalize(decls)
	if err != nil {
		return ShapeStruct{}, fmt.Errorf("%s: shape struct %s: %v", f.posOf(ts), name, err)
	}
	return ShapeStruct{TypeName: name, Spec: ts, Shape: shape}, nil
}
