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

// Package genfields parses shape declarations for the structz-gen tool and
// canonicalizes their field lists.  Declarations come from YAML manifests or
// from //structz: directives in Go source; either way the output is the same:
// field sets sorted lexicographically by name with duplicates rejected, ready
// for code emission.
package genfields // import "github.com/NichtsHsu/structz/gen/genfields"

import (
	"fmt"
	"go/token"

	"github.com/NichtsHsu/structz/stringz"
	"github.com/NichtsHsu/structz/structz"
	"github.com/NichtsHsu/structz/util/compare"

	"bitbucket.org/creachadair/stringset"
	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

// A Manifest declares a package of shapes in YAML form:
//
//	package: geometry
//	imports:
//	  - time
//	shapes:
//	  - name: Rect
//	    fields:
//	      - name: width
//	        type: int
//	      - name: height
//	        type: int
type Manifest struct {
	Package string      `json:"package"`
	Imports []string    `json:"imports,omitempty"`
	Shapes  []ShapeDecl `json:"shapes"`
}

// A ShapeDecl declares one named shape.
type ShapeDecl struct {
	Name   string      `json:"name"`
	Fields []FieldDecl `json:"fields"`
}

// A FieldDecl declares one field of a shape.  Type is Go source text.
type FieldDecl struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// A Shape is a canonicalized shape declaration.  Name may be empty for
// anonymous shapes harvested from named_args functions.
type Shape struct {
	Name   string               // declared alias name, "" if anonymous
	Fields []structz.TypedField // canonical order
	Key    structz.Shape
}

// ParseManifest unmarshals and validates a YAML shape manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.UnmarshalStrict(data, &m); err != nil {
		return nil, errors.WithMessage(err, "parsing shape manifest")
	}
	if m.Package == "" {
		return nil, fmt.Errorf("manifest is missing a package name")
	}
	if !token.IsIdentifier(m.Package) {
		return nil, fmt.Errorf("package name %q is not an identifier", m.Package)
	}
	if len(m.Shapes) == 0 {
		return nil, fmt.Errorf("manifest declares no shapes")
	}
	return &m, nil
}

// Resolve canonicalizes every declared shape.  Shape names must be unique
// identifiers; field lists are sorted by name with duplicates rejected.
func (m *Manifest) Resolve() ([]Shape, error) {
	seen := stringset.New()
	shapes := make([]Shape, 0, len(m.Shapes))
	for _, decl := range m.Shapes {
		if !token.IsIdentifier(decl.Name) {
			return nil, fmt.Errorf("shape name %q is not an identifier", decl.Name)
		}
		if !seen.Add(decl.Name) {
			return nil, fmt.Errorf("shape %q declared twice", decl.Name)
		}
		s, err := Canonicalize(decl.Fields)
		if err != nil {
			return nil, errors.WithMessagef(err, "shape %q", decl.Name)
		}
		s.Name = decl.Name
		shapes = append(shapes, s)
	}
	return shapes, nil
}

// Canonicalize validates field declarations and produces an anonymous Shape:
// fields sorted lexicographically by name, with a diagnostic naming the field
// on any exact duplicate.
func Canonicalize(fields []FieldDecl) (Shape, error) {
	if len(fields) == 0 {
		return Shape{}, fmt.Errorf("shape has no fields")
	}
	tfs := make([]structz.TypedField, 0, len(fields))
	for _, f := range fields {
		if f.Name == "_" {
			// A blank field would generate unselectable struct fields.
			return Shape{}, fmt.Errorf("field name must not be blank")
		}
		if !token.IsIdentifier(f.Name) {
			return Shape{}, fmt.Errorf("field name %q is not an identifier", f.Name)
		}
		if f.Type == "" {
			return Shape{}, fmt.Errorf("field %q has no type", f.Name)
		}
		tfs = append(tfs, structz.TypedField{Name: stringz.Encode(f.Name), Type: f.Type})
	}
	compare.Sort(tfs, structz.TypedFieldOrder)
	for i := 1; i < len(tfs); i++ {
		if tfs[i].Name == tfs[i-1].Name {
			return Shape{}, &structz.DuplicateFieldError{Name: tfs[i].Name}
		}
	}
	key, err := structz.MakeShape(tfs...)
	if err != nil {
		return Shape{}, err
	}
	return Shape{Fields: tfs, Key: key}, nil
}
