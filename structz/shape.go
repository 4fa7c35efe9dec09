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

package structz

import (
	"fmt"
	"strings"

	"github.com/NichtsHsu/structz/stringz"
	"github.com/NichtsHsu/structz/util/compare"

	"github.com/google/orderedcode"
	"github.com/minio/highwayhash"
)

// A TypedField is a (name, type) pair of a Shape, with the type rendered as
// Go source text.
type TypedField struct {
	Name stringz.Name
	Type string
}

// A Shape is the structural type identity of a record: an injective encoding
// of its canonical (name, type) pairs.  Two records have == Shapes exactly
// when they carry the same field names with the same value types, in any
// declaration order.  Shapes are comparable and usable as map keys.
type Shape struct {
	key string
}

// Shape returns the record's structural identity.  Value types are rendered
// with reflect's type strings.
func (r *Record) Shape() Shape {
	if r == nil {
		return Shape{}
	}
	var key []byte
	var err error
	for _, f := range r.fields {
		key, err = orderedcode.Append(key, f.name.String(), f.Type().String())
		if err != nil {
			// Only strings are appended; orderedcode cannot reject them.
			panic(fmt.Errorf("encoding shape of %v: %v", r, err))
		}
	}
	return Shape{key: string(key)}
}

// TypedFieldOrder is the canonical ordering of shape fields: by name, with
// the type text breaking ties between equally named pairs before duplicate
// rejection.
var TypedFieldOrder = compare.Seq(
	compare.By(func(f TypedField) stringz.Name { return f.Name }, stringz.Compare),
	compare.By(func(f TypedField) string { return f.Type }, compare.Strings),
)

// MakeShape canonicalizes (name, type) pairs into a Shape: the pairs are
// sorted by name and duplicate names are rejected with a
// *DuplicateFieldError.
func MakeShape(fields ...TypedField) (Shape, error) {
	fs := make([]TypedField, len(fields))
	copy(fs, fields)
	compare.Sort(fs, TypedFieldOrder)
	var key []byte
	var err error
	for i, f := range fs {
		if f.Name.IsZero() {
			return Shape{}, fmt.Errorf("field %d has no name", i)
		}
		if i > 0 && f.Name == fs[i-1].Name {
			return Shape{}, &DuplicateFieldError{Name: f.Name}
		}
		key, err = orderedcode.Append(key, f.Name.String(), f.Type)
		if err != nil {
			return Shape{}, err
		}
	}
	return Shape{key: string(key)}, nil
}

// IsZero reports whether s is the empty Shape (no fields).
func (s Shape) IsZero() bool { return s.key == "" }

// Equal reports whether s and t are the same structural type.
func (s Shape) Equal(t Shape) bool { return s == t }

// Key returns the raw injective encoding of the Shape.  Keys preserve the
// canonical field order under lexicographic byte comparison.
func (s Shape) Key() []byte { return []byte(s.key) }

// Fields decodes the Shape back into its canonical (name, type) pairs.
func (s Shape) Fields() ([]TypedField, error) {
	var fields []TypedField
	rest := s.key
	for rest != "" {
		var name, typ string
		var err error
		rest, err = orderedcode.Parse(rest, &name, &typ)
		if err != nil {
			return nil, fmt.Errorf("malformed shape key: %v", err)
		}
		fields = append(fields, TypedField{Name: stringz.Encode(name), Type: typ})
	}
	return fields, nil
}

// Names returns the Shape's field names in canonical order.
func (s Shape) Names() ([]stringz.Name, error) {
	fields, err := s.Fields()
	if err != nil {
		return nil, err
	}
	names := make([]stringz.Name, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names, nil
}

// String renders the Shape as source-like text for diagnostics, e.g.
// "{age: int, name: string}".
func (s Shape) String() string {
	fields, err := s.Fields()
	if err != nil {
		return fmt.Sprintf("{invalid shape: %v}", err)
	}
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Name, f.Type)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// hashKey seeds Hash.  Fixed so that hashes are stable across processes and
// generated code is deterministic.
var hashKey = []byte("structz.shape.identity.hash.key!")

// Hash returns a stable 64-bit digest of the Shape, used to derive
// deterministic names for generated types.
func (s Shape) Hash() uint64 {
	return highwayhash.Sum64([]byte(s.key), hashKey)
}
