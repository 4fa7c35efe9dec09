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

// Package structz implements anonymous structural records: fixed sets of
// named fields whose identity depends only on the (name, type) pairs they
// carry, never on declaration order.
//
// A Record is built from Fields and canonicalized on construction: fields are
// sorted lexicographically by name and duplicate names are rejected.  Two
// records built from any permutations of the same field set therefore have
// the same Shape and compare Equal when their values do.
//
// Field access is by name.  Get reads, Mut yields a pointer for in-place
// mutation, and Take extracts one value while consuming the whole record.
// The original design resolved these lookups during type checking; Go has no
// type-level strings, so here an unknown name or a mismatched value type is a
// runtime error.  The structz-gen tool recovers compile-time checking for
// declared shapes by generating ordinary Go types from them.
package structz // import "github.com/NichtsHsu/structz/structz"

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/NichtsHsu/structz/stringz"
	"github.com/NichtsHsu/structz/util/compare"
)

// A Field is a single (name, value) pair of a Record.
type Field struct {
	name stringz.Name
	box  any // pointer to the carried value, so that Mut can expose it
}

// F builds a Field carrying value under the given name text.
func F[T any](name string, value T) Field {
	v := value
	return Field{name: stringz.Encode(name), box: &v}
}

// FieldOf builds a Field from an already-encoded name and a dynamically
// typed value.  An untyped nil value is carried as a nil any.
func FieldOf(name stringz.Name, value any) Field {
	if value == nil {
		var v any
		return Field{name: name, box: &v}
	}
	box := reflect.New(reflect.TypeOf(value))
	box.Elem().Set(reflect.ValueOf(value))
	return Field{name: name, box: box.Interface()}
}

// Name returns the field's name.
func (f Field) Name() stringz.Name { return f.name }

// Value returns the carried value.
func (f Field) Value() any {
	if f.box == nil {
		return nil
	}
	return reflect.ValueOf(f.box).Elem().Interface()
}

// Type returns the type of the carried value.
func (f Field) Type() reflect.Type {
	if f.box == nil {
		return nil
	}
	return reflect.TypeOf(f.box).Elem()
}

func (f Field) String() string {
	return fmt.Sprintf("%s: %v", f.name, f.Value())
}

// A Record is an anonymous structural aggregate: an ordered, fixed set of
// uniquely named fields.  The field order is always canonical (lexicographic
// by name), established by New; it never depends on the order fields were
// written down.  The zero Record has no fields.
type Record struct {
	fields   []Field
	consumed bool
}

// fieldOrder is the canonical ordering of record fields: lexicographic by
// name text.
var fieldOrder = compare.By(func(f Field) stringz.Name { return f.name }, stringz.Compare)

// New canonicalizes fields into a Record.  The fields are stably sorted by
// name and checked for uniqueness; a duplicate name yields a
// *DuplicateFieldError naming the offending field, and a zero field name is
// likewise rejected.  This is the single place duplicate rejection happens:
// every Record in the system is canonical by construction.
func New(fields ...Field) (*Record, error) {
	fs := make([]Field, len(fields))
	copy(fs, fields)
	compare.Sort(fs, fieldOrder)
	for i, f := range fs {
		if f.name.IsZero() {
			return nil, fmt.Errorf("field %d has no name", i)
		}
		if f.box == nil {
			return nil, fmt.Errorf("field %q has no value", f.name)
		}
		if i > 0 && f.name == fs[i-1].name {
			return nil, &DuplicateFieldError{Name: f.name}
		}
	}
	return &Record{fields: fs}, nil
}

// Must is like New but panics on error.  It is intended for literals whose
// field names are fixed in source, where a duplicate is a programming error.
func Must(fields ...Field) *Record {
	r, err := New(fields...)
	if err != nil {
		panic(err)
	}
	return r
}

// Len returns the number of fields.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return len(r.fields)
}

// Consumed reports whether a field value has been taken out of the record,
// rendering it unusable.
func (r *Record) Consumed() bool { return r != nil && r.consumed }

// Names returns the field names in canonical order.
func (r *Record) Names() []stringz.Name {
	if r == nil {
		return nil
	}
	names := make([]stringz.Name, len(r.fields))
	for i, f := range r.fields {
		names[i] = f.name
	}
	return names
}

// Fields returns a copy of the field list in canonical order.
func (r *Record) Fields() []Field {
	if r == nil {
		return nil
	}
	fs := make([]Field, len(r.fields))
	copy(fs, r.fields)
	return fs
}

func (r *Record) String() string {
	if r == nil {
		return "{}"
	}
	if r.consumed {
		return "{consumed}"
	}
	parts := make([]string, len(r.fields))
	for i, f := range r.fields {
		parts[i] = f.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// index locates the field position for name.  Fields are sorted, so this is
// a binary search.
func (r *Record) index(name stringz.Name) (int, bool) {
	if r == nil {
		return 0, false
	}
	text := name.String()
	i := sort.Search(len(r.fields), func(i int) bool {
		return r.fields[i].name.String() >= text
	})
	if i < len(r.fields) && r.fields[i].name == name {
		return i, true
	}
	return i, false
}

// Equal reports whether a and b have the same Shape and deeply equal field
// values.  A consumed record is equal to nothing.
func Equal(a, b *Record) bool {
	if a == nil || b == nil {
		return a.Len() == 0 && b.Len() == 0 && !a.Consumed() && !b.Consumed()
	}
	if a.consumed || b.consumed {
		return false
	}
	if len(a.fields) != len(b.fields) {
		return false
	}
	for i, fa := range a.fields {
		fb := b.fields[i]
		if fa.name != fb.name || fa.Type() != fb.Type() {
			return false
		}
		if !reflect.DeepEqual(fa.Value(), fb.Value()) {
			return false
		}
	}
	return true
}
