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
	"reflect"

	"github.com/NichtsHsu/structz/stringz"
)

// Subseq narrows r to a new Record carrying only the named fields, with the
// values copied.  The requested names may come in any order; a Record is
// always a subsequence of itself.  A name r does not carry yields a
// *MissingFieldError, and requesting a name twice a *DuplicateFieldError.
func Subseq(r *Record, names ...stringz.Name) (*Record, error) {
	if r.Consumed() {
		return nil, ErrConsumed
	}
	fields := make([]Field, 0, len(names))
	for _, name := range names {
		i, ok := r.index(name)
		if !ok {
			return nil, &MissingFieldError{Name: name}
		}
		fields = append(fields, copyField(r.fields[i]))
	}
	return New(fields...)
}

// SubseqShape narrows r to the fields of the given Shape.  Both the names
// and the value types must match.
func SubseqShape(r *Record, s Shape) (*Record, error) {
	if r.Consumed() {
		return nil, ErrConsumed
	}
	want, err := s.Fields()
	if err != nil {
		return nil, err
	}
	fields := make([]Field, 0, len(want))
	for _, tf := range want {
		i, ok := r.index(tf.Name)
		if !ok {
			return nil, &MissingFieldError{Name: tf.Name}
		}
		if got := r.fields[i].Type().String(); got != tf.Type {
			return nil, fmt.Errorf("field %q carries %s, not %s", tf.Name, got, tf.Type)
		}
		fields = append(fields, copyField(r.fields[i]))
	}
	return New(fields...)
}

// Refs returns a new Record whose fields carry pointers to r's field values,
// so that mutating through a ref field mutates r in place.  The ref record
// shares no other state with r; taking one of its pointer values consumes
// only the ref record.
func Refs(r *Record) (*Record, error) {
	if r.Consumed() {
		return nil, ErrConsumed
	}
	fields := make([]Field, 0, r.Len())
	for _, f := range r.fields {
		fields = append(fields, FieldOf(f.name, f.box))
	}
	return New(fields...)
}

// copyField boxes a fresh copy of the field's value so the new record does
// not alias the old one.
func copyField(f Field) Field {
	box := reflect.New(reflect.TypeOf(f.box).Elem())
	box.Elem().Set(reflect.ValueOf(f.box).Elem())
	return Field{name: f.name, box: box.Interface()}
}
