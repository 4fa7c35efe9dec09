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
	"reflect"

	"github.com/NichtsHsu/structz/stringz"
)

// A Fielder is anything with named field values: Records, and the shape
// types emitted by structz-gen.  It is the runtime counterpart of a "has
// these fields" generic bound: a function that needs only some fields
// accepts a Fielder and names them, regardless of what else the aggregate
// carries.
type Fielder interface {
	// FieldValue returns the value carried under name and whether the
	// field exists.
	FieldValue(name stringz.Name) (any, bool)
}

// FieldValue implements Fielder.  A consumed record has no field values.
func (r *Record) FieldValue(name stringz.Name) (any, bool) {
	if r == nil || r.consumed {
		return nil, false
	}
	i, ok := r.index(name)
	if !ok {
		return nil, false
	}
	return r.fields[i].Value(), true
}

// Value returns the value carried under name without a static type.
func (r *Record) Value(name stringz.Name) (any, error) {
	if r.Consumed() {
		return nil, ErrConsumed
	}
	i, ok := r.index(name)
	if !ok {
		return nil, &MissingFieldError{Name: name}
	}
	return r.fields[i].Value(), nil
}

// slot locates the stored *T for name.  Both the name and the carried value
// type must match, as in a (name, type) lookup witness.
func slot[T any](r *Record, name stringz.Name) (*T, error) {
	if r.Consumed() {
		return nil, ErrConsumed
	}
	i, ok := r.index(name)
	if !ok {
		return nil, &MissingFieldError{Name: name}
	}
	box, ok := r.fields[i].box.(*T)
	if !ok {
		return nil, &FieldTypeError{
			Name: name,
			Want: reflect.TypeOf((*T)(nil)).Elem(),
			Got:  r.fields[i].Type(),
		}
	}
	return box, nil
}

// Get returns the value of type T carried under name.
func Get[T any](r *Record, name stringz.Name) (T, error) {
	p, err := slot[T](r, name)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Mut returns a pointer to the value of type T carried under name.  Writes
// through the pointer mutate the record's field in place.
func Mut[T any](r *Record, name stringz.Name) (*T, error) {
	return slot[T](r, name)
}

// Take extracts the value carried under name and consumes the whole record:
// afterward every operation on r reports ErrConsumed.  One field cannot be
// moved out while the rest stay live; this matches the original ownership
// semantics rather than a Go limitation.
func Take[T any](r *Record, name stringz.Name) (T, error) {
	p, err := slot[T](r, name)
	if err != nil {
		var zero T
		return zero, err
	}
	r.consumed = true
	r.fields = nil
	return *p, nil
}

// GetFrom returns the value of type T carried under name by any Fielder.
func GetFrom[T any](f Fielder, name stringz.Name) (T, error) {
	var zero T
	v, ok := f.FieldValue(name)
	if !ok {
		return zero, &MissingFieldError{Name: name}
	}
	t, ok := v.(T)
	if !ok {
		return zero, &FieldTypeError{
			Name: name,
			Want: reflect.TypeOf((*T)(nil)).Elem(),
			Got:  reflect.TypeOf(v),
		}
	}
	return t, nil
}
