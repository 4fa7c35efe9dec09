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
	"errors"
	"fmt"
	"reflect"

	"github.com/NichtsHsu/structz/stringz"
)

// ErrConsumed is reported by every operation on a Record after one of its
// fields has been taken.
var ErrConsumed = errors.New("record already consumed")

// A DuplicateFieldError reports that two fields of the same name were given
// to a Record or Shape constructor.
type DuplicateFieldError struct {
	Name stringz.Name
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("duplicate field %q", e.Name)
}

// A MissingFieldError reports a lookup for a name that no field of the
// Record carries.
type MissingFieldError struct {
	Name stringz.Name
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("no field %q", e.Name)
}

// A FieldTypeError reports a lookup whose name matched a field but whose
// requested value type did not match the carried value.  A lookup matches
// only when both name and type do, mirroring a (name, type) witness.
type FieldTypeError struct {
	Name stringz.Name
	Want reflect.Type
	Got  reflect.Type
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("field %q carries %v, not %v", e.Name, e.Got, e.Want)
}
