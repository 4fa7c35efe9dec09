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
	"testing"

	"github.com/NichtsHsu/structz/stringz"

	"github.com/google/go-cmp/cmp"
)

var (
	nameField = stringz.Encode("name")
	ageField  = stringz.Encode("age")
	tagsField = stringz.Encode("tags")
)

func person() *Record {
	return Must(
		F("name", "John Doe"),
		F("age", 26),
		F("tags", []string{"developer", "rustacean"}),
	)
}

func TestGet(t *testing.T) {
	p := person()

	age, err := Get[int](p, ageField)
	if err != nil {
		t.Fatalf("Get(age): %v", err)
	}
	if age != 26 {
		t.Errorf("Get(age) == %d; expected 26", age)
	}

	name, err := Get[string](p, nameField)
	if err != nil {
		t.Fatalf("Get(name): %v", err)
	}
	if name != "John Doe" {
		t.Errorf("Get(name) == %q; expected %q", name, "John Doe")
	}
}

func TestMut(t *testing.T) {
	p := person()

	age, err := Mut[int](p, ageField)
	if err != nil {
		t.Fatalf("Mut(age): %v", err)
	}
	*age++

	got, err := Get[int](p, ageField)
	if err != nil {
		t.Fatalf("Get(age) after Mut: %v", err)
	}
	if got != 27 {
		t.Errorf("Get(age) after increment == %d; expected 27", got)
	}
}

func TestTakeConsumes(t *testing.T) {
	p := person()

	tags, err := Take[[]string](p, tagsField)
	if err != nil {
		t.Fatalf("Take(tags): %v", err)
	}
	if diff := cmp.Diff([]string{"developer", "rustacean"}, tags); diff != "" {
		t.Errorf("Take(tags) differences: (- expected; found +)\n%s", diff)
	}

	if !p.Consumed() {
		t.Error("Record not marked consumed after Take")
	}
	if _, err := Get[string](p, nameField); !errors.Is(err, ErrConsumed) {
		t.Errorf("Get after Take returned %v; expected ErrConsumed", err)
	}
	if _, err := Mut[int](p, ageField); !errors.Is(err, ErrConsumed) {
		t.Errorf("Mut after Take returned %v; expected ErrConsumed", err)
	}
	if _, err := Take[int](p, ageField); !errors.Is(err, ErrConsumed) {
		t.Errorf("Second Take returned %v; expected ErrConsumed", err)
	}
	if _, ok := p.FieldValue(ageField); ok {
		t.Error("FieldValue after Take reported a live field")
	}
}

func TestMissingField(t *testing.T) {
	p := Must(F("x", 1), F("y", 2))

	_, err := Get[int](p, stringz.Encode("z"))
	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("Get(z) returned %v; expected *MissingFieldError", err)
	}
	if missing.Name != stringz.Encode("z") {
		t.Errorf("Missing diagnostic names %q; expected %q", missing.Name, "z")
	}
}

func TestFieldTypeMismatch(t *testing.T) {
	p := person()

	_, err := Get[string](p, ageField)
	var mismatch *FieldTypeError
	if !errors.As(err, &mismatch) {
		t.Fatalf("Get[string](age) returned %v; expected *FieldTypeError", err)
	}
	if mismatch.Want.Kind().String() != "string" || mismatch.Got.Kind().String() != "int" {
		t.Errorf("Mismatch diagnostic want %v got %v; expected string/int", mismatch.Want, mismatch.Got)
	}
}

func TestValueDynamic(t *testing.T) {
	p := person()
	v, err := p.Value(ageField)
	if err != nil {
		t.Fatalf("Value(age): %v", err)
	}
	if v != 26 {
		t.Errorf("Value(age) == %v; expected 26", v)
	}
	if _, err := p.Value(stringz.Encode("zz")); err == nil {
		t.Error("Value(zz) succeeded; expected error")
	}
}

func TestGetFromFielder(t *testing.T) {
	// A function needing only name and age accepts any Fielder carrying
	// them, whatever else it carries.
	describe := func(f Fielder) (string, error) {
		name, err := GetFrom[string](f, nameField)
		if err != nil {
			return "", err
		}
		age, err := GetFrom[int](f, ageField)
		if err != nil {
			return "", err
		}
		return name + " " + string(rune('0'+age/10)) + string(rune('0'+age%10)), nil
	}

	got, err := describe(person())
	if err != nil {
		t.Fatalf("describe(person): %v", err)
	}
	if got != "John Doe 26" {
		t.Errorf("describe(person) == %q; expected %q", got, "John Doe 26")
	}

	earth := Must(F("name", "Earth"), F("age", 45), F("galaxy", "Sol"))
	if _, err := describe(earth); err != nil {
		t.Errorf("describe(earth): %v", err)
	}

	if _, err := describe(Must(F("name", "noage"))); err == nil {
		t.Error("describe without age succeeded; expected missing-field error")
	}
}
