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

func TestShapeString(t *testing.T) {
	r := Must(F("name", "x"), F("age", 1))
	if got, expected := r.Shape().String(), "{age: int, name: string}"; got != expected {
		t.Errorf("Shape().String() == %q; expected %q", got, expected)
	}
}

func TestShapeFieldsRoundTrip(t *testing.T) {
	r := Must(F("b", []byte(nil)), F("a", "x"), F("c", 3.5))
	fields, err := r.Shape().Fields()
	if err != nil {
		t.Fatalf("Fields: %v", err)
	}
	var got [][2]string
	for _, f := range fields {
		got = append(got, [2]string{f.Name.String(), f.Type})
	}
	expected := [][2]string{{"a", "string"}, {"b", "[]uint8"}, {"c", "float64"}}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("Decoded shape differences: (- expected; found +)\n%s", diff)
	}
}

func TestMakeShapeMatchesRecordShape(t *testing.T) {
	r := Must(F("name", "x"), F("age", 1))
	s, err := MakeShape(
		TypedField{Name: stringz.Encode("age"), Type: "int"},
		TypedField{Name: stringz.Encode("name"), Type: "string"},
	)
	if err != nil {
		t.Fatalf("MakeShape: %v", err)
	}
	if !s.Equal(r.Shape()) {
		t.Errorf("MakeShape == %v; expected %v", s, r.Shape())
	}
}

func TestMakeShapePermutationIndependent(t *testing.T) {
	a, err := MakeShape(
		TypedField{Name: stringz.Encode("width"), Type: "int"},
		TypedField{Name: stringz.Encode("height"), Type: "int"},
	)
	if err != nil {
		t.Fatal(err)
	}
	b, err := MakeShape(
		TypedField{Name: stringz.Encode("height"), Type: "int"},
		TypedField{Name: stringz.Encode("width"), Type: "int"},
	)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("Permuted MakeShape yields %v and %v; expected identical", a, b)
	}
	if a.Hash() != b.Hash() {
		t.Error("Permuted shapes hash differently")
	}
}

func TestMakeShapeDuplicate(t *testing.T) {
	_, err := MakeShape(
		TypedField{Name: stringz.Encode("x"), Type: "int"},
		TypedField{Name: stringz.Encode("x"), Type: "string"},
	)
	var dup *DuplicateFieldError
	if !errors.As(err, &dup) {
		t.Fatalf("MakeShape with duplicate returned %v; expected *DuplicateFieldError", err)
	}
}

func TestShapeHashStable(t *testing.T) {
	s := Must(F("age", 1), F("name", "x")).Shape()
	// Generated type names depend on this value staying fixed.
	if h := s.Hash(); h != s.Hash() {
		t.Errorf("Hash not stable: %d then %d", h, s.Hash())
	}
	other := Must(F("age", 1), F("nams", "x")).Shape()
	if s.Hash() == other.Hash() {
		t.Error("Distinct shapes share a hash")
	}
}

func TestShapeAsMapKey(t *testing.T) {
	m := map[Shape]int{}
	m[Must(F("a", 1)).Shape()]++
	m[Must(F("a", 2)).Shape()]++
	m[Must(F("b", 1)).Shape()]++
	if len(m) != 2 {
		t.Errorf("Map has %d shapes; expected 2", len(m))
	}
}
