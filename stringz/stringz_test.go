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

package stringz

import (
	"testing"

	"github.com/NichtsHsu/structz/util/compare"
)

func TestEncodeRoundTrip(t *testing.T) {
	tests := []string{
		"",
		"a",
		"age",
		"name",
		"snake_case_name",
		"ünïcödé",
		"with space",
		"no matter how long it is, the name round-trips",
	}
	for _, text := range tests {
		if got := Encode(text).String(); got != text {
			t.Errorf("Encode(%q).String() == %q; expected %q", text, got, text)
		}
	}
}

func TestEncodeInjective(t *testing.T) {
	texts := []string{"", "a", "b", "ab", "ba", "abc", "age", "agee", "Age"}
	for i, a := range texts {
		for j, b := range texts {
			na, nb := Encode(a), Encode(b)
			if (na == nb) != (i == j) {
				t.Errorf("Encode(%q) == Encode(%q) is %v; expected %v", a, b, na == nb, i == j)
			}
		}
	}
}

func TestEncodeIdempotent(t *testing.T) {
	if Encode("field") != Encode("field") {
		t.Error("two Encode calls for the same text returned distinct Names")
	}
}

func TestConcat(t *testing.T) {
	tests := []struct{ a, b, expected string }{
		{"foo", "bar", "foobar"},
		{"", "bar", "bar"},
		{"foo", "", "foo"},
		{"", "", ""},
	}
	for _, test := range tests {
		got := Concat(Encode(test.a), Encode(test.b))
		if got.String() != test.expected {
			t.Errorf("Concat(%q, %q) == %q; expected %q", test.a, test.b, got, test.expected)
		}
		if got != Encode(test.expected) {
			t.Errorf("Concat(%q, %q) is not identical to Encode(%q)", test.a, test.b, test.expected)
		}
	}
}

func TestZeroName(t *testing.T) {
	var n Name
	if !n.IsZero() {
		t.Error("zero Name reports IsZero() == false")
	}
	if n.String() != "" {
		t.Errorf("zero Name recovers %q; expected empty", n.String())
	}
	if n == Encode("") {
		t.Error("zero Name compares equal to Encode(\"\")")
	}
	if Encode("").IsZero() {
		t.Error("Encode(\"\") reports IsZero() == true")
	}
}

func TestCompareNames(t *testing.T) {
	tests := []struct {
		a, b     string
		expected compare.Order
	}{
		{"age", "name", compare.LT},
		{"name", "age", compare.GT},
		{"age", "age", compare.EQ},
		{"", "a", compare.LT},
		{"Z", "a", compare.LT}, // ASCII order, not case folding
	}
	for _, test := range tests {
		if got := Compare(Encode(test.a), Encode(test.b)); got != test.expected {
			t.Errorf("Compare(%q, %q) == %v; expected %v", test.a, test.b, got, test.expected)
		}
	}
}
