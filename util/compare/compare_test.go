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

package compare

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type pair struct{ fst, snd string }

var (
	byFst = By(func(p pair) string { return p.fst }, Strings)
	bySnd = By(func(p pair) string { return p.snd }, Strings)
)

func TestPrimitives(t *testing.T) {
	if found := Strings("a", "b"); found != LT {
		t.Errorf(`Strings("a", "b") == %v; expected LT`, found)
	}
	if found := Strings("b", "b"); found != EQ {
		t.Errorf(`Strings("b", "b") == %v; expected EQ`, found)
	}
	if found := Bytes([]byte("b"), []byte("a")); found != GT {
		t.Errorf(`Bytes("b", "a") == %v; expected GT`, found)
	}
	if found := Ints(1, 3); found != LT {
		t.Errorf("Ints(1, 3) == %v; expected LT", found)
	}
	if found := Ints(3, 3); found != EQ {
		t.Errorf("Ints(3, 3) == %v; expected EQ", found)
	}
	if found := Bools(false, true); found != LT {
		t.Errorf("Bools(false, true) == %v; expected LT", found)
	}
	if found := Bools(true, false); found != GT {
		t.Errorf("Bools(true, false) == %v; expected GT", found)
	}
}

func TestBy(t *testing.T) {
	tests := []struct {
		a, b     pair
		cmp      Func[pair]
		expected Order
	}{
		{pair{"abc", ""}, pair{"bcd", ""}, byFst, LT},
		{pair{"abc", ""}, pair{"", ""}, byFst, GT},
		{pair{}, pair{}, byFst, EQ},
		{pair{"x", "a"}, pair{"y", "a"}, bySnd, EQ},
	}
	for _, test := range tests {
		if found := test.cmp(test.a, test.b); found != test.expected {
			t.Errorf("cmp(%#v, %#v) == %v; expected %v", test.a, test.b, found, test.expected)
		}
	}
}

func TestSeq(t *testing.T) {
	tests := []struct {
		a, b     pair
		cmp      Func[pair]
		expected Order
	}{
		{pair{}, pair{}, Seq(byFst, bySnd), EQ},
		{pair{"abc", "x"}, pair{"bcd", "x"}, Seq(bySnd), EQ},
		{pair{"abc", "x"}, pair{"bcd", "x"}, Seq(bySnd, byFst), LT},
		{pair{"a", "b"}, pair{"b", "a"}, Seq(byFst, bySnd), LT},
		{pair{"a", "b"}, pair{"b", "a"}, Seq(bySnd, byFst), GT},
		{pair{"a", "b"}, pair{"b", "a"}, Seq[pair](), EQ},
	}
	for _, test := range tests {
		if found := test.cmp(test.a, test.b); found != test.expected {
			t.Errorf("Seq(%#v, %#v) == %v; expected %v", test.a, test.b, found, test.expected)
		}
	}
}

func TestReversed(t *testing.T) {
	cmp := Func[int](Ints).Reversed()
	if found := cmp(1, 3); found != GT {
		t.Errorf("Reversed Ints(1, 3) == %v; expected GT", found)
	}
	if found := cmp(3, 3); found != EQ {
		t.Errorf("Reversed Ints(3, 3) == %v; expected EQ", found)
	}
}

func TestSortStable(t *testing.T) {
	ps := []pair{{"b", "1"}, {"a", "2"}, {"b", "0"}, {"a", "1"}}
	Sort(ps, byFst)
	expected := []pair{{"a", "2"}, {"a", "1"}, {"b", "1"}, {"b", "0"}}
	if diff := cmp.Diff(expected, ps, cmp.AllowUnexported(pair{})); diff != "" {
		t.Errorf("Sort differences: (- expected; found +)\n%s", diff)
	}
}

func TestOrderReverse(t *testing.T) {
	tests := []struct{ in, expected Order }{{LT, GT}, {EQ, EQ}, {GT, LT}}
	for _, test := range tests {
		if found := test.in.Reverse(); found != test.expected {
			t.Errorf("%v.Reverse() == %v; expected %v", test.in, found, test.expected)
		}
	}
}

func TestToOrder(t *testing.T) {
	tests := []struct {
		c        int
		expected Order
	}{{-5, LT}, {0, EQ}, {7, GT}}
	for _, test := range tests {
		if found := ToOrder(test.c); found != test.expected {
			t.Errorf("ToOrder(%d) == %v; expected %v", test.c, found, test.expected)
		}
	}
}
