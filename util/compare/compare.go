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

// Package compare implements the ordering comparisons used to canonicalize
// field sets.  An ordering is a Func; By projects an ordering through a key,
// Seq chains orderings so later ones break ties, and Sort applies one stably
// to a slice.
package compare // import "github.com/NichtsHsu/structz/util/compare"

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
)

// An Order represents an ordering relationship between values.
type Order int

// LT, EQ, and GT are the standard values for an Order.
const (
	LT Order = -1 // lhs < rhs
	EQ Order = 0  // lhs == rhs
	GT Order = 1  // lhs > rhs
)

// Reverse reverses the Order: LT -> GT, GT -> LT; EQ -> EQ.
func (o Order) Reverse() Order {
	return Order(-1 * o)
}

func (o Order) String() string {
	switch o {
	case LT:
		return "LT"
	case GT:
		return "GT"
	case EQ:
		return "EQ"
	default:
		return fmt.Sprintf("Order(%d)", o)
	}
}

// ToOrder returns LT if c < 0, EQ if c == 0, or GT if c > 0.
func ToOrder(c int) Order {
	if c < 0 {
		return LT
	} else if c > 0 {
		return GT
	}
	return EQ
}

// A Func returns the Order between two values of the same type.
type Func[T any] func(a, b T) Order

// By derives an ordering of T values from a key projection and an ordering
// of the keys.
func By[T, K any](key func(T) K, cmp Func[K]) Func[T] {
	return func(a, b T) Order { return cmp(key(a), key(b)) }
}

// Seq chains orderings over the same values: each successive ordering breaks
// the ties the previous ones left.  Seq of no orderings treats everything as
// EQ.
func Seq[T any](cmps ...Func[T]) Func[T] {
	return func(a, b T) Order {
		for _, cmp := range cmps {
			if o := cmp(a, b); o != EQ {
				return o
			}
		}
		return EQ
	}
}

// Reversed returns the reversed ordering.
func (f Func[T]) Reversed() Func[T] {
	return func(a, b T) Order { return f(a, b).Reverse() }
}

// Sort stably sorts vs by cmp.  Stability matters for canonicalization:
// ties must keep their input order so diagnostics point at the later of two
// duplicates.
func Sort[T any](vs []T, cmp Func[T]) {
	sort.SliceStable(vs, func(i, j int) bool { return cmp(vs[i], vs[j]) == LT })
}

// Strings returns LT if s < t, EQ if s == t, or GT if s > t.
func Strings(s, t string) Order { return Order(strings.Compare(s, t)) }

// Bytes returns LT if s < t, EQ if s == t, or GT if s > t.
func Bytes(s, t []byte) Order { return Order(bytes.Compare(s, t)) }

// Ints returns LT if a < b, EQ if a == b, or GT if a > b.
func Ints(a, b int) Order {
	if a < b {
		return LT
	} else if a > b {
		return GT
	}
	return EQ
}

// Bools returns LT if !a && b, EQ if a == b, or GT if a && !b.
func Bools(a, b bool) Order {
	if a == b {
		return EQ
	} else if !a {
		return LT
	}
	return GT
}
