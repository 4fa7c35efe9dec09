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

// Package stringz turns field-name text into interned Name values whose
// equality mirrors text equality.
//
// Name is the runtime stand-in for a type-level encoded string: Go has no
// type-level strings, so instead of a distinct zero-size type per distinct
// text, Encode hands out one canonical symbol per distinct text.  Two Names
// compare equal with == exactly when their original texts are equal, and the
// comparison is a single pointer compare regardless of text length.  This is
// a deliberate capability downgrade from a compile-time encoding: lookups
// against an unknown name surface as runtime errors rather than type errors.
package stringz // import "github.com/NichtsHsu/structz/stringz"

import (
	"sync"

	"github.com/NichtsHsu/structz/util/compare"
)

// A Name is an interned field name.  The zero Name is invalid and names no
// field; all valid Names come from Encode or Concat.  Names are comparable
// with == and safe for concurrent use.
type Name struct {
	sym *symbol
}

type symbol struct {
	text string
}

var (
	mu    sync.Mutex
	table = make(map[string]*symbol)
)

// Encode interns text and returns its Name.  Encode is injective: for any
// texts a and b, Encode(a) == Encode(b) exactly when a == b.
func Encode(text string) Name {
	mu.Lock()
	defer mu.Unlock()
	if s, ok := table[text]; ok {
		return Name{s}
	}
	s := &symbol{text: text}
	table[text] = s
	return Name{s}
}

// Concat returns the Name for the concatenation of a's and b's texts.
func Concat(a, b Name) Name { return Encode(a.String() + b.String()) }

// String recovers the original text of the Name.  The zero Name recovers the
// empty string, as does Encode("").
func (n Name) String() string {
	if n.sym == nil {
		return ""
	}
	return n.sym.text
}

// IsZero reports whether n is the invalid zero Name.
func (n Name) IsZero() bool { return n.sym == nil }

// Len returns the length of the Name's text in bytes.
func (n Name) Len() int {
	if n.sym == nil {
		return 0
	}
	return len(n.sym.text)
}

// Compare returns the lexicographic Order of a and b by their original texts.
// This is the ordering used to canonicalize field sets.
func Compare(a, b Name) compare.Order {
	return compare.Strings(a.String(), b.String())
}
