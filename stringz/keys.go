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
	"fmt"

	"github.com/google/orderedcode"
)

// AppendKey appends an order-preserving binary encoding of names to the key
// buffer.  The encoding is injective over name sequences, so two distinct
// sequences never produce the same key, and lexicographic comparison of keys
// matches lexicographic comparison of the sequences.  Zero Names are
// rejected.
//
// More detail at: https://godoc.org/github.com/google/orderedcode#Append
func AppendKey(key []byte, names ...Name) ([]byte, error) {
	items := make([]any, 0, len(names))
	for i, n := range names {
		if n.IsZero() {
			return nil, fmt.Errorf("cannot encode zero Name (position %d)", i)
		}
		items = append(items, n.String())
	}
	return orderedcode.Append(key, items...)
}

// ParseKey parses the next len(names) Names from the encoded key, returning
// the remainder of the key.
//
// More detail at: https://godoc.org/github.com/google/orderedcode#Parse
func ParseKey(key string, names ...*Name) (remaining string, err error) {
	texts := make([]string, len(names))
	items := make([]any, len(names))
	for i := range names {
		items[i] = &texts[i]
	}
	remaining, err = orderedcode.Parse(key, items...)
	if err != nil {
		return remaining, err
	}
	for i, n := range names {
		*n = Encode(texts[i])
	}
	return remaining, nil
}
