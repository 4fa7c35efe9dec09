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

package gengo

import (
	"bytes"
	"fmt"
	"go/token"
	"sort"
)

// An editBuffer accumulates positional edits against a source file and
// applies them all at once.  Edits address the original source via the
// file set, so they may be added in any order as long as they do not
// overlap.
type editBuffer struct {
	fset  *token.FileSet
	src   []byte
	edits []edit
}

type edit struct {
	start, end int // byte offsets in src; start == end inserts
	text       string
}

func newEditBuffer(fset *token.FileSet, src []byte) *editBuffer {
	return &editBuffer{fset: fset, src: src}
}

func (b *editBuffer) offsetOf(pos token.Pos) int {
	return b.fset.Position(pos).Offset
}

// replace substitutes text for the source between start and end.
func (b *editBuffer) replace(start, end token.Pos, text string) {
	b.edits = append(b.edits, edit{start: b.offsetOf(start), end: b.offsetOf(end), text: text})
}

// insert places text at pos without removing anything.
func (b *editBuffer) insert(pos token.Pos, text string) {
	off := b.offsetOf(pos)
	b.edits = append(b.edits, edit{start: off, end: off, text: text})
}

// bytes applies the edits and returns the resulting source.
func (b *editBuffer) bytes() ([]byte, error) {
	edits := make([]edit, len(b.edits))
	copy(edits, b.edits)
	sort.SliceStable(edits, func(i, j int) bool { return edits[i].start < edits[j].start })
	for i := 1; i < len(edits); i++ {
		if edits[i].start < edits[i-1].end {
			return nil, fmt.Errorf("overlapping edits at offsets %d and %d", edits[i-1].start, edits[i].start)
		}
	}
	var out bytes.Buffer
	last := 0
	for _, e := range edits {
		out.Write(b.src[last:e.start])
		out.WriteString(e.text)
		last = e.end
	}
	out.Write(b.src[last:])
	return out.Bytes(), nil
}
