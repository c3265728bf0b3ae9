/*
 * Open Chinese Convert
 *
 * Copyright 2010-2020 Carbo Kuo <byvoid@byvoid.com>
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package lexeme

import "sort"

// OrderedLinkedList is an append-sorted collection of Lexemes: Insert
// places a new entry in (begin asc, length desc) order and silently
// drops it if an equal (begin, length) entry is already present.
// Modeled on the teacher's Lexicon (pkg/dict/lexicon.go), which keeps a
// slice that is explicitly sorted and de-duplicated, generalized here to
// stay sorted after every insertion instead of requiring an explicit
// Sort() call.
type OrderedLinkedList struct {
	entries []Lexeme
}

// NewOrderedLinkedList creates an empty list.
func NewOrderedLinkedList() *OrderedLinkedList {
	return &OrderedLinkedList{entries: make([]Lexeme, 0)}
}

// Insert places l in sorted position, dropping it if an equal
// (begin, length) lexeme already exists.
func (o *OrderedLinkedList) Insert(l Lexeme) {
	idx := sort.Search(len(o.entries), func(i int) bool {
		return !Less(o.entries[i], l)
	})
	if idx < len(o.entries) && Equal(o.entries[idx], l) {
		return
	}
	o.entries = append(o.entries, Lexeme{})
	copy(o.entries[idx+1:], o.entries[idx:])
	o.entries[idx] = l
}

// Len returns the number of lexemes in the list.
func (o *OrderedLinkedList) Len() int {
	return len(o.entries)
}

// At returns the lexeme at position i.
func (o *OrderedLinkedList) At(i int) Lexeme {
	return o.entries[i]
}

// Entries returns the backing slice, in order. Callers must not mutate
// it.
func (o *OrderedLinkedList) Entries() []Lexeme {
	return o.entries
}

// IsSorted reports whether the list is in (begin asc, length desc)
// order. Used defensively by tests; the list maintains this invariant
// by construction.
func (o *OrderedLinkedList) IsSorted() bool {
	for i := 1; i < len(o.entries); i++ {
		if Less(o.entries[i], o.entries[i-1]) {
			return false
		}
	}
	return true
}
