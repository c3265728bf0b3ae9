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

// QuickSortSet is a sorted set of Lexemes (by the same (begin asc,
// length desc) comparator as OrderedLinkedList) that additionally
// supports PollFirst, used by LexemePath to hand back its lexemes in
// order during output reconstruction. Named after the IK analyzer's own
// QuickSortSet, which a LexemePath uses as its internal storage.
type QuickSortSet struct {
	entries []Lexeme
}

// NewQuickSortSet creates an empty set.
func NewQuickSortSet() *QuickSortSet {
	return &QuickSortSet{}
}

// Add inserts l in sorted order, replacing an existing equal
// (begin, length) entry rather than duplicating it.
func (q *QuickSortSet) Add(l Lexeme) {
	idx := 0
	for idx < len(q.entries) && Less(q.entries[idx], l) {
		idx++
	}
	if idx < len(q.entries) && Equal(q.entries[idx], l) {
		q.entries[idx] = l
		return
	}
	q.entries = append(q.entries, Lexeme{})
	copy(q.entries[idx+1:], q.entries[idx:])
	q.entries[idx] = l
}

// Size returns the number of lexemes held.
func (q *QuickSortSet) Size() int {
	return len(q.entries)
}

// PeekFirst returns the smallest lexeme without removing it.
func (q *QuickSortSet) PeekFirst() (Lexeme, bool) {
	if len(q.entries) == 0 {
		return Lexeme{}, false
	}
	return q.entries[0], true
}

// PollFirst removes and returns the smallest lexeme.
func (q *QuickSortSet) PollFirst() (Lexeme, bool) {
	l, ok := q.PeekFirst()
	if !ok {
		return l, false
	}
	q.entries = q.entries[1:]
	return l, true
}

// All returns the lexemes in order without mutating the set.
func (q *QuickSortSet) All() []Lexeme {
	out := make([]Lexeme, len(q.entries))
	copy(out, q.entries)
	return out
}
