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

package dictionary

// StopWords is a flat set of suppressed words, queried by (input, begin,
// length) per spec.md §4.5. Backed by a trie for consistency with the
// main dictionary and to support multi-character stop phrases cheaply,
// though membership only ever needs an exact match.
type StopWords struct {
	trie *Trie
}

// NewStopWords creates an empty stop-word set.
func NewStopWords() *StopWords {
	return &StopWords{trie: NewTrie()}
}

// Add inserts word into the stop-word set.
func (s *StopWords) Add(word []rune) {
	s.trie.AddWord(word)
}

// IsStopWord reports whether input[begin:begin+length] is a stop word.
func (s *StopWords) IsStopWord(input []rune, begin, length int) bool {
	if begin+length > len(input) {
		return false
	}
	return s.trie.MatchWord(input[begin : begin+length])
}
