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

// Package dictionary implements the main dictionary trie and the flat
// stop-word and quantifier sets described in spec.md §4.5. Nodes live in
// an arena (a plain slice) and are referenced by index, so a Hit can
// carry a non-owning "weak" handle to the node that produced it without
// creating an owning/cyclic reference between hits and the trie
// (spec.md §9).
package dictionary

import "sort"

// NodeState is a bitset describing what a trie node represents.
type NodeState uint8

const (
	UNMATCH NodeState = 0
	MATCH   NodeState = 1 << 0
	PREFIX  NodeState = 1 << 1
)

// MatchAndPrefix is the combined state of a node that is both a
// complete word and a prefix of longer words.
const MatchAndPrefix = MATCH | PREFIX

func (s NodeState) IsMatch() bool  { return s&MATCH != 0 }
func (s NodeState) IsPrefix() bool { return s&PREFIX != 0 }

// smallFanoutThreshold is the largest child count for which a node stores
// its children in a sorted slice (binary search) instead of a map. Chinese
// tries are heavily skewed toward low fan-out at depth, so a slice scan
// beats map overhead for the common case; we promote to a map once a
// node collects enough siblings that linear/binary search stops paying
// off. Chosen empirically in line with the IK analyzer's own dict
// segment split (small array vs. TreeMap) rather than derived from a
// formal threshold.
const smallFanoutThreshold = 8

type childEntry struct {
	ch  rune
	idx int32
}

type node struct {
	state NodeState
	small []childEntry // sorted by ch while big == nil
	big   map[rune]int32
}

func (n *node) get(ch rune) (int32, bool) {
	if n.big != nil {
		idx, ok := n.big[ch]
		return idx, ok
	}
	i := sort.Search(len(n.small), func(i int) bool { return n.small[i].ch >= ch })
	if i < len(n.small) && n.small[i].ch == ch {
		return n.small[i].idx, true
	}
	return 0, false
}

func (n *node) set(ch rune, idx int32) {
	if n.big != nil {
		n.big[ch] = idx
		return
	}
	i := sort.Search(len(n.small), func(i int) bool { return n.small[i].ch >= ch })
	if i < len(n.small) && n.small[i].ch == ch {
		n.small[i].idx = idx
		return
	}
	n.small = append(n.small, childEntry{})
	copy(n.small[i+1:], n.small[i:])
	n.small[i] = childEntry{ch: ch, idx: idx}
	if len(n.small) > smallFanoutThreshold {
		n.big = make(map[rune]int32, len(n.small)*2)
		for _, c := range n.small {
			n.big[c.ch] = c.idx
		}
		n.small = nil
	}
}

// Hit is the outcome of a probe into the trie: the character range it
// covers, the accumulated node state at that point, and a non-owning
// reference (an arena index) to the node that produced it, so a later
// character can extend the match in O(1) via MatchWithHit.
type Hit struct {
	Begin   int
	End     int
	State   NodeState
	nodeRef int32
}

func (h Hit) IsMatch() bool  { return h.State.IsMatch() }
func (h Hit) IsPrefix() bool { return h.State.IsPrefix() }

// Trie is a character trie of CJK words, supporting prefix and
// full-match probes at an offset (spec.md §4.5).
type Trie struct {
	nodes []node
}

// NewTrie creates an empty trie with just a root node.
func NewTrie() *Trie {
	return &Trie{nodes: []node{{}}}
}

const rootIdx = int32(0)

// AddWord inserts word into the trie, marking its final node MATCH
// (preserving PREFIX if the node already had children).
func (t *Trie) AddWord(word []rune) {
	if len(word) == 0 {
		return
	}
	cur := rootIdx
	for _, ch := range word {
		idx, ok := t.nodes[cur].get(ch)
		if !ok {
			t.nodes = append(t.nodes, node{})
			idx = int32(len(t.nodes) - 1)
			t.nodes[cur].set(ch, idx)
			t.nodes[cur].state |= PREFIX
		}
		cur = idx
	}
	t.nodes[cur].state |= MATCH
}

// DisableWord removes the MATCH bit from word's final node if present,
// leaving any longer words that pass through it intact.
func (t *Trie) DisableWord(word []rune) {
	cur := rootIdx
	for _, ch := range word {
		idx, ok := t.nodes[cur].get(ch)
		if !ok {
			return
		}
		cur = idx
	}
	t.nodes[cur].state &^= MATCH
}

// MatchWord performs a full-word match starting at index 0, reporting
// whether word as a whole is MATCH.
func (t *Trie) MatchWord(word []rune) bool {
	cur := rootIdx
	for _, ch := range word {
		idx, ok := t.nodes[cur].get(ch)
		if !ok {
			return false
		}
		cur = idx
	}
	return t.nodes[cur].state.IsMatch()
}

// MatchWithOffset probes input starting at character position begin,
// consuming at most length characters, and returns one Hit per
// character step for which the trie descent is still alive (state !=
// UNMATCH). Descent stops at the first character with no matching
// child. Each Hit records (begin, end=begin+consumed, state) and a
// handle to the node reached, per spec.md §4.5.
func (t *Trie) MatchWithOffset(input []rune, begin, length int) []Hit {
	limit := length
	if begin+limit > len(input) {
		limit = len(input) - begin
	}
	if limit <= 0 {
		return nil
	}
	var hits []Hit
	cur := rootIdx
	for i := 0; i < limit; i++ {
		idx, ok := t.nodes[cur].get(input[begin+i])
		if !ok {
			break
		}
		state := t.nodes[idx].state
		hits = append(hits, Hit{Begin: begin, End: begin + i + 1, State: state, nodeRef: idx})
		cur = idx
		if !state.IsPrefix() {
			break
		}
	}
	return hits
}

// MatchWithHit extends prior by the single character at cursor, using
// prior's node handle to avoid re-descending from the root. Returns the
// extended hit and whether the trie still has a live node for it.
func (t *Trie) MatchWithHit(input []rune, cursor int, prior Hit) (Hit, bool) {
	if cursor >= len(input) {
		return Hit{}, false
	}
	idx, ok := t.nodes[prior.nodeRef].get(input[cursor])
	if !ok {
		return Hit{}, false
	}
	state := t.nodes[idx].state
	return Hit{Begin: prior.Begin, End: cursor + 1, State: state, nodeRef: idx}, true
}
