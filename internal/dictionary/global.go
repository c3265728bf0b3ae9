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

import (
	"sync"
	"sync/atomic"
)

// Global is the process-wide dictionary state: the main trie, the
// quantifier trie, and the stop-word set, guarded by a single
// readers-writer lock (spec.md §5). Reads (the hot tokenize path) take
// the read lock; AddWord/DisableWord/merges take the write lock.
//
// Go's sync.RWMutex does not poison itself on a panicking holder the
// way Rust's std::sync::RwLock does, so "dictionary poisoning" (spec.md
// §7, §9) is modeled explicitly: if a mutation panics mid-update, the
// recover here marks the dictionary poisoned and every subsequent read
// degrades to an empty hit list instead of returning stale or
// partially-written trie state, until ReplaceMainDict installs a fresh
// main trie.
type Global struct {
	mu          sync.RWMutex
	main        *Trie
	quantifiers *QuantifierDict
	stop        *StopWords
	poisoned    atomic.Bool
}

// NewGlobal creates a Global with empty (not nil) dictionaries, so a
// tokenizer built against it still runs — degrading to single-character
// output — before any dictionary file is loaded.
func NewGlobal() *Global {
	return &Global{
		main:        NewTrie(),
		quantifiers: NewQuantifierDict(),
		stop:        NewStopWords(),
	}
}

// withReadGuard runs fn under the read lock, recovering from any panic
// (e.g. a corrupt in-progress structure surfacing an invariant
// violation) by poisoning the dictionary and returning the zero value.
func withReadGuard[T any](g *Global, fn func() T) (result T) {
	if g.poisoned.Load() {
		return result
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	defer func() {
		if r := recover(); r != nil {
			g.poisoned.Store(true)
			var zero T
			result = zero
		}
	}()
	return fn()
}

// MatchMainDict probes the main dictionary. Degrades to nil (no hits)
// if poisoned.
func (g *Global) MatchMainDict(input []rune, begin, length int) []Hit {
	return withReadGuard(g, func() []Hit {
		return g.main.MatchWithOffset(input, begin, length)
	})
}

// MatchQuantifierDict probes the quantifier dictionary.
func (g *Global) MatchQuantifierDict(input []rune, begin, length int) []Hit {
	return withReadGuard(g, func() []Hit {
		return g.quantifiers.MatchWithOffset(input, begin, length)
	})
}

// IsStopWord reports whether input[begin:begin+length] is a stop word.
// Degrades to false (don't filter) if poisoned.
func (g *Global) IsStopWord(input []rune, begin, length int) bool {
	return withReadGuard(g, func() bool {
		return g.stop.IsStopWord(input, begin, length)
	})
}

// AddWord inserts word into the main dictionary under the write lock.
func (g *Global) AddWord(word []rune) {
	g.mu.Lock()
	defer g.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			g.poisoned.Store(true)
		}
	}()
	g.main.AddWord(word)
}

// DisableWord removes word's MATCH bit from the main dictionary under
// the write lock.
func (g *Global) DisableWord(word []rune) {
	g.mu.Lock()
	defer g.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			g.poisoned.Store(true)
		}
	}()
	g.main.DisableWord(word)
}

// ReplaceMainDict atomically swaps in a freshly loaded main trie and
// clears any prior poisoning.
func (g *Global) ReplaceMainDict(trie *Trie) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.main = trie
	g.poisoned.Store(false)
}

// ReplaceQuantifierDict atomically swaps in a freshly loaded quantifier
// dictionary.
func (g *Global) ReplaceQuantifierDict(q *QuantifierDict) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.quantifiers = q
}

// MergeStopWords merges additional stop words under the write lock.
func (g *Global) MergeStopWords(sw *StopWords) {
	g.mu.Lock()
	defer g.mu.Unlock()
	var walk func(idx int32, prefix []rune)
	walk = func(idx int32, prefix []rune) {
		n := &sw.trie.nodes[idx]
		if n.state.IsMatch() {
			g.stop.Add(prefix)
		}
		for _, c := range n.small {
			walk(c.idx, append(prefix, c.ch))
		}
		for ch, child := range n.big {
			walk(child, append(prefix, ch))
		}
	}
	walk(rootIdx, nil)
}

// Poisoned reports whether the dictionary is currently degraded.
func (g *Global) Poisoned() bool {
	return g.poisoned.Load()
}

var (
	defaultOnce   sync.Once
	defaultGlobal *Global
)

// Default returns the process-wide dictionary singleton, created empty
// on first access (spec.md §5). Callers load dictionary files into it
// via ReplaceMainDict/ReplaceQuantifierDict/MergeStopWords.
func Default() *Global {
	defaultOnce.Do(func() {
		defaultGlobal = NewGlobal()
	})
	return defaultGlobal
}
