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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrDictionaryMissing is returned when a required dictionary file
// cannot be opened (spec.md §7: fatal for main.dic, warned-and-skipped
// for extension files — callers decide which).
var ErrDictionaryMissing = errors.New("dictionary: file missing or unreadable")

// ParseWordsFromReader reads one entry per line (spec.md §6): blank
// lines are skipped, surrounding whitespace is trimmed, "#"-prefixed
// lines are treated as comments. Mirrors the teacher's
// pkg/dict/lexicon.go ParseLexiconFromReader line-scanning shape,
// simplified because main/stop/quantifier dictionaries here carry no
// tab-separated value column — an entry is just a word.
func ParseWordsFromReader(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	var words []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dictionary: reading: %w", err)
	}
	return words, nil
}

// ParseWordsFromFile opens path and parses it with ParseWordsFromReader.
func ParseWordsFromFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDictionaryMissing, path, err)
	}
	defer f.Close()
	return ParseWordsFromReader(f)
}

// LoadMainDictFile loads path into a fresh main dictionary trie.
func LoadMainDictFile(path string) (*Trie, error) {
	words, err := ParseWordsFromFile(path)
	if err != nil {
		return nil, err
	}
	trie := NewTrie()
	for _, w := range words {
		trie.AddWord([]rune(w))
	}
	return trie, nil
}

// MergeExtDictFile merges an extension dictionary file's words into an
// existing trie, following spec.md §6's ext_dict_paths. A missing
// extension file is not fatal; callers are expected to log and
// continue (spec.md §7).
func MergeExtDictFile(trie *Trie, path string) error {
	words, err := ParseWordsFromFile(path)
	if err != nil {
		return err
	}
	for _, w := range words {
		trie.AddWord([]rune(w))
	}
	return nil
}

// LoadStopWordsFile loads path into a fresh stop-word set.
func LoadStopWordsFile(path string) (*StopWords, error) {
	words, err := ParseWordsFromFile(path)
	if err != nil {
		return nil, err
	}
	sw := NewStopWords()
	for _, w := range words {
		sw.Add([]rune(w))
	}
	return sw, nil
}

// MergeStopWordsFile merges additional stop words into an existing set.
func MergeStopWordsFile(sw *StopWords, path string) error {
	words, err := ParseWordsFromFile(path)
	if err != nil {
		return err
	}
	for _, w := range words {
		sw.Add([]rune(w))
	}
	return nil
}

// LoadQuantifierDictFile loads path into a fresh quantifier dictionary,
// still seeded with the built-in single-character quantifiers.
func LoadQuantifierDictFile(path string) (*QuantifierDict, error) {
	words, err := ParseWordsFromFile(path)
	if err != nil {
		return nil, err
	}
	q := NewQuantifierDict()
	for _, w := range words {
		q.Add([]rune(w))
	}
	return q, nil
}
