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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrieMatchWord(t *testing.T) {
	trie := NewTrie()
	trie.AddWord([]rune("北京"))
	trie.AddWord([]rune("北京大学"))

	assert.True(t, trie.MatchWord([]rune("北京")))
	assert.True(t, trie.MatchWord([]rune("北京大学")))
	assert.False(t, trie.MatchWord([]rune("北")))
	assert.False(t, trie.MatchWord([]rune("北京大")))
}

func TestTrieMatchWithOffset(t *testing.T) {
	trie := NewTrie()
	trie.AddWord([]rune("北京"))
	trie.AddWord([]rune("北京大学"))

	input := []rune("北京大学生")
	hits := trie.MatchWithOffset(input, 0, len(input))

	var matches []int
	for _, h := range hits {
		if h.IsMatch() {
			matches = append(matches, h.End)
		}
	}
	// "北京" ends at 2, "北京大学" ends at 4; "北京大" and "北京大学生" are not words.
	assert.Equal(t, []int{2, 4}, matches)
}

func TestTrieMatchWithHitExtends(t *testing.T) {
	trie := NewTrie()
	trie.AddWord([]rune("北京大学"))

	input := []rune("北京大学")
	hits := trie.MatchWithOffset(input, 0, 1)
	assert.Len(t, hits, 1)
	assert.True(t, hits[0].IsPrefix())
	assert.False(t, hits[0].IsMatch())

	hit := hits[0]
	var ok bool
	for i := 1; i < len(input); i++ {
		hit, ok = trie.MatchWithHit(input, i, hit)
		assert.True(t, ok)
	}
	assert.True(t, hit.IsMatch())
	assert.Equal(t, 4, hit.End)
}

func TestTrieDisableWord(t *testing.T) {
	trie := NewTrie()
	trie.AddWord([]rune("中国"))
	trie.AddWord([]rune("中国人"))

	assert.True(t, trie.MatchWord([]rune("中国")))
	trie.DisableWord([]rune("中国"))
	assert.False(t, trie.MatchWord([]rune("中国")))
	// Disabling a prefix must not remove longer words through it.
	assert.True(t, trie.MatchWord([]rune("中国人")))
}

func TestTrieLargeFanoutPromotesToMap(t *testing.T) {
	trie := NewTrie()
	// Exceed smallFanoutThreshold at the root to exercise the map
	// promotion path.
	for r := rune('a'); r < 'a'+rune(smallFanoutThreshold+5); r++ {
		trie.AddWord([]rune{r})
	}
	for r := rune('a'); r < 'a'+rune(smallFanoutThreshold+5); r++ {
		assert.True(t, trie.MatchWord([]rune{r}), "char %q", r)
	}
	assert.NotNil(t, trie.nodes[rootIdx].big)
}

func TestStopWords(t *testing.T) {
	sw := NewStopWords()
	sw.Add([]rune("的"))
	sw.Add([]rune("了"))

	input := []rune("美丽的花园")
	assert.True(t, sw.IsStopWord(input, 2, 1))
	assert.False(t, sw.IsStopWord(input, 0, 1))
}

func TestQuantifierDictBuiltins(t *testing.T) {
	q := NewQuantifierDict()
	input := []rune("三个人")
	assert.True(t, q.IsQuantifier(input, 1))
	assert.False(t, q.IsQuantifier(input, 0))
}

func TestQuantifierDictPhrase(t *testing.T) {
	q := NewQuantifierDict()
	q.Add([]rune("平方公里"))

	input := []rune("平方公里的国土")
	hits := q.MatchWithOffset(input, 0, len(input))
	found := false
	for _, h := range hits {
		if h.IsMatch() && h.End == 4 {
			found = true
		}
	}
	assert.True(t, found)
}
