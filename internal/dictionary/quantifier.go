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

// defaultQuantifiers are the built-in single-character Chinese
// quantifiers recognized even with no quantifier.dic present. A real
// deployment is expected to extend this via config.QuantifierDictPath
// (spec.md §6, §9 open question: the full built-in list ships with the
// dictionary files, not the source).
var defaultQuantifiers = []string{
	"个", "只", "把", "条", "张", "位", "件", "本", "头", "台",
	"辆", "匹", "间", "座", "所", "处", "双", "对", "套",
	"群", "批", "片", "块", "粒", "颗", "滴", "丝", "缕", "道",
	"根", "支", "枚", "份", "副", "幅", "面", "页", "册", "卷",
	"篇", "句", "声", "场", "次", "遍", "回", "趟", "番",
	"顿", "餐", "盘", "碗", "杯", "瓶", "壶", "盒", "包", "箱",
	"万",
}

// QuantifierDict is the dictionary of Chinese measure words consulted by
// CnQuantifierSegmenter. It is trie-backed like the main dictionary so
// it can also hold multi-character quantifier phrases when the loaded
// quantifier.dic contains them (spec.md §4.2.2).
type QuantifierDict struct {
	trie *Trie
}

// NewQuantifierDict creates a QuantifierDict seeded with the built-in
// single-character quantifiers.
func NewQuantifierDict() *QuantifierDict {
	q := &QuantifierDict{trie: NewTrie()}
	for _, w := range defaultQuantifiers {
		q.trie.AddWord([]rune(w))
	}
	return q
}

// Add inserts an additional quantifier word or phrase.
func (q *QuantifierDict) Add(word []rune) {
	q.trie.AddWord(word)
}

// MatchWithOffset probes for quantifier matches starting at a character
// position, exactly like the main dictionary's trie probe.
func (q *QuantifierDict) MatchWithOffset(input []rune, begin, length int) []Hit {
	return q.trie.MatchWithOffset(input, begin, length)
}

// IsQuantifier reports whether the single character at begin is a known
// quantifier.
func (q *QuantifierDict) IsQuantifier(input []rune, begin int) bool {
	if begin >= len(input) {
		return false
	}
	return q.trie.MatchWord(input[begin : begin+1])
}
