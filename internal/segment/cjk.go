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

package segment

import (
	"github.com/ikanalyzer/ikgo/internal/chartype"
	"github.com/ikanalyzer/ikgo/internal/dictionary"
	"github.com/ikanalyzer/ikgo/internal/lexeme"
)

const cjkSegmenterName = "CJK_SEGMENTER"

// CJKSegmenter probes the main dictionary for every prefix match
// starting at the current cursor, inserting a CNWORD lexeme for each hit
// that is a complete word (spec.md §4.2.1). It carries no state of its
// own across calls; each analysis is self-contained given the shared
// dictionary.
type CJKSegmenter struct {
	dict *dictionary.Global
}

// NewCJKSegmenter creates a CJKSegmenter backed by dict.
func NewCJKSegmenter(dict *dictionary.Global) *CJKSegmenter {
	return &CJKSegmenter{dict: dict}
}

func (s *CJKSegmenter) Name() string { return cjkSegmenterName }

func (s *CJKSegmenter) Analyze(input []rune, cursor int, curCharType chartype.CharType, out *lexeme.OrderedLinkedList) {
	if curCharType == chartype.USELESS {
		return
	}
	hits := s.dict.MatchMainDict(input, cursor, len(input)-cursor)
	for _, hit := range hits {
		if hit.IsMatch() {
			out.Insert(lexeme.New(cursor, hit.End-hit.Begin, lexeme.CNWORD))
		}
	}
}
