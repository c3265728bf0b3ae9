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

const quantifierSegmenterName = "QUANTIFIER_SEGMENTER"

// CnQuantifierSegmenter recognizes Chinese quantifiers, single
// characters by default but also multi-character phrases when the
// loaded quantifier dictionary carries them (spec.md §4.2.2).
type CnQuantifierSegmenter struct {
	dict *dictionary.Global
}

// NewCnQuantifierSegmenter creates a CnQuantifierSegmenter backed by dict.
func NewCnQuantifierSegmenter(dict *dictionary.Global) *CnQuantifierSegmenter {
	return &CnQuantifierSegmenter{dict: dict}
}

func (s *CnQuantifierSegmenter) Name() string { return quantifierSegmenterName }

func (s *CnQuantifierSegmenter) Analyze(input []rune, cursor int, curCharType chartype.CharType, out *lexeme.OrderedLinkedList) {
	if curCharType != chartype.CHINESE {
		return
	}
	hits := s.dict.MatchQuantifierDict(input, cursor, len(input)-cursor)
	for _, hit := range hits {
		if hit.IsMatch() {
			out.Insert(lexeme.New(cursor, hit.End-hit.Begin, lexeme.COUNT))
		}
	}
}
