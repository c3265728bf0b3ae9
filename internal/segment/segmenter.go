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

// Package segment implements the three dictionary-driven segmenters of
// spec.md §4.2: CJKSegmenter, CnQuantifierSegmenter, and LetterSegmenter.
// LetterSegmenter is stateful across calls within a single tokenize pass,
// so the driver allocates all three fresh per call (spec.md §9) and stays
// safe for concurrent use without external synchronization.
package segment

import (
	"github.com/ikanalyzer/ikgo/internal/chartype"
	"github.com/ikanalyzer/ikgo/internal/lexeme"
)

// Segmenter is called once per character position, left to right, and
// inserts any candidate lexemes it recognizes into out.
type Segmenter interface {
	Analyze(input []rune, cursor int, curCharType chartype.CharType, out *lexeme.OrderedLinkedList)
	Name() string
}
