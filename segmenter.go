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

// Package ikgo is the top-level lexeme analyzer: it orchestrates the
// dictionary-driven segmenters, the ambiguity arbitrator, and output
// reconstruction described in spec.md, exposing a single Tokenize entry
// point per mode (spec.md §4.4, §6). Modeled on the teacher's
// opencc.Converter, which drives its own three-step pipeline
// (Segment -> Convert -> Concatenate) from a single Convert method.
package ikgo

import (
	"github.com/ikanalyzer/ikgo/internal/arbitrate"
	"github.com/ikanalyzer/ikgo/internal/chartype"
	"github.com/ikanalyzer/ikgo/internal/dictionary"
	"github.com/ikanalyzer/ikgo/internal/lexeme"
	"github.com/ikanalyzer/ikgo/internal/segment"
)

// Mode selects the output shape of Tokenize.
type Mode int

const (
	// Index emits all plausible overlapping tokens, for recall.
	Index Mode = iota
	// Search emits a single best segmentation plus compound fusion of
	// adjacent numeric/quantifier pairs.
	Search
)

// IKSegmenter is the analyzer driver. It holds no mutable per-call
// state — only a reference to the (RW-locked) dictionary set — so a
// single *IKSegmenter is safe to call Tokenize on concurrently from
// multiple goroutines (spec.md §5, §9; original_source/core/
// ik_segmenter.rs marks the Rust type Send+Sync on the same basis).
type IKSegmenter struct {
	dict       *dictionary.Global
	arbitrator *arbitrate.Arbitrator
}

// New creates an IKSegmenter backed by the process-wide dictionary
// singleton.
func New() *IKSegmenter {
	return NewWithDictionary(dictionary.Default())
}

// NewWithDictionary creates an IKSegmenter backed by an explicit
// dictionary set, useful for tests and for hosting multiple
// independently configured analyzers in one process.
func NewWithDictionary(dict *dictionary.Global) *IKSegmenter {
	return &IKSegmenter{dict: dict, arbitrator: arbitrate.New()}
}

// Dictionary returns the dictionary set backing this analyzer.
func (ik *IKSegmenter) Dictionary() *dictionary.Global {
	return ik.dict
}

// Tokenize segments text into lexemes (spec.md §4.4). It never fails on
// well-formed input, including the empty string, which returns an empty
// slice.
func (ik *IKSegmenter) Tokenize(text string, mode Mode) []lexeme.Lexeme {
	input := []rune(chartype.Regularize(text))
	if len(input) == 0 {
		return nil
	}

	origin := ik.segment(input)
	var pathMap map[int]*lexeme.Path
	if mode == Search {
		pathMap = ik.arbitrator.Process(origin)
	} else {
		// Index mode keeps every candidate of each overlapping region
		// instead of judging it down to one path.
		pathMap = make(map[int]*lexeme.Path)
		var cross *lexeme.Path
		for _, l := range origin.Entries() {
			if cross == nil || !cross.CheckCross(l) {
				cross = lexeme.NewPath()
				pathMap[l.Begin] = cross
			}
			cross.AddCrossing(l)
		}
	}
	pending := ik.outputToResult(pathMap, input)

	results := make([]lexeme.Lexeme, 0, len(pending))
	for len(pending) > 0 {
		current := pending[0]
		pending = pending[1:]

		if mode == Search {
			pending = ik.compound(pending, &current)
		}

		if ik.dict.IsStopWord(input, current.Begin, current.Length) {
			continue
		}
		current.MaterializeText(input)
		results = append(results, current)
	}
	return results
}

// segment runs the three segmenters across input in left-to-right
// order, one fresh instance per call (spec.md §4.4 step 2-3).
func (ik *IKSegmenter) segment(input []rune) *lexeme.OrderedLinkedList {
	origin := lexeme.NewOrderedLinkedList()
	segmenters := []segment.Segmenter{
		segment.NewLetterSegmenter(),
		segment.NewCnQuantifierSegmenter(ik.dict),
		segment.NewCJKSegmenter(ik.dict),
	}
	for cursor, ch := range input {
		curType := chartype.Of(ch)
		for _, s := range segmenters {
			s.Analyze(input, cursor, curType, origin)
		}
	}
	return origin
}

// outputToResult walks the input left to right, polling lexemes from
// the winning path at each position and filling any gap (including
// positions with no winning path at all) with single-character lexemes,
// per spec.md §4.4.
func (ik *IKSegmenter) outputToResult(pathMap map[int]*lexeme.Path, input []rune) []lexeme.Lexeme {
	var results []lexeme.Lexeme
	charCount := len(input)
	index := 0
	for index < charCount {
		curType := chartype.Of(input[index])
		if curType == chartype.USELESS {
			index++
			continue
		}

		path, ok := pathMap[index]
		if !ok {
			results = appendSingleCharLexeme(results, curType, index)
			index++
			continue
		}

		cur, ok := path.PollFirst()
		for ok {
			results = append(results, cur)
			index = cur.End()

			next, hasNext := path.PollFirst()
			if hasNext {
				for index < next.Begin {
					results = appendSingleCharLexeme(results, chartype.Of(input[index]), index)
					index++
				}
			}
			cur, ok = next, hasNext
		}
	}
	return results
}

func appendSingleCharLexeme(results []lexeme.Lexeme, curType chartype.CharType, index int) []lexeme.Lexeme {
	switch curType {
	case chartype.CHINESE:
		return append(results, lexeme.New(index, 1, lexeme.CNCHAR))
	case chartype.OtherCJK:
		return append(results, lexeme.New(index, 1, lexeme.OtherCJK))
	default:
		return results
	}
}

// compound fuses an ARABIC lexeme with a following CNUM or COUNT
// lexeme, and (if it becomes CNUM) with a further COUNT, per spec.md
// §4.4. It runs only in Search mode and consumes at most two leading
// items of pending.
func (ik *IKSegmenter) compound(pending []lexeme.Lexeme, current *lexeme.Lexeme) []lexeme.Lexeme {
	if len(pending) == 0 {
		return pending
	}

	if current.LType == lexeme.ARABIC {
		next := pending[0]
		switch next.LType {
		case lexeme.CNUM:
			if current.Append(next, lexeme.CNUM) {
				pending = pending[1:]
			}
		case lexeme.COUNT:
			if current.Append(next, lexeme.CQUAN) {
				pending = pending[1:]
			}
		}
	}

	if current.LType == lexeme.CNUM && len(pending) > 0 {
		next := pending[0]
		if next.LType == lexeme.COUNT {
			if current.Append(next, lexeme.CQUAN) {
				pending = pending[1:]
			}
		}
	}

	return pending
}
