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
	"github.com/ikanalyzer/ikgo/internal/lexeme"
)

const letterSegmenterName = "LETTER_SEGMENTER"

var letterConnectors = map[rune]bool{
	'#': true, '&': true, '+': true, '-': true, '.': true, '@': true, '_': true,
}

var numConnectors = map[rune]bool{
	',': true, '.': true,
}

// run tracks the (start, end) of an in-progress character run, both in
// character-index units; -1 means no run is open.
type run struct {
	start int
	end   int
}

func (r *run) open() bool { return r.start >= 0 }

func (r *run) reset() { r.start, r.end = -1, -1 }

// LetterSegmenter runs three parallel state machines — mixed,
// english-only, arabic-only — over the character stream (spec.md
// §4.2.3). Grounded directly on the original Rust
// LetterSegmenter::process_mix_letter/process_english_letter/
// process_arabic_letter: three independent fields each tracking their
// own run, advanced in the same per-call order every time Analyze is
// called.
type LetterSegmenter struct {
	mixed   run
	english run
	arabic  run
}

// NewLetterSegmenter creates a fresh LetterSegmenter with no open runs.
func NewLetterSegmenter() *LetterSegmenter {
	return &LetterSegmenter{
		mixed:   run{-1, -1},
		english: run{-1, -1},
		arabic:  run{-1, -1},
	}
}

func (s *LetterSegmenter) Name() string { return letterSegmenterName }

func (s *LetterSegmenter) Analyze(input []rune, cursor int, curCharType chartype.CharType, out *lexeme.OrderedLinkedList) {
	s.processEnglish(input, cursor, curCharType, out)
	s.processArabic(input, cursor, curCharType, out)
	s.processMixed(input, cursor, curCharType, out)
}

func (s *LetterSegmenter) processMixed(input []rune, cursor int, curCharType chartype.CharType, out *lexeme.OrderedLinkedList) {
	charCount := len(input)
	r := &s.mixed
	switch {
	case !r.open():
		if curCharType == chartype.ARABIC || curCharType == chartype.ENGLISH {
			r.start, r.end = cursor, cursor
		}
	case curCharType == chartype.ARABIC || curCharType == chartype.ENGLISH:
		r.end = cursor
	case curCharType == chartype.USELESS && letterConnectors[input[cursor]]:
		r.end = cursor
	default:
		out.Insert(lexeme.New(r.start, r.end-r.start+1, lexeme.LETTER))
		r.reset()
	}
	if r.open() && r.end == charCount-1 {
		out.Insert(lexeme.New(r.start, r.end-r.start+1, lexeme.LETTER))
		r.reset()
	}
}

func (s *LetterSegmenter) processEnglish(input []rune, cursor int, curCharType chartype.CharType, out *lexeme.OrderedLinkedList) {
	charCount := len(input)
	r := &s.english
	switch {
	case !r.open():
		if curCharType == chartype.ENGLISH {
			r.start, r.end = cursor, cursor
		}
	case curCharType == chartype.ENGLISH:
		r.end = cursor
	default:
		out.Insert(lexeme.New(r.start, r.end-r.start+1, lexeme.ENGLISH))
		r.reset()
	}
	if r.open() && r.end == charCount-1 {
		out.Insert(lexeme.New(r.start, r.end-r.start+1, lexeme.ENGLISH))
		r.reset()
	}
}

func (s *LetterSegmenter) processArabic(input []rune, cursor int, curCharType chartype.CharType, out *lexeme.OrderedLinkedList) {
	charCount := len(input)
	r := &s.arabic
	switch {
	case !r.open():
		if curCharType == chartype.ARABIC {
			r.start, r.end = cursor, cursor
		}
	case curCharType == chartype.ARABIC:
		r.end = cursor
	case curCharType == chartype.USELESS && numConnectors[input[cursor]]:
		// A separator mid-run neither extends nor breaks the run: the
		// next digit (if any) will extend end past it, but a trailing
		// separator is not considered part of the number.
	default:
		out.Insert(lexeme.New(r.start, r.end-r.start+1, lexeme.ARABIC))
		r.reset()
	}
	if r.open() && cursor == charCount-1 {
		out.Insert(lexeme.New(r.start, r.end-r.start+1, lexeme.ARABIC))
		r.reset()
	}
}
