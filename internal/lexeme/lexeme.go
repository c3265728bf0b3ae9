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

// Package lexeme defines the candidate-token data structures shared by
// the segmenters, the arbitrator, and the driver: Lexeme, the
// insertion-ordered OrderedLinkedList, and LexemePath.
package lexeme

// Type is the semantic classification assigned to a Lexeme.
type Type int

const (
	CNWORD Type = iota
	CNCHAR
	OtherCJK
	ENGLISH
	ARABIC
	LETTER
	CNUM
	COUNT
	CQUAN
)

func (t Type) String() string {
	switch t {
	case CNWORD:
		return "CNWORD"
	case CNCHAR:
		return "CNCHAR"
	case OtherCJK:
		return "OtherCJK"
	case ENGLISH:
		return "ENGLISH"
	case ARABIC:
		return "ARABIC"
	case LETTER:
		return "LETTER"
	case CNUM:
		return "CNUM"
	case COUNT:
		return "COUNT"
	case CQUAN:
		return "CQUAN"
	default:
		return "UNKNOWN"
	}
}

// Lexeme is a candidate token: a position and length in character units,
// a semantic type, and lazily materialized text (spec.md §3).
type Lexeme struct {
	// Offset is the byte offset of the analysis window within the
	// original input. The core always analyzes a whole string at once,
	// so this is always 0; it is reserved for chunked analysis.
	Offset int
	Begin  int
	Length int
	LType  Type
	Text   string
}

// New creates a Lexeme of the given begin/length/type. Text is left
// empty until MaterializeText is called.
func New(begin, length int, t Type) Lexeme {
	return Lexeme{Begin: begin, Length: length, LType: t}
}

// End returns one past the last character covered by the lexeme.
func (l Lexeme) End() int {
	return l.Begin + l.Length
}

// MaterializeText fills in Text from the (already regularized) input.
func (l *Lexeme) MaterializeText(input []rune) {
	l.Text = string(input[l.Begin:l.End()])
}

// Less orders lexemes by begin ascending, then by length descending
// (longer covers win on ties) — spec.md §3.
func Less(a, b Lexeme) bool {
	if a.Begin != b.Begin {
		return a.Begin < b.Begin
	}
	return a.Length > b.Length
}

// Equal holds iff (begin, length) match.
func Equal(a, b Lexeme) bool {
	return a.Begin == b.Begin && a.Length == b.Length
}

// Append extends l in place to cover next, succeeding only if the two are
// contiguous (l.End() == next.Begin). On success l.Length grows to cover
// next and l.LType becomes newType.
func (l *Lexeme) Append(next Lexeme, newType Type) bool {
	if l.End() != next.Begin {
		return false
	}
	l.Length += next.Length
	l.LType = newType
	return true
}
