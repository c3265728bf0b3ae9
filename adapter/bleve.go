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

// Package adapter plugs IKSegmenter into a host search engine's analysis
// pipeline by implementing bleve's analysis.Tokenizer interface, the way
// other_examples' SafeChineseTokenizer wraps a simpler regex tokenizer
// behind the same interface. IKSegmenter itself works in character
// (rune) offsets; this adapter's only real job is converting those to
// the byte offsets bleve.analysis.Token expects.
package adapter

import (
	"github.com/blevesearch/bleve/v2/analysis"

	ik "github.com/ikanalyzer/ikgo"
	"github.com/ikanalyzer/ikgo/internal/lexeme"
)

// Tokenizer adapts an *ikgo.IKSegmenter to bleve's analysis.Tokenizer.
type Tokenizer struct {
	seg  *ik.IKSegmenter
	mode ik.Mode
}

// NewTokenizer creates a bleve-compatible tokenizer backed by seg,
// producing tokens in the given mode (ikgo.Index for recall-oriented
// indexing, ikgo.Search for query-time analysis).
func NewTokenizer(seg *ik.IKSegmenter, mode ik.Mode) *Tokenizer {
	return &Tokenizer{seg: seg, mode: mode}
}

// Tokenize implements analysis.Tokenizer. Position is 1-based per
// bleve's convention; Start/End are byte offsets into sentence.
func (t *Tokenizer) Tokenize(sentence []byte) analysis.TokenStream {
	text := string(sentence)
	lexemes := t.seg.Tokenize(text, t.mode)
	if len(lexemes) == 0 {
		return analysis.TokenStream{}
	}

	offsets := runeByteOffsets(text)
	stream := make(analysis.TokenStream, 0, len(lexemes))
	for i, lx := range lexemes {
		stream = append(stream, &analysis.Token{
			Term:     []byte(lx.Text),
			Start:    offsets[lx.Begin],
			End:      offsets[lx.End()],
			Position: i + 1,
			Type:     tokenType(lx.LType),
		})
	}
	return stream
}

// runeByteOffsets returns, for each rune index in text (0..len(runes)),
// the byte offset at which that rune begins; offsets[len(runes)] is
// len(text). IKSegmenter reports Lexeme.Begin/End in rune units, so this
// table is the bridge to bleve's byte-offset Token.Start/End.
func runeByteOffsets(text string) []int {
	offsets := make([]int, 0, len(text)+1)
	for i := range text {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(text))
	return offsets
}

func tokenType(t lexeme.Type) analysis.TokenType {
	switch t {
	case lexeme.ARABIC, lexeme.CNUM, lexeme.COUNT, lexeme.CQUAN:
		return analysis.Numeric
	case lexeme.ENGLISH, lexeme.LETTER:
		return analysis.AlphaNumeric
	default:
		return analysis.Ideographic
	}
}
