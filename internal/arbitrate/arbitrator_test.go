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

package arbitrate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ikanalyzer/ikgo/internal/lexeme"
)

func TestProcessSingleLexemeRegionIsAnswer(t *testing.T) {
	origin := lexeme.NewOrderedLinkedList()
	origin.Insert(lexeme.New(0, 2, lexeme.CNWORD))
	origin.Insert(lexeme.New(2, 1, lexeme.CNCHAR))

	paths := New().Process(origin)
	assert.Len(t, paths, 2)
	assert.Equal(t, 1, paths[0].Size())
	assert.Equal(t, 1, paths[2].Size())
}

func TestJudgePrefersFewerLexemesOnEqualPayload(t *testing.T) {
	// "结婚的" (3 chars) as one word should win over "结婚"+"的"
	// (2+1=3 chars, same payload, but more lexemes) by the fewer-lexemes
	// tiebreak.
	origin := lexeme.NewOrderedLinkedList()
	origin.Insert(lexeme.New(0, 3, lexeme.CNWORD)) // "结婚的" as one word
	origin.Insert(lexeme.New(0, 2, lexeme.CNWORD)) // "结婚"
	origin.Insert(lexeme.New(2, 1, lexeme.CNCHAR)) // "的"

	paths := New().Process(origin)
	assert.Len(t, paths, 1)
	winner := paths[0]
	assert.Equal(t, 1, winner.Size())
	assert.Equal(t, 3, winner.PayloadLength())
}

func TestJudgeHeShangWeiJieHunPrefersPWeight(t *testing.T) {
	// "和尚未" (positions 3..6): "和"+"尚未" and "和尚"+"未" both cover 3
	// characters with 2 lexemes, tying on payload length, size, path
	// length, path end, and x-weight (2*1 == 1*2) — the p-weight
	// tiebreak (later, longer lexemes score higher) must pick
	// "和"+"尚未", matching spec.md §8 scenario 5's documented result
	// of NOT choosing "和尚".
	origin := lexeme.NewOrderedLinkedList()
	origin.Insert(lexeme.New(3, 1, lexeme.CNCHAR)) // "和"
	origin.Insert(lexeme.New(3, 2, lexeme.CNWORD)) // "和尚"
	origin.Insert(lexeme.New(4, 2, lexeme.CNWORD)) // "尚未"
	origin.Insert(lexeme.New(5, 1, lexeme.CNCHAR)) // "未"

	paths := New().Process(origin)
	winner := paths[3]
	assert.Equal(t, 2, winner.Size())
	lexemes := winner.Lexemes()
	assert.Equal(t, 3, lexemes[0].Begin)
	assert.Equal(t, 1, lexemes[0].Length, `expected "和" alone, not "和尚"`)
	assert.Equal(t, 4, lexemes[1].Begin)
	assert.Equal(t, 2, lexemes[1].Length, `expected "尚未"`)
}

func TestProcessEmpty(t *testing.T) {
	origin := lexeme.NewOrderedLinkedList()
	paths := New().Process(origin)
	assert.Empty(t, paths)
}
