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

package chartype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOf(t *testing.T) {
	cases := []struct {
		r    rune
		want CharType
	}{
		{'0', ARABIC},
		{'9', ARABIC},
		{'a', ENGLISH},
		{'Z', ENGLISH},
		{'中', CHINESE},
		{'国', CHINESE},
		{'ア', OtherCJK},
		{'あ', OtherCJK},
		{'한', OtherCJK},
		{'!', USELESS},
		{' ', USELESS},
		{'，', USELESS},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Of(c.r), "rune %q", c.r)
	}
}

func TestRegularize(t *testing.T) {
	assert.Equal(t, "abc", Regularize("ABC"))
	assert.Equal(t, "abc123", Regularize("ＡＢＣ１２３"))
	assert.Equal(t, "hello, world!", Regularize("Hello， World！"))
}

func TestRegularizeIdempotent(t *testing.T) {
	inputs := []string{"", "ABC中文ＡＢ123", "结婚的和尚未结婚的"}
	for _, in := range inputs {
		once := Regularize(in)
		twice := Regularize(once)
		assert.Equal(t, once, twice)
	}
}

func TestRegularizePreservesCharCount(t *testing.T) {
	in := "ＡB中ｃ3！"
	assert.Equal(t, len([]rune(in)), len([]rune(Regularize(in))))
}
