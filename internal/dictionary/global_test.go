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

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlobalEmptyDegradesGracefully(t *testing.T) {
	g := NewGlobal()
	input := []rune("中国")
	assert.Empty(t, g.MatchMainDict(input, 0, len(input)))
	assert.False(t, g.IsStopWord(input, 0, 1))
}

func TestGlobalAddAndMatch(t *testing.T) {
	g := NewGlobal()
	g.AddWord([]rune("中国"))

	input := []rune("中国人")
	hits := g.MatchMainDict(input, 0, len(input))
	assert.NotEmpty(t, hits)
	assert.True(t, hits[0].IsMatch())
}

func TestGlobalConcurrentReadsAndWrites(t *testing.T) {
	g := NewGlobal()
	g.AddWord([]rune("中国"))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			input := []rune("中国人民")
			for j := 0; j < 50; j++ {
				g.MatchMainDict(input, 0, len(input))
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 20; j++ {
			g.AddWord([]rune("人民"))
		}
	}()
	wg.Wait()
	assert.False(t, g.Poisoned())
}
