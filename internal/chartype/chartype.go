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

// Package chartype classifies code points and normalizes input text for
// the lexeme analyzer, following the character rules of the IK analyzer.
package chartype

// CharType is the coarse classification of a single code point.
type CharType int

const (
	// USELESS marks a code point that carries no lexical weight on its own
	// (punctuation, whitespace, symbols outside the recognized scripts).
	USELESS CharType = iota
	CHINESE
	OtherCJK
	ENGLISH
	ARABIC
)

func (t CharType) String() string {
	switch t {
	case CHINESE:
		return "CHINESE"
	case OtherCJK:
		return "OtherCJK"
	case ENGLISH:
		return "ENGLISH"
	case ARABIC:
		return "ARABIC"
	default:
		return "USELESS"
	}
}

// Of classifies a single rune per spec.md §4.1: ASCII digits are ARABIC,
// ASCII letters are ENGLISH, CJK Unified Ideographs (and the conventional
// extension/compatibility blocks) are CHINESE, Hangul/Katakana/Hiragana
// are OtherCJK, everything else is USELESS.
func Of(r rune) CharType {
	switch {
	case r >= '0' && r <= '9':
		return ARABIC
	case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		return ENGLISH
	case isChineseIdeograph(r):
		return CHINESE
	case isOtherCJK(r):
		return OtherCJK
	default:
		return USELESS
	}
}

// isChineseIdeograph covers CJK Unified Ideographs and the extension /
// compatibility blocks conventionally folded into "Chinese" by CJK
// analyzers: the main BMP block, extensions A/B-F on the SMP, and the
// compatibility ideographs block.
func isChineseIdeograph(r rune) bool {
	switch {
	case r >= 0x4E00 && r <= 0x9FFF: // CJK Unified Ideographs
		return true
	case r >= 0x3400 && r <= 0x4DBF: // Extension A
		return true
	case r >= 0xF900 && r <= 0xFAFF: // CJK Compatibility Ideographs
		return true
	case r >= 0x20000 && r <= 0x2FFFF: // Extensions B-F (SMP/SIP)
		return true
	default:
		return false
	}
}

// isOtherCJK covers Hangul syllables/jamo, Katakana, and Hiragana.
func isOtherCJK(r rune) bool {
	switch {
	case r >= 0xAC00 && r <= 0xD7A3: // Hangul Syllables
		return true
	case r >= 0x1100 && r <= 0x11FF: // Hangul Jamo
		return true
	case r >= 0x3040 && r <= 0x309F: // Hiragana
		return true
	case r >= 0x30A0 && r <= 0x30FF: // Katakana
		return true
	default:
		return false
	}
}

// Regularize folds full-width ASCII forms (U+FF01..U+FF5E) to their
// half-width equivalents and uppercases-to-lowercase ASCII letters,
// preserving the character count (spec.md §4.1). It is idempotent:
// Regularize(Regularize(x)) == Regularize(x).
func Regularize(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = regularizeRune(r)
	}
	return string(runes)
}

func regularizeRune(r rune) rune {
	switch {
	case r >= 0xFF01 && r <= 0xFF5E:
		// Full-width forms sit exactly 0xFEE0 above their half-width ASCII
		// counterpart.
		r -= 0xFEE0
	}
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	return r
}
