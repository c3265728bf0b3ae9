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

package lexeme

// Path is an ordered sequence of lexemes plus the running metrics the
// arbitrator judges candidate paths by (spec.md §3, §4.3). Lexemes added
// with AddNotCrossing do not overlap and may leave gaps; a cross-path
// built with AddCrossing holds overlapping lexemes.
type Path struct {
	set           *QuickSortSet
	pathBegin     int
	pathEnd       int
	payloadLength int
}

// NewPath creates an empty path.
func NewPath() *Path {
	return &Path{
		set:       NewQuickSortSet(),
		pathBegin: -1,
		pathEnd:   -1,
	}
}

// PathBegin returns the begin of the first lexeme, or -1 when empty.
func (p *Path) PathBegin() int { return p.pathBegin }

// PathEnd returns the end of the last lexeme, or -1 when empty.
func (p *Path) PathEnd() int { return p.pathEnd }

// PayloadLength is the sum of the path's lexeme lengths. It is at most
// PathEnd()-PathBegin() when no lexemes overlap; overlapping lexemes
// added by AddCrossing each count in full, so it can exceed that span.
func (p *Path) PayloadLength() int { return p.payloadLength }

// Size returns the number of lexemes in the path.
func (p *Path) Size() int { return p.set.Size() }

// CheckCross reports whether l overlaps the path's covered range
// [PathBegin, PathEnd).
func (p *Path) CheckCross(l Lexeme) bool {
	if p.set.Size() == 0 {
		return false
	}
	return (l.Begin >= p.pathBegin && l.Begin < p.pathEnd) ||
		(p.pathBegin >= l.Begin && p.pathBegin < l.End())
}

// AddNotCrossing appends l iff it does not overlap the path
// (l.Begin >= PathEnd). Returns whether it was added.
func (p *Path) AddNotCrossing(l Lexeme) bool {
	if p.set.Size() != 0 && l.Begin < p.pathEnd {
		return false
	}
	p.set.Add(l)
	p.payloadLength += l.Length
	if p.pathBegin == -1 || l.Begin < p.pathBegin {
		p.pathBegin = l.Begin
	}
	if l.End() > p.pathEnd {
		p.pathEnd = l.End()
	}
	return true
}

// AddCrossing appends l iff it overlaps the path (l.Begin < PathEnd),
// extending PathEnd to max(PathEnd, l.End). Returns whether it was
// added.
func (p *Path) AddCrossing(l Lexeme) bool {
	if p.set.Size() != 0 && l.Begin >= p.pathEnd {
		return false
	}
	p.set.Add(l)
	p.payloadLength += l.Length
	if p.pathBegin == -1 || l.Begin < p.pathBegin {
		p.pathBegin = l.Begin
	}
	if l.End() > p.pathEnd {
		p.pathEnd = l.End()
	}
	return true
}

// PathLength returns PathEnd-PathBegin, the span covered by the path
// (including any internal gaps).
func (p *Path) PathLength() int {
	if p.pathBegin == -1 {
		return 0
	}
	return p.pathEnd - p.pathBegin
}

// XWeight is the product of each lexeme's length.
func (p *Path) XWeight() int64 {
	w := int64(1)
	for _, l := range p.set.All() {
		w *= int64(l.Length)
	}
	return w
}

// PWeight is the sum of position*length over the path's lexemes,
// a stable tie-breaker favoring lexemes that land later.
func (p *Path) PWeight() int64 {
	var w int64
	position := 0
	for _, l := range p.set.All() {
		w += int64(position) * int64(l.Length)
		position++
	}
	return w
}

// Lexemes returns the path's lexemes in order without mutating it.
func (p *Path) Lexemes() []Lexeme {
	return p.set.All()
}

// PollFirst removes and returns the path's smallest lexeme, used by the
// driver to walk the chosen path during output reconstruction.
func (p *Path) PollFirst() (Lexeme, bool) {
	return p.set.PollFirst()
}

// Compare implements the lexicographic ordering of spec.md §4.3 step 4:
// larger payload length wins; then fewer lexemes; then larger path
// length; then later path end; then larger x-weight; then larger
// p-weight. Returns true iff p is strictly better than other.
func (p *Path) Compare(other *Path) bool {
	if p.payloadLength != other.payloadLength {
		return p.payloadLength > other.payloadLength
	}
	if p.Size() != other.Size() {
		return p.Size() < other.Size()
	}
	if p.PathLength() != other.PathLength() {
		return p.PathLength() > other.PathLength()
	}
	if p.pathEnd != other.pathEnd {
		return p.pathEnd > other.pathEnd
	}
	if xw, oxw := p.XWeight(), other.XWeight(); xw != oxw {
		return xw > oxw
	}
	return p.PWeight() > other.PWeight()
}

// Clone returns a deep copy of the path, used by the arbitrator's DFS
// enumeration to branch without mutating the parent frame.
func (p *Path) Clone() *Path {
	clone := NewPath()
	for _, l := range p.set.All() {
		clone.set.Add(l)
	}
	clone.pathBegin = p.pathBegin
	clone.pathEnd = p.pathEnd
	clone.payloadLength = p.payloadLength
	return clone
}
