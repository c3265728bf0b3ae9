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

// Package arbitrate resolves the overlapping candidate lexemes produced
// by the segmenters into one non-overlapping LexemePath per ambiguous
// region (spec.md §4.3).
package arbitrate

import "github.com/ikanalyzer/ikgo/internal/lexeme"

// Arbitrator walks an ordered lexeme list, accumulates overlapping
// candidates into a transient cross-path, and judges each cross-path
// down to the single best non-overlapping LexemePath once it closes.
type Arbitrator struct{}

// New creates an Arbitrator. It carries no state between Process calls.
func New() *Arbitrator { return &Arbitrator{} }

// Process resolves origin into a map from path-begin to the winning
// LexemePath for that region (spec.md §4.3). Process always judges; the
// driver calls it only in Search mode and keeps whole cross-paths in
// Index mode.
func (a *Arbitrator) Process(origin *lexeme.OrderedLinkedList) map[int]*lexeme.Path {
	paths := make(map[int]*lexeme.Path)
	cross := lexeme.NewPath()

	entries := origin.Entries()
	for _, l := range entries {
		if cross.Size() == 0 || cross.CheckCross(l) {
			cross.AddCrossing(l)
			continue
		}
		winner := a.judge(cross)
		paths[winner.PathBegin()] = winner
		cross = lexeme.NewPath()
		cross.AddCrossing(l)
	}
	if cross.Size() > 0 {
		winner := a.judge(cross)
		paths[winner.PathBegin()] = winner
	}
	return paths
}

// judge returns the best non-overlapping selection from a cross-path.
// A single-lexeme cross-path is already the answer; a multi-lexeme
// cross-path is resolved by depth-first enumeration of non-overlapping
// combinations, picking the best by the lexicographic key of spec.md
// §4.3 step 4.
func (a *Arbitrator) judge(cross *lexeme.Path) *lexeme.Path {
	if cross.Size() <= 1 {
		return cross
	}

	candidates := cross.Lexemes()
	var best *lexeme.Path
	a.enumerate(candidates, lexeme.NewPath(), &best)
	if best == nil {
		return cross
	}
	return best
}

// enumerate performs the DFS described in spec.md §4.3 step 4 via an
// explicit recursive pick/skip branch over the smallest-begin remaining
// candidate: "take it" advances past its end and is only offered
// candidates that don't cross the growing path; "skip it" removes it
// from consideration for this branch. A terminal option is reached when
// no candidate remains (taken or skipped). The cross-path's candidate
// count is small (typically under ten) so recursion depth is bounded.
func (a *Arbitrator) enumerate(remaining []lexeme.Lexeme, partial *lexeme.Path, best **lexeme.Path) {
	if len(remaining) == 0 {
		a.considerTerminal(partial, best)
		return
	}

	next := remaining[0]
	rest := remaining[1:]

	// Skip branch: this candidate is dropped for the rest of this path.
	a.enumerate(rest, partial, best)

	// Take branch: only valid if it doesn't cross the path built so far.
	if partial.Size() == 0 || next.Begin >= partial.PathEnd() {
		taken := partial.Clone()
		taken.AddNotCrossing(next)
		a.enumerate(rest, taken, best)
	}
}

func (a *Arbitrator) considerTerminal(candidate *lexeme.Path, best **lexeme.Path) {
	if candidate.Size() == 0 {
		return
	}
	if *best == nil || candidate.Compare(*best) {
		*best = candidate
	}
}
