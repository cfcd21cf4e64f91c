//
// chessgo - a chess engine core written in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package types

// Value is a search/evaluation score in engine units, scaled so that one
// pawn is PawnValue (10000) units, per spec.md §6.2.
type Value int32

// Score bounds and well-known sentinels.
const (
	// PawnValue is the scaling unit for evaluation: one pawn ~= 10000.
	PawnValue Value = 10000

	// WinScore is the absolute value assigned to "side to move is mated".
	// Actual mate scores are WinScore minus the mating ply so that
	// shorter mates sort ahead of longer ones.
	WinScore Value = 20_000_000

	// Infinite is used as the initial aspiration-window bound.
	Infinite Value = WinScore + 1

	// DrawScore is returned for draws (repetition, fifty-move,
	// insufficient material).
	DrawScore Value = 0

	// ValueNone marks "no value available", distinct from any legal score.
	ValueNone Value = Infinite + 1
)

// IsMateScore reports whether v represents a forced mate for either side,
// i.e. it is close enough to +/-WinScore that it must have come from a
// mate detection rather than a positional evaluation.
func (v Value) IsMateScore() bool {
	return v > WinScore-Value(MaxDepth) || v < -WinScore+Value(MaxDepth)
}
