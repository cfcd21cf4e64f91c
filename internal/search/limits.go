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

package search

import (
	"time"

	"github.com/chessgo/engine/internal/evaluator"
	. "github.com/chessgo/engine/internal/types"
)

// Limits bundles the think(maxDepth, maxTimeSeconds, showThinking,
// randomSwing, weights) parameters of spec.md §6.1 into one value a
// caller builds once per search. Unlike the teacher's UCI-oriented
// Limits (WhiteTime/BlackTime/MovesToGo/Ponder/Mate/Nodes), this core
// has no time-control or pondering driver to feed those fields - opening
// books, multithreaded search and network protocols are explicitly out
// of scope.
type Limits struct {
	// MaxDepth caps iterative deepening; 0 means "use MaxPly".
	MaxDepth int

	// MaxTime bounds the search's wall-clock budget; 0 means no time
	// limit (iterate to MaxDepth and stop).
	MaxTime time.Duration

	// ShowThinking requests a thinking line be logged after each
	// completed iteration.
	ShowThinking bool

	// RandomSwing (in Value units) is handed to applyRandomSwing, which
	// returns the best root move unchanged: no noise is added to root
	// move scores, and repeated searches of the same position choose
	// the same move whatever its value.
	RandomSwing Value

	// Weights selects the evaluator parameters this search uses. Nil
	// selects evaluator.DefaultWeights().
	Weights *evaluator.Weights
}

// NewLimits returns a depth-only search limit (no time budget).
func NewLimits(maxDepth int) *Limits {
	return &Limits{MaxDepth: maxDepth}
}
