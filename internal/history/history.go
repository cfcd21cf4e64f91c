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

// Package history provides the move-ordering tables search fills in as
// it works: a by-ply killer move pair and a from/to history-heuristic
// counter, both read by move generation to push moves likely to be
// good towards the front of the list before anything is searched.
package history

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/chessgo/engine/internal/types"
)

var out = message.NewPrinter(language.German)

// killersPerPly is the number of killer move slots kept for each ply.
const killersPerPly = 2

// History holds the move-ordering tables for one search.
type History struct {
	// Count[color][from][to] accumulates depth^2 whenever a quiet move
	// raises alpha.
	Count [ColorLength][SqLength][SqLength]int64

	// Killers[ply] holds up to two quiet moves that raised alpha at
	// that ply in a sibling line, tried early before other quiet moves.
	Killers [MaxDepth][killersPerPly]Move
}

// New creates an empty History.
func New() *History {
	return &History{}
}

// Clear resets both tables, e.g. at the start of a new think().
func (h *History) Clear() {
	*h = History{}
}

// AddHistory records a quiet move that raised alpha at the given depth,
// adding depth*depth to that (color, from, to) bucket.
func (h *History) AddHistory(c Color, from, to Square, depth int) {
	h.Count[c][from][to] += int64(depth) * int64(depth)
}

// HistoryValue returns the accumulated history score for a (color,
// from, to) triple, used as a move ordering tiebreaker.
func (h *History) HistoryValue(c Color, from, to Square) int64 {
	return h.Count[c][from][to]
}

// StoreKiller records a quiet move that raised alpha at ply,
// promoting it ahead of the existing killer if it is already stored in
// the second slot, or replacing the older of the two otherwise.
func (h *History) StoreKiller(ply int, move Move) {
	if ply < 0 || ply >= MaxDepth {
		return
	}
	move = move.WithoutValue()
	slots := &h.Killers[ply]
	if slots[0] == move {
		return
	}
	if slots[1] == move {
		slots[0], slots[1] = slots[1], slots[0]
		return
	}
	slots[1] = slots[0]
	slots[0] = move
}

// IsKiller reports whether move is one of the stored killers for ply.
func (h *History) IsKiller(ply int, move Move) bool {
	if ply < 0 || ply >= MaxDepth {
		return false
	}
	move = move.WithoutValue()
	slots := h.Killers[ply]
	return slots[0] == move || slots[1] == move
}

// ClearPly wipes the killer slots for one ply, used when search leaves
// that ply so stale killers from a previous iteration don't linger.
func (h *History) ClearPly(ply int) {
	if ply < 0 || ply >= MaxDepth {
		return
	}
	h.Killers[ply] = [killersPerPly]Move{MoveNone, MoveNone}
}

// String renders every non-zero history bucket and killer pair, for
// debugging only - this is large and noisy for a full board.
func (h *History) String() string {
	var b strings.Builder
	for sf := Square(0); sf < SqNone; sf++ {
		for st := Square(0); st < SqNone; st++ {
			if h.Count[White][sf][st] == 0 && h.Count[Black][sf][st] == 0 {
				continue
			}
			b.WriteString(out.Sprintf("%s%s: w=%d b=%d\n", sf, st, h.Count[White][sf][st], h.Count[Black][sf][st]))
		}
	}
	return b.String()
}
