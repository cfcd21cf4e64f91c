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

package movegen

import (
	"github.com/chessgo/engine/internal/position"
	. "github.com/chessgo/engine/internal/types"
)

// PerftStats accumulates the node and event counts a perft run produces,
// used to cross check move generation against known reference values
// (spec.md §8's testable perft property; not named by spec.md itself but
// implied by original_source/'s dedicated test program, see DESIGN.md).
type PerftStats struct {
	Nodes      uint64
	Captures   uint64
	EnPassant  uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
	CheckMates uint64
}

// Perft counts the leaf nodes reachable from pos at the given depth,
// without a per-root-move breakdown. depth <= 0 counts pos itself as one
// node.
//
// One Generator is allocated per ply of recursion (generators[depth]):
// GeneratePseudoLegal clears and refills its owner's buffer in place and
// returns a pointer to it, so a recursive call sharing the same Generator
// as its caller would overwrite the very move list the caller is still
// iterating. The teacher's perft.go avoids this with an identical
// per-depth mgList; this mirrors that.
func Perft(pos *position.Position, depth int) PerftStats {
	var stats PerftStats
	if depth <= 0 {
		stats.Nodes = 1
		return stats
	}
	generators := newGeneratorsForDepth(depth)
	perft(generators, pos, depth, &stats)
	return stats
}

// DivideEntry is one root move's subtree node count, as reported by
// PerftDivide.
type DivideEntry struct {
	Move  Move
	Nodes uint64
}

// PerftDivide runs perft to depth and additionally reports, for each
// legal root move, how many leaf nodes its subtree contributes - the
// standard way to localise a move generation bug to a specific move.
func PerftDivide(pos *position.Position, depth int) (PerftStats, []DivideEntry) {
	var stats PerftStats
	if depth <= 0 {
		stats.Nodes = 1
		return stats, nil
	}
	generators := newGeneratorsForDepth(depth)
	root := generators[depth]
	moves := root.GeneratePseudoLegal(pos, GenAll)
	rootMoves := moves.Clone()
	var entries []DivideEntry
	for i := 0; i < rootMoves.Len(); i++ {
		m := rootMoves.At(i)
		pos.DoMove(m)
		if !pos.WasLegal() {
			pos.UndoMove()
			continue
		}
		var sub PerftStats
		if depth > 1 {
			perft(generators, pos, depth-1, &sub)
		} else {
			sub.Nodes = 1
		}
		pos.UndoMove()
		stats.Nodes += sub.Nodes
		entries = append(entries, DivideEntry{Move: m, Nodes: sub.Nodes})
	}
	return stats, entries
}

func newGeneratorsForDepth(depth int) []*Generator {
	generators := make([]*Generator, depth+1)
	for i := range generators {
		generators[i] = New()
	}
	return generators
}

func perft(generators []*Generator, pos *position.Position, depth int, stats *PerftStats) {
	moves := generators[depth].GeneratePseudoLegal(pos, GenAll).Clone()
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		capturing := m.Is(Capture)
		if pt, _ := pos.PieceAt(m.To()); pt != PtNone {
			capturing = true
		}

		pos.DoMove(m)
		if !pos.WasLegal() {
			pos.UndoMove()
			continue
		}

		if depth > 1 {
			perft(generators, pos, depth-1, stats)
		} else {
			stats.Nodes++
			if capturing {
				stats.Captures++
			}
			if m.Is(EnPassant) {
				stats.EnPassant++
			}
			if m.Is(Castle) {
				stats.Castles++
			}
			if m.Is(Promotion) {
				stats.Promotions++
			}
			if pos.InCheck() {
				stats.Checks++
				if !generators[0].HasLegalMove(pos) {
					stats.CheckMates++
				}
			}
		}
		pos.UndoMove()
	}
}
