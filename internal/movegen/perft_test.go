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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chessgo/engine/internal/position"
)

// //////////////////////////////////////////////////////////////
// Perft reference counts from https://www.chessprogramming.org/Perft_Results
// //////////////////////////////////////////////////////////////

// TestStandardPerft cross checks move generation against the known
// per-depth node/capture/en-passant/check counts from the standard
// starting position (spec.md §8's perft property).
func TestStandardPerft(t *testing.T) {
	// depth:  nodes          captures  ep   checks
	results := [][5]uint64{
		{1, 20, 0, 0, 0},
		{2, 400, 0, 0, 0},
		{3, 8_902, 34, 0, 12},
		{4, 197_281, 1_576, 0, 469},
		{5, 4_865_609, 82_719, 258, 27_351},
	}

	pos := position.NewPosition()
	for _, r := range results {
		depth := int(r[0])
		stats := Perft(pos, depth)
		assert.Equal(t, r[1], stats.Nodes, "depth %d nodes", depth)
		assert.Equal(t, r[2], stats.Captures, "depth %d captures", depth)
		assert.Equal(t, r[3], stats.EnPassant, "depth %d en passant", depth)
		assert.Equal(t, r[4], stats.Checks, "depth %d checks", depth)
	}
}

// TestKiwipetePerft cross checks move generation against the "Kiwipete"
// position, chosen for exercising castling and promotions alongside
// ordinary captures (spec.md §8's perft property).
func TestKiwipetePerft(t *testing.T) {
	const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -"

	// depth:  nodes         captures  ep     checks     mates      castles  promotions
	results := [][8]uint64{
		{1, 48, 8, 0, 0, 0, 2, 0},
		{2, 2_039, 351, 1, 3, 0, 91, 0},
		{3, 97_862, 17_102, 45, 993, 1, 3_162, 0},
		{4, 4_085_603, 757_163, 1_929, 25_523, 43, 128_013, 15_172},
	}

	for _, r := range results {
		depth := int(r[0])
		pos, err := position.NewPositionFen(kiwipete)
		assert.NoError(t, err)
		stats := Perft(pos, depth)
		assert.Equal(t, r[1], stats.Nodes, "depth %d nodes", depth)
		assert.Equal(t, r[2], stats.Captures, "depth %d captures", depth)
		assert.Equal(t, r[3], stats.EnPassant, "depth %d en passant", depth)
		assert.Equal(t, r[4], stats.Checks, "depth %d checks", depth)
		assert.Equal(t, r[5], stats.CheckMates, "depth %d mates", depth)
		assert.Equal(t, r[6], stats.Castles, "depth %d castles", depth)
		assert.Equal(t, r[7], stats.Promotions, "depth %d promotions", depth)
	}
}

// TestPerftDivideMatchesPerftTotal cross checks that PerftDivide's
// per-root-move breakdown sums to the same total Perft reports on its
// own, the standard way of localising a move generation bug to a
// specific root move.
func TestPerftDivideMatchesPerftTotal(t *testing.T) {
	pos := position.NewPosition()
	want := Perft(pos, 3)
	got, entries := PerftDivide(pos, 3)
	assert.Equal(t, want.Nodes, got.Nodes)

	var sum uint64
	for _, e := range entries {
		sum += e.Nodes
	}
	assert.Equal(t, want.Nodes, sum)
	assert.Equal(t, 20, len(entries))
}
