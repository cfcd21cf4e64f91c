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

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/chessgo/engine/internal/types"
)

// findMove locates the legal move from->to (any promotion) so tests can
// read out moves as plain algebraic coordinates instead of hand-rolling
// Move bit patterns.
func findMove(t *testing.T, e *Engine, from, to Square) Move {
	t.Helper()
	for _, m := range e.GenLegalMoves() {
		if m.From() == from && m.To() == to {
			return m
		}
	}
	t.Fatalf("no legal move %s-%s in position %s", from.String(), to.String(), e.Position().Fen())
	return MoveNone
}

func playMove(t *testing.T, e *Engine, from, to Square) {
	t.Helper()
	m := findMove(t, e, from, to)
	require.True(t, e.MakeMove(m), "move %s-%s should have been legal", from.String(), to.String())
}

func TestFoolsMate(t *testing.T) {
	e := New()
	e.NewGame()

	playMove(t, e, SqF2, SqF3)
	playMove(t, e, SqE7, SqE5)
	playMove(t, e, SqG2, SqG4)
	playMove(t, e, SqD8, SqH4)

	assert.True(t, e.InCheck())
	assert.Empty(t, e.GenLegalMoves())
	assert.True(t, e.IsCheckmate())
}

func TestScholarsMateThreatNotYetMate(t *testing.T) {
	e := New()
	e.NewGame()

	playMove(t, e, SqE2, SqE4)
	playMove(t, e, SqE7, SqE5)
	playMove(t, e, SqD1, SqH5)
	playMove(t, e, SqB8, SqC6)
	playMove(t, e, SqF1, SqC4)
	playMove(t, e, SqG8, SqF6)
	playMove(t, e, SqH5, SqF7)

	assert.True(t, e.InCheck())
	assert.NotEmpty(t, e.GenLegalMoves())
	assert.False(t, e.IsCheckmate())
}

func TestCastlingThroughCheckRejected(t *testing.T) {
	e := New()
	// White king e1, rook h1, free to castle king-side, but a black
	// bishop on a6 attacks f1 - the square the king must pass through.
	require.NoError(t, e.SetPosition("4k3/8/b7/8/8/8/8/4K2R w K -"))

	m := NewMove(SqE1, SqG1, Castle, PtNone)
	assert.False(t, e.MakeMove(m))
	assert.Equal(t, SqE1, e.Position().KingSquare(White))
}

func TestThreefoldRepetition(t *testing.T) {
	e := New()
	e.NewGame()

	for i := 0; i < 2; i++ {
		playMove(t, e, SqG1, SqF3)
		playMove(t, e, SqG8, SqF6)
		playMove(t, e, SqF3, SqG1)
		playMove(t, e, SqF6, SqG8)
	}

	assert.True(t, e.TestRepetition(3))
	assert.True(t, e.IsDraw())
}

func TestFiftyMoveRule(t *testing.T) {
	e := New()
	// Bare kings, far apart, shuffled back and forth; no pawn move or
	// capture ever resets the clock.
	require.NoError(t, e.SetPosition("7k/8/8/8/8/8/8/K7 w - -"))

	for i := 0; i < 25; i++ {
		playMove(t, e, SqA1, SqB1)
		playMove(t, e, SqH8, SqH7)
		playMove(t, e, SqB1, SqA1)
		playMove(t, e, SqH7, SqH8)
	}
	playMove(t, e, SqA1, SqB1)
	playMove(t, e, SqH8, SqH7)

	assert.GreaterOrEqual(t, e.Position().HalfMoveClock(), 100)
	assert.True(t, e.IsDraw())
}

func TestEnPassantCapture(t *testing.T) {
	e := New()
	e.NewGame()

	playMove(t, e, SqE2, SqE4)
	playMove(t, e, SqA7, SqA6)
	playMove(t, e, SqE4, SqE5)
	playMove(t, e, SqD7, SqD5)

	m := findMove(t, e, SqE5, SqD6)
	assert.True(t, m.Is(EnPassant))
	require.True(t, e.MakeMove(m))

	_, c := e.Position().PieceAt(SqD5)
	assert.Equal(t, NoColor, c)
}

func TestTakeMoveBackRestoresPosition(t *testing.T) {
	e := New()
	e.NewGame()
	before := e.Position().Fen()

	playMove(t, e, SqE2, SqE4)
	e.TakeMoveBack()

	assert.Equal(t, before, e.Position().Fen())
}

func TestMakeMoveRejectsIllegalMoveAndLeavesPositionUnchanged(t *testing.T) {
	e := New()
	// King e1 shares rank 1 with the black rook on h1; stepping sideways
	// to d1 stays on that same attacked rank, so it must be rejected.
	require.NoError(t, e.SetPosition("4k3/8/8/8/8/8/8/4K2r w - -"))
	before := e.Position().Fen()

	m := NewMove(SqE1, SqD1, Normal, PtNone)
	assert.False(t, e.MakeMove(m))
	assert.Equal(t, before, e.Position().Fen())
}

func TestThinkReturnsLegalMove(t *testing.T) {
	e := New()
	e.NewGame()

	move := e.Think(3, 0, false, 0, nil)
	assert.NotEqual(t, MoveNone, move)
	assert.True(t, e.MakeMove(move))
}

func TestCurrentKeyMatchesPosition(t *testing.T) {
	e := New()
	e.NewGame()
	assert.Equal(t, uint64(e.Position().ZobristKey()), e.CurrentKey())
}
