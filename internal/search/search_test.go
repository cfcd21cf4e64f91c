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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/chessgo/engine/internal/config"
	"github.com/chessgo/engine/internal/position"
	"github.com/chessgo/engine/internal/transpositiontable"
	. "github.com/chessgo/engine/internal/types"
)

func TestThinkFindsMateInOne(t *testing.T) {
	// White to move, Qe1-e8 is mate: the black king on g8 is boxed in by
	// its own pawns and nothing can block or capture on the back rank.
	p, err := position.NewPositionFen("6k1/5ppp/8/8/8/8/8/K3Q3 w - -")
	assert.NoError(t, err)

	s := NewSearch(4)
	move := s.Think(p, NewLimits(4))

	assert.Equal(t, SqE1, move.From())
	assert.Equal(t, SqE8, move.To())
	assert.True(t, s.rootValue.IsMateScore())
}

func TestThinkReturnsLegalMoveFromStartPosition(t *testing.T) {
	p := position.NewPosition()
	s := NewSearch(4)
	move := s.Think(p, NewLimits(3))

	assert.NotEqual(t, MoveNone, move)
	pCopy := *p
	pCopy.DoMove(move)
	assert.True(t, pCopy.WasLegal())
}

func TestThinkRespectsTimeLimit(t *testing.T) {
	p := position.NewPosition()
	s := NewSearch(4)
	limits := &Limits{MaxDepth: maxPly, MaxTime: 200 * time.Millisecond}

	start := time.Now()
	move := s.Think(p, limits)
	elapsed := time.Since(start)

	assert.NotEqual(t, MoveNone, move)
	assert.True(t, elapsed < 5*time.Second)
}

func TestThinkRefusesConcurrentSearch(t *testing.T) {
	s := NewSearch(4)
	assert.True(t, s.isRunning.TryAcquire(1))
	p := position.NewPosition()
	move := s.Think(p, NewLimits(2))
	assert.Equal(t, MoveNone, move)
	s.isRunning.Release(1)
}

// TestNewSearchHonoursUseTT covers config.Settings.Search.UseTT: disabled,
// NewSearch must hand back a zero-size table regardless of the requested
// size, so every Probe/Put becomes a no-op rather than actually caching.
func TestNewSearchHonoursUseTT(t *testing.T) {
	prev := config.Settings.Search.UseTT
	defer func() { config.Settings.Search.UseTT = prev }()

	config.Settings.Search.UseTT = false
	s := NewSearch(4)
	assert.EqualValues(t, 0, s.tt.Len())
	s.tt.Put(123, MoveNone, 4, Value(1), ValueNone, transpositiontable.BoundExact, 0)
	assert.EqualValues(t, 0, s.tt.Len())
}

// TestNewSearchFallsBackToConfiguredTTSize covers TTSizeMB: a caller that
// passes 0 gets config.Settings.Search.TTSizeMB instead of an empty table.
func TestNewSearchFallsBackToConfiguredTTSize(t *testing.T) {
	prevUse, prevSize := config.Settings.Search.UseTT, config.Settings.Search.TTSizeMB
	defer func() {
		config.Settings.Search.UseTT = prevUse
		config.Settings.Search.TTSizeMB = prevSize
	}()

	config.Settings.Search.UseTT = true
	config.Settings.Search.TTSizeMB = 4
	s := NewSearch(0)
	s.tt.Put(123, MoveNone, 4, Value(1), ValueNone, transpositiontable.BoundExact, 0)
	assert.EqualValues(t, 1, s.tt.Len())
}

// TestThinkIgnoresNullMoveWhenDisabled covers UseNullMove: with pruning
// switched off, Think must still return a legal move (it is a search
// tuning knob, not a correctness requirement).
func TestThinkIgnoresNullMoveWhenDisabled(t *testing.T) {
	prev := config.Settings.Search.UseNullMove
	defer func() { config.Settings.Search.UseNullMove = prev }()
	config.Settings.Search.UseNullMove = false

	p := position.NewPosition()
	s := NewSearch(4)
	move := s.Think(p, NewLimits(3))
	assert.NotEqual(t, MoveNone, move)
}

func TestIsDrawDetectsInsufficientMaterial(t *testing.T) {
	p, err := position.NewPositionFen("4k3/8/8/8/8/8/8/4K3 w - -")
	assert.NoError(t, err)
	assert.True(t, isDraw(p))
}

func TestSearchReportsCheckmateNotDrawAtFiftyMoveMark(t *testing.T) {
	// Fool's mate (1.f3 e5 2.g4 Qh4#) with the half-move clock already at
	// the fifty-move mark: isDraw(pos) is true here, but the position is
	// also checkmate, which must win out over the draw short-circuit.
	p, err := position.NewPositionFen("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 100 3")
	assert.NoError(t, err)
	assert.True(t, p.InCheck())
	assert.True(t, isDraw(p))

	s := NewSearch(4)
	s.Think(p, NewLimits(2))

	assert.True(t, s.rootValue.IsMateScore())
	assert.True(t, s.rootValue < 0)
	assert.Equal(t, MoveNone, s.rootMove)
}
