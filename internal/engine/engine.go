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

// Package engine bundles position, move generation, search and
// transposition table behind the API a REPL or test harness drives a
// game through (spec.md §6.1). Unlike the teacher's UciHandler, which
// holds its collaborators as package-reachable fields on a singleton
// wired to stdin/stdout, Engine carries no I/O and no global state: a
// caller owns an *Engine value and can run as many independent ones as
// it likes side by side.
package engine

import (
	"fmt"
	"time"

	"github.com/chessgo/engine/internal/config"
	"github.com/chessgo/engine/internal/evaluator"
	myLogging "github.com/chessgo/engine/internal/logging"
	"github.com/chessgo/engine/internal/movegen"
	"github.com/chessgo/engine/internal/position"
	"github.com/chessgo/engine/internal/search"
	. "github.com/chessgo/engine/internal/types"

	"github.com/op/go-logging"
)

// Engine is the caller-owned aggregate spec.md §9 asks for in place of
// the teacher's package-level globals: one value per game in progress.
type Engine struct {
	log *logging.Logger

	pos    *position.Position
	gen    *movegen.Generator
	search *search.Search
}

// New wires up a fresh Engine from the global config.Settings (loaded by
// config.Setup), matching initEngine(config) from spec.md §6.1. Tables, Zobrist seeding and the
// move-pattern attack data are all populated by their packages' own
// init() functions the first time engine's imports are loaded, so
// nothing here needs to trigger that explicitly - only the per-instance
// state (history stack via Position, TT via Search) is allocated.
func New() *Engine {
	config.Setup()
	return &Engine{
		log:    myLogging.GetLog(),
		pos:    position.NewPosition(),
		gen:    movegen.New(),
		search: search.NewSearch(config.Settings.Engine.HashSizeMB),
	}
}

// NewGame resets to the standard starting position and clears state
// (TT, history, killers) that must not leak across games.
func (e *Engine) NewGame() {
	e.pos = position.NewPosition()
	e.search.NewGame()
}

// SetPosition loads a position from a FEN string, as spec.md §6.1
// allows ("any FEN-like scheme suffices").
func (e *Engine) SetPosition(fen string) error {
	p, err := position.NewPositionFen(fen)
	if err != nil {
		e.log.Errorf("engine: invalid fen %q: %v", fen, err)
		return fmt.Errorf("engine: set position: %w", err)
	}
	e.pos = p
	return nil
}

// GenLegalMoves returns every legal move from the current position.
func (e *Engine) GenLegalMoves() []Move {
	ml := e.gen.GenerateLegal(e.pos, movegen.GenAll)
	moves := make([]Move, ml.Len())
	for i := 0; i < ml.Len(); i++ {
		moves[i] = ml.At(i).WithoutValue()
	}
	return moves
}

// MakeMove plays m, assumed pseudo-legal from the current position. It
// returns false and leaves the position unchanged if m turns out to be
// illegal (own king left in check, castling through an attacked
// square); the caller must not call TakeMoveBack in that case, since
// the rollback already happened (spec.md §6.1, §8's "recoverable"
// illegal-move note).
func (e *Engine) MakeMove(m Move) bool {
	e.pos.DoMove(m)
	if !e.pos.WasLegal() {
		e.pos.UndoMove()
		return false
	}
	return true
}

// TakeMoveBack undoes the last move made with MakeMove.
func (e *Engine) TakeMoveBack() {
	e.pos.UndoMove()
}

// Think runs a search from the current position and returns the chosen
// move, per spec.md §6.1's think(maxDepth, maxTimeSeconds, showThinking,
// randomSwing, weights). weights may be nil to use the evaluator's
// default set.
func (e *Engine) Think(maxDepth int, maxTimeSeconds float64, showThinking bool, randomSwing Value, weights *evaluator.Weights) Move {
	limits := search.NewLimits(maxDepth)
	if maxTimeSeconds > 0 {
		limits.MaxTime = time.Duration(maxTimeSeconds * float64(time.Second))
	}
	limits.ShowThinking = showThinking
	limits.RandomSwing = randomSwing
	limits.Weights = weights
	return e.search.Think(e.pos, limits)
}

// Stats returns the search statistics gathered by the most recent Think
// call.
func (e *Engine) Stats() search.Statistics {
	return e.search.Stats()
}

// CurrentKey returns the Zobrist key of the current position.
func (e *Engine) CurrentKey() uint64 {
	return uint64(e.pos.ZobristKey())
}

// IsAttacked reports whether a piece of side attacks sq in the current
// position.
func (e *Engine) IsAttacked(sq Square, side Color) bool {
	return e.pos.IsAttacked(sq, side)
}

// TestRepetition reports whether the current position has now occurred
// at least reps times in the game, counting the current occurrence
// (threefold repetition uses reps == 3, per spec.md §8's repetition
// scenario).
func (e *Engine) TestRepetition(reps int) bool {
	if reps <= 1 {
		return true
	}
	return e.pos.TestRepetition(reps - 1)
}

// TestNotEnoughMaterial reports whether neither side has enough
// material left to deliver checkmate.
func (e *Engine) TestNotEnoughMaterial() bool {
	return e.pos.TestNotEnoughMaterial()
}

// InCheck reports whether the side to move is in check.
func (e *Engine) InCheck() bool {
	return e.pos.InCheck()
}

// IsDraw reports whether the current position is drawn by the fifty
// move rule, threefold repetition or insufficient material (spec.md
// §4's isDraw flag, computed on demand here rather than cached on every
// move since Engine, unlike Search, is not on a hot path).
func (e *Engine) IsDraw() bool {
	return e.pos.HalfMoveClock() >= 100 || e.TestRepetition(3) || e.pos.TestNotEnoughMaterial()
}

// IsCheckmate reports whether the side to move is in check with no
// legal reply.
func (e *Engine) IsCheckmate() bool {
	return e.pos.InCheck() && !e.gen.HasLegalMove(e.pos)
}

// IsStalemate reports whether the side to move is not in check but has
// no legal move.
func (e *Engine) IsStalemate() bool {
	return !e.pos.InCheck() && !e.gen.HasLegalMove(e.pos)
}

// Position exposes the underlying position for callers (such as a test
// harness) that need read-only access beyond this API's surface.
func (e *Engine) Position() *position.Position {
	return e.pos
}
