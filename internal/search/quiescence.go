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
	"github.com/chessgo/engine/internal/config"
	"github.com/chessgo/engine/internal/evaluator"
	"github.com/chessgo/engine/internal/movegen"
	"github.com/chessgo/engine/internal/position"
	"github.com/chessgo/engine/internal/transpositiontable"
	. "github.com/chessgo/engine/internal/types"
)

// standPatWindow is the margin (spec.md §4.8 calls it "one pawn") used
// to decide whether the cheap material-only estimate already settles
// the node without needing the full positional evaluator.
const standPatWindow = PawnValue

// quiescence implements spec.md §4.8: a recursive negamax restricted to
// captures, promotions and (when in check) every legal reply, used to
// settle a leaf position before trusting its static evaluation.
func (s *Search) quiescence(pos *position.Position, ply int, alpha, beta Value) Value {
	if s.outOfTime() {
		return 0
	}
	if ply > 0 {
		s.minEval[ply], s.maxEval[ply] = s.minEval[ply-1], s.maxEval[ply-1]
	}
	inCheck := pos.InCheck()

	// As in search, a position that is in check must never be reported
	// as a draw before confirming it is not actually checkmate; outside
	// check the two outcomes share the same value, so the early return
	// is safe there (spec.md's draw-flag invariant).
	if !inCheck && isDraw(pos) {
		return DrawScore
	}

	key := pos.ZobristKey()
	origAlpha := alpha
	ttMove := MoveNone
	if config.Settings.Search.UseQSTT {
		if entry, ok := s.tt.Probe(key, ply); ok {
			s.stats.TTHits++
			ttMove = entry.Move
			switch {
			case entry.Bound == transpositiontable.BoundExact:
				s.stats.TTCuts++
				return entry.Value
			case entry.Bound == transpositiontable.BoundUpper && entry.Value < beta:
				beta = entry.Value
			case entry.Bound == transpositiontable.BoundLower && entry.Value > alpha:
				alpha = entry.Value
			}
			if alpha >= beta {
				s.stats.TTCuts++
				return entry.Value
			}
		} else {
			s.stats.TTMisses++
		}
	}

	us := pos.NextPlayer()
	them := us.Other()
	materialOnly := pos.Material(us) - pos.Material(them)

	var standPat Value
	if materialOnly < alpha-standPatWindow || materialOnly > beta+standPatWindow {
		standPat = materialOnly
	} else {
		standPat = evaluator.Evaluate(pos, s.weights)
	}
	if ply == 0 || standPat < s.minEval[ply] {
		s.minEval[ply] = standPat
	}
	if ply == 0 || standPat > s.maxEval[ply] {
		s.maxEval[ply] = standPat
	}

	best := standPat
	bestMove := MoveNone
	if !inCheck && config.Settings.Search.UseQSStandpat {
		if standPat >= beta {
			if config.Settings.Search.UseQSTT {
				s.tt.Put(key, ttMove, 0, standPat, standPat, transpositiontable.BoundLower, ply)
			}
			return standPat
		}
		if standPat > alpha {
			alpha = standPat
		}
	}

	gen := s.gens[ply]
	var moves = gen.GenerateCaptures(pos)
	if inCheck {
		moves = gen.GeneratePseudoLegal(pos, movegen.GenAll)
	}
	movegen.ScoreMoves(pos, moves, ttMove, ply, s.history, lastMoveTo(pos))

	legalMoves := 0
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i).WithoutValue()
		pos.DoMove(m)
		if !pos.WasLegal() {
			pos.UndoMove()
			continue
		}
		legalMoves++
		s.stats.QNodes++

		value := -s.quiescence(pos, ply+1, -beta, -alpha)
		pos.UndoMove()

		if s.outOfTime() {
			return 0
		}
		if value > best {
			best = value
			bestMove = m
			if value > alpha {
				alpha = value
				if config.Settings.Search.UseHistory && !m.Is(Capture) && !m.Is(Promotion) {
					s.history.AddHistory(us, m.From(), m.To(), 1)
				}
			}
		}
		if alpha >= beta {
			s.stats.BetaCuts++
			break
		}
	}

	if legalMoves == 0 && inCheck {
		return -WinScore + Value(ply)
	}

	if inCheck && isDraw(pos) {
		return DrawScore
	}

	if config.Settings.Search.UseQSTT {
		bound := transpositiontable.BoundExact
		switch {
		case best >= beta:
			bound = transpositiontable.BoundLower
		case best <= origAlpha:
			bound = transpositiontable.BoundUpper
		}
		s.tt.Put(key, bestMove, 0, best, standPat, bound, ply)
	}
	return best
}
