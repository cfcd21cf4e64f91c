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
	"github.com/chessgo/engine/internal/history"
	"github.com/chessgo/engine/internal/moveslice"
	"github.com/chessgo/engine/internal/position"
	. "github.com/chessgo/engine/internal/types"
)

// Move ordering tiers, highest first (spec.md §4.7). Values are spaced
// widely enough that a tier's additive bonus (history score, MVV-LVA
// delta) never spills into the tier above it.
const (
	tierTT      int32 = 1_000_000_000
	tierPromo   int32 = 900_000_000
	tierCapture int32 = 800_000_000
	tierKiller1 int32 = 700_000_000
	tierKiller2 int32 = 600_000_000
	tierCastle  int32 = 500_000_000
	tierKing    int32 = 400_000_000
	tierQuiet   int32 = 300_000_000
)

// ScoreMoves assigns a sort value to every move in ml per spec.md §4.7
// and sorts the list from best to worst. ttMove is the transposition
// table's suggested move for this node (MoveNone if there is none). h
// may be nil, in which case killer/history tiers degrade to their base
// value. recaptureSquare is the square the opponent's last move landed
// on (SqNone if not applicable); a capture onto it gets a small bonus.
func ScoreMoves(pos *position.Position, ml *moveslice.MoveSlice, ttMove Move, ply int, h *history.History, recaptureSquare Square) {
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		ml.Set(i, m.WithValue(scoreMove(pos, m, ttMove, ply, h, recaptureSquare)))
	}
	ml.Sort()
}

func scoreMove(pos *position.Position, m, ttMove Move, ply int, h *history.History, recaptureSquare Square) int32 {
	bare := m.WithoutValue()
	if ttMove != MoveNone && bare == ttMove.WithoutValue() {
		return tierTT
	}

	from, to := m.From(), m.To()
	mover := pos.NextPlayer()
	attacker, _ := pos.PieceAt(from)

	if m.Is(Promotion) {
		v := tierPromo + promotionBonus(m.Promote())
		if m.Is(Capture) || m.Is(EnPassant) {
			victim, _ := pos.PieceAt(to)
			v += int32(victim) * 100
		}
		return v
	}

	if m.Is(Capture) || m.Is(EnPassant) {
		victim := Pawn
		if !m.Is(EnPassant) {
			victim, _ = pos.PieceAt(to)
		}
		v := tierCapture + int32(10*int(victim)-int(attacker))
		if to == recaptureSquare {
			v++
		}
		return v
	}

	if h != nil {
		if h.IsKiller(ply, bare) {
			return tierKiller1 + int32(h.HistoryValue(mover, from, to))
		}
		if ply >= 2 && h.IsKiller(ply-2, bare) {
			return tierKiller2 + int32(h.HistoryValue(mover, from, to))
		}
	}

	if m.Is(Castle) {
		v := tierCastle + 10
		if h != nil {
			v += int32(h.HistoryValue(mover, from, to)) << 3
		}
		return v
	}

	if attacker == King {
		v := tierKing
		if h != nil {
			v += int32(h.HistoryValue(mover, from, to))
		}
		return v
	}

	v := tierQuiet + int32(attacker)
	if h != nil {
		v += int32(h.HistoryValue(mover, from, to)) << 3
	}
	return v
}

func promotionBonus(pt PieceType) int32 {
	switch pt {
	case Queen:
		return 4000
	case Knight:
		return 3000
	case Rook:
		return 2000
	case Bishop:
		return 1000
	default:
		return 0
	}
}
