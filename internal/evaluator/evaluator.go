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

package evaluator

import (
	"github.com/chessgo/engine/internal/position"
	"github.com/chessgo/engine/internal/tables"
	. "github.com/chessgo/engine/internal/types"
	"github.com/chessgo/engine/internal/util"
)

// Evaluate scores pos from the side-to-move's perspective, scaled so one
// pawn is approximately Value(PawnValue), per spec.md §6.2. Because the
// board is a mailbox rather than a set of incrementally maintained
// bitboard accumulators, every term below is recomputed by a single
// full-board scan rather than read off counters kept during DoMove -
// the same trade the rest of this module makes (see movegen's full
// 64-square scan and position.IsAttacked's ray walk) in exchange for not
// having to thread positional bookkeeping through make/unmake.
func Evaluate(pos *position.Position, w *Weights) Value {
	if pos.TestNotEnoughMaterial() {
		return DrawScore
	}

	us := pos.NextPlayer()

	var mid, end [ColorLength]Value
	var bishopCount [ColorLength]int
	var mobility [ColorLength]int
	var space [ColorLength]int
	var kingSq [ColorLength]Square
	gamePhase := 0

	for sq := Square(0); sq < SqNone; sq++ {
		pt, c := pos.PieceAt(sq)
		if pt == PtNone {
			continue
		}
		mid[c] += w.Material[pt] + psqValue(&w.PsqMid[pt], c, sq)
		end[c] += w.Material[pt] + psqValue(&w.PsqEnd[pt], c, sq)
		gamePhase += pt.GamePhaseValue()

		if pt == King {
			kingSq[c] = sq
		}
		if w.SuperFastMode {
			continue
		}
		switch pt {
		case Bishop:
			bishopCount[c]++
			mobility[c] += slidingMobility(pos, sq, pt, c)
		case Rook, Queen:
			mobility[c] += slidingMobility(pos, sq, pt, c)
		case Knight:
			mobility[c] += leaperMobility(pos, tables.KnightAttacks[sq], c)
		case Pawn:
			if w.UseEmptySquareFeatures {
				space[c] += pawnSpace(pos, sq, c)
			}
		}
	}
	if gamePhase > GamePhaseMax {
		gamePhase = GamePhaseMax
	}
	phaseFactor := float64(gamePhase) / GamePhaseMax

	w.last = features{}

	if !w.SuperFastMode {
		mid[White] += w.MobilityBonus * Value(mobility[White])
		mid[Black] += w.MobilityBonus * Value(mobility[Black])
		end[White] += w.MobilityBonus * Value(mobility[White])
		end[Black] += w.MobilityBonus * Value(mobility[Black])
		w.last.mobility = float64(mobility[White] - mobility[Black])

		whitePair, blackPair := bishopCount[White] >= 2, bishopCount[Black] >= 2
		if whitePair {
			mid[White] += w.BishopPairBonus
			end[White] += w.BishopPairBonus
		}
		if blackPair {
			mid[Black] += w.BishopPairBonus
			end[Black] += w.BishopPairBonus
		}
		w.last.bishopPair = b2i(whitePair) - b2i(blackPair)

		if w.UseEmptySquareFeatures {
			mid[White] += w.SpaceBonus * Value(space[White])
			mid[Black] += w.SpaceBonus * Value(space[Black])
			w.last.space = float64(space[White] - space[Black])
		}

		materialDiff := pos.Material(White) - pos.Material(Black)
		if w.UseKingDistance && materialDiff != 0 {
			dist := kingDistance(kingSq[White], kingSq[Black])
			sign, leader := 1.0, White
			if materialDiff < 0 {
				sign, leader = -1.0, Black
			}
			end[leader] += w.KingDistanceBonus[dist]
			w.last.kingDistanceIndex = dist
			w.last.kingDistanceSign = sign
		}
	}

	value := Value(phaseFactor*float64(mid[White]-mid[Black]) +
		(1-phaseFactor)*float64(end[White]-end[Black]))

	value += w.Tempo
	w.last.tempo = 1

	w.lastOutput = sigmoid(float64(value))
	if us == Black {
		value = -value
	}
	return value
}

func b2i(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func kingDistance(a, b Square) int {
	df := util.Abs(a.File() - b.File())
	dr := util.Abs(a.Rank() - b.Rank())
	return util.Max(df, dr)
}

func slidingMobility(pos *position.Position, from Square, pt PieceType, c Color) int {
	count := 0
	for _, d := range tables.SlidingDirections[pt] {
		s := from.To(d)
		for s != SqNone {
			tpt, tc := pos.PieceAt(s)
			if tpt == PtNone {
				count++
				s = s.To(d)
				continue
			}
			if tc != c {
				count++
			}
			break
		}
	}
	return count
}

func leaperMobility(pos *position.Position, targets []Square, c Color) int {
	count := 0
	for _, sq := range targets {
		if _, tc := pos.PieceAt(sq); tc != c {
			count++
		}
	}
	return count
}

// pawnSpace counts empty squares beyond the midline that a pawn of color
// c on sq controls - a cheap stand-in for "territory", used only when
// UseEmptySquareFeatures is set.
func pawnSpace(pos *position.Position, sq Square, c Color) int {
	count := 0
	for _, to := range tables.PawnAttacks[c][sq] {
		if pt, _ := pos.PieceAt(to); pt != PtNone {
			continue
		}
		if c == White && to.Rank() <= 3 {
			count++
		} else if c == Black && to.Rank() >= 4 {
			count++
		}
	}
	return count
}
