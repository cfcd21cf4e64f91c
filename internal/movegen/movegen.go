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

// Package movegen generates pseudo-legal and legal moves for a position.
// Because the board is a mailbox rather than a bitboard, generation scans
// all 64 squares for pieces belonging to the side to move rather than
// iterating a per-piece-type bitboard or an incremental piece list -
// mailbox scanning is the spec-mandated redesign this module follows.
package movegen

import (
	myLogging "github.com/chessgo/engine/internal/logging"
	"github.com/chessgo/engine/internal/moveslice"
	"github.com/chessgo/engine/internal/position"
	"github.com/chessgo/engine/internal/tables"
	. "github.com/chessgo/engine/internal/types"

	"github.com/op/go-logging"
)

var log *logging.Logger

func init() {
	log = myLogging.GetLog()
}

// GenMode selects which classes of moves to produce.
type GenMode int

// Generation mode bits, combinable.
const (
	GenCap    GenMode = 0b01
	GenNonCap GenMode = 0b10
	GenAll    GenMode = GenCap | GenNonCap
)

// Generator holds reusable move buffers so repeated generation at
// different plies of a search doesn't churn the allocator.
type Generator struct {
	pseudoLegalMoves *moveslice.MoveSlice
	legalMoves       *moveslice.MoveSlice
	captureMoves     *moveslice.MoveSlice
}

// New creates a Generator with default-capacity buffers.
func New() *Generator {
	return &Generator{
		pseudoLegalMoves: moveslice.NewDefault(),
		legalMoves:       moveslice.NewDefault(),
		captureMoves:     moveslice.NewDefault(),
	}
}

// GeneratePseudoLegal produces every move that obeys its piece's movement
// rule and does not capture a friendly piece, ignoring whether it leaves
// the mover's own king in check (spec.md §4.3).
func (g *Generator) GeneratePseudoLegal(pos *position.Position, mode GenMode) *moveslice.MoveSlice {
	g.pseudoLegalMoves.Clear()
	g.generateAll(pos, mode, g.pseudoLegalMoves)
	return g.pseudoLegalMoves
}

// GenerateLegal calls GeneratePseudoLegal and filters the result by a
// trial make/unmake legality check (spec.md §4.3).
func (g *Generator) GenerateLegal(pos *position.Position, mode GenMode) *moveslice.MoveSlice {
	g.GeneratePseudoLegal(pos, mode)
	g.legalMoves.Clear()
	for i := 0; i < g.pseudoLegalMoves.Len(); i++ {
		m := g.pseudoLegalMoves.At(i)
		pos.DoMove(m)
		legal := pos.WasLegal()
		pos.UndoMove()
		if legal {
			g.legalMoves.PushBack(m)
		}
	}
	return g.legalMoves
}

// GenerateCaptures produces only captures, en passant captures, and pawn
// pushes onto the last rank (quiet promotions are included because they
// are forcing, per spec.md §4.3's explicit note).
func (g *Generator) GenerateCaptures(pos *position.Position) *moveslice.MoveSlice {
	g.captureMoves.Clear()
	nextPlayer := pos.NextPlayer()
	for sq := Square(0); sq < SqNone; sq++ {
		pt, c := pos.PieceAt(sq)
		if c != nextPlayer {
			continue
		}
		switch pt {
		case Pawn:
			generatePawnCaptures(pos, sq, g.captureMoves)
			generatePawnQuietPromotion(pos, sq, g.captureMoves)
		case Knight:
			generateLeaperMoves(pos, sq, tables.KnightAttacks[sq], GenCap, g.captureMoves)
		case King:
			generateLeaperMoves(pos, sq, tables.KingAttacks[sq], GenCap, g.captureMoves)
		case Bishop, Rook, Queen:
			generateSliderMoves(pos, sq, pt, GenCap, g.captureMoves)
		}
	}
	return g.captureMoves
}

// HasLegalMove reports whether the side to move has at least one legal
// move, stopping at the first one found. Used for checkmate/stalemate
// detection without generating (and filtering) the whole move list.
func (g *Generator) HasLegalMove(pos *position.Position) bool {
	g.GeneratePseudoLegal(pos, GenAll)
	for i := 0; i < g.pseudoLegalMoves.Len(); i++ {
		m := g.pseudoLegalMoves.At(i)
		pos.DoMove(m)
		legal := pos.WasLegal()
		pos.UndoMove()
		if legal {
			return true
		}
	}
	return false
}

func (g *Generator) generateAll(pos *position.Position, mode GenMode, ml *moveslice.MoveSlice) {
	nextPlayer := pos.NextPlayer()
	for sq := Square(0); sq < SqNone; sq++ {
		pt, c := pos.PieceAt(sq)
		if c != nextPlayer {
			continue
		}
		switch pt {
		case Pawn:
			generatePawnMoves(pos, sq, mode, ml)
		case Knight:
			generateLeaperMoves(pos, sq, tables.KnightAttacks[sq], mode, ml)
		case King:
			generateLeaperMoves(pos, sq, tables.KingAttacks[sq], mode, ml)
		case Bishop, Rook, Queen:
			generateSliderMoves(pos, sq, pt, mode, ml)
		}
	}
	generateCastling(pos, mode, ml)
}

func generatePawnMoves(pos *position.Position, fromSq Square, mode GenMode, ml *moveslice.MoveSlice) {
	if mode&GenCap != 0 {
		generatePawnCaptures(pos, fromSq, ml)
	}
	if mode&GenNonCap == 0 {
		return
	}
	c := pos.NextPlayer()
	oneStep := fromSq.To(c.PawnDirection())
	if oneStep == SqNone {
		return
	}
	if pt, _ := pos.PieceAt(oneStep); pt != PtNone {
		return
	}
	if oneStep.Rank() == c.PawnPromotionRank() {
		pushPromotions(fromSq, oneStep, PawnMove|Promotion, ml)
		return
	}
	ml.PushBack(NewMove(fromSq, oneStep, PawnMove, PtNone))
	if fromSq.Rank() != c.PawnStartRank() {
		return
	}
	twoStep := oneStep.To(c.PawnDirection())
	if twoStep == SqNone {
		return
	}
	if pt, _ := pos.PieceAt(twoStep); pt == PtNone {
		ml.PushBack(NewMove(fromSq, twoStep, PawnMove|TwoSquarePawn, PtNone))
	}
}

func generatePawnCaptures(pos *position.Position, fromSq Square, ml *moveslice.MoveSlice) {
	c := pos.NextPlayer()
	ep := pos.EnPassantSquare()
	for _, toSq := range tables.PawnAttacks[c][fromSq] {
		pt, tc := pos.PieceAt(toSq)
		switch {
		case tc == c.Other():
			if toSq.Rank() == c.PawnPromotionRank() {
				pushPromotions(fromSq, toSq, Capture|Promotion, ml)
			} else {
				ml.PushBack(NewMove(fromSq, toSq, Capture, PtNone))
			}
		case toSq == ep && ep != SqNone && pt == PtNone:
			ml.PushBack(NewMove(fromSq, toSq, EnPassant|Capture, PtNone))
		}
	}
}

func generatePawnQuietPromotion(pos *position.Position, fromSq Square, ml *moveslice.MoveSlice) {
	c := pos.NextPlayer()
	oneStep := fromSq.To(c.PawnDirection())
	if oneStep == SqNone || oneStep.Rank() != c.PawnPromotionRank() {
		return
	}
	if pt, _ := pos.PieceAt(oneStep); pt == PtNone {
		pushPromotions(fromSq, oneStep, PawnMove|Promotion, ml)
	}
}

func pushPromotions(from, to Square, flags MoveFlag, ml *moveslice.MoveSlice) {
	ml.PushBack(NewMove(from, to, flags, Queen))
	ml.PushBack(NewMove(from, to, flags, Knight))
	ml.PushBack(NewMove(from, to, flags, Rook))
	ml.PushBack(NewMove(from, to, flags, Bishop))
}

func generateLeaperMoves(pos *position.Position, fromSq Square, targets []Square, mode GenMode, ml *moveslice.MoveSlice) {
	c := pos.NextPlayer()
	for _, toSq := range targets {
		pt, tc := pos.PieceAt(toSq)
		if tc == c {
			continue
		}
		if pt != PtNone {
			if mode&GenCap != 0 {
				ml.PushBack(NewMove(fromSq, toSq, Capture, PtNone))
			}
		} else if mode&GenNonCap != 0 {
			ml.PushBack(NewMove(fromSq, toSq, Normal, PtNone))
		}
	}
}

// generateSliderMoves walks tables.PosData's flattened ray entries for
// fromSq instead of looping direction-by-direction: an empty square
// just advances to the next entry, an occupied one resolves to a
// capture-or-not and then jumps via Skip to the next ray, so the inner
// loop never re-checks squares already known to be blocked.
func generateSliderMoves(pos *position.Position, fromSq Square, pt PieceType, mode GenMode, ml *moveslice.MoveSlice) {
	c := pos.NextPlayer()
	entries := tables.PosData[pt][fromSq]
	for i := 0; i < len(entries); {
		e := entries[i]
		tpt, tc := pos.PieceAt(e.Square)
		if tpt == PtNone {
			if mode&GenNonCap != 0 {
				ml.PushBack(NewMove(fromSq, e.Square, Normal, PtNone))
			}
			i++
			continue
		}
		if tc != c && mode&GenCap != 0 {
			ml.PushBack(NewMove(fromSq, e.Square, Capture, PtNone))
		}
		i = e.Skip
	}
}

// generateCastling emits castling moves when the right is present, the
// intermediate squares are empty and the king is not currently in check.
// Whether the king passes through or lands on an attacked square is left
// to make-move's legality check (spec.md §4.3), so generation here only
// verifies cheap, position-local conditions.
func generateCastling(pos *position.Position, mode GenMode, ml *moveslice.MoveSlice) {
	if mode&GenNonCap == 0 || pos.CastlingRights() == CastleNone || pos.InCheck() {
		return
	}
	empty := func(sqs ...Square) bool {
		for _, sq := range sqs {
			if pt, _ := pos.PieceAt(sq); pt != PtNone {
				return false
			}
		}
		return true
	}
	cr := pos.CastlingRights()
	if pos.NextPlayer() == White {
		if cr.Has(CastleWK) && empty(SqF1, SqG1) {
			ml.PushBack(NewMove(SqE1, SqG1, Castle, PtNone))
		}
		if cr.Has(CastleWQ) && empty(SqD1, SqC1, SqB1) {
			ml.PushBack(NewMove(SqE1, SqC1, Castle, PtNone))
		}
	} else {
		if cr.Has(CastleBK) && empty(SqF8, SqG8) {
			ml.PushBack(NewMove(SqE8, SqG8, Castle, PtNone))
		}
		if cr.Has(CastleBQ) && empty(SqD8, SqC8, SqB8) {
			ml.PushBack(NewMove(SqE8, SqC8, Castle, PtNone))
		}
	}
}
