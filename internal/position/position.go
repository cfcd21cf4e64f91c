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

// Package position represents the chess board and its position: two
// parallel 64-entry mailbox arrays (piece type and color), castling
// rights, en passant target, move clocks and an incrementally
// maintained Zobrist key. A fixed-size history array plus a cursor
// (historyCounter) lets DoMove/UndoMove/DoNullMove/UndoNullMove work
// without any per-ply heap allocation.
//
// Create an instance with NewPosition() for the start position or
// NewPositionFen(fen) for an arbitrary one.
package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	"github.com/chessgo/engine/internal/assert"
	myLogging "github.com/chessgo/engine/internal/logging"
	"github.com/chessgo/engine/internal/tables"
	. "github.com/chessgo/engine/internal/types"
	"github.com/chessgo/engine/internal/zobrist"
)

var log *logging.Logger

func init() {
	log = myLogging.GetLog()
}

// StartFen is the FEN of the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

const maxHistory = int(MaxMoves)

// state flags for the cached InCheck() result
const (
	flagTBD int = iota
	flagFalse
	flagTrue
)

type historyState struct {
	zobristKey      zobrist.Key
	move            Move
	capturedType    PieceType
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	hasCheckFlag    int
}

// Position is the mailbox board plus all state needed to make and
// unmake moves and to detect draws.
type Position struct {
	pieces [SqLength]PieceType
	colors [SqLength]Color

	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	nextPlayer      Color
	fullMoveNumber  int

	kingSquare [ColorLength]Square
	material   [ColorLength]Value

	zobristKey zobrist.Key

	historyCounter int
	history        [maxHistory]historyState

	hasCheckFlag int
}

// NewPosition creates the standard start position.
func NewPosition() *Position {
	p, err := NewPositionFen(StartFen)
	if err != nil {
		// the start FEN is a compile time constant - this can never fail
		panic(err)
	}
	return p
}

// NewPositionFen creates a position from a FEN string.
func NewPositionFen(fen string) (*Position, error) {
	p := &Position{}
	if err := p.setupBoard(fen); err != nil {
		log.Errorf("invalid fen, position not created: %s", err)
		return nil, err
	}
	return p, nil
}

// NextPlayer returns the color to move.
func (p *Position) NextPlayer() Color { return p.nextPlayer }

// ZobristKey returns the current incremental hash of the position.
func (p *Position) ZobristKey() zobrist.Key { return p.zobristKey }

// PieceAt returns the piece type and color on sq, PtNone/NoColor if empty.
func (p *Position) PieceAt(sq Square) (PieceType, Color) { return p.pieces[sq], p.colors[sq] }

// KingSquare returns the square of color's king.
func (p *Position) KingSquare(c Color) Square { return p.kingSquare[c] }

// CastlingRights returns the current castling rights mask.
func (p *Position) CastlingRights() CastlingRights { return p.castlingRights }

// EnPassantSquare returns the current en passant target, or SqNone.
func (p *Position) EnPassantSquare() Square { return p.enPassantSquare }

// HalfMoveClock returns the number of reversible half moves played.
func (p *Position) HalfMoveClock() int { return p.halfMoveClock }

// Material returns the sum of piece values (excluding the king and
// positional terms) for color.
func (p *Position) Material(c Color) Value { return p.material[c] }

// Ply returns the number of half moves made since the position was
// created (the history depth, not the full move number of the FEN).
func (p *Position) Ply() int { return p.historyCounter }

// LastMove returns the move that produced the current position, or
// MoveNone if no move has been made yet.
func (p *Position) LastMove() Move {
	if p.historyCounter == 0 {
		return MoveNone
	}
	return p.history[p.historyCounter-1].move
}

// DoMove applies move to the position. The caller is responsible for
// only passing legal (or at least pseudo-legal) moves; DoMove itself
// does not validate legality.
func (p *Position) DoMove(m Move) {
	fromSq, toSq := m.From(), m.To()
	fromType := p.pieces[fromSq]
	myColor := p.colors[fromSq]

	if assert.DEBUG {
		assert.Assert(m.IsValid(), "position: DoMove invalid move %s", m)
		assert.Assert(fromType != PtNone, "position: DoMove no piece on %s for %s", fromSq, m)
		assert.Assert(myColor == p.nextPlayer, "position: DoMove piece on %s does not belong to side to move", fromSq)
	}

	capturedType := p.pieces[toSq]
	if m.Is(EnPassant) {
		capturedType = Pawn
	}

	h := &p.history[p.historyCounter]
	h.zobristKey = p.zobristKey
	h.move = m
	h.capturedType = capturedType
	h.castlingRights = p.castlingRights
	h.enPassantSquare = p.enPassantSquare
	h.halfMoveClock = p.halfMoveClock
	h.hasCheckFlag = p.hasCheckFlag
	p.historyCounter++

	switch {
	case m.Is(Castle):
		p.doCastlingMove(myColor, fromSq, toSq)
	case m.Is(EnPassant):
		p.doEnPassantMove(myColor, fromSq, toSq)
	case m.Is(Promotion):
		p.doPromotionMove(m, myColor, fromSq, toSq)
	default:
		p.doNormalMove(m, fromSq, toSq, myColor)
	}

	oppKing := p.kingSquare[myColor.Other()]
	switch {
	case m.Is(Castle), m.Is(EnPassant), m.Is(Promotion):
		// A castling rook, an en passant capture or a promoted piece can
		// each deliver check in ways singleAttack/testExposure do not
		// classify cheaply, so the flag is left pending; InCheck falls
		// back to the full rescan the first time it is asked.
		p.hasCheckFlag = flagTBD
	case p.singleAttack(oppKing, toSq) || p.testExposure(oppKing, fromSq, myColor):
		p.hasCheckFlag = flagTrue
	default:
		p.hasCheckFlag = flagFalse
	}
	p.nextPlayer = p.nextPlayer.Other()
	p.zobristKey ^= zobrist.SideToMove
	if myColor == Black {
		p.fullMoveNumber++
	}
}

// UndoMove reverts the last move made with DoMove.
func (p *Position) UndoMove() {
	if assert.DEBUG {
		assert.Assert(p.historyCounter > 0, "position: UndoMove called on initial position")
	}
	p.historyCounter--
	p.nextPlayer = p.nextPlayer.Other()
	if p.nextPlayer == Black {
		p.fullMoveNumber--
	}
	h := &p.history[p.historyCounter]
	m := h.move

	switch {
	case m.Is(Castle):
		p.undoCastlingMove(p.nextPlayer, m.From(), m.To())
	case m.Is(EnPassant):
		p.undoEnPassantMove(p.nextPlayer, m.From(), m.To())
	case m.Is(Promotion):
		p.undoPromotionMove(h.capturedType, p.nextPlayer, m.From(), m.To())
	default:
		p.movePiece(m.To(), m.From())
		if h.capturedType != PtNone {
			p.putPiece(p.nextPlayer.Other(), h.capturedType, m.To())
		}
	}

	p.castlingRights = h.castlingRights
	p.enPassantSquare = h.enPassantSquare
	p.halfMoveClock = h.halfMoveClock
	p.hasCheckFlag = h.hasCheckFlag
	p.zobristKey = h.zobristKey
}

// DoNullMove passes the move without changing the board, used by null
// move pruning. The history entry is updated but the external view of
// the position (other than side to move) is unchanged.
func (p *Position) DoNullMove() {
	h := &p.history[p.historyCounter]
	h.zobristKey = p.zobristKey
	h.move = MoveNone
	h.capturedType = PtNone
	h.castlingRights = p.castlingRights
	h.enPassantSquare = p.enPassantSquare
	h.halfMoveClock = p.halfMoveClock
	h.hasCheckFlag = p.hasCheckFlag
	p.historyCounter++

	p.hasCheckFlag = flagTBD
	p.clearEnPassant()
	p.nextPlayer = p.nextPlayer.Other()
	p.zobristKey ^= zobrist.SideToMove
}

// UndoNullMove reverts a DoNullMove.
func (p *Position) UndoNullMove() {
	p.historyCounter--
	p.nextPlayer = p.nextPlayer.Other()
	h := &p.history[p.historyCounter]
	p.castlingRights = h.castlingRights
	p.enPassantSquare = h.enPassantSquare
	p.halfMoveClock = h.halfMoveClock
	p.hasCheckFlag = h.hasCheckFlag
	p.zobristKey = h.zobristKey
}

// IsAttacked reports whether sq is attacked by any piece of color by.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	for _, s := range tables.PawnAttacks[by.Other()][sq] {
		if p.pieces[s] == Pawn && p.colors[s] == by {
			return true
		}
	}
	for _, s := range tables.KnightAttacks[sq] {
		if p.pieces[s] == Knight && p.colors[s] == by {
			return true
		}
	}
	for _, s := range tables.KingAttacks[sq] {
		if p.pieces[s] == King && p.colors[s] == by {
			return true
		}
	}
	for _, d := range tables.SlidingDirections[Bishop] {
		if p.firstHit(sq, d, by, Bishop, Queen) {
			return true
		}
	}
	for _, d := range tables.SlidingDirections[Rook] {
		if p.firstHit(sq, d, by, Rook, Queen) {
			return true
		}
	}
	return false
}

// firstHit walks from sq in direction d until it finds the first
// occupied square, reporting whether that square holds a by-colored
// piece of type pt1 or pt2.
func (p *Position) firstHit(sq Square, d Direction, by Color, pt1, pt2 PieceType) bool {
	s := sq.To(d)
	for s != SqNone {
		if p.pieces[s] != PtNone {
			return p.colors[s] == by && (p.pieces[s] == pt1 || p.pieces[s] == pt2)
		}
		s = s.To(d)
	}
	return false
}

// InCheck reports whether the side to move is in check. The result is
// cached until the next DoMove/UndoMove.
func (p *Position) InCheck() bool {
	if p.hasCheckFlag != flagTBD {
		return p.hasCheckFlag == flagTrue
	}
	check := p.IsAttacked(p.kingSquare[p.nextPlayer], p.nextPlayer.Other())
	if check {
		p.hasCheckFlag = flagTrue
	} else {
		p.hasCheckFlag = flagFalse
	}
	return check
}

// WasLegal reports whether the move just made with DoMove was legal:
// false if it left the mover's own king in check or, for castling,
// passed through or started in check.
//
// Castling is always verified with the full rescan, since it touches
// three squares at once. Otherwise, if the mover was already in check
// before moving (so any of several squares could be the relevant
// blocker), the move is a king move (the king's new square can be
// attacked by any piece), or the move is a bug-guard case of landing on
// the opponent king's square, the full rescan runs too; everything else only needs
// testExposure's O(ray) check for a newly discovered attack through the
// square the mover just vacated. En passant is routed to the full
// rescan as well, since it vacates two squares on the same rank at
// once - the classic discovered-check-on-the-rank case testExposure's
// single-square test cannot see.
func (p *Position) WasLegal() bool {
	if p.historyCounter == 0 {
		return true
	}
	mover := p.nextPlayer.Other()
	kingSq := p.kingSquare[mover]
	h := &p.history[p.historyCounter-1]
	m := h.move

	if m.Is(Castle) {
		if p.IsAttacked(kingSq, p.nextPlayer) {
			return false
		}
		if p.IsAttacked(m.From(), p.nextPlayer) {
			return false
		}
		return !p.IsAttacked(castlingTransitSquare(m.To()), p.nextPlayer)
	}

	prevInCheck := h.hasCheckFlag != flagFalse
	bugGuard := m.To() == p.kingSquare[p.nextPlayer]
	if prevInCheck || bugGuard || m.Is(EnPassant) || kingSq == m.To() {
		return !p.IsAttacked(kingSq, p.nextPlayer)
	}
	return !p.testExposure(kingSq, m.From(), p.nextPlayer)
}

// singleAttack reports whether the piece actually sitting on
// attackerSq attacks target - a cheap O(1) test for leapers and pawns,
// O(ray) for sliders via tables.ExposedAttack - used right after a move
// lands on attackerSq, in place of a full isAttacked rescan. It does
// not know about en passant or castling; callers needing those must
// use IsAttacked.
func (p *Position) singleAttack(target, attackerSq Square) bool {
	pt, c := p.pieces[attackerSq], p.colors[attackerSq]
	switch pt {
	case Pawn:
		for _, s := range tables.PawnAttacks[c][attackerSq] {
			if s == target {
				return true
			}
		}
		return false
	case Knight:
		return tables.KnightAttack[target][attackerSq]
	case King:
		for _, s := range tables.KingAttacks[attackerSq] {
			if s == target {
				return true
			}
		}
		return false
	case Bishop, Rook, Queen:
		d := tables.ExposedAttack[target][attackerSq]
		if d == tables.DirNone || !rayFitsSlider(d, pt) {
			return false
		}
		return p.firstOccupied(target, d) == attackerSq
	default:
		return false
	}
}

// testExposure reports whether vacating evacuatedSq opened a straight
// or diagonal ray from a by-colored slider onto target - the O(ray)
// discovered-check test used in place of a full board rescan after a
// move.
func (p *Position) testExposure(target, evacuatedSq Square, by Color) bool {
	d := tables.ExposedAttack[target][evacuatedSq]
	if d == tables.DirNone {
		return false
	}
	hit := p.firstOccupied(target, d)
	if hit == SqNone || p.colors[hit] != by {
		return false
	}
	return rayFitsSlider(d, p.pieces[hit])
}

// firstOccupied walks from sq in direction d and returns the first
// occupied square found, or SqNone if the ray runs off the board.
func (p *Position) firstOccupied(sq Square, d Direction) Square {
	s := sq.To(d)
	for s != SqNone {
		if p.pieces[s] != PtNone {
			return s
		}
		s = s.To(d)
	}
	return SqNone
}

// rayFitsSlider reports whether a slider of type pt can move along
// direction d: rooks and queens on the straight directions, bishops and
// queens on the diagonals.
func rayFitsSlider(d Direction, pt PieceType) bool {
	switch d {
	case North, South, East, West:
		return pt == Rook || pt == Queen
	case Northeast, Northwest, Southeast, Southwest:
		return pt == Bishop || pt == Queen
	default:
		return false
	}
}

func castlingTransitSquare(kingTo Square) Square {
	switch kingTo {
	case SqG1:
		return SqF1
	case SqC1:
		return SqD1
	case SqG8:
		return SqF8
	case SqC8:
		return SqD8
	default:
		return SqNone
	}
}

// TestRepetition reports whether the current position has occurred at
// least reps times earlier in the game (so reps==2 tests for a
// threefold repetition including the current occurrence).
func (p *Position) TestRepetition(reps int) bool {
	counter := 0
	lastHalfMove := p.halfMoveClock
	for i := p.historyCounter - 2; i >= 0; i -= 2 {
		if p.history[i].halfMoveClock >= lastHalfMove {
			break
		}
		lastHalfMove = p.history[i].halfMoveClock
		if p.zobristKey == p.history[i].zobristKey {
			counter++
			if counter >= reps {
				return true
			}
		}
	}
	return false
}

// TestNotEnoughMaterial reports whether neither side has enough
// material to force a checkmate.
func (p *Position) TestNotEnoughMaterial() bool {
	if p.material[White]+p.material[Black] == 0 {
		return true
	}
	for _, pt := range [3]PieceType{Pawn, Rook, Queen} {
		if p.countOf(White, pt) > 0 || p.countOf(Black, pt) > 0 {
			return false
		}
	}
	nonPawnW := p.material[White]
	nonPawnB := p.material[Black]
	minor := Value(Bishop.ValueOf())
	if nonPawnW < minor && nonPawnB < minor {
		return true
	}
	twoKnights := Value(2 * Knight.ValueOf())
	if (nonPawnW == twoKnights && nonPawnB <= minor) || (nonPawnB == twoKnights && nonPawnW <= minor) {
		return true
	}
	twoBishops := Value(2 * Bishop.ValueOf())
	if (nonPawnW == twoBishops && nonPawnB == minor) || (nonPawnB == twoBishops && nonPawnW == minor) {
		return true
	}
	if nonPawnW == twoBishops || nonPawnB == twoBishops {
		return false
	}
	if (nonPawnW <= twoKnights && nonPawnB <= minor) || (nonPawnW <= minor && nonPawnB <= twoKnights) {
		return true
	}
	return false
}

func (p *Position) countOf(c Color, pt PieceType) int {
	n := 0
	for sq := 0; sq < SqLength; sq++ {
		if p.pieces[sq] == pt && p.colors[sq] == c {
			n++
		}
	}
	return n
}

// String renders the FEN followed by an ASCII board.
func (p *Position) String() string {
	var b strings.Builder
	b.WriteString(p.Fen())
	b.WriteString("\n+---+---+---+---+---+---+---+---+\n")
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			sq := SquareOf(f, r)
			b.WriteString("| ")
			b.WriteString(PieceChar(p.colors[sq], p.pieces[sq]))
			b.WriteString(" ")
		}
		b.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return b.String()
}

// ///////////////////////////////////////////////////////////////////
// private move application helpers
// ///////////////////////////////////////////////////////////////////

func (p *Position) movePiece(from, to Square) {
	pt, c := p.pieces[from], p.colors[from]
	p.zobristKey ^= zobrist.Piece[c][pt][from]
	p.pieces[from], p.colors[from] = PtNone, NoColor
	p.pieces[to], p.colors[to] = pt, c
	p.zobristKey ^= zobrist.Piece[c][pt][to]
	if pt == King {
		p.kingSquare[c] = to
	}
}

func (p *Position) putPiece(c Color, pt PieceType, sq Square) {
	p.pieces[sq], p.colors[sq] = pt, c
	p.zobristKey ^= zobrist.Piece[c][pt][sq]
	if pt == King {
		p.kingSquare[c] = sq
	} else {
		p.material[c] += Value(pt.ValueOf())
	}
}

func (p *Position) removePiece(sq Square) {
	pt, c := p.pieces[sq], p.colors[sq]
	p.zobristKey ^= zobrist.Piece[c][pt][sq]
	if pt != King {
		p.material[c] -= Value(pt.ValueOf())
	}
	p.pieces[sq], p.colors[sq] = PtNone, NoColor
}

func (p *Position) clearEnPassant() {
	if p.enPassantSquare != SqNone {
		p.zobristKey ^= zobrist.EnPassantFile[p.enPassantSquare.File()]
		p.enPassantSquare = SqNone
	}
}

func (p *Position) removeCastlingRights(cr CastlingRights) {
	if p.castlingRights&cr == 0 {
		return
	}
	p.zobristKey ^= zobrist.Castling[p.castlingRights]
	p.castlingRights.Remove(cr)
	p.zobristKey ^= zobrist.Castling[p.castlingRights]
}

// squareCastlingMask returns the castling rights invalidated whenever a
// king or rook leaves, or a rook is captured on, sq.
func squareCastlingMask(sq Square) CastlingRights {
	switch sq {
	case SqE1:
		return CastleWK | CastleWQ
	case SqA1:
		return CastleWQ
	case SqH1:
		return CastleWK
	case SqE8:
		return CastleBK | CastleBQ
	case SqA8:
		return CastleBQ
	case SqH8:
		return CastleBK
	default:
		return CastleNone
	}
}

func (p *Position) doNormalMove(m Move, fromSq, toSq Square, myColor Color) {
	if mask := squareCastlingMask(fromSq) | squareCastlingMask(toSq); mask != CastleNone {
		p.removeCastlingRights(mask)
	}
	p.clearEnPassant()
	capturing := p.pieces[toSq] != PtNone
	if capturing {
		p.removePiece(toSq)
		p.halfMoveClock = 0
	} else if m.Is(PawnMove) {
		p.halfMoveClock = 0
		if m.Is(TwoSquarePawn) {
			p.enPassantSquare = toSq.To(myColor.Other().PawnDirection())
			p.zobristKey ^= zobrist.EnPassantFile[p.enPassantSquare.File()]
		}
	} else {
		p.halfMoveClock++
	}
	p.movePiece(fromSq, toSq)
}

func (p *Position) doEnPassantMove(myColor Color, fromSq, toSq Square) {
	capturedSq := toSq.To(myColor.Other().PawnDirection())
	p.removePiece(capturedSq)
	p.clearEnPassant()
	p.movePiece(fromSq, toSq)
	p.halfMoveClock = 0
}

func (p *Position) undoEnPassantMove(myColor Color, fromSq, toSq Square) {
	p.movePiece(toSq, fromSq)
	capturedSq := toSq.To(myColor.Other().PawnDirection())
	p.putPiece(myColor.Other(), Pawn, capturedSq)
}

func (p *Position) doPromotionMove(m Move, myColor Color, fromSq, toSq Square) {
	if mask := squareCastlingMask(toSq); mask != CastleNone {
		p.removeCastlingRights(mask)
	}
	if p.pieces[toSq] != PtNone {
		p.removePiece(toSq)
	}
	p.removePiece(fromSq)
	p.putPiece(myColor, m.Promote(), toSq)
	p.clearEnPassant()
	p.halfMoveClock = 0
}

func (p *Position) undoPromotionMove(capturedType PieceType, myColor Color, fromSq, toSq Square) {
	p.removePiece(toSq)
	p.putPiece(myColor, Pawn, fromSq)
	if capturedType != PtNone {
		p.putPiece(myColor.Other(), capturedType, toSq)
	}
}

func (p *Position) doCastlingMove(myColor Color, fromSq, toSq Square) {
	if assert.DEBUG {
		assert.Assert(p.pieces[fromSq] == King, "position: castling move but %s has no king", fromSq)
	}
	p.movePiece(fromSq, toSq)
	switch toSq {
	case SqG1:
		p.movePiece(SqH1, SqF1)
	case SqC1:
		p.movePiece(SqA1, SqD1)
	case SqG8:
		p.movePiece(SqH8, SqF8)
	case SqC8:
		p.movePiece(SqA8, SqD8)
	}
	if myColor == White {
		p.removeCastlingRights(CastleWK | CastleWQ)
	} else {
		p.removeCastlingRights(CastleBK | CastleBQ)
	}
	p.clearEnPassant()
	p.halfMoveClock++
}

func (p *Position) undoCastlingMove(myColor Color, fromSq, toSq Square) {
	p.movePiece(toSq, fromSq)
	switch toSq {
	case SqG1:
		p.movePiece(SqF1, SqH1)
	case SqC1:
		p.movePiece(SqD1, SqA1)
	case SqG8:
		p.movePiece(SqF8, SqH8)
	case SqC8:
		p.movePiece(SqD8, SqA8)
	}
	_ = myColor
}

// ///////////////////////////////////////////////////////////////////
// FEN
// ///////////////////////////////////////////////////////////////////

func (p *Position) setupBoard(fen string) error {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return fmt.Errorf("fen needs at least 4 fields, got %d: %q", len(fields), fen)
	}

	*p = Position{}
	for i := range p.pieces {
		p.pieces[i] = PtNone
		p.colors[i] = NoColor
	}
	p.kingSquare[White] = SqNone
	p.kingSquare[Black] = SqNone

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return fmt.Errorf("fen board needs 8 ranks, got %d: %q", len(ranks), fields[0])
	}
	for r, rank := range ranks {
		f := 0
		for _, ch := range rank {
			switch {
			case ch >= '1' && ch <= '8':
				f += int(ch - '0')
			default:
				if f > 7 {
					return fmt.Errorf("fen rank %d overflows the board: %q", r, rank)
				}
				pt, c := PieceTypeFromChar(byte(ch))
				if pt == PtNone {
					return fmt.Errorf("fen rank %d has invalid piece char %q", r, string(ch))
				}
				sq := SquareOf(f, r)
				p.putPiece(c, pt, sq)
				f++
			}
		}
		if f != 8 {
			return fmt.Errorf("fen rank %d does not cover 8 files: %q", r, rank)
		}
	}
	if p.kingSquare[White] == SqNone || p.kingSquare[Black] == SqNone {
		return fmt.Errorf("fen is missing a king: %q", fen)
	}

	switch fields[1] {
	case "w":
		p.nextPlayer = White
	case "b":
		p.nextPlayer = Black
		p.zobristKey ^= zobrist.SideToMove
	default:
		return fmt.Errorf("fen has invalid active color %q", fields[1])
	}

	p.castlingRights = CastleNone
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				p.castlingRights |= CastleWK
			case 'Q':
				p.castlingRights |= CastleWQ
			case 'k':
				p.castlingRights |= CastleBK
			case 'q':
				p.castlingRights |= CastleBQ
			default:
				return fmt.Errorf("fen has invalid castling char %q", string(ch))
			}
		}
	}
	p.zobristKey ^= zobrist.Castling[p.castlingRights]

	p.enPassantSquare = SqNone
	if fields[3] != "-" {
		sq := MakeSquare(fields[3])
		if sq == SqNone {
			return fmt.Errorf("fen has invalid en passant square %q", fields[3])
		}
		p.enPassantSquare = sq
		p.zobristKey ^= zobrist.EnPassantFile[sq.File()]
	}

	p.halfMoveClock = 0
	if len(fields) > 4 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			p.halfMoveClock = n
		}
	}
	p.fullMoveNumber = 1
	if len(fields) > 5 {
		if n, err := strconv.Atoi(fields[5]); err == nil {
			p.fullMoveNumber = n
		}
	}
	return nil
}

// Fen returns the FEN string of the current position.
func (p *Position) Fen() string {
	var b strings.Builder
	for r := 0; r < 8; r++ {
		empty := 0
		for f := 0; f < 8; f++ {
			sq := SquareOf(f, r)
			pt, c := p.pieces[sq], p.colors[sq]
			if pt == PtNone {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(PieceChar(c, pt))
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if r != 7 {
			b.WriteString("/")
		}
	}
	b.WriteString(" ")
	b.WriteString(p.nextPlayer.String())
	b.WriteString(" ")
	b.WriteString(p.castlingRights.String())
	b.WriteString(" ")
	b.WriteString(p.enPassantSquare.String())
	b.WriteString(fmt.Sprintf(" %d %d", p.halfMoveClock, p.fullMoveNumber))
	return b.String()
}
