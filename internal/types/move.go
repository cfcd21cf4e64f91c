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

package types

import (
	"fmt"
	"strings"
)

// Move packs a chess move into a single 64-bit word: bits 0-5 the target
// square, bits 6-11 the source square, bits 12-17 the flag bitset, bits
// 18-20 the promotion piece type, and bits 24-55 a signed sort value
// assigned by move ordering.
//
// Unlike the teacher's MoveType (a 2-bit enum) the flag bits here are
// independent, per spec.md §3: NORMAL=0, CAPTURE=1, CASTLE=2,
// EN_PASSANT=4, TWO_SQUARE_PAWN=8, PAWN_MOVE=16, PROMOTION=32 and may be
// combined (e.g. a capturing promotion sets both CAPTURE and PROMOTION).
type Move uint64

// MoveFlag is a bitflag describing the kind of move. Flags are
// independent bits and may be OR-ed together.
type MoveFlag uint8

// Move flag bits, matching spec.md §3 exactly.
const (
	Normal         MoveFlag = 0
	Capture        MoveFlag = 1
	Castle         MoveFlag = 2
	EnPassant      MoveFlag = 4
	TwoSquarePawn  MoveFlag = 8
	PawnMove       MoveFlag = 16
	Promotion      MoveFlag = 32
)

const (
	fromShift  = 6
	flagsShift = 12
	promShift  = 18
	valueShift = 24

	squareMask Move = 0x3F
	flagsMask  Move = 0x3F << flagsShift
	promMask   Move = 0x7 << promShift
)

// MoveNone is the zero value, representing "no move".
const MoveNone Move = 0

// NewMove builds a move from its source/target squares, flag bits and
// (for promotions) the promotion piece type. promote is ignored unless
// flags includes Promotion.
func NewMove(from, to Square, flags MoveFlag, promote PieceType) Move {
	m := Move(to) | Move(from)<<fromShift | Move(flags)<<flagsShift
	if flags&Promotion != 0 {
		m |= Move(promote)<<promShift
	}
	return m
}

// From returns the source square.
func (m Move) From() Square {
	return Square((m >> fromShift) & squareMask)
}

// To returns the target square.
func (m Move) To() Square {
	return Square(m & squareMask)
}

// Flags returns the move's flag bitset.
func (m Move) Flags() MoveFlag {
	return MoveFlag((m & flagsMask) >> flagsShift)
}

// Is reports whether all the given flag bits are set on this move.
func (m Move) Is(f MoveFlag) bool {
	return m.Flags()&f == f
}

// Promote returns the promotion piece type. Only meaningful when
// m.Is(Promotion) holds.
func (m Move) Promote() PieceType {
	return PieceType((m & promMask) >> promShift)
}

// WithoutValue strips the sort-value bits, returning a move equal to any
// other move with the same from/to/flags/promotion regardless of its
// search-assigned ordering value.
func (m Move) WithoutValue() Move {
	return m & ((1 << valueShift) - 1)
}

// Value returns the sort value assigned by move ordering (see
// movegen.ScoreMoves), or 0 if none was set.
func (m Move) Value() int32 {
	return int32(m >> valueShift)
}

// WithValue returns a copy of m with its sort value replaced.
func (m Move) WithValue(v int32) Move {
	return m.WithoutValue() | Move(uint32(v))<<valueShift
}

// IsValid reports whether m has well formed squares. MoveNone is invalid.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid()
}

// UCI returns the move in UCI long algebraic notation, e.g. "e2e4" or
// "e7e8q" for a queen promotion.
func (m Move) UCI() string {
	if m == MoveNone {
		return "0000"
	}
	var b strings.Builder
	b.WriteString(m.From().String())
	b.WriteString(m.To().String())
	if m.Is(Promotion) {
		b.WriteString(m.Promote().Char())
	}
	return b.String()
}

// String returns a debug representation including flags and sort value.
func (m Move) String() string {
	if m == MoveNone {
		return "(none)"
	}
	return fmt.Sprintf("%s [flags=%#x value=%d]", m.UCI(), m.Flags(), m.Value())
}
