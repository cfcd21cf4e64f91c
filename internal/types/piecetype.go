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

// PieceType identifies a kind of piece independent of color. PtNone marks
// an empty square.
type PieceType int8

// Piece kind constants, matching the order and values spec.md fixes.
const (
	Pawn   PieceType = 0
	Knight PieceType = 1
	Bishop PieceType = 2
	Rook   PieceType = 3
	Queen  PieceType = 4
	King   PieceType = 5
	PtNone PieceType = -1

	PtLength = 6
)

var pieceTypeToChar = [PtLength]string{"p", "n", "b", "r", "q", "k"}

// Char returns the lowercase single-letter FEN-style representation.
func (pt PieceType) Char() string {
	if pt < Pawn || pt > King {
		return "-"
	}
	return pieceTypeToChar[pt]
}

// IsValid reports whether pt is one of the six piece kinds.
func (pt PieceType) IsValid() bool {
	return pt >= Pawn && pt <= King
}

// IsSliding reports whether the piece type moves along open rays (bishop,
// rook, queen).
func (pt PieceType) IsSliding() bool {
	return pt == Bishop || pt == Rook || pt == Queen
}

// material value in centipawn-like units where one pawn == 10000, as
// required by the evaluator contract in spec.md §6.2.
var pieceTypeValue = [PtLength]int{10000, 32000, 33000, 50000, 90000, 2000000}

// ValueOf returns the material value of the piece type.
func (pt PieceType) ValueOf() int {
	if !pt.IsValid() {
		return 0
	}
	return pieceTypeValue[pt]
}

// gamePhaseValue is used to interpolate between midgame and endgame
// evaluation tables by counting remaining officers.
var gamePhaseValue = [PtLength]int{0, 1, 1, 2, 4, 0}

// GamePhaseValue returns this piece type's contribution to the game-phase
// counter (GamePhaseMax when all officers are on the board).
func (pt PieceType) GamePhaseValue() int {
	if !pt.IsValid() {
		return 0
	}
	return gamePhaseValue[pt]
}
