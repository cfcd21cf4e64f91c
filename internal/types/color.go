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

// Color identifies the side to move or the side owning a piece. None is
// used for empty squares.
type Color int8

// Constants for color. None is used both for an unset "last mover" and for
// empty mailbox squares.
const (
	White Color = 0
	Black Color = 1
	NoColor Color = -1
)

// Other returns the opposing color. Must not be called with NoColor.
func (c Color) Other() Color {
	return 1 - c
}

// IsValid reports whether c is White or Black.
func (c Color) IsValid() bool {
	return c == White || c == Black
}

// String returns "w", "b" or "-".
func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		return "-"
	}
}

// PawnDirection returns North for White and South for Black - the
// direction a pawn of this color advances.
func (c Color) PawnDirection() Direction {
	if c == White {
		return North
	}
	return South
}

// PawnStartRank returns the rank index (0=rank8..7=rank1) pawns of this
// color start on.
func (c Color) PawnStartRank() int {
	if c == White {
		return 6
	}
	return 1
}

// PawnPromotionRank returns the rank index pawns of this color promote on.
func (c Color) PawnPromotionRank() int {
	if c == White {
		return 0
	}
	return 7
}
