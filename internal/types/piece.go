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

// Piece and Color together describe what sits on a mailbox square. The
// position keeps them in two parallel arrays (board.Color[64],
// board.Piece[64]) rather than packing them, per spec.md §3: an empty
// square has Piece == PtNone and Color == NoColor.

// PieceChar returns the FEN-style single character for a (color, pieceType)
// pair: uppercase for White, lowercase for Black, "-" for no piece.
func PieceChar(c Color, pt PieceType) string {
	if pt == PtNone || !c.IsValid() {
		return "-"
	}
	ch := pt.Char()
	if c == White {
		return string(ch[0] - 32)
	}
	return ch
}

// PieceTypeFromChar parses a FEN piece letter (either case) into a
// PieceType and its Color. Returns (PtNone, NoColor) if ch is unrecognized.
func PieceTypeFromChar(ch byte) (PieceType, Color) {
	color := White
	if ch >= 'a' && ch <= 'z' {
		color = Black
	} else {
		ch = ch + 32
	}
	switch ch {
	case 'p':
		return Pawn, color
	case 'n':
		return Knight, color
	case 'b':
		return Bishop, color
	case 'r':
		return Rook, color
	case 'q':
		return Queen, color
	case 'k':
		return King, color
	default:
		return PtNone, NoColor
	}
}
