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

// CastlingRights is a 4-bit field tracking which castles are still
// available: WK=1, WQ=2, BK=4, BQ=8.
type CastlingRights uint8

// Castling right bits.
const (
	CastleNone CastlingRights = 0
	CastleWK   CastlingRights = 1
	CastleWQ   CastlingRights = 2
	CastleBK   CastlingRights = 4
	CastleBQ   CastlingRights = 8
	CastleAll  CastlingRights = CastleWK | CastleWQ | CastleBK | CastleBQ

	// CastlingLength is the number of distinct castling-rights masks, used
	// to size the Zobrist castleKey table.
	CastlingLength = 16
)

// Has reports whether any of rhs's bits is set in lhs.
func (lhs CastlingRights) Has(rhs CastlingRights) bool {
	return lhs&rhs != 0
}

// Remove clears the given bits in place. Rights can only
// ever be removed across a game, never added (spec.md §3 invariant).
func (lhs *CastlingRights) Remove(rhs CastlingRights) {
	*lhs &^= rhs
}

// String renders the rights in the usual "KQkq" order, "-" if none remain.
func (lhs CastlingRights) String() string {
	if lhs == CastleNone {
		return "-"
	}
	s := ""
	if lhs.Has(CastleWK) {
		s += "K"
	}
	if lhs.Has(CastleWQ) {
		s += "Q"
	}
	if lhs.Has(CastleBK) {
		s += "k"
	}
	if lhs.Has(CastleBQ) {
		s += "q"
	}
	return s
}
