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

// Package zobrist holds the fixed random numbers used to incrementally
// hash a position: one per (color, piece type, square), one per en
// passant file, one per castling rights mask and one for side to move.
// All tables are generated once at package init from a fixed seed so
// hashes are reproducible across runs and across processes.
package zobrist

import (
	. "github.com/chessgo/engine/internal/types"
)

// Key is the hash key type used throughout position and the
// transposition table.
type Key uint64

var (
	// Piece[color][pieceType][square]
	Piece [ColorLength][PtLength][SqLength]Key

	// EnPassantFile is indexed by the file (0..7) of the en passant
	// target square.
	EnPassantFile [8]Key

	// Castling is indexed directly by the 4-bit CastlingRights mask.
	Castling [CastlingLength]Key

	// SideToMove is xored in whenever it is black to move.
	SideToMove Key
)

func init() {
	r := newRandom(1070372)
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt < PtLength; pt++ {
			for sq := 0; sq < SqLength; sq++ {
				Piece[c][pt][sq] = Key(r.rand64())
			}
		}
	}
	for f := 0; f < 8; f++ {
		EnPassantFile[f] = Key(r.rand64())
	}
	for cr := 0; cr < CastlingLength; cr++ {
		Castling[cr] = Key(r.rand64())
	}
	SideToMove = Key(r.rand64())
}

// random is a xorshift-style PRNG with the xorshift64star output
// multiplier used by Stockfish (public domain code by Sebastiano Vigna,
// 2014); its shift sequence is <<25, >>27, >>12.
type random struct {
	s uint64
}

func newRandom(seed uint64) random {
	if seed == 0 {
		panic("zobrist: seed must not be 0")
	}
	return random{seed}
}

func (r *random) rand64() uint64 {
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	r.s ^= r.s >> 12
	return r.s * 2685821657736338717
}
