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

// Package types contains the passive data types shared by every layer of
// the engine: squares, files, ranks, colors, piece kinds, moves and
// castling rights. None of these types hold behaviour beyond simple
// decoding - the interesting algorithms live in tables, position,
// movegen and search.
package types

import "fmt"

// Square is a board square numbered 0..63 with A8=0 and H1=63, i.e. index
// increases left to right along a rank and top to bottom across ranks.
// SqNone is the sentinel for "no square" (en passant target when there is
// none, and similar).
type Square int8

// Board squares, A8=0 .. H1=63, plus the SqNone sentinel.
const (
	SqA8 Square = iota
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA1
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqNone
)

// SqLength is the number of real squares on the board.
const SqLength = 64

// Direction is a square offset used to walk rays across the mailbox board.
// North is white's forward direction (towards rank 8, i.e. decreasing
// square index).
type Direction int8

const (
	North     Direction = -8
	South     Direction = 8
	East      Direction = 1
	West      Direction = -1
	Northeast Direction = -7
	Northwest Direction = -9
	Southeast Direction = 9
	Southwest Direction = 7
)

// File returns the file of the square, A=0..H=7.
func (sq Square) File() int {
	return int(sq) & 7
}

// Rank returns the rank index of the square, 0 for rank 8, 7 for rank 1.
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// RankNumber returns the human rank number (1..8) of the square.
func (sq Square) RankNumber() int {
	return 8 - sq.Rank()
}

// IsValid reports whether sq is an on-board square.
func (sq Square) IsValid() bool {
	return sq >= SqA8 && sq < SqNone
}

// SquareOf builds a square from a file (0..7) and a rank index (0 for rank
// 8, 7 for rank 1). Returns SqNone for out-of-range inputs.
func SquareOf(file, rankIdx int) Square {
	if file < 0 || file > 7 || rankIdx < 0 || rankIdx > 7 {
		return SqNone
	}
	return Square(rankIdx*8 + file)
}

// MakeSquare parses an algebraic square string such as "e4" and returns
// SqNone if the string is not a valid square.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	file := int(s[0] - 'a')
	rankNumber := int(s[1] - '1')
	if file < 0 || file > 7 || rankNumber < 0 || rankNumber > 7 {
		return SqNone
	}
	return SquareOf(file, 7-rankNumber)
}

// String returns the algebraic representation of the square, or "-" for
// SqNone.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+sq.File(), sq.RankNumber())
}

// To returns the square reached by walking one step in direction d, or
// SqNone if that step would leave the board.
func (sq Square) To(d Direction) Square {
	switch d {
	case East, Northeast, Southeast:
		if sq.File() == 7 {
			return SqNone
		}
	case West, Northwest, Southwest:
		if sq.File() == 0 {
			return SqNone
		}
	}
	t := Square(int(sq) + int(d))
	if !t.IsValid() {
		return SqNone
	}
	return t
}
