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

const (
	// ColorLength is the number of colors (White, Black).
	ColorLength = 2

	// MaxDepth is the hard ceiling on search/quiescence recursion depth.
	MaxDepth = 128

	// MaxMoves is the maximum number of plies a single game's history
	// stack can record. Matches spec.md §3's default of 1000, rounded up
	// to the teacher's existing constant name.
	MaxMoves = 1024

	// MaxMoveListCap is the default bound for a single MoveList buffer, per
	// spec.md §3.
	MaxMoveListCap = 2000

	// GamePhaseMax is the game-phase counter value when all officers are
	// still on the board (used to interpolate midgame/endgame evaluation).
	GamePhaseMax = 24
)
