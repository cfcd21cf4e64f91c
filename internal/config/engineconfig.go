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

package config

// engineConfiguration holds the startup configuration described in
// spec.md §6.1's initEngine(config) contract.
type engineConfiguration struct {
	// MaxPliesPerGame holds the configured game length in plies. Nothing
	// reads it: the position history stack is a fixed array of
	// types.MaxMoves plies, whatever this value is.
	MaxPliesPerGame int

	// HashSizeMB sizes the transposition table.
	HashSizeMB int

	// UseCpuTime is stored but not read: think budgets are always
	// measured against wall clock time.
	UseCpuTime bool
}

func init() {
	Settings.Engine.MaxPliesPerGame = 1000
	Settings.Engine.HashSizeMB = 512
	Settings.Engine.UseCpuTime = false
}
