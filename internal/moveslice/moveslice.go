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

// Package moveslice provides a bounded slice of Move used by move
// generation and search. Capacity defaults to types.MaxMoveListCap
// (spec.md §3); PushBack at that bound logs a diagnostic and drops the
// move instead of growing the slice, since a legal position should never
// come close to it and hitting it usually means a move generation bug.
package moveslice

import (
	"fmt"
	"strings"

	myLogging "github.com/chessgo/engine/internal/logging"
	. "github.com/chessgo/engine/internal/types"
)

// MoveSlice is a slice of Move with a few chess-specific helpers.
type MoveSlice []Move

// New creates an empty MoveSlice with the given capacity.
func New(capacity int) *MoveSlice {
	moves := make([]Move, 0, capacity)
	return (*MoveSlice)(&moves)
}

// NewDefault creates an empty MoveSlice with the default capacity
// bound of types.MaxMoveListCap.
func NewDefault() *MoveSlice {
	return New(MaxMoveListCap)
}

// Len returns the number of moves currently stored.
func (ms *MoveSlice) Len() int { return len(*ms) }

// Cap returns the slice's capacity.
func (ms *MoveSlice) Cap() int { return cap(*ms) }

// PushBack appends a move. Once the slice already holds
// types.MaxMoveListCap moves it logs a warning and drops m, leaving the
// list truncated at that bound, since a correct generator should never
// reach that many pseudo-legal moves in one position.
func (ms *MoveSlice) PushBack(m Move) {
	if len(*ms) >= MaxMoveListCap {
		myLogging.GetLog().Warningf("moveslice: list full at %d moves, dropping %s, generator or position may be corrupt", MaxMoveListCap, m)
		return
	}
	*ms = append(*ms, m)
}

// At returns the move at index i. Panics if i is out of bounds.
func (ms *MoveSlice) At(i int) Move {
	if i < 0 || i >= len(*ms) {
		panic("moveslice: index out of bounds")
	}
	return (*ms)[i]
}

// Set replaces the move at index i. Panics if i is out of bounds.
func (ms *MoveSlice) Set(i int, m Move) {
	if i < 0 || i >= len(*ms) {
		panic("moveslice: index out of bounds")
	}
	(*ms)[i] = m
}

// Clear empties the slice while keeping its backing array, so it can
// be reused across plies without triggering GC.
func (ms *MoveSlice) Clear() {
	*ms = (*ms)[:0]
}

// Filter keeps only the moves for which keep returns true, rebuilding
// in place using the existing backing array.
func (ms *MoveSlice) Filter(keep func(index int) bool) {
	b := (*ms)[:0]
	for i, m := range *ms {
		if keep(i) {
			b = append(b, m)
		}
	}
	*ms = b
}

// Clone returns a deep copy of the slice.
func (ms *MoveSlice) Clone() *MoveSlice {
	dest := make([]Move, ms.Len())
	copy(dest, *ms)
	return (*MoveSlice)(&dest)
}

// Sort orders moves from highest Value() to lowest, using a stable
// insertion sort: move lists here are short and often already mostly
// ordered by a previous iteration's principal variation.
func (ms *MoveSlice) Sort() {
	l := len(*ms)
	for i := 1; i < l; i++ {
		tmp := (*ms)[i]
		j := i
		for j > 0 && tmp.Value() > (*ms)[j-1].Value() {
			(*ms)[j] = (*ms)[j-1]
			j--
		}
		(*ms)[j] = tmp
	}
}

// String renders the list in debug form.
func (ms *MoveSlice) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("MoveSlice: [%d] { ", len(*ms)))
	for i, m := range *ms {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(m.String())
	}
	b.WriteString(" }")
	return b.String()
}

// UCI renders the list as a space separated string of UCI moves.
func (ms *MoveSlice) UCI() string {
	var b strings.Builder
	for i, m := range *ms {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(m.UCI())
	}
	return b.String()
}
