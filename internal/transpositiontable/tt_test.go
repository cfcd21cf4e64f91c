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

package transpositiontable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/chessgo/engine/internal/types"
	"github.com/chessgo/engine/internal/zobrist"
)

func TestPutAndProbeRoundTrip(t *testing.T) {
	tt := New(4)
	move := NewMove(SqE2, SqE4, Normal, PtNone)

	tt.Put(111, move, 4, Value(111), Value(50), BoundExact, 0)
	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 1, tt.Stats.Puts)

	e, ok := tt.Probe(111, 0)
	assert.True(t, ok)
	assert.EqualValues(t, 111, e.Key)
	assert.Equal(t, move, e.Move)
	assert.EqualValues(t, 4, e.Depth)
	assert.Equal(t, Value(111), e.Value)
	assert.Equal(t, BoundExact, e.Bound)
}

func TestProbeMissReportsFalse(t *testing.T) {
	tt := New(4)
	_, ok := tt.Probe(999, 0)
	assert.False(t, ok)
}

func TestProbeAgesEntryDown(t *testing.T) {
	tt := New(4)
	move := NewMove(SqE2, SqE4, Normal, PtNone)
	tt.Put(111, move, 4, Value(111), ValueNone, BoundExact, 0)

	e := &tt.data[tt.index(111)]
	assert.EqualValues(t, 1, e.age)
	tt.Probe(111, 0)
	assert.EqualValues(t, 0, e.age)
	tt.Probe(111, 0)
	assert.EqualValues(t, 0, e.age)
}

// TestMateScoreRoundTripsAcrossPlies verifies spec.md's mate-score
// preservation property: storing a mate score found at ply p and
// retrieving it at ply p returns the original value, and retrieving
// the same stored entry at a different ply q returns the value shifted
// by (p-q), the correct ply-adjusted score (spec.md §4.6/§8).
func TestMateScoreRoundTripsAcrossPlies(t *testing.T) {
	tt := New(4)
	move := NewMove(SqE2, SqE4, Normal, PtNone)

	winning := WinScore - 10
	tt.Put(222, move, 2, winning, ValueNone, BoundExact, 3)
	e, ok := tt.Probe(222, 3)
	assert.True(t, ok)
	assert.Equal(t, winning, e.Value)

	e, ok = tt.Probe(222, 5)
	assert.True(t, ok)
	assert.Equal(t, winning-2, e.Value)

	losing := -WinScore + 10
	tt.Put(333, move, 2, losing, ValueNone, BoundExact, 3)
	e, ok = tt.Probe(333, 3)
	assert.True(t, ok)
	assert.Equal(t, losing, e.Value)

	e, ok = tt.Probe(333, 5)
	assert.True(t, ok)
	assert.Equal(t, losing+2, e.Value)
}

func TestPutFillsEmptySlot(t *testing.T) {
	tt := New(4)
	move := NewMove(SqE2, SqE4, Normal, PtNone)
	tt.Put(111, move, 4, Value(111), ValueNone, BoundExact, 0)
	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 0, tt.Stats.Collisions)
}

func TestPutSameKeyUpdatesInPlace(t *testing.T) {
	tt := New(4)
	move := NewMove(SqE2, SqE4, Normal, PtNone)
	tt.Put(111, move, 4, Value(111), ValueNone, BoundExact, 0)
	tt.Put(111, move, 5, Value(112), ValueNone, BoundLower, 0)

	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 2, tt.Stats.Puts)
	assert.EqualValues(t, 1, tt.Stats.Updates)
	assert.EqualValues(t, 0, tt.Stats.Collisions)

	e, ok := tt.Probe(111, 0)
	assert.True(t, ok)
	assert.EqualValues(t, 5, e.Depth)
	assert.Equal(t, Value(112), e.Value)
	assert.Equal(t, BoundLower, e.Bound)
}

// TestPutSameKeyDepthGuardSkipsShallowerNonMate covers the spec.md:160
// replacement rule: a same-key Put whose stored record searched
// strictly deeper must not be downgraded by a shallower, non-mate
// incoming value.
func TestPutSameKeyDepthGuardSkipsShallowerNonMate(t *testing.T) {
	tt := New(4)
	move := NewMove(SqE2, SqE4, Normal, PtNone)
	tt.Put(111, move, 6, Value(100), ValueNone, BoundExact, 0)
	tt.Put(111, move, 3, Value(1), ValueNone, BoundUpper, 0)

	e, ok := tt.Probe(111, 0)
	assert.True(t, ok)
	assert.EqualValues(t, 6, e.Depth)
	assert.Equal(t, Value(100), e.Value)
	assert.Equal(t, BoundExact, e.Bound)
}

// TestPutSameKeyMateScoreOverridesShallowerDepth covers spec.md:156: a
// mate score always overwrites, even when it searched less deep than
// the record already stored under the same key.
func TestPutSameKeyMateScoreOverridesShallowerDepth(t *testing.T) {
	tt := New(4)
	move := NewMove(SqE2, SqE4, Normal, PtNone)
	tt.Put(111, move, 6, Value(100), ValueNone, BoundExact, 0)

	mate := WinScore - 1
	tt.Put(111, move, 3, mate, ValueNone, BoundExact, 0)

	e, ok := tt.Probe(111, 0)
	assert.True(t, ok)
	assert.EqualValues(t, 3, e.Depth)
	assert.Equal(t, mate, e.Value)
}

// TestPutCollisionRejectsShallowerNonMate keeps the existing collision
// policy: a colliding key searched less deep than the occupant, with a
// non-mate value, does not evict it.
func TestPutCollisionRejectsShallowerNonMate(t *testing.T) {
	tt := New(4)
	move := NewMove(SqE2, SqE4, Normal, PtNone)
	tt.Put(111, move, 6, Value(100), ValueNone, BoundExact, 0)

	collidingKey := zobrist.Key(111 + (tt.indexMask + 1))
	tt.Put(collidingKey, move, 3, Value(1), ValueNone, BoundUpper, 0)

	assert.EqualValues(t, 1, tt.Stats.Collisions)
	assert.EqualValues(t, 0, tt.Stats.Overwrites)
	_, ok := tt.Probe(collidingKey, 0)
	assert.False(t, ok)
	e, ok := tt.Probe(111, 0)
	assert.True(t, ok)
	assert.Equal(t, Value(100), e.Value)
}

// TestPutCollisionMateScoreAlwaysOverwrites covers spec.md:156's
// collision-branch counterpart: a colliding key whose incoming score is
// a mate score evicts the occupant regardless of depth or age.
func TestPutCollisionMateScoreAlwaysOverwrites(t *testing.T) {
	tt := New(4)
	move := NewMove(SqE2, SqE4, Normal, PtNone)
	tt.Put(111, move, 6, Value(100), ValueNone, BoundExact, 0)

	collidingKey := zobrist.Key(111 + (tt.indexMask + 1))
	mate := -WinScore + 4
	tt.Put(collidingKey, move, 1, mate, ValueNone, BoundExact, 0)

	assert.EqualValues(t, 1, tt.Stats.Collisions)
	assert.EqualValues(t, 1, tt.Stats.Overwrites)
	_, ok := tt.Probe(111, 0)
	assert.False(t, ok)
	e, ok := tt.Probe(collidingKey, 0)
	assert.True(t, ok)
	assert.Equal(t, mate, e.Value)
}

func TestClearEmptiesTable(t *testing.T) {
	tt := New(4)
	move := NewMove(SqE2, SqE4, Normal, PtNone)
	tt.Put(111, move, 4, Value(111), ValueNone, BoundExact, 0)
	assert.EqualValues(t, 1, tt.Len())

	tt.Clear()
	assert.EqualValues(t, 0, tt.Len())
	_, ok := tt.Probe(111, 0)
	assert.False(t, ok)
}
