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

// Package transpositiontable implements an open-addressed, single-slot
// per bucket transposition table keyed by Zobrist hash. It is not
// thread safe; Resize and Clear must not race with Probe/Put.
//
// Mate scores are stored relative to the node they were found in, not
// the search root, so the same entry stays meaningful whether it is
// probed five plies closer to the root or five plies further from it.
// Probe/Put take the current ply and shift the stored value by it on
// the way in and out (see adjustForStore/adjustForRetrieve).
package transpositiontable

import (
	"math"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/chessgo/engine/internal/logging"
	. "github.com/chessgo/engine/internal/types"
	"github.com/chessgo/engine/internal/util"
	"github.com/chessgo/engine/internal/zobrist"
)

var out = message.NewPrinter(language.German)

// MaxSizeMB bounds how large a single table resize may request.
const MaxSizeMB = 65_536

// entrySize is used only to size the table from a megabyte budget; the
// Go struct itself is not tightly bit-packed like the teacher's 16-byte
// C-style entry, because spec.md's evaluation unit (one pawn = 10000)
// needs a 32-bit value/eval field where the teacher's centipawn scale
// fit in 16 bits.
const entrySize = int(unsafe.Sizeof(Entry{}))

// Bound records whether Entry.Value is exact or a search-window bound.
type Bound uint8

// Bound values.
const (
	BoundNone Bound = iota
	BoundExact
	BoundLower // fail-high / beta cutoff
	BoundUpper // fail-low / alpha cutoff
)

// Entry is one transposition table slot.
type Entry struct {
	Key   zobrist.Key
	Move  Move
	Value Value
	Eval  Value
	Depth int8
	Bound Bound
	age   uint8
}

func (e *Entry) increaseAge() {
	if e.age < math.MaxUint8 {
		e.age++
	}
}

func (e *Entry) decreaseAge() {
	if e.age > 0 {
		e.age--
	}
}

// Stats counts table usage for logging/diagnostics.
type Stats struct {
	Puts       uint64
	Collisions uint64
	Overwrites uint64
	Updates    uint64
	Probes     uint64
	Hits       uint64
	Misses     uint64
}

// Table is the transposition table.
type Table struct {
	log          *logging.Logger
	data         []Entry
	sizeBytes    uint64
	indexMask    uint64
	maxEntries   uint64
	numEntries   uint64
	Stats        Stats
}

// New creates a table sized to approximately sizeMB megabytes, rounded
// down to the nearest power of two number of entries.
func New(sizeMB int) *Table {
	tt := &Table{log: myLogging.GetLog()}
	tt.Resize(sizeMB)
	return tt
}

// Resize reallocates the table for a new size budget, clearing all
// entries. Must not be called concurrently with Probe/Put.
func (tt *Table) Resize(sizeMB int) {
	if sizeMB > MaxSizeMB {
		tt.log.Errorf("requested TT size %d MB reduced to max %d MB", sizeMB, MaxSizeMB)
		sizeMB = MaxSizeMB
	}
	if sizeMB < 0 {
		sizeMB = 0
	}
	bytes := uint64(sizeMB) * 1024 * 1024
	if bytes == 0 {
		tt.maxEntries = 0
	} else {
		tt.maxEntries = 1 << uint64(math.Floor(math.Log2(float64(bytes)/float64(entrySize))))
	}
	tt.indexMask = 0
	if tt.maxEntries > 0 {
		tt.indexMask = tt.maxEntries - 1
	}
	tt.sizeBytes = tt.maxEntries * uint64(entrySize)
	tt.data = make([]Entry, tt.maxEntries)
	tt.numEntries = 0
	tt.Stats = Stats{}
	tt.log.Infof("TT resized to %s MB, %s entries (%d bytes each)",
		out.Sprintf("%d", tt.sizeBytes/(1024*1024)), out.Sprintf("%d", tt.maxEntries), entrySize)
	tt.log.Debug(util.MemStat())
}

// Clear empties the table without resizing it.
func (tt *Table) Clear() {
	tt.data = make([]Entry, tt.maxEntries)
	tt.numEntries = 0
	tt.Stats = Stats{}
}

// Probe looks up key and, if found, returns the stored entry with its
// value adjusted from "distance from this node" back to "distance from
// ply" for a mate score, and true. Probing an entry ages it down by
// one, since a still-useful entry should be overwritten less eagerly.
func (tt *Table) Probe(key zobrist.Key, ply int) (Entry, bool) {
	tt.Stats.Probes++
	if tt.maxEntries == 0 {
		tt.Stats.Misses++
		return Entry{}, false
	}
	e := &tt.data[tt.index(key)]
	if e.Key != key {
		tt.Stats.Misses++
		return Entry{}, false
	}
	e.decreaseAge()
	tt.Stats.Hits++
	out := *e
	out.Value = adjustForRetrieve(out.Value, ply)
	return out, true
}

// Put stores an entry for key. value and eval are in "distance from
// ply" terms and are converted to "distance from this node" before
// storing. An empty slot is always filled; a colliding slot is
// overwritten if the new entry searched deeper (or is the same depth
// but the old entry has aged) or the incoming score is a mate score;
// a same-key slot is updated, keeping the previous move/eval when the
// new ones are not given, but skipping the value/depth/bound update
// when the stored record searched strictly deeper and the incoming
// score is not a mate score - in both branches a mate score always
// overwrites, so mate information is never dropped in favour of a
// plain positional bound.
func (tt *Table) Put(key zobrist.Key, move Move, depth int8, value, eval Value, bound Bound, ply int) {
	if tt.maxEntries == 0 {
		return
	}
	e := &tt.data[tt.index(key)]
	tt.Stats.Puts++
	storeValue := adjustForStore(value, ply)
	isMate := storeValue.IsMateScore()

	switch {
	case e.Key == 0:
		tt.numEntries++
		*e = Entry{Key: key, Move: move.WithoutValue(), Value: storeValue, Eval: eval, Depth: depth, Bound: bound, age: 1}
	case e.Key != key:
		tt.Stats.Collisions++
		if isMate || depth > e.Depth || (depth == e.Depth && e.age > 1) {
			tt.Stats.Overwrites++
			*e = Entry{Key: key, Move: move.WithoutValue(), Value: storeValue, Eval: eval, Depth: depth, Bound: bound, age: 1}
		}
	default:
		tt.Stats.Updates++
		if move != MoveNone {
			e.Move = move.WithoutValue()
		}
		if eval != ValueNone {
			e.Eval = eval
		}
		if value != ValueNone && (isMate || depth >= e.Depth) {
			e.Value = storeValue
			e.Depth = depth
			e.Bound = bound
			e.age = 1
		}
	}
}

// Hashfull returns table occupancy in permille, as UCI's "hashfull".
func (tt *Table) Hashfull() int {
	if tt.maxEntries == 0 {
		return 0
	}
	return int((1000 * tt.numEntries) / tt.maxEntries)
}

// Len returns the number of occupied slots.
func (tt *Table) Len() uint64 { return tt.numEntries }

// AgeAll increments the age of every occupied entry, called once per
// think() so stale entries from prior moves are replaced more readily.
func (tt *Table) AgeAll() {
	for i := range tt.data {
		if tt.data[i].Key != 0 {
			tt.data[i].increaseAge()
		}
	}
}

func (tt *Table) index(key zobrist.Key) uint64 {
	return uint64(key) & tt.indexMask
}

// adjustForStore converts a mate score expressed as "plies from the
// search root" into "plies from this node", so the same entry is
// correct however far from the root it is later probed.
func adjustForStore(v Value, ply int) Value {
	if !v.IsMateScore() {
		return v
	}
	if v > 0 {
		return v + Value(ply)
	}
	return v - Value(ply)
}

// adjustForRetrieve is the inverse of adjustForStore.
func adjustForRetrieve(v Value, ply int) Value {
	if !v.IsMateScore() {
		return v
	}
	if v > 0 {
		return v - Value(ply)
	}
	return v + Value(ply)
}
