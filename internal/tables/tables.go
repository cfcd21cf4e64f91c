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

// Package tables precomputes the move and attack tables used by the
// mailbox move generator and attack tests: knight jumps, king steps and
// pawn capture targets per square, the square-pair KnightAttack and
// ExposedAttack lookups, and PosData, each square's sliding rays
// (bishop/rook/queen) flattened into (square, skip) lists. Sliding
// moves are still found by walking those rays square by square until
// the board edge or the first occupied square, the way a mailbox engine
// scans rather than looking up a magic-bitboard index.
package tables

import (
	. "github.com/chessgo/engine/internal/types"
)

var (
	// KnightAttacks[sq] lists every square a knight on sq can jump to.
	KnightAttacks [SqLength][]Square

	// KingAttacks[sq] lists every square a king on sq can step to.
	KingAttacks [SqLength][]Square

	// PawnAttacks[color][sq] lists the diagonal capture targets (not the
	// forward push) for a pawn of color on sq.
	PawnAttacks [ColorLength][SqLength][]Square

	// SlidingDirections maps a sliding piece type to the ray directions
	// movegen must walk from a given square.
	SlidingDirections = map[PieceType][]Direction{
		Bishop: {Northeast, Northwest, Southeast, Southwest},
		Rook:   {North, South, East, West},
		Queen:  {North, South, East, West, Northeast, Northwest, Southeast, Southwest},
	}

	// KnightAttack[target][attacker] is the boolean form of KnightAttacks:
	// true when a knight on attacker gives check to target. Used by
	// position.singleAttack's O(1) leaper test in place of a linear scan
	// of KnightAttacks[target].
	KnightAttack [SqLength][SqLength]bool

	// ExposedAttack[king][other] is the ray direction obtained by walking
	// outward from king through other, or DirNone if the two squares
	// share no rank, file or diagonal. position.testExposure consults
	// this to test, in O(ray) rather than a full board rescan, whether
	// vacating other could have opened a sliding attack on king.
	ExposedAttack [SqLength][SqLength]Direction

	// PosData[pt][from] flattens the sliding rays available to a Bishop,
	// Rook or Queen on square from into one slice of (square, skip)
	// pairs: walking the slice in order and jumping to Skip whenever a
	// square is occupied reproduces the usual nested ray-direction loop
	// without the inner per-direction loop, a branch-light representation
	// better suited to a hot move-generation path. Entries for Pawn,
	// Knight and King are left empty; those piece types have no rays.
	PosData [PtLength][SqLength][]PosEntry
)

// PosEntry is one step of a flattened sliding ray. Skip is an index
// into the same PosData[pt][from] slice - not a pointer - to resume at
// when Square turns out to be occupied, per spec's recommendation to
// use indices rather than chase pointers through the table.
type PosEntry struct {
	Square Square
	Skip   int
}

// DirNone marks two squares that share no rank, file or diagonal in
// ExposedAttack.
const DirNone Direction = 0

var allDirections = [8]Direction{North, South, East, West, Northeast, Northwest, Southeast, Southwest}

var knightDeltas = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingDeltas = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

func init() {
	generateLeaperTables()
	generatePawnAttackTable()
	generateKnightAttackTable()
	generateExposedAttackTable()
	for pt := range SlidingDirections {
		generatePosData(pt)
	}
}

func generateLeaperTables() {
	for sq := 0; sq < SqLength; sq++ {
		s := Square(sq)
		f, r := s.File(), s.Rank()
		for _, d := range knightDeltas {
			nf, nr := f+d[0], r+d[1]
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				KnightAttacks[sq] = append(KnightAttacks[sq], SquareOf(nf, nr))
			}
		}
		for _, d := range kingDeltas {
			nf, nr := f+d[0], r+d[1]
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				KingAttacks[sq] = append(KingAttacks[sq], SquareOf(nf, nr))
			}
		}
	}
}

func generatePawnAttackTable() {
	for sq := 0; sq < SqLength; sq++ {
		s := Square(sq)
		f, r := s.File(), s.Rank()
		// White pawns capture toward rank 8, i.e. decreasing rank index.
		if nf, nr := f-1, r-1; nf >= 0 && nr >= 0 {
			PawnAttacks[White][sq] = append(PawnAttacks[White][sq], SquareOf(nf, nr))
		}
		if nf, nr := f+1, r-1; nf < 8 && nr >= 0 {
			PawnAttacks[White][sq] = append(PawnAttacks[White][sq], SquareOf(nf, nr))
		}
		// Black pawns capture toward rank 1, i.e. increasing rank index.
		if nf, nr := f-1, r+1; nf >= 0 && nr < 8 {
			PawnAttacks[Black][sq] = append(PawnAttacks[Black][sq], SquareOf(nf, nr))
		}
		if nf, nr := f+1, r+1; nf < 8 && nr < 8 {
			PawnAttacks[Black][sq] = append(PawnAttacks[Black][sq], SquareOf(nf, nr))
		}
	}
}

func generateKnightAttackTable() {
	for sq := 0; sq < SqLength; sq++ {
		for _, s := range KnightAttacks[sq] {
			KnightAttack[sq][s] = true
		}
	}
}

func generateExposedAttackTable() {
	for sq := 0; sq < SqLength; sq++ {
		from := Square(sq)
		for _, d := range allDirections {
			s := from.To(d)
			for s != SqNone {
				ExposedAttack[from][s] = d
				s = s.To(d)
			}
		}
	}
}

// generatePosData flattens each ray direction available to pt from
// every square into one contiguous slice, recording in Skip where to
// resume once a ray is blocked.
func generatePosData(pt PieceType) {
	dirs := SlidingDirections[pt]
	for sq := 0; sq < SqLength; sq++ {
		rays := make([][]Square, len(dirs))
		for i, d := range dirs {
			s := Square(sq).To(d)
			for s != SqNone {
				rays[i] = append(rays[i], s)
				s = s.To(d)
			}
		}
		offsets := make([]int, len(rays)+1)
		for i, ray := range rays {
			offsets[i+1] = offsets[i] + len(ray)
		}
		entries := make([]PosEntry, 0, offsets[len(rays)])
		for i, ray := range rays {
			skip := offsets[i+1]
			for _, s := range ray {
				entries = append(entries, PosEntry{Square: s, Skip: skip})
			}
		}
		PosData[pt][sq] = entries
	}
}
