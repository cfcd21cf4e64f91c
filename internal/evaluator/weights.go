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

// Package evaluator scores a position from the side-to-move's perspective
// (spec.md §6.2). Everything Evaluate reads comes from a Weights value
// rather than package globals, so a caller can run a production weight
// set and a being-trained weight set side by side.
package evaluator

import (
	"github.com/chessgo/engine/internal/config"
	. "github.com/chessgo/engine/internal/types"
)

// Weights holds every tunable parameter Evaluate reads plus the
// feature-group toggles mirrored from config.Settings.Eval. The four
// booleans are copied rather than read from the global config so a
// trainer can flip them on one Weights value without disturbing a
// concurrently used production evaluator.
type Weights struct {
	Material [PtLength]Value
	PsqMid   [PtLength][SqLength]Value
	PsqEnd   [PtLength][SqLength]Value

	Tempo             Value
	MobilityBonus     Value
	BishopPairBonus   Value
	SpaceBonus        Value
	KingDistanceBonus [8]Value

	// UseKingDistance turns on a feature rewarding the side ahead in
	// material for driving its king toward the opponent's, useful mainly
	// in winning endgames.
	UseKingDistance bool

	// UseEmptySquareFeatures enables features that fire on empty squares
	// (space controlled behind the pawn front) rather than only on
	// occupied ones.
	UseEmptySquareFeatures bool

	// UseLinearTraining selects a linear weight update rule in Train;
	// false selects a sigmoid/logistic rule instead. Evaluate itself
	// does not care, only Train does.
	UseLinearTraining bool

	// SuperFastMode trims evaluation to material, PSQT and tempo only,
	// for use inside quiescence search where per-node cost matters more
	// than accuracy (spec.md §4.8).
	SuperFastMode bool

	// last holds the per-feature activations (white minus black) from
	// the most recent Evaluate call against this Weights value, read by
	// Train to compute its gradient.
	last features

	// lastOutput is the squashed [0,1] win-probability Evaluate derived
	// from its raw score on the same call, consumed by Train.
	lastOutput float64
}

// features records, for the most recently evaluated position, the
// White-minus-Black activation of every singular (non piece-square)
// weight Train is willing to adjust. Material and piece-square values
// are left out: with one weight per (piece, square) they would need far
// more training data per update than a squared-error hook like this one
// is meant to demonstrate.
type features struct {
	tempo             float64
	mobility          float64
	bishopPair        float64
	space             float64
	kingDistanceIndex int
	kingDistanceSign  float64
}

// DefaultWeights returns a Weights value seeded from the material scale
// fixed by spec.md §6.2 (one pawn = PawnValue), the piece-square tables
// below, and the singular bonuses config.Settings.Eval starts with. The
// feature toggles are copied from config.Settings.Eval at call time.
func DefaultWeights() *Weights {
	w := &Weights{
		Tempo:           Value(config.Settings.Eval.Tempo) * 100,
		MobilityBonus:   Value(config.Settings.Eval.MobilityBonus) * 100,
		BishopPairBonus: 2000,
		SpaceBonus:      100,

		UseKingDistance:        config.Settings.Eval.UseKingDistance,
		UseEmptySquareFeatures: config.Settings.Eval.UseEmptySquareFeatures,
		UseLinearTraining:      config.Settings.Eval.UseLinearTraining,
		SuperFastMode:          config.Settings.Eval.SuperFastMode,
	}
	for pt := Pawn; pt <= King; pt++ {
		w.Material[pt] = Value(pt.ValueOf())
	}
	for d := 0; d < 8; d++ {
		w.KingDistanceBonus[d] = Value(70-10*d) * 10
	}
	copy(w.PsqMid[Pawn][:], pawnMidGame[:])
	copy(w.PsqEnd[Pawn][:], pawnEndGame[:])
	copy(w.PsqMid[Knight][:], knightMidGame[:])
	copy(w.PsqEnd[Knight][:], knightEndGame[:])
	copy(w.PsqMid[Bishop][:], bishopMidGame[:])
	copy(w.PsqEnd[Bishop][:], bishopEndGame[:])
	copy(w.PsqMid[Rook][:], rookMidGame[:])
	copy(w.PsqEnd[Rook][:], rookEndGame[:])
	copy(w.PsqMid[Queen][:], queenMidGame[:])
	copy(w.PsqEnd[Queen][:], queenEndGame[:])
	copy(w.PsqMid[King][:], kingMidGame[:])
	copy(w.PsqEnd[King][:], kingEndGame[:])
	return w
}
