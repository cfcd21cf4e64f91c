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

package evaluator

import (
	"math"

	. "github.com/chessgo/engine/internal/types"
)

// sigmoidScale maps a raw Value score onto a [0,1] win probability. 4000
// Value units is 0.4 of a pawn (PawnValue = 10000); a score of that size
// moves the output from 0.5 to about 0.73.
const sigmoidScale = 4000.0

func sigmoid(v float64) float64 {
	return 1 / (1 + math.Exp(-v/sigmoidScale))
}

// Train nudges w's singular weights toward predicting desiredOutput (a
// game result in [0,1], White's perspective) for the position most
// recently passed to Evaluate against this same Weights value, and
// reports the squared error before the update (spec.md §6.2's
// train(desiredOutput, learningRate) -> squaredError contract).
//
// Material and piece-square values are not touched here: Evaluate
// records only the singular-weight activations needed for this update
// in w.last, not a full per-square feature vector.
func Train(w *Weights, desiredOutput, learningRate float64) float64 {
	err := desiredOutput - w.lastOutput
	squaredError := err * err

	grad := learningRate * err
	if !w.UseLinearTraining {
		grad *= w.lastOutput * (1 - w.lastOutput)
	}

	w.Tempo += Value(grad * w.last.tempo)
	w.MobilityBonus += Value(grad * w.last.mobility)
	w.BishopPairBonus += Value(grad * w.last.bishopPair)
	if w.UseEmptySquareFeatures {
		w.SpaceBonus += Value(grad * w.last.space)
	}
	if w.UseKingDistance && w.last.kingDistanceSign != 0 {
		idx := w.last.kingDistanceIndex
		w.KingDistanceBonus[idx] += Value(grad * w.last.kingDistanceSign)
	}

	return squaredError
}
