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

// evalConfiguration holds the tunable toggles of the evaluation scaffold.
// The weight values themselves are not config: they live on
// evaluator.Weights and are what the (out of scope) training loop would
// adjust. This struct only toggles which feature groups are active and
// how the trainer, when present, is meant to treat them.
type evalConfiguration struct {
	Tempo int16

	UseMaterial bool

	UseMobility   bool
	MobilityBonus int16

	// UseKingDistance turns on a feature measuring king-to-king
	// distance, useful mainly in endgames.
	UseKingDistance bool

	// UseEmptySquareFeatures enables features that fire on empty squares
	// (e.g. controlled-square counts) rather than only on occupied ones.
	UseEmptySquareFeatures bool

	// UseLinearTraining selects a linear weight update rule for a future
	// trainer; false selects a sigmoid/logistic rule instead. Evaluate()
	// itself does not care, only Train() does.
	UseLinearTraining bool

	// SuperFastMode trims the feature set to the cheapest subset, for use
	// inside quiescence search or time-pressure moves.
	SuperFastMode bool

	UsePawnCache  bool
	PawnCacheSize int
}

// sets defaults which might be overwritten by a config file
func init() {
	Settings.Eval.Tempo = 34

	Settings.Eval.UseMaterial = true

	Settings.Eval.UseMobility = false
	Settings.Eval.MobilityBonus = 5

	Settings.Eval.UseKingDistance = false
	Settings.Eval.UseEmptySquareFeatures = false
	Settings.Eval.UseLinearTraining = true
	Settings.Eval.SuperFastMode = false

	Settings.Eval.UsePawnCache = false
	Settings.Eval.PawnCacheSize = 64
}
