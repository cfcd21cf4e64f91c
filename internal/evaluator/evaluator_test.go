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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chessgo/engine/internal/position"
	. "github.com/chessgo/engine/internal/types"
)

func TestEvaluateStartPositionIsSymmetric(t *testing.T) {
	p := position.NewPosition()
	w := DefaultWeights()
	assert.EqualValues(t, w.Tempo, Evaluate(p, w))
}

func TestEvaluateFavorsMaterialAdvantage(t *testing.T) {
	p, err := position.NewPositionFen("4k3/8/8/8/8/8/8/4KQ2 w - -")
	assert.NoError(t, err)
	w := DefaultWeights()
	assert.True(t, Evaluate(p, w) > w.Material[Queen])
}

func TestEvaluateSignFlipsWithSideToMove(t *testing.T) {
	white, err := position.NewPositionFen("4k3/8/8/8/8/8/8/4KQ2 w - -")
	assert.NoError(t, err)
	black, err := position.NewPositionFen("4k3/8/8/8/8/8/8/4KQ2 b - -")
	assert.NoError(t, err)
	w := DefaultWeights()
	assert.EqualValues(t, Evaluate(white, w), -Evaluate(black, w))
}

func TestEvaluateInsufficientMaterialIsDraw(t *testing.T) {
	p, err := position.NewPositionFen("4k3/8/8/8/8/8/8/4K3 w - -")
	assert.NoError(t, err)
	w := DefaultWeights()
	assert.EqualValues(t, DrawScore, Evaluate(p, w))
}

func TestTrainReducesSquaredErrorOnRepeat(t *testing.T) {
	p := position.NewPosition()
	w := DefaultWeights()
	w.UseLinearTraining = true

	Evaluate(p, w)
	first := Train(w, 0.9, 0.1)

	Evaluate(p, w)
	second := Train(w, 0.9, 0.1)

	assert.True(t, second <= first)
}

func TestBishopPairBonusAppliesAtTwoBishops(t *testing.T) {
	one, err := position.NewPositionFen("4k3/8/8/8/8/8/4B3/4K3 w - -")
	assert.NoError(t, err)
	two, err := position.NewPositionFen("4k3/8/8/8/8/2B5/4B3/4K3 w - -")
	assert.NoError(t, err)
	w := DefaultWeights()

	diffOne := Evaluate(one, w) - w.Material[Bishop] - w.Tempo
	diffTwo := Evaluate(two, w) - 2*w.Material[Bishop] - w.Tempo
	assert.True(t, diffTwo-diffOne >= w.BishopPairBonus-200)
}
