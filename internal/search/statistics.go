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

package search

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/chessgo/engine/internal/types"
)

var out = message.NewPrinter(language.German)

// Statistics are counters kept alongside a search for diagnostics; none
// of them feed back into the search result. Reduced from the teacher's
// statistics.go to the subset this core's pruning/extension set (no
// SEE, mate-distance pruning, razoring, late-move pruning/reductions -
// none of those are named by this core) actually produces.
type Statistics struct {
	Nodes  uint64
	QNodes uint64

	BetaCuts    uint64
	BetaCuts1st uint64

	TTHits   uint64
	TTMisses uint64
	TTCuts   uint64

	NullMoveCuts     uint64
	AspirationWidens uint64
	PVSResearches    uint64
	IIDSearches      uint64

	Checkmates uint64
	Stalemates uint64

	CurrentIterationDepth int
	CurrentBestRootMove   Move
	CurrentBestRootMoveVal Value
}

func (s *Statistics) String() string {
	return out.Sprintf("%+v", *s)
}
