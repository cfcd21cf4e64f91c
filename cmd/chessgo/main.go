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

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chessgo/engine/internal/config"
	"github.com/chessgo/engine/internal/engine"
	"github.com/chessgo/engine/internal/logging"
	"github.com/chessgo/engine/internal/movegen"
	"github.com/chessgo/engine/internal/position"
	"github.com/chessgo/engine/internal/util"
)

var out = message.NewPrinter(language.German)

// This core has no UCI driver and no REPL (spec.md §1's non-goals), so
// main is a thin bench/demo binary: run perft to a given depth, or
// think about one position and print the chosen move.
func main() {
	versionInfo := flag.Bool("version", false, "prints build environment info and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile (cpu.pprof) of the run to the working directory")
	perftDepth := flag.Int("perft", 0, "run perft to the given depth on -fen and print per-depth node counts")
	fen := flag.String("fen", position.StartFen, "FEN of the position used by -perft and -think")
	think := flag.Bool("think", false, "search -fen with the given -depth/-movetime and print the chosen move")
	depth := flag.Int("depth", 6, "max search depth for -think")
	moveTimeMs := flag.Int("movetime", 0, "max search time in milliseconds for -think (0 = depth only)")
	showThinking := flag.Bool("showthinking", false, "log each iteration's depth/score/move/nodes while -think runs")
	selfPlay := flag.Int("selfplay", 0, "play the engine against itself from -fen for the given number of plies and print each move")
	flag.Parse()

	if *versionInfo {
		printEnvironmentInfo()
		return
	}

	config.ConfFile = *configFile
	config.Setup()
	logging.GetLog()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	switch {
	case *perftDepth > 0:
		runPerft(*fen, *perftDepth)
	case *think:
		runThink(*fen, *depth, *moveTimeMs, *showThinking)
	case *selfPlay > 0:
		runSelfPlay(*fen, *selfPlay, *depth, *moveTimeMs)
	default:
		flag.Usage()
	}
}

func runPerft(fen string, maxDepth int) {
	pos, err := position.NewPositionFen(fen)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	for d := 1; d <= maxDepth; d++ {
		start := time.Now()
		stats := movegen.Perft(pos, d)
		elapsed := time.Since(start)
		out.Printf("depth %d: nodes %d captures %d ep %d castles %d promotions %d checks %d mates %d (%s)\n",
			d, stats.Nodes, stats.Captures, stats.EnPassant, stats.Castles, stats.Promotions, stats.Checks, stats.CheckMates, elapsed)
	}
}

func runThink(fen string, maxDepth, moveTimeMs int, showThinking bool) {
	e := engine.New()
	if err := e.SetPosition(fen); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	moveTimeSeconds := float64(moveTimeMs) / 1000
	m := e.Think(maxDepth, moveTimeSeconds, showThinking, 0, nil)
	out.Printf("bestmove %s\n", m.UCI())
}

// runSelfPlay is a smoke test: have the engine play both sides from fen
// for up to plies half-moves, stopping early on checkmate, stalemate or
// a draw condition, and report a nodes-per-second summary at the end.
func runSelfPlay(fen string, plies, maxDepth, moveTimeMs int) {
	e := engine.New()
	if err := e.SetPosition(fen); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	moveTimeSeconds := float64(moveTimeMs) / 1000

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < plies; i++ {
		if e.IsCheckmate() {
			out.Printf("checkmate after %d plies\n", i)
			break
		}
		if e.IsStalemate() {
			out.Printf("stalemate after %d plies\n", i)
			break
		}
		if e.IsDraw() {
			out.Printf("draw after %d plies\n", i)
			break
		}
		m := e.Think(maxDepth, moveTimeSeconds, false, 0, nil)
		stats := e.Stats()
		totalNodes += stats.Nodes + stats.QNodes
		if !e.MakeMove(m) {
			out.Printf("no legal move after %d plies\n", i)
			break
		}
		out.Printf("%d. %s\n", i+1, m.UCI())
	}
	elapsed := time.Since(start)
	out.Println()
	out.Printf("nps: %d\n", util.Nps(totalNodes, elapsed))
	out.Println(util.MemStat())
}

func printEnvironmentInfo() {
	out.Println("chessgo")
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
