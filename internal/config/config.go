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

// Package config holds globally available configuration variables, set
// either from defaults, a TOML config file, or overridden programmatically
// before Setup is called.
package config

import (
	"log"

	"github.com/BurntSushi/toml"

	"github.com/chessgo/engine/internal/util"
)

// globally available config values.
var (
	// ConfFile holds the path to the config file to load, relative to the
	// working directory unless absolute.
	ConfFile = "./config.toml"

	// LogLevel is the standard log level (op-go-logging numeric level).
	LogLevel = 4 // INFO

	// SearchLogLevel is the log level for the search hot path, kept
	// separate so it can be silenced without losing standard logging.
	SearchLogLevel = 2 // WARNING

	// TestLogLevel is the log level used by _test.go files.
	TestLogLevel = 4

	// Settings is the global configuration, populated by Setup.
	Settings conf

	initialized = false
)

type conf struct {
	Engine engineConfiguration
	Search searchConfiguration
	Eval   evalConfiguration
}

// Setup reads the configuration file (if present) and applies it on top
// of the defaults set by each sub-config's init(). Idempotent - a second
// call is a no-op.
func Setup() {
	if initialized {
		return
	}
	if path, err := util.ResolveFile(ConfFile); err == nil {
		if _, err := toml.DecodeFile(path, &Settings); err != nil {
			log.Println("config file found but could not be parsed, using defaults:", err)
		}
	} else {
		log.Println("no config file found, using defaults:", err)
	}
	initialized = true
}
