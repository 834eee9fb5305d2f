/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	golog "github.com/op/go-logging"
	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/chessbot/internal/board"
	"github.com/frankkopp/chessbot/internal/config"
	"github.com/frankkopp/chessbot/internal/driver"
	"github.com/frankkopp/chessbot/internal/engine"
	"github.com/frankkopp/chessbot/internal/logging"
	"github.com/frankkopp/chessbot/internal/orchestrator"
)

var out = message.NewPrinter(language.English)

const version = "0.1.0"

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config/config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	logPath := flag.String("logpath", "", "path where to write log files to")
	cpuProfile := flag.Bool("cpuprofile", false, "enable CPU profiling for this run")
	noEngine := flag.Bool("noengine", false, "run without starting the external engine subprocess (moves for both sides are entered manually)")
	fen := flag.String("fen", "", "start position as FEN; defaults to the standard start position")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	// set config file path before config.Setup() is called, otherwise the
	// default is used.
	config.ConfFile = *configFile
	config.Setup()

	if *logPath != "" {
		config.Settings.Log.LogPath = *logPath
	}
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}

	// resetting log level on the standard logger - required as most packages
	// hold the standard logger as a global var, set up before main() runs
	// with the package default level.
	log := logging.GetLog()

	var b *board.Board
	if *fen != "" {
		var err error
		b, err = board.NewBoardFen(*fen)
		if err != nil {
			fmt.Println("invalid -fen:", err)
			os.Exit(1)
		}
	} else {
		b = board.NewBoard()
	}

	drv := driver.NewLoggingDriver()
	orch := orchestrator.New(b, drv)

	var eng *engine.Client
	if !*noEngine {
		var err error
		eng, err = engine.NewClient(
			config.Settings.Engine.BinaryPath,
			time.Duration(config.Settings.Engine.ReadyTimeoutMs)*time.Millisecond,
		)
		if err != nil {
			log.Warningf("could not start engine subprocess, continuing without it: %v", err)
			eng = nil
		} else {
			defer eng.Close()
		}
	}

	runLoop(b, orch, eng)
}

// runLoop reads one UCI move per line from stdin and plays it. The line
// "engine" instead asks the external engine subprocess for the best move
// in the current position and plays that. "home" drives the virtual head
// back to motor.Home. "quit" ends the loop. The UI itself (game setup,
// start/pause) is out of scope; this is the minimal driver loop needed to
// exercise a round of play from a terminal.
func runLoop(b *board.Board, orch *orchestrator.Orchestrator, eng *engine.Client) {
	out.Println("chessbot motion planning core -", version)
	out.Println(b.StringFen())
	out.Println(`enter a UCI move (e.g. "e2e4"), "engine", "home", or "quit"`)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch line {
		case "quit", "exit":
			return
		case "home":
			if err := orch.Home(); err != nil {
				out.Println("home failed:", err)
			}
		case "engine":
			move, ok := askEngine(b, eng)
			if ok {
				playMove(b, orch, move)
			}
		default:
			playMove(b, orch, line)
		}
	}
}

// askEngine requests the best move for the current position from the
// external engine subprocess. The returned bool reports whether a move was
// produced to play; it is false on stalemate, checkmate, an unavailable
// engine, or an engine failure, all of which are already reported to the
// user.
func askEngine(b *board.Board, eng *engine.Client) (string, bool) {
	if eng == nil {
		out.Println("no engine subprocess available")
		return "", false
	}
	thinkTime := time.Duration(config.Settings.Engine.ThinkTimeMs) * time.Millisecond
	res, err := eng.BestMove(b.StringFen(), config.Settings.Engine.Elo, thinkTime)
	if err != nil {
		out.Println("engine failed:", err)
		return "", false
	}
	if res.Stalemate {
		out.Println("engine reports stalemate")
		return "", false
	}
	if res.Mate {
		out.Println("engine reports checkmate")
		return "", false
	}
	out.Println("engine plays", res.Move)
	return res.Move, true
}

func playMove(b *board.Board, orch *orchestrator.Orchestrator, uci string) {
	instr, err := orch.Round(uci)
	if err != nil {
		out.Println("round failed:", err)
		return
	}
	out.Printf("%d motor instructions executed\n", instr.Len())
	out.Println(b.StringFen())
}

func printVersionInfo() {
	out.Printf("chessbot %s\n", version)
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
