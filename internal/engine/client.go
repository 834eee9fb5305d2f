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

// Package engine drives an external, off-the-shelf chess engine as a
// subprocess over the UCI-like protocol described in spec.md §6: isready/
// readyok, position fen, go movetime, quit. Unlike the teacher's UciHandler,
// which is the engine side of the protocol answering a GUI, Client is the
// GUI side: it writes commands to and parses responses from a child
// process's stdin/stdout pipes.
package engine

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/op/go-logging"

	myLogging "github.com/frankkopp/chessbot/internal/logging"
)

// Result is the outcome of a BestMove call (spec.md §6).
type Result struct {
	Move      string // UCI move, 4 or 5 characters; empty when Stalemate or Mate
	Stalemate bool
	Mate      bool
}

// defaultReadyTimeout bounds how long Client waits for "readyok" or
// "bestmove" before reporting ErrEngineIO, when the caller passes zero.
const defaultReadyTimeout = 2 * time.Second

// Client drives one external engine subprocess. Input/output can be
// replaced by constructing with newClient directly (test-only), mirroring
// the teacher's InIo/OutIo swap pattern.
type Client struct {
	InIo         *bufio.Writer
	OutIo        *bufio.Scanner
	readyTimeout time.Duration
	cmd          *exec.Cmd
	engineLog    *logging.Logger
}

// NewClient starts binaryPath as a subprocess and wires its stdin/stdout
// as the protocol pipe. readyTimeout bounds every wait for engine output;
// zero or negative falls back to defaultReadyTimeout.
func NewClient(binaryPath string, readyTimeout time.Duration) (*Client, error) {
	cmd := exec.Command(binaryPath)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: stdin pipe: %v", ErrEngineIO, err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: stdout pipe: %v", ErrEngineIO, err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: start %s: %v", ErrEngineIO, binaryPath, err)
	}
	c := newClient(stdin, stdout, readyTimeout)
	c.cmd = cmd
	return c, nil
}

func newClient(in io.Writer, out io.Reader, readyTimeout time.Duration) *Client {
	if readyTimeout <= 0 {
		readyTimeout = defaultReadyTimeout
	}
	return &Client{
		InIo:         bufio.NewWriter(in),
		OutIo:        bufio.NewScanner(out),
		readyTimeout: readyTimeout,
		engineLog:    myLogging.GetEngineLog(),
	}
}

// BestMove runs one full protocol round for position fen at the given
// strength (elo <= 0 leaves the engine's default strength untouched) and
// thinking time, returning the engine's choice.
func (c *Client) BestMove(fen string, elo int, thinkTime time.Duration) (Result, error) {
	if err := c.setStrength(elo); err != nil {
		return Result{}, err
	}
	if err := c.waitReady(); err != nil {
		return Result{}, err
	}
	if err := c.send(fmt.Sprintf("position fen %s", fen)); err != nil {
		return Result{}, err
	}
	moveTimeMs := thinkTime.Milliseconds()
	if err := c.send(fmt.Sprintf("go movetime %d", moveTimeMs)); err != nil {
		return Result{}, err
	}
	time.Sleep(thinkTime + 100*time.Millisecond)
	return c.readBestMove()
}

// Close sends "quit" and waits for the subprocess to exit. Safe to call on
// a Client built with newClient (no subprocess): it only sends "quit".
func (c *Client) Close() error {
	err := c.send("quit")
	if c.cmd != nil {
		_ = c.cmd.Wait()
	}
	return err
}

func (c *Client) setStrength(elo int) error {
	if elo <= 0 {
		return nil
	}
	if err := c.send("setoption name UCI_LimitStrength value true"); err != nil {
		return err
	}
	return c.send(fmt.Sprintf("setoption name UCI_Elo value %d", elo))
}

func (c *Client) waitReady() error {
	if err := c.send("isready"); err != nil {
		return err
	}
	for {
		line, err := c.scanLine(c.readyTimeout)
		if err != nil {
			return err
		}
		if line == "readyok" {
			return nil
		}
	}
}

func (c *Client) readBestMove() (Result, error) {
	lastInfo := ""
	for {
		line, err := c.scanLine(c.readyTimeout)
		if err != nil {
			return Result{}, err
		}
		if strings.HasPrefix(line, "bestmove") {
			return parseBestMove(line, lastInfo)
		}
		if strings.HasPrefix(line, "info") {
			lastInfo = line
		}
	}
}

func parseBestMove(line, lastInfo string) (Result, error) {
	tokens := strings.Fields(line)
	if len(tokens) < 2 {
		return Result{}, fmt.Errorf("%w: malformed bestmove line %q", ErrEngineIO, line)
	}
	move := tokens[1]
	if move != "(none)" {
		return Result{Move: move}, nil
	}
	infoTokens := strings.Fields(lastInfo)
	if len(infoTokens) < 2 {
		return Result{}, fmt.Errorf("%w: bestmove (none) with no preceding info line", ErrEngineIO)
	}
	switch infoTokens[len(infoTokens)-2] {
	case "mate":
		return Result{Mate: true}, nil
	case "cp":
		return Result{Stalemate: true}, nil
	default:
		return Result{}, fmt.Errorf("%w: bestmove (none) with unrecognised info line %q", ErrEngineIO, lastInfo)
	}
}

func (c *Client) send(s string) error {
	c.engineLog.Infof(">> %s", s)
	if _, err := c.InIo.WriteString(s + "\n"); err != nil {
		return fmt.Errorf("%w: write %q: %v", ErrEngineIO, s, err)
	}
	if err := c.InIo.Flush(); err != nil {
		return fmt.Errorf("%w: flush %q: %v", ErrEngineIO, s, err)
	}
	return nil
}

type scanResult struct {
	line string
	ok   bool
}

// scanLine reads the next line from OutIo, bounded by timeout. The
// subprocess pipe only closes on process exit, so a blocked Scan() past
// the deadline is abandoned rather than joined.
func (c *Client) scanLine(timeout time.Duration) (string, error) {
	ch := make(chan scanResult, 1)
	go func() {
		ok := c.OutIo.Scan()
		ch <- scanResult{c.OutIo.Text(), ok}
	}()
	select {
	case r := <-ch:
		if !r.ok {
			if err := c.OutIo.Err(); err != nil {
				return "", fmt.Errorf("%w: read: %v", ErrEngineIO, err)
			}
			return "", fmt.Errorf("%w: engine stdout closed", ErrEngineIO)
		}
		c.engineLog.Infof("<< %s", r.line)
		return r.line, nil
	case <-time.After(timeout):
		return "", fmt.Errorf("%w: timed out waiting for engine output", ErrEngineIO)
	}
}
