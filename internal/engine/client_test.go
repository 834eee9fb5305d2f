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

package engine

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newScriptedClient(t *testing.T, script string) (*Client, *bytes.Buffer) {
	t.Helper()
	var sent bytes.Buffer
	c := newClient(&sent, strings.NewReader(script), 200*time.Millisecond)
	return c, &sent
}

func TestBestMoveReturnsMove(t *testing.T) {
	c, sent := newScriptedClient(t, "readyok\ninfo depth 1 score cp 20\nbestmove e2e4\n")
	result, err := c.BestMove("startpos", 0, time.Millisecond)
	assert.NoError(t, err)
	assert.Equal(t, "e2e4", result.Move)
	assert.False(t, result.Stalemate)
	assert.False(t, result.Mate)
	assert.Contains(t, sent.String(), "isready")
	assert.Contains(t, sent.String(), "position fen startpos")
	assert.Contains(t, sent.String(), "go movetime")
}

func TestBestMovePromotionMove(t *testing.T) {
	c, _ := newScriptedClient(t, "readyok\nbestmove e7e8q\n")
	result, err := c.BestMove("startpos", 0, time.Millisecond)
	assert.NoError(t, err)
	assert.Equal(t, "e7e8q", result.Move)
}

func TestBestMoveDetectsMate(t *testing.T) {
	c, _ := newScriptedClient(t, "readyok\ninfo depth 1 score mate 0\nbestmove (none)\n")
	result, err := c.BestMove("startpos", 0, time.Millisecond)
	assert.NoError(t, err)
	assert.True(t, result.Mate)
	assert.False(t, result.Stalemate)
	assert.Empty(t, result.Move)
}

func TestBestMoveDetectsStalemate(t *testing.T) {
	c, _ := newScriptedClient(t, "readyok\ninfo depth 1 score cp 0\nbestmove (none)\n")
	result, err := c.BestMove("startpos", 0, time.Millisecond)
	assert.NoError(t, err)
	assert.True(t, result.Stalemate)
	assert.False(t, result.Mate)
}

func TestBestMoveSendsStrengthOptionsWhenEloSet(t *testing.T) {
	c, sent := newScriptedClient(t, "readyok\nbestmove e2e4\n")
	_, err := c.BestMove("startpos", 1200, time.Millisecond)
	assert.NoError(t, err)
	assert.Contains(t, sent.String(), "setoption name UCI_LimitStrength value true")
	assert.Contains(t, sent.String(), "setoption name UCI_Elo value 1200")
}

func TestBestMoveOmitsStrengthOptionsWhenEloZero(t *testing.T) {
	c, sent := newScriptedClient(t, "readyok\nbestmove e2e4\n")
	_, err := c.BestMove("startpos", 0, time.Millisecond)
	assert.NoError(t, err)
	assert.NotContains(t, sent.String(), "UCI_Elo")
}

func TestBestMoveFailsWhenEngineOutputCloses(t *testing.T) {
	c, _ := newScriptedClient(t, "")
	_, err := c.BestMove("startpos", 0, time.Millisecond)
	assert.True(t, errors.Is(err, ErrEngineIO))
}

func TestBestMoveRejectsMalformedBestmoveLine(t *testing.T) {
	c, _ := newScriptedClient(t, "readyok\nbestmove\n")
	_, err := c.BestMove("startpos", 0, time.Millisecond)
	assert.True(t, errors.Is(err, ErrEngineIO))
}

func TestCloseSendsQuit(t *testing.T) {
	c, sent := newScriptedClient(t, "")
	err := c.Close()
	assert.NoError(t, err)
	assert.Contains(t, sent.String(), "quit")
}
