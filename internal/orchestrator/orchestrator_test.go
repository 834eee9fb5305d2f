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

package orchestrator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/chessbot/internal/board"
	"github.com/frankkopp/chessbot/internal/coord"
	"github.com/frankkopp/chessbot/internal/driver"
	"github.com/frankkopp/chessbot/internal/motor"
	"github.com/frankkopp/chessbot/internal/types"
)

func mustTestSquare(s string) types.Square {
	sq, ok := types.SquareFromString(s)
	if !ok {
		panic("bad test square " + s)
	}
	return sq
}

type countingDriver struct {
	calls int
}

func (d *countingDriver) MoveSteps(axis driver.Axis, steps uint32, dir bool, speed motor.Speed) error {
	d.calls++
	return nil
}

func (d *countingDriver) Diagonal(steps uint32, xdir, ydir bool, speed motor.Speed) error {
	d.calls++
	return nil
}

func (d *countingDriver) Magnet(on bool) error {
	d.calls++
	return nil
}

func (d *countingDriver) Enable() error {
	d.calls++
	return nil
}

func (d *countingDriver) Disable() error {
	d.calls++
	return nil
}

func TestRoundExecutesAndAdvancesHead(t *testing.T) {
	b := board.NewBoard()
	d := &countingDriver{}
	o := New(b, d)

	instr, err := o.Round("e2e4")
	assert.NoError(t, err)
	assert.NotZero(t, instr.Len())
	assert.NotZero(t, d.calls)
	assert.Equal(t, types.MakePiece(types.White, types.Pawn), b.PieceAtSquare(mustTestSquare("e4")))
}

func TestRoundRollsBackOnValidationFailure(t *testing.T) {
	b := board.NewBoard()
	d := &countingDriver{}
	o := New(b, d)
	before := b.StringFen()

	_, err := o.Round("e2e5")
	assert.Error(t, err)
	assert.Equal(t, before, b.StringFen())
	assert.Zero(t, d.calls)
}

func TestRoundRejectsWhileBusy(t *testing.T) {
	b := board.NewBoard()
	d := &countingDriver{}
	o := New(b, d)
	assert.True(t, o.running.TryAcquire(1))

	_, err := o.Round("e2e4")
	assert.True(t, errors.Is(err, ErrBusy))
	o.running.Release(1)
}

func TestCancelSkipsNextRound(t *testing.T) {
	b := board.NewBoard()
	d := &countingDriver{}
	o := New(b, d)
	o.Cancel()

	before := b.StringFen()
	_, err := o.Round("e2e4")
	assert.True(t, errors.Is(err, ErrCancelled))
	assert.Equal(t, before, b.StringFen())

	_, err = o.Round("e2e4")
	assert.NoError(t, err)
}

func TestRoundExecutesCastling(t *testing.T) {
	b, err := board.NewBoardFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	d := &countingDriver{}
	o := New(b, d)

	instr, err := o.Round("e1g1")
	assert.NoError(t, err)
	assert.NotZero(t, instr.Len())
	assert.NotZero(t, d.calls)
	assert.Equal(t, types.MakePiece(types.White, types.King), b.PieceAtSquare(mustTestSquare("g1")))
	assert.Equal(t, types.MakePiece(types.White, types.Rook), b.PieceAtSquare(mustTestSquare("f1")))
	assert.True(t, b.PieceAtSquare(mustTestSquare("e1")).IsEmpty())
	assert.True(t, b.PieceAtSquare(mustTestSquare("h1")).IsEmpty())

	origin := coord.FieldFromUsize(coord.NewFieldUsize(0, 0))
	want := coord.Field{
		X: coord.FieldFromUsize(o.cell).X - origin.X,
		Y: coord.FieldFromUsize(o.cell).Y - origin.Y,
	}
	got := o.pos.Field()
	assert.InDelta(t, want.X, got.X, 0.01)
	assert.InDelta(t, want.Y, got.Y, 0.01)
}

func TestHomeReturnsHeadToOrigin(t *testing.T) {
	b := board.NewBoard()
	d := &countingDriver{}
	o := New(b, d)

	_, err := o.Round("e2e4")
	assert.NoError(t, err)
	assert.NotEqual(t, motor.Home, o.pos)

	err = o.Home()
	assert.NoError(t, err)
	assert.Equal(t, motor.Home, o.pos)
}
