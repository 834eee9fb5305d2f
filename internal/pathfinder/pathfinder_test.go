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

package pathfinder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/chessbot/internal/bitlist"
	"github.com/frankkopp/chessbot/internal/board"
	"github.com/frankkopp/chessbot/internal/coord"
	"github.com/frankkopp/chessbot/internal/motor"
)

func TestPlanOrthogonalSubMove(t *testing.T) {
	bl := emptyBitList()
	subs := []board.PhysicalSubMove{
		{Kind: board.NormalMove, From: coord.NewFieldUsize(6, 6), To: coord.NewFieldUsize(4, 6)},
	}
	instr, endCell, _, err := Plan(subs, bl, coord.NewFieldUsize(6, 6), motor.Home)
	assert.NoError(t, err)
	assert.Equal(t, coord.NewFieldUsize(4, 6), endCell)
	assert.Equal(t, 1, instr.Len())
	assert.Equal(t, motor.StraightY, instr.At(0).Kind)
}

func TestPlanPrependsRepositionWhenHeadElsewhere(t *testing.T) {
	bl := emptyBitList()
	subs := []board.PhysicalSubMove{
		{Kind: board.NormalMove, From: coord.NewFieldUsize(6, 6), To: coord.NewFieldUsize(4, 6)},
	}
	instr, _, _, err := Plan(subs, bl, coord.NewFieldUsize(0, 0), motor.Home)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, instr.Len(), 2)
	assert.False(t, instr.At(0).Magnet)
}

func TestPlanKnightShapedSubMoveUsesCustomRouting(t *testing.T) {
	bl := emptyBitList()
	subs := []board.PhysicalSubMove{
		{Kind: board.NormalMove, From: coord.NewFieldUsize(7, 6), To: coord.NewFieldUsize(5, 5)},
	}
	instr, endCell, pos, err := Plan(subs, bl, coord.NewFieldUsize(7, 6), posNowForField(coord.NewFieldUsize(7, 6)))
	assert.NoError(t, err)
	assert.Equal(t, coord.NewFieldUsize(5, 5), endCell)
	assert.NotZero(t, instr.Len())

	want := coord.FieldFromUsize(coord.NewFieldUsize(5, 5))
	got := pos.Field()
	assert.InDelta(t, want.X, got.X, 0.01)
	assert.InDelta(t, want.Y, got.Y, 0.01)
}

func TestPlanCaptureSequenceOrdersEvacuationBeforeMove(t *testing.T) {
	bl := bitlist.New(func(row, col int) bool {
		return (row == 5 && col == 6) || (row == 6 && col == 6)
	})
	subs := []board.PhysicalSubMove{
		{Kind: board.Custom, From: coord.NewFieldUsize(5, 6), To: coord.NewFieldUsize(7, 0)},
		{Kind: board.NormalMove, From: coord.NewFieldUsize(6, 6), To: coord.NewFieldUsize(5, 6)},
	}
	_, endCell, _, err := Plan(subs, bl, coord.NewFieldUsize(5, 6), motor.Home)
	assert.NoError(t, err)
	assert.Equal(t, coord.NewFieldUsize(5, 6), endCell)
}

func TestPlanCastlingSubMove(t *testing.T) {
	bl := emptyBitList()
	kingFrom := coord.NewFieldUsize(7, 7)
	kingTo := coord.NewFieldUsize(7, 9)
	subs := []board.PhysicalSubMove{
		{
			Kind: board.CastlingMove,
			From: kingFrom, To: kingTo,
			RookFrom: coord.NewFieldUsize(7, 10), RookTo: coord.NewFieldUsize(7, 8),
		},
	}
	instr, endCell, pos, err := Plan(subs, bl, kingFrom, posNowForField(kingFrom))
	assert.NoError(t, err)
	assert.Equal(t, kingTo, endCell)
	assert.LessOrEqual(t, instr.Len(), 7)
	assert.GreaterOrEqual(t, instr.Len(), 3)

	want := coord.FieldFromUsize(kingTo)
	got := pos.Field()
	assert.InDelta(t, want.X, got.X, 0.01)
	assert.InDelta(t, want.Y, got.Y, 0.01)
}

// posNowForField returns the PosNow whose Field() equals f, the baseline
// used to assert the head ends up at an absolute destination cell rather
// than merely displaced by the right delta from an arbitrary Home.
func posNowForField(f coord.FieldUsize) motor.PosNow {
	field := coord.FieldFromUsize(f)
	return motor.PosNow{
		XSteps: coord.StepsForCells(field.X),
		YSteps: coord.StepsForCells(field.Y),
	}
}
