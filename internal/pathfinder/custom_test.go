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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/chessbot/internal/bitlist"
	"github.com/frankkopp/chessbot/internal/coord"
	"github.com/frankkopp/chessbot/internal/motor"
)

func emptyBitList() *bitlist.BitList {
	return bitlist.New(func(row, col int) bool { return false })
}

func TestPathCustomFastPathWhenAreaEmpty(t *testing.T) {
	bl := emptyBitList()
	moves, err := pathCustom(coord.NewFieldUsize(7, 4), coord.NewFieldUsize(5, 5), bl)
	assert.NoError(t, err)
	assert.NotEmpty(t, moves)
	for _, m := range moves {
		assert.True(t, m.Magnet)
		assert.Equal(t, motor.Transport, m.Speed)
	}
}

func TestPathCustomRoutesAroundSingleObstacle(t *testing.T) {
	bl := bitlist.New(func(row, col int) bool {
		return row == 4 && col == 5
	})
	moves, err := pathCustom(coord.NewFieldUsize(4, 4), coord.NewFieldUsize(4, 6), bl)
	assert.NoError(t, err)
	assert.NotEmpty(t, moves)

	pos := motor.PosNow{}
	for _, m := range moves {
		pos = pos.Apply(m)
	}
}

func TestEaseCellsCollapsesDetour(t *testing.T) {
	path := []coord.FieldUsize{
		coord.NewFieldUsize(0, 0),
		coord.NewFieldUsize(1, 0),
		coord.NewFieldUsize(2, 0),
		coord.NewFieldUsize(1, 1),
	}
	eased := easeCells(path)
	assert.Equal(t, []coord.FieldUsize{
		coord.NewFieldUsize(0, 0),
		coord.NewFieldUsize(1, 1),
	}, eased)
}

func TestEaseCellsNoOpWhenNoShortcut(t *testing.T) {
	path := []coord.FieldUsize{
		coord.NewFieldUsize(0, 0),
		coord.NewFieldUsize(1, 1),
		coord.NewFieldUsize(2, 2),
	}
	eased := easeCells(path)
	assert.Equal(t, path, eased)
}

func TestDemoteVisitedMovesVisitedToEnd(t *testing.T) {
	candidates := []coord.FieldUsize{
		coord.NewFieldUsize(1, 1),
		coord.NewFieldUsize(2, 2),
		coord.NewFieldUsize(3, 3),
	}
	visited := []coord.FieldUsize{coord.NewFieldUsize(2, 2)}
	ordered := demoteVisited(candidates, visited)
	assert.Equal(t, []coord.FieldUsize{
		coord.NewFieldUsize(1, 1),
		coord.NewFieldUsize(3, 3),
		coord.NewFieldUsize(2, 2),
	}, ordered)
}

func TestInstructionsForCellsMergesColinearUnitSteps(t *testing.T) {
	path := []coord.FieldUsize{
		coord.NewFieldUsize(5, 5),
		coord.NewFieldUsize(5, 6),
		coord.NewFieldUsize(5, 7),
		coord.NewFieldUsize(5, 8),
	}
	moves := instructionsForCells(path, motor.Transport, true)
	assert.Len(t, moves, 1)
	assert.Equal(t, motor.StraightX, moves[0].Kind)
	assert.Equal(t, uint32(coord.StepsForCells(1))*3, moves[0].Len)
}

func TestPathCustomReturnsStuckWhenFullyBoxedIn(t *testing.T) {
	sf := coord.NewFieldUsize(4, 5)
	ef := coord.NewFieldUsize(0, 0)
	bl := bitlist.New(func(row, col int) bool {
		f := coord.NewFieldUsize(row, col)
		return f != sf
	})
	_, err := pathCustom(sf, ef, bl)
	assert.True(t, errors.Is(err, ErrStuck))
}
