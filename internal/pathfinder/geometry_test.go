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

	"github.com/frankkopp/chessbot/internal/coord"
	"github.com/frankkopp/chessbot/internal/motor"
)

func TestSegmentMoveOrthogonal(t *testing.T) {
	m := segmentMove(coord.NewFieldUsize(5, 5), coord.NewFieldUsize(5, 8), motor.NMove, true)
	assert.Equal(t, motor.StraightX, m.Kind)
	assert.False(t, m.DirX)
	assert.Equal(t, uint32(coord.StepsForCells(3)), m.Len)
}

func TestSegmentMoveNegativeDirection(t *testing.T) {
	m := segmentMove(coord.NewFieldUsize(5, 8), coord.NewFieldUsize(5, 5), motor.NMove, true)
	assert.True(t, m.DirX)
}

func TestSegmentMoveStraightY(t *testing.T) {
	up := segmentMove(coord.NewFieldUsize(5, 5), coord.NewFieldUsize(2, 5), motor.NMove, true)
	assert.Equal(t, motor.StraightY, up.Kind)
	assert.False(t, up.DirY)

	down := segmentMove(coord.NewFieldUsize(2, 5), coord.NewFieldUsize(5, 5), motor.NMove, true)
	assert.True(t, down.DirY)
}

func TestSegmentMoveDiagonal(t *testing.T) {
	m := segmentMove(coord.NewFieldUsize(5, 5), coord.NewFieldUsize(2, 2), motor.NMove, true)
	assert.Equal(t, motor.Diagonal, m.Kind)
	assert.True(t, m.DirX)
	assert.False(t, m.DirY)
}

func TestDecomposeOrthogonalIsSingleSegment(t *testing.T) {
	moves := decompose(coord.NewFieldUsize(5, 5), coord.NewFieldUsize(5, 8), motor.NMove, true)
	assert.Len(t, moves, 1)
}

func TestDecomposeMixedIsTwoSegments(t *testing.T) {
	moves := decompose(coord.NewFieldUsize(7, 3), coord.NewFieldUsize(5, 8), motor.Transport, true)
	assert.Len(t, moves, 2)
	assert.Equal(t, motor.StraightX, moves[0].Kind)
}

func TestDecomposeSameCellIsEmpty(t *testing.T) {
	moves := decompose(coord.NewFieldUsize(3, 3), coord.NewFieldUsize(3, 3), motor.NMove, true)
	assert.Empty(t, moves)
}

func TestChebyshev(t *testing.T) {
	assert.Equal(t, 3, chebyshev(coord.NewFieldUsize(0, 0), coord.NewFieldUsize(2, 3)))
	assert.Equal(t, 1, chebyshev(coord.NewFieldUsize(4, 4), coord.NewFieldUsize(5, 5)))
}
