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

package coord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditSaturates(t *testing.T) {
	f := NewFieldUsize(0, 0)
	assert.Equal(t, NewFieldUsize(0, 0), f.EditX(-1))
	assert.Equal(t, NewFieldUsize(0, 0), f.EditY(-1))

	f = NewFieldUsize(Rows-1, Cols-1)
	assert.Equal(t, NewFieldUsize(Rows-1, Cols-1), f.EditX(1))
	assert.Equal(t, NewFieldUsize(Rows-1, Cols-1), f.EditY(1))
}

func TestGetNeighborsCorner(t *testing.T) {
	f := NewFieldUsize(0, 0)
	n := f.GetNeighbors()
	assert.Len(t, n, 3)
}

func TestGetNeighborsInterior(t *testing.T) {
	f := NewFieldUsize(3, 5)
	n := f.GetNeighbors()
	assert.Len(t, n, 8)
}

func TestGetNearbyBiasesTowardTarget(t *testing.T) {
	f := NewFieldUsize(3, 5)
	target := NewFieldUsize(3, 9)
	near := f.GetNearby(target)
	assert.NotEmpty(t, near)
	assert.Equal(t, FieldUsize{Row: 3, Col: 6}, near[0])
}

func TestGetNearbyFiltersOutOfBounds(t *testing.T) {
	f := NewFieldUsize(0, 0)
	near := f.GetNearby(NewFieldUsize(7, 13))
	for _, c := range near {
		assert.True(t, c.InBounds())
	}
	assert.LessOrEqual(t, len(near), 8)
}

func TestFieldFromUsize(t *testing.T) {
	center := FieldFromUsize(NewFieldUsize(0, 0))
	assert.Equal(t, -6.5, center.X)
	assert.Equal(t, 3.5, center.Y)

	rank1 := FieldFromUsize(NewFieldUsize(7, 6))
	assert.Equal(t, -0.5, rank1.X)
	assert.Equal(t, -3.5, rank1.Y)
}

func TestStepsForCellsRoundTrip(t *testing.T) {
	steps := StepsForCells(1)
	assert.Greater(t, steps, 0)
	cells := CellsForSteps(steps)
	assert.InDelta(t, 1.0, cells, 0.01)
}

func TestStepsForCellsKnownValue(t *testing.T) {
	// one playing cell of travel (45mm) at 14.135mm/rev, 200 steps/rev.
	assert.Equal(t, 637, StepsForCells(1))
}
