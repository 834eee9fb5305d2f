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

package motor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func samplePlan() *Instructions {
	is := NewInstructions(4)
	is.PushBack(Move{Kind: StraightX, DirX: false, Len: 100, Speed: NMove, Magnet: true})
	is.PushBack(Move{Kind: StraightX, DirX: false, Len: 50, Speed: NMove, Magnet: true})
	is.PushBack(Move{Kind: Diagonal, DirX: true, DirY: false, Len: 30, Speed: Transport, Magnet: false})
	return is
}

func TestHalfPeriodMicros(t *testing.T) {
	// floor(5000/5.0)/2 = 500
	assert.Equal(t, 500.0, Homing.HalfPeriodMicros())
	// floor(5000/2.0)/2 = 1250
	assert.Equal(t, 1250.0, NMove.HalfPeriodMicros())
}

func TestEaseMergesAdjacentEqualAttributes(t *testing.T) {
	is := samplePlan()
	eased := is.Ease()
	assert.Equal(t, 2, eased.Len())
	assert.Equal(t, uint32(150), eased.At(0).Len)
	assert.Equal(t, uint32(30), eased.At(1).Len)
}

func TestEaseIdempotent(t *testing.T) {
	is := samplePlan()
	once := is.Ease()
	twice := once.Ease()
	assert.Equal(t, once.String(), twice.String())
}

func TestReverseTwiceIsIdentity(t *testing.T) {
	is := samplePlan()
	back := is.Reverse().Reverse()
	assert.Equal(t, is.String(), back.String())
}

func TestReverseFlipsDirections(t *testing.T) {
	is := NewInstructions(1)
	is.PushBack(Move{Kind: StraightY, DirY: false, Len: 10, Speed: NMove, Magnet: true})
	rev := is.Reverse()
	assert.True(t, rev.At(0).DirY)
	assert.Equal(t, uint32(10), rev.At(0).Len)
}

func TestProjectStraightX(t *testing.T) {
	is := NewInstructions(1)
	is.PushBack(Move{Kind: StraightX, DirX: false, Len: 100, Speed: NMove, Magnet: true})
	end := is.Project(Home)
	assert.Equal(t, 100, end.XSteps)
	assert.Equal(t, 0, end.YSteps)
}

func TestProjectDiagonal(t *testing.T) {
	is := NewInstructions(1)
	is.PushBack(Move{Kind: Diagonal, DirX: true, DirY: false, Len: 30, Speed: Transport, Magnet: false})
	end := is.Project(Home)
	assert.Equal(t, -30, end.XSteps)
	assert.Equal(t, 30, end.YSteps)
}

func TestProjectRoundTripWithReverse(t *testing.T) {
	is := samplePlan()
	mid := is.Project(Home)
	back := is.Reverse().Project(mid)
	assert.Equal(t, Home, back)
}
