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

import "github.com/frankkopp/chessbot/internal/coord"

// PosNow is the virtual magnet head position, in signed motor steps from
// the home corner. It is not a piece; it is tracked in parallel with the
// board to know where the physical head is between moves.
type PosNow struct {
	XSteps int
	YSteps int
}

// Home is the PosNow the apparatus is assumed to be at on startup, before
// any homing procedure has run.
var Home = PosNow{XSteps: 0, YSteps: 0}

// Field converts the virtual head position to continuous cell units along
// each axis, using coord.CellsForSteps as the inverse of the steps-per-cell
// formula so no sub-cell precision is lost. The result is the displacement
// from PosNow{0, 0}; no offset to the board centre is applied.
func (p PosNow) Field() coord.Field {
	return coord.Field{X: coord.CellsForSteps(p.XSteps), Y: coord.CellsForSteps(p.YSteps)}
}

// Apply projects a single motor instruction onto p, returning the resulting
// position. It does not execute anything; it is the planning-time twin of
// whatever the GPIO driver actually does when the instruction runs.
func (p PosNow) Apply(m Move) PosNow {
	steps := int(m.Len)
	switch m.Kind {
	case StraightX:
		if m.DirX {
			steps = -steps
		}
		return PosNow{XSteps: p.XSteps + steps, YSteps: p.YSteps}
	case StraightY:
		if m.DirY {
			steps = -steps
		}
		return PosNow{XSteps: p.XSteps, YSteps: p.YSteps + steps}
	case Diagonal:
		dx, dy := steps, steps
		if m.DirX {
			dx = -dx
		}
		if m.DirY {
			dy = -dy
		}
		return PosNow{XSteps: p.XSteps + dx, YSteps: p.YSteps + dy}
	default:
		return p
	}
}
