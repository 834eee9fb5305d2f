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

// Package driver defines the boundary to the GPIO stepper hardware
// (spec.md §1, an explicitly out-of-scope external collaborator) and
// ships a logging stub so the rest of the core can be built and tested
// without real hardware attached.
package driver

import "github.com/frankkopp/chessbot/internal/motor"

// Axis identifies one of the two orthogonal stepper motors.
type Axis int8

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "Y"
	}
	return "X"
}

// Driver is the thin wrapper over the timing-calibrated pulse generator
// spec.md §1 names as an external collaborator. Every method blocks until
// the physical motion it describes has completed.
type Driver interface {
	// MoveSteps pulses axis for steps steps in direction dir (true =
	// negative step, matching motor.Move's DirX/DirY convention) at speed.
	MoveSteps(axis Axis, steps uint32, dir bool, speed motor.Speed) error
	// Diagonal pulses both axes together for steps steps along the
	// diagonal described by xdir/ydir at speed.
	Diagonal(steps uint32, xdir, ydir bool, speed motor.Speed) error
	// Magnet switches the electromagnet on or off.
	Magnet(on bool) error
	// Enable/Disable toggle the stepper drivers' enable line.
	Enable() error
	Disable() error
}

// Execute realizes a single motor.Move against d, translating its Kind
// into the matching MoveSteps/Diagonal call after switching the magnet
// to m.Magnet.
func Execute(d Driver, m motor.Move) error {
	if err := d.Magnet(m.Magnet); err != nil {
		return err
	}
	switch m.Kind {
	case motor.StraightX:
		return d.MoveSteps(AxisX, m.Len, m.DirX, m.Speed)
	case motor.StraightY:
		return d.MoveSteps(AxisY, m.Len, m.DirY, m.Speed)
	default:
		return d.Diagonal(m.Len, m.DirX, m.DirY, m.Speed)
	}
}
