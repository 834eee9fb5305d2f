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

// Package motor holds the lowest-level output of the motion-planning core:
// individual stepper-motor instructions and the ordered list of them that
// realizes one planned move, handed off to the GPIO driver.
package motor

import (
	"fmt"
)

// Kind distinguishes the three physical segment shapes a motor instruction
// can carry out.
type Kind int8

const (
	StraightX Kind = iota
	StraightY
	Diagonal
)

func (k Kind) String() string {
	switch k {
	case StraightX:
		return "StraightX"
	case StraightY:
		return "StraightY"
	case Diagonal:
		return "Diagonal"
	default:
		return "?"
	}
}

// Speed is the fixed enumeration of motion speed classes (spec.md §4.6).
// Speed class is part of instruction identity for Ease merging.
type Speed int8

const (
	Homing Speed = iota
	NMove
	Offset
	NoFigure
	Transport
)

// rps holds the revolutions-per-second constant for each speed class.
var rps = map[Speed]float64{
	Homing:    5.0,
	NMove:     2.0,
	Offset:    1.5,
	NoFigure:  4.5,
	Transport: 2.0,
}

func (s Speed) String() string {
	switch s {
	case Homing:
		return "Homing"
	case NMove:
		return "NMove"
	case Offset:
		return "Offset"
	case NoFigure:
		return "NoFigure"
	case Transport:
		return "Transport"
	default:
		return "?"
	}
}

// HalfPeriodMicros converts a speed class's rps constant into the
// half-period, in microseconds, the GPIO driver pulses at:
// floor(5000/rps)/2.
func (s Speed) HalfPeriodMicros() float64 {
	r := rps[s]
	return float64(int(5000/r)) / 2
}

// Move is one atomic motor instruction. Equality for Ease merging ignores
// Len; merging two equal-attribute instructions sums their Len.
type Move struct {
	Kind   Kind
	DirX   bool
	DirY   bool
	Len    uint32
	Speed  Speed
	Magnet bool
}

// mergeable reports whether a and b share every merge-relevant attribute
// (everything except Len).
func (a Move) mergeable(b Move) bool {
	return a.Kind == b.Kind && a.DirX == b.DirX && a.DirY == b.DirY &&
		a.Speed == b.Speed && a.Magnet == b.Magnet
}

// reversed returns a copy of m with both direction bits flipped.
func (a Move) reversed() Move {
	a.DirX = !a.DirX
	a.DirY = !a.DirY
	return a
}

func (a Move) String() string {
	xs, ys := "+", "+"
	if a.DirX {
		xs = "-"
	}
	if a.DirY {
		ys = "-"
	}
	return fmt.Sprintf("%s(x%s y%s len=%d speed=%s magnet=%v)", a.Kind, xs, ys, a.Len, a.Speed, a.Magnet)
}
