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
	"fmt"
	"strings"
)

// Instructions is a totally ordered list of motor moves realizing one
// planned chess move.
type Instructions []Move

// NewInstructions creates an empty instruction list with the given
// capacity. Equivalent to Instructions(make([]Move, 0, cap)).
func NewInstructions(cap int) *Instructions {
	moves := make([]Move, 0, cap)
	return (*Instructions)(&moves)
}

// Len returns the number of instructions currently stored.
func (is *Instructions) Len() int {
	return len(*is)
}

// PushBack appends an instruction at the end of the list.
func (is *Instructions) PushBack(m Move) {
	*is = append(*is, m)
}

// At returns the instruction at index i. Panics if out of bounds.
func (is *Instructions) At(i int) Move {
	if i < 0 || i >= len(*is) {
		panic("Instructions: index out of bounds")
	}
	return (*is)[i]
}

// Clone copies the list into a newly created Instructions, deep enough that
// mutating the clone never affects the original (Move is a value type).
func (is *Instructions) Clone() *Instructions {
	dest := make([]Move, len(*is))
	copy(dest, *is)
	return (*Instructions)(&dest)
}

// Reverse returns a new instruction list that undoes is: the instructions
// run in the opposite order, each with both direction bits flipped.
// reverse(reverse(plan)) == plan for any plan.
func (is *Instructions) Reverse() *Instructions {
	n := len(*is)
	out := make([]Move, n)
	for i, m := range *is {
		out[n-1-i] = m.reversed()
	}
	return (*Instructions)(&out)
}

// Ease collapses adjacent instructions that share every attribute but Len
// into a single instruction summing their Len. Idempotent: Ease(Ease(plan))
// == Ease(plan).
func (is *Instructions) Ease() *Instructions {
	out := make([]Move, 0, len(*is))
	for _, m := range *is {
		if n := len(out); n > 0 && out[n-1].mergeable(m) {
			out[n-1].Len += m.Len
			continue
		}
		out = append(out, m)
	}
	return (*Instructions)(&out)
}

// Project walks every instruction in order, applying it to start, and
// returns the final PosNow. This is the planning-time projection that lets
// each subsequent pathfinder segment know where the virtual head will be
// without any instruction having actually run yet.
func (is *Instructions) Project(start PosNow) PosNow {
	pos := start
	for _, m := range *is {
		pos = pos.Apply(m)
	}
	return pos
}

// ProjectAll is like Project but also returns every intermediate position,
// one per instruction, in execution order.
func (is *Instructions) ProjectAll(start PosNow) []PosNow {
	out := make([]PosNow, 0, len(*is))
	pos := start
	for _, m := range *is {
		pos = pos.Apply(m)
		out = append(out, pos)
	}
	return out
}

func (is *Instructions) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Instructions: [%d] { ", len(*is)))
	for i, m := range *is {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(m.String())
	}
	sb.WriteString(" }")
	return sb.String()
}
