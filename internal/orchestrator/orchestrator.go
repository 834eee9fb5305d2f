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

// Package orchestrator wires the board, pathfinder, and GPIO driver into
// single rounds of play (spec.md §5): validate and apply a move against
// the logical board, plan its physical realization against the occupancy
// map as it stood before the move, then execute the plan on the driver.
// One round runs at a time; a round started while another is in flight is
// rejected rather than queued.
package orchestrator

import (
	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"

	"github.com/frankkopp/chessbot/internal/bitlist"
	"github.com/frankkopp/chessbot/internal/board"
	"github.com/frankkopp/chessbot/internal/coord"
	"github.com/frankkopp/chessbot/internal/driver"
	myLogging "github.com/frankkopp/chessbot/internal/logging"
	"github.com/frankkopp/chessbot/internal/motor"
	"github.com/frankkopp/chessbot/internal/pathfinder"
	"github.com/frankkopp/chessbot/internal/types"
	"github.com/frankkopp/chessbot/internal/util"
)

// Orchestrator owns the exclusive resource group spec.md §5 names: the
// board, the GPIO driver, the magnet, and PosNow. No other component may
// touch them while a round is in flight.
type Orchestrator struct {
	b      *board.Board
	d      driver.Driver
	cell   coord.FieldUsize
	pos    motor.PosNow
	running *semaphore.Weighted
	cancel  *util.Bool
	log     *logging.Logger
}

// New wires an Orchestrator around an already-constructed board and
// driver. The virtual head starts at motor.Home, matching the startup
// assumption spec.md §6 documents (the apparatus is physically homed).
func New(b *board.Board, d driver.Driver) *Orchestrator {
	return &Orchestrator{
		b:       b,
		d:       d,
		cell:    coord.NewFieldUsize(0, 0),
		pos:     motor.Home,
		running: semaphore.NewWeighted(1),
		cancel:  util.NewBool(false),
		log:     myLogging.GetLog(),
	}
}

// Cancel requests that the next round be skipped instead of started.
// Per spec.md §5 a cancellation is never honoured mid-plan; it only takes
// effect at the boundary between two rounds.
func (o *Orchestrator) Cancel() {
	o.cancel.Store(true)
}

// Round validates and applies uci against the board, plans its physical
// realization, and executes that plan on the driver. The board mutation
// is rolled back if planning or execution fails. Driver calls already made
// before an execution error are not undone, and the tracked head cell and
// position keep their values from before the round.
func (o *Orchestrator) Round(uci string) (*motor.Instructions, error) {
	if !o.running.TryAcquire(1) {
		return nil, ErrBusy
	}
	defer o.running.Release(1)

	if o.cancel.Swap(false) {
		return nil, ErrCancelled
	}

	before := *o.b
	bl := o.occupancy()

	subs, err := o.b.ApplyMove(uci)
	if err != nil {
		return nil, err
	}

	instr, endCell, endPos, err := pathfinder.Plan(subs, bl, o.cell, o.pos)
	if err != nil {
		*o.b = before
		o.log.Warningf("round %s: planning failed, rolled back: %v", uci, err)
		return nil, err
	}

	if err := o.execute(instr); err != nil {
		*o.b = before
		o.log.Warningf("round %s: execution failed, rolled back: %v", uci, err)
		return nil, err
	}

	o.cell, o.pos = endCell, endPos
	o.log.Debugf("round %s: %d instructions executed", uci, instr.Len())
	return instr, nil
}

// Home drives the virtual head back to motor.Home (the position the
// apparatus is assumed to occupy at startup) without touching the board.
// original_source/app calls the equivalent of this at process start; it
// is exposed here as an explicit, callable operation rather than only an
// initial condition, so it can also be invoked after an emergency stop.
func (o *Orchestrator) Home() error {
	if !o.running.TryAcquire(1) {
		return ErrBusy
	}
	defer o.running.Release(1)

	instr := motor.NewInstructions(2)
	if o.pos.XSteps != 0 {
		instr.PushBack(motor.Move{
			Kind: motor.StraightX, DirX: o.pos.XSteps > 0,
			Len: uint32(absInt(o.pos.XSteps)), Speed: motor.Homing, Magnet: false,
		})
	}
	if o.pos.YSteps != 0 {
		instr.PushBack(motor.Move{
			Kind: motor.StraightY, DirY: o.pos.YSteps > 0,
			Len: uint32(absInt(o.pos.YSteps)), Speed: motor.Homing, Magnet: false,
		})
	}
	if err := o.execute(instr); err != nil {
		return err
	}
	o.cell, o.pos = coord.NewFieldUsize(0, 0), motor.Home
	return nil
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func (o *Orchestrator) occupancy() *bitlist.BitList {
	return bitlist.New(func(row, col int) bool {
		return o.b.PieceAt(coord.NewFieldUsize(row, col)) != types.PieceNone
	})
}

func (o *Orchestrator) execute(instr *motor.Instructions) error {
	for i := 0; i < instr.Len(); i++ {
		if err := driver.Execute(o.d, instr.At(i)); err != nil {
			return err
		}
	}
	return nil
}
