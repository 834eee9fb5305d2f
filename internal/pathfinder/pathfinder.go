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

// Package pathfinder turns a board.PhysicalSubMove list into a motor
// instruction plan (spec.md §4.4, §4.5): straight/diagonal moves dispatch
// directly, everything else routes through the gap-finding custom
// pathfinder, with a displacement fallback when no gap-path exists and a
// dedicated routine for castling's three-segment king/rook shuffle.
//
// Planning is pure: it reads a BitList snapshot and a starting PosNow, and
// returns instructions plus the resulting head position and logical cell,
// without touching the GPIO driver or the board itself (spec.md §5).
package pathfinder

import (
	"github.com/frankkopp/chessbot/internal/bitlist"
	"github.com/frankkopp/chessbot/internal/board"
	"github.com/frankkopp/chessbot/internal/coord"
	"github.com/frankkopp/chessbot/internal/motor"
)

// Plan realizes every sub-move in subs as a single ordered instruction
// list. bl is the occupancy snapshot taken before the move (never
// mutated); startCell is the extended-grid cell the virtual head
// logically occupies, and startPos its PosNow. Returns the full
// instruction list, the head's resulting cell and PosNow.
func Plan(subs []board.PhysicalSubMove, bl *bitlist.BitList, startCell coord.FieldUsize, startPos motor.PosNow) (*motor.Instructions, coord.FieldUsize, motor.PosNow, error) {
	working := bl.Clone()
	out := motor.NewInstructions(0)
	cell, pos := startCell, startPos

	emit := func(moves []motor.Move) {
		for _, m := range moves {
			out.PushBack(m)
			pos = pos.Apply(m)
		}
	}

	for _, sub := range subs {
		if sub.Kind == board.CastlingMove {
			if cell != sub.From {
				emit(decompose(cell, sub.From, motor.NoFigure, false))
			}
			segment, err := pathCastling(sub.From, sub.To, sub.RookFrom, sub.RookTo, working)
			if err != nil {
				return nil, cell, pos, err
			}
			emit(segment)
			working.Update(
				[]coord.FieldUsize{sub.From, sub.RookFrom},
				[]coord.FieldUsize{sub.To, sub.RookTo},
				append(sub.To.GetNeighbors(), sub.RookTo.GetNeighbors()...),
			)
			cell = sub.To
			continue
		}

		from, to := sub.From, sub.To
		if cell != from {
			emit(decompose(cell, from, motor.NoFigure, false))
		}

		var segment []motor.Move
		var err error
		switch {
		case isOrthogonal(from, to) || isPureDiagonal(from, to):
			segment = []motor.Move{segmentMove(from, to, motor.NMove, true)}
		default:
			segment, err = pathCustom(from, to, working)
		}
		if err != nil {
			return nil, cell, pos, err
		}

		emit(segment)
		working.Update([]coord.FieldUsize{from}, []coord.FieldUsize{to}, to.GetNeighbors())
		cell = to
	}

	return out, cell, pos, nil
}
