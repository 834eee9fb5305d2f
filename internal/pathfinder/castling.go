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
	"github.com/frankkopp/chessbot/internal/bitlist"
	"github.com/frankkopp/chessbot/internal/coord"
	"github.com/frankkopp/chessbot/internal/motor"
)

// pathCastling realizes a CastlingMove sub-move: the king steps off its
// home square, the rook slides to its final square, and the king returns
// to its own final square (spec.md §4.5). The king's escape cell is on its
// own file, one rank in from its home rank toward the board centre; if that
// cell is occupied, the routine uses the cell two ranks in instead. Each of
// the five legs is built with decompose, and every legal castle comes to
// at most 7 segments. Only the first escape cell is checked for occupancy:
// the fallback cell and the cells the rook and king pass over are not, and
// the displacement fallback is never invoked.
func pathCastling(kingFrom, kingTo, rookFrom, rookTo coord.FieldUsize, bl *bitlist.BitList) ([]motor.Move, error) {
	escapeRow := kingFrom.Row - 1
	if kingFrom.Row == 0 {
		escapeRow = 1
	}
	if escapeRow < 0 || escapeRow >= coord.Rows || bl.IsOccupied(coord.FieldUsize{Row: escapeRow, Col: kingFrom.Col}) {
		if kingFrom.Row <= 1 {
			escapeRow = kingFrom.Row + 2
		} else {
			escapeRow = kingFrom.Row - 2
		}
	}

	escape := coord.FieldUsize{Row: escapeRow, Col: kingFrom.Col}

	var out []motor.Move
	pos := kingFrom

	out = append(out, decompose(pos, escape, motor.NMove, true)...)
	pos = escape

	if pos != rookFrom {
		out = append(out, decompose(pos, rookFrom, motor.NoFigure, false)...)
		pos = rookFrom
	}
	out = append(out, decompose(pos, rookTo, motor.NMove, true)...)
	pos = rookTo

	if pos != escape {
		out = append(out, decompose(pos, escape, motor.NoFigure, false)...)
		pos = escape
	}
	out = append(out, decompose(pos, kingTo, motor.NMove, true)...)

	return out, nil
}
