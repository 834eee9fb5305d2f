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
	"github.com/frankkopp/chessbot/internal/coord"
	"github.com/frankkopp/chessbot/internal/motor"
)

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func signInt(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func isOrthogonal(from, to coord.FieldUsize) bool {
	return (from.Row == to.Row) != (from.Col == to.Col)
}

func isPureDiagonal(from, to coord.FieldUsize) bool {
	dRow, dCol := to.Row-from.Row, to.Col-from.Col
	return dRow != 0 && absInt(dRow) == absInt(dCol)
}

func chebyshev(a, b coord.FieldUsize) int {
	dr, dc := absInt(a.Row-b.Row), absInt(a.Col-b.Col)
	if dr > dc {
		return dr
	}
	return dc
}

// segmentMove builds the single motor instruction that carries the head
// from one cell to another along a straight or pure-diagonal line. Len is
// the motor-step count for the displacement in playing cells
// (coord.StepsForCells), never the raw cell count.
func segmentMove(from, to coord.FieldUsize, speed motor.Speed, magnet bool) motor.Move {
	dRow, dCol := to.Row-from.Row, to.Col-from.Col
	switch {
	case dRow == 0:
		return motor.Move{
			Kind: motor.StraightX, DirX: dCol < 0,
			Len: uint32(coord.StepsForCells(float64(absInt(dCol)))), Speed: speed, Magnet: magnet,
		}
	case dCol == 0:
		return motor.Move{
			Kind: motor.StraightY, DirY: dRow > 0,
			Len: uint32(coord.StepsForCells(float64(absInt(dRow)))), Speed: speed, Magnet: magnet,
		}
	default:
		return motor.Move{
			Kind: motor.Diagonal, DirX: dCol < 0, DirY: dRow > 0,
			Len: uint32(coord.StepsForCells(float64(absInt(dRow)))), Speed: speed, Magnet: magnet,
		}
	}
}

// decompose realizes an arbitrary displacement as a straight leg along the
// longer axis (covering the distance by which it exceeds the shorter one)
// followed by a diagonal leg as long as the shorter axis — the
// orthogonal-then-diagonal decomposition
// spec.md §4.4 and §4.5's fast path both describe. Used for the primary
// dispatch's diagonal/orthogonal cases (where one leg is empty), the custom
// pathfinder's zero-obstruction fast path, and reposition moves.
func decompose(from, to coord.FieldUsize, speed motor.Speed, magnet bool) []motor.Move {
	if from == to {
		return nil
	}
	dRow, dCol := to.Row-from.Row, to.Col-from.Col
	diagLen := minInt(absInt(dRow), absInt(dCol))
	var moves []motor.Move
	diagFrom := coord.FieldUsize{Row: to.Row - signInt(dRow)*diagLen, Col: to.Col - signInt(dCol)*diagLen}
	if diagFrom != from {
		moves = append(moves, segmentMove(from, diagFrom, speed, magnet))
	}
	if diagLen > 0 {
		moves = append(moves, segmentMove(diagFrom, to, speed, magnet))
	}
	return moves
}
