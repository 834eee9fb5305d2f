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

// Package coord holds the two coordinate systems the motion-planning core
// moves between: FieldUsize, a non-negative grid index on the 8x14 extended
// board (8 play rows plus captured-piece graveyards on both sides), and
// Field, the continuous, board-centred representation used to reason about
// the physical head. Conversion to and from motor step counts also lives
// here since it is pure arithmetic shared by the pathfinder and the virtual
// head position.
package coord

import "math"

// Rows and Cols bound the extended board: 8 playing ranks, 14 columns where
// 3..=10 are the playing files a..h and 0..=2/11..=13 are graveyards.
const (
	Rows = 8
	Cols = 14
)

const (
	// StepsPerRev is the stepper motor's full steps per revolution.
	StepsPerRev = 200
	// MmPerRev is the belt travel in millimetres per motor revolution.
	MmPerRev = 14.135
	// MmPerCell is the physical distance between two adjacent cell centres.
	MmPerCell = 45.0
)

// FieldUsize is a grid index on the 8x14 extended board: 0 <= Row < Rows,
// 0 <= Col < Cols.
type FieldUsize struct {
	Row int
	Col int
}

// NewFieldUsize builds a FieldUsize, clamping into bounds.
func NewFieldUsize(row, col int) FieldUsize {
	return FieldUsize{Row: clamp(row, 0, Rows-1), Col: clamp(col, 0, Cols-1)}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// InBounds reports whether the field lies within the extended board.
func (f FieldUsize) InBounds() bool {
	return f.Row >= 0 && f.Row < Rows && f.Col >= 0 && f.Col < Cols
}

// EditX shifts the field by dir columns (+1 or -1), saturating at the board
// edge instead of wrapping.
func (f FieldUsize) EditX(dir int) FieldUsize {
	return NewFieldUsize(f.Row, f.Col+dir)
}

// EditY shifts the field by dir rows (+1 or -1), saturating at the board
// edge instead of wrapping.
func (f FieldUsize) EditY(dir int) FieldUsize {
	return NewFieldUsize(f.Row+dir, f.Col)
}

// GetNeighbors returns the up to 8 in-bounds neighbours of f. Order is not
// observable; callers needing a stable, target-biased order use GetNearby.
func (f FieldUsize) GetNeighbors() []FieldUsize {
	var out []FieldUsize
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := FieldUsize{Row: f.Row + dr, Col: f.Col + dc}
			if n.InBounds() {
				out = append(out, n)
			}
		}
	}
	return out
}

// GetNearby produces an ordered list of up to 8 in-bounds neighbour
// candidates of f, biased toward target. The ordering is behaviourally
// significant for pathfinding: candidates earlier in the list are tried
// first by the gap-routing DFS.
//
// Tie-breaking when target lies exactly on a row or column uses the
// interior bias preferUp = f.Row < 4, preferRight = f.Col < 7: cells in
// rows 0..3 lean toward higher rows, the others toward lower rows, and
// cells in columns 0..6 lean toward higher columns, the others lower.
func (f FieldUsize) GetNearby(target FieldUsize) []FieldUsize {
	dRow := target.Row - f.Row
	dCol := target.Col - f.Col
	preferUp := f.Row < 4
	preferRight := f.Col < 7

	upDir, downDir := -1, 1
	leftDir, rightDir := -1, 1

	yBias := downDir
	if !preferUp {
		yBias = upDir
	}
	xBias := leftDir
	if preferRight {
		xBias = rightDir
	}

	var order []FieldUsize
	switch {
	case dRow == 0:
		xTowards := leftDir
		if dCol > 0 {
			xTowards = rightDir
		}
		xAway := -xTowards
		order = []FieldUsize{
			{Row: f.Row, Col: f.Col + xTowards},
			{Row: f.Row + yBias, Col: f.Col + xTowards},
			{Row: f.Row + yBias, Col: f.Col},
			{Row: f.Row + yBias, Col: f.Col + xAway},
			{Row: f.Row - yBias, Col: f.Col + xTowards},
			{Row: f.Row - yBias, Col: f.Col},
			{Row: f.Row, Col: f.Col + xAway},
			{Row: f.Row - yBias, Col: f.Col + xAway},
		}
	case dCol == 0:
		yTowards := upDir
		if dRow > 0 {
			yTowards = downDir
		}
		yAway := -yTowards
		order = []FieldUsize{
			{Row: f.Row + yTowards, Col: f.Col},
			{Row: f.Row + yTowards, Col: f.Col + xBias},
			{Row: f.Row, Col: f.Col + xBias},
			{Row: f.Row + yAway, Col: f.Col + xBias},
			{Row: f.Row + yTowards, Col: f.Col - xBias},
			{Row: f.Row, Col: f.Col - xBias},
			{Row: f.Row + yAway, Col: f.Col},
			{Row: f.Row + yAway, Col: f.Col - xBias},
		}
	default:
		yTowards := upDir
		if dRow > 0 {
			yTowards = downDir
		}
		xTowards := leftDir
		if dCol > 0 {
			xTowards = rightDir
		}
		yAway, xAway := -yTowards, -xTowards
		order = []FieldUsize{
			{Row: f.Row + yTowards, Col: f.Col + xTowards},
			{Row: f.Row + yTowards, Col: f.Col},
			{Row: f.Row, Col: f.Col + xTowards},
			{Row: f.Row + yTowards, Col: f.Col + xAway},
			{Row: f.Row + yAway, Col: f.Col + xTowards},
			{Row: f.Row + yAway, Col: f.Col},
			{Row: f.Row, Col: f.Col + xAway},
			{Row: f.Row + yAway, Col: f.Col + xAway},
		}
	}

	out := make([]FieldUsize, 0, 8)
	seen := make(map[FieldUsize]bool, 8)
	for _, c := range order {
		if !c.InBounds() || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// Field is the continuous, board-centred coordinate, measured in playing
// cells with the origin at the geometric centre of the 8x8 playing window.
type Field struct {
	X float64
	Y float64
}

// FieldFromUsize converts a grid index to its centred continuous position.
// x = col - 6.5, y = 3.5 - row: rank-1 (row 7) maps to y = -3.5. The
// asymmetry is intentional: graveyards extend symmetrically in x around the
// playing window's centre, while rows count down from the top of the board.
func FieldFromUsize(f FieldUsize) Field {
	return Field{X: float64(f.Col) - 6.5, Y: 3.5 - float64(f.Row)}
}

// StepsForCells converts a displacement of c playing cells into motor
// steps. This is the sole source of truth for the mm/steps conversion; both
// planning (forward) and PosNow projection (backward) must use it.
func StepsForCells(c float64) int {
	return int(math.Round(MmPerCell * c / MmPerRev * StepsPerRev))
}

// CellsForSteps is the exact inverse of StepsForCells, re-derived from the
// forward formula rather than truncated by integer division. The source
// implementation integer-divided step counts by StepsPerRev before the mm
// conversion, discarding sub-cell precision; that coarsening was not
// identified as intentional, so PosNow tracking here keeps full precision.
func CellsForSteps(steps int) float64 {
	return float64(steps) * MmPerRev / StepsPerRev / MmPerCell
}
