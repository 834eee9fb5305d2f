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

// pathStuck is the displacement fallback (spec.md §4.5): when no gap-path
// exists, obstructing pieces along a chosen reference path are temporarily
// displaced aside, the path is driven, and every displacement is undone in
// reverse order.
func pathStuck(sf, ef coord.FieldUsize, bl *bitlist.BitList) ([]motor.Move, error) {
	fastest := dfsIgnoringOccupancy(sf, ef)
	vf := lPath(sf, ef, true)
	hf := lPath(sf, ef, false)

	chosen := choosePath(bl, fastest, vf, hf)
	if chosen == nil {
		return nil, ErrStuck
	}

	onPath := make(map[coord.FieldUsize]bool, len(chosen))
	for _, c := range chosen {
		onPath[c] = true
	}

	var obstacles []coord.FieldUsize
	for _, c := range chosen {
		if c != sf && bl.IsOccupied(c) {
			obstacles = append(obstacles, c)
		}
	}

	working := bl.Clone()
	type displacement struct{ from, to coord.FieldUsize }
	var log []displacement
	out := motor.NewInstructions(0)
	pos := sf

	reposition := func(to coord.FieldUsize) {
		if pos == to {
			return
		}
		for _, m := range decompose(pos, to, motor.NoFigure, false) {
			out.PushBack(m)
		}
		pos = to
	}

	for i := len(obstacles) - 1; i >= 0; i-- {
		o := obstacles[i]
		if dest, ok := firstFreeNeighborExcluding(o, working, onPath, nil); ok {
			reposition(o)
			out.PushBack(segmentMove(o, dest, motor.Transport, true))
			pos = dest
			working.Update([]coord.FieldUsize{o}, []coord.FieldUsize{dest}, nil)
			log = append(log, displacement{from: o, to: dest})
			continue
		}

		relocated := false
		for _, n := range o.GetNeighbors() {
			if onPath[n] || !working.IsOccupied(n) {
				continue
			}
			if mid, ok := firstFreeNeighborExcluding(n, working, onPath, []coord.FieldUsize{n}); ok {
				reposition(n)
				out.PushBack(segmentMove(n, mid, motor.Transport, true))
				pos = mid
				working.Update([]coord.FieldUsize{n}, []coord.FieldUsize{mid}, nil)
				log = append(log, displacement{from: n, to: mid})

				reposition(o)
				out.PushBack(segmentMove(o, n, motor.Transport, true))
				pos = n
				working.Update([]coord.FieldUsize{o}, []coord.FieldUsize{n}, nil)
				log = append(log, displacement{from: o, to: n})
				relocated = true
				break
			}
		}
		if !relocated {
			return nil, ErrStuck
		}
	}

	eased := easeCells(chosen)
	reposition(eased[0])
	for _, m := range instructionsForCells(eased, motor.Transport, true) {
		out.PushBack(m)
	}
	pos = eased[len(eased)-1]

	for i := len(log) - 1; i >= 0; i-- {
		d := log[i]
		reposition(d.to)
		out.PushBack(segmentMove(d.to, d.from, motor.Transport, true))
		pos = d.from
	}

	result := make([]motor.Move, out.Len())
	for i := 0; i < out.Len(); i++ {
		result[i] = out.At(i)
	}
	return result, nil
}

// firstFreeNeighborExcluding returns the first neighbour of f that is
// unoccupied, not on the chosen path, and not in exclude.
func firstFreeNeighborExcluding(f coord.FieldUsize, bl *bitlist.BitList, onPath map[coord.FieldUsize]bool, exclude []coord.FieldUsize) (coord.FieldUsize, bool) {
	excluded := make(map[coord.FieldUsize]bool, len(exclude))
	for _, e := range exclude {
		excluded[e] = true
	}
	for _, n := range f.GetNeighbors() {
		if onPath[n] || excluded[n] || bl.IsOccupied(n) {
			continue
		}
		return n, true
	}
	return coord.FieldUsize{}, false
}

// dfsIgnoringOccupancy finds a plausible shortest unit-step route from sf
// to ef with no regard to occupancy: repeatedly step via GetNearby's
// top candidate, which — since GetNearby is target-biased — greedily
// closes the Chebyshev distance to ef every step.
func dfsIgnoringOccupancy(sf, ef coord.FieldUsize) []coord.FieldUsize {
	path := []coord.FieldUsize{sf}
	cur := sf
	for cur != ef {
		candidates := cur.GetNearby(ef)
		if len(candidates) == 0 {
			return path
		}
		best := candidates[0]
		bestDist := chebyshev(best, ef)
		for _, c := range candidates[1:] {
			if d := chebyshev(c, ef); d < bestDist {
				best, bestDist = c, d
			}
		}
		if best == cur {
			return path
		}
		cur = best
		path = append(path, cur)
		if len(path) > coord.Rows*coord.Cols {
			return path
		}
	}
	return path
}

// lPath builds the vertical-first (verticalFirst=true) or horizontal-first
// L-shaped route between sf and ef: one straight leg, then the other,
// through the corner cell.
func lPath(sf, ef coord.FieldUsize, verticalFirst bool) []coord.FieldUsize {
	var corner coord.FieldUsize
	if verticalFirst {
		corner = coord.FieldUsize{Row: ef.Row, Col: sf.Col}
	} else {
		corner = coord.FieldUsize{Row: sf.Row, Col: ef.Col}
	}
	path := []coord.FieldUsize{sf}
	path = append(path, stepCells(sf, corner)...)
	if corner != sf {
		path = append(path, corner)
	}
	rest := stepCells(corner, ef)
	path = append(path, rest...)
	if ef != corner {
		path = append(path, ef)
	}
	return dedupConsecutive(path)
}

// stepCells enumerates the intermediate unit cells strictly between from
// and to along a straight or diagonal line (exclusive of both endpoints).
func stepCells(from, to coord.FieldUsize) []coord.FieldUsize {
	dRow, dCol := to.Row-from.Row, to.Col-from.Col
	steps := absInt(dRow)
	if absInt(dCol) > steps {
		steps = absInt(dCol)
	}
	if steps == 0 {
		return nil
	}
	rowDir, colDir := signInt(dRow), signInt(dCol)
	var out []coord.FieldUsize
	for i := 1; i < steps; i++ {
		out = append(out, coord.FieldUsize{Row: from.Row + rowDir*i, Col: from.Col + colDir*i})
	}
	return out
}

func dedupConsecutive(path []coord.FieldUsize) []coord.FieldUsize {
	out := make([]coord.FieldUsize, 0, len(path))
	for i, c := range path {
		if i == 0 || out[len(out)-1] != c {
			out = append(out, c)
		}
	}
	return out
}

// choosePath picks whichever of the three reference paths crosses the
// fewest occupied cells, breaking ties fastest <= vf < hf.
func choosePath(bl *bitlist.BitList, fastest, vf, hf []coord.FieldUsize) []coord.FieldUsize {
	countOccupied := func(path []coord.FieldUsize) int {
		n := 0
		for _, c := range path {
			if bl.IsOccupied(c) {
				n++
			}
		}
		return n
	}
	fc, vc, hc := countOccupied(fastest), countOccupied(vf), countOccupied(hf)
	best, bestCount := fastest, fc
	if vc < bestCount {
		best, bestCount = vf, vc
	}
	if hc < bestCount {
		best = hf
	}
	return best
}
