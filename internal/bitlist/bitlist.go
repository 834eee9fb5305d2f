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

// Package bitlist is the occupancy map queried and mutated during
// pathfinding: an 8x14 grid of (occupied, free_neighbour_count) cells,
// always derived fresh from a board snapshot and then mutated only in a
// local copy.
package bitlist

import (
	"github.com/frankkopp/chessbot/internal/assert"
	"github.com/frankkopp/chessbot/internal/coord"
)

type cell struct {
	occupied     bool
	freeNeighbor uint8
}

// BitList is the occupancy map over the 8x14 extended board.
type BitList struct {
	cells [coord.Rows][coord.Cols]cell
}

// New builds a BitList from an occupancy function: occupiedAt(row, col)
// reports whether that cell currently holds a piece. free_neighbour_count
// is derived in a second pass once every cell's occupied state is known.
func New(occupiedAt func(row, col int) bool) *BitList {
	bl := &BitList{}
	for r := 0; r < coord.Rows; r++ {
		for c := 0; c < coord.Cols; c++ {
			bl.cells[r][c].occupied = occupiedAt(r, c)
		}
	}
	for r := 0; r < coord.Rows; r++ {
		for c := 0; c < coord.Cols; c++ {
			bl.cells[r][c].freeNeighbor = bl.countFreeNeighbors(r, c)
		}
	}
	if assert.DEBUG {
		for r := 0; r < coord.Rows; r++ {
			for c := 0; c < coord.Cols; c++ {
				f := coord.NewFieldUsize(r, c)
				assert.Assert(bl.cells[r][c].freeNeighbor == bl.countFreeNeighbors(r, c),
					"stale free-neighbour-count at %v", f)
			}
		}
	}
	return bl
}

func (bl *BitList) countFreeNeighbors(row, col int) uint8 {
	var n uint8
	f := coord.NewFieldUsize(row, col)
	for _, nb := range f.GetNeighbors() {
		if !bl.cells[nb.Row][nb.Col].occupied {
			n++
		}
	}
	return n
}

// Clone returns an independent copy, the local working copy pathfinding
// mutates while the canonical BitList stays pristine.
func (bl *BitList) Clone() *BitList {
	clone := *bl
	return &clone
}

// IsOccupied reports whether (row, col) currently holds a piece.
// Out-of-bounds coordinates report false.
func (bl *BitList) IsOccupied(f coord.FieldUsize) bool {
	if !f.InBounds() {
		return false
	}
	return bl.cells[f.Row][f.Col].occupied
}

// FreeNeighbourCount returns the number of in-bounds neighbours of f that
// are currently unoccupied. Out-of-bounds coordinates report 0.
func (bl *BitList) FreeNeighbourCount(f coord.FieldUsize) uint8 {
	if !f.InBounds() {
		return 0
	}
	return bl.cells[f.Row][f.Col].freeNeighbor
}

// CountArea returns the number of occupied cells in the inclusive
// axis-aligned rectangle spanned by f1 and f2.
func (bl *BitList) CountArea(f1, f2 coord.FieldUsize) int {
	r0, r1 := f1.Row, f2.Row
	if r0 > r1 {
		r0, r1 = r1, r0
	}
	c0, c1 := f1.Col, f2.Col
	if c0 > c1 {
		c0, c1 = c1, c0
	}
	count := 0
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			if bl.cells[r][c].occupied {
				count++
			}
		}
	}
	return count
}

// Update applies a batch of mutations in one call: remove marks cells
// unoccupied, add marks cells occupied, and tickDown decrements the named
// cells' own free_neighbour_count, promoting a cell to occupied should its
// count reach zero. The three sets act only on the cells named in them —
// marking a cell occupied does not itself walk its neighbours; the caller
// (the pathfinder, which already knows which cells it is touching) passes
// the affected neighbours explicitly in tickDown within the same call.
// Exposing the batch this way avoids inconsistent intermediate occupancy
// states when pathfinding vacates a source cell and occupies a destination
// cell within the same logical step. Out-of-bounds coordinates are silently
// ignored.
func (bl *BitList) Update(remove, add, tickDown []coord.FieldUsize) {
	for _, f := range remove {
		if !f.InBounds() {
			continue
		}
		bl.cells[f.Row][f.Col].occupied = false
	}
	for _, f := range add {
		if !f.InBounds() {
			continue
		}
		bl.cells[f.Row][f.Col].occupied = true
	}
	for _, f := range tickDown {
		if !f.InBounds() {
			continue
		}
		c := &bl.cells[f.Row][f.Col]
		if c.freeNeighbor > 0 {
			c.freeNeighbor--
		}
		if c.freeNeighbor == 0 {
			c.occupied = true
		}
	}
}
