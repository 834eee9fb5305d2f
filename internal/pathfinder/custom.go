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

// pathCustom routes a piece from sf to ef through the gaps between
// occupied cells (spec.md §4.5): knight-shaped moves and graveyard
// transports that the primary straight/diagonal dispatch cannot realize
// directly. bl is read-only; pathCustom never mutates the caller's copy.
func pathCustom(sf, ef coord.FieldUsize, bl *bitlist.BitList) ([]motor.Move, error) {
	if bl.CountArea(sf, ef) == 0 {
		return decompose(sf, ef, motor.Transport, true), nil
	}

	working := bl.Clone()
	working.Update(nil, []coord.FieldUsize{sf}, nil)

	path, ok := customHelper(sf, sf, ef, working, nil)
	if !ok {
		return pathStuck(sf, ef, bl)
	}

	path = easeCells(path)
	return instructionsForCells(path, motor.Transport, true), nil
}

// customHelper is the DFS described in spec.md §4.5 step 3: og is the
// path's origin (returned as its first element), cur the cell currently
// being expanded from, acc the cells visited so far in order. bl is
// mutated in place as cells are provisionally occupied and released on
// backtrack, so cur's own cell must already be marked occupied by the
// caller before recursing into it.
func customHelper(og, cur, ef coord.FieldUsize, bl *bitlist.BitList, acc []coord.FieldUsize) ([]coord.FieldUsize, bool) {
	if cur == ef {
		result := make([]coord.FieldUsize, 0, len(acc)+1)
		result = append(result, og)
		result = append(result, acc...)
		return result, true
	}

	for _, c := range demoteVisited(cur.GetNearby(ef), acc) {
		if bl.IsOccupied(c) {
			continue
		}
		bl.Update(nil, []coord.FieldUsize{c}, nil)
		next := make([]coord.FieldUsize, len(acc)+1)
		copy(next, acc)
		next[len(acc)] = c
		if result, ok := customHelper(og, c, ef, bl, next); ok {
			return result, true
		}
		bl.Update([]coord.FieldUsize{c}, nil, nil)
	}
	return nil, false
}

// demoteVisited reorders candidates so that any already present in visited
// move to the end of the list rather than being dropped: they remain legal
// moves (a path may need to pass near a cell it touched on a different
// branch) but are deprioritized, bounding how often the DFS revisits them.
func demoteVisited(candidates, visited []coord.FieldUsize) []coord.FieldUsize {
	seen := make(map[coord.FieldUsize]bool, len(visited))
	for _, v := range visited {
		seen[v] = true
	}
	fresh := make([]coord.FieldUsize, 0, len(candidates))
	demoted := make([]coord.FieldUsize, 0, len(candidates))
	for _, c := range candidates {
		if seen[c] {
			demoted = append(demoted, c)
		} else {
			fresh = append(fresh, c)
		}
	}
	return append(fresh, demoted...)
}

// easeCells collapses any sub-sequence between two cells that are already
// Chebyshev-adjacent into just those two endpoints, iteratively, removing
// detours the DFS took around obstacles that turned out to be avoidable
// once the full path is known (spec.md §4.5 step 5).
func easeCells(path []coord.FieldUsize) []coord.FieldUsize {
	for {
		shortened := false
		for i := 0; i < len(path)-2 && !shortened; i++ {
			for j := len(path) - 1; j > i+1; j-- {
				if chebyshev(path[i], path[j]) <= 1 {
					merged := make([]coord.FieldUsize, 0, i+1+len(path)-j)
					merged = append(merged, path[:i+1]...)
					merged = append(merged, path[j:]...)
					path = merged
					shortened = true
					break
				}
			}
		}
		if !shortened {
			return path
		}
	}
}

// instructionsForCells converts a cell path whose consecutive pairs are all
// Chebyshev-adjacent (guaranteed by easeCells) into one unit motor
// instruction per pair, then eases the instruction list itself — merging
// consecutive unit steps that share direction, speed and magnet state into
// fewer, longer instructions (spec.md §4.5 step 5, second ease pass).
func instructionsForCells(path []coord.FieldUsize, speed motor.Speed, magnet bool) []motor.Move {
	raw := motor.NewInstructions(len(path))
	for i := 1; i < len(path); i++ {
		raw.PushBack(segmentMove(path[i-1], path[i], speed, magnet))
	}
	eased := raw.Ease()
	out := make([]motor.Move, eased.Len())
	for i := 0; i < eased.Len(); i++ {
		out[i] = eased.At(i)
	}
	return out
}
