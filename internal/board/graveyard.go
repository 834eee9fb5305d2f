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

package board

import (
	"github.com/frankkopp/chessbot/internal/coord"
	"github.com/frankkopp/chessbot/internal/types"
)

// startingInventory is the canonical per-colour piece count a legal FEN is
// checked against: instances of a piece kind missing from the playing
// window, up to this count, are the ones routed to the graveyard; more
// instances than this make the position impossible.
var startingInventory = map[types.PieceType]int{
	types.King:   1,
	types.Queen:  1,
	types.Rook:   2,
	types.Knight: 2,
	types.Bishop: 2,
	types.Pawn:   8,
}

// graveyardCells returns the fixed, ordered candidate cells for a captured
// piece of kind p (spec.md §4.3's placement table). The first cell is
// primary, later ones are fallbacks in priority order.
func graveyardCells(p types.Piece) []coord.FieldUsize {
	if p.ColorOf() == types.White {
		switch p.TypeOf() {
		case types.Queen:
			return []coord.FieldUsize{coord.NewFieldUsize(7, 0), coord.NewFieldUsize(7, 1)}
		case types.King:
			return []coord.FieldUsize{coord.NewFieldUsize(7, 2)}
		case types.Rook:
			return []coord.FieldUsize{coord.NewFieldUsize(6, 0), coord.NewFieldUsize(6, 1)}
		case types.Knight:
			return []coord.FieldUsize{coord.NewFieldUsize(5, 0), coord.NewFieldUsize(5, 1)}
		case types.Bishop:
			return []coord.FieldUsize{coord.NewFieldUsize(4, 0), coord.NewFieldUsize(4, 1)}
		case types.Pawn:
			return []coord.FieldUsize{
				coord.NewFieldUsize(0, 0), coord.NewFieldUsize(0, 1),
				coord.NewFieldUsize(1, 0), coord.NewFieldUsize(1, 1),
				coord.NewFieldUsize(2, 0), coord.NewFieldUsize(2, 1),
				coord.NewFieldUsize(3, 0), coord.NewFieldUsize(3, 1),
			}
		}
		return nil
	}
	switch p.TypeOf() {
	case types.Queen:
		return []coord.FieldUsize{coord.NewFieldUsize(0, 13), coord.NewFieldUsize(0, 12)}
	case types.King:
		return []coord.FieldUsize{coord.NewFieldUsize(0, 11)}
	case types.Rook:
		return []coord.FieldUsize{coord.NewFieldUsize(1, 13), coord.NewFieldUsize(1, 12)}
	case types.Knight:
		return []coord.FieldUsize{coord.NewFieldUsize(2, 13), coord.NewFieldUsize(2, 12)}
	case types.Bishop:
		return []coord.FieldUsize{coord.NewFieldUsize(3, 13), coord.NewFieldUsize(3, 12)}
	case types.Pawn:
		return []coord.FieldUsize{
			coord.NewFieldUsize(7, 13), coord.NewFieldUsize(7, 12),
			coord.NewFieldUsize(6, 13), coord.NewFieldUsize(6, 12),
			coord.NewFieldUsize(5, 13), coord.NewFieldUsize(5, 12),
			coord.NewFieldUsize(4, 13), coord.NewFieldUsize(4, 12),
		}
	}
	return nil
}

// placeCaptured places a single captured piece into the first free cell of
// its graveyard candidate list. Returns ErrGraveyardFull if every candidate
// cell is already occupied.
func (b *Board) placeCaptured(p types.Piece) error {
	for _, f := range graveyardCells(p) {
		if b.fields[f.Row][f.Col].IsEmpty() {
			b.fields[f.Row][f.Col] = p
			return nil
		}
	}
	return ErrGraveyardFull
}

// placeGraveyard routes every piece instance missing from the playing
// window (the starting inventory minus placed, the counts actually found
// there) to its fixed graveyard cells. Returns ErrImpossiblePosition when
// more instances of a kind are present than the starting inventory allows.
func (b *Board) placeGraveyard(placed map[types.Piece]int) error {
	for _, color := range []types.Color{types.White, types.Black} {
		for pt, inventory := range startingInventory {
			p := types.MakePiece(color, pt)
			captured := inventory - placed[p]
			if captured < 0 {
				return ErrImpossiblePosition
			}
			cells := graveyardCells(p)
			if captured > len(cells) {
				return ErrImpossiblePosition
			}
			for i := 0; i < captured; i++ {
				f := cells[i]
				b.fields[f.Row][f.Col] = p
			}
		}
	}
	return nil
}
