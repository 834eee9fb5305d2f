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
	"github.com/frankkopp/chessbot/internal/util"
)

// PhysicalKind is the physical sub-move tag (PFIType in spec.md §3).
type PhysicalKind int8

const (
	NormalMove PhysicalKind = iota
	CastlingMove
	Custom
)

// PhysicalSubMove is one physically realizable transport the pathfinder
// must plan motor instructions for, expressed in extended-grid cells
// rather than algebraic squares since a Custom sub-move's destination (a
// graveyard cell) has no algebraic identity. Castling carries both the
// king's and the rook's from/to cells; Custom (evacuating a captured piece
// to its graveyard cell) and NormalMove carry only From/To.
type PhysicalSubMove struct {
	Kind     PhysicalKind
	From     coord.FieldUsize
	To       coord.FieldUsize
	RookFrom coord.FieldUsize
	RookTo   coord.FieldUsize
}

// ApplyMove validates uci against the current state, then mutates it and
// returns the ordered list of physical sub-moves that realize it. It is
// transactional (compute-then-commit, spec.md §9): validation and sub-move
// construction run against a scratch copy, and the receiver is mutated only once both
// succeed, so a rejected or failed move never leaves the board partially
// updated.
func (b *Board) ApplyMove(uci string) ([]PhysicalSubMove, error) {
	vm, err := b.Validate(uci)
	if err != nil {
		return nil, err
	}

	next := *b
	var subs []PhysicalSubMove
	isPawnMove := false
	isCaptureOrEnPassant := false
	nextEnPassant := types.SquareNone

	switch vm.Kind {
	case Castling:
		king := next.PieceAtSquare(vm.From)
		rook := next.PieceAtSquare(vm.CastleRookFrom)
		next.clearSquare(vm.From)
		next.clearSquare(vm.CastleRookFrom)
		next.setSquare(vm.To, king)
		next.setSquare(vm.CastleRookTo, rook)
		subs = []PhysicalSubMove{{
			Kind: CastlingMove, From: squareToField(vm.From), To: squareToField(vm.To),
			RookFrom: squareToField(vm.CastleRookFrom), RookTo: squareToField(vm.CastleRookTo),
		}}

	case Capture:
		captured := next.PieceAtSquare(vm.To)
		graveyard, err := next.placeCapturedCell(captured)
		if err != nil {
			return nil, err
		}
		mover := next.PieceAtSquare(vm.From)
		next.clearSquare(vm.From)
		next.setSquare(vm.To, mover)
		subs = []PhysicalSubMove{
			{Kind: Custom, From: squareToField(vm.To), To: graveyard},
			{Kind: NormalMove, From: squareToField(vm.From), To: squareToField(vm.To)},
		}
		isCaptureOrEnPassant = true

	case EnPassant:
		captured := next.PieceAtSquare(vm.EnPassantCaptured)
		graveyard, err := next.placeCapturedCell(captured)
		if err != nil {
			return nil, err
		}
		mover := next.PieceAtSquare(vm.From)
		next.clearSquare(vm.EnPassantCaptured)
		next.clearSquare(vm.From)
		next.setSquare(vm.To, mover)
		subs = []PhysicalSubMove{
			{Kind: Custom, From: squareToField(vm.EnPassantCaptured), To: graveyard},
			{Kind: NormalMove, From: squareToField(vm.From), To: squareToField(vm.To)},
		}
		isCaptureOrEnPassant = true
		isPawnMove = true

	case Normal:
		mover := next.PieceAtSquare(vm.From)
		next.clearSquare(vm.From)
		next.setSquare(vm.To, mover)
		subs = []PhysicalSubMove{{Kind: NormalMove, From: squareToField(vm.From), To: squareToField(vm.To)}}
		if mover.TypeOf() == types.Pawn {
			isPawnMove = true
			if util.Abs(vm.To.Rank()-vm.From.Rank()) == 2 {
				midRank := (vm.From.Rank() + vm.To.Rank()) / 2
				nextEnPassant = types.MakeSquare(vm.From.File(), midRank)
			}
		}
	}

	next.updateCastlingRights(vm)
	next.enPassant = nextEnPassant
	if isPawnMove || isCaptureOrEnPassant {
		next.halfmoveClock = 0
	} else {
		next.halfmoveClock++
	}
	if next.sideToMove == types.Black {
		next.fullmoves++
	}
	next.sideToMove = next.sideToMove.Flip()

	*b = next
	return subs, nil
}

func (b *Board) clearSquare(sq types.Square) {
	f := squareToField(sq)
	b.fields[f.Row][f.Col] = types.PieceNone
}

func (b *Board) setSquare(sq types.Square, p types.Piece) {
	f := squareToField(sq)
	b.fields[f.Row][f.Col] = p
}

// placeCapturedCell is placeCaptured but also reports which cell was used,
// so callers can record it in the physical sub-move list.
func (b *Board) placeCapturedCell(p types.Piece) (coord.FieldUsize, error) {
	for _, f := range graveyardCells(p) {
		if b.fields[f.Row][f.Col].IsEmpty() {
			b.fields[f.Row][f.Col] = p
			return f, nil
		}
	}
	return coord.FieldUsize{}, ErrGraveyardFull
}

// updateCastlingRights clears the relevant flag whenever a king or a
// home-square rook moves off its home square, or a rook is captured on its
// home square (spec.md §4.3).
func (b *Board) updateCastlingRights(vm *ValidatedMove) {
	clearIfHome := func(sq types.Square) {
		switch sq {
		case mustSquare("e1"):
			b.castlingRights = b.castlingRights.Remove(types.WhiteKingside).Remove(types.WhiteQueenside)
		case mustSquare("e8"):
			b.castlingRights = b.castlingRights.Remove(types.BlackKingside).Remove(types.BlackQueenside)
		case mustSquare("h1"):
			b.castlingRights = b.castlingRights.Remove(types.WhiteKingside)
		case mustSquare("a1"):
			b.castlingRights = b.castlingRights.Remove(types.WhiteQueenside)
		case mustSquare("h8"):
			b.castlingRights = b.castlingRights.Remove(types.BlackKingside)
		case mustSquare("a8"):
			b.castlingRights = b.castlingRights.Remove(types.BlackQueenside)
		}
	}
	clearIfHome(vm.From)
	clearIfHome(vm.To)
}
