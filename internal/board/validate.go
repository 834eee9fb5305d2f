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
	"fmt"
	"regexp"

	"github.com/frankkopp/chessbot/internal/types"
	"github.com/frankkopp/chessbot/internal/util"
)

// MoveKind classifies a validated UCI move against the current board
// state. Check and path-obstruction for sliding pieces are not enforced
// here — the external chess engine is the authority; this is a pre-filter
// for grossly malformed moves and for deterministic state transitions.
type MoveKind int8

const (
	Normal MoveKind = iota
	Capture
	EnPassant
	Castling
)

// ValidatedMove is the result of Validate: a UCI move classified against
// the board it was validated on.
type ValidatedMove struct {
	Kind      MoveKind
	From      types.Square
	To        types.Square
	Promotion types.PieceType

	// EnPassantCaptured is set only when Kind == EnPassant: the square of
	// the pawn being captured, one rank toward the mover from To.
	EnPassantCaptured types.Square

	// CastleRookFrom/CastleRookTo are set only when Kind == Castling.
	CastleRookFrom types.Square
	CastleRookTo   types.Square
}

var uciRe = regexp.MustCompile(`^([a-h][1-8])([a-h][1-8])([qrbn])?$`)

// castleMoves maps the four literal castling UCI strings to the rook
// move and the required castling-rights flag.
var castleMoves = map[string]struct {
	rookFrom, rookTo types.Square
	flag             types.CastlingRights
}{
	"e1g1": {mustSquare("h1"), mustSquare("f1"), types.WhiteKingside},
	"e1c1": {mustSquare("a1"), mustSquare("d1"), types.WhiteQueenside},
	"e8g8": {mustSquare("h8"), mustSquare("f8"), types.BlackKingside},
	"e8c8": {mustSquare("a8"), mustSquare("d8"), types.BlackQueenside},
}

func mustSquare(s string) types.Square {
	sq, ok := types.SquareFromString(s)
	if !ok {
		panic("board: bad built-in square literal " + s)
	}
	return sq
}

// Validate classifies a lowercase UCI move string against the current
// board state without mutating it. It never returns a Castling result
// whose rook is not present, nor a Normal/Capture/EnPassant result whose
// source does not hold a piece of the side to move.
func (b *Board) Validate(uci string) (*ValidatedMove, error) {
	if rook, ok := castleMoves[uci]; ok {
		kingFrom, kingTo := castlingKingSquares(uci)
		if !b.castlingRights.Has(rook.flag) {
			return nil, ErrUnallowedCastling
		}
		rookPiece := b.PieceAtSquare(rook.rookFrom)
		wantColor := types.White
		if uci[1] == '8' {
			wantColor = types.Black
		}
		if rookPiece.TypeOf() != types.Rook || rookPiece.ColorOf() != wantColor {
			return nil, ErrUnallowedCastling
		}
		return &ValidatedMove{
			Kind:           Castling,
			From:           kingFrom,
			To:             kingTo,
			CastleRookFrom: rook.rookFrom,
			CastleRookTo:   rook.rookTo,
		}, nil
	}

	m := uciRe.FindStringSubmatch(uci)
	if m == nil {
		return nil, fmt.Errorf("%w: malformed uci move %q", ErrMoveNotFitPiece, uci)
	}
	from, _ := types.SquareFromString(m[1])
	to, _ := types.SquareFromString(m[2])

	srcPiece := b.PieceAtSquare(from)
	if srcPiece.IsEmpty() {
		return nil, ErrNoPieceAtSource
	}
	if srcPiece.ColorOf() != b.sideToMove {
		return nil, ErrWrongColour
	}

	var promotion types.PieceType
	switch m[3] {
	case "q":
		promotion = types.Queen
	case "r":
		promotion = types.Rook
	case "b":
		promotion = types.Bishop
	case "n":
		promotion = types.Knight
	}

	if srcPiece.TypeOf() == types.Pawn && to == b.enPassant && b.enPassant != types.SquareNone {
		capturedRank := to.Rank() - 1
		if b.sideToMove == types.Black {
			capturedRank = to.Rank() + 1
		}
		captured := types.MakeSquare(to.File(), capturedRank)
		if b.PieceAtSquare(captured).TypeOf() != types.Pawn {
			return nil, ErrEnpassantMissing
		}
		return &ValidatedMove{Kind: EnPassant, From: from, To: to, EnPassantCaptured: captured}, nil
	}

	dstPiece := b.PieceAtSquare(to)
	var kind MoveKind
	switch {
	case dstPiece.IsEmpty():
		kind = Normal
	case dstPiece.ColorOf() == b.sideToMove:
		return nil, ErrOwnPieceAtDestination
	default:
		kind = Capture
	}

	if !reaches(srcPiece, from, to) {
		return nil, ErrMoveNotFitPiece
	}

	return &ValidatedMove{Kind: kind, From: from, To: to, Promotion: promotion}, nil
}

func castlingKingSquares(uci string) (types.Square, types.Square) {
	switch uci {
	case "e1g1":
		return mustSquare("e1"), mustSquare("g1")
	case "e1c1":
		return mustSquare("e1"), mustSquare("c1")
	case "e8g8":
		return mustSquare("e8"), mustSquare("g8")
	default:
		return mustSquare("e8"), mustSquare("c8")
	}
}

// reaches implements the piece geometric move pattern check (spec.md §4.3
// step 5): a coarse pre-filter, not full legal-move validation. Check and
// path obstruction for sliding pieces are intentionally not enforced here.
func reaches(p types.Piece, from, to types.Square) bool {
	df := to.File() - from.File()
	dr := to.Rank() - from.Rank()
	if df == 0 && dr == 0 {
		return false
	}
	absDf, absDr := util.Abs(df), util.Abs(dr)
	parity := func(sq types.Square) int { return (sq.File() + sq.Rank()) % 2 }

	switch p.TypeOf() {
	case types.Rook:
		return df == 0 || dr == 0
	case types.Bishop:
		return parity(from) == parity(to)
	case types.Queen:
		return df == 0 || dr == 0 || parity(from) == parity(to)
	case types.Knight:
		return parity(from) != parity(to) && df != 0 && dr != 0
	case types.King:
		return absDf <= 1 && absDr <= 1
	case types.Pawn:
		dir := 1
		startRank := 1
		if p.ColorOf() == types.Black {
			dir = -1
			startRank = 6
		}
		if df == 0 {
			if dr == dir {
				return true
			}
			return dr == 2*dir && from.Rank() == startRank
		}
		return absDf == 1 && dr == dir
	default:
		return false
	}
}
