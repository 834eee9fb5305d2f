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

// Package board represents the piece layout of the physical apparatus: an
// 8x14 grid where columns 3..=10 are the 8 playing files (a..h) and columns
// 0..=2/11..=13 on white's/black's side are graveyards for captured pieces.
// Row 0 is rank 8, row 7 is rank 1.
//
// Create a new instance with NewBoard() for the standard starting position,
// or NewBoardFen(fen) to parse an arbitrary FEN.
package board

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	"github.com/frankkopp/chessbot/internal/assert"
	"github.com/frankkopp/chessbot/internal/coord"
	myLogging "github.com/frankkopp/chessbot/internal/logging"
	"github.com/frankkopp/chessbot/internal/types"
)

var log *logging.Logger

func init() {
	log = myLogging.GetLog()
}

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Board is the 8x14 extended piece grid plus the state needed to validate
// and apply moves: side to move, castling rights, en-passant target,
// halfmove clock and fullmove counter.
type Board struct {
	fields         [coord.Rows][coord.Cols]types.Piece
	sideToMove     types.Color
	castlingRights types.CastlingRights
	enPassant      types.Square
	halfmoveClock  int
	fullmoves      int
}

// squareToField maps an algebraic playing-window square onto the extended
// grid: row = 7 - rank (rank 1 is the bottom row, row 7), col = file + 3
// (files a..h sit at columns 3..10, graveyards flank them).
func squareToField(sq types.Square) coord.FieldUsize {
	return coord.NewFieldUsize(7-sq.Rank(), sq.File()+3)
}

// fieldToSquare is the inverse of squareToField. Only meaningful for fields
// inside the playing window (cols 3..=10); callers must check that first.
func fieldToSquare(f coord.FieldUsize) types.Square {
	return types.MakeSquare(f.Col-3, 7-f.Row)
}

func inPlayingWindow(f coord.FieldUsize) bool {
	return f.Col >= 3 && f.Col <= 10
}

// NewBoard returns the board in the standard starting position.
func NewBoard() *Board {
	b, err := NewBoardFen(StartFen)
	if err != nil {
		// the starting FEN is a compile-time constant; a parse failure here
		// is a programming error, not a runtime condition callers handle.
		panic(fmt.Sprintf("board: starting FEN failed to parse: %v", err))
	}
	return b
}

var fenFieldsRe = regexp.MustCompile(`\S+`)

// NewBoardFen parses a FEN string into a Board. Playing squares are filled
// from the piece-placement field; any piece kind instances beyond what the
// placement field accounts for are routed to fixed graveyard cells by
// placeCaptured, against the canonical starting inventory (spec.md §4.3).
// When the starting inventory does not suffice (e.g. promoted queens), the
// excess pieces remain unplaced and parsing fails with ErrImpossiblePosition.
func NewBoardFen(fen string) (*Board, error) {
	parts := fenFieldsRe.FindAllString(strings.TrimSpace(fen), -1)
	if len(parts) < 4 {
		return nil, fmt.Errorf("%w: expected at least 4 fields, got %d", ErrFenParse, len(parts))
	}

	b := &Board{enPassant: types.SquareNone}
	for r := range b.fields {
		for c := range b.fields[r] {
			b.fields[r][c] = types.PieceNone
		}
	}

	ranks := strings.Split(parts[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("%w: piece placement must have 8 ranks, got %d", ErrFenParse, len(ranks))
	}
	placed := map[types.Piece]int{}
	for row, rankStr := range ranks {
		col := 3
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				col += int(ch - '0')
				continue
			}
			p, ok := types.PieceFromFenChar(byte(ch))
			if !ok || col > 10 {
				return nil, fmt.Errorf("%w: bad piece placement character %q", ErrFenParse, ch)
			}
			b.fields[row][col] = p
			placed[p]++
			col++
		}
		if col != 11 {
			return nil, fmt.Errorf("%w: rank %d does not sum to 8 files", ErrFenParse, row+1)
		}
	}

	if err := b.placeGraveyard(placed); err != nil {
		return nil, err
	}
	if assert.DEBUG {
		assert.Assert(placed[types.MakePiece(types.White, types.King)] == 1, "white king count != 1 in %q", fen)
		assert.Assert(placed[types.MakePiece(types.Black, types.King)] == 1, "black king count != 1 in %q", fen)
	}

	switch parts[1] {
	case "w":
		b.sideToMove = types.White
	case "b":
		b.sideToMove = types.Black
	default:
		return nil, fmt.Errorf("%w: bad side to move %q", ErrFenParse, parts[1])
	}

	b.castlingRights = types.CastlingRightsFromFen(parts[2])

	if parts[3] != "-" {
		sq, ok := types.SquareFromString(parts[3])
		if !ok {
			return nil, fmt.Errorf("%w: bad en-passant square %q", ErrFenParse, parts[3])
		}
		b.enPassant = sq
	}

	if len(parts) > 4 {
		hm, err := strconv.Atoi(parts[4])
		if err != nil {
			return nil, fmt.Errorf("%w: bad halfmove clock %q", ErrFenParse, parts[4])
		}
		b.halfmoveClock = hm
	}
	if len(parts) > 5 {
		fm, err := strconv.Atoi(parts[5])
		if err != nil {
			return nil, fmt.Errorf("%w: bad fullmove number %q", ErrFenParse, parts[5])
		}
		b.fullmoves = fm - 1
		if b.fullmoves < 0 {
			b.fullmoves = 0
		}
	}

	return b, nil
}

// StringFen emits the board as a standard six-field FEN string.
func (b *Board) StringFen() string {
	var sb strings.Builder
	for row := 0; row < coord.Rows; row++ {
		empty := 0
		for col := 3; col <= 10; col++ {
			p := b.fields[row][col]
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(p.FenChar())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row < coord.Rows-1 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(b.sideToMove.String())

	sb.WriteByte(' ')
	sb.WriteString(b.castlingRights.String())

	sb.WriteByte(' ')
	sb.WriteString(b.enPassant.String())

	fullmove := b.fullmoves + 1

	fmt.Fprintf(&sb, " %d %d", b.halfmoveClock, fullmove)
	return sb.String()
}

// SideToMove returns the color to move next.
func (b *Board) SideToMove() types.Color { return b.sideToMove }

// CastlingRights returns the current castling-rights flags.
func (b *Board) CastlingRights() types.CastlingRights { return b.castlingRights }

// EnPassant returns the current en-passant target square, or
// types.SquareNone if none is set.
func (b *Board) EnPassant() types.Square { return b.enPassant }

// PieceAt returns the piece occupying the extended-grid cell f.
func (b *Board) PieceAt(f coord.FieldUsize) types.Piece {
	if !f.InBounds() {
		return types.PieceNone
	}
	return b.fields[f.Row][f.Col]
}

// PieceAtSquare returns the piece on the given algebraic playing-window
// square.
func (b *Board) PieceAtSquare(sq types.Square) types.Piece {
	return b.PieceAt(squareToField(sq))
}
