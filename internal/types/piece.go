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

package types

// PieceType is a chess piece kind, independent of color.
type PieceType int8

const (
	PtNone PieceType = iota
	King
	Queen
	Rook
	Knight
	Bishop
	Pawn
	PtLength
)

var pieceTypeToChar = map[PieceType]byte{
	King: 'k', Queen: 'q', Rook: 'r', Knight: 'n', Bishop: 'b', Pawn: 'p',
}

func (pt PieceType) String() string {
	c, ok := pieceTypeToChar[pt]
	if !ok {
		return "-"
	}
	return string(c)
}

// Piece is a tagged union of PieceType and Color, packed into a small int so
// it can be used as a map key and array index. PieceNone is the sentinel for
// an empty cell.
type Piece int8

// PieceNone is the zero value: White<<4 + PtNone, which never collides with
// a real piece since PtNone is never a real piece type.
const PieceNone Piece = 0

// MakePiece packs a color and piece type into a single Piece value.
func MakePiece(c Color, pt PieceType) Piece {
	if pt == PtNone {
		return PieceNone
	}
	return Piece(int8(c)<<4 + int8(pt))
}

// ColorOf extracts the color of a piece. Undefined for PieceNone.
func (p Piece) ColorOf() Color {
	return Color(int8(p) >> 4)
}

// TypeOf extracts the piece type. Returns PtNone for PieceNone.
func (p Piece) TypeOf() PieceType {
	if p == PieceNone {
		return PtNone
	}
	return PieceType(int8(p) & 0x0f)
}

// IsEmpty reports whether the cell holding this piece is empty.
func (p Piece) IsEmpty() bool {
	return p == PieceNone
}

// FenChar returns the canonical single-character FEN representation:
// uppercase for white, lowercase for black, '.' for an empty cell.
func (p Piece) FenChar() byte {
	if p.IsEmpty() {
		return '.'
	}
	c := pieceTypeToChar[p.TypeOf()][0]
	if p.ColorOf() == White {
		c -= 'a' - 'A'
	}
	return c
}

// PieceFromFenChar parses one FEN piece-placement character into a Piece.
// Returns PieceNone, false if the character does not denote a piece.
func PieceFromFenChar(c byte) (Piece, bool) {
	color := White
	lower := c
	if c >= 'a' && c <= 'z' {
		color = Black
	} else if c >= 'A' && c <= 'Z' {
		lower = c + ('a' - 'A')
	} else {
		return PieceNone, false
	}
	for pt, ch := range pieceTypeToChar {
		if ch == lower {
			return MakePiece(color, pt), true
		}
	}
	return PieceNone, false
}
