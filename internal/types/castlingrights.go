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

// CastlingRights packs the four castling flags into a bitfield. Flag index
// assignment is fixed: wK=0, wQ=1, bK=2, bQ=3.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Has reports whether flag is set.
func (cr CastlingRights) Has(flag CastlingRights) bool {
	return cr&flag != 0
}

// Add sets flag.
func (cr CastlingRights) Add(flag CastlingRights) CastlingRights {
	return cr | flag
}

// Remove clears flag.
func (cr CastlingRights) Remove(flag CastlingRights) CastlingRights {
	return cr &^ flag
}

// String renders the KQkq FEN castling field, "-" if none are set.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr.Has(WhiteKingside) {
		s += "K"
	}
	if cr.Has(WhiteQueenside) {
		s += "Q"
	}
	if cr.Has(BlackKingside) {
		s += "k"
	}
	if cr.Has(BlackQueenside) {
		s += "q"
	}
	return s
}

// CastlingRightsFromFen parses a FEN castling field ("KQkq", "Kq", "-", ...).
func CastlingRightsFromFen(s string) CastlingRights {
	var cr CastlingRights
	for _, c := range s {
		switch c {
		case 'K':
			cr = cr.Add(WhiteKingside)
		case 'Q':
			cr = cr.Add(WhiteQueenside)
		case 'k':
			cr = cr.Add(BlackKingside)
		case 'q':
			cr = cr.Add(BlackQueenside)
		}
	}
	return cr
}
