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

import "fmt"

// Square is an algebraic chessboard square, file + rank*8, file a=0..h=7,
// rank 1=0..8=7. SquareNone is the sentinel for "no square" (e.g. no
// en-passant target).
type Square int8

const SquareNone Square = -1

// MakeSquare builds a Square from zero-based file (0=a..7=h) and rank
// (0=rank1..7=rank8).
func MakeSquare(file, rank int) Square {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return SquareNone
	}
	return Square(rank*8 + file)
}

// File returns the zero-based file, 0=a..7=h.
func (s Square) File() int {
	return int(s) % 8
}

// Rank returns the zero-based rank, 0=rank1..7=rank8.
func (s Square) Rank() int {
	return int(s) / 8
}

func (s Square) String() string {
	if s == SquareNone {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+s.File(), '1'+s.Rank())
}

// SquareFromString parses a two-character algebraic square ("e4"). Returns
// SquareNone, false on malformed input.
func SquareFromString(s string) (Square, bool) {
	if len(s) != 2 {
		return SquareNone, false
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return SquareNone, false
	}
	return MakeSquare(file, rank), true
}
