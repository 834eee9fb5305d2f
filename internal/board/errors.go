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

import "errors"

// Sentinel errors, each with the recovery policy documented at its use
// site. Validation errors never mutate state; ErrStuck and ErrGraveyardFull
// surface after ApplyMove would otherwise have mutated state, which is why
// ApplyMove is transactional (compute-then-commit).
var (
	ErrFenParse            = errors.New("board: malformed FEN")
	ErrImpossiblePosition  = errors.New("board: piece inventory exceeds graveyard capacity")
	ErrNoPieceAtSource     = errors.New("board: no piece at source square")
	ErrWrongColour         = errors.New("board: piece at source does not belong to the side to move")
	ErrOwnPieceAtDestination = errors.New("board: destination occupied by a friendly piece")
	ErrMoveNotFitPiece     = errors.New("board: move does not fit the moving piece's geometry")
	ErrUnallowedCastling   = errors.New("board: castling rights or rook placement forbid this castle")
	ErrEnpassantMissing    = errors.New("board: en-passant capture but no pawn at the captured square")
	ErrGraveyardFull       = errors.New("board: no graveyard cell free for a captured piece")
)
