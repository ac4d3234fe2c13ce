// Package bitboard implements the 64-bit board encoding shared by every
// other package in this module: two disjoint masks, mover and opponent,
// indexed by i = y*8 + x with x the column and y the row.
package bitboard

import "math/bits"

// Size is the fixed board dimension; the core never handles other sizes.
const Size = 8

// Board is an unordered Othello position plus an implicit turn indicator.
// The turn is encoded by which mask is labeled Mover; swapping the two
// masks (FlipTurn) flips whose turn it is.
type Board struct {
	Mover    uint64
	Opponent uint64
}

// Index returns the bit index for board coordinates (x, y).
func Index(x, y int) int { return y*Size + x }

// InBounds reports whether (x, y) addresses a cell on the board.
func InBounds(x, y int) bool { return x >= 0 && x < Size && y >= 0 && y < Size }

// Get returns +1 if the mover occupies (x, y), -1 if the opponent does, and
// 0 if the cell is empty. Undefined for out-of-range coordinates; callers
// bounds-check with InBounds first.
func Get(b Board, x, y int) int {
	i := uint(Index(x, y))
	mover := (b.Mover >> i) & 1
	opp := (b.Opponent >> i) & 1
	return int(mover) - int(opp)
}

// Popcount returns the exact number of set bits in mask.
func Popcount(mask uint64) int {
	return bits.OnesCount64(mask)
}

// FlipTurn swaps mover and opponent, producing the board as seen by the
// other side. Involution: FlipTurn(FlipTurn(b)) == b.
func FlipTurn(b Board) Board {
	return Board{Mover: b.Opponent, Opponent: b.Mover}
}

// Occupied returns the union of both sides' cells.
func Occupied(b Board) uint64 {
	return b.Mover | b.Opponent
}
