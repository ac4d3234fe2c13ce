// Package symmetry implements canonicalization of a board under the
// dihedral group D4 of the 8x8 grid: four rotations times {identity,
// horizontal flip}, ordered by the lexicographic pair (Mover, Opponent)
// with Mover primary.
package symmetry

import "github.com/mlang-othello/othello-horizon/internal/bitboard"

// Rotate90 maps cell (x, y) to (y, 7-x), a 90-degree rotation
// (counter-clockwise with row 0 at the top).
func Rotate90(b bitboard.Board) bitboard.Board {
	var out bitboard.Board
	for y := 0; y < bitboard.Size; y++ {
		for x := 0; x < bitboard.Size; x++ {
			src := uint(bitboard.Index(x, y))
			dst := uint(bitboard.Index(y, 7-x))
			out.Mover |= ((b.Mover >> src) & 1) << dst
			out.Opponent |= ((b.Opponent >> src) & 1) << dst
		}
	}
	return out
}

// HFlip maps cell (x, y) to (7-x, y), a horizontal mirror.
func HFlip(b bitboard.Board) bitboard.Board {
	var out bitboard.Board
	for y := 0; y < bitboard.Size; y++ {
		for x := 0; x < bitboard.Size; x++ {
			src := uint(bitboard.Index(x, y))
			dst := uint(bitboard.Index(7-x, y))
			out.Mover |= ((b.Mover >> src) & 1) << dst
			out.Opponent |= ((b.Opponent >> src) & 1) << dst
		}
	}
	return out
}

// less implements the pair-lex order over (Mover, Opponent) with Mover as
// the primary key.
func less(a, b bitboard.Board) bool {
	if a.Mover != b.Mover {
		return a.Mover < b.Mover
	}
	return a.Opponent < b.Opponent
}

// Normalize returns the lexicographically smallest board in b's 8-element
// D4 orbit. The turn (which mask is Mover) is preserved throughout: both
// masks are always rotated/flipped together. Idempotent and stable across
// the orbit: Normalize(Normalize(b)) == Normalize(b), and
// Normalize(g*b) == Normalize(b) for every g in D4.
func Normalize(b bitboard.Board) bitboard.Board {
	cur := b
	best := b
	for i := 0; i < 2; i++ {
		for j := 0; j < 4; j++ {
			cur = Rotate90(cur)
			if less(cur, best) {
				best = cur
			}
		}
		cur = HFlip(cur)
	}
	return best
}
