// Package move implements Othello legality, move application, move
// enumeration, and pass/terminal detection over bitboard.Board.
package move

import "github.com/mlang-othello/othello-horizon/internal/bitboard"

// directions enumerates the eight unit steps (dx, dy) != (0, 0).
var directions = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// flipRay reports whether a flip ray exists from (x, y) in direction
// (dx, dy): the immediate neighbor must be opponent-colored, followed by
// zero or more further opponent cells, terminated by a mover cell still on
// the board. It returns the ray's length (excluding the terminator) when
// one exists.
func flipRay(b bitboard.Board, x, y, dx, dy int) (length int, ok bool) {
	nx, ny := x+dx, y+dy
	if !bitboard.InBounds(nx, ny) || bitboard.Get(b, nx, ny) != -1 {
		return 0, false
	}
	for {
		nx += dx
		ny += dy
		if !bitboard.InBounds(nx, ny) {
			return 0, false
		}
		switch bitboard.Get(b, nx, ny) {
		case -1:
			length++
			continue
		case 1:
			return length + 1, true
		default:
			return 0, false
		}
	}
}

// IsLegal reports whether the mover may place a disc at (x, y): the cell
// must be empty and at least one of the eight directions must have a flip
// ray.
func IsLegal(b bitboard.Board, x, y int) bool {
	if !bitboard.InBounds(x, y) || bitboard.Get(b, x, y) != 0 {
		return false
	}
	for _, d := range directions {
		if _, ok := flipRay(b, x, y, d[0], d[1]); ok {
			return true
		}
	}
	return false
}

// Apply places a mover disc at (x, y) and flips every opponent cell lying
// on a valid flip ray from it. Preconditions: IsLegal(b, x, y) holds;
// Apply does not check this. On an empty cell with no flip ray the result
// is b with only the new disc added; on an occupied cell the disc is set
// in Mover regardless and any flip rays are still applied.
func Apply(b bitboard.Board, x, y int) bitboard.Board {
	out := b
	out.Mover |= 1 << uint(bitboard.Index(x, y))
	for _, d := range directions {
		length, ok := flipRay(b, x, y, d[0], d[1])
		if !ok {
			continue
		}
		fx, fy := x+d[0], y+d[1]
		for i := 0; i < length; i++ {
			idx := uint(bitboard.Index(fx, fy))
			out.Opponent &^= 1 << idx
			out.Mover |= 1 << idx
			fx += d[0]
			fy += d[1]
		}
	}
	return out
}

// Moves returns the ascending sequence of cell indices (i = y*8+x) for
// which IsLegal holds. Order matters only for determinism of the caller's
// adjacency lists, not for correctness.
func Moves(b bitboard.Board) []int {
	var out []int
	for y := 0; y < bitboard.Size; y++ {
		for x := 0; x < bitboard.Size; x++ {
			if IsLegal(b, x, y) {
				out = append(out, bitboard.Index(x, y))
			}
		}
	}
	return out
}

// IsTerminal reports whether neither side has a legal move: the mover must
// pass, and so must the opponent once it is their turn.
func IsTerminal(b bitboard.Board) bool {
	if len(Moves(b)) != 0 {
		return false
	}
	return len(Moves(bitboard.FlipTurn(b))) == 0
}

// TerminalValue returns the game value popcount(mover) - popcount(opponent),
// meaningful only once IsTerminal(b) holds.
func TerminalValue(b bitboard.Board) int {
	return bitboard.Popcount(b.Mover) - bitboard.Popcount(b.Opponent)
}
