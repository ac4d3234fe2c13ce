// Package boardio implements the external board-string interface: a
// 64-character row-major string over {'X','O','-'}, 'X' meaning the mover,
// 'O' the opponent, '-' empty, plus a debug rendering.
package boardio

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/mlang-othello/othello-horizon/internal/bitboard"
)

// ErrMalformedBoard is wrapped with positional detail by Parse.
var ErrMalformedBoard = errors.New("malformed board string")

// Parse decodes a 64-character board string into a bitboard.Board. Any
// length other than 64, or any character outside {'X','O','-'}, is a fatal
// parse error.
func Parse(s string) (bitboard.Board, error) {
	var b bitboard.Board
	if len(s) != 64 {
		return b, errors.Wrapf(ErrMalformedBoard, "length %d, want 64", len(s))
	}
	for i := 0; i < 64; i++ {
		switch s[i] {
		case 'X':
			b.Mover |= 1 << uint(i)
		case 'O':
			b.Opponent |= 1 << uint(i)
		case '-':
		default:
			return bitboard.Board{}, errors.Wrapf(ErrMalformedBoard, "illegal character %q at offset %d", s[i], i)
		}
	}
	return b, nil
}

// Format renders b as the canonical 64-character row-major string.
func Format(b bitboard.Board) string {
	var sb strings.Builder
	sb.Grow(64)
	for i := 0; i < 64; i++ {
		mask := uint64(1) << uint(i)
		switch {
		case b.Mover&mask != 0:
			sb.WriteByte('X')
		case b.Opponent&mask != 0:
			sb.WriteByte('O')
		default:
			sb.WriteByte('-')
		}
	}
	return sb.String()
}

// Debug renders b with a " X;" mover-to-move suffix, for debug output.
func Debug(b bitboard.Board) string {
	return Format(b) + " X;"
}

// Pretty renders b as an 8x8 grid, one row per line, optionally marking a
// cell index with '*' instead of its usual symbol. Purely a debug aid, not
// part of the canonical I/O format.
func Pretty(b bitboard.Board, highlight int) string {
	var sb strings.Builder
	for y := 0; y < bitboard.Size; y++ {
		for x := 0; x < bitboard.Size; x++ {
			i := bitboard.Index(x, y)
			switch {
			case i == highlight:
				sb.WriteByte('*')
			case b.Mover&(1<<uint(i)) != 0:
				sb.WriteByte('X')
			case b.Opponent&(1<<uint(i)) != 0:
				sb.WriteByte('O')
			default:
				sb.WriteByte('-')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
