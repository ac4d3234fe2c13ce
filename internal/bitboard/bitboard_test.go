package bitboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetReflectsMasks(t *testing.T) {
	b := Board{Mover: 1 << Index(3, 4), Opponent: 1 << Index(4, 3)}
	assert.Equal(t, 1, Get(b, 3, 4))
	assert.Equal(t, -1, Get(b, 4, 3))
	assert.Equal(t, 0, Get(b, 0, 0))
}

func TestFlipTurnInvolution(t *testing.T) {
	b := Board{Mover: 0x0000001818000000, Opponent: 0x0000002424000000}
	f := FlipTurn(b)
	require.Equal(t, b.Opponent, f.Mover)
	require.Equal(t, b.Mover, f.Opponent)
	assert.Equal(t, b, FlipTurn(f))
}

func TestPopcountAndOccupiedDisjoint(t *testing.T) {
	b := Board{Mover: 0x0000001818000000, Opponent: 0x0000002424000000}
	assert.Equal(t, 4, Popcount(b.Mover))
	assert.Equal(t, 4, Popcount(b.Opponent))
	assert.Zero(t, b.Mover&b.Opponent)
	assert.Equal(t, 8, Popcount(Occupied(b)))
	assert.LessOrEqual(t, Popcount(b.Mover)+Popcount(b.Opponent), 64)
}
