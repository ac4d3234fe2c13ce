package knowledge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlang-othello/othello-horizon/internal/bitboard"
	"github.com/mlang-othello/othello-horizon/internal/position"
	"github.com/mlang-othello/othello-horizon/internal/symmetry"
)

const openingBody = "---------------------------OX------XO---------------------------"

func TestLoadSeedsLabelsForReachableBoard(t *testing.T) {
	tbl := position.New()
	opening := bitboard.Board{
		Mover:    1<<bitboard.Index(3, 4) | 1<<bitboard.Index(4, 3),
		Opponent: 1<<bitboard.Index(3, 3) | 1<<bitboard.Index(4, 4),
	}
	id := tbl.ToID(symmetry.Normalize(opening))

	csv := "board,unused,score\n" + openingBody + ",x,4\n"
	stats, err := Load(strings.NewReader(csv), tbl)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Records)
	assert.Equal(t, 1, stats.Overwritten)
	assert.Equal(t, position.LabelWin, tbl.Label0[id])
	assert.Equal(t, position.LabelWin, tbl.Label1[id])
}

func TestLoadInsertsUnreachableRecordAsIsolatedVertex(t *testing.T) {
	tbl := position.New()
	before := tbl.Len()

	csv := "board,unused,score\n" + openingBody + ",x,-1\n"
	stats, err := Load(strings.NewReader(csv), tbl)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Inserted)
	assert.Equal(t, before+1, tbl.Len())
}

func TestLoadZeroScoreSplitsThresholds(t *testing.T) {
	tbl := position.New()
	csv := "header\n" +
		openingBody + ",x,0\n"
	_, err := Load(strings.NewReader(csv), tbl)
	require.NoError(t, err)

	id, ok := tbl.Lookup(symmetry.Normalize(bitboard.Board{
		Mover:    1<<bitboard.Index(3, 4) | 1<<bitboard.Index(4, 3),
		Opponent: 1<<bitboard.Index(3, 3) | 1<<bitboard.Index(4, 4),
	}))
	require.True(t, ok)
	assert.Equal(t, position.LabelWin, tbl.Label0[id])  // score >= 0
	assert.Equal(t, position.LabelLose, tbl.Label1[id]) // not strictly > 0
}

func TestLoadRejectsShortRecord(t *testing.T) {
	tbl := position.New()
	csv := "header\n" + openingBody + ",x\n"
	_, err := Load(strings.NewReader(csv), tbl)
	assert.Error(t, err)
}

func TestLoadRejectsMalformedBoardString(t *testing.T) {
	tbl := position.New()
	csv := "header\ntoo-short,x,1\n"
	_, err := Load(strings.NewReader(csv), tbl)
	assert.Error(t, err)
}

func TestLoadRejectsNonIntegerScore(t *testing.T) {
	tbl := position.New()
	csv := "header\n" + openingBody + ",x,not-a-number\n"
	_, err := Load(strings.NewReader(csv), tbl)
	assert.Error(t, err)
}

func TestLoadOverwritesExistingLabels(t *testing.T) {
	tbl := position.New()
	id := tbl.ToID(symmetry.Normalize(bitboard.Board{
		Mover:    1<<bitboard.Index(3, 4) | 1<<bitboard.Index(4, 3),
		Opponent: 1<<bitboard.Index(3, 3) | 1<<bitboard.Index(4, 4),
	}))
	tbl.SetTerminal(id, -5)
	require.Equal(t, position.LabelLose, tbl.Label0[id])

	csv := "header\n" + openingBody + ",x,9\n"
	stats, err := Load(strings.NewReader(csv), tbl)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Overwritten)
	assert.Equal(t, position.LabelWin, tbl.Label0[id])
	assert.Equal(t, position.LabelWin, tbl.Label1[id])
}
