// Package position implements a bijection between canonical boards and
// dense integer IDs, with successor/predecessor adjacency and the two
// threshold labels used by the solver.
package position

import "github.com/mlang-othello/othello-horizon/internal/bitboard"

// ID is a dense, non-negative position identifier. IDs are assigned on
// first insertion and never change once assigned.
type ID int

// Label is a threshold decision: LabelUnknown until terminal detection, the
// knowledge loader or the fixpoint solver determines it as LabelWin or
// LabelLose. The solver never changes a determined label; SetTerminal (and
// so the knowledge loader) overwrites whatever label is present.
type Label int8

const (
	LabelUnknown Label = 0
	LabelLose    Label = -1
	LabelWin     Label = 1
)

// Table owns all persistent per-position state: the canonical board, the
// adjacency lists, and the two labels, indexed by ID.
//
// Table does not re-normalize boards on insertion — callers are
// responsible for calling symmetry.Normalize first.
type Table struct {
	index  map[bitboard.Board]ID
	Board  []bitboard.Board
	Next   [][]ID
	Prev   [][]ID
	Label0 []Label
	Label1 []Label
}

// New returns an empty Position Table.
func New() *Table {
	return &Table{index: make(map[bitboard.Board]ID)}
}

// ToID looks up or inserts the canonical board b, returning its ID. On
// insertion, adjacency lists start empty and both labels start at
// LabelUnknown.
func (t *Table) ToID(b bitboard.Board) ID {
	if id, ok := t.index[b]; ok {
		return id
	}
	id := ID(len(t.Board))
	t.index[b] = id
	t.Board = append(t.Board, b)
	t.Next = append(t.Next, nil)
	t.Prev = append(t.Prev, nil)
	t.Label0 = append(t.Label0, LabelUnknown)
	t.Label1 = append(t.Label1, LabelUnknown)
	return id
}

// Lookup reports the ID of a canonical board already in the table, without
// inserting it.
func (t *Table) Lookup(b bitboard.Board) (ID, bool) {
	id, ok := t.index[b]
	return id, ok
}

// Len returns the number of positions currently in the table.
func (t *Table) Len() int { return len(t.Board) }

// AddEdge records the edge src -> dst: dst is appended to Next[src] and src
// to Prev[dst]. Both lists always grow together. Duplicate edges (the same
// dst appended twice to the same src) are permitted and intentionally not
// deduplicated: the solver's outgoing counters depend on the multiplicity
// surviving.
func (t *Table) AddEdge(src, dst ID) {
	t.Next[src] = append(t.Next[src], dst)
	t.Prev[dst] = append(t.Prev[dst], src)
}

// SetTerminal seeds both labels for a terminal position directly from its
// game value.
func (t *Table) SetTerminal(id ID, value int) {
	t.Label0[id] = signGE0(value)
	t.Label1[id] = signGT0(value)
}

func signGE0(v int) Label {
	if v >= 0 {
		return LabelWin
	}
	return LabelLose
}

func signGT0(v int) Label {
	if v > 0 {
		return LabelWin
	}
	return LabelLose
}
