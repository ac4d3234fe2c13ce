// Package graph builds the breadth-layered position graph: starting at the
// (canonicalized) opening position, it materializes every symmetry-
// equivalence class reachable within D plies, handling the forced-pass rule
// and double-pass termination.
package graph

import (
	"github.com/mlang-othello/othello-horizon/internal/bitboard"
	"github.com/mlang-othello/othello-horizon/internal/logging"
	"github.com/mlang-othello/othello-horizon/internal/move"
	"github.com/mlang-othello/othello-horizon/internal/position"
	"github.com/mlang-othello/othello-horizon/internal/symmetry"
)

// Builder expands the position graph into a position.Table, one layer at a
// time, up to a fixed depth.
type Builder struct {
	Table  *position.Table
	layers [][]position.ID
}

// NewBuilder returns a Builder backed by a fresh, empty Table.
func NewBuilder() *Builder {
	return &Builder{Table: position.New()}
}

// Layers returns, for each expanded depth (0..D), the list of position IDs
// first reached at that depth. Useful for diagnostics: per-layer counts
// show the branching factor at each ply.
func (bd *Builder) Layers() [][]position.ID { return bd.layers }

// Build expands the graph from root (which is canonicalized internally) to
// depth D and returns the root's position.ID.
func (bd *Builder) Build(root bitboard.Board, depth int) position.ID {
	start := symmetry.Normalize(root)
	rootID := bd.Table.ToID(start)

	layer := []position.ID{rootID}
	bd.layers = append(bd.layers, layer)

	for k := 0; k < depth; k++ {
		visited := make(map[bitboard.Board]bool)
		var next []position.ID
		for _, id := range layer {
			b := bd.Table.Board[id]
			bd.expandOne(b, id, visited, &next)
		}
		logging.Logger.Debugf("layer %d: %d positions", k+1, len(next))
		layer = next
		bd.layers = append(bd.layers, layer)
	}

	// Final sweep over the last layer: add pass edges / terminal labels,
	// but never expand successors beyond depth D.
	for _, id := range layer {
		bd.finalizeFrontier(bd.Table.Board[id], id)
	}

	logging.Logger.Infof("graph built: %d positions, depth %d", bd.Table.Len(), depth)
	return rootID
}

// expandOne materializes the outgoing edges of board b (with ID id) into
// layer k+1, deduplicating first-reached boards against visited.
func (bd *Builder) expandOne(b bitboard.Board, id position.ID, visited map[bitboard.Board]bool, next *[]position.ID) {
	moves := move.Moves(b)
	if len(moves) != 0 {
		for _, idx := range moves {
			x, y := idx%bitboard.Size, idx/bitboard.Size
			succ := symmetry.Normalize(bitboard.FlipTurn(move.Apply(b, x, y)))
			succID := bd.Table.ToID(succ)
			bd.Table.AddEdge(id, succID)
			if !visited[succ] {
				visited[succ] = true
				*next = append(*next, succID)
			}
		}
		return
	}

	// Forced pass.
	rawPass := bitboard.FlipTurn(b)
	passBoard := symmetry.Normalize(rawPass)
	passID := bd.Table.ToID(passBoard)
	bd.Table.AddEdge(id, passID)

	passMoves := move.Moves(rawPass)
	if len(passMoves) == 0 {
		bd.Table.SetTerminal(id, move.TerminalValue(b))
		return
	}
	for _, idx := range passMoves {
		x, y := idx%bitboard.Size, idx/bitboard.Size
		succ := symmetry.Normalize(bitboard.FlipTurn(move.Apply(rawPass, x, y)))
		succID := bd.Table.ToID(succ)
		bd.Table.AddEdge(passID, succID)
		if !visited[succ] {
			visited[succ] = true
			*next = append(*next, succID)
		}
	}
}

// finalizeFrontier handles the depth-D frontier: add the pass edge (and
// terminal label on double pass) but never materialize successors beyond
// depth D.
func (bd *Builder) finalizeFrontier(b bitboard.Board, id position.ID) {
	if len(move.Moves(b)) != 0 {
		return
	}
	rawPass := bitboard.FlipTurn(b)
	passBoard := symmetry.Normalize(rawPass)
	passID := bd.Table.ToID(passBoard)
	bd.Table.AddEdge(id, passID)
	if len(move.Moves(rawPass)) == 0 {
		bd.Table.SetTerminal(id, move.TerminalValue(b))
	}
}
