// Package solver implements backward induction over a position.Table: two
// independent threshold labelings propagated from seeded/terminal vertices
// back through the predecessor graph until quiescence.
package solver

import "github.com/mlang-othello/othello-horizon/internal/position"

// Solve propagates label0 and label1 to quiescence and returns the number
// of vertices each label newly determined, for diagnostics. tbl's
// adjacency lists must be frozen (the graph builder has finished) before
// calling Solve; Solve only reads Next/Prev and writes Label0/Label1.
func Solve(tbl *position.Table) (resolved0, resolved1 int) {
	n := tbl.Len()
	out0 := make([]int, n)
	out1 := make([]int, n)
	for i := 0; i < n; i++ {
		out0[i] = len(tbl.Next[i])
		out1[i] = len(tbl.Next[i])
	}

	var q0, q1 []position.ID
	for i := 0; i < n; i++ {
		id := position.ID(i)
		if tbl.Label0[id] != position.LabelUnknown {
			out0[id] = 0
			q0 = append(q0, id)
		}
		if tbl.Label1[id] != position.LabelUnknown {
			out1[id] = 0
			q1 = append(q1, id)
		}
	}

	for len(q0) > 0 || len(q1) > 0 {
		if len(q0) > 0 {
			var i position.ID
			i, q0 = q0[0], q0[1:]
			q0 = relax(tbl, i, tbl.Label0, out0, q0, &resolved0)
		}
		if len(q1) > 0 {
			var i position.ID
			i, q1 = q1[0], q1[1:]
			q1 = relax(tbl, i, tbl.Label1, out1, q1, &resolved1)
		}
	}
	return resolved0, resolved1
}

// relax propagates the determination of label[i] to its predecessors,
// appending any newly-determined predecessor to queue and returning the
// (possibly extended) queue. resolved counts new determinations.
func relax(tbl *position.Table, i position.ID, label []position.Label, out []int, queue []position.ID, resolved *int) []position.ID {
	switch label[i] {
	case position.LabelWin:
		for _, j := range tbl.Prev[i] {
			if out[j] == 0 || label[j] != position.LabelUnknown {
				continue
			}
			out[j]--
			if out[j] == 0 && label[j] == position.LabelUnknown {
				label[j] = position.LabelLose
				*resolved++
				queue = append(queue, j)
			}
		}
	case position.LabelLose:
		for _, j := range tbl.Prev[i] {
			if out[j] == 0 || label[j] != position.LabelUnknown {
				continue
			}
			label[j] = position.LabelWin
			out[j] = 0
			*resolved++
			queue = append(queue, j)
		}
	}
	return queue
}
