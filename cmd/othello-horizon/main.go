// Command othello-horizon computes the game-theoretic value of the
// standard Othello opening at a fixed search horizon: whether the player
// to move can force a final disc differential >= 0, and whether they can
// force one strictly > 0.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/pkg/profile"

	"github.com/mlang-othello/othello-horizon/internal/bitboard"
	"github.com/mlang-othello/othello-horizon/internal/boardio"
	"github.com/mlang-othello/othello-horizon/internal/graph"
	"github.com/mlang-othello/othello-horizon/internal/knowledge"
	"github.com/mlang-othello/othello-horizon/internal/logging"
	"github.com/mlang-othello/othello-horizon/internal/solver"
)

func main() {
	knowledgePath := flag.String("knowledge", "", "path to the endgame knowledge CSV")
	noKnowledge := flag.Bool("no-knowledge", false, "run without a knowledge table, using only graph-internal terminal labels")
	depth := flag.Int("depth", 10, "expansion depth D")
	loglevel := flag.String("loglevel", "info", "log level: debug|info|notice|warning|error")
	cpuprofile := flag.String("cpuprofile", "", "write a CPU profile to this path")
	stats := flag.Bool("stats", false, "log node/edge counts and per-layer sizes after graph construction")
	flag.Parse()

	logging.SetLevel(*loglevel)

	if *knowledgePath == "" && !*noKnowledge {
		logging.Logger.Error("-knowledge is required unless -no-knowledge is set")
		os.Exit(1)
	}

	if *cpuprofile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*cpuprofile)).Stop()
	}

	if err := run(*knowledgePath, *depth, *stats); err != nil {
		logging.Logger.Errorf("%+v", err)
		os.Exit(1)
	}
}

func opening() bitboard.Board {
	return bitboard.Board{
		Mover:    1<<bitboard.Index(3, 4) | 1<<bitboard.Index(4, 3),
		Opponent: 1<<bitboard.Index(3, 3) | 1<<bitboard.Index(4, 4),
	}
}

func run(knowledgePath string, depth int, stats bool) error {
	logging.Logger.Infof("building graph: depth=%d", depth)

	bd := graph.NewBuilder()
	rootID := bd.Build(opening(), depth)

	if knowledgePath != "" {
		f, err := os.Open(knowledgePath)
		if err != nil {
			return errors.Wrap(err, "opening knowledge csv")
		}
		defer f.Close()

		kstats, err := knowledge.Load(f, bd.Table)
		if err != nil {
			return errors.Wrap(err, "loading knowledge csv")
		}
		logging.Logger.Infof("knowledge loaded: %d records, %d inserted as isolated vertices, %d matched existing positions",
			kstats.Records, kstats.Inserted, kstats.Overwritten)
	}

	if stats {
		logStats(bd)
	}

	resolved0, resolved1 := solver.Solve(bd.Table)
	logging.Logger.Infof("solver resolved %d threshold-0 and %d threshold-1 labels", resolved0, resolved1)

	label0 := bd.Table.Label0[rootID]
	label1 := bd.Table.Label1[rootID]
	logging.Logger.Infof("root: %s", boardio.Debug(bd.Table.Board[rootID]))
	fmt.Printf("%d,%d\n", label0, label1)
	return nil
}

func logStats(bd *graph.Builder) {
	var edges int
	for i := 0; i < bd.Table.Len(); i++ {
		edges += len(bd.Table.Next[i])
	}
	logging.Logger.Infof("graph stats: %d nodes, %d edges", bd.Table.Len(), edges)
	for depth, layer := range bd.Layers() {
		logging.Logger.Infof("layer %d: %d positions", depth, len(layer))
	}
	root := bd.Table.Board[0]
	logging.Logger.Debugf("root position:\n%s", boardio.Pretty(root, -1))
}
