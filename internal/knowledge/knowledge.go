// Package knowledge loads the endgame knowledge table: a CSV of
// (board string, score) pairs that seed known labels directly into a
// position.Table, independent of whether the graph builder ever reached
// that board.
package knowledge

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/mlang-othello/othello-horizon/internal/boardio"
	"github.com/mlang-othello/othello-horizon/internal/position"
	"github.com/mlang-othello/othello-horizon/internal/symmetry"
)

// Stats summarizes a Load call, for diagnostics.
type Stats struct {
	Records     int
	Inserted    int // records whose id was not already in the table
	Overwritten int // records whose id was already in the table (labels set or not)
}

// Load reads comma-separated records from r: column 0 is a 64-character
// board string, column 2 a signed integer score from the mover's
// perspective. Other columns are ignored. A one-line header is skipped.
//
// Each record seeds label0[id] = score >= 0 and label1[id] = score > 0 for
// id = ToID(Normalize(Parse(board string))). A board not already present in
// tbl is inserted as an isolated vertex. Existing labels are overwritten:
// the knowledge source is authoritative.
func Load(r io.Reader, tbl *position.Table) (Stats, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var stats Stats
	header := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, errors.Wrap(err, "reading knowledge csv")
		}
		if header {
			header = false
			continue
		}
		if len(record) < 3 {
			return stats, errors.Errorf("knowledge record has %d columns, want >= 3", len(record))
		}

		b, err := boardio.Parse(record[0])
		if err != nil {
			return stats, errors.Wrapf(err, "knowledge record %d", stats.Records+1)
		}
		score, err := strconv.Atoi(record[2])
		if err != nil {
			return stats, errors.Wrapf(err, "knowledge record %d: bad score %q", stats.Records+1, record[2])
		}

		norm := symmetry.Normalize(b)
		_, existed := tbl.Lookup(norm)
		id := tbl.ToID(norm)
		if existed {
			stats.Overwritten++
		} else {
			stats.Inserted++
		}
		tbl.SetTerminal(id, score)
		stats.Records++
	}
	return stats, nil
}
