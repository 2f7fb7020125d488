package engine

import . "github.com/kinderchess/kinder/pkg/common"

// pvTable remembers the best move found for each position key during one search.
type pvTable map[uint64]Move

func (t pvTable) clear() {
	for key := range t {
		delete(t, key)
	}
}

// line follows the table from p for at most depth moves. p is restored before returning.
func (t pvTable) line(p *Position, depth int) []Move {
	var result []Move
	var snapshots []Snapshot
	for len(result) < depth {
		var m, found = t[p.Key()]
		if !found {
			break
		}
		result = append(result, m)
		snapshots = append(snapshots, p.MakeMove(m))
	}
	for i := len(snapshots) - 1; i >= 0; i-- {
		p.UnmakeMove(snapshots[i])
	}
	return result
}
