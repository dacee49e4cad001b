// Package analysis finds wasted motion in a played move sequence.
package analysis

import (
	"github.com/SeamusWaldron/gohanoi"
)

// Reversal is a move immediately undone by the next one (0->1 then 1->0).
type Reversal struct {
	Index int    `json:"index"`
	Move1 string `json:"move1"`
	Move2 string `json:"move2"`
}

// Merge is the same disk moved twice in a row to a third peg
// (0->1 then 1->2), which one move (0->2) would have done.
type Merge struct {
	Index  int    `json:"index"`
	Move1  string `json:"move1"`
	Move2  string `json:"move2"`
	Merged string `json:"merged"`
}

// Report summarizes a move sequence.
type Report struct {
	Moves          int        `json:"moves"`
	Optimal        uint64     `json:"optimal"`
	Excess         int64      `json:"excess"`
	Target         int        `json:"target"`
	FirstDeviation int        `json:"first_deviation"` // -1 if the moves follow the optimal plan
	Reversals      []Reversal `json:"reversals"`
	Merges         []Merge    `json:"merges"`
	WastedMoves    int        `json:"wasted_moves"`
}

// Analyze inspects moves played on a puzzle of the given height that ended
// (or is heading) with the stack on target peg 1 or 2.
func Analyze(height, target int, moves []hanoi.Move) *Report {
	optimal := hanoi.OptimalMoveCount(height)
	report := &Report{
		Moves:          len(moves),
		Optimal:        optimal,
		Excess:         int64(len(moves)) - int64(optimal),
		Target:         target,
		FirstDeviation: firstDeviation(height, target, moves),
		Reversals:      []Reversal{},
		Merges:         []Merge{},
	}

	for i := 0; i < len(moves)-1; i++ {
		m1, m2 := moves[i], moves[i+1]
		if m1.To != m2.From {
			continue
		}

		if m1.Inverse().From == m2.From && m1.Inverse().To == m2.To {
			report.Reversals = append(report.Reversals, Reversal{
				Index: i,
				Move1: m1.Notation(),
				Move2: m2.Notation(),
			})
			report.WastedMoves += 2
			continue
		}

		if m1.Disk != 0 && m1.Disk == m2.Disk {
			merged := hanoi.Move{From: m1.From, To: m2.To, Disk: m1.Disk}
			report.Merges = append(report.Merges, Merge{
				Index:  i,
				Move1:  m1.Notation(),
				Move2:  m2.Notation(),
				Merged: merged.Notation(),
			})
			report.WastedMoves++
		}
	}

	return report
}

// firstDeviation returns the index of the first move that leaves the
// optimal plan toward target, or -1.
func firstDeviation(height, target int, moves []hanoi.Move) int {
	total := hanoi.OptimalMoveCount(height)
	for i, m := range moves {
		if uint64(i) >= total {
			return i
		}
		want := towards(hanoi.OptimalMove(height, uint64(i)), target)
		if m.From != want.From || m.To != want.To {
			return i
		}
	}
	return -1
}

// towards rewrites a move of the 0->2 plan for a stack headed to target.
// The plan to peg 1 is the plan to peg 2 with pegs 1 and 2 swapped.
func towards(m hanoi.Move, target int) hanoi.Move {
	if target != 1 {
		return m
	}
	swap := func(p int) int {
		switch p {
		case 1:
			return 2
		case 2:
			return 1
		}
		return p
	}
	m.From, m.To = swap(m.From), swap(m.To)
	return m
}

// TargetOf guesses the destination peg of a puzzle: the non-origin peg
// holding more disks, peg 2 on a tie.
func TargetOf(p *hanoi.Puzzle) int {
	if len(p.Peg(1)) > len(p.Peg(2)) {
		return 1
	}
	return 2
}
