package hanoi

// Progress summarizes how far a puzzle is from solved.
type Progress struct {
	Target      int     // Peg holding the most disks outside peg 0
	OnTarget    int     // Disks currently on Target
	Height      int     // Total number of disks
	Moves       uint64  // Moves made so far
	Optimal     uint64  // Moves needed by the optimal solution
	Efficiency  float64 // Optimal / Moves once solved, 0 before
	SolvedState bool
}

// Tracker wraps a Puzzle and reports moves and completion to callbacks.
type Tracker struct {
	puzzle         *Puzzle
	solved         bool   // Solved as of the last applied move
	applied        []Move // Undo stack, independent of the puzzle history
	moveCallback   func(m Move)
	solvedCallback func(moves uint64)
	illegalHandler func(m Move, err error)
}

// NewTracker creates a tracker around a fresh puzzle of the given height.
func NewTracker(height int, opts ...Option) (*Tracker, error) {
	p, err := New(height, opts...)
	if err != nil {
		return nil, err
	}
	return &Tracker{puzzle: p, solved: p.IsSolved()}, nil
}

// OnMove sets a callback fired after every applied move.
func (t *Tracker) OnMove(cb func(m Move)) {
	t.moveCallback = cb
}

// OnSolved sets a callback fired each time the puzzle goes from unsolved
// to solved.
func (t *Tracker) OnSolved(cb func(moves uint64)) {
	t.solvedCallback = cb
}

// OnIllegal sets a callback fired when a move is refused.
func (t *Tracker) OnIllegal(cb func(m Move, err error)) {
	t.illegalHandler = cb
}

// Reset puts every disk back on peg 0.
func (t *Tracker) Reset() {
	t.puzzle.Reset()
	t.applied = nil
	t.solved = t.puzzle.IsSolved()
}

// Apply attempts a checked move.
func (t *Tracker) Apply(m Move) error {
	if err := t.puzzle.Move(m.From, m.To); err != nil {
		if t.illegalHandler != nil {
			t.illegalHandler(m, err)
		}
		return err
	}

	m.Disk = t.puzzle.Top(m.To)
	t.applied = append(t.applied, m)
	if t.moveCallback != nil {
		t.moveCallback(m)
	}
	t.checkSolved()
	return nil
}

// Undo reverses the last move made through Apply with a checked move.
// It returns false when there is nothing to undo. The undo counts as a
// move and works whatever the history options are.
func (t *Tracker) Undo() bool {
	if len(t.applied) == 0 {
		return false
	}
	last := t.applied[len(t.applied)-1]
	inv := last.Inverse()
	if err := t.puzzle.CheckMove(inv.From, inv.To); err != nil {
		return false
	}

	_, _ = t.puzzle.transfer(inv.From, inv.To)
	t.applied = t.applied[:len(t.applied)-1]
	// Drop the move from the history only when the history still ends with it.
	if h := t.puzzle.history; len(h) == len(t.applied)+1 && h[len(h)-1] == last {
		t.puzzle.history = h[:len(h)-1]
	}
	t.puzzle.count++
	if t.moveCallback != nil {
		t.moveCallback(inv)
	}
	t.checkSolved()
	return true
}

func (t *Tracker) checkSolved() {
	solved := t.puzzle.IsSolved()
	fire := solved && !t.solved
	t.solved = solved
	if fire && t.solvedCallback != nil {
		t.solvedCallback(t.puzzle.MoveCount())
	}
}

// Progress returns the current progress.
func (t *Tracker) Progress() Progress {
	p := t.puzzle
	target := 2
	if p.pegs[1].Len() > p.pegs[2].Len() {
		target = 1
	}

	pr := Progress{
		Target:      target,
		OnTarget:    p.pegs[target].Len(),
		Height:      p.height,
		Moves:       p.count,
		Optimal:     OptimalMoveCount(p.height),
		SolvedState: p.IsSolved(),
	}
	if pr.SolvedState && pr.Moves > 0 {
		pr.Efficiency = float64(pr.Optimal) / float64(pr.Moves)
	}
	return pr
}

// IsSolved returns true if the puzzle is solved.
func (t *Tracker) IsSolved() bool {
	return t.puzzle.IsSolved()
}

// Puzzle returns the underlying puzzle for inspection.
func (t *Tracker) Puzzle() *Puzzle {
	return t.puzzle
}

// String returns the rendered board.
func (t *Tracker) String() string {
	return Render(t.puzzle)
}
