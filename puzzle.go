package hanoi

import "fmt"

// NumPegs is the number of pegs in the puzzle.
const NumPegs = 3

// MaxHeight is the tallest supported puzzle.
// 2^63-1 moves still fit in the uint64 move counter.
const MaxHeight = 63

// Puzzle is a Tower of Hanoi board: three pegs and a move counter.
// All disks start on peg 0, largest at the bottom.
type Puzzle struct {
	height int
	count  uint64
	pegs   [NumPegs]Peg

	config  *config
	history []Move
}

// New creates a puzzle of the given height with every disk on peg 0.
func New(height int, opts ...Option) (*Puzzle, error) {
	if height < 0 || height > MaxHeight {
		return nil, fmt.Errorf("%w: %d (want 0..%d)", ErrInvalidHeight, height, MaxHeight)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	p := &Puzzle{
		height: height,
		config: cfg,
	}
	p.stack()
	return p, nil
}

// stack places all disks on peg 0.
func (p *Puzzle) stack() {
	for size := p.height; size > 0; size-- {
		// Cannot overflow: height <= MaxHeight < PegCapacity.
		_ = p.pegs[0].Push(size)
	}
}

// Reset returns the puzzle to its initial state.
func (p *Puzzle) Reset() {
	p.pegs = [NumPegs]Peg{}
	p.count = 0
	p.history = nil
	p.stack()
}

// Clone creates a deep copy of the puzzle.
func (p *Puzzle) Clone() *Puzzle {
	clone := &Puzzle{
		height: p.height,
		count:  p.count,
		pegs:   p.pegs,
		config: p.config,
	}
	if p.history != nil {
		clone.history = make([]Move, len(p.history))
		copy(clone.history, p.history)
	}
	return clone
}

// Height returns the number of disks in the puzzle.
func (p *Puzzle) Height() int {
	return p.height
}

// MoveCount returns the number of moves performed so far.
func (p *Puzzle) MoveCount() uint64 {
	return p.count
}

// Peg returns a copy of the given peg's disks, bottom to top.
// It returns nil for an out-of-range index.
func (p *Puzzle) Peg(i int) []int {
	if !validPeg(i) {
		return nil
	}
	return p.pegs[i].Disks()
}

// Top returns the top disk of a peg, or EmptyTop.
func (p *Puzzle) Top(i int) int {
	if !validPeg(i) {
		return EmptyTop
	}
	return p.pegs[i].Top()
}

// DiskAt returns the disk on peg at the given level (0 = bottom),
// or EmptyTop if that slot is empty.
func (p *Puzzle) DiskAt(peg, level int) int {
	if !validPeg(peg) {
		return EmptyTop
	}
	return p.pegs[peg].At(level)
}

// Moves returns the recorded move history.
func (p *Puzzle) Moves() []Move {
	out := make([]Move, len(p.history))
	copy(out, p.history)
	return out
}

func validPeg(i int) bool {
	return i >= 0 && i < NumPegs
}

// CheckMove reports whether moving the top disk of from onto to is legal.
// An empty target counts as holding a disk of size EmptyTop.
func (p *Puzzle) CheckMove(from, to int) error {
	if !validPeg(from) || !validPeg(to) {
		return fmt.Errorf("%w: %d->%d", ErrInvalidPeg, from, to)
	}
	if from == to {
		return ErrSamePeg
	}
	if p.pegs[from].Len() == 0 {
		return ErrEmptyPeg
	}

	a := p.pegs[from].Top()
	b := p.pegs[to].Top()
	if b != EmptyTop && a > b {
		return fmt.Errorf("%w: disk %d onto disk %d", ErrIllegalMove, a, b)
	}
	return nil
}

// Move moves the top disk of from onto to if the move is legal.
// An illegal move returns an error and leaves the puzzle untouched.
func (p *Puzzle) Move(from, to int) error {
	if err := p.CheckMove(from, to); err != nil {
		return err
	}
	disk, err := p.transfer(from, to)
	if err != nil {
		return err
	}
	p.count++
	p.record(Move{From: from, To: to, Disk: disk})
	return nil
}

// TryMove is Move with a boolean result: true if the disk was moved.
func (p *Puzzle) TryMove(from, to int) bool {
	return p.Move(from, to) == nil
}

// MoveUnchecked moves the top disk of from onto to without validating
// ordering and without counting the move. Solvers use it for moves that
// are legal by construction.
func (p *Puzzle) MoveUnchecked(from, to int) error {
	if !validPeg(from) || !validPeg(to) {
		return fmt.Errorf("%w: %d->%d", ErrInvalidPeg, from, to)
	}
	disk, err := p.transfer(from, to)
	if err != nil {
		return err
	}
	p.record(Move{From: from, To: to, Disk: disk})
	return nil
}

// transfer pops from one peg and pushes onto another.
// On overflow the disk is put back so the puzzle is unchanged.
func (p *Puzzle) transfer(from, to int) (int, error) {
	disk, err := p.pegs[from].Pop()
	if err != nil {
		return 0, fmt.Errorf("peg %d: %w", from, err)
	}
	if err := p.pegs[to].Push(disk); err != nil {
		_ = p.pegs[from].Push(disk)
		return 0, fmt.Errorf("peg %d: %w", to, err)
	}
	return disk, nil
}

func (p *Puzzle) record(m Move) {
	if !p.config.moveHistory {
		return
	}
	if p.config.historyCap > 0 && uint64(len(p.history)) >= p.config.historyCap {
		return
	}
	p.history = append(p.history, m)
}

// setCount overwrites the move counter. Used by the iterative solver.
func (p *Puzzle) setCount(n uint64) {
	p.count = n
}

// IsSolved returns true if the whole stack sits on peg 1 or peg 2.
func (p *Puzzle) IsSolved() bool {
	return p.pegs[1].Len() == p.height || p.pegs[2].Len() == p.height
}

// IsOrdered returns true if every peg is strictly decreasing from bottom to top.
func (p *Puzzle) IsOrdered() bool {
	for i := range p.pegs {
		if !p.pegs[i].isOrdered() {
			return false
		}
	}
	return true
}

// String returns the board in the classic ASCII layout.
func (p *Puzzle) String() string {
	return Render(p)
}
