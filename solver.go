package hanoi

import (
	"fmt"
	"math/bits"
)

// Algorithm selects a solving strategy.
type Algorithm string

const (
	AlgorithmIterative Algorithm = "iterative" // Closed-form, one step per loop iteration
	AlgorithmRecursive Algorithm = "recursive" // Classic divide and conquer
	AlgorithmStack     Algorithm = "stack"     // Divide and conquer on an explicit stack
)

// Algorithms lists every supported algorithm.
var Algorithms = []Algorithm{AlgorithmIterative, AlgorithmRecursive, AlgorithmStack}

// ParseAlgorithm converts a name into an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	for _, a := range Algorithms {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("hanoi: unknown algorithm %q", s)
}

// OptimalMoveCount returns 2^height - 1.
func OptimalMoveCount(height int) uint64 {
	if height <= 0 {
		return 0
	}
	return (uint64(1) << uint(height)) - 1
}

// OptimalMove returns the move made at a 0-based step of the optimal
// solution that carries a stack of the given height from peg 0 to peg 2.
//
// The disk moved at step i is ctz(i+1)+1. Odd and even disks cycle
// through the pegs in opposite directions, picked by the parity of
// disk XOR (height-1), and the source peg follows from how many times
// that disk has already moved.
func OptimalMove(height int, step uint64) Move {
	disk := bits.TrailingZeros64(step+1) + 1
	dir := (disk ^ (height - 1)) & 1
	from := int((step >> uint(disk-dir)) % NumPegs)
	to := (from + 1 + dir) % NumPegs
	return Move{From: from, To: to, Disk: disk}
}

// OptimalMoves returns the full optimal move sequence for a height.
func OptimalMoves(height int) []Move {
	total := OptimalMoveCount(height)
	moves := make([]Move, 0, total)
	for i := uint64(0); i < total; i++ {
		moves = append(moves, OptimalMove(height, i))
	}
	return moves
}

// SolveIterative solves a freshly created puzzle without recursion.
// Moves are applied unchecked; afterwards the move count is set to the
// number of moves performed.
func SolveIterative(p *Puzzle) error {
	total := OptimalMoveCount(p.height)
	var i uint64
	for ; i < total; i++ {
		m := OptimalMove(p.height, i)
		if err := p.MoveUnchecked(m.From, m.To); err != nil {
			return fmt.Errorf("iterative step %d: %w", i, err)
		}
	}
	p.setCount(i)
	return nil
}

// SolveRecursive moves disks from one peg to another using aux as scratch.
// Each relocation of the largest disk is applied unchecked and counted.
func SolveRecursive(p *Puzzle, disks, from, to, aux int) error {
	if disks == 0 {
		return nil
	}
	if err := SolveRecursive(p, disks-1, from, aux, to); err != nil {
		return err
	}
	if err := p.MoveUnchecked(from, to); err != nil {
		return fmt.Errorf("recursive disk %d: %w", disks, err)
	}
	p.count++
	return SolveRecursive(p, disks-1, aux, to, from)
}

// frame is one pending call of the divide-and-conquer solver.
// A frame with move set stands for the single relocation between the
// two recursive halves.
type frame struct {
	disks         int
	from, to, aux int
	move          bool
}

// SolveStack is SolveRecursive driven by an explicit stack, so the
// goroutine stack does not grow with the number of disks.
func SolveStack(p *Puzzle, disks, from, to, aux int) error {
	stack := []frame{{disks: disks, from: from, to: to, aux: aux}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.move {
			if err := p.MoveUnchecked(f.from, f.to); err != nil {
				return fmt.Errorf("stack disk %d: %w", f.disks, err)
			}
			p.count++
			continue
		}
		if f.disks == 0 {
			continue
		}

		// Pushed in reverse so they run as: first half, move, second half.
		stack = append(stack,
			frame{disks: f.disks - 1, from: f.aux, to: f.to, aux: f.from},
			frame{disks: f.disks, from: f.from, to: f.to, move: true},
			frame{disks: f.disks - 1, from: f.from, to: f.aux, aux: f.to},
		)
	}
	return nil
}

// Solve runs the chosen algorithm on p, moving the stack from peg 0 to peg 2.
func Solve(p *Puzzle, algo Algorithm) error {
	switch algo {
	case AlgorithmIterative:
		return SolveIterative(p)
	case AlgorithmRecursive:
		return SolveRecursive(p, p.height, 0, 2, 1)
	case AlgorithmStack:
		return SolveStack(p, p.height, 0, 2, 1)
	default:
		return fmt.Errorf("hanoi: unknown algorithm %q", algo)
	}
}
