// Package hanoi models the Tower of Hanoi puzzle and solves it.
//
// # Features
//
//   - Bounded peg stacks with explicit overflow and underflow errors
//   - Checked moves that enforce the size rule
//   - Iterative closed-form solver (no recursion)
//   - Recursive divide-and-conquer solver, plus an explicit-stack variant
//   - Move tracking with callbacks
//   - ASCII board rendering
//
// # Quick Start
//
// Play a few moves by hand:
//
//	p, err := hanoi.New(3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := p.Move(0, 2); err != nil {
//	    fmt.Println("refused:", err)
//	}
//	fmt.Print(p)
//
// # Solving
//
// Both solvers move the stack from peg 0 to peg 2 in 2^H-1 moves and
// produce the same sequence:
//
//	p, _ := hanoi.New(5)
//	_ = hanoi.Solve(p, hanoi.AlgorithmIterative)
//	fmt.Println(p.IsSolved(), p.MoveCount()) // true 31
//
// Solvers apply moves with MoveUnchecked, which skips the ordering check.
// They must start from a freshly created (or Reset) puzzle.
//
// # Empty Pegs
//
// An empty peg reports EmptyTop (0) as its top disk. Any disk may be
// placed on an empty peg; nothing can be taken from one.
package hanoi
