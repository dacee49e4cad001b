package hanoi

import (
	"fmt"
	"strconv"
	"strings"
)

// Move is a single disk relocation from one peg to another.
type Move struct {
	From int // Source peg (0, 1 or 2)
	To   int // Target peg (0, 1 or 2)
	Disk int // Size of the moved disk; 0 when unknown
}

// Notation returns the compact form of the move.
// Examples: 0->2, 1->0
func (m Move) Notation() string {
	return strconv.Itoa(m.From) + "->" + strconv.Itoa(m.To)
}

// Inverse returns the move that undoes this one.
func (m Move) Inverse() Move {
	return Move{From: m.To, To: m.From, Disk: m.Disk}
}

// String returns the notation, with the disk when it is known.
func (m Move) String() string {
	if m.Disk == 0 {
		return m.Notation()
	}
	return fmt.Sprintf("%s (disk %d)", m.Notation(), m.Disk)
}

// moveTemplate is the prompt format read in interactive mode.
const moveTemplate = "move disk from tower: %d, to tower: %d"

// ParseMove parses a move typed by a player.
// Accepted forms:
//
//	move disk from tower: 0, to tower: 2
//	0 2
//	0->2
//
// Peg indices are not range checked here; Puzzle.CheckMove does that.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Move{}, ErrInvalidMove
	}

	var from, to int
	if strings.HasPrefix(s, "move") {
		if _, err := fmt.Sscanf(s, moveTemplate, &from, &to); err != nil {
			return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
		}
		return Move{From: from, To: to}, nil
	}

	var parts []string
	if strings.Contains(s, "->") {
		parts = strings.SplitN(s, "->", 2)
	} else {
		parts = strings.Fields(s)
	}
	if len(parts) != 2 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}

	from, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	to, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}

	return Move{From: from, To: to}, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}
