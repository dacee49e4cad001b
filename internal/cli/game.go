package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/SeamusWaldron/gohanoi"
)

var errInputClosed = errors.New("input closed before puzzle was solved")

// playLines runs the line-oriented game: read a move, try it, redraw,
// until the puzzle is solved.
func playLines(in io.Reader, out, errOut io.Writer, t *hanoi.Tracker) error {
	scanner := bufio.NewScanner(in)
	for !t.IsSolved() {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read move: %w", err)
			}
			return errInputClosed
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		m, err := hanoi.ParseMove(line)
		if err != nil {
			fmt.Fprintf(errOut, "%v\n", err)
			continue
		}
		if err := t.Apply(m); err != nil {
			fmt.Fprintf(errOut, "refused %s: %v\n", m.Notation(), err)
		}
		fmt.Fprint(out, t.String())
	}
	return nil
}
