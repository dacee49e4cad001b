package cli

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gohanoi"
	"github.com/SeamusWaldron/gohanoi/internal/analysis"
	"github.com/SeamusWaldron/gohanoi/internal/journal"
)

const modeUser = "user"

// journalMoveLimit is the longest solver run that can be journaled.
const journalMoveLimit = 1 << 20

var errJournalTooLong = errors.New("solver run too long to journal")

// validateModeArgs accepts exactly "<mode> <height>".
func validateModeArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: want 2 arguments, got %d", errUsage, len(args))
	}
	if !isMode(args[0]) {
		return fmt.Errorf("%w: unknown mode %q", errUsage, args[0])
	}
	if _, err := parseHeight(args[1]); err != nil {
		return err
	}
	return nil
}

func isMode(s string) bool {
	if s == modeUser {
		return true
	}
	_, err := hanoi.ParseAlgorithm(s)
	return err == nil
}

// parseHeight parses a non-negative decimal disk count.
func parseHeight(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: bad number of plates %q", errUsage, s)
	}
	return n, nil
}

func runMode(cmd *cobra.Command, o *options, args []string) error {
	mode := args[0]
	height, _ := parseHeight(args[1])
	out := cmd.OutOrStdout()

	var opts []hanoi.Option
	if mode != modeUser {
		// Solver runs can reach 2^63 moves; only keep what the journal needs.
		if o.cfg.Journal != "" {
			opts = append(opts, hanoi.WithHistoryLimit(journalMoveLimit))
		} else {
			opts = append(opts, hanoi.WithMoveHistory(false))
		}
	}

	tracker, err := hanoi.NewTracker(height, opts...)
	if err != nil {
		return err
	}
	if mode != modeUser && o.cfg.Journal != "" {
		if n := hanoi.OptimalMoveCount(height); n > journalMoveLimit {
			return fmt.Errorf("%w: height %d takes %d moves, the journal keeps at most %d; drop --journal or use a height of 20 or less",
				errJournalTooLong, height, n, journalMoveLimit)
		}
	}

	j, err := openJournal(o, mode, height)
	if err != nil {
		return err
	}
	log.Printf("run %s: mode=%s height=%d", j.RunID(), mode, height)

	fmt.Fprint(out, tracker.String())

	pz := tracker.Puzzle()
	if mode == modeUser {
		j.Attach(tracker)
		err = playLines(cmd.InOrStdin(), out, cmd.ErrOrStderr(), tracker)
		if err == nil {
			r := analysis.Analyze(height, analysis.TargetOf(pz), pz.Moves())
			log.Printf("run %s: %d over optimal, %d wasted", j.RunID(), r.Excess, r.WastedMoves)
		}
	} else {
		algo, _ := hanoi.ParseAlgorithm(mode)
		err = hanoi.Solve(pz, algo)
		if err == nil {
			for i, m := range pz.Moves() {
				j.LogMove(m, uint64(i+1))
			}
			j.LogSolved(pz.MoveCount())
		}
	}
	if cerr := j.Close(pz.MoveCount()); cerr != nil {
		log.Printf("run %s: closing journal: %v", j.RunID(), cerr)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprint(out, tracker.String())
	fmt.Fprintf(out, "moves: %d\n", pz.MoveCount())
	log.Printf("run %s: finished in %d moves", j.RunID(), pz.MoveCount())
	return nil
}

// openJournal returns nil when journaling is off; a nil journal drops events.
func openJournal(o *options, mode string, height int) (*journal.Journal, error) {
	if o.cfg.Journal == "" {
		return nil, nil
	}
	j, err := journal.Create(o.cfg.Journal, mode, height)
	if err != nil {
		return nil, err
	}
	log.Printf("journal: %s", j.FilePath())
	return j, nil
}
