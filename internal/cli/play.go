package cli

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gohanoi"
	"github.com/SeamusWaldron/gohanoi/internal/analysis"
	"github.com/SeamusWaldron/gohanoi/internal/tui"
)

func newPlayCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "play [height]",
		Short: "Play in a full-screen terminal UI",
		Long: `Start an interactive TUI game.

Keyboard shortcuts:
  1-3     - Pick the source peg, then the target peg
  u       - Undo the last move
  s       - Auto-solve (from the initial stack)
  r       - Reset
  q/Esc   - Quit`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			height, err := heightArg(o, args)
			if err != nil {
				return err
			}

			tracker, err := hanoi.NewTracker(height)
			if err != nil {
				return err
			}
			j, err := openJournal(o, "play", height)
			if err != nil {
				return err
			}
			j.Attach(tracker)

			tc := o.cfg.TUI
			err = tui.Run(tracker, tui.Options{
				Colors: tui.Colors{
					Disk:   tc.DiskColor,
					Peg:    tc.PegColor,
					Cursor: tc.CursorColor,
				},
				StepDelay: time.Duration(tc.StepDelayMs) * time.Millisecond,
			}, cmd.InOrStdin(), cmd.OutOrStdout())

			pz := tracker.Puzzle()
			if cerr := j.Close(pz.MoveCount()); cerr != nil {
				log.Printf("closing journal: %v", cerr)
			}
			if err != nil {
				return fmt.Errorf("tui failed: %w", err)
			}

			if pz.IsSolved() {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Solved in %d moves (optimal %d)\n\n", pz.MoveCount(), hanoi.OptimalMoveCount(height))
				printReport(out, analysis.Analyze(height, analysis.TargetOf(pz), pz.Moves()), true)
			}
			return nil
		},
	}
}
