package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gohanoi/internal/analysis"
	"github.com/SeamusWaldron/gohanoi/internal/journal"
)

func newReplayCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "replay [journal-file]",
		Short: "Replay a recorded run and report wasted moves",
		Long: `Replay a run recorded with --journal and print the final board
with an analysis of the moves: distance from the optimal count, the
first step that left the optimal plan, immediate reversals and moves
that could have been merged.

If no file is given, lists the journals in the journal directory.
Relative paths are looked up in the journal directory first.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			dir := o.cfg.Journal

			if len(args) == 0 {
				return listJournals(out, dir)
			}

			path := args[0]
			if !filepath.IsAbs(path) && dir != "" {
				if _, err := os.Stat(filepath.Join(dir, path)); err == nil {
					path = filepath.Join(dir, path)
				}
			}

			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open journal: %w", err)
			}
			defer f.Close()

			events, err := journal.Read(f)
			if err != nil {
				return fmt.Errorf("failed to read journal: %w", err)
			}
			p, err := journal.Replay(events)
			if err != nil {
				return err
			}

			header, _ := journal.Header(events)
			fmt.Fprintf(out, "Run:    %s\n", header.RunID)
			fmt.Fprintf(out, "Mode:   %s\n", header.Mode)
			fmt.Fprintf(out, "Height: %d\n", p.Height())
			fmt.Fprintln(out)
			fmt.Fprint(out, p)
			fmt.Fprintln(out)

			printReport(out, analysis.Analyze(p.Height(), analysis.TargetOf(p), p.Moves()), p.IsSolved())
			return nil
		},
	}
}

func printReport(w io.Writer, r *analysis.Report, solved bool) {
	fmt.Fprintln(w, "Analysis")
	fmt.Fprintln(w, "--------")
	fmt.Fprintf(w, "Moves:      %d (optimal %d)\n", r.Moves, r.Optimal)
	fmt.Fprintf(w, "Solved:     %v\n", solved)
	if r.FirstDeviation >= 0 {
		fmt.Fprintf(w, "Left plan:  at move %d\n", r.FirstDeviation+1)
	} else {
		fmt.Fprintln(w, "Left plan:  never")
	}
	fmt.Fprintf(w, "Wasted:     %d\n", r.WastedMoves)

	for _, rv := range r.Reversals {
		fmt.Fprintf(w, "  reversal at %d: %s %s\n", rv.Index+1, rv.Move1, rv.Move2)
	}
	for _, m := range r.Merges {
		fmt.Fprintf(w, "  merge at %d: %s %s -> %s\n", m.Index+1, m.Move1, m.Move2, m.Merged)
	}
}

func listJournals(w io.Writer, dir string) error {
	if dir == "" {
		return fmt.Errorf("no journal directory configured (use --journal)")
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.jsonl"))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintf(w, "No journals in %s\n", dir)
		return nil
	}

	sort.Strings(files)
	fmt.Fprintf(w, "Journals in %s:\n", dir)
	for _, f := range files {
		fmt.Fprintf(w, "  %s\n", filepath.Base(f))
	}
	return nil
}
