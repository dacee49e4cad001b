package cli

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gohanoi"
)

const maxTraceHeight = 16

func newTraceCmd(o *options) *cobra.Command {
	var width, plotHeight int

	cmd := &cobra.Command{
		Use:   "trace [height]",
		Short: "Plot how many disks sit on each peg during the optimal solution",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			height, err := heightArg(o, args)
			if err != nil {
				return err
			}
			if height > maxTraceHeight {
				return fmt.Errorf("height %d too large to trace (max %d)", height, maxTraceHeight)
			}
			if height == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "nothing to trace: no disks")
				return nil
			}

			series, err := pegSeries(height)
			if err != nil {
				return err
			}

			graph := asciigraph.PlotMany(series,
				asciigraph.Height(plotHeight),
				asciigraph.Width(width),
				asciigraph.SeriesColors(asciigraph.Red, asciigraph.Green, asciigraph.Blue),
				asciigraph.Caption(fmt.Sprintf("disks per peg, %d moves (red=0 green=1 blue=2)", hanoi.OptimalMoveCount(height))),
			)
			fmt.Fprintln(cmd.OutOrStdout(), graph)
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 80, "Plot width in columns")
	cmd.Flags().IntVar(&plotHeight, "rows", 12, "Plot height in rows")
	return cmd
}

// pegSeries replays the optimal solution and samples every peg's disk
// count after each move, including the initial state.
func pegSeries(height int) ([][]float64, error) {
	tr, err := hanoi.NewTracker(height, hanoi.WithMoveHistory(false))
	if err != nil {
		return nil, err
	}

	series := make([][]float64, hanoi.NumPegs)
	sample := func() {
		for i := range series {
			series[i] = append(series[i], float64(len(tr.Puzzle().Peg(i))))
		}
	}

	sample()
	for _, m := range hanoi.OptimalMoves(height) {
		if err := tr.Apply(m); err != nil {
			return nil, err
		}
		sample()
	}
	return series, nil
}
