package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gohanoi"
)

// maxListHeight bounds the listing commands; 2^24-1 lines is already plenty.
const maxListHeight = 24

func newMovesCmd(o *options) *cobra.Command {
	var algorithm string

	cmd := &cobra.Command{
		Use:   "moves [height]",
		Short: "Print the optimal move sequence",
		Long: `Print every move of the optimal solution, one per line:

  step  from->to  disk

The solver defaults to the configured algorithm. All algorithms
produce the same sequence.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			height, err := heightArg(o, args)
			if err != nil {
				return err
			}
			if height > maxListHeight {
				return fmt.Errorf("height %d too large to list (max %d)", height, maxListHeight)
			}

			algo := o.cfg.AlgorithmValue()
			if algorithm != "" {
				if algo, err = hanoi.ParseAlgorithm(algorithm); err != nil {
					return err
				}
			}

			p, err := hanoi.New(height)
			if err != nil {
				return err
			}
			if err := hanoi.Solve(p, algo); err != nil {
				return fmt.Errorf("failed to solve: %w", err)
			}

			w := bufio.NewWriter(cmd.OutOrStdout())
			for i, m := range p.Moves() {
				fmt.Fprintf(w, "%d\t%s\t%d\n", i+1, m.Notation(), m.Disk)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "Solver: iterative, recursive or stack")
	return cmd
}

// heightArg returns the optional height argument, or the configured default.
func heightArg(o *options, args []string) (int, error) {
	if len(args) == 0 {
		return o.cfg.Height, nil
	}
	height, err := parseHeight(args[0])
	if err != nil {
		return 0, fmt.Errorf("bad height %q", args[0])
	}
	if height > hanoi.MaxHeight {
		return 0, fmt.Errorf("height %d: %w", height, hanoi.ErrInvalidHeight)
	}
	return height, nil
}
