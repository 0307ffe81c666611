package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Excalibur888/PotooMaps/builder"
	"github.com/Excalibur888/PotooMaps/core"
)

func (a *app) generateCmd() *cobra.Command {
	var (
		kind       string
		n, k       int
		rows, cols int
		p          float64
		seed       int64
		minW, maxW int
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic graph in the exchange format",
		Long: `Write a synthetic graph to standard output, in the format the other
graph subcommands read. Weights are integers drawn uniformly in
[--min-weight, --max-weight] from --seed.

Kinds: path, cycle, ring (--k successors), complete, grid (--rows x --cols),
random (each ordered pair with probability --p).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var con builder.Constructor
			size := n
			switch kind {
			case "path":
				con = builder.Path(n)
			case "cycle":
				con = builder.Cycle(n)
			case "ring":
				con = builder.Ring(n, k)
			case "complete":
				con = builder.Complete(n)
			case "grid":
				size, con = rows*cols, builder.Grid(rows, cols)
			case "random":
				con = builder.RandomSparse(n, p)
			default:
				return fmt.Errorf("unknown kind %q", kind)
			}

			g, err := builder.BuildGraph(size, nil,
				[]builder.BuilderOption{builder.WithSeed(seed), builder.WithIntWeight(minW, maxW)}, con)
			if err != nil {
				return err
			}

			return core.Write(cmd.OutOrStdout(), g)
		},
	}
	f := cmd.Flags()
	f.StringVar(&kind, "kind", "random", "path, cycle, ring, complete, grid or random")
	f.IntVarP(&n, "nodes", "n", 10, "node count (all kinds but grid)")
	f.IntVar(&k, "k", 3, "successors per node (ring)")
	f.IntVar(&rows, "rows", 3, "grid rows")
	f.IntVar(&cols, "cols", 3, "grid columns")
	f.Float64Var(&p, "p", 0.2, "edge probability (random)")
	f.Int64Var(&seed, "seed", 42, "random seed")
	f.IntVar(&minW, "min-weight", 1, "smallest weight")
	f.IntVar(&maxW, "max-weight", 9, "largest weight")

	return cmd
}
