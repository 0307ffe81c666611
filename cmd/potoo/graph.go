package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Excalibur888/PotooMaps/bfs"
	"github.com/Excalibur888/PotooMaps/core"
	"github.com/Excalibur888/PotooMaps/dfs"
	"github.com/Excalibur888/PotooMaps/dijkstra"
)

// graphFlags are shared by the graph subcommands.
type graphFlags struct {
	start, end int
	heap       bool
	exhaustive bool
}

func (a *app) graphCmd() *cobra.Command {
	var gf graphFlags
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Inspect a graph in the plain-text exchange format",
		Long: `Inspect a graph file: a node count and an edge count, then one
"source target weight" triple per edge. The backing follows graph.backing.`,
	}
	cmd.PersistentFlags().IntVar(&gf.start, "start", 0, "start node")
	cmd.PersistentFlags().IntVar(&gf.end, "end", 0, "end node (path)")
	cmd.PersistentFlags().BoolVar(&gf.heap, "heap", false, "use the binary-heap queue (path)")
	cmd.PersistentFlags().BoolVar(&gf.exhaustive, "exhaustive", false, "cross-check with exhaustive search (path)")

	sub := func(use, short string, run func(io.Writer, core.Graph, graphFlags) error) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <file>",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				g, err := a.loadGraph(args[0])
				if err != nil {
					return err
				}
				return run(cmd.OutOrStdout(), g, gf)
			},
		}
	}
	cmd.AddCommand(
		sub("print", "Print every node with its degrees and out-edges", printGraph),
		sub("bfs", "Breadth-first order from --start", printBFS),
		sub("dfs", "Depth-first pre- and post-order from --start", printDFS),
		sub("tree", "DFS spanning forest, first tree rooted at --start", printForest),
		sub("topo", "Topological order (fails on cycles)", printTopo),
		sub("components", "Weakly connected components", printComponents),
		sub("path", "Shortest path from --start to --end", printPath),
		a.generateCmd(),
	)

	return cmd
}

func (a *app) loadGraph(path string) (core.Graph, error) {
	backing, err := a.cfg.Backing()
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := core.Load(f, core.WithBacking(backing))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

func printGraph(w io.Writer, g core.Graph, _ graphFlags) error {
	return core.Fprint(w, g)
}

func printBFS(w io.Writer, g core.Graph, gf graphFlags) error {
	res, err := bfs.BFS(g, gf.start, make([]bool, g.Size()))
	if err != nil {
		return err
	}
	items := make([]string, len(res.Order))
	for i, id := range res.Order {
		items[i] = fmt.Sprintf("%d@%d", id, res.Depth[id])
	}
	_, err = fmt.Fprintf(w, "bfs from %d: %s\n", gf.start, strings.Join(items, " "))

	return err
}

func printDFS(w io.Writer, g core.Graph, gf graphFlags) error {
	res, err := dfs.DFS(g, gf.start, make([]bool, g.Size()))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "pre-order:  %s\n", joinInts(res.PreOrder))
	_, err = fmt.Fprintf(w, "post-order: %s\n", joinInts(res.PostOrder))

	return err
}

// printForest prints the tree rooted at --start, then one tree for every
// node still unvisited, in id order.
func printForest(w io.Writer, g core.Graph, gf graphFlags) error {
	visited := make([]bool, g.Size())
	if err := printTree(w, g, gf.start, visited); err != nil {
		return err
	}
	for u := 0; u < g.Size(); u++ {
		if err := printTree(w, g, u, visited); err != nil {
			return err
		}
	}

	return nil
}

func printTree(w io.Writer, g core.Graph, root int, visited []bool) error {
	t, err := dfs.SpanningTree(g, root, visited)
	if err != nil || t == nil {
		return err
	}
	fmt.Fprintf(w, "tree %d (%d nodes)\n", root, t.Len())

	return t.Fprint(w)
}

func printComponents(w io.Writer, g core.Graph, _ graphFlags) error {
	comps, err := bfs.Components(g)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%d components\n", len(comps))
	for _, c := range comps {
		fmt.Fprintf(w, "  [%d] %s\n", len(c), joinInts(c))
	}

	return nil
}

func printTopo(w io.Writer, g core.Graph, _ graphFlags) error {
	order, err := dfs.TopologicalSort(g)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, joinInts(order))

	return err
}

func printPath(w io.Writer, g core.Graph, gf graphFlags) error {
	var opts []dijkstra.Option
	if gf.heap {
		opts = append(opts, dijkstra.WithQueue(dijkstra.QueueHeap))
	}
	p, err := dijkstra.ShortestPath(g, gf.start, gf.end, opts...)
	if err != nil {
		return err
	}
	if err = p.Verify(g); err != nil {
		return err
	}
	fmt.Fprintln(w, p)
	if !gf.exhaustive {
		return nil
	}

	q, err := dijkstra.Enumerate(g, gf.start, gf.end)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "exhaustive: %s\n", q)

	return err
}

func joinInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}

	return strings.Join(parts, " ")
}
