package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Excalibur888/PotooMaps/dijkstra"
	"github.com/Excalibur888/PotooMaps/export"
	"github.com/Excalibur888/PotooMaps/municipality"
)

func (a *app) routeCmd() *cobra.Command {
	var heap bool
	cmd := &cobra.Command{
		Use:   "route [from] [to]",
		Short: "Find the shortest route between two municipalities",
		Long: `Find the shortest route between two municipalities, given by name or
INSEE code. Missing arguments are asked for on standard input until they
match a municipality. The route is printed with POI statistics and written
as GeoJSON to output.geojson (skipped when empty).`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			atlas, idx, err := a.loadAtlas(cmd.Context(), true)
			if err != nil {
				return err
			}

			in := bufio.NewReader(cmd.InOrStdin())
			out := cmd.OutOrStdout()
			args = append(args, "", "")
			from, err := resolve(atlas, in, out, args[0], "Departure")
			if err != nil {
				return err
			}
			to, err := resolve(atlas, in, out, args[1], "Arrival")
			if err != nil {
				return err
			}

			var opts []dijkstra.Option
			if heap {
				opts = append(opts, dijkstra.WithQueue(dijkstra.QueueHeap))
			}
			r, err := atlas.Route(from, to, opts...)
			if err != nil {
				return fmt.Errorf("no route from %s to %s: %w", from, to, err)
			}
			printRoute(out, r)
			if idx != nil {
				st := municipality.Stats(r, idx, a.cfg.POI.RadiusDeg)
				fmt.Fprintf(out, "POIs near the route: %d (%d stops with, %d without)\n",
					st.TotalPOIs, st.StopsWithPOIs, st.StopsWithoutPOIs)
			}

			if a.cfg.Output.GeoJSON == "" {
				return nil
			}
			if err = writeGeoJSON(a.cfg.Output.GeoJSON, r, export.Options{Points: a.cfg.Output.Points}); err != nil {
				return err
			}
			fmt.Fprintf(out, "GeoJSON written to %s\n", a.cfg.Output.GeoJSON)

			return nil
		},
	}
	cmd.Flags().BoolVar(&heap, "heap", false, "use the binary-heap queue instead of the linear scan")
	cmd.Flags().String("geojson", "", "GeoJSON output file")
	cmd.Flags().Bool("points", false, "add one Point feature per stop")
	cobra.CheckErr(a.v.BindPFlag("output.geojson", cmd.Flags().Lookup("geojson")))
	cobra.CheckErr(a.v.BindPFlag("output.points", cmd.Flags().Lookup("points")))

	return cmd
}

// resolve looks arg up, or prompts on in until a line matches when arg is
// empty.
func resolve(atlas *municipality.Atlas, in *bufio.Reader, out io.Writer, arg, prompt string) (*municipality.Municipality, error) {
	if arg != "" {
		return atlas.Lookup(arg)
	}
	for {
		fmt.Fprintf(out, "%s (name or INSEE code): ", prompt)
		line, readErr := in.ReadString('\n')
		if line = strings.TrimSpace(line); line != "" {
			m, err := atlas.Lookup(line)
			if err == nil {
				return m, nil
			}
			if !errors.Is(err, municipality.ErrNotFound) {
				return nil, err
			}
			fmt.Fprintf(out, "%q matches no municipality, try again\n", line)
		}
		if readErr != nil {
			return nil, fmt.Errorf("%s: %w", strings.ToLower(prompt), readErr)
		}
	}
}

func printRoute(w io.Writer, r *municipality.Route) {
	fmt.Fprintf(w, "Route %s -> %s: %d stops, %.2f km (weighted %.2f)\n",
		r.From(), r.To(), len(r.Stops), r.Length(), r.Path.Distance)
	for i, m := range r.Stops {
		fmt.Fprintf(w, "%4d  %s\n", i, m)
	}
}

func writeGeoJSON(path string, r *municipality.Route, opts export.Options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = export.GeoJSON(f, r, opts); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
