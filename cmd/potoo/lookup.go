package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) lookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <name|INSEE>",
		Short: "Show a municipality and its neighbours",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			atlas, _, err := a.loadAtlas(cmd.Context(), false)
			if err != nil {
				return err
			}
			m, err := atlas.Lookup(args[0])
			if err != nil {
				return err
			}
			nb, err := atlas.Neighbours(m)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s id=%d lat=%g lon=%g\n", m, m.ID, m.Lat, m.Lon)
			fmt.Fprintf(out, "%d neighbours\n", len(nb))
			for _, n := range nb {
				fmt.Fprintf(out, "  %s\n", n)
			}

			return nil
		},
	}
}

func (a *app) listCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List municipalities in INSEE code order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			atlas, err := a.loadMunicipalities()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			n := 0
			for code, m := range atlas.Municipalities() {
				if limit > 0 && n == limit {
					break
				}
				fmt.Fprintf(out, "%s\t%s\n", code, m.Name)
				n++
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "print at most this many (0 for all)")

	return cmd
}
