package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Excalibur888/PotooMaps/api"
)

func (a *app) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve routes and lookups over HTTP",
		Long: `Load the atlas once and serve it over HTTP:

  GET /healthz
  GET /v1/municipalities/:key
  GET /v1/route?from=..&to=..   (GeoJSON)
  GET /metrics                  (Prometheus)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			atlas, idx, err := a.loadAtlas(ctx, true)
			if err != nil {
				return err
			}
			srv := api.New(a.cfg, atlas, idx, a.logger)

			errc := make(chan error, 1)
			go func() { errc <- srv.Start() }()

			select {
			case err = <-errc:
				return err
			case <-ctx.Done():
			}
			shutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			return srv.Stop(shutdown)
		},
	}
	cmd.Flags().String("addr", "", "listen address (default server.addr)")
	cmd.Flags().String("mode", "", "gin mode: debug, release, test")
	cobra.CheckErr(a.v.BindPFlag("server.addr", cmd.Flags().Lookup("addr")))
	cobra.CheckErr(a.v.BindPFlag("server.mode", cmd.Flags().Lookup("mode")))

	return cmd
}
