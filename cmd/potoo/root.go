package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Excalibur888/PotooMaps/config"
)

// app carries the state shared by every subcommand.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	root := &cobra.Command{
		Use:   "potoo",
		Short: "PotooMaps: shortest routes between municipalities, via the bars",
		Long: `PotooMaps loads the French municipality table and its adjacency table,
weights each road by great-circle distance, shortens the roads leading to
municipalities with bars, pubs and cafes nearby, and answers shortest-route
queries from the command line or over HTTP.

Configuration is read from --config, ./.potoo.yaml or $HOME/.potoo.yaml,
then from POTOO_* environment variables, then from flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig(cmd)
		},
	}

	// Global flags
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is ./.potoo.yaml or $HOME/.potoo.yaml)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-format", "text", "log format (text, json)")
	pf.String("backing", "list", "graph backing (list, matrix)")
	pf.String("municipalities", "", "municipality CSV")
	pf.String("adjacency", "", "adjacency CSV")
	pf.String("poi", "", "tab-separated POI export")
	pf.String("osm", "", ".osm.pbf extract used for POIs instead of --poi")
	pf.Float64("radius", 0, "POI search radius in degrees")

	// Bind flags to viper
	for key, flag := range map[string]string{
		"log.level":           "log-level",
		"log.format":          "log-format",
		"graph.backing":       "backing",
		"data.municipalities": "municipalities",
		"data.adjacency":      "adjacency",
		"data.poi":            "poi",
		"data.osm":            "osm",
		"poi.radius_deg":      "radius",
	} {
		cobra.CheckErr(a.v.BindPFlag(key, pf.Lookup(flag)))
	}

	root.AddCommand(
		a.routeCmd(),
		a.lookupCmd(),
		a.listCmd(),
		a.graphCmd(),
		a.serveCmd(),
		a.configCmd(),
	)

	return root
}

// initConfig reads in config file and ENV variables if set.
func (a *app) initConfig(cmd *cobra.Command) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return err
		}
	} else {
		a.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
		a.v.SetConfigType("yaml")
		a.v.SetConfigName(".potoo")
		if err := a.v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return err
			}
		}
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = cfg.NewLogger(cmd.ErrOrStderr())
	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("using config file", slog.String("path", used))
	}

	return nil
}
