// Package config loads PotooMaps settings from file, environment and flags.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Excalibur888/PotooMaps/core"
	"github.com/Excalibur888/PotooMaps/poi"
)

// EnvPrefix prefixes every environment override: POTOO_GRAPH_BACKING, ...
const EnvPrefix = "POTOO"

// Config holds all configuration for the application
type Config struct {
	Data   DataConfig   `mapstructure:"data" yaml:"data"`
	Output OutputConfig `mapstructure:"output" yaml:"output"`
	Graph  GraphConfig  `mapstructure:"graph" yaml:"graph"`
	POI    POIConfig    `mapstructure:"poi" yaml:"poi"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	Server ServerConfig `mapstructure:"server" yaml:"server"`
}

// DataConfig names the input tables.
type DataConfig struct {
	Municipalities string `mapstructure:"municipalities" yaml:"municipalities"`
	Adjacency      string `mapstructure:"adjacency" yaml:"adjacency"`
	POI            string `mapstructure:"poi" yaml:"poi"` // tab-separated POI export
	OSM            string `mapstructure:"osm" yaml:"osm"` // .osm.pbf extract, used when set
}

// OutputConfig controls route export.
type OutputConfig struct {
	GeoJSON string `mapstructure:"geojson" yaml:"geojson"`
	Points  bool   `mapstructure:"points" yaml:"points"`
}

// GraphConfig selects the graph backing ("list" or "matrix").
type GraphConfig struct {
	Backing string `mapstructure:"backing" yaml:"backing"`
}

// POIConfig tunes POI weighting.
type POIConfig struct {
	Amenities []string `mapstructure:"amenities" yaml:"amenities"`
	RadiusDeg float64  `mapstructure:"radius_deg" yaml:"radius_deg"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"` // text or json
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr"`
	Mode string `mapstructure:"mode" yaml:"mode"` // gin mode: debug, release, test
}

// Load decodes v into a Config after installing defaults and the
// environment binding. Passing nil uses the global viper instance.
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = viper.GetViper()
	}
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("data.municipalities", "data/communes-departement-region.csv")
	v.SetDefault("data.adjacency", "data/communes_adjacentes_2022.csv")
	v.SetDefault("data.poi", "data/poi.csv")
	v.SetDefault("data.osm", "")

	v.SetDefault("output.geojson", "route.geojson")
	v.SetDefault("output.points", false)

	v.SetDefault("graph.backing", core.BackingList.String())

	v.SetDefault("poi.amenities", poi.DefaultAmenities)
	v.SetDefault("poi.radius_deg", 0.15)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("server.addr", "localhost:8080")
	v.SetDefault("server.mode", "release")
}

// Validate rejects settings no component could run with.
func (c *Config) Validate() error {
	if _, err := c.Backing(); err != nil {
		return fmt.Errorf("graph.backing: %w", err)
	}
	if c.POI.RadiusDeg < 0 {
		return fmt.Errorf("poi.radius_deg: must be >= 0, got %g", c.POI.RadiusDeg)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format: unknown format %q", c.Log.Format)
	}

	return nil
}

// Backing returns the parsed graph backing.
func (c *Config) Backing() (core.Backing, error) {
	return core.ParseBacking(c.Graph.Backing)
}

// NewLogger builds the slog logger described by c, writing to w
// (os.Stderr when nil).
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("log.level: %w", err)
	}

	return level, nil
}

// Write dumps c as YAML, in the layout a config file would use.
func (c *Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	return enc.Close()
}
