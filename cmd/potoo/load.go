package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/Excalibur888/PotooMaps/dict"
	"github.com/Excalibur888/PotooMaps/municipality"
	"github.com/Excalibur888/PotooMaps/poi"
)

// loadMunicipalities reads data.municipalities.
func (a *app) loadMunicipalities() (*municipality.Atlas, error) {
	backing, err := a.cfg.Backing()
	if err != nil {
		return nil, err
	}
	f, err := os.Open(a.cfg.Data.Municipalities)
	if err != nil {
		return nil, fmt.Errorf("open municipalities: %w", err)
	}
	defer f.Close()

	atlas, _, err := municipality.LoadMunicipalities(f,
		municipality.WithLogger(a.logger), municipality.WithBacking(backing))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.cfg.Data.Municipalities, err)
	}

	return atlas, nil
}

// loadAtlas builds the weighted graph: municipalities, adjacency,
// haversine distances and, when withPOIs is set and a POI source is
// configured, POI weighting. The POI source is read while the graph is
// being built. The returned index is nil without POIs.
func (a *app) loadAtlas(ctx context.Context, withPOIs bool) (*municipality.Atlas, *poi.Index, error) {
	var (
		atlas *municipality.Atlas
		idx   *poi.Index
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		atlas, err = a.loadRoads(gctx)
		return err
	})
	if withPOIs {
		g.Go(func() error {
			var err error
			idx, err = a.loadPOIs(gctx)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	if idx == nil {
		return atlas, nil, nil
	}
	if _, err := atlas.ApplyPOIWeighting(idx, a.cfg.POI.RadiusDeg); err != nil {
		return nil, nil, err
	}

	return atlas, idx, nil
}

// loadRoads reads both tables and applies haversine weights.
func (a *app) loadRoads(ctx context.Context) (*municipality.Atlas, error) {
	atlas, err := a.loadMunicipalities()
	if err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(a.cfg.Data.Adjacency)
	if err != nil {
		return nil, fmt.Errorf("open adjacency: %w", err)
	}
	defer f.Close()
	if _, err = atlas.LoadAdjacency(f); err != nil {
		return nil, fmt.Errorf("%s: %w", a.cfg.Data.Adjacency, err)
	}

	if err = atlas.ApplyDistances(); err != nil {
		return nil, err
	}

	return atlas, nil
}

// loadPOIs reads data.osm when set, data.poi otherwise. Neither set
// yields a nil index.
func (a *app) loadPOIs(ctx context.Context) (*poi.Index, error) {
	path, osm := a.cfg.Data.POI, false
	if a.cfg.Data.OSM != "" {
		path, osm = a.cfg.Data.OSM, true
	}
	if path == "" {
		a.logger.Warn("no POI source configured, routing by distance only")
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open POIs: %w", err)
	}
	defer f.Close()

	var (
		d  *dict.Dict[*poi.POI]
		st poi.LoadStats
	)
	if osm {
		d, st, err = poi.LoadOSM(ctx, f, a.cfg.POI.Amenities, a.logger)
	} else {
		d, st, err = poi.LoadCSV(f, a.cfg.POI.Amenities, a.logger)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.logger.Info("pois loaded",
		slog.String("source", path),
		slog.Int("kept", st.Kept),
		slog.Int("unique", d.Len()))

	return poi.NewIndex(d), nil
}
