package poi

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"

	"github.com/Excalibur888/PotooMaps/dict"
)

// LoadOSM scans an .osm.pbf extract for nodes tagged amenity=<one of
// amenities> and returns them keyed by name. Unnamed nodes are keyed by
// their OSM id ("node/123") so they still count towards proximity.
// Ways and relations are skipped.
func LoadOSM(ctx context.Context, r io.Reader, amenities []string, logger *slog.Logger) (*dict.Dict[*POI], LoadStats, error) {
	if logger == nil {
		logger = slog.Default()
	}
	filter := newAmenityFilter(amenities)

	scanner := osmpbf.New(ctx, r, runtime.GOMAXPROCS(-1))
	defer scanner.Close()
	scanner.SkipWays = true
	scanner.SkipRelations = true

	out := dict.New[*POI]()
	var st LoadStats
	for scanner.Scan() {
		n, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}
		st.Rows++
		amenity := n.Tags.Find("amenity")
		if amenity == "" || !filter.match(amenity) {
			continue
		}

		name := n.Tags.Find("name")
		if name == "" {
			name = fmt.Sprintf("node/%d", n.ID)
		}
		p := &POI{Name: name, Lat: n.Lat, Lon: n.Lon, Amenity: amenity}
		if _, replaced := out.Insert(name, p); replaced {
			st.Replaced++
		}
		st.Kept++
	}
	if err := scanner.Err(); err != nil {
		return nil, st, fmt.Errorf("poi: scan osm: %w", err)
	}

	logger.Debug("poi osm loaded",
		slog.Int("nodes", st.Rows),
		slog.Int("kept", st.Kept),
		slog.Int("unique", out.Len()))
	if st.Rows == 0 {
		return nil, st, ErrNoData
	}

	return out, st, nil
}
