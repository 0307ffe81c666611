package poi

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Excalibur888/PotooMaps/dict"
)

// Column layout of the tab-separated POI export.
const (
	colLon     = 1
	colLat     = 2
	colName    = 4
	colAmenity = 17
)

// LoadStats summarises a load.
type LoadStats struct {
	Rows     int // data rows read
	Kept     int // rows matching the amenity filter
	Skipped  int // matching rows with unusable fields
	Replaced int // kept rows that replaced an earlier POI of the same name
}

// LoadCSV reads the tab-separated POI export from r and returns the POIs
// whose amenity column matches amenities (DefaultAmenities when empty),
// keyed by name. Rows that are too short or whose coordinates do not parse
// are skipped and counted; they never abort the load.
func LoadCSV(r io.Reader, amenities []string, logger *slog.Logger) (*dict.Dict[*POI], LoadStats, error) {
	if logger == nil {
		logger = slog.Default()
	}
	filter := newAmenityFilter(amenities)

	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	out := dict.New[*POI]()
	var st LoadStats
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, st, fmt.Errorf("poi: read row %d: %w", st.Rows+1, err)
		}
		st.Rows++
		if len(rec) <= colAmenity || !filter.match(rec[colAmenity]) {
			continue
		}

		lat, errLat := strconv.ParseFloat(strings.TrimSpace(rec[colLat]), 64)
		lon, errLon := strconv.ParseFloat(strings.TrimSpace(rec[colLon]), 64)
		name := strings.TrimSpace(rec[colName])
		if errLat != nil || errLon != nil || name == "" {
			st.Skipped++
			continue
		}

		p := &POI{Name: name, Lat: lat, Lon: lon, Amenity: strings.ToLower(strings.TrimSpace(rec[colAmenity]))}
		if _, replaced := out.Insert(name, p); replaced {
			st.Replaced++
		}
		st.Kept++
	}

	logger.Debug("poi csv loaded",
		slog.Int("rows", st.Rows),
		slog.Int("kept", st.Kept),
		slog.Int("skipped", st.Skipped),
		slog.Int("unique", out.Len()))
	if st.Rows == 0 {
		return nil, st, ErrNoData
	}

	return out, st, nil
}
