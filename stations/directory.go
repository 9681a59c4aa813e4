package stations

import (
	"fmt"
	"math"
	"strings"
)

// directionSuffixes are the qualifier characters the realtime feed appends to
// stop ids ("G22N"/"G22S"); the reference dataset's keys never carry them.
const directionSuffixes = "NS"

// Directory maps base GTFS stop ids to display names. Build it once and
// treat it as immutable for the rest of the process.
type Directory struct {
	names  map[string]string
	coords map[string][2]float64 // stop_id -> {lat, lon}
}

// Build constructs a directory from reference rows. Rows missing the stop id
// or name are skipped; the dataset is known to contain partial rows and a bad
// row never aborts the build. Display name is "Name (Borough)" when the
// borough is present.
func Build(rows []StationRow) *Directory {
	d := &Directory{
		names:  map[string]string{},
		coords: map[string][2]float64{},
	}
	for _, r := range rows {
		if r.GTFSStopID == "" || r.StopName == "" {
			continue
		}
		name := r.StopName
		if r.Borough != "" {
			name = fmt.Sprintf("%s (%s)", r.StopName, r.Borough)
		}
		d.names[r.GTFSStopID] = name
		if lat, lon, ok := r.coordinates(); ok {
			d.coords[r.GTFSStopID] = [2]float64{lat, lon}
		}
	}
	return d
}

// BaseID strips trailing direction-qualifier characters from a stop id.
// Only characters in the N/S qualifier set are stripped, never arbitrary
// trailing characters.
func BaseID(stopID string) string {
	return strings.TrimRight(stopID, directionSuffixes)
}

// Resolve returns the display name for a stop id. The id is stripped of its
// direction suffix before lookup; on a miss the original id is returned
// unchanged. Resolve is total: it never fails.
func (d *Directory) Resolve(stopID string) string {
	if name, ok := d.names[BaseID(stopID)]; ok {
		return name
	}
	return stopID
}

// Len reports the number of mapped stations.
func (d *Directory) Len() int { return len(d.names) }

// Nearest returns the stop id and display name of the mapped station closest
// to the given coordinate. ok is false when no row carried coordinates.
func (d *Directory) Nearest(lat, lon float64) (stopID, name string, ok bool) {
	best := math.MaxFloat64
	for id, c := range d.coords {
		if dist := haversineKM(lat, lon, c[0], c[1]); dist < best {
			best = dist
			stopID = id
			ok = true
		}
	}
	if ok {
		name = d.names[stopID]
	}
	return stopID, name, ok
}

const earthRadiusKM = 6371.0

func haversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	rad := math.Pi / 180
	dLat := (lat2 - lat1) * rad
	dLon := (lon2 - lon1) * rad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*rad)*math.Cos(lat2*rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKM * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
