package stations

import "strconv"

// StationRow is one record of the subway stations reference dataset. The
// json tags match the Socrata API fields, the csv tags match the headers of
// the dataset's CSV export. Socrata serves coordinates as strings.
type StationRow struct {
	GTFSStopID string `json:"gtfs_stop_id" csv:"GTFS Stop ID"`
	StopName   string `json:"stop_name" csv:"Stop Name"`
	Borough    string `json:"borough" csv:"Borough"`
	Latitude   string `json:"gtfs_latitude" csv:"GTFS Latitude"`
	Longitude  string `json:"gtfs_longitude" csv:"GTFS Longitude"`
}

// coordinates parses the row's latitude/longitude, reporting false when
// either is missing or unparseable.
func (r StationRow) coordinates() (lat, lon float64, ok bool) {
	if r.Latitude == "" || r.Longitude == "" {
		return 0, 0, false
	}
	lat, err := strconv.ParseFloat(r.Latitude, 64)
	if err != nil {
		return 0, 0, false
	}
	lon, err = strconv.ParseFloat(r.Longitude, 64)
	if err != nil {
		return 0, 0, false
	}
	return lat, lon, true
}
