package stations

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
)

// FetchRows downloads the stations dataset from the Socrata JSON endpoint.
// This is a startup helper; the directory itself is built from the returned
// rows with Build.
func FetchRows(ctx context.Context, url string) ([]StationRow, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	var rows []StationRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode stations dataset: %w", err)
	}
	log.Info().Int("rows", len(rows)).Str("url", url).Msg("Loaded station dataset")
	return rows, nil
}

// LoadRowsFromCSV reads rows from a local copy of the dataset's CSV export
// (rows.csv?accessType=DOWNLOAD), for offline use.
func LoadRowsFromCSV(path string) ([]StationRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var rows []StationRow
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("parse stations CSV %s: %w", path, err)
	}
	return rows, nil
}

// LoadRowsFromJSONFile reads rows from a saved Socrata JSON response.
func LoadRowsFromJSONFile(path string) ([]StationRow, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rows []StationRow
	if err := json.Unmarshal(b, &rows); err != nil {
		return nil, fmt.Errorf("parse stations JSON %s: %w", path, err)
	}
	return rows, nil
}
