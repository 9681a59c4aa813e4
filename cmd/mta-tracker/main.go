package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	mtatracker "github.com/LS122800/MTA-Tracker"
	"github.com/LS122800/MTA-Tracker/config"
	"github.com/LS122800/MTA-Tracker/formatter"
	"github.com/LS122800/MTA-Tracker/internal"
	"github.com/LS122800/MTA-Tracker/projector"
	"github.com/LS122800/MTA-Tracker/stations"
)

func main() {
	internal.InitLogging()

	app := &cli.App{
		Name:  "mta-tracker",
		Usage: "Decode the MTA realtime feed and render train positions, arrivals and alerts",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "config file path (default: config.yml)"},
			&cli.StringFlag{Name: "feed", Usage: "realtime feed URL or local .pb file (overrides config)"},
			&cli.StringFlag{Name: "alerts-feed", Usage: "subway alerts feed URL or local .pb file (overrides config)"},
			&cli.StringFlag{Name: "stations-csv", Usage: "local CSV export of the stations dataset (overrides config)"},
			&cli.StringFlag{Name: "format", Value: "text", Usage: "text|json"},
		},
		Commands: []*cli.Command{
			{
				Name:   "positions",
				Usage:  "Render current train positions",
				Action: runPositions,
			},
			{
				Name:      "arrivals",
				Usage:     "Render stop-level arrival/departure estimates",
				ArgsUsage: "[stopId]",
				Action:    runArrivals,
			},
			{
				Name:   "alerts",
				Usage:  "Render active service alerts",
				Action: runAlerts,
			},
			{
				Name:   "serve",
				Usage:  "Run the HTTP API",
				Action: runServe,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}

func loadConfig(c *cli.Context) error {
	if path := c.String("config"); path != "" {
		return config.LoadAppConfigFromFile(path)
	}
	return config.LoadAppConfig()
}

// loadDirectory builds the station directory once, preferring local copies
// of the dataset over the Socrata endpoint.
func loadDirectory(c *cli.Context) (*stations.Directory, error) {
	cfg := config.Config.Stations

	var rows []stations.StationRow
	var err error
	switch {
	case c.String("stations-csv") != "":
		rows, err = stations.LoadRowsFromCSV(c.String("stations-csv"))
	case cfg.CSVPath != "":
		rows, err = stations.LoadRowsFromCSV(cfg.CSVPath)
	case cfg.JSONPath != "":
		rows, err = stations.LoadRowsFromJSONFile(cfg.JSONPath)
	default:
		rows, err = stations.FetchRows(context.Background(), cfg.URL)
	}
	if err != nil {
		return nil, fmt.Errorf("load stations: %w", err)
	}

	d := stations.Build(rows)
	log.Info().Int("stations", d.Len()).Msg("Station directory built")
	return d, nil
}

// runOnce is the shared one-shot pipeline: load config, build the directory,
// fetch bytes, decode, project, render the selected records.
func runOnce(c *cli.Context, source func() string, selectRecords func(*mtatracker.Session) []projector.DisplayRecord) error {
	if err := loadConfig(c); err != nil {
		return err
	}
	directory, err := loadDirectory(c)
	if err != nil {
		return err
	}

	f := newFetcher(config.Config.Feed.APIKey, time.Duration(config.Config.Feed.TimeoutMS)*time.Millisecond)
	b, err := f.fetch(context.Background(), source())
	if err != nil {
		return fmt.Errorf("fetch feed: %w", err)
	}

	session := mtatracker.NewSession(directory)
	if err := session.LoadSnapshot(b); err != nil {
		return err
	}

	fmt.Println(string(render(c, session.FeedTimestamp(), selectRecords(session))))
	return nil
}

func feedSource(c *cli.Context) func() string {
	return func() string {
		if c.String("feed") != "" {
			return c.String("feed")
		}
		return config.Config.Feed.URL
	}
}

func alertsSource(c *cli.Context) func() string {
	return func() string {
		if c.String("alerts-feed") != "" {
			return c.String("alerts-feed")
		}
		return config.Config.Feed.AlertsURL
	}
}

func runPositions(c *cli.Context) error {
	return runOnce(c, feedSource(c), func(s *mtatracker.Session) []projector.DisplayRecord {
		return s.TrainPositions()
	})
}

func runArrivals(c *cli.Context) error {
	stopID := c.Args().First()
	return runOnce(c, feedSource(c), func(s *mtatracker.Session) []projector.DisplayRecord {
		if stopID == "" {
			return s.Records()
		}
		return s.ArrivalsAt(stopID)
	})
}

func runAlerts(c *cli.Context) error {
	return runOnce(c, alertsSource(c), func(s *mtatracker.Session) []projector.DisplayRecord {
		return s.Alerts()
	})
}

func runServe(c *cli.Context) error {
	if err := loadConfig(c); err != nil {
		return err
	}
	directory, err := loadDirectory(c)
	if err != nil {
		return err
	}

	srv := mtatracker.NewServer(config.Config, directory)
	srv.Start()
	srv.HandleGracefulShutdown()
	return nil
}

func render(c *cli.Context, feedTimestamp int64, records []projector.DisplayRecord) []byte {
	if c.String("format") == "json" {
		return formatter.BuildJSON(feedTimestamp, records)
	}
	return []byte(formatter.BuildText(feedTimestamp, records))
}
