package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Default endpoints, from the MTA realtime API and NY Open Data.
const (
	DefaultFeedURL     = "https://api-endpoint.mta.info/Dataservice/mtagtfsfeeds/nyct%2Fgtfs-g"
	DefaultAlertsURL   = "https://api-endpoint.mta.info/Dataservice/mtagtfsfeeds/camsys%2Fsubway-alerts"
	DefaultStationsURL = "https://data.ny.gov/resource/39hk-dx4f.json"

	defaultPort      = 8080
	defaultTimeoutMS = 10000
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration from
// config.yml. A missing file is not an error: defaults apply.
func LoadAppConfig() error {
	paths := []string{"config.yml", "./config/config.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		Config = withDefaults(AppConfig{})
		return nil
	}
	return loadAppConfigBytes(data)
}

// LoadAppConfigFromFile loads configuration from an explicit path.
func LoadAppConfigFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return loadAppConfigBytes(data)
}

func loadAppConfigBytes(data []byte) error {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return err
	}
	Config = withDefaults(cfg)
	return nil
}

func withDefaults(cfg AppConfig) AppConfig {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultPort
	}
	if cfg.Feed.URL == "" {
		cfg.Feed.URL = DefaultFeedURL
	}
	if cfg.Feed.AlertsURL == "" {
		cfg.Feed.AlertsURL = DefaultAlertsURL
	}
	if cfg.Feed.TimeoutMS == 0 {
		cfg.Feed.TimeoutMS = defaultTimeoutMS
	}
	if cfg.Feed.APIKey == "" {
		cfg.Feed.APIKey = os.Getenv("MTA_API_KEY")
	}
	if cfg.Stations.URL == "" {
		cfg.Stations.URL = DefaultStationsURL
	}
	return cfg
}
