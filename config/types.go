package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gte=0"`
}

// FeedConfig contains the GTFS-Realtime feed endpoints and credentials
type FeedConfig struct {
	URL       string `yaml:"url" validate:"omitempty,url"`
	AlertsURL string `yaml:"alertsURL" validate:"omitempty,url"`
	APIKey    string `yaml:"apiKey"`
	TimeoutMS int    `yaml:"timeoutMS" validate:"gte=0"`
}

// StationsConfig contains the station reference dataset source. URL is the
// Socrata JSON endpoint; CSVPath and JSONPath point at local copies and take
// precedence when set.
type StationsConfig struct {
	URL      string `yaml:"url" validate:"omitempty,url"`
	CSVPath  string `yaml:"csvPath"`
	JSONPath string `yaml:"jsonPath"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server   ServerConfig   `yaml:"server"`
	Feed     FeedConfig     `yaml:"feed"`
	Stations StationsConfig `yaml:"stations"`
}
