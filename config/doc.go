// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Unset fields fall back to the MTA G-line feed, the subway-alerts feed and
// the NY Open Data stations dataset.
package config
