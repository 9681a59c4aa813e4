package projector

import "github.com/LS122800/MTA-Tracker/feed"

// Kind discriminates what a DisplayRecord was projected from.
type Kind string

const (
	KindStopTime Kind = "stop_time"
	KindVehicle  Kind = "vehicle"
	KindAlert    Kind = "alert"
)

// DisplayRecord is the normalized, human-readable projection of one entity
// (or one stop time within a trip update). It is transient: produced per
// render call, never stored.
type DisplayRecord struct {
	Kind Kind `json:"kind"`

	Train   string `json:"train,omitempty"`
	Route   string `json:"route,omitempty"`
	StopID  string `json:"stop_id,omitempty"`
	Station string `json:"station,omitempty"`

	Status   string `json:"status,omitempty"`
	Position string `json:"position,omitempty"`

	Arrival   string `json:"arrival,omitempty"`
	Departure string `json:"departure,omitempty"`

	// Alert texts in feed order, no de-duplication or language filtering.
	// Consumers that need a single language select on Translation.Language.
	Headers      []feed.Translation `json:"headers,omitempty"`
	Descriptions []feed.Translation `json:"descriptions,omitempty"`
}
