package formatter

import (
	"encoding/json"

	"github.com/LS122800/MTA-Tracker/internal"
	"github.com/LS122800/MTA-Tracker/projector"
)

// Envelope wraps a set of display records with the snapshot they came from.
type Envelope struct {
	FeedTimestamp string                    `json:"feed_timestamp"`
	Records       []projector.DisplayRecord `json:"records"`
}

// BuildJSON serializes records into the JSON envelope.
func BuildJSON(feedTimestamp int64, records []projector.DisplayRecord) []byte {
	env := Envelope{
		FeedTimestamp: internal.Iso8601FromUnixSeconds(feedTimestamp),
		Records:       records,
	}
	if env.Records == nil {
		env.Records = []projector.DisplayRecord{}
	}
	b, _ := json.Marshal(env)
	return b
}
