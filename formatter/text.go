package formatter

import (
	"fmt"
	"strings"

	"github.com/LS122800/MTA-Tracker/internal"
	"github.com/LS122800/MTA-Tracker/projector"
)

// BuildText renders records in the console layout: a feed timestamp banner,
// trip updates grouped under their train, one block per vehicle, and one
// block per alert.
func BuildText(feedTimestamp int64, records []projector.DisplayRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Feed timestamp: %s\n", internal.CtimeFromUnixSeconds(feedTimestamp))

	lastTrain := ""
	for _, rec := range records {
		switch rec.Kind {
		case projector.KindStopTime:
			if rec.Train != lastTrain {
				fmt.Fprintf(&b, "\nTrip ID: %s\n", rec.Train)
				if rec.Route != "" {
					fmt.Fprintf(&b, "Route ID: %s\n", rec.Route)
				}
				lastTrain = rec.Train
			}
			fmt.Fprintf(&b, "Stop: %s\n", rec.Station)
			fmt.Fprintf(&b, "  Arrival: %s\n", rec.Arrival)
			fmt.Fprintf(&b, "  Departure: %s\n", rec.Departure)
		case projector.KindVehicle:
			lastTrain = ""
			fmt.Fprintf(&b, "\nTrain ID: %s\n", rec.Train)
			fmt.Fprintf(&b, "Station: %s\n", rec.Station)
			fmt.Fprintf(&b, "Status: %s\n", rec.Status)
			if rec.Position != "" {
				fmt.Fprintf(&b, "Position: %s\n", rec.Position)
			}
		case projector.KindAlert:
			lastTrain = ""
			b.WriteString("\n--- Subway Alert ---\n")
			for _, h := range rec.Headers {
				fmt.Fprintf(&b, "Header: %s\n", h.Text)
			}
			for _, d := range rec.Descriptions {
				fmt.Fprintf(&b, "Description: %s\n", d.Text)
			}
			b.WriteString("--------------------\n")
		}
	}

	return b.String()
}
