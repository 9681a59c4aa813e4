package feed

import (
	"fmt"

	gtfsrt "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"
)

// DecodeError reports a payload that could not be parsed as a GTFS-Realtime
// FeedMessage. It is fatal to the poll cycle that produced the bytes, never
// to the process: the caller skips rendering and retries next cycle.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode feed: %s: %v", e.Reason, e.Err)
	}
	return "decode feed: " + e.Reason
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Decode parses raw protobuf bytes into a Snapshot. It fails with a
// *DecodeError when the bytes are not a well-formed FeedMessage or the header
// is missing its timestamp. Optional fields are substituted with typed
// defaults (empty string, nil time, StatusUnknown), never dereferenced blind.
func Decode(b []byte) (*Snapshot, error) {
	var fm gtfsrt.FeedMessage
	if err := proto.Unmarshal(b, &fm); err != nil {
		return nil, &DecodeError{Reason: "malformed FeedMessage", Err: err}
	}
	if fm.Header == nil || fm.Header.Timestamp == nil || *fm.Header.Timestamp == 0 {
		return nil, &DecodeError{Reason: "header timestamp missing"}
	}

	snap := &Snapshot{
		Timestamp: int64(*fm.Header.Timestamp),
		Entities:  make([]Entity, 0, len(fm.Entity)),
	}
	for _, e := range fm.Entity {
		if e == nil {
			continue
		}
		ent := Entity{}
		if e.Id != nil {
			ent.ID = *e.Id
		}
		switch {
		case e.TripUpdate != nil:
			ent.TripUpdate = decodeTripUpdate(e.TripUpdate)
		case e.Vehicle != nil:
			ent.Vehicle = decodeVehicle(e.Vehicle)
		case e.Alert != nil:
			ent.Alert = decodeAlert(e.Alert)
		default:
			continue
		}
		snap.Entities = append(snap.Entities, ent)
	}
	return snap, nil
}

func decodeTripUpdate(tu *gtfsrt.TripUpdate) *TripUpdate {
	out := &TripUpdate{}
	if tu.Trip != nil {
		if tu.Trip.TripId != nil {
			out.TripID = *tu.Trip.TripId
		}
		if tu.Trip.RouteId != nil {
			out.RouteID = *tu.Trip.RouteId
		}
	}
	if len(tu.StopTimeUpdate) > 0 {
		out.StopTimes = make([]StopTimeUpdate, 0, len(tu.StopTimeUpdate))
	}
	for _, stu := range tu.StopTimeUpdate {
		if stu == nil {
			continue
		}
		st := StopTimeUpdate{}
		if stu.StopId != nil {
			st.StopID = *stu.StopId
		}
		if stu.Arrival != nil && stu.Arrival.Time != nil {
			t := *stu.Arrival.Time
			st.Arrival = &t
		}
		if stu.Departure != nil && stu.Departure.Time != nil {
			t := *stu.Departure.Time
			st.Departure = &t
		}
		out.StopTimes = append(out.StopTimes, st)
	}
	return out
}

func decodeVehicle(v *gtfsrt.VehiclePosition) *VehiclePosition {
	out := &VehiclePosition{Status: StatusUnknown}
	if v.Trip != nil && v.Trip.TripId != nil {
		out.TripID = *v.Trip.TripId
	}
	if v.StopId != nil {
		out.StopID = *v.StopId
	}
	if v.CurrentStatus != nil {
		out.Status = StatusFromCode(int32(*v.CurrentStatus))
	}
	if v.Position != nil {
		p := &Position{}
		if v.Position.Latitude != nil {
			p.Latitude = float64(*v.Position.Latitude)
		}
		if v.Position.Longitude != nil {
			p.Longitude = float64(*v.Position.Longitude)
		}
		out.Position = p
	}
	return out
}

func decodeAlert(a *gtfsrt.Alert) *Alert {
	return &Alert{
		Headers:      decodeTranslations(a.HeaderText),
		Descriptions: decodeTranslations(a.DescriptionText),
	}
}

func decodeTranslations(ts *gtfsrt.TranslatedString) []Translation {
	if ts == nil || len(ts.Translation) == 0 {
		return nil
	}
	out := make([]Translation, 0, len(ts.Translation))
	for _, tr := range ts.Translation {
		if tr == nil {
			continue
		}
		t := Translation{}
		if tr.Text != nil {
			t.Text = *tr.Text
		}
		if tr.Language != nil {
			t.Language = *tr.Language
		}
		out = append(out, t)
	}
	return out
}
