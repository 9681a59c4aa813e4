package projector

import (
	"fmt"

	"github.com/LS122800/MTA-Tracker/feed"
	"github.com/LS122800/MTA-Tracker/internal"
	"github.com/LS122800/MTA-Tracker/stations"
)

// ProjectAll projects every entity of a snapshot, preserving feed order.
// The result contains exactly one record per stop time update, vehicle
// position and alert in the snapshot.
func ProjectAll(s *feed.Snapshot, d *stations.Directory) []DisplayRecord {
	if s == nil {
		return nil
	}
	out := make([]DisplayRecord, 0, len(s.Entities))
	for _, e := range s.Entities {
		out = append(out, Project(e, d)...)
	}
	return out
}

// Project normalizes one entity into display records. Trip updates yield one
// record per stop time update in original order; vehicles and alerts yield a
// single record.
func Project(e feed.Entity, d *stations.Directory) []DisplayRecord {
	switch {
	case e.TripUpdate != nil:
		return projectTripUpdate(e.TripUpdate, d)
	case e.Vehicle != nil:
		return []DisplayRecord{projectVehicle(e.Vehicle, d)}
	case e.Alert != nil:
		return []DisplayRecord{projectAlert(e.Alert)}
	}
	return nil
}

func projectTripUpdate(tu *feed.TripUpdate, d *stations.Directory) []DisplayRecord {
	records := make([]DisplayRecord, 0, len(tu.StopTimes))
	for _, st := range tu.StopTimes {
		records = append(records, DisplayRecord{
			Kind:      KindStopTime,
			Train:     internal.OrNA(tu.TripID),
			Route:     tu.RouteID,
			StopID:    st.StopID,
			Station:   resolveStop(st.StopID, d),
			Arrival:   internal.CtimeOrNA(st.Arrival),
			Departure: internal.CtimeOrNA(st.Departure),
		})
	}
	return records
}

func projectVehicle(v *feed.VehiclePosition, d *stations.Directory) DisplayRecord {
	rec := DisplayRecord{
		Kind:    KindVehicle,
		Train:   internal.OrNA(v.TripID),
		StopID:  v.StopID,
		Station: resolveStop(v.StopID, d),
		Status:  v.Status.String(),
	}
	if v.Position != nil {
		rec.Position = fmt.Sprintf("Lat: %.4f, Lon: %.4f", v.Position.Latitude, v.Position.Longitude)
	}
	return rec
}

func projectAlert(a *feed.Alert) DisplayRecord {
	return DisplayRecord{
		Kind:         KindAlert,
		Headers:      a.Headers,
		Descriptions: a.Descriptions,
	}
}

// resolveStop resolves a stop id through the directory, substituting the
// sentinel when the feed omitted the id entirely.
func resolveStop(stopID string, d *stations.Directory) string {
	if stopID == "" {
		return internal.NotAvailable
	}
	return d.Resolve(stopID)
}
