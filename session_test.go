package mtatracker

import (
	"testing"

	gtfsrt "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"

	"github.com/LS122800/MTA-Tracker/projector"
	"github.com/LS122800/MTA-Tracker/stations"
)

func snapshotBytes(t *testing.T) []byte {
	t.Helper()
	fm := &gtfsrt.FeedMessage{
		Header: &gtfsrt.FeedHeader{
			GtfsRealtimeVersion: proto.String("2.0"),
			Timestamp:           proto.Uint64(1700000000),
		},
		Entity: []*gtfsrt.FeedEntity{
			{
				Id: proto.String("1"),
				TripUpdate: &gtfsrt.TripUpdate{
					Trip: &gtfsrt.TripDescriptor{TripId: proto.String("G1"), RouteId: proto.String("G")},
					StopTimeUpdate: []*gtfsrt.TripUpdate_StopTimeUpdate{
						{StopId: proto.String("G22N"), Arrival: &gtfsrt.TripUpdate_StopTimeEvent{Time: proto.Int64(1700000100)}},
						{StopId: proto.String("G26N"), Arrival: &gtfsrt.TripUpdate_StopTimeEvent{Time: proto.Int64(1700000400)}},
					},
				},
			},
			{
				Id: proto.String("2"),
				Vehicle: &gtfsrt.VehiclePosition{
					Trip:          &gtfsrt.TripDescriptor{TripId: proto.String("G1")},
					StopId:        proto.String("G22S"),
					CurrentStatus: gtfsrt.VehiclePosition_STOPPED_AT.Enum(),
				},
			},
			{
				Id: proto.String("3"),
				Alert: &gtfsrt.Alert{
					HeaderText: &gtfsrt.TranslatedString{
						Translation: []*gtfsrt.TranslatedString_Translation{
							{Text: proto.String("G trains delayed"), Language: proto.String("en")},
						},
					},
				},
			},
		},
	}
	b, err := proto.Marshal(fm)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return b
}

func testDirectory() *stations.Directory {
	return stations.Build([]stations.StationRow{
		{GTFSStopID: "G22", StopName: "Court Sq", Borough: "Queens"},
		{GTFSStopID: "G26", StopName: "Greenpoint Av", Borough: "Brooklyn"},
	})
}

func TestSession_LoadAndQuery(t *testing.T) {
	s := NewSession(testDirectory())
	if s.HasSnapshot() {
		t.Fatal("fresh session should have no snapshot")
	}

	if err := s.LoadSnapshot(snapshotBytes(t)); err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if !s.HasSnapshot() {
		t.Fatal("snapshot should be loaded")
	}
	if s.FeedTimestamp() != 1700000000 {
		t.Errorf("FeedTimestamp = %d, want 1700000000", s.FeedTimestamp())
	}

	recs := s.Records()
	if len(recs) != 4 {
		t.Fatalf("Records count = %d, want 4", len(recs))
	}

	positions := s.TrainPositions()
	if len(positions) != 1 {
		t.Fatalf("TrainPositions count = %d, want 1", len(positions))
	}
	if positions[0].Station != "Court Sq (Queens)" || positions[0].Status != "STOPPED_AT" {
		t.Errorf("vehicle record = %+v", positions[0])
	}

	alerts := s.Alerts()
	if len(alerts) != 1 || len(alerts[0].Headers) != 1 {
		t.Fatalf("Alerts = %+v", alerts)
	}
}

func TestSession_ArrivalsAt(t *testing.T) {
	s := NewSession(testDirectory())
	if err := s.LoadSnapshot(snapshotBytes(t)); err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}

	tests := []struct {
		name   string
		stopID string
		want   int
	}{
		{"base id", "G22", 1},
		{"northbound id", "G22N", 1},
		{"southbound id", "G22S", 1},
		{"other stop", "G26", 1},
		{"unknown stop", "A41", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.ArrivalsAt(tt.stopID)
			if len(got) != tt.want {
				t.Errorf("ArrivalsAt(%q) count = %d, want %d", tt.stopID, len(got), tt.want)
			}
			for _, rec := range got {
				if rec.Kind != projector.KindStopTime {
					t.Errorf("kind = %q, want stop_time", rec.Kind)
				}
			}
		})
	}
}

func TestSession_DecodeFailureClearsSnapshot(t *testing.T) {
	s := NewSession(testDirectory())
	if err := s.LoadSnapshot(snapshotBytes(t)); err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}

	if err := s.LoadSnapshot([]byte{0x0a, 0x99, 0x01}); err == nil {
		t.Fatal("expected decode error")
	}
	if s.HasSnapshot() {
		t.Error("failed decode should leave the session without a snapshot")
	}
	if got := s.Records(); len(got) != 0 {
		t.Errorf("no records should be produced after a failed decode, got %d", len(got))
	}
}
