package feed

import (
	"errors"
	"testing"

	gtfsrt "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"
)

func marshalFeed(t *testing.T, fm *gtfsrt.FeedMessage) []byte {
	t.Helper()
	b, err := proto.Marshal(fm)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return b
}

func feedHeader(ts uint64) *gtfsrt.FeedHeader {
	h := &gtfsrt.FeedHeader{GtfsRealtimeVersion: proto.String("2.0")}
	if ts != 0 {
		h.Timestamp = proto.Uint64(ts)
	}
	return h
}

func TestDecode_Snapshot(t *testing.T) {
	fm := &gtfsrt.FeedMessage{
		Header: feedHeader(1700000000),
		Entity: []*gtfsrt.FeedEntity{
			{
				Id: proto.String("1"),
				TripUpdate: &gtfsrt.TripUpdate{
					Trip: &gtfsrt.TripDescriptor{
						TripId:  proto.String("G1"),
						RouteId: proto.String("G"),
					},
					StopTimeUpdate: []*gtfsrt.TripUpdate_StopTimeUpdate{
						{
							StopId:  proto.String("G22N"),
							Arrival: &gtfsrt.TripUpdate_StopTimeEvent{Time: proto.Int64(1700000100)},
						},
						{
							StopId:    proto.String("G26N"),
							Arrival:   &gtfsrt.TripUpdate_StopTimeEvent{Time: proto.Int64(1700000400)},
							Departure: &gtfsrt.TripUpdate_StopTimeEvent{Time: proto.Int64(1700000430)},
						},
					},
				},
			},
			{
				Id: proto.String("2"),
				Vehicle: &gtfsrt.VehiclePosition{
					Trip:          &gtfsrt.TripDescriptor{TripId: proto.String("G1")},
					StopId:        proto.String("G22S"),
					CurrentStatus: gtfsrt.VehiclePosition_STOPPED_AT.Enum(),
					Position: &gtfsrt.Position{
						Latitude:  proto.Float32(40.7465),
						Longitude: proto.Float32(-73.9439),
					},
				},
			},
			{
				Id: proto.String("3"),
				Alert: &gtfsrt.Alert{
					HeaderText: &gtfsrt.TranslatedString{
						Translation: []*gtfsrt.TranslatedString_Translation{
							{Text: proto.String("G trains delayed"), Language: proto.String("en")},
							{Text: proto.String("Trenes G demorados"), Language: proto.String("es")},
						},
					},
				},
			},
		},
	}

	snap, err := Decode(marshalFeed(t, fm))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if snap.Timestamp != 1700000000 {
		t.Errorf("timestamp = %d, want 1700000000", snap.Timestamp)
	}
	if len(snap.Entities) != 3 {
		t.Fatalf("entity count = %d, want 3", len(snap.Entities))
	}

	tu := snap.Entities[0].TripUpdate
	if tu == nil {
		t.Fatal("entity 0 should be a trip update")
	}
	if tu.TripID != "G1" || tu.RouteID != "G" {
		t.Errorf("trip update ids = %q/%q, want G1/G", tu.TripID, tu.RouteID)
	}
	if len(tu.StopTimes) != 2 {
		t.Fatalf("stop time count = %d, want 2", len(tu.StopTimes))
	}
	if tu.StopTimes[0].StopID != "G22N" || tu.StopTimes[1].StopID != "G26N" {
		t.Errorf("stop order not preserved: %q, %q", tu.StopTimes[0].StopID, tu.StopTimes[1].StopID)
	}
	if tu.StopTimes[0].Arrival == nil || *tu.StopTimes[0].Arrival != 1700000100 {
		t.Errorf("first arrival not decoded: %v", tu.StopTimes[0].Arrival)
	}
	if tu.StopTimes[0].Departure != nil {
		t.Error("first departure should be absent")
	}

	v := snap.Entities[1].Vehicle
	if v == nil {
		t.Fatal("entity 1 should be a vehicle")
	}
	if v.TripID != "G1" || v.StopID != "G22S" {
		t.Errorf("vehicle ids = %q/%q, want G1/G22S", v.TripID, v.StopID)
	}
	if v.Status != StoppedAt {
		t.Errorf("vehicle status = %v, want StoppedAt", v.Status)
	}
	if v.Position == nil {
		t.Fatal("vehicle position should be present")
	}

	a := snap.Entities[2].Alert
	if a == nil {
		t.Fatal("entity 2 should be an alert")
	}
	if len(a.Headers) != 2 {
		t.Errorf("header count = %d, want 2", len(a.Headers))
	}
	if len(a.Descriptions) != 0 {
		t.Errorf("description count = %d, want 0", len(a.Descriptions))
	}
	if a.Headers[0].Text != "G trains delayed" || a.Headers[0].Language != "en" {
		t.Errorf("first header = %+v", a.Headers[0])
	}
}

func TestDecode_MalformedPayload(t *testing.T) {
	// field 1, length-delimited, declared length 153 but no data follows
	snap, err := Decode([]byte{0x0a, 0x99, 0x01})
	if err == nil {
		t.Fatal("expected error for malformed payload")
	}
	if snap != nil {
		t.Error("no snapshot should be returned on decode failure")
	}
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Errorf("error type = %T, want *DecodeError", err)
	}
}

func TestDecode_MissingHeaderTimestamp(t *testing.T) {
	b := marshalFeed(t, &gtfsrt.FeedMessage{Header: feedHeader(0)})
	_, err := Decode(b)
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected *DecodeError, got %v", err)
	}
}

func TestDecode_VehicleDefaults(t *testing.T) {
	b := marshalFeed(t, &gtfsrt.FeedMessage{
		Header: feedHeader(1700000000),
		Entity: []*gtfsrt.FeedEntity{
			{Id: proto.String("1"), Vehicle: &gtfsrt.VehiclePosition{}},
		},
	})
	snap, err := Decode(b)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	v := snap.Entities[0].Vehicle
	if v.TripID != "" || v.StopID != "" {
		t.Errorf("absent identifiers should default to empty, got %q/%q", v.TripID, v.StopID)
	}
	if v.Status != StatusUnknown {
		t.Errorf("absent status = %v, want StatusUnknown", v.Status)
	}
	if v.Position != nil {
		t.Error("absent position should stay nil")
	}
}

func TestStatusFromCode(t *testing.T) {
	tests := []struct {
		code int32
		want VehicleStatus
	}{
		{0, IncomingAt},
		{1, StoppedAt},
		{2, InTransitTo},
		{3, StatusUnknown},
		{-1, StatusUnknown},
		{99, StatusUnknown},
	}
	for _, tt := range tests {
		if got := StatusFromCode(tt.code); got != tt.want {
			t.Errorf("StatusFromCode(%d) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestVehicleStatus_String(t *testing.T) {
	tests := []struct {
		status VehicleStatus
		want   string
	}{
		{IncomingAt, "INCOMING_AT"},
		{StoppedAt, "STOPPED_AT"},
		{InTransitTo, "IN_TRANSIT_TO"},
		{StatusUnknown, "UNKNOWN"},
		{VehicleStatus(42), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}
