package feed

// Snapshot is one decoded instance of the realtime feed, valid at its header
// timestamp. It is immutable once decoded; callers discard it after use.
type Snapshot struct {
	Timestamp int64
	Entities  []Entity
}

// Entity is a tagged union: exactly one of TripUpdate, Vehicle or Alert is
// non-nil.
type Entity struct {
	ID         string
	TripUpdate *TripUpdate
	Vehicle    *VehiclePosition
	Alert      *Alert
}

// TripUpdate carries the predicted stop times for one trip, in feed order.
type TripUpdate struct {
	TripID    string
	RouteID   string
	StopTimes []StopTimeUpdate
}

// StopTimeUpdate is one predicted call at a stop. Arrival and Departure are
// nil when the feed omits them; absence is not an error.
type StopTimeUpdate struct {
	StopID    string
	Arrival   *int64
	Departure *int64
}

// VehiclePosition is the current location and stop status of one train.
type VehiclePosition struct {
	TripID   string
	StopID   string
	Status   VehicleStatus
	Position *Position
}

// Position is a geographic coordinate pair.
type Position struct {
	Latitude  float64
	Longitude float64
}

// Alert carries the localized texts of one service alert, in feed order.
type Alert struct {
	Headers      []Translation
	Descriptions []Translation
}

// Translation is one localized text variant.
type Translation struct {
	Text     string
	Language string
}

// VehicleStatus is the closed set of vehicle stop statuses the display layer
// understands. Codes outside the known range map to StatusUnknown so new feed
// values never break a poll cycle.
type VehicleStatus int

const (
	IncomingAt VehicleStatus = iota
	StoppedAt
	InTransitTo
	StatusUnknown
)

func (s VehicleStatus) String() string {
	switch s {
	case IncomingAt:
		return "INCOMING_AT"
	case StoppedAt:
		return "STOPPED_AT"
	case InTransitTo:
		return "IN_TRANSIT_TO"
	default:
		return "UNKNOWN"
	}
}

// StatusFromCode maps a raw feed status code onto the closed enum. The
// mapping is total: any code outside {0,1,2} yields StatusUnknown.
func StatusFromCode(code int32) VehicleStatus {
	switch code {
	case 0:
		return IncomingAt
	case 1:
		return StoppedAt
	case 2:
		return InTransitTo
	default:
		return StatusUnknown
	}
}
