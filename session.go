// Package mtatracker orchestrates one decode-and-project pass over the MTA
// realtime feed: a Session owns the immutable station directory and at most
// one decoded snapshot at a time, and exposes query operations over it.
package mtatracker

import (
	"github.com/LS122800/MTA-Tracker/feed"
	"github.com/LS122800/MTA-Tracker/projector"
	"github.com/LS122800/MTA-Tracker/stations"
)

// Session holds one decoded snapshot and the read-only station directory.
// It keeps no history: loading a snapshot replaces the previous one, and a
// failed decode leaves the session with no snapshot for that cycle.
//
// Sessions are not safe for concurrent mutation; the directory itself is
// immutable and may be shared across sessions.
type Session struct {
	directory *stations.Directory
	snapshot  *feed.Snapshot
}

// NewSession creates a session over a built station directory.
func NewSession(d *stations.Directory) *Session {
	return &Session{directory: d}
}

// LoadSnapshot decodes raw feed bytes and installs the result as the current
// snapshot. On a decode failure the session is left without a snapshot and
// the *feed.DecodeError is returned; the caller skips rendering and retries
// next poll.
func (s *Session) LoadSnapshot(b []byte) error {
	snap, err := feed.Decode(b)
	if err != nil {
		s.snapshot = nil
		return err
	}
	s.snapshot = snap
	return nil
}

// HasSnapshot reports whether a decoded snapshot is currently loaded.
func (s *Session) HasSnapshot() bool { return s.snapshot != nil }

// FeedTimestamp returns the header timestamp of the current snapshot, or 0
// when none is loaded.
func (s *Session) FeedTimestamp() int64 {
	if s.snapshot == nil {
		return 0
	}
	return s.snapshot.Timestamp
}

// Records projects every entity of the current snapshot, preserving feed
// order.
func (s *Session) Records() []projector.DisplayRecord {
	return projector.ProjectAll(s.snapshot, s.directory)
}

// TrainPositions returns the vehicle records of the current snapshot.
func (s *Session) TrainPositions() []projector.DisplayRecord {
	return s.filter(projector.KindVehicle)
}

// Alerts returns the alert records of the current snapshot.
func (s *Session) Alerts() []projector.DisplayRecord {
	return s.filter(projector.KindAlert)
}

// ArrivalsAt returns the stop-time records calling at the given stop. The
// query id and the feed ids are compared on their base form, so "G22",
// "G22N" and "G22S" all address the same station.
func (s *Session) ArrivalsAt(stopID string) []projector.DisplayRecord {
	base := stations.BaseID(stopID)
	var out []projector.DisplayRecord
	for _, rec := range s.filter(projector.KindStopTime) {
		if stations.BaseID(rec.StopID) == base {
			out = append(out, rec)
		}
	}
	return out
}

func (s *Session) filter(kind projector.Kind) []projector.DisplayRecord {
	var out []projector.DisplayRecord
	for _, rec := range s.Records() {
		if rec.Kind == kind {
			out = append(out, rec)
		}
	}
	return out
}
