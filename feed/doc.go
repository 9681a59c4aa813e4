// Package feed decodes MTA GTFS-Realtime protobuf snapshots into typed entities.
//
// A snapshot carries three kinds of entities:
//   - Trip Updates: per-stop arrival/departure predictions
//   - Vehicle Positions: current train locations and stop status
//   - Alerts: service disruption headers and descriptions
//
// Decode is pure (no I/O) and either yields a complete Snapshot or a
// *DecodeError; it never returns a partially populated snapshot. Fetching the
// raw bytes is the Client's job.
package feed
