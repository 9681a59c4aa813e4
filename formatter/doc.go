// Package formatter renders projected display records for consumers.
//
// Two output shapes are supported:
//   - text.go: the console layout (timestamp banner, per-train blocks,
//     alert blocks)
//   - json.go: a JSON envelope carrying the feed timestamp and the records
//
// Rendering never mutates records; formatting decisions (sentinels, status
// labels) are made upstream by the projector.
package formatter
