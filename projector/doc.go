// Package projector normalizes decoded feed entities into display-ready
// records.
//
// Projection is a pure function of the entity and the station directory:
// stop ids are resolved to station names, status codes become human labels,
// and optional times are formatted or replaced with the "N/A" sentinel.
// Irregular input (unknown status codes, unmapped stops, absent fields)
// degrades to defaults and never produces an error.
package projector
