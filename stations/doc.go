// Package stations resolves MTA GTFS stop identifiers to human station names.
//
// The directory is built once at startup from the NY Open Data subway
// stations dataset (39hk-dx4f) and is read-only afterwards, so concurrent
// readers need no locking. Resolution never fails: unmapped ids fall back to
// the raw identifier so new or unknown stops still display with something
// identifiable.
package stations
