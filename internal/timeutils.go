package internal

import (
	"time"
)

// NotAvailable is the sentinel for absent optional fields. Absence of a time
// or identifier is not an error and is distinct from an unknown status code.
const NotAvailable = "N/A"

// CtimeFromUnixSeconds formats an epoch in the classic ctime layout
// ("Mon Jan  2 15:04:05 2006"), in local time.
func CtimeFromUnixSeconds(sec int64) string {
	return time.Unix(sec, 0).Format(time.ANSIC)
}

// CtimeOrNA formats an optional epoch, substituting the sentinel when the
// field was absent from the feed.
func CtimeOrNA(sec *int64) string {
	if sec == nil {
		return NotAvailable
	}
	return CtimeFromUnixSeconds(*sec)
}

// Iso8601FromUnixSeconds converts a Unix timestamp to ISO8601 UTC.
func Iso8601FromUnixSeconds(sec int64) string {
	return time.Unix(sec, 0).UTC().Format(time.RFC3339)
}

// OrNA substitutes the sentinel for empty identifiers.
func OrNA(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
