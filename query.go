package mtatracker

import "strings"

// QueryError reports an invalid request parameter; it maps to HTTP 400.
type QueryError struct{ Msg string }

func (e *QueryError) Error() string { return e.Msg }

// validateStopID checks an arrivals query's stopId parameter. Existence is
// not checked: unknown stops degrade to empty results, matching the
// directory's resolve policy.
func validateStopID(stopID string) (string, error) {
	stopID = strings.TrimSpace(stopID)
	if stopID == "" {
		return "", &QueryError{Msg: "You must provide a stopId."}
	}
	for _, r := range stopID {
		isDigit := r >= '0' && r <= '9'
		isUpper := r >= 'A' && r <= 'Z'
		isLower := r >= 'a' && r <= 'z'
		if !isDigit && !isUpper && !isLower {
			return "", &QueryError{Msg: "stopId must be alphanumeric."}
		}
	}
	return strings.ToUpper(stopID), nil
}
