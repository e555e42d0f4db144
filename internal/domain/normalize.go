package domain

import "strings"

// NormalizeHumanName trims leading/trailing whitespace and collapses internal whitespace runs.
// It is used for passenger/guest/driver/attendee name normalization on booking records.
func NormalizeHumanName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
