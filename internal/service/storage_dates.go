package service

import (
	"regexp"
	"time"
)

// dateLayout is the ISO-8601 form dates are stored in: UTC, millisecond
// precision, always with the Z designator.
const dateLayout = "2006-01-02T15:04:05.000Z"

// datePattern matches a JSON-quoted dateLayout payload and nothing else.
var datePattern = regexp.MustCompile(`^"(\d{4})-(\d{2})-(\d{2})T(\d{2}):(\d{2}):(\d{2})\.(\d{3})Z"$`)

// formatDate renders t in dateLayout.
func formatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// parseDate recognizes a stored date payload. Payloads that match the
// pattern but name an impossible instant (month 13) are not dates.
func parseDate(payload string) (time.Time, bool) {
	if !datePattern.MatchString(payload) {
		return time.Time{}, false
	}

	t, err := time.Parse(dateLayout, payload[1:len(payload)-1])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
