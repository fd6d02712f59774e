package timeutil

import "time"

// The original system stamps every record in the company's home time zone
// regardless of where the server runs, using the en-US locale short format
// (e.g. "1/23/2024, 8:05:07 AM"). Keep both pinned here so responses stay
// byte-compatible with what the presentation layer already parses.
const (
	zoneName    = "Asia/Manila"
	stampLayout = "1/2/2006, 3:04:05 PM"
)

var location = loadLocation()

func loadLocation() *time.Location {
	loc, err := time.LoadLocation(zoneName)
	if err != nil {
		// No tzdata on the host; Manila has no DST so a fixed offset is exact.
		return time.FixedZone(zoneName, 8*60*60)
	}
	return loc
}

// Location returns the fixed reporting time zone.
func Location() *time.Location {
	return location
}

// Stamp renders t as a localized timestamp string.
func Stamp(t time.Time) string {
	return t.In(location).Format(stampLayout)
}

// StampPtr renders an optional timestamp, empty when unset.
func StampPtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return Stamp(*t)
}

// Now is the current time in the reporting zone.
func Now() time.Time {
	return time.Now().In(location)
}
