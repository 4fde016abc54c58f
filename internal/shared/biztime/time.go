// Package biztime provides time utilities. All storage and transport use UTC;
// implicit Local timezone is prohibited.
package biztime

import "time"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FromUnixMilliUTC converts a unix millisecond timestamp to a UTC time.
func FromUnixMilliUTC(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
