package convert

import "github.com/relvacode/iso8601"

// ParseTime converts an ISO-8601 calendar timestamp, with optional
// fractional seconds and no timezone offset (input is treated as UTC), into
// seconds since the Unix epoch. This replaces the original library's
// strptime("%Y-%m-%dT%H:%M:%S") plus hand-rolled mkutctime/iso8601_to_unix
// calendar arithmetic with a maintained parser; spec.md explicitly invites
// this substitution for any library with equivalent, locale-insensitive
// behavior.
func ParseTime(s string) (float64, error) {
	t, err := iso8601.Parse([]byte(s))
	if err != nil {
		return 0, err
	}
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9, nil
}
