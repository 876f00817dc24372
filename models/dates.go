package models

import "time"

// Backend timestamps arrive as ISO strings, sometimes without an offset,
// so they stay strings on the wire and get parsed leniently for display.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.9999999",
	"2006-01-02T15:04:05",
}

// FormatDate renders a backend timestamp for display. Unparseable input is
// shown as-is rather than erased.
func FormatDate(raw string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("02.01.2006 15:04")
		}
	}
	return raw
}
