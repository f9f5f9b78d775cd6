package services

import (
	"strings"
	"time"
)

// displayDateLayout is the pt-BR short date form the app renders everywhere.
const displayDateLayout = "02/01/2006"

// wire layouts the backends have been observed to emit.
var wireDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// formatDisplayDate renders a wire timestamp as a pt-BR date in UTC. Values
// that cannot be parsed pass through unchanged so the UI still shows
// something.
func formatDisplayDate(raw string) string {
	for _, layout := range wireDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC().Format(displayDateLayout)
		}
	}
	return raw
}

// normalizeBirthDate converts the campus system's "YYYY-MM-DD hh:mm:ss"
// birth date to display form. Only the date part before the first space is
// considered.
func normalizeBirthDate(raw string) string {
	datePart, _, _ := strings.Cut(raw, " ")
	t, err := time.Parse("2006-01-02", datePart)
	if err != nil {
		return raw
	}
	return t.Format(displayDateLayout)
}
