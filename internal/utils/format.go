package utils

import "time"

// FormatDate renders a date the way the public pages show it. It accepts
// both time.Time and *time.Time so templates can pass optional fields
// directly.
func FormatDate(v any) string {
	const layout = "January 2, 2006"
	switch t := v.(type) {
	case time.Time:
		return t.Format(layout)
	case *time.Time:
		if t == nil {
			return ""
		}
		return t.Format(layout)
	}
	return ""
}

// FormatDateInput renders an optional date as yyyy-mm-dd for date inputs.
func FormatDateInput(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
