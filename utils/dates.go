// utils/dates.go
package utils

import "time"

// Display format the front end expects for all date fields.
const dateBR = "02/01/2006"

// API date input format (yyyy-mm-dd).
const dateISO = "2006-01-02"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// FormatDateBR renders a date as dd/mm/yyyy for display fields.
func FormatDateBR(t time.Time) string {
	return t.Format(dateBR)
}

// ParseDateOnly parses a yyyy-mm-dd request field.
func ParseDateOnly(s string) (time.Time, error) {
	return time.Parse(dateISO, s)
}
