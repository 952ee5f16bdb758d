package utils

import (
	"strconv"
	"time"
)

var monthsID = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatDate turns an ISO date (YYYY-MM-DD) into the long Indonesian form
// "5 Maret 2024". Empty input stays empty; text that is not a date is
// returned unchanged.
func FormatDate(iso string) string {
	if iso == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return strconv.Itoa(t.Day()) + " " + monthsID[t.Month()-1] + " " + strconv.Itoa(t.Year())
}
