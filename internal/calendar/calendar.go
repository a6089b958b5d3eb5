// Package calendar names the week folders and day files of the log store.
package calendar

import (
	"fmt"
	"time"
)

const (
	dayLayout   = "02-01-2006"
	clockLayout = "15:04"
)

// WeekDir is the folder name for the ISO week containing t, e.g. "2026 W07".
func WeekDir(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d W%02d", year, week)
}

// DayFile is the log file name for the day of t, e.g. "17-10-2026.txt".
func DayFile(t time.Time) string {
	return t.Format(dayLayout) + ".txt"
}

// Clock formats t as 24-hour "HH:MM".
func Clock(t time.Time) string {
	return t.Format(clockLayout)
}
