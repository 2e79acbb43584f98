package internal

import "time"

const (
	formatDDMMYYYYHHMM = "02.01.2006 15:04"
)

func Format(date time.Time) string {
	return date.UTC().Format(formatDDMMYYYYHHMM)
}
