package schedule

import (
	"time"
	_ "time/tzdata"
)

const (
	PageName     = "schedule.html"
	PageTitle    = "Ohmoor Squeezers e.V. - Clubabende"
	TimezoneName = "Europe/Berlin"

	// CancelledTerm marks an event as cancelled when found in its details (any case).
	CancelledTerm   = "abgesagt"
	CancelledBadge  = `<span class="badge cancelled">Abgesagt</span>`
	CancelledRow    = "is-cancelled"
	FallbackDetails = "Clubabend"
	EmptyNotice     = "Keine Termine vorhanden."

	// Timestamps in events.json are UTC wall clock values in this layout.
	timestampLayout = "2006-01-02 15:04"

	ICSProductID    = "-//Ohmoor Squeezers//Clubabende//DE"
	ICSCalendarName = "Ohmoor Squeezers Clubabende"
	ICSUIDDomain    = "ohmoor-squeezers.de"

	FilePermissions = 0o644
)

// MonthsDE are the month abbreviations used on the schedule page.
var MonthsDE = [12]string{
	"Jan.", "Feb.", "Mrz.", "Apr.", "Mai", "Jun.",
	"Jul.", "Aug.", "Sep.", "Okt.", "Nov.", "Dez.",
}

// Local is the zone all times are shown and sorted in.
var Local = mustLoadLocation(TimezoneName)

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}
