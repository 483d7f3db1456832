package schedule

import (
	"fmt"
	"time"
)

// Event is one entry of events.json. Date and time fields are UTC.
type Event struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	EndDate  string `json:"end_date"`
	EndTime  string `json:"end_time"`
	Details  string `json:"details"`
	Location string `json:"location"`
	Caller   string `json:"caller"`
}

// Start returns the event start in local time.
func (e Event) Start() (time.Time, error) {
	return parseUTC(e.Date, e.Time)
}

// End returns the event end in local time.
func (e Event) End() (time.Time, error) {
	return parseUTC(e.EndDate, e.EndTime)
}

func parseUTC(date, clock string) (time.Time, error) {
	t, err := time.ParseInLocation(timestampLayout, date+" "+clock, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid event timestamp %q %q: %w", date, clock, err)
	}
	return t.In(Local), nil
}
