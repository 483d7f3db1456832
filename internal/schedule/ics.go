package schedule

import (
	"bytes"
	"io"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"

	"github.com/klabast/wb-services/squeezers-site/internal/storage/fs"
)

// uidNamespace seeds the name based UUIDs of calendar entries so the same
// event keeps its UID across regenerations.
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceDNS, []byte(ICSUIDDomain))

// EventUID returns a stable UID for e.
func EventUID(e Event) string {
	key := strings.Join([]string{e.Date, e.Time, e.Details}, "|")
	return uuid.NewSHA1(uidNamespace, []byte(key)).String() + "@" + ICSUIDDomain
}

// Calendar converts events into an iCalendar feed. stamp is used as DTSTAMP
// for every entry.
func Calendar(events []Event, stamp time.Time) (*ical.Calendar, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, ICSProductID)
	cal.Props.Set(plainProp("X-WR-CALNAME", ICSCalendarName))
	cal.Props.Set(plainProp("X-WR-TIMEZONE", TimezoneName))
	cal.Props.SetText(ical.PropCalendarScale, "GREGORIAN")

	for _, e := range events {
		start, err := e.Start()
		if err != nil {
			return nil, err
		}
		end, err := e.End()
		if err != nil {
			return nil, err
		}

		summary, cancelled := CleanDetails(e.Details)
		if summary == "" {
			summary = FallbackDetails
		}

		ve := ical.NewComponent(ical.CompEvent)
		ve.Props.SetText(ical.PropUID, EventUID(e))
		ve.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())
		ve.Props.SetDateTime(ical.PropDateTimeStart, start.UTC())
		ve.Props.SetDateTime(ical.PropDateTimeEnd, end.UTC())
		ve.Props.SetText(ical.PropSummary, summary)
		if lines := LocationLines(e.Location); len(lines) > 0 {
			ve.Props.SetText(ical.PropLocation, strings.Join(lines, ", "))
		}
		if e.Caller != "" {
			ve.Props.SetText(ical.PropDescription, "Caller: "+e.Caller)
		}
		if cancelled {
			ve.Props.SetText(ical.PropStatus, "CANCELLED")
		}
		cal.Children = append(cal.Children, ve)
	}
	return cal, nil
}

// plainProp builds a property with no parameters. SetText would tag
// unknown X- names with VALUE=TEXT.
func plainProp(name, value string) *ical.Prop {
	p := ical.NewProp(name)
	p.Value = value
	return p
}

// WriteICS encodes the events as an iCalendar feed to w.
func WriteICS(w io.Writer, events []Event, stamp time.Time) error {
	cal, err := Calendar(events, stamp)
	if err != nil {
		return err
	}
	return ical.NewEncoder(w).Encode(cal)
}

// GenerateICS writes the iCalendar feed for events to path.
func GenerateICS(path string, events []Event, stamp time.Time) error {
	var buf bytes.Buffer
	if err := WriteICS(&buf, events, stamp); err != nil {
		return err
	}
	return fs.WriteFileAtomic(path, buf.Bytes(), FilePermissions)
}
