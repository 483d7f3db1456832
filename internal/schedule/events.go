package schedule

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
)

// LoadEvents reads an events.json file and returns its events sorted by start.
func LoadEvents(path string) ([]Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var events []Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := Sort(events); err != nil {
		return nil, err
	}
	return events, nil
}

// Sort orders events by local start time. Events starting at the same
// instant keep their input order.
func Sort(events []Event) error {
	type keyed struct {
		event Event
		start int64
	}
	list := make([]keyed, len(events))
	for i, e := range events {
		start, err := e.Start()
		if err != nil {
			return err
		}
		list[i] = keyed{event: e, start: start.UnixNano()}
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].start < list[j].start
	})
	for i := range list {
		events[i] = list[i].event
	}
	return nil
}

var cancelledPattern = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(CancelledTerm))

// separators are trimmed from the text around the cancelled term.
const separators = " \t-–—:,;|/"

// CleanDetails reports whether details mark the event as cancelled and
// returns the text to show next to the cancelled badge.
func CleanDetails(details string) (string, bool) {
	if !cancelledPattern.MatchString(details) {
		return details, false
	}

	parts := cancelledPattern.Split(details, -1)

	var kept []string
	for _, p := range parts {
		if p = strings.Trim(p, separators); p != "" {
			kept = append(kept, p)
		}
	}
	cleaned := strings.Join(strings.Fields(strings.Join(kept, " ")), " ")
	if cleaned == "" {
		cleaned = FallbackDetails
	}
	return cleaned, true
}

// LocationLines splits a comma separated location into its non-empty parts.
func LocationLines(location string) []string {
	var lines []string
	for _, part := range strings.Split(location, ",") {
		if part = strings.TrimSpace(part); part != "" {
			lines = append(lines, part)
		}
	}
	return lines
}
