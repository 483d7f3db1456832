package schedule

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEventStartConvertsToLocal(t *testing.T) {
	tests := []struct {
		name string
		date string
		time string
		want string
	}{
		{name: "Winter time", date: "2026-01-31", time: "18:30", want: "2026-01-31 19:30 CET"},
		{name: "Summer time", date: "2026-07-10", time: "18:30", want: "2026-07-10 20:30 CEST"},
		{name: "Crosses midnight", date: "2026-02-01", time: "23:30", want: "2026-02-02 00:30 CET"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := Event{Date: tt.date, Time: tt.time}.Start()
			if err != nil {
				t.Fatalf("Start() failed: %v", err)
			}
			if got := start.Format("2006-01-02 15:04 MST"); got != tt.want {
				t.Errorf("Start() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEventStartInvalid(t *testing.T) {
	tests := []Event{
		{Date: "31.01.2026", Time: "18:30"},
		{Date: "2026-2-6", Time: "18:30"},
		{Date: "2026-02-6", Time: "18:30"},
	}
	for _, e := range tests {
		if _, err := e.Start(); err == nil {
			t.Errorf("Expected error for %q %q", e.Date, e.Time)
		}
	}
}

func TestSortStable(t *testing.T) {
	events := []Event{
		{Date: "2026-03-01", Time: "18:00", Details: "c"},
		{Date: "2026-01-01", Time: "18:00", Details: "a1"},
		{Date: "2026-02-01", Time: "18:00", Details: "b"},
		{Date: "2026-01-01", Time: "18:00", Details: "a2"},
		{Date: "2026-01-01", Time: "17:59", Details: "first"},
	}
	if err := Sort(events); err != nil {
		t.Fatalf("Sort() failed: %v", err)
	}

	var got []string
	for _, e := range events {
		got = append(got, e.Details)
	}
	want := []string{"first", "a1", "a2", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sort() order = %v, want %v", got, want)
	}
}

func TestCleanDetails(t *testing.T) {
	tests := []struct {
		details       string
		want          string
		wantCancelled bool
	}{
		{"Clubabend - abgesagt", "Clubabend", true},
		{"Abgesagt", FallbackDetails, true},
		{" - ABGESAGT - ", FallbackDetails, true},
		{"Abgesagt: Rock-n-Roll Workshop", "Rock-n-Roll Workshop", true},
		{"Workshop abgesagt, Clubabend findet statt", "Workshop Clubabend findet statt", true},
		{"Clubabend mit Gastcaller", "Clubabend mit Gastcaller", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.details, func(t *testing.T) {
			got, cancelled := CleanDetails(tt.details)
			if got != tt.want || cancelled != tt.wantCancelled {
				t.Errorf("CleanDetails(%q) = (%q, %v), want (%q, %v)", tt.details, got, cancelled, tt.want, tt.wantCancelled)
			}
		})
	}
}

func TestLocationLines(t *testing.T) {
	got := LocationLines("Gemeindehaus, Ohmoorstr. 12 , , 22455 Hamburg")
	want := []string{"Gemeindehaus", "Ohmoorstr. 12", "22455 Hamburg"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LocationLines() = %v, want %v", got, want)
	}
	if lines := LocationLines(""); len(lines) != 0 {
		t.Errorf("LocationLines(\"\") = %v, want empty", lines)
	}
}

func TestLoadEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	data := `[
  {"date": "2026-02-14", "time": "18:00", "end_date": "2026-02-14", "end_time": "21:00", "details": "B"},
  {"date": "2026-02-07", "time": "18:00", "end_date": "2026-02-07", "end_time": "21:00", "details": "A"}
]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	events, err := LoadEvents(path)
	if err != nil {
		t.Fatalf("LoadEvents() failed: %v", err)
	}
	if len(events) != 2 || events[0].Details != "A" || events[1].Details != "B" {
		t.Errorf("LoadEvents() = %+v, want sorted A, B", events)
	}
}

func TestLoadEventsErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
	}{
		{name: "Invalid JSON", content: "[{"},
		{name: "Not a list", content: `{"date": "2026-01-01"}`},
		{name: "Bad timestamp", content: `[{"date": "2026-01-01", "time": "late"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".json")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("seed failed: %v", err)
			}
			if _, err := LoadEvents(path); err == nil {
				t.Error("Expected LoadEvents() to fail")
			}
		})
	}
}
