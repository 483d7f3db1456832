package commands

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	a := NewApp([]byte("<html></html>"))
	a.Writer = &out
	a.ErrWriter = &out
	a.ExitErrHandler = func(*cli.Context, error) {}
	err := a.Run(append([]string{"squeezers-site"}, args...))
	return out.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestPositionalUsage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"build-pages without args", []string{"build-pages"}},
		{"build-pages with one arg", []string{"build-pages", "static"}},
		{"generate-schedule with two args", []string{"generate-schedule", "events.json", "nav.html"}},
		{"generate-schedule with four args", []string{"generate-schedule", "a", "b", "c", "d"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runApp(t, tt.args...)
			var exit cli.ExitCoder
			if !errors.As(err, &exit) {
				t.Fatalf("expected exit error, got %v", err)
			}
			if exit.ExitCode() != 2 {
				t.Errorf("exit code = %d, want 2", exit.ExitCode())
			}
			if !strings.HasPrefix(exit.Error(), "Usage: squeezers-site") {
				t.Errorf("message = %q", exit.Error())
			}
		})
	}
}

func TestBuildPagesCommand(t *testing.T) {
	static := t.TempDir()
	out := filepath.Join(t.TempDir(), "_site")
	writeFile(t, filepath.Join(static, "nav.html"), `<nav><a href="index.html">Start</a></nav>`)
	writeFile(t, filepath.Join(static, "footer.html"), `<footer>Ohmoor</footer>`)
	writeFile(t, filepath.Join(static, "index.html"), "{{ include: nav.html }}\n{{ include: footer.html }}\n")

	stdout, err := runApp(t, "build-pages", static, out)
	if err != nil {
		t.Fatalf("build-pages: %v", err)
	}
	if !strings.Contains(stdout, "Built 1 pages") {
		t.Errorf("stdout = %q", stdout)
	}
	data, err := os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `class="active"`) {
		t.Errorf("index.html not marked active:\n%s", data)
	}
}

func TestGenerateScheduleCommand(t *testing.T) {
	dir := t.TempDir()
	events := filepath.Join(dir, "events.json")
	nav := filepath.Join(dir, "nav.html")
	output := filepath.Join(dir, "out", "schedule.html")
	ics := filepath.Join(dir, "out", "schedule.ics")
	writeFile(t, events, `[{"date":"2026-02-06","time":"18:00","end_date":"2026-02-06","end_time":"21:00","details":"Plus","location":"Gemeindehaus","caller":"Karin"}]`)
	writeFile(t, nav, `<nav><a href="schedule.html">Termine</a></nav>`)

	stdout, err := runApp(t, "generate-schedule", "--ics", ics, events, nav, output)
	if err != nil {
		t.Fatalf("generate-schedule: %v", err)
	}
	if !strings.Contains(stdout, "Wrote 1 events") {
		t.Errorf("stdout = %q", stdout)
	}
	page, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(page), "Gemeindehaus") {
		t.Errorf("schedule page misses location:\n%s", page)
	}
	cal, err := os.ReadFile(ics)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(cal), "BEGIN:VEVENT") {
		t.Errorf("calendar has no event:\n%s", cal)
	}
}

func TestBuildGalleryCommand(t *testing.T) {
	dir := t.TempDir()
	images := filepath.Join(dir, "pics")
	writeFile(t, filepath.Join(images, "sommerfest.jpg"), "x")
	writeFile(t, filepath.Join(images, "notes.txt"), "x")
	output := filepath.Join(dir, "gallery.json")

	stdout, err := runApp(t, "build-gallery", "--images-dir", images, "--output", output)
	if err != nil {
		t.Fatalf("build-gallery: %v", err)
	}
	if want := "Wrote 1 gallery items to " + output; !strings.Contains(stdout, want) {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
	if _, err := os.Stat(output); err != nil {
		t.Error(err)
	}
}

func TestBuildGalleryRequiresFlags(t *testing.T) {
	if _, err := runApp(t, "build-gallery", "--output", "x.json"); err == nil {
		t.Fatal("expected error for missing --images-dir")
	}
}
