package schedule

import (
	"fmt"
	"html"
	"os"
	"strings"
	"time"

	"github.com/klabast/wb-services/squeezers-site/internal/site"
	"github.com/klabast/wb-services/squeezers-site/internal/storage/fs"
)

// FormatDateDE formats t like "31. Jan. 2026".
func FormatDateDE(t time.Time) string {
	return fmt.Sprintf("%d. %s %d", t.Day(), MonthsDE[t.Month()-1], t.Year())
}

// Render builds the complete schedule page. Events are expected in display
// order, see Sort.
func Render(events []Event, nav string) (string, error) {
	rows := make([]string, 0, len(events))
	for _, e := range events {
		row, err := renderRow(e)
		if err != nil {
			return "", err
		}
		rows = append(rows, row)
	}

	var body string
	if len(rows) > 0 {
		body = "      <table>\n" +
			"        <thead>\n" +
			"          <tr>\n" +
			"            <th>Datum &amp; Zeit</th>\n" +
			"            <th>Details</th>\n" +
			"            <th>Ort</th>\n" +
			"            <th>Caller</th>\n" +
			"          </tr>\n" +
			"        </thead>\n" +
			"        <tbody>\n" +
			strings.Join(rows, "\n") +
			"\n        </tbody>\n" +
			"      </table>\n"
	} else {
		body = "      <p>" + EmptyNotice + "</p>\n"
	}

	title := html.EscapeString(PageTitle)
	var b strings.Builder
	b.WriteString("<!doctype html>\n")
	b.WriteString("<html lang=\"de\">\n")
	b.WriteString("  <head>\n")
	b.WriteString("    <meta charset=\"utf-8\" />\n")
	b.WriteString("    <meta name=\"viewport\" content=\"width=device-width, initial-scale=1\" />\n")
	b.WriteString("    <link rel=\"stylesheet\" href=\"style.css\" />\n")
	fmt.Fprintf(&b, "    <title>%s</title>\n", title)
	b.WriteString("  </head>\n")
	b.WriteString("  <body>\n")
	b.WriteString(site.MarkActive(nav, PageName))
	b.WriteString("    <main class=\"container page\">\n")
	fmt.Fprintf(&b, "      <h1>%s</h1>\n", title)
	b.WriteString("      <p class=\"muted\">Alle Termine sind in lokaler Zeit (CET/CEST).</p>\n")
	b.WriteString(body)
	b.WriteString("    </main>\n")
	b.WriteString("  </body>\n")
	b.WriteString("</html>\n")
	return b.String(), nil
}

func renderRow(e Event) (string, error) {
	start, err := e.Start()
	if err != nil {
		return "", err
	}
	end, err := e.End()
	if err != nil {
		return "", err
	}

	dateLine := fmt.Sprintf("%s | %s-%s", FormatDateDE(start), start.Format("15:04"), end.Format("15:04"))

	details, cancelled := CleanDetails(e.Details)
	if cancelled {
		details = CancelledBadge + " " + html.EscapeString(details)
	} else {
		details = html.EscapeString(details)
	}

	lines := LocationLines(e.Location)
	for i := range lines {
		lines[i] = html.EscapeString(lines[i])
	}

	rowClass := ""
	if cancelled {
		rowClass = ` class="` + CancelledRow + `"`
	}

	var b strings.Builder
	fmt.Fprintf(&b, "        <tr%s>\n", rowClass)
	fmt.Fprintf(&b, "          <td data-label=\"Datum &amp; Zeit\">%s</td>\n", html.EscapeString(dateLine))
	fmt.Fprintf(&b, "          <td data-label=\"Details\">%s</td>\n", details)
	fmt.Fprintf(&b, "          <td data-label=\"Ort\">%s</td>\n", strings.Join(lines, "<br />"))
	fmt.Fprintf(&b, "          <td data-label=\"Caller\">%s</td>\n", html.EscapeString(e.Caller))
	b.WriteString("        </tr>")
	return b.String(), nil
}

// Generate renders the schedule page for eventsPath with the nav fragment at
// navPath and writes it to outputPath. It returns the rendered events.
func Generate(eventsPath, navPath, outputPath string) ([]Event, error) {
	nav, err := os.ReadFile(navPath)
	if err != nil {
		return nil, err
	}
	events, err := LoadEvents(eventsPath)
	if err != nil {
		return nil, err
	}
	page, err := Render(events, string(nav))
	if err != nil {
		return nil, err
	}
	if err := fs.WriteFileAtomic(outputPath, []byte(page), FilePermissions); err != nil {
		return nil, err
	}
	return events, nil
}
