// Package report renders service delay records for terminal output. The
// delay classification rule lives in the regiojet package; this layer
// only decides how a record looks.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/ptomes1987/regiojet-delays/pkg/regiojet"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	onTimeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	minorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	majorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// majorDelayMinutes is where a delay switches from the minor to the
// major style.
const majorDelayMinutes = 10

// Reporter formats delay reports. Station display names come from an
// injected name-to-ID mapping so the client stays free of any fixed
// station list.
type Reporter struct {
	stations map[string]string
	titler   cases.Caser
}

// New creates a Reporter over a station name-to-ID mapping.
func New(stations map[string]string) *Reporter {
	return &Reporter{
		stations: stations,
		titler:   cases.Title(language.Czech),
	}
}

// StationID resolves a user-supplied station reference: a configured
// name (case-insensitive) or a raw numeric ID.
func (r *Reporter) StationID(ref string) (string, bool) {
	for name, id := range r.stations {
		if strings.EqualFold(name, ref) || id == ref {
			return id, true
		}
	}
	// Bare numeric IDs pass through untouched
	if ref != "" && strings.Trim(ref, "0123456789") == "" {
		return ref, true
	}
	return "", false
}

// StationName returns the configured display name for a station ID,
// title-cased, falling back to the ID itself.
func (r *Reporter) StationName(id string) string {
	for name, mapped := range r.stations {
		if mapped == id {
			return r.titler.String(name)
		}
	}
	return id
}

// Line renders a single service record: the service number and label,
// then the delay classification on an indented line.
func (r *Reporter) Line(rec regiojet.ServiceRecord) string {
	status := onTimeStyle.Render("ON TIME")
	if rec.Delayed() {
		text := fmt.Sprintf("Delay: %d minutes", rec.DelayMinutes)
		if rec.DelayMinutes >= majorDelayMinutes {
			status = majorStyle.Render(text)
		} else {
			status = minorStyle.Render(text)
		}
	}

	return fmt.Sprintf("Service %s: %s\n  %s", rec.Number, rec.Label, status)
}

// Board renders a full station board: header, one entry per record and
// a delay summary footer.
func (r *Reporter) Board(stationID string, dir regiojet.Direction, records []regiojet.ServiceRecord) string {
	var b strings.Builder

	title := fmt.Sprintf("--- 🚌 %s: %s ---", r.titler.String(string(dir)), r.StationName(stationID))
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")

	if len(records) == 0 {
		b.WriteString("No scheduled services found.\n")
		return b.String()
	}

	for _, rec := range records {
		b.WriteString("• ")
		b.WriteString(r.Line(rec))
		b.WriteString("\n")
	}

	b.WriteString(r.Summary(regiojet.Summarize(records)))
	return b.String()
}

// Summary renders aggregate delay statistics.
func (r *Reporter) Summary(s regiojet.DelaySummary) string {
	if s.Total == 0 {
		return ""
	}
	return faintStyle.Render(fmt.Sprintf(
		"%d services, %d on time, %d delayed, avg %.1f min, max %d min",
		s.Total, s.OnTime, s.Delayed, s.AverageDelay, s.MaxDelay,
	)) + "\n"
}

// Connections renders a connection listing between two stations.
func (r *Reporter) Connections(fromID, toID string, conns []regiojet.Connection) string {
	var b strings.Builder

	title := fmt.Sprintf("--- 🧭 %s -> %s ---", r.StationName(fromID), r.StationName(toID))
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")

	if len(conns) == 0 {
		b.WriteString("No connections found.\n")
		return b.String()
	}

	for i, conn := range conns {
		b.WriteString(fmt.Sprintf("%d. %s", i+1, r.Line(conn.ServiceRecord)))
		b.WriteString("\n")

		dep := FormatTime(conn.DepartureTime)
		if conn.DeparturePlatform != "" {
			dep += fmt.Sprintf(" (platform %s)", conn.DeparturePlatform)
		}
		arr := FormatTime(conn.ArrivalTime)
		if conn.ArrivalPlatform != "" {
			arr += fmt.Sprintf(" (platform %s)", conn.ArrivalPlatform)
		}

		b.WriteString(fmt.Sprintf("  Departure: %s, Arrival: %s\n", dep, arr))
		b.WriteString(fmt.Sprintf("  Free seats: %d", conn.FreeSeats))
		if conn.VehicleStandard != "" {
			b.WriteString(fmt.Sprintf(", Vehicle: %s", conn.VehicleStandard))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// FormatTime turns an upstream ISO-8601 timestamp into HH:MM. Empty
// input renders as N/A; anything unparseable is shown as-is.
func FormatTime(iso string) string {
	if iso == "" {
		return regiojet.FieldUnknown
	}
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return t.Format("15:04")
}
