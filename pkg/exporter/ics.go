package exporter

import (
	"fmt"
	"io"
	"time"

	"github.com/ptomes1987/regiojet-delays/pkg/regiojet"

	ics "github.com/arran4/golang-ical"
)

// GenerateICS creates an ICS calendar from a connection listing and
// writes it to the provided writer. Connections without a parseable
// departure time are skipped; a missing arrival falls back to one hour
// after departure.
func GenerateICS(fromName, toName string, conns []regiojet.Connection, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	for i, conn := range conns {
		startTime, err := time.Parse(time.RFC3339, conn.DepartureTime)
		if err != nil {
			continue // Skip entries with no usable departure time
		}

		endTime := startTime.Add(time.Hour)
		if arr, err := time.Parse(time.RFC3339, conn.ArrivalTime); err == nil {
			endTime = arr
		}

		event := cal.AddEvent(fmt.Sprintf("%s-%d", startTime.Format("20060102T150405Z"), i))
		event.SetCreatedTime(time.Now())
		event.SetDtStampTime(time.Now())
		event.SetModifiedAt(time.Now())
		event.SetStartAt(startTime)
		event.SetEndAt(endTime)
		event.SetSummary(fmt.Sprintf("🚌 Service %s: %s -> %s", conn.Number, fromName, toName))
		event.SetLocation(fromName)

		description := fmt.Sprintf("Route: %s\nFree seats: %d", conn.Label, conn.FreeSeats)
		if conn.DeparturePlatform != "" {
			description += fmt.Sprintf("\nPlatform: %s", conn.DeparturePlatform)
		}
		if conn.Delayed() {
			description += fmt.Sprintf("\nDelay at export time: %d minutes", conn.DelayMinutes)
		}
		event.SetDescription(description)
	}

	return cal.SerializeTo(w)
}
