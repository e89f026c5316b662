package exporter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ptomes1987/regiojet-delays/pkg/regiojet"
)

func TestGenerateICS(t *testing.T) {
	conns := []regiojet.Connection{
		{
			ServiceRecord: regiojet.ServiceRecord{
				Number:       "311",
				Label:        "Karlovy Vary - Sokolov",
				DelayMinutes: 7,
			},
			FreeSeats:         23,
			DepartureTime:     "2026-08-29T14:10:00+02:00",
			ArrivalTime:       "2026-08-29T14:40:00+02:00",
			DeparturePlatform: "3",
		},
	}

	var buf bytes.Buffer
	err := GenerateICS("Karlovy Vary Terminál", "Sokolov Terminál", conns, &buf)
	if err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "Service 311: Karlovy Vary Terminál -> Sokolov Terminál") {
		t.Errorf("Expected ICS to contain the service summary, got: \n%s", output)
	}

	if !strings.Contains(output, "LOCATION:Karlovy Vary Terminál") {
		t.Errorf("Expected ICS to contain the origin as location")
	}

	// 29-Aug-2026 14:10 +02:00 is 12:10 UTC.
	if !strings.Contains(output, "DTSTART:20260829T121000Z") {
		t.Errorf("Expected start time string in ICS (should be UTC), got: \n%s", output)
	}
	if !strings.Contains(output, "DTEND:20260829T124000Z") {
		t.Errorf("Expected end time string in ICS (should be UTC), got: \n%s", output)
	}
}

func TestGenerateICS_SkipsUnparseableDepartures(t *testing.T) {
	conns := []regiojet.Connection{
		{
			ServiceRecord: regiojet.ServiceRecord{Number: "1", Label: "A"},
			// No departure time at all
		},
		{
			ServiceRecord: regiojet.ServiceRecord{Number: "2", Label: "B"},
			DepartureTime: "2026-08-29T08:00:00+02:00",
			// Missing arrival: event should still be emitted
		},
	}

	var buf bytes.Buffer
	if err := GenerateICS("A", "B", conns, &buf); err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}

	output := buf.String()

	if strings.Contains(output, "Service 1:") {
		t.Errorf("Expected connection without departure time to be skipped")
	}
	if !strings.Contains(output, "Service 2:") {
		t.Errorf("Expected connection with departure time to be exported, got: \n%s", output)
	}
}
