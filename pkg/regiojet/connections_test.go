package regiojet

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// Two departures from Karlovy Vary Terminál (17902024): one calling at
// Sokolov (721181001), one going the other way.
const mockDeparturesJSON = `[
	{
		"number": "311",
		"label": "Karlovy Vary - Sokolov",
		"delay": 7,
		"freeSeatsCount": 23,
		"vehicleStandard": "ECONOMY",
		"connectionStations": [
			{"stationId": 17902024, "departure": "2026-08-29T14:10:00+02:00", "platform": "3"},
			{"stationId": 721181000, "departure": "2026-08-29T14:25:00+02:00"},
			{"stationId": 721181001, "arrival": "2026-08-29T14:40:00+02:00", "platform": "1"}
		]
	},
	{
		"number": "205",
		"label": "Karlovy Vary - Praha",
		"delay": 0,
		"connectionStations": [
			{"stationId": 17902024, "departure": "2026-08-29T14:30:00+02:00"},
			{"stationId": 10204003, "arrival": "2026-08-29T16:45:00+02:00"}
		]
	}
]`

func TestClient_FindConnections(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/routes/17902024/departures" {
			t.Errorf("unexpected request path: %s", r.URL.Path)
		}
		w.Write([]byte(mockDeparturesJSON))
	}))
	defer server.Close()

	client := NewClientWith(server.URL, "cs")

	connections, err := client.FindConnections("17902024", "721181001", 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(connections) != 1 {
		t.Fatalf("expected 1 connection to Sokolov, got %d", len(connections))
	}

	conn := connections[0]
	if conn.Number != "311" || conn.DelayMinutes != 7 {
		t.Errorf("unexpected connection record: %+v", conn.ServiceRecord)
	}
	if conn.DepartureTime != "2026-08-29T14:10:00+02:00" {
		t.Errorf("expected departure time at the origin stop, got %q", conn.DepartureTime)
	}
	if conn.ArrivalTime != "2026-08-29T14:40:00+02:00" {
		t.Errorf("expected arrival time at the destination stop, got %q", conn.ArrivalTime)
	}
	if conn.DeparturePlatform != "3" || conn.ArrivalPlatform != "1" {
		t.Errorf("unexpected platforms: %q / %q", conn.DeparturePlatform, conn.ArrivalPlatform)
	}
	if conn.FreeSeats != 23 {
		t.Errorf("expected 23 free seats, got %d", conn.FreeSeats)
	}
}

func TestClient_FindConnections_InvalidStationID(t *testing.T) {
	client := NewClientWith("http://unused", "cs")

	if _, err := client.FindConnections("not-a-number", "721181001", 10); err == nil {
		t.Errorf("expected an error for a non-numeric origin id")
	}
	if _, err := client.FindConnections("17902024", "not-a-number", 10); err == nil {
		t.Errorf("expected an error for a non-numeric destination id")
	}
}

func TestClient_CheckDelays_Threshold(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(mockDeparturesJSON))
	}))
	defer server.Close()

	client := NewClientWith(server.URL, "cs")

	// Threshold 0 returns every connection
	all, err := client.CheckDelays("17902024", "721181001", 50, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 connection with threshold 0, got %d", len(all))
	}

	// Threshold 5 keeps the 7-minute delay
	delayed, err := client.CheckDelays("17902024", "721181001", 50, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(delayed) != 1 {
		t.Fatalf("expected 1 delayed connection, got %d", len(delayed))
	}

	// Threshold 10 filters it out
	none, err := client.CheckDelays("17902024", "721181001", 50, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no connections above 10 minutes, got %d", len(none))
	}
}
