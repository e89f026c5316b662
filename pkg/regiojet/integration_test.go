package regiojet

import (
	"testing"
)

func TestIntegration_FetchDepartures(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	client := NewClient()

	// 17902024 is Karlovy Vary Terminál (usually has buses all day)
	records, err := client.FetchDepartures("17902024", 10)
	if err != nil {
		t.Fatalf("Failed to fetch departures: %v", err)
	}

	if len(records) == 0 {
		t.Logf("Got 0 departures for Karlovy Vary. Note: this might happen late at night.")
	} else {
		if len(records) > 10 {
			t.Errorf("Expected at most 10 records, got %d", len(records))
		}
		for _, rec := range records {
			if rec.Number == "" {
				t.Errorf("Record has empty number (should at least be N/A): %+v", rec)
			}
			if rec.Label == "" {
				t.Errorf("Record has empty label (should at least be N/A): %+v", rec)
			}
		}
	}
}

func TestIntegration_SearchStations(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	client := NewClient()

	matches, err := client.SearchStations("Karlovy Vary")
	if err != nil {
		t.Fatalf("Failed to search stations: %v", err)
	}

	if len(matches) == 0 {
		t.Fatal("Expected at least one station for Karlovy Vary, got 0")
	}

	found := false
	for _, m := range matches {
		if m.StationID == "17902024" {
			found = true
		}
		if m.Station == "" {
			t.Errorf("Match missing station name: %+v", m)
		}
	}
	if !found {
		t.Errorf("Expected to find Karlovy Vary Terminál (17902024) in: %v", matches)
	}
}
