package regiojet

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_FetchServices(t *testing.T) {
	// Mock JSON response representing a typical routes payload
	mockJSON := `[
		{"number": "123", "label": "Karlovy Vary - Cheb", "delay": 3, "freeSeatsCount": 12},
		{"number": "456", "label": "Karlovy Vary - Praha", "delay": 0},
		{"number": "789", "label": "Karlovy Vary - Sokolov", "delay": -2}
	]`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Verify the resource path and query the client builds
		if r.URL.Path != "/routes/17902024/departures" {
			t.Errorf("unexpected request path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("limit") != "10" {
			t.Errorf("expected limit parameter 10, got %q", r.URL.Query().Get("limit"))
		}
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("expected Accept: application/json, got %q", r.Header.Get("Accept"))
		}
		if r.Header.Get("X-Lang") != "cs" {
			t.Errorf("expected X-Lang: cs, got %q", r.Header.Get("X-Lang"))
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(mockJSON))
	}))
	defer server.Close()

	client := NewClientWith(server.URL, "cs")

	records, err := client.FetchServices("17902024", DirectionDepartures, 10)
	if err != nil {
		t.Fatalf("unexpected error fetching mocked services: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	first := records[0]
	if first.Number != "123" || first.Label != "Karlovy Vary - Cheb" || first.DelayMinutes != 3 {
		t.Errorf("unexpected first record: %+v", first)
	}
	if !first.Delayed() {
		t.Errorf("expected record with delay 3 to be classified delayed")
	}

	// Zero and negative delays both count as on time
	if records[1].Delayed() {
		t.Errorf("expected record with delay 0 to be on time")
	}
	if records[2].Delayed() {
		t.Errorf("expected record with delay -2 to be on time")
	}
}

func TestClient_FetchServices_ClientSideTruncation(t *testing.T) {
	// Server ignores the limit parameter and returns 5 entries
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"number": "1", "label": "A", "delay": 0},
			{"number": "2", "label": "B", "delay": 0},
			{"number": "3", "label": "C", "delay": 0},
			{"number": "4", "label": "D", "delay": 0},
			{"number": "5", "label": "E", "delay": 0}
		]`))
	}))
	defer server.Close()

	client := NewClientWith(server.URL, "cs")

	records, err := client.FetchServices("17902024", DirectionDepartures, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected client-side truncation to 2 records, got %d", len(records))
	}
	if records[1].Number != "2" {
		t.Errorf("truncation kept the wrong entries: %+v", records)
	}
}

func TestClient_FetchServices_MissingFields(t *testing.T) {
	// Upstream occasionally omits number, label and delay
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"freeSeatsCount": 4}]`))
	}))
	defer server.Close()

	client := NewClientWith(server.URL, "cs")

	records, err := client.FetchServices("17902024", DirectionArrivals, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	rec := records[0]
	if rec.Number != "N/A" {
		t.Errorf("expected missing number to default to N/A, got %q", rec.Number)
	}
	if rec.Label != "N/A" {
		t.Errorf("expected missing label to default to N/A, got %q", rec.Label)
	}
	if rec.DelayMinutes != 0 {
		t.Errorf("expected missing delay to default to 0, got %d", rec.DelayMinutes)
	}
	if rec.Delayed() {
		t.Errorf("expected defaulted record to be on time")
	}
}

func TestClient_FetchServices_EmptyArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClientWith(server.URL, "cs")

	records, err := client.FetchServices("17902024", DirectionDepartures, 10)
	if err != nil {
		t.Fatalf("an empty schedule is not an error, got: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}

func TestClient_FetchServices_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "station not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClientWith(server.URL, "cs")

	records, err := client.FetchServices("999999", DirectionDepartures, 10)
	if err == nil {
		t.Fatalf("expected an error for a 404 response")
	}
	if records != nil {
		t.Errorf("expected no records on error, got %+v", records)
	}

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected a TransportError, got %T: %v", err, err)
	}
	if transportErr.StatusCode != http.StatusNotFound {
		t.Errorf("expected status code 404, got %d", transportErr.StatusCode)
	}
}

func TestClient_FetchServices_MalformedBody(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"not json", `<html>maintenance</html>`},
		{"json object instead of array", `{"message": "ok"}`},
		{"json null instead of array", `null`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := NewClientWith(server.URL, "cs")

			_, err := client.FetchServices("17902024", DirectionDepartures, 10)
			if err == nil {
				t.Fatalf("expected a decode error for body %q", tc.body)
			}

			var malformedErr *MalformedResponseError
			if !errors.As(err, &malformedErr) {
				t.Fatalf("expected a MalformedResponseError, got %T: %v", err, err)
			}
		})
	}
}

func TestClient_FetchServices_NonPositiveLimit(t *testing.T) {
	// The server must never be reached, and a non-empty response must
	// not be truncated with an invalid bound
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("expected no request for an invalid limit, got %s", r.URL)
		w.Write([]byte(`[{"number": "1", "label": "A", "delay": 0}]`))
	}))
	defer server.Close()

	client := NewClientWith(server.URL, "cs")

	for _, limit := range []int{0, -1} {
		records, err := client.FetchServices("17902024", DirectionDepartures, limit)
		if err == nil {
			t.Errorf("expected an error for limit %d, got records: %+v", limit, records)
		}
	}

	if _, err := client.FindConnections("17902024", "721181001", -1); err == nil {
		t.Errorf("expected an error for a negative connection scan limit")
	}
}

func TestClient_FetchServices_ConnectionRefused(t *testing.T) {
	// Point at a server that is already closed
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClientWith(server.URL, "cs")

	_, err := client.FetchServices("17902024", DirectionDepartures, 10)
	if err == nil {
		t.Fatalf("expected an error when the host is unreachable")
	}

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected a TransportError, got %T: %v", err, err)
	}
	if transportErr.StatusCode != 0 {
		t.Errorf("expected no status code for a connection failure, got %d", transportErr.StatusCode)
	}
}

func TestClient_FetchArrivals_UsesArrivalsPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/routes/10204003/arrivals" {
			t.Errorf("unexpected request path: %s", r.URL.Path)
		}
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClientWith(server.URL, "en")

	if _, err := client.FetchArrivals("10204003", 20); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
