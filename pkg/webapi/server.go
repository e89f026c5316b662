// Package webapi exposes a configured set of station delay boards as a
// small JSON HTTP facade.
package webapi

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/ptomes1987/regiojet-delays/pkg/regiojet"
)

// DelayFetcher is the part of the API client the facade needs.
type DelayFetcher interface {
	FetchServices(stationID string, dir regiojet.Direction, limit int) ([]regiojet.ServiceRecord, error)
}

// ServiceJSON is one record in the facade response.
type ServiceJSON struct {
	Number       string `json:"number"`
	Label        string `json:"label"`
	DelayMinutes int    `json:"delay_minutes"`
	OnTime       bool   `json:"on_time"`
}

// StationJSON is the delay board of one configured station.
type StationJSON struct {
	Station    string        `json:"station"`
	StationID  string        `json:"station_id"`
	Arrivals   []ServiceJSON `json:"arrivals"`
	Departures []ServiceJSON `json:"departures"`
	Error      string        `json:"error,omitempty"`
}

// DelaysResponse is the body of GET /api/delays.
type DelaysResponse struct {
	Status   string        `json:"status"`
	Stations []StationJSON `json:"stations"`
}

// Server renders delay boards for a fixed station mapping.
type Server struct {
	client   DelayFetcher
	stations map[string]string
	limit    int
}

// NewServer creates the facade over a client and a station name-to-ID
// mapping.
func NewServer(client DelayFetcher, stations map[string]string, limit int) *Server {
	return &Server{
		client:   client,
		stations: stations,
		limit:    limit,
	}
}

// Handler returns the HTTP routes of the facade.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /", s.handleHome)
	mux.HandleFunc("GET /api/delays", s.handleDelays)
	return mux
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("🚄 RegioJet Delays API is running! Go to /api/delays\n"))
}

func (s *Server) handleDelays(w http.ResponseWriter, r *http.Request) {
	resp := DelaysResponse{
		Status:   "success",
		Stations: []StationJSON{},
	}

	// Stable station order regardless of map iteration
	names := make([]string, 0, len(s.stations))
	for name := range s.stations {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		station := StationJSON{
			Station:   name,
			StationID: s.stations[name],
		}

		// A failing station is reported inline; the others still answer
		arrivals, err := s.client.FetchServices(station.StationID, regiojet.DirectionArrivals, s.limit)
		if err != nil {
			station.Error = err.Error()
			resp.Stations = append(resp.Stations, station)
			continue
		}
		departures, err := s.client.FetchServices(station.StationID, regiojet.DirectionDepartures, s.limit)
		if err != nil {
			station.Error = err.Error()
			resp.Stations = append(resp.Stations, station)
			continue
		}

		station.Arrivals = toServiceJSON(arrivals)
		station.Departures = toServiceJSON(departures)
		resp.Stations = append(resp.Stations, station)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	json.NewEncoder(w).Encode(resp)
}

func toServiceJSON(records []regiojet.ServiceRecord) []ServiceJSON {
	out := make([]ServiceJSON, 0, len(records))
	for _, rec := range records {
		out = append(out, ServiceJSON{
			Number:       rec.Number,
			Label:        rec.Label,
			DelayMinutes: rec.DelayMinutes,
			OnTime:       !rec.Delayed(),
		})
	}
	return out
}
