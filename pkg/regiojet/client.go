package regiojet

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the public RegioJet REST API root.
	DefaultBaseURL = "https://brn-ybus-pubapi.sa.cz/restapi"

	// DefaultLanguage selects Czech labels in upstream responses.
	DefaultLanguage = "cs"
)

// Client interacts with the RegioJet public API.
type Client struct {
	baseURL    string
	language   string
	httpClient *http.Client
}

// NewClient creates a client against the default API with Czech labels.
func NewClient() *Client {
	return NewClientWith(DefaultBaseURL, DefaultLanguage)
}

// NewClientWith creates a client with a custom API root and language code
// (cs, en, de, ...). The language is sent as the X-Lang header.
func NewClientWith(baseURL, language string) *Client {
	return &Client{
		baseURL:  baseURL,
		language: language,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// get issues a single GET against the API and returns the raw body.
// No retries: callers decide whether a failed query is worth repeating.
func (c *Client) get(url string) ([]byte, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Lang", c.language)
	// Public APIs often block default Go user agents
	req.Header.Set("User-Agent", "regiojet-delays/1.0 (https://github.com/ptomes1987/regiojet-delays)")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	return body, nil
}

// fetchRoutes retrieves the raw scheduled services for a station in the
// given direction. The upstream limit parameter is a hint only; callers
// must still truncate.
func (c *Client) fetchRoutes(stationID string, dir Direction, limit int) ([]routeJSON, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be a positive number, got %d", limit)
	}

	url := fmt.Sprintf("%s/routes/%s/%s?limit=%d", c.baseURL, stationID, dir, limit)

	body, err := c.get(url)
	if err != nil {
		return nil, err
	}

	var routes []routeJSON
	if err := json.Unmarshal(body, &routes); err != nil {
		return nil, &MalformedResponseError{Err: err}
	}
	// A bare null body unmarshals into a nil slice without an error
	if routes == nil {
		return nil, &MalformedResponseError{Err: fmt.Errorf("expected a JSON array, got null")}
	}

	return routes, nil
}

// FetchServices returns up to limit normalized service records for a
// station, in upstream (chronological) order. An empty result is not an
// error: the station simply has no scheduled services in the window.
//
// The limit is applied twice: as an upstream query parameter and again
// client-side, so the bound holds regardless of what the server returns.
func (c *Client) FetchServices(stationID string, dir Direction, limit int) ([]ServiceRecord, error) {
	routes, err := c.fetchRoutes(stationID, dir, limit)
	if err != nil {
		return nil, err
	}

	if len(routes) > limit {
		routes = routes[:limit]
	}

	records := make([]ServiceRecord, 0, len(routes))
	for _, r := range routes {
		records = append(records, r.toServiceRecord())
	}

	return records, nil
}

// FetchArrivals returns up to limit services arriving at a station.
func (c *Client) FetchArrivals(stationID string, limit int) ([]ServiceRecord, error) {
	return c.FetchServices(stationID, DirectionArrivals, limit)
}

// FetchDepartures returns up to limit services departing from a station.
func (c *Client) FetchDepartures(stationID string, limit int) ([]ServiceRecord, error) {
	return c.FetchServices(stationID, DirectionDepartures, limit)
}
