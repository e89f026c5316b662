package regiojet

import (
	"encoding/json"
	"fmt"
	"strings"
)

// The locations constant is a country -> cities -> stations tree.
type locationCountry struct {
	Cities []locationCity `json:"cities"`
}

type locationCity struct {
	ID       int64             `json:"id"`
	Name     string            `json:"name"`
	Stations []locationStation `json:"stations"`
}

type locationStation struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Fullname string  `json:"fullname"`
	Address  *string `json:"address"`
}

// StationMatch is one station found by SearchStations, flattened out of
// the locations tree.
type StationMatch struct {
	City      string
	CityID    int64
	Station   string
	StationID string
	Fullname  string
	Address   string
}

// fetchLocations retrieves the full locations tree. The endpoint is a
// constant dataset, so the payload is large; callers should treat one
// fetch per search as the expected cost.
func (c *Client) fetchLocations() ([]locationCountry, error) {
	body, err := c.get(fmt.Sprintf("%s/consts/locations", c.baseURL))
	if err != nil {
		return nil, err
	}

	var countries []locationCountry
	if err := json.Unmarshal(body, &countries); err != nil {
		return nil, &MalformedResponseError{Err: err}
	}
	if countries == nil {
		return nil, &MalformedResponseError{Err: fmt.Errorf("expected a JSON array, got null")}
	}

	return countries, nil
}

// SearchStations finds stations whose city name, station name or
// fullname contains the query, case-insensitively. A city name match
// includes all of that city's stations.
func (c *Client) SearchStations(query string) ([]StationMatch, error) {
	countries, err := c.fetchLocations()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	var results []StationMatch

	for _, country := range countries {
		for _, city := range country.Cities {
			cityMatches := strings.Contains(strings.ToLower(city.Name), needle)
			for _, station := range city.Stations {
				if !cityMatches &&
					!strings.Contains(strings.ToLower(station.Name), needle) &&
					!strings.Contains(strings.ToLower(station.Fullname), needle) {
					continue
				}

				address := FieldUnknown
				if station.Address != nil && *station.Address != "" {
					address = *station.Address
				}

				results = append(results, StationMatch{
					City:      city.Name,
					CityID:    city.ID,
					Station:   station.Name,
					StationID: fmt.Sprintf("%d", station.ID),
					Fullname:  station.Fullname,
					Address:   address,
				})
			}
		}
	}

	return results, nil
}
