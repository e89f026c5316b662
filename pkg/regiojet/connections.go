package regiojet

import (
	"fmt"
	"strconv"
)

// Connection is a service departing one station and calling at another,
// with the endpoint times and platforms pulled out of its stop list.
// Times are upstream ISO-8601 strings; empty when the stop list omits
// them.
type Connection struct {
	ServiceRecord

	FreeSeats       int
	VehicleStandard string

	DepartureTime     string
	ArrivalTime       string
	DeparturePlatform string
	ArrivalPlatform   string
}

// FindConnections lists services that leave fromID and call at toID,
// scanning up to limit departures. The order follows the departures
// board.
func (c *Client) FindConnections(fromID, toID string, limit int) ([]Connection, error) {
	from, err := strconv.ParseInt(fromID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid origin station id %q: %w", fromID, err)
	}
	to, err := strconv.ParseInt(toID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid destination station id %q: %w", toID, err)
	}

	routes, err := c.fetchRoutes(fromID, DirectionDepartures, limit)
	if err != nil {
		return nil, err
	}
	if len(routes) > limit {
		routes = routes[:limit]
	}

	var connections []Connection
	for _, r := range routes {
		if !callsAt(r.ConnectionStations, to) {
			continue
		}

		conn := Connection{
			ServiceRecord:   r.toServiceRecord(),
			FreeSeats:       r.FreeSeatsCount,
			VehicleStandard: r.VehicleStandard,
		}

		for _, stop := range r.ConnectionStations {
			switch stop.StationID {
			case from:
				conn.DepartureTime = deref(stop.Departure)
				conn.DeparturePlatform = deref(stop.Platform)
			case to:
				conn.ArrivalTime = deref(stop.Arrival)
				conn.ArrivalPlatform = deref(stop.Platform)
			}
		}

		connections = append(connections, conn)
	}

	return connections, nil
}

// CheckDelays returns the connections between two stations whose delay
// is at least threshold minutes. A zero threshold returns everything.
func (c *Client) CheckDelays(fromID, toID string, limit, threshold int) ([]Connection, error) {
	connections, err := c.FindConnections(fromID, toID, limit)
	if err != nil {
		return nil, err
	}

	if threshold <= 0 {
		return connections, nil
	}

	var delayed []Connection
	for _, conn := range connections {
		if conn.DelayMinutes >= threshold {
			delayed = append(delayed, conn)
		}
	}

	return delayed, nil
}

func callsAt(stops []ConnectionStation, stationID int64) bool {
	for _, stop := range stops {
		if stop.StationID == stationID {
			return true
		}
	}
	return false
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
