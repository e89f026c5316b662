package regiojet

// Direction selects which schedule of a station is queried. Each value
// is a distinct upstream resource path segment.
type Direction string

const (
	DirectionArrivals   Direction = "arrivals"
	DirectionDepartures Direction = "departures"
)

// FieldUnknown is substituted for number and label fields the upstream
// payload occasionally omits.
const FieldUnknown = "N/A"

// ServiceRecord is one normalized scheduled arrival or departure.
type ServiceRecord struct {
	Number       string
	Label        string
	DelayMinutes int
}

// Delayed reports whether the service counts as delayed. Zero and
// negative delays (early services) both render as on time.
func (r ServiceRecord) Delayed() bool {
	return r.DelayMinutes > 0
}

// routeJSON mirrors one element of the upstream routes array. Number,
// label and delay are occasionally missing from the payload, hence the
// pointers; other upstream fields we do not use are ignored by the
// decoder.
type routeJSON struct {
	Number             *string             `json:"number"`
	Label              *string             `json:"label"`
	Delay              *int                `json:"delay"`
	FreeSeatsCount     int                 `json:"freeSeatsCount"`
	VehicleStandard    string              `json:"vehicleStandard"`
	ConnectionStations []ConnectionStation `json:"connectionStations"`
}

// ConnectionStation is one stop along a service's route.
type ConnectionStation struct {
	StationID int64   `json:"stationId"`
	Departure *string `json:"departure"`
	Arrival   *string `json:"arrival"`
	Platform  *string `json:"platform"`
}

func (r routeJSON) toServiceRecord() ServiceRecord {
	rec := ServiceRecord{
		Number: FieldUnknown,
		Label:  FieldUnknown,
	}
	if r.Number != nil {
		rec.Number = *r.Number
	}
	if r.Label != nil {
		rec.Label = *r.Label
	}
	if r.Delay != nil {
		rec.DelayMinutes = *r.Delay
	}
	return rec
}
