package dto

import "time"

type ChartRequest struct {
	Date                  string   `json:"date"`
	Time                  string   `json:"time"`
	Lat                   *float64 `json:"lat"`
	Lon                   *float64 `json:"lon"`
	TimezoneOffsetMinutes *int     `json:"timezoneOffsetMinutes"`
	HouseSystem           string   `json:"houseSystem"`
}

type AscendantResponse struct {
	Longitude    float64 `json:"longitude"`
	Sign         string  `json:"sign"`
	DegreeInSign float64 `json:"degreeInSign"`
}

type PlanetResponse struct {
	Longitude    float64 `json:"longitude"`
	Sign         string  `json:"sign"`
	DegreeInSign float64 `json:"degreeInSign"`
	House        int     `json:"house"`
}

type HouseResponse struct {
	House         int     `json:"house"`
	CuspLongitude float64 `json:"cuspLongitude"`
	Sign          string  `json:"sign"`
}

type TimezoneResponse struct {
	Name          string `json:"name"`
	OffsetMinutes int    `json:"offsetMinutes"`
	Fallback      bool   `json:"fallback"`
}

type MomentResponse struct {
	Local     time.Time `json:"local"`
	UTC       time.Time `json:"utc"`
	JulianDay float64   `json:"julianDay"`
}

type ChartResponse struct {
	Ascendant   AscendantResponse         `json:"ascendant"`
	Houses      []HouseResponse           `json:"houses"`
	Planets     map[string]PlanetResponse `json:"planets"`
	HouseSystem string                    `json:"houseSystem"`
	Timezone    TimezoneResponse          `json:"timezone"`
	Moment      MomentResponse            `json:"moment"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}
