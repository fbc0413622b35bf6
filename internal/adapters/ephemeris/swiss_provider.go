package ephemeris

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"natal-chart-service/internal/domain"
	"natal-chart-service/internal/platform/obs"
	"natal-chart-service/internal/ports"
)

// SwissProvider implements EphemerisProvider against a Swiss Ephemeris
// sidecar exposing JSON calc and houses endpoints.
//
// The provider is stateless between calls and safe for concurrent use.
type SwissProvider struct {
	session *http.Client
	baseURL string
}

func NewSwissProvider(baseURL string) (*SwissProvider, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("ephemeris base URL is empty")
	}

	provider := &SwissProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
	}

	return provider, nil
}

type calcResponse struct {
	Longitude float64 `json:"longitude"`
}

// Return the ecliptic longitude of one body at a Julian Day (UT).
func (s *SwissProvider) BodyLongitude(
	ctx context.Context,
	julianDay float64,
	body domain.Body,
) (_ float64, err error) {
	defer obs.Time(ctx, "ephemeris.BodyLongitude")(&err)

	req, err := s.newRequest(ctx, "/calc", map[string]string{
		"jd":   strconv.FormatFloat(julianDay, 'f', -1, 64),
		"body": strconv.Itoa(int(body)),
	})
	if err != nil {
		return 0, fmt.Errorf("body longitude request: %w", err)
	}

	resp, err := s.do(req)
	if err != nil {
		return 0, fmt.Errorf("body longitude %s: %w", body, err)
	}
	defer resp.Body.Close()

	var decoded calcResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return 0, fmt.Errorf("decode body longitude response: %w", err)
	}

	return decoded.Longitude, nil
}

type housesResponse struct {
	Ascendant float64   `json:"ascendant"`
	Cusps     []float64 `json:"cusps"`
}

// Return the ascendant and twelve cusps for the instant and birthplace.
func (s *SwissProvider) Houses(
	ctx context.Context,
	julianDay float64,
	coord domain.GeoCoordinate,
	systemCode byte,
) (_ ports.HouseResult, err error) {
	defer obs.Time(ctx, "ephemeris.Houses")(&err)

	req, err := s.newRequest(ctx, "/houses", map[string]string{
		"jd":   strconv.FormatFloat(julianDay, 'f', -1, 64),
		"lat":  strconv.FormatFloat(coord.Lat, 'f', -1, 64),
		"lon":  strconv.FormatFloat(coord.Lon, 'f', -1, 64),
		"hsys": string(systemCode),
	})
	if err != nil {
		return ports.HouseResult{}, fmt.Errorf("houses request: %w", err)
	}

	resp, err := s.do(req)
	if err != nil {
		return ports.HouseResult{}, fmt.Errorf("houses: %w", err)
	}
	defer resp.Body.Close()

	var decoded housesResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.HouseResult{}, fmt.Errorf("decode houses response: %w", err)
	}

	if len(decoded.Cusps) != 12 {
		return ports.HouseResult{}, fmt.Errorf("houses returned %d cusps, want 12", len(decoded.Cusps))
	}

	var out ports.HouseResult
	out.Ascendant = decoded.Ascendant
	copy(out.Cusps[:], decoded.Cusps)

	return out, nil
}
